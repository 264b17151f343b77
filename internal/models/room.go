package models

import "github.com/shopspring/decimal"

// RoomStatus indicates the operational state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// RoomType groups rooms sharing a nightly rate and capacity.
type RoomType struct {
	RoomTypeID  string          `db:"room_type_id"`
	Name        string          `db:"name"`
	NightlyRate decimal.Decimal `db:"nightly_rate"`
	Capacity    int             `db:"capacity"`
	Description string          `db:"description"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}

// Room represents a physical room.
type Room struct {
	RoomID     string     `db:"room_id"`
	Name       string     `db:"name"`
	RoomTypeID string     `db:"room_type_id"`
	Status     RoomStatus `db:"status"`
	Floor      int        `db:"floor"`
	IsActive   bool       `db:"is_active"`
	AuditFields
}

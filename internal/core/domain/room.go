package domain

import "github.com/shopspring/decimal"

// RoomStatus indicates whether a room is available for check-in.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "AVAILABLE"
	RoomOccupied    RoomStatus = "OCCUPIED"
	RoomMaintenance RoomStatus = "MAINTENANCE"
)

// RoomType groups rooms that share a nightly rate and capacity.
type RoomType struct {
	RoomTypeID  string          `json:"roomTypeID"` // Primary Key (UUID)
	Name        string          `json:"name"`
	NightlyRate decimal.Decimal `json:"nightlyRate"` // VND, minor units carried as exact decimal
	Capacity    int             `json:"capacity"`
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	AuditFields
}

// Room is a physical room that folios are opened against.
type Room struct {
	RoomID       string     `json:"roomID"` // Primary Key (UUID)
	Name         string     `json:"name"`   // Display name, e.g. "P.301"
	RoomTypeID   string     `json:"roomTypeID"` // FK -> RoomType.roomTypeID
	RoomTypeName string     `json:"roomTypeName"`
	Status       RoomStatus `json:"status"`
	Floor        int        `json:"floor"`
	IsActive     bool       `json:"isActive"`
	AuditFields
}

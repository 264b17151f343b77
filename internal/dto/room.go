package dto

import (
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRoomTypeRequest defines the data needed to create a room type.
type CreateRoomTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	NightlyRate decimal.Decimal `json:"nightlyRate" binding:"required"`
	Capacity    int             `json:"capacity" binding:"required,min=1"`
	Description string          `json:"description"`
}

// UpdateRoomTypeRequest defines the data allowed for updating a room type.
// Pointers distinguish omitted fields from zero-value fields.
type UpdateRoomTypeRequest struct {
	Name        *string          `json:"name"`
	NightlyRate *decimal.Decimal `json:"nightlyRate"`
	Capacity    *int             `json:"capacity"`
	Description *string          `json:"description"`
	IsActive    *bool            `json:"isActive"`
}

// RoomTypeResponse defines the data returned for a room type.
type RoomTypeResponse struct {
	RoomTypeID  string          `json:"roomTypeID"`
	Name        string          `json:"name"`
	NightlyRate decimal.Decimal `json:"nightlyRate"`
	Capacity    int             `json:"capacity"`
	Description string          `json:"description"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToRoomTypeResponse converts a domain.RoomType to RoomTypeResponse DTO
func ToRoomTypeResponse(rt *domain.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		RoomTypeID:  rt.RoomTypeID,
		Name:        rt.Name,
		NightlyRate: rt.NightlyRate,
		Capacity:    rt.Capacity,
		Description: rt.Description,
		IsActive:    rt.IsActive,
		CreatedAt:   rt.CreatedAt,
	}
}

// ToListRoomTypeResponse converts a slice of domain.RoomType to RoomTypeResponse DTOs
func ToListRoomTypeResponse(roomTypes []domain.RoomType) []RoomTypeResponse {
	res := make([]RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		res[i] = ToRoomTypeResponse(&rt)
	}
	return res
}

// CreateRoomRequest defines the data needed to create a room.
type CreateRoomRequest struct {
	Name       string `json:"name" binding:"required"`
	RoomTypeID string `json:"roomTypeID" binding:"required"`
	Floor      int    `json:"floor"`
}

// UpdateRoomRequest defines the data allowed for updating a room.
type UpdateRoomRequest struct {
	Name     *string            `json:"name"`
	Status   *domain.RoomStatus `json:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Floor    *int               `json:"floor"`
	IsActive *bool              `json:"isActive"`
}

// RoomResponse defines the data returned for a room.
type RoomResponse struct {
	RoomID       string            `json:"roomID"`
	Name         string            `json:"name"`
	RoomTypeID   string            `json:"roomTypeID"`
	RoomTypeName string            `json:"roomTypeName"`
	Status       domain.RoomStatus `json:"status"`
	Floor        int               `json:"floor"`
	IsActive     bool              `json:"isActive"`
}

// ToRoomResponse converts a domain.Room to RoomResponse DTO
func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomID:       r.RoomID,
		Name:         r.Name,
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomTypeName,
		Status:       r.Status,
		Floor:        r.Floor,
		IsActive:     r.IsActive,
	}
}

// ToListRoomResponse converts a slice of domain.Room to RoomResponse DTOs
func ToListRoomResponse(rooms []domain.Room) []RoomResponse {
	res := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		res[i] = ToRoomResponse(&r)
	}
	return res
}

// ListRoomsParams defines query parameters for listing rooms.
type ListRoomsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

package services

import (
	"context"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
)

// RoomTypeSvc defines operations for managing room types
type RoomTypeSvc interface {
	// CreateRoomType creates a new room type.
	CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest, creatorUserID string) (*domain.RoomType, error)

	// UpdateRoomType updates an existing room type.
	UpdateRoomType(ctx context.Context, roomTypeID string, req dto.UpdateRoomTypeRequest, requestingUserID string) (*domain.RoomType, error)

	// GetRoomType retrieves a room type by ID.
	GetRoomType(ctx context.Context, roomTypeID string) (*domain.RoomType, error)

	// ListRoomTypes retrieves room types, optionally including inactive ones.
	ListRoomTypes(ctx context.Context, includeInactive bool) ([]domain.RoomType, error)
}

// RoomSvc defines operations for managing rooms
type RoomSvc interface {
	// CreateRoom creates a new room.
	CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error)

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error)

	// GetRoom retrieves a room by ID.
	GetRoom(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRooms retrieves rooms, optionally filtered by status.
	ListRooms(ctx context.Context, params dto.ListRoomsParams) ([]domain.Room, error)
}

// RoomSvcFacade combines all room-related service interfaces
type RoomSvcFacade interface {
	RoomTypeSvc
	RoomSvc
}

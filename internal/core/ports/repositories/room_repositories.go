package repositories

import (
	"context"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
)

// RoomTypeReader defines read operations for room type data
type RoomTypeReader interface {
	// FindRoomTypeByID retrieves a specific room type by ID.
	FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error)

	// ListRoomTypes retrieves all room types, optionally including inactive ones.
	ListRoomTypes(ctx context.Context, includeInactive bool) ([]domain.RoomType, error)
}

// RoomTypeWriter defines write operations for room type data
type RoomTypeWriter interface {
	// SaveRoomType persists a new room type.
	SaveRoomType(ctx context.Context, roomType domain.RoomType) error

	// UpdateRoomType updates an existing room type.
	UpdateRoomType(ctx context.Context, roomType domain.RoomType) error
}

// RoomReader defines read operations for room data
type RoomReader interface {
	// FindRoomByID retrieves a specific room by ID, with its room type name joined.
	FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error)

	// ListRooms retrieves a paginated list of rooms, optionally filtered by status.
	ListRooms(ctx context.Context, status *domain.RoomStatus, limit int, offset int) ([]domain.Room, error)
}

// RoomWriter defines write operations for room data
type RoomWriter interface {
	// SaveRoom persists a new room.
	SaveRoom(ctx context.Context, room domain.Room) error

	// UpdateRoom updates an existing room.
	UpdateRoom(ctx context.Context, room domain.Room) error

	// UpdateRoomStatus transitions a room's operational status.
	UpdateRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus, updatedByUserID string) error
}

// RoomRepositoryFacade combines all room-related repository interfaces
type RoomRepositoryFacade interface {
	RoomTypeReader
	RoomTypeWriter
	RoomReader
	RoomWriter
}

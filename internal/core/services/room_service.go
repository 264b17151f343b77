package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
)

var (
	ErrInvalidNightlyRate = errors.New("nightly rate must be greater than zero")
	ErrRoomTypeInactive   = errors.New("room type is inactive")
)

// roomService implements the RoomSvcFacade interface
type roomService struct {
	BaseService
	roomRepo portsrepo.RoomRepositoryFacade
}

// RoomServiceOption is a functional option for configuring the room service
type RoomServiceOption func(*roomService)

// WithRoomRoleAuthorizer adds the role authorizer dependency
func WithRoomRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) RoomServiceOption {
	return func(s *roomService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewRoomService creates a new room service with the provided options
func NewRoomService(roomRepo portsrepo.RoomRepositoryFacade, options ...RoomServiceOption) portssvc.RoomSvcFacade {
	svc := &roomService{
		roomRepo: roomRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure roomService implements the RoomSvcFacade interface
var _ portssvc.RoomSvcFacade = (*roomService)(nil)

// CreateRoomType creates a new room type. Requires the MANAGER role.
func (s *roomService) CreateRoomType(ctx context.Context, req dto.CreateRoomTypeRequest, creatorUserID string) (*domain.RoomType, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, domain.RoleManager); err != nil {
		s.LogError(ctx, err, "User not authorized to create room type", slog.String("user_id", creatorUserID))
		return nil, err
	}
	if req.NightlyRate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidNightlyRate)
	}

	now := time.Now().UTC()
	roomType := domain.RoomType{
		RoomTypeID:  uuid.NewString(),
		Name:        req.Name,
		NightlyRate: req.NightlyRate,
		Capacity:    req.Capacity,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.roomRepo.SaveRoomType(ctx, roomType); err != nil {
		s.LogError(ctx, err, "Failed to save room type", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save room type: %w", err)
	}

	s.LogInfo(ctx, "Room type created", slog.String("room_type_id", roomType.RoomTypeID), slog.String("name", roomType.Name))
	return &roomType, nil
}

// UpdateRoomType updates an existing room type. Requires the MANAGER role.
// Rate changes affect only future check-ins; open folios keep their captured rate.
func (s *roomService) UpdateRoomType(ctx context.Context, roomTypeID string, req dto.UpdateRoomTypeRequest, requestingUserID string) (*domain.RoomType, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, domain.RoleManager); err != nil {
		return nil, err
	}

	roomType, err := s.roomRepo.FindRoomTypeByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room type %s: %w", roomTypeID, err)
	}

	if req.Name != nil {
		roomType.Name = *req.Name
	}
	if req.NightlyRate != nil {
		if req.NightlyRate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidNightlyRate)
		}
		roomType.NightlyRate = *req.NightlyRate
	}
	if req.Capacity != nil {
		roomType.Capacity = *req.Capacity
	}
	if req.Description != nil {
		roomType.Description = *req.Description
	}
	if req.IsActive != nil {
		roomType.IsActive = *req.IsActive
	}
	roomType.LastUpdatedAt = time.Now().UTC()
	roomType.LastUpdatedBy = requestingUserID

	if err := s.roomRepo.UpdateRoomType(ctx, *roomType); err != nil {
		s.LogError(ctx, err, "Failed to update room type", slog.String("room_type_id", roomTypeID))
		return nil, fmt.Errorf("failed to update room type %s: %w", roomTypeID, err)
	}
	return roomType, nil
}

// GetRoomType retrieves a room type by ID.
func (s *roomService) GetRoomType(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	roomType, err := s.roomRepo.FindRoomTypeByID(ctx, roomTypeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find room type", slog.String("room_type_id", roomTypeID))
		}
		return nil, fmt.Errorf("failed to find room type %s: %w", roomTypeID, err)
	}
	return roomType, nil
}

// ListRoomTypes retrieves room types, optionally including inactive ones.
func (s *roomService) ListRoomTypes(ctx context.Context, includeInactive bool) ([]domain.RoomType, error) {
	roomTypes, err := s.roomRepo.ListRoomTypes(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list room types")
		return nil, fmt.Errorf("failed to retrieve room types: %w", err)
	}
	return roomTypes, nil
}

// CreateRoom creates a new room. Requires the MANAGER role.
func (s *roomService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest, creatorUserID string) (*domain.Room, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, domain.RoleManager); err != nil {
		s.LogError(ctx, err, "User not authorized to create room", slog.String("user_id", creatorUserID))
		return nil, err
	}

	roomType, err := s.roomRepo.FindRoomTypeByID(ctx, req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("invalid room type: %w", err)
	}
	if !roomType.IsActive {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrRoomTypeInactive)
	}

	now := time.Now().UTC()
	room := domain.Room{
		RoomID:       uuid.NewString(),
		Name:         req.Name,
		RoomTypeID:   roomType.RoomTypeID,
		RoomTypeName: roomType.Name,
		Status:       domain.RoomAvailable,
		Floor:        req.Floor,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.roomRepo.SaveRoom(ctx, room); err != nil {
		s.LogError(ctx, err, "Failed to save room", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save room: %w", err)
	}

	s.LogInfo(ctx, "Room created", slog.String("room_id", room.RoomID), slog.String("name", room.Name))
	return &room, nil
}

// UpdateRoom updates an existing room. Status flips happen at the reception
// desk, so the RECEPTIONIST role suffices.
func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req dto.UpdateRoomRequest, requestingUserID string) (*domain.Room, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, domain.RoleReceptionist); err != nil {
		return nil, err
	}

	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to find room %s: %w", roomID, err)
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}
	room.LastUpdatedAt = time.Now().UTC()
	room.LastUpdatedBy = requestingUserID

	if err := s.roomRepo.UpdateRoom(ctx, *room); err != nil {
		s.LogError(ctx, err, "Failed to update room", slog.String("room_id", roomID))
		return nil, fmt.Errorf("failed to update room %s: %w", roomID, err)
	}
	return room, nil
}

// GetRoom retrieves a room by ID.
func (s *roomService) GetRoom(ctx context.Context, roomID string) (*domain.Room, error) {
	room, err := s.roomRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find room", slog.String("room_id", roomID))
		}
		return nil, fmt.Errorf("failed to find room %s: %w", roomID, err)
	}
	return room, nil
}

// ListRooms retrieves rooms, optionally filtered by status.
func (s *roomService) ListRooms(ctx context.Context, params dto.ListRoomsParams) ([]domain.Room, error) {
	var status *domain.RoomStatus
	if params.Status != "" {
		st := domain.RoomStatus(params.Status)
		status = &st
	}
	rooms, err := s.roomRepo.ListRooms(ctx, status, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rooms")
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

package pgsql

import (
	"context"
	"errors"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	"github.com/hotelhq/hotel_folio_app/internal/models"
	"github.com/hotelhq/hotel_folio_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRoomRepository struct {
	db *pgxpool.Pool
}

// newPgxRoomRepository creates a new repository for room and room type data.
func newPgxRoomRepository(db *pgxpool.Pool) portsrepo.RoomRepositoryFacade {
	return &PgxRoomRepository{db: db}
}

// Ensure PgxRoomRepository implements portsrepo.RoomRepositoryFacade
var _ portsrepo.RoomRepositoryFacade = (*PgxRoomRepository)(nil)

func (r *PgxRoomRepository) SaveRoomType(ctx context.Context, roomType domain.RoomType) error {
	m := mapping.ToModelRoomType(roomType)
	query := `
		INSERT INTO room_types (room_type_id, name, nightly_rate, capacity, description, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.RoomTypeID,
		m.Name,
		m.NightlyRate,
		m.Capacity,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save room type "+m.RoomTypeID, err)
	}
	return nil
}

func (r *PgxRoomRepository) UpdateRoomType(ctx context.Context, roomType domain.RoomType) error {
	m := mapping.ToModelRoomType(roomType)
	query := `
		UPDATE room_types
		SET name = $2, nightly_rate = $3, capacity = $4, description = $5, is_active = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE room_type_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.RoomTypeID,
		m.Name,
		m.NightlyRate,
		m.Capacity,
		m.Description,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update room type "+m.RoomTypeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRoomRepository) FindRoomTypeByID(ctx context.Context, roomTypeID string) (*domain.RoomType, error) {
	query := `
		SELECT room_type_id, name, nightly_rate, capacity, description, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM room_types
		WHERE room_type_id = $1;
	`
	var m models.RoomType
	err := r.db.QueryRow(ctx, query, roomTypeID).Scan(
		&m.RoomTypeID,
		&m.Name,
		&m.NightlyRate,
		&m.Capacity,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find room type by ID "+roomTypeID, err)
	}

	roomType := mapping.ToDomainRoomType(m)
	return &roomType, nil
}

func (r *PgxRoomRepository) ListRoomTypes(ctx context.Context, includeInactive bool) ([]domain.RoomType, error) {
	query := `
		SELECT room_type_id, name, nightly_rate, capacity, description, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM room_types
	`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query room types", err)
	}
	defer rows.Close()

	modelTypes := []models.RoomType{}
	for rows.Next() {
		var m models.RoomType
		err := rows.Scan(
			&m.RoomTypeID,
			&m.Name,
			&m.NightlyRate,
			&m.Capacity,
			&m.Description,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan room type row", err)
		}
		modelTypes = append(modelTypes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating room type rows", err)
	}

	return mapping.ToDomainRoomTypeSlice(modelTypes), nil
}

func (r *PgxRoomRepository) SaveRoom(ctx context.Context, room domain.Room) error {
	m := mapping.ToModelRoom(room)
	query := `
		INSERT INTO rooms (room_id, name, room_type_id, status, floor, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.RoomID,
		m.Name,
		m.RoomTypeID,
		m.Status,
		m.Floor,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save room "+m.RoomID, err)
	}
	return nil
}

func (r *PgxRoomRepository) UpdateRoom(ctx context.Context, room domain.Room) error {
	m := mapping.ToModelRoom(room)
	query := `
		UPDATE rooms
		SET name = $2, room_type_id = $3, status = $4, floor = $5, is_active = $6,
		    last_updated_at = $7, last_updated_by = $8
		WHERE room_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.RoomID,
		m.Name,
		m.RoomTypeID,
		m.Status,
		m.Floor,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update room "+m.RoomID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxRoomRepository) UpdateRoomStatus(ctx context.Context, roomID string, status domain.RoomStatus, updatedByUserID string) error {
	query := `
		UPDATE rooms
		SET status = $2, last_updated_at = NOW(), last_updated_by = $3
		WHERE room_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, roomID, models.RoomStatus(status), updatedByUserID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update room status for "+roomID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

const roomSelectColumns = `
	r.room_id, r.name, r.room_type_id, rt.name, r.status, r.floor, r.is_active,
	r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
`

func scanRoom(row pgx.Row) (*domain.Room, error) {
	var m models.Room
	var roomTypeName string

	err := row.Scan(
		&m.RoomID,
		&m.Name,
		&m.RoomTypeID,
		&roomTypeName,
		&m.Status,
		&m.Floor,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}

	room := mapping.ToDomainRoom(m)
	room.RoomTypeName = roomTypeName
	return &room, nil
}

func (r *PgxRoomRepository) FindRoomByID(ctx context.Context, roomID string) (*domain.Room, error) {
	query := `
		SELECT ` + roomSelectColumns + `
		FROM rooms r
		JOIN room_types rt ON r.room_type_id = rt.room_type_id
		WHERE r.room_id = $1;
	`
	room, err := scanRoom(r.db.QueryRow(ctx, query, roomID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find room by ID "+roomID, err)
	}
	return room, nil
}

func (r *PgxRoomRepository) ListRooms(ctx context.Context, status *domain.RoomStatus, limit int, offset int) ([]domain.Room, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + roomSelectColumns + `
		FROM rooms r
		JOIN room_types rt ON r.room_type_id = rt.room_type_id
	`
	args := []interface{}{}
	if status != nil {
		args = append(args, models.RoomStatus(*status))
		query += ` WHERE r.status = $1`
	}
	query += ` ORDER BY r.floor, r.name`
	if status != nil {
		query += ` LIMIT $2 OFFSET $3;`
	} else {
		query += ` LIMIT $1 OFFSET $2;`
	}
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query rooms", err)
	}
	defer rows.Close()

	roomList := []domain.Room{}
	for rows.Next() {
		room, scanErr := scanRoom(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan room row", scanErr)
		}
		roomList = append(roomList, *room)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating room rows", err)
	}

	return roomList, nil
}

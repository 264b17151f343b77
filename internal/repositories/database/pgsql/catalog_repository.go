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

type PgxCatalogRepository struct {
	db *pgxpool.Pool
}

// newPgxCatalogRepository creates a new repository for the billing catalog.
func newPgxCatalogRepository(db *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{db: db}
}

// Ensure PgxCatalogRepository implements portsrepo.CatalogRepositoryFacade
var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

func (r *PgxCatalogRepository) SaveServiceItem(ctx context.Context, item domain.ServiceItem) error {
	m := mapping.ToModelServiceItem(item)
	query := `
		INSERT INTO service_items (service_id, name, unit_price, unit, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.ServiceID,
		m.Name,
		m.UnitPrice,
		m.Unit,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save service item "+m.ServiceID, err)
	}
	return nil
}

func (r *PgxCatalogRepository) UpdateServiceItem(ctx context.Context, item domain.ServiceItem) error {
	m := mapping.ToModelServiceItem(item)
	query := `
		UPDATE service_items
		SET name = $2, unit_price = $3, unit = $4, is_active = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE service_id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.ServiceID,
		m.Name,
		m.UnitPrice,
		m.Unit,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update service item "+m.ServiceID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCatalogRepository) FindServiceItemByID(ctx context.Context, serviceID string) (*domain.ServiceItem, error) {
	query := `
		SELECT service_id, name, unit_price, unit, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM service_items
		WHERE service_id = $1;
	`
	var m models.ServiceItem
	err := r.db.QueryRow(ctx, query, serviceID).Scan(
		&m.ServiceID,
		&m.Name,
		&m.UnitPrice,
		&m.Unit,
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
		return nil, apperrors.NewAppError(500, "failed to find service item by ID "+serviceID, err)
	}

	item := mapping.ToDomainServiceItem(m)
	return &item, nil
}

func (r *PgxCatalogRepository) ListServiceItems(ctx context.Context, includeInactive bool) ([]domain.ServiceItem, error) {
	query := `
		SELECT service_id, name, unit_price, unit, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM service_items
	`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query service items", err)
	}
	defer rows.Close()

	items := []models.ServiceItem{}
	for rows.Next() {
		var m models.ServiceItem
		err := rows.Scan(
			&m.ServiceID,
			&m.Name,
			&m.UnitPrice,
			&m.Unit,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan service item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating service item rows", err)
	}

	return mapping.ToDomainServiceItemSlice(items), nil
}

func (r *PgxCatalogRepository) SavePenaltyType(ctx context.Context, penalty domain.PenaltyType) error {
	m := mapping.ToModelPenaltyType(penalty)
	query := `
		INSERT INTO penalty_types (penalty_type_id, name, amount, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.db.Exec(ctx, query,
		m.PenaltyTypeID,
		m.Name,
		m.Amount,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save penalty type "+m.PenaltyTypeID, err)
	}
	return nil
}

func (r *PgxCatalogRepository) FindPenaltyTypeByID(ctx context.Context, penaltyTypeID string) (*domain.PenaltyType, error) {
	query := `
		SELECT penalty_type_id, name, amount, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM penalty_types
		WHERE penalty_type_id = $1;
	`
	var m models.PenaltyType
	err := r.db.QueryRow(ctx, query, penaltyTypeID).Scan(
		&m.PenaltyTypeID,
		&m.Name,
		&m.Amount,
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
		return nil, apperrors.NewAppError(500, "failed to find penalty type by ID "+penaltyTypeID, err)
	}

	penalty := mapping.ToDomainPenaltyType(m)
	return &penalty, nil
}

func (r *PgxCatalogRepository) ListPenaltyTypes(ctx context.Context, includeInactive bool) ([]domain.PenaltyType, error) {
	query := `
		SELECT penalty_type_id, name, amount, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM penalty_types
	`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query penalty types", err)
	}
	defer rows.Close()

	penalties := []models.PenaltyType{}
	for rows.Next() {
		var m models.PenaltyType
		err := rows.Scan(
			&m.PenaltyTypeID,
			&m.Name,
			&m.Amount,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan penalty type row", err)
		}
		penalties = append(penalties, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating penalty type rows", err)
	}

	return mapping.ToDomainPenaltyTypeSlice(penalties), nil
}

func (r *PgxCatalogRepository) SaveSurchargeType(ctx context.Context, surcharge domain.SurchargeType) error {
	m := mapping.ToModelSurchargeType(surcharge)
	query := `
		INSERT INTO surcharge_types (surcharge_type_id, name, amount, rate, is_active,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.db.Exec(ctx, query,
		m.SurchargeTypeID,
		m.Name,
		m.Amount,
		m.Rate,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save surcharge type "+m.SurchargeTypeID, err)
	}
	return nil
}

func (r *PgxCatalogRepository) FindSurchargeTypeByID(ctx context.Context, surchargeTypeID string) (*domain.SurchargeType, error) {
	query := `
		SELECT surcharge_type_id, name, amount, rate, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM surcharge_types
		WHERE surcharge_type_id = $1;
	`
	var m models.SurchargeType
	err := r.db.QueryRow(ctx, query, surchargeTypeID).Scan(
		&m.SurchargeTypeID,
		&m.Name,
		&m.Amount,
		&m.Rate,
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
		return nil, apperrors.NewAppError(500, "failed to find surcharge type by ID "+surchargeTypeID, err)
	}

	surcharge := mapping.ToDomainSurchargeType(m)
	return &surcharge, nil
}

func (r *PgxCatalogRepository) ListSurchargeTypes(ctx context.Context, includeInactive bool) ([]domain.SurchargeType, error) {
	query := `
		SELECT surcharge_type_id, name, amount, rate, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM surcharge_types
	`
	if !includeInactive {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query surcharge types", err)
	}
	defer rows.Close()

	surcharges := []models.SurchargeType{}
	for rows.Next() {
		var m models.SurchargeType
		err := rows.Scan(
			&m.SurchargeTypeID,
			&m.Name,
			&m.Amount,
			&m.Rate,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan surcharge type row", err)
		}
		surcharges = append(surcharges, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating surcharge type rows", err)
	}

	return mapping.ToDomainSurchargeTypeSlice(surcharges), nil
}

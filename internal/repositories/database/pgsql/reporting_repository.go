package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetDailyRevenueData retrieves per-day revenue rows for a date range,
// aggregated over non-voided ledger entries by occurrence date.
func (r *reportingRepository) GetDailyRevenueData(ctx context.Context, from, to time.Time) ([]domain.RevenueRow, error) {
	query := `
		SELECT
			DATE_TRUNC('day', occurred_at) AS day,
			SUM(CASE WHEN kind = 'ROOM_CHARGE' THEN debit ELSE 0 END) AS room_revenue,
			SUM(CASE WHEN kind = 'SERVICE_CHARGE' THEN debit ELSE 0 END) AS service_revenue,
			SUM(CASE WHEN kind = 'PENALTY_CHARGE' THEN debit ELSE 0 END) AS penalty_revenue,
			SUM(CASE WHEN kind = 'SURCHARGE' THEN debit ELSE 0 END) AS surcharge_revenue,
			SUM(CASE WHEN kind = 'PAYMENT' THEN credit ELSE 0 END) AS payments,
			SUM(CASE WHEN kind = 'REFUND' THEN credit ELSE 0 END) AS refunds
		FROM ledger_entries
		WHERE voided = FALSE
			AND occurred_at >= $1
			AND occurred_at < $2 + INTERVAL '1 day'
		GROUP BY 1
		ORDER BY 1;
	`

	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying daily revenue data: %w", err)
	}
	defer rows.Close()

	var result []domain.RevenueRow
	for rows.Next() {
		var row domain.RevenueRow
		if err := rows.Scan(
			&row.Date,
			&row.RoomRevenue,
			&row.ServiceRevenue,
			&row.PenaltyRevenue,
			&row.SurchargeRevenue,
			&row.Payments,
			&row.Refunds,
		); err != nil {
			return nil, fmt.Errorf("error scanning daily revenue row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily revenue rows: %w", err)
	}

	if len(result) == 0 {
		// Return empty slice instead of nil
		return []domain.RevenueRow{}, nil
	}

	return result, nil
}

// GetOccupancyData retrieves current room counts and the number of open folios.
func (r *reportingRepository) GetOccupancyData(ctx context.Context) (*domain.OccupancySnapshot, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM rooms WHERE is_active = TRUE) AS total_rooms,
			(SELECT COUNT(*) FROM rooms WHERE is_active = TRUE AND status = 'OCCUPIED') AS occupied_rooms,
			(SELECT COUNT(*) FROM rooms WHERE is_active = TRUE AND status = 'AVAILABLE') AS available_rooms,
			(SELECT COUNT(*) FROM folios WHERE status = 'OPEN') AS open_folios;
	`

	var snapshot domain.OccupancySnapshot
	err := r.Pool.QueryRow(ctx, query).Scan(
		&snapshot.TotalRooms,
		&snapshot.OccupiedRooms,
		&snapshot.AvailableRooms,
		&snapshot.OpenFolios,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying occupancy data: %w", err)
	}

	snapshot.AsOf = time.Now().UTC()
	return &snapshot, nil
}

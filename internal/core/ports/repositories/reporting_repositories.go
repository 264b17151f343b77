package repositories

import (
	"context"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
)

// ReportingRepository defines operations for retrieving report data
type ReportingRepository interface {
	// GetDailyRevenueData retrieves per-day revenue rows for a date range,
	// aggregated over non-voided ledger entries by occurrence date.
	GetDailyRevenueData(ctx context.Context, from, to time.Time) ([]domain.RevenueRow, error)

	// GetOccupancyData retrieves current room counts and the number of open folios.
	GetOccupancyData(ctx context.Context) (*domain.OccupancySnapshot, error)
}

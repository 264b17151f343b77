package services

import (
	"context"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
)

// ReportingService defines operations for generating back-office reports
type ReportingService interface {
	// DailyRevenue generates per-day revenue rows for a date range.
	DailyRevenue(ctx context.Context, from, to time.Time, userID string) ([]domain.RevenueRow, error)

	// Occupancy generates a current occupancy snapshot.
	Occupancy(ctx context.Context, userID string) (*domain.OccupancySnapshot, error)
}

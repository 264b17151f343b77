package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	portsrepo "github.com/hotelhq/hotel_folio_app/internal/core/ports/repositories"
	portssvc "github.com/hotelhq/hotel_folio_app/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithReportingRoleAuthorizer sets the role authorizer for the reporting service.
func WithReportingRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) ReportingServiceOption {
	return func(s *reportingService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repo portsrepo.ReportingRepository, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		reportingRepo: repo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// DailyRevenue generates per-day revenue rows for a date range.
// Requires the MANAGER role.
func (s *reportingService) DailyRevenue(ctx context.Context, from, to time.Time, userID string) ([]domain.RevenueRow, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleManager); err != nil {
		s.LogError(ctx, err, "User not authorized to view revenue report", slog.String("user_id", userID))
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report range end is before start", apperrors.ErrValidation)
	}

	rows, err := s.reportingRepo.GetDailyRevenueData(ctx, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve daily revenue data",
			slog.String("from", from.Format(time.RFC3339)),
			slog.String("to", to.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve daily revenue data: %w", err)
	}

	s.LogInfo(ctx, "Daily revenue report generated",
		slog.String("from", from.Format("2006-01-02")),
		slog.String("to", to.Format("2006-01-02")),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// Occupancy generates a current occupancy snapshot.
func (s *reportingService) Occupancy(ctx context.Context, userID string) (*domain.OccupancySnapshot, error) {
	if err := s.AuthorizeUser(ctx, userID, domain.RoleReceptionist); err != nil {
		s.LogError(ctx, err, "User not authorized to view occupancy", slog.String("user_id", userID))
		return nil, err
	}

	snapshot, err := s.reportingRepo.GetOccupancyData(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve occupancy data")
		return nil, fmt.Errorf("failed to retrieve occupancy data: %w", err)
	}

	return snapshot, nil
}

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
	"github.com/hotelhq/hotel_folio_app/internal/utils"
)

var (
	ErrInvalidUnitPrice    = errors.New("unit price must not be negative")
	ErrSurchargeDefinition = errors.New("surcharge must define exactly one of amount or rate")
	ErrSurchargeInactive   = errors.New("surcharge type is inactive")
)

// catalogService implements the CatalogSvcFacade interface
type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// CatalogServiceOption is a functional option for configuring the catalog service
type CatalogServiceOption func(*catalogService)

// WithCatalogRoleAuthorizer adds the role authorizer dependency
func WithCatalogRoleAuthorizer(authorizer portssvc.RoleAuthorizerSvc) CatalogServiceOption {
	return func(s *catalogService) {
		s.RoleAuthorizer = authorizer
	}
}

// NewCatalogService creates a new catalog service with the provided options
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade, options ...CatalogServiceOption) portssvc.CatalogSvcFacade {
	svc := &catalogService{
		catalogRepo: catalogRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure catalogService implements the CatalogSvcFacade interface
var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// CreateServiceItem creates a new catalog service. Requires the MANAGER role.
func (s *catalogService) CreateServiceItem(ctx context.Context, req dto.CreateServiceItemRequest, creatorUserID string) (*domain.ServiceItem, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, domain.RoleManager); err != nil {
		s.LogError(ctx, err, "User not authorized to create service item", slog.String("user_id", creatorUserID))
		return nil, err
	}
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidUnitPrice)
	}

	now := time.Now().UTC()
	item := domain.ServiceItem{
		ServiceID: uuid.NewString(),
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Unit:      req.Unit,
		IsActive:  true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.catalogRepo.SaveServiceItem(ctx, item); err != nil {
		s.LogError(ctx, err, "Failed to save service item", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save service item: %w", err)
	}

	s.LogInfo(ctx, "Service item created", slog.String("service_id", item.ServiceID), slog.String("name", item.Name))
	return &item, nil
}

// UpdateServiceItem updates an existing catalog service. Requires the MANAGER role.
func (s *catalogService) UpdateServiceItem(ctx context.Context, serviceID string, req dto.UpdateServiceItemRequest, requestingUserID string) (*domain.ServiceItem, error) {
	if err := s.AuthorizeUser(ctx, requestingUserID, domain.RoleManager); err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.FindServiceItemByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find service item %s: %w", serviceID, err)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrInvalidUnitPrice)
		}
		item.UnitPrice = *req.UnitPrice
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.LastUpdatedAt = time.Now().UTC()
	item.LastUpdatedBy = requestingUserID

	if err := s.catalogRepo.UpdateServiceItem(ctx, *item); err != nil {
		s.LogError(ctx, err, "Failed to update service item", slog.String("service_id", serviceID))
		return nil, fmt.Errorf("failed to update service item %s: %w", serviceID, err)
	}
	return item, nil
}

// GetServiceItem retrieves a catalog service by ID.
func (s *catalogService) GetServiceItem(ctx context.Context, serviceID string) (*domain.ServiceItem, error) {
	item, err := s.catalogRepo.FindServiceItemByID(ctx, serviceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find service item", slog.String("service_id", serviceID))
		}
		return nil, fmt.Errorf("failed to find service item %s: %w", serviceID, err)
	}
	return item, nil
}

// ListServiceItems retrieves catalog services, optionally including inactive ones.
func (s *catalogService) ListServiceItems(ctx context.Context, includeInactive bool) ([]domain.ServiceItem, error) {
	items, err := s.catalogRepo.ListServiceItems(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list service items")
		return nil, fmt.Errorf("failed to retrieve service items: %w", err)
	}
	return items, nil
}

// CreatePenaltyType creates a new penalty type. Requires the MANAGER role.
func (s *catalogService) CreatePenaltyType(ctx context.Context, req dto.CreatePenaltyTypeRequest, creatorUserID string) (*domain.PenaltyType, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, domain.RoleManager); err != nil {
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: penalty amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	penalty := domain.PenaltyType{
		PenaltyTypeID: uuid.NewString(),
		Name:          req.Name,
		Amount:        req.Amount,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.catalogRepo.SavePenaltyType(ctx, penalty); err != nil {
		s.LogError(ctx, err, "Failed to save penalty type", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save penalty type: %w", err)
	}

	s.LogInfo(ctx, "Penalty type created", slog.String("penalty_type_id", penalty.PenaltyTypeID), slog.String("name", penalty.Name))
	return &penalty, nil
}

// GetPenaltyType retrieves a penalty type by ID.
func (s *catalogService) GetPenaltyType(ctx context.Context, penaltyTypeID string) (*domain.PenaltyType, error) {
	penalty, err := s.catalogRepo.FindPenaltyTypeByID(ctx, penaltyTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find penalty type %s: %w", penaltyTypeID, err)
	}
	return penalty, nil
}

// ListPenaltyTypes retrieves penalty types, optionally including inactive ones.
func (s *catalogService) ListPenaltyTypes(ctx context.Context, includeInactive bool) ([]domain.PenaltyType, error) {
	penalties, err := s.catalogRepo.ListPenaltyTypes(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list penalty types")
		return nil, fmt.Errorf("failed to retrieve penalty types: %w", err)
	}
	return penalties, nil
}

// CreateSurchargeType creates a new surcharge type. Requires the MANAGER role.
func (s *catalogService) CreateSurchargeType(ctx context.Context, req dto.CreateSurchargeTypeRequest, creatorUserID string) (*domain.SurchargeType, error) {
	if err := s.AuthorizeUser(ctx, creatorUserID, domain.RoleManager); err != nil {
		return nil, err
	}
	if (req.Amount == nil) == (req.Rate == nil) {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSurchargeDefinition)
	}
	if req.Amount != nil && req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: surcharge amount must be positive", apperrors.ErrValidation)
	}
	if req.Rate != nil && req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: surcharge rate must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	surcharge := domain.SurchargeType{
		SurchargeTypeID: uuid.NewString(),
		Name:            req.Name,
		Amount:          req.Amount,
		Rate:            req.Rate,
		IsActive:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.catalogRepo.SaveSurchargeType(ctx, surcharge); err != nil {
		s.LogError(ctx, err, "Failed to save surcharge type", slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to save surcharge type: %w", err)
	}

	s.LogInfo(ctx, "Surcharge type created", slog.String("surcharge_type_id", surcharge.SurchargeTypeID), slog.String("name", surcharge.Name))
	return &surcharge, nil
}

// GetSurchargeType retrieves a surcharge type by ID.
func (s *catalogService) GetSurchargeType(ctx context.Context, surchargeTypeID string) (*domain.SurchargeType, error) {
	surcharge, err := s.catalogRepo.FindSurchargeTypeByID(ctx, surchargeTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find surcharge type %s: %w", surchargeTypeID, err)
	}
	return surcharge, nil
}

// ListSurchargeTypes retrieves surcharge types, optionally including inactive ones.
func (s *catalogService) ListSurchargeTypes(ctx context.Context, includeInactive bool) ([]domain.SurchargeType, error) {
	surcharges, err := s.catalogRepo.ListSurchargeTypes(ctx, includeInactive)
	if err != nil {
		s.LogError(ctx, err, "Failed to list surcharge types")
		return nil, fmt.Errorf("failed to retrieve surcharge types: %w", err)
	}
	return surcharges, nil
}

// ResolveSurcharge turns a surcharge type into a concrete flat amount against
// the given base. Percentage surcharges resolve as base * rate / 100, rounded
// to the standard amount precision, so the ledger only ever stores flat
// amounts.
func (s *catalogService) ResolveSurcharge(ctx context.Context, surchargeTypeID string, baseAmount decimal.Decimal) (*domain.SurchargeType, decimal.Decimal, error) {
	surcharge, err := s.catalogRepo.FindSurchargeTypeByID(ctx, surchargeTypeID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("failed to find surcharge type %s: %w", surchargeTypeID, err)
	}
	if !surcharge.IsActive {
		return nil, decimal.Zero, fmt.Errorf("%w: %w", apperrors.ErrValidation, ErrSurchargeInactive)
	}
	if baseAmount.IsNegative() {
		return nil, decimal.Zero, fmt.Errorf("%w: base amount must not be negative", apperrors.ErrValidation)
	}

	if !surcharge.IsPercentage() {
		if surcharge.Amount == nil {
			return nil, decimal.Zero, fmt.Errorf("%w: %w", apperrors.ErrInternal, ErrSurchargeDefinition)
		}
		return surcharge, *surcharge.Amount, nil
	}

	resolved := utils.ApplyRate(baseAmount, surcharge.Rate.Div(decimal.NewFromInt(100)))
	s.LogDebug(ctx, "Surcharge resolved",
		slog.String("surcharge_type_id", surchargeTypeID),
		slog.String("base", baseAmount.String()),
		slog.String("resolved", resolved.String()))
	return surcharge, resolved, nil
}

package services

import (
	"context"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
	"github.com/shopspring/decimal"
)

// ServiceCatalogSvc defines operations for managing billable services
type ServiceCatalogSvc interface {
	// CreateServiceItem creates a new catalog service.
	CreateServiceItem(ctx context.Context, req dto.CreateServiceItemRequest, creatorUserID string) (*domain.ServiceItem, error)

	// UpdateServiceItem updates an existing catalog service.
	UpdateServiceItem(ctx context.Context, serviceID string, req dto.UpdateServiceItemRequest, requestingUserID string) (*domain.ServiceItem, error)

	// GetServiceItem retrieves a catalog service by ID.
	GetServiceItem(ctx context.Context, serviceID string) (*domain.ServiceItem, error)

	// ListServiceItems retrieves catalog services, optionally including inactive ones.
	ListServiceItems(ctx context.Context, includeInactive bool) ([]domain.ServiceItem, error)
}

// PenaltyCatalogSvc defines operations for managing penalty types
type PenaltyCatalogSvc interface {
	// CreatePenaltyType creates a new penalty type.
	CreatePenaltyType(ctx context.Context, req dto.CreatePenaltyTypeRequest, creatorUserID string) (*domain.PenaltyType, error)

	// GetPenaltyType retrieves a penalty type by ID.
	GetPenaltyType(ctx context.Context, penaltyTypeID string) (*domain.PenaltyType, error)

	// ListPenaltyTypes retrieves penalty types, optionally including inactive ones.
	ListPenaltyTypes(ctx context.Context, includeInactive bool) ([]domain.PenaltyType, error)
}

// SurchargeCatalogSvc defines operations for managing surcharge types
type SurchargeCatalogSvc interface {
	// CreateSurchargeType creates a new surcharge type. Exactly one of the
	// request's Amount/Rate must be set.
	CreateSurchargeType(ctx context.Context, req dto.CreateSurchargeTypeRequest, creatorUserID string) (*domain.SurchargeType, error)

	// GetSurchargeType retrieves a surcharge type by ID.
	GetSurchargeType(ctx context.Context, surchargeTypeID string) (*domain.SurchargeType, error)

	// ListSurchargeTypes retrieves surcharge types, optionally including inactive ones.
	ListSurchargeTypes(ctx context.Context, includeInactive bool) ([]domain.SurchargeType, error)

	// ResolveSurcharge turns a surcharge type into a concrete flat amount
	// against the given base. Flat surcharges return their amount unchanged;
	// percentage surcharges are resolved as base * rate / 100.
	ResolveSurcharge(ctx context.Context, surchargeTypeID string, baseAmount decimal.Decimal) (*domain.SurchargeType, decimal.Decimal, error)
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	ServiceCatalogSvc
	PenaltyCatalogSvc
	SurchargeCatalogSvc
}

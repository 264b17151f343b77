package repositories

import (
	"context"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
)

// CatalogReader defines read operations for the billing catalog
type CatalogReader interface {
	// FindServiceItemByID retrieves a catalog service by ID.
	FindServiceItemByID(ctx context.Context, serviceID string) (*domain.ServiceItem, error)

	// ListServiceItems retrieves all catalog services, optionally including inactive ones.
	ListServiceItems(ctx context.Context, includeInactive bool) ([]domain.ServiceItem, error)

	// FindPenaltyTypeByID retrieves a penalty type by ID.
	FindPenaltyTypeByID(ctx context.Context, penaltyTypeID string) (*domain.PenaltyType, error)

	// ListPenaltyTypes retrieves all penalty types, optionally including inactive ones.
	ListPenaltyTypes(ctx context.Context, includeInactive bool) ([]domain.PenaltyType, error)

	// FindSurchargeTypeByID retrieves a surcharge type by ID.
	FindSurchargeTypeByID(ctx context.Context, surchargeTypeID string) (*domain.SurchargeType, error)

	// ListSurchargeTypes retrieves all surcharge types, optionally including inactive ones.
	ListSurchargeTypes(ctx context.Context, includeInactive bool) ([]domain.SurchargeType, error)
}

// CatalogWriter defines write operations for the billing catalog
type CatalogWriter interface {
	// SaveServiceItem persists a new catalog service.
	SaveServiceItem(ctx context.Context, item domain.ServiceItem) error

	// UpdateServiceItem updates an existing catalog service.
	UpdateServiceItem(ctx context.Context, item domain.ServiceItem) error

	// SavePenaltyType persists a new penalty type.
	SavePenaltyType(ctx context.Context, penalty domain.PenaltyType) error

	// SaveSurchargeType persists a new surcharge type.
	SaveSurchargeType(ctx context.Context, surcharge domain.SurchargeType) error
}

// CatalogRepositoryFacade combines all catalog-related repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}

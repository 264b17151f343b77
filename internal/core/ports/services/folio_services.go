package services

import (
	"context"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/dto"
)

// FolioReaderSvc defines read operations for folio data
type FolioReaderSvc interface {
	// GetFolio retrieves a folio by ID, without its entries.
	GetFolio(ctx context.Context, folioID string) (*domain.Folio, error)

	// ListFolios retrieves a paginated list of folios, optionally filtered by status.
	ListFolios(ctx context.Context, params dto.ListFoliosParams) ([]domain.Folio, *string, error)

	// ListEntries retrieves a paginated list of a folio's ledger entries.
	ListEntries(ctx context.Context, folioID string, params dto.ListEntriesParams) ([]domain.LedgerEntry, *string, error)

	// GetTotals recomputes the folio's totals from its non-voided entries.
	GetTotals(ctx context.Context, folioID string) (*domain.FolioTotals, error)
}

// FolioWriterSvc defines write operations for folio data
type FolioWriterSvc interface {
	// OpenFolio checks a guest in: creates the folio, posts the initial room
	// charge, and marks the room occupied.
	OpenFolio(ctx context.Context, req dto.OpenFolioRequest, creatorUserID string) (*domain.Folio, error)

	// PostCharge appends a charge entry to an open folio.
	PostCharge(ctx context.Context, folioID string, req dto.PostChargeRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// PostPayment appends a payment or refund entry to an open folio.
	PostPayment(ctx context.Context, folioID string, req dto.PostPaymentRequest, creatorUserID string) (*domain.LedgerEntry, error)

	// VoidEntry marks an entry voided without altering its amounts.
	VoidEntry(ctx context.Context, folioID string, entryID string, reason string, requestingUserID string) (*domain.LedgerEntry, error)

	// CloseFolio transitions an open folio to CLOSED. A non-zero balance is
	// rejected unless force is set, which requires the MANAGER role.
	CloseFolio(ctx context.Context, folioID string, force bool, requestingUserID string) (*domain.Folio, error)
}

// CheckoutSvc defines checkout summary operations
type CheckoutSvc interface {
	// BuildCheckoutSummary assembles the printable summary for a folio from its
	// current entries. Identical folio state yields an identical summary.
	BuildCheckoutSummary(ctx context.Context, folioID string) (*domain.CheckoutSummary, error)

	// AddAdHocCharge posts a late charge to the folio and returns the summary
	// rebuilt with it included.
	AddAdHocCharge(ctx context.Context, folioID string, req dto.AddAdHocChargeRequest, creatorUserID string) (*domain.CheckoutSummary, error)
}

// FolioSvcFacade combines all folio-related service interfaces
type FolioSvcFacade interface {
	FolioReaderSvc
	FolioWriterSvc
	CheckoutSvc
}

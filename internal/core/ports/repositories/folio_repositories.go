package repositories

import (
	"context"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
)

// FolioReader defines read operations for folio data
type FolioReader interface {
	// FindFolioByID retrieves a specific folio by its unique identifier.
	// Entries are not loaded; use EntryReader for those.
	FindFolioByID(ctx context.Context, folioID string) (*domain.Folio, error)

	// FindOpenFolioByRoomID retrieves the open folio for a room, if any.
	FindOpenFolioByRoomID(ctx context.Context, roomID string) (*domain.Folio, error)

	// ListFolios retrieves a paginated list of folios using token-based pagination,
	// optionally filtered by status. It returns the folios, a token for the next
	// page, and an error.
	ListFolios(ctx context.Context, status *domain.FolioStatus, limit int, nextToken *string) ([]domain.Folio, *string, error)
}

// FolioWriter defines write operations for folio data
type FolioWriter interface {
	// SaveFolio persists a new folio and its initial entries, and marks the room
	// occupied, all within one database transaction.
	SaveFolio(ctx context.Context, folio domain.Folio, entries []domain.LedgerEntry) error

	// UpdateFolioStatus transitions a folio's status and records the checkout
	// date. Closing a folio also frees its room, in the same transaction.
	UpdateFolioStatus(ctx context.Context, folioID string, status domain.FolioStatus, checkOutDate *time.Time, updatedByUserID string, updatedAt time.Time) error
}

// EntryReader defines read operations for ledger entry data
type EntryReader interface {
	// FindEntryByID retrieves a single ledger entry.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// FindEntriesByFolioID retrieves all entries of a folio in posting order,
	// voided entries included.
	FindEntriesByFolioID(ctx context.Context, folioID string) ([]domain.LedgerEntry, error)

	// ListEntriesByFolioID retrieves a paginated list of a folio's entries using
	// token-based pagination.
	ListEntriesByFolioID(ctx context.Context, folioID string, includeVoided bool, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error)
}

// EntryWriter defines write operations for ledger entry data
type EntryWriter interface {
	// SaveEntry persists a new ledger entry. The folio row is locked for the
	// duration of the insert so concurrent posts to one folio serialize.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// UpdateEntryVoid marks an entry voided with the given reason. The entry's
	// amounts are never modified.
	UpdateEntryVoid(ctx context.Context, entry domain.LedgerEntry) error
}

// FolioRepositoryFacade combines all folio-related repository interfaces
// This is a facade for clients that need access to all operations
type FolioRepositoryFacade interface {
	FolioReader
	FolioWriter
	EntryReader
	EntryWriter
}

// FolioRepositoryWithTx extends FolioRepositoryFacade with transaction capabilities
type FolioRepositoryWithTx interface {
	FolioRepositoryFacade
	TransactionManager
}

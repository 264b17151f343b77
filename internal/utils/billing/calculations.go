package billing

import (
	"fmt"
	"sort"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
)

// ComputeTotals folds a folio's entries into debit/credit/balance totals.
// Voided entries are excluded but retained by the caller for audit. The fold
// is deterministic and order-independent; calling it twice on the same input
// yields identical results. Balance > 0 means the guest owes money, < 0 means
// the house owes a refund, == 0 means fully settled.
func ComputeTotals(entries []domain.LedgerEntry) (domain.FolioTotals, error) {
	var totals domain.FolioTotals

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			return domain.FolioTotals{}, fmt.Errorf("%w: entry %s: %v", apperrors.ErrValidation, e.EntryID, err)
		}
		if e.Voided {
			continue
		}
		totals.TotalDebit = totals.TotalDebit.Add(e.Debit)
		totals.TotalCredit = totals.TotalCredit.Add(e.Credit)
	}

	totals.Balance = totals.TotalDebit.Sub(totals.TotalCredit)
	return totals, nil
}

// SortEntriesByTime returns a copy of entries ordered by OccurredAt ascending
// for audit display. The sort is stable: entries with identical timestamps
// keep their original relative order. Totals are unaffected by display order.
func SortEntriesByTime(entries []domain.LedgerEntry) []domain.LedgerEntry {
	sorted := make([]domain.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})
	return sorted
}

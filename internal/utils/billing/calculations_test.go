package billing_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/apperrors"
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCharge(t *testing.T, kind domain.EntryKind, desc string, amount int64, at time.Time) domain.LedgerEntry {
	t.Helper()
	e, err := domain.NewChargeEntry(kind, desc, decimal.NewFromInt(amount), at, "emp1")
	require.NoError(t, err)
	return e
}

func mustPayment(t *testing.T, kind domain.EntryKind, amount int64, at time.Time) domain.LedgerEntry {
	t.Helper()
	e, err := domain.NewPaymentEntry(kind, decimal.NewFromInt(amount), at, "emp1")
	require.NoError(t, err)
	return e
}

func TestComputeTotals_ChargeAndPaymentSettle(t *testing.T) {
	now := time.Now()
	entries := []domain.LedgerEntry{
		mustCharge(t, domain.KindRoomCharge, "Room", 2000000, now),
		mustPayment(t, domain.KindPayment, 2000000, now.Add(time.Hour)),
	}

	totals, err := billing.ComputeTotals(entries)
	require.NoError(t, err)
	assert.True(t, totals.TotalDebit.Equal(decimal.NewFromInt(2000000)))
	assert.True(t, totals.TotalCredit.Equal(decimal.NewFromInt(2000000)))
	assert.True(t, totals.Balance.IsZero())
	assert.True(t, totals.Settled())
	assert.False(t, totals.GuestOwes())
}

func TestComputeTotals_UnpaidChargeLeavesGuestOwing(t *testing.T) {
	entries := []domain.LedgerEntry{
		mustCharge(t, domain.KindRoomCharge, "Room", 1500000, time.Now()),
	}

	totals, err := billing.ComputeTotals(entries)
	require.NoError(t, err)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(1500000)))
	assert.True(t, totals.GuestOwes())
	assert.False(t, totals.Settled())
}

func TestComputeTotals_OverpaymentMeansRefundDue(t *testing.T) {
	now := time.Now()
	entries := []domain.LedgerEntry{
		mustCharge(t, domain.KindServiceCharge, "Minibar", 100000, now),
		mustPayment(t, domain.KindPayment, 500000, now),
	}

	totals, err := billing.ComputeTotals(entries)
	require.NoError(t, err)
	assert.True(t, totals.Balance.Equal(decimal.NewFromInt(-400000)))
	assert.False(t, totals.GuestOwes())
}

func TestComputeTotals_VoidedEntriesExcluded(t *testing.T) {
	now := time.Now()
	penalty := mustCharge(t, domain.KindPenaltyCharge, "Smoking", 150000, now)
	entries := []domain.LedgerEntry{
		mustCharge(t, domain.KindRoomCharge, "Room", 1000000, now),
		penalty,
	}

	before, err := billing.ComputeTotals(entries)
	require.NoError(t, err)
	require.True(t, before.TotalDebit.Equal(decimal.NewFromInt(1150000)))

	voided, err := penalty.Void("charged by mistake", "mgr1")
	require.NoError(t, err)
	entries[1] = voided

	after, err := billing.ComputeTotals(entries)
	require.NoError(t, err)

	// Only the voided entry's own contribution disappears.
	assert.True(t, after.TotalDebit.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, after.TotalCredit.Equal(before.TotalCredit))
	assert.True(t, before.TotalDebit.Sub(after.TotalDebit).Equal(penalty.Debit))
}

func TestComputeTotals_EmptyAndIdempotent(t *testing.T) {
	totals, err := billing.ComputeTotals(nil)
	require.NoError(t, err)
	assert.True(t, totals.Balance.IsZero())

	now := time.Now()
	entries := []domain.LedgerEntry{
		mustCharge(t, domain.KindRoomCharge, "Room", 500000, now),
		mustPayment(t, domain.KindPayment, 200000, now),
	}

	first, err := billing.ComputeTotals(entries)
	require.NoError(t, err)
	second, err := billing.ComputeTotals(entries)
	require.NoError(t, err)
	assert.True(t, first.TotalDebit.Equal(second.TotalDebit))
	assert.True(t, first.TotalCredit.Equal(second.TotalCredit))
	assert.True(t, first.Balance.Equal(second.Balance))
}

func TestComputeTotals_OrderIndependent(t *testing.T) {
	now := time.Now()
	entries := []domain.LedgerEntry{
		mustCharge(t, domain.KindRoomCharge, "Room", 1000000, now),
		mustCharge(t, domain.KindServiceCharge, "Laundry", 100000, now.Add(time.Hour)),
		mustCharge(t, domain.KindPenaltyCharge, "Lost key", 150000, now.Add(2*time.Hour)),
		mustPayment(t, domain.KindPayment, 800000, now.Add(3*time.Hour)),
		mustPayment(t, domain.KindRefund, 50000, now.Add(4*time.Hour)),
	}

	want, err := billing.ComputeTotals(entries)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]domain.LedgerEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := billing.ComputeTotals(shuffled)
		require.NoError(t, err)
		assert.True(t, got.TotalDebit.Equal(want.TotalDebit))
		assert.True(t, got.TotalCredit.Equal(want.TotalCredit))
		assert.True(t, got.Balance.Equal(want.Balance))
	}
}

func TestComputeTotals_RejectsMalformedEntry(t *testing.T) {
	bad := domain.LedgerEntry{
		EntryID:    "bad",
		Kind:       domain.KindRoomCharge,
		Debit:      decimal.NewFromInt(100),
		Credit:     decimal.NewFromInt(100),
		OccurredAt: time.Now(),
	}

	_, err := billing.ComputeTotals([]domain.LedgerEntry{bad})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSortEntriesByTime(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	a := mustCharge(t, domain.KindRoomCharge, "third", 300, base.Add(2*time.Hour))
	b := mustCharge(t, domain.KindServiceCharge, "first", 100, base)
	c := mustCharge(t, domain.KindPenaltyCharge, "second-a", 200, base.Add(time.Hour))
	d := mustCharge(t, domain.KindSurcharge, "second-b", 250, base.Add(time.Hour))

	entries := []domain.LedgerEntry{a, b, c, d}
	sorted := billing.SortEntriesByTime(entries)

	require.Len(t, sorted, 4)
	assert.Equal(t, "first", sorted[0].Description)
	// Stable: same-timestamp entries keep their original relative order.
	assert.Equal(t, "second-a", sorted[1].Description)
	assert.Equal(t, "second-b", sorted[2].Description)
	assert.Equal(t, "third", sorted[3].Description)

	// Input order untouched; totals unaffected by display order.
	assert.Equal(t, "third", entries[0].Description)
	wantTotals, err := billing.ComputeTotals(entries)
	require.NoError(t, err)
	gotTotals, err := billing.ComputeTotals(sorted)
	require.NoError(t, err)
	assert.True(t, wantTotals.Balance.Equal(gotTotals.Balance))
}

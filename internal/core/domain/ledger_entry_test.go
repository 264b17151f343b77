package domain_test

import (
	"testing"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChargeEntry(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		kind    domain.EntryKind
		amount  decimal.Decimal
		wantErr error
	}{
		{
			name:   "valid room charge",
			kind:   domain.KindRoomCharge,
			amount: decimal.NewFromInt(500000),
		},
		{
			name:   "valid penalty charge",
			kind:   domain.KindPenaltyCharge,
			amount: decimal.NewFromInt(150000),
		},
		{
			name:    "negative amount rejected",
			kind:    domain.KindServiceCharge,
			amount:  decimal.NewFromInt(-10000),
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "zero amount rejected",
			kind:    domain.KindSurcharge,
			amount:  decimal.Zero,
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "payment kind rejected by charge constructor",
			kind:    domain.KindPayment,
			amount:  decimal.NewFromInt(10000),
			wantErr: domain.ErrInvalidKind,
		},
		{
			name:    "unknown kind rejected",
			kind:    domain.EntryKind("DISCOUNT"),
			amount:  decimal.NewFromInt(10000),
			wantErr: domain.ErrInvalidKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := domain.NewChargeEntry(tt.kind, "test", tt.amount, now, "emp1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, entry.EntryID)
			assert.True(t, entry.Debit.Equal(tt.amount))
			assert.True(t, entry.Credit.IsZero())
			assert.Equal(t, "emp1", entry.PostedBy)
			assert.NoError(t, entry.Validate())
		})
	}
}

func TestNewPaymentEntry(t *testing.T) {
	now := time.Now()

	entry, err := domain.NewPaymentEntry(domain.KindPayment, decimal.NewFromInt(2000000), now, "emp1")
	require.NoError(t, err)
	assert.True(t, entry.Credit.Equal(decimal.NewFromInt(2000000)))
	assert.True(t, entry.Debit.IsZero())
	assert.NoError(t, entry.Validate())

	_, err = domain.NewPaymentEntry(domain.KindRoomCharge, decimal.NewFromInt(100), now, "emp1")
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	_, err = domain.NewPaymentEntry(domain.KindRefund, decimal.NewFromInt(-100), now, "emp1")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestLedgerEntry_Void(t *testing.T) {
	now := time.Now()
	entry, err := domain.NewChargeEntry(domain.KindPenaltyCharge, "Smoking", decimal.NewFromInt(150000), now, "emp1")
	require.NoError(t, err)

	voided, err := entry.Void("posted in error", "mgr1")
	require.NoError(t, err)

	// Voiding returns a new value; the original is untouched.
	assert.False(t, entry.Voided)
	assert.True(t, voided.Voided)
	assert.Equal(t, "posted in error", voided.VoidReason)
	assert.Equal(t, "mgr1", voided.VoidedBy)
	assert.True(t, voided.Debit.Equal(entry.Debit))

	_, err = voided.Void("again", "mgr1")
	assert.ErrorIs(t, err, domain.ErrAlreadyVoided)

	_, err = entry.Void("   ", "mgr1")
	assert.ErrorIs(t, err, domain.ErrEmptyReason)
}

func TestLedgerEntry_WithItemization(t *testing.T) {
	now := time.Now()
	entry, err := domain.NewChargeEntry(domain.KindServiceCharge, "Laundry", decimal.NewFromInt(100000), now, "emp1")
	require.NoError(t, err)

	itemized, err := entry.WithItemization(2, decimal.NewFromInt(50000))
	require.NoError(t, err)
	assert.Equal(t, int64(2), itemized.Quantity)
	assert.True(t, itemized.UnitPrice.Equal(decimal.NewFromInt(50000)))

	// Quantity * unit price must match the posted amount.
	_, err = entry.WithItemization(3, decimal.NewFromInt(50000))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = entry.WithItemization(0, decimal.NewFromInt(50000))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestLedgerEntry_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		entry   domain.LedgerEntry
		wantErr error
	}{
		{
			name: "both sides nonzero",
			entry: domain.LedgerEntry{
				EntryID:    "e1",
				Kind:       domain.KindRoomCharge,
				Debit:      decimal.NewFromInt(100),
				Credit:     decimal.NewFromInt(100),
				OccurredAt: now,
			},
			wantErr: domain.ErrInvalidKind,
		},
		{
			name: "both sides zero",
			entry: domain.LedgerEntry{
				EntryID:    "e2",
				Kind:       domain.KindPayment,
				OccurredAt: now,
			},
			wantErr: domain.ErrInvalidKind,
		},
		{
			name: "credit on a charge kind",
			entry: domain.LedgerEntry{
				EntryID:    "e3",
				Kind:       domain.KindServiceCharge,
				Credit:     decimal.NewFromInt(100),
				OccurredAt: now,
			},
			wantErr: domain.ErrInvalidKind,
		},
		{
			name: "voided without reason",
			entry: domain.LedgerEntry{
				EntryID:    "e4",
				Kind:       domain.KindPayment,
				Credit:     decimal.NewFromInt(100),
				Voided:     true,
				OccurredAt: now,
			},
			wantErr: domain.ErrEmptyReason,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.entry.Validate(), tt.wantErr)
		})
	}
}

package billing_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/utils/billing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFolio() domain.Folio {
	checkIn := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)
	return domain.Folio{
		FolioID:      "f-001",
		CustomerName: "Nguyen Van A",
		RoomName:     "P.301",
		RoomTypeName: "Deluxe",
		RoomRate:     decimal.NewFromInt(500000),
		CheckInDate:  checkIn,
		CheckOutDate: &checkOut,
		Status:       domain.FolioOpen,
	}
}

func TestBuildSummary_ItemizedTotals(t *testing.T) {
	// Room 500,000/night x 2 nights, one service (2 x 50,000), one penalty
	// of 150,000, no surcharge.
	folio := sampleFolio()
	services := []domain.ServiceLineItem{
		{Description: "Laundry", Quantity: 2, UnitPrice: decimal.NewFromInt(50000)},
	}
	penalties := []domain.PenaltyLineItem{
		{Description: "Smoking", Amount: decimal.NewFromInt(150000)},
	}

	summary, err := billing.BuildSummary(folio, folio.RoomRate, 2, services, penalties, nil)
	require.NoError(t, err)

	assert.Equal(t, "RCPT-f-001", summary.ReceiptID)
	assert.True(t, summary.RoomTotal.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, summary.ServicesTotal.Equal(decimal.NewFromInt(100000)))
	assert.True(t, summary.PenaltiesTotal.Equal(decimal.NewFromInt(150000)))
	assert.True(t, summary.SurchargesTotal.IsZero())
	assert.True(t, summary.GrandTotal.Equal(decimal.NewFromInt(1250000)))
	require.Len(t, summary.Services, 1)
	assert.True(t, summary.Services[0].Total.Equal(decimal.NewFromInt(100000)))
}

func TestBuildSummary_VoidedPenaltyDropsFromRebuild(t *testing.T) {
	folio := sampleFolio()
	now := folio.CheckInDate

	service, err := domain.NewChargeEntry(domain.KindServiceCharge, "Laundry", decimal.NewFromInt(100000), now, "emp1")
	require.NoError(t, err)
	service, err = service.WithItemization(2, decimal.NewFromInt(50000))
	require.NoError(t, err)
	penalty, err := domain.NewChargeEntry(domain.KindPenaltyCharge, "Smoking", decimal.NewFromInt(150000), now, "emp1")
	require.NoError(t, err)

	entries := []domain.LedgerEntry{service, penalty}
	first, err := billing.BuildSummary(folio, folio.RoomRate, 2,
		domain.ServiceItems(entries), domain.PenaltyItems(entries), domain.SurchargeItems(entries))
	require.NoError(t, err)
	require.True(t, first.GrandTotal.Equal(decimal.NewFromInt(1250000)))

	voided, err := penalty.Void("guest dispute upheld", "mgr1")
	require.NoError(t, err)
	entries[1] = voided

	second, err := billing.BuildSummary(folio, folio.RoomRate, 2,
		domain.ServiceItems(entries), domain.PenaltyItems(entries), domain.SurchargeItems(entries))
	require.NoError(t, err)

	assert.True(t, second.PenaltiesTotal.IsZero())
	assert.Empty(t, second.Penalties)
	assert.True(t, second.GrandTotal.Equal(decimal.NewFromInt(1100000)))
}

func TestBuildSummary_StayBoundaries(t *testing.T) {
	folio := sampleFolio()

	_, err := billing.BuildSummary(folio, folio.RoomRate, 0, nil, nil, nil)
	assert.ErrorIs(t, err, billing.ErrInvalidStay)

	_, err = billing.BuildSummary(folio, folio.RoomRate, -1, nil, nil, nil)
	assert.ErrorIs(t, err, billing.ErrInvalidStay)

	// Free night: remaining totals still compute normally.
	penalties := []domain.PenaltyLineItem{{Description: "Late checkout", Amount: decimal.NewFromInt(200000)}}
	summary, err := billing.BuildSummary(folio, decimal.Zero, 1, nil, penalties, nil)
	require.NoError(t, err)
	assert.True(t, summary.RoomTotal.IsZero())
	assert.True(t, summary.GrandTotal.Equal(decimal.NewFromInt(200000)))
}

func TestBuildSummary_RejectsNegativeLineItems(t *testing.T) {
	folio := sampleFolio()

	_, err := billing.BuildSummary(folio, folio.RoomRate, 1,
		[]domain.ServiceLineItem{{Description: "Spa", Quantity: 1, UnitPrice: decimal.NewFromInt(-10000)}}, nil, nil)
	assert.ErrorIs(t, err, billing.ErrInvalidLineItem)

	_, err = billing.BuildSummary(folio, folio.RoomRate, 1, nil,
		[]domain.PenaltyLineItem{{Description: "Damage", Amount: decimal.NewFromInt(-1)}}, nil)
	assert.ErrorIs(t, err, billing.ErrInvalidLineItem)
}

func TestBuildSummary_ReprintIsByteIdentical(t *testing.T) {
	folio := sampleFolio()
	services := []domain.ServiceLineItem{
		{Description: "Breakfast", Quantity: 4, UnitPrice: decimal.NewFromInt(80000)},
	}

	first, err := billing.BuildSummary(folio, folio.RoomRate, 2, services, nil, nil)
	require.NoError(t, err)
	second, err := billing.BuildSummary(folio, folio.RoomRate, 2, services, nil, nil)
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestAddAdHocCharge(t *testing.T) {
	folio := sampleFolio()
	base, err := billing.BuildSummary(folio, folio.RoomRate, 2, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, base.GrandTotal.Equal(decimal.NewFromInt(1000000)))

	withService, err := billing.AddAdHocCharge(base, domain.KindServiceCharge, "Airport taxi", decimal.NewFromInt(250000))
	require.NoError(t, err)
	assert.True(t, withService.ServicesTotal.Equal(decimal.NewFromInt(250000)))
	assert.True(t, withService.GrandTotal.Equal(decimal.NewFromInt(1250000)))
	require.Len(t, withService.Services, 1)

	// The input summary is untouched.
	assert.True(t, base.ServicesTotal.IsZero())
	assert.Empty(t, base.Services)

	withSurcharge, err := billing.AddAdHocCharge(withService, domain.KindSurcharge, "Holiday surcharge", decimal.NewFromInt(100000))
	require.NoError(t, err)
	assert.True(t, withSurcharge.SurchargesTotal.Equal(decimal.NewFromInt(100000)))
	assert.True(t, withSurcharge.GrandTotal.Equal(decimal.NewFromInt(1350000)))

	_, err = billing.AddAdHocCharge(base, domain.KindPayment, "not a charge", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrInvalidKind)

	_, err = billing.AddAdHocCharge(base, domain.KindPenaltyCharge, "negative", decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, billing.ErrInvalidLineItem)
}

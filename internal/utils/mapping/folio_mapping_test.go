package mapping_test

import (
	"testing"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelFolio_OpenStayHasNullCheckout(t *testing.T) {
	// An open folio carries no checkout date; the column it maps to must
	// accept NULL or every check-in insert would fail.
	open := domain.Folio{
		FolioID:      "folio-1",
		CustomerName: "Nguyen Van A",
		RoomID:       "room-1",
		RoomRate:     decimal.NewFromInt(650000),
		CheckInDate:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		Status:       domain.FolioOpen,
	}

	m := mapping.ToModelFolio(open)

	assert.False(t, m.CheckOutDate.Valid, "open stay must map to a NULL checkout")
	assert.Equal(t, open.CheckInDate, m.CheckInDate)
}

func TestFolioMapping_CheckoutRoundTrip(t *testing.T) {
	checkOut := time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC)
	closed := domain.Folio{
		FolioID:      "folio-1",
		CustomerName: "Nguyen Van A",
		RoomID:       "room-1",
		RoomRate:     decimal.NewFromInt(650000),
		CheckInDate:  time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		CheckOutDate: &checkOut,
		Status:       domain.FolioClosed,
	}

	back := mapping.ToDomainFolio(mapping.ToModelFolio(closed))

	require.NotNil(t, back.CheckOutDate)
	assert.Equal(t, checkOut, *back.CheckOutDate)
	assert.Equal(t, domain.FolioClosed, back.Status)

	// And the reverse direction for an open stay.
	open := closed
	open.CheckOutDate = nil
	open.Status = domain.FolioOpen
	assert.Nil(t, mapping.ToDomainFolio(mapping.ToModelFolio(open)).CheckOutDate)
}

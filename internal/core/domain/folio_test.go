package domain_test

import (
	"testing"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFolio_Nights(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	folio := domain.Folio{CheckInDate: checkIn}

	testCases := []struct {
		name     string
		checkOut time.Time
		expected int
	}{
		{
			// Checkout time is earlier in the day than check-in, the normal
			// hotel pattern. Two nights were slept, two nights are owed.
			name:     "early checkout after two nights",
			checkOut: time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "one night with early checkout",
			checkOut: time.Date(2026, 3, 11, 11, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "same-day checkout is one night",
			checkOut: time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "late checkout same calendar day counts no extra night",
			checkOut: time.Date(2026, 3, 12, 23, 30, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "exactly 24 hours",
			checkOut: time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "checkout before check-in clamps to one night",
			checkOut: time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "week-long stay",
			checkOut: time.Date(2026, 3, 17, 12, 0, 0, 0, time.UTC),
			expected: 7,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, folio.Nights(tc.checkOut))
		})
	}
}

func TestFolio_NightsNormalizesZones(t *testing.T) {
	// Check-in recorded in a non-UTC zone must not shift the night count.
	ict := time.FixedZone("ICT", 7*60*60)
	folio := domain.Folio{CheckInDate: time.Date(2026, 3, 10, 21, 0, 0, 0, ict)} // 14:00 UTC

	checkOut := time.Date(2026, 3, 12, 11, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, folio.Nights(checkOut))
}

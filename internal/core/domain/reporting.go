package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueRow is one day of posted revenue broken down by entry kind.
// Voided entries are excluded, mirroring the balance engine rules.
type RevenueRow struct {
	Date            time.Time       `json:"date"`
	RoomRevenue     decimal.Decimal `json:"roomRevenue"`
	ServiceRevenue  decimal.Decimal `json:"serviceRevenue"`
	PenaltyRevenue  decimal.Decimal `json:"penaltyRevenue"`
	SurchargeRevenue decimal.Decimal `json:"surchargeRevenue"`
	Payments        decimal.Decimal `json:"payments"`
	Refunds         decimal.Decimal `json:"refunds"`
}

// TotalCharges returns the debit-side sum of the row.
func (r RevenueRow) TotalCharges() decimal.Decimal {
	return r.RoomRevenue.Add(r.ServiceRevenue).Add(r.PenaltyRevenue).Add(r.SurchargeRevenue)
}

// OccupancySnapshot summarizes room occupancy at a point in time.
type OccupancySnapshot struct {
	AsOf           time.Time `json:"asOf"`
	TotalRooms     int       `json:"totalRooms"`
	OccupiedRooms  int       `json:"occupiedRooms"`
	AvailableRooms int       `json:"availableRooms"`
	OpenFolios     int       `json:"openFolios"`
}

package dto

import (
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RevenueRowResponse represents one day in the daily revenue report response
type RevenueRowResponse struct {
	Date             string          `json:"date"` // YYYY-MM-DD
	RoomRevenue      decimal.Decimal `json:"roomRevenue"`
	ServiceRevenue   decimal.Decimal `json:"serviceRevenue"`
	PenaltyRevenue   decimal.Decimal `json:"penaltyRevenue"`
	SurchargeRevenue decimal.Decimal `json:"surchargeRevenue"`
	Payments         decimal.Decimal `json:"payments"`
	Refunds          decimal.Decimal `json:"refunds"`
	TotalCharges     decimal.Decimal `json:"totalCharges"`
}

// DailyRevenueResponse represents the daily revenue report response
type DailyRevenueResponse struct {
	FromDate string               `json:"fromDate"`
	ToDate   string               `json:"toDate"`
	Rows     []RevenueRowResponse `json:"rows"`
	Summary  struct {
		TotalCharges  decimal.Decimal `json:"totalCharges"`
		TotalPayments decimal.Decimal `json:"totalPayments"`
		TotalRefunds  decimal.Decimal `json:"totalRefunds"`
	} `json:"summary"`
}

// ToDailyRevenueResponse converts domain revenue rows to the report response
func ToDailyRevenueResponse(fromDate, toDate string, rows []domain.RevenueRow) DailyRevenueResponse {
	resp := DailyRevenueResponse{
		FromDate: fromDate,
		ToDate:   toDate,
		Rows:     make([]RevenueRowResponse, len(rows)),
	}
	totalCharges := decimal.Zero
	totalPayments := decimal.Zero
	totalRefunds := decimal.Zero
	for i, r := range rows {
		rowCharges := r.TotalCharges()
		resp.Rows[i] = RevenueRowResponse{
			Date:             r.Date.Format("2006-01-02"),
			RoomRevenue:      r.RoomRevenue,
			ServiceRevenue:   r.ServiceRevenue,
			PenaltyRevenue:   r.PenaltyRevenue,
			SurchargeRevenue: r.SurchargeRevenue,
			Payments:         r.Payments,
			Refunds:          r.Refunds,
			TotalCharges:     rowCharges,
		}
		totalCharges = totalCharges.Add(rowCharges)
		totalPayments = totalPayments.Add(r.Payments)
		totalRefunds = totalRefunds.Add(r.Refunds)
	}
	resp.Summary.TotalCharges = totalCharges
	resp.Summary.TotalPayments = totalPayments
	resp.Summary.TotalRefunds = totalRefunds
	return resp
}

// OccupancyResponse represents the occupancy snapshot response
type OccupancyResponse struct {
	AsOf           string `json:"asOf"`
	TotalRooms     int    `json:"totalRooms"`
	OccupiedRooms  int    `json:"occupiedRooms"`
	AvailableRooms int    `json:"availableRooms"`
	OpenFolios     int    `json:"openFolios"`
}

// ToOccupancyResponse converts a domain.OccupancySnapshot to OccupancyResponse
func ToOccupancyResponse(s domain.OccupancySnapshot) OccupancyResponse {
	return OccupancyResponse{
		AsOf:           s.AsOf.Format("2006-01-02"),
		TotalRooms:     s.TotalRooms,
		OccupiedRooms:  s.OccupiedRooms,
		AvailableRooms: s.AvailableRooms,
		OpenFolios:     s.OpenFolios,
	}
}

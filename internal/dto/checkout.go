package dto

import (
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ServiceLineItemResponse is an itemized service line on a receipt.
type ServiceLineItemResponse struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// AmountLineItemResponse is a flat-amount line on a receipt (penalties, surcharges).
type AmountLineItemResponse struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CheckoutSummaryResponse defines the printable checkout summary for a folio.
type CheckoutSummaryResponse struct {
	ReceiptID    string          `json:"receiptID"`
	CustomerName string          `json:"customerName"`
	RoomName     string          `json:"roomName"`
	RoomTypeName string          `json:"roomTypeName"`
	CheckInDate  time.Time       `json:"checkInDate"`
	CheckOutDate *time.Time      `json:"checkOutDate,omitempty"`
	Nights       int             `json:"nights"`
	RoomRate     decimal.Decimal `json:"roomRate"`

	RoomTotal       decimal.Decimal `json:"roomTotal"`
	ServicesTotal   decimal.Decimal `json:"servicesTotal"`
	PenaltiesTotal  decimal.Decimal `json:"penaltiesTotal"`
	SurchargesTotal decimal.Decimal `json:"surchargesTotal"`
	GrandTotal      decimal.Decimal `json:"grandTotal"`

	Services   []ServiceLineItemResponse `json:"services"`
	Penalties  []AmountLineItemResponse  `json:"penalties"`
	Surcharges []AmountLineItemResponse  `json:"surcharges"`
}

// ToCheckoutSummaryResponse converts a domain.CheckoutSummary to its DTO.
func ToCheckoutSummaryResponse(s *domain.CheckoutSummary) CheckoutSummaryResponse {
	services := make([]ServiceLineItemResponse, len(s.Services))
	for i, item := range s.Services {
		services[i] = ServiceLineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		}
	}
	penalties := make([]AmountLineItemResponse, len(s.Penalties))
	for i, item := range s.Penalties {
		penalties[i] = AmountLineItemResponse{Description: item.Description, Amount: item.Amount}
	}
	surcharges := make([]AmountLineItemResponse, len(s.Surcharges))
	for i, item := range s.Surcharges {
		surcharges[i] = AmountLineItemResponse{Description: item.Description, Amount: item.Amount}
	}
	return CheckoutSummaryResponse{
		ReceiptID:       s.ReceiptID,
		CustomerName:    s.CustomerName,
		RoomName:        s.RoomName,
		RoomTypeName:    s.RoomTypeName,
		CheckInDate:     s.CheckInDate,
		CheckOutDate:    s.CheckOutDate,
		Nights:          s.Nights,
		RoomRate:        s.RoomRate,
		RoomTotal:       s.RoomTotal,
		ServicesTotal:   s.ServicesTotal,
		PenaltiesTotal:  s.PenaltiesTotal,
		SurchargesTotal: s.SurchargesTotal,
		GrandTotal:      s.GrandTotal,
		Services:        services,
		Penalties:       penalties,
		Surcharges:      surcharges,
	}
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceLineItem is a read-only itemized view of a SERVICE_CHARGE entry.
type ServiceLineItem struct {
	Description string          `json:"description"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"` // Quantity * UnitPrice
}

// PenaltyLineItem is a read-only view of a PENALTY_CHARGE entry.
type PenaltyLineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// SurchargeLineItem is a read-only view of a SURCHARGE entry. Percentage
// surcharges are resolved to a flat amount before this projection exists.
type SurchargeLineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// CheckoutSummary is an assembled, immutable snapshot of a folio for billing
// and printing. It carries no timestamp: the print date belongs to the
// surrounding document, so identical inputs always produce identical summaries
// and a reprint is exact.
type CheckoutSummary struct {
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

	Services   []ServiceLineItem   `json:"services"`
	Penalties  []PenaltyLineItem   `json:"penalties"`
	Surcharges []SurchargeLineItem `json:"surcharges"`
}

// ServiceItems projects the non-voided SERVICE_CHARGE entries into line items.
func ServiceItems(entries []LedgerEntry) []ServiceLineItem {
	items := make([]ServiceLineItem, 0)
	for _, e := range entries {
		if e.Voided || e.Kind != KindServiceCharge {
			continue
		}
		items = append(items, ServiceLineItem{
			Description: e.Description,
			Quantity:    e.Quantity,
			UnitPrice:   e.UnitPrice,
			Total:       e.UnitPrice.Mul(decimal.NewFromInt(e.Quantity)),
		})
	}
	return items
}

// PenaltyItems projects the non-voided PENALTY_CHARGE entries into line items.
func PenaltyItems(entries []LedgerEntry) []PenaltyLineItem {
	items := make([]PenaltyLineItem, 0)
	for _, e := range entries {
		if e.Voided || e.Kind != KindPenaltyCharge {
			continue
		}
		items = append(items, PenaltyLineItem{Description: e.Description, Amount: e.Debit})
	}
	return items
}

// SurchargeItems projects the non-voided SURCHARGE entries into line items.
func SurchargeItems(entries []LedgerEntry) []SurchargeLineItem {
	items := make([]SurchargeLineItem, 0)
	for _, e := range entries {
		if e.Voided || e.Kind != KindSurcharge {
			continue
		}
		items = append(items, SurchargeLineItem{Description: e.Description, Amount: e.Debit})
	}
	return items
}

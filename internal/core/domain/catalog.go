package domain

import "github.com/shopspring/decimal"

// ServiceItem is a chargeable hotel service offered to guests (laundry,
// minibar, spa, ...). Usage posts SERVICE_CHARGE entries priced from here.
type ServiceItem struct {
	ServiceID string          `json:"serviceID"` // Primary Key (UUID)
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Unit      string          `json:"unit"` // Display unit, e.g. "lần", "kg"
	IsActive  bool            `json:"isActive"`
	AuditFields
}

// PenaltyType is a predefined penalty with a flat amount (lost key, smoking,
// damaged property, ...).
type PenaltyType struct {
	PenaltyTypeID string          `json:"penaltyTypeID"` // Primary Key (UUID)
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	IsActive      bool            `json:"isActive"`
	AuditFields
}

// SurchargeType is a predefined surcharge. It is either a flat amount or a
// percentage rate of a base (typically the room total); percentage surcharges
// are resolved to a flat amount at posting time, before any entry exists.
type SurchargeType struct {
	SurchargeTypeID string           `json:"surchargeTypeID"` // Primary Key (UUID)
	Name            string           `json:"name"`
	Amount          *decimal.Decimal `json:"amount,omitempty"` // Flat amount; nil for percentage surcharges
	Rate            *decimal.Decimal `json:"rate,omitempty"`   // Percentage (e.g. 10 = 10%); nil for flat surcharges
	IsActive        bool             `json:"isActive"`
	AuditFields
}

// IsPercentage reports whether the surcharge is rate-based.
func (s SurchargeType) IsPercentage() bool {
	return s.Rate != nil
}

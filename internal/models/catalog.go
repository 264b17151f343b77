package models

import (
	"github.com/shopspring/decimal"
)

// ServiceItem is a billable service from the hotel's catalog.
type ServiceItem struct {
	ServiceID string          `db:"service_id"`
	Name      string          `db:"name"`
	UnitPrice decimal.Decimal `db:"unit_price"`
	Unit      string          `db:"unit"` // e.g. "item", "hour", "kg"
	IsActive  bool            `db:"is_active"`
	AuditFields
}

// PenaltyType is a predefined penalty with a fixed amount.
type PenaltyType struct {
	PenaltyTypeID string          `db:"penalty_type_id"`
	Name          string          `db:"name"`
	Amount        decimal.Decimal `db:"amount"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}

// SurchargeType is a predefined surcharge, either a fixed amount or a
// fractional rate applied to the folio's charge total. Exactly one of
// Amount/Rate is set.
type SurchargeType struct {
	SurchargeTypeID string           `db:"surcharge_type_id"`
	Name            string           `db:"name"`
	Amount          *decimal.Decimal `db:"amount"` // Nullable
	Rate            *decimal.Decimal `db:"rate"`   // Nullable
	IsActive        bool             `db:"is_active"`
	AuditFields
}

package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger entry line.
type EntryKind string

const (
	RoomCharge    EntryKind = "ROOM_CHARGE"
	ServiceCharge EntryKind = "SERVICE_CHARGE"
	PenaltyCharge EntryKind = "PENALTY_CHARGE"
	Surcharge     EntryKind = "SURCHARGE"
	Payment       EntryKind = "PAYMENT"
	Refund        EntryKind = "REFUND"
)

// LedgerEntry represents a single debit or credit line on a folio.
// Exactly one of Debit/Credit is non-zero; the other is stored as zero.
type LedgerEntry struct {
	EntryID     string          `db:"entry_id"`
	FolioID     string          `db:"folio_id"`
	Kind        EntryKind       `db:"kind"`
	Description string          `db:"description"`
	Debit       decimal.Decimal `db:"debit"`
	Credit      decimal.Decimal `db:"credit"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
	OccurredAt  time.Time       `db:"occurred_at"`
	PostedBy    string          `db:"posted_by"`
	Voided      bool            `db:"voided"`
	VoidReason  sql.NullString  `db:"void_reason"`
	VoidedBy    sql.NullString  `db:"voided_by"`
	AuditFields
}

package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind classifies a folio ledger line.
type EntryKind string

const (
	KindRoomCharge    EntryKind = "ROOM_CHARGE"
	KindServiceCharge EntryKind = "SERVICE_CHARGE"
	KindPenaltyCharge EntryKind = "PENALTY_CHARGE"
	KindSurcharge     EntryKind = "SURCHARGE"
	KindPayment       EntryKind = "PAYMENT"
	KindRefund        EntryKind = "REFUND"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrInvalidKind   = errors.New("entry kind is not valid for this operation")
	ErrAlreadyVoided = errors.New("entry is already voided")
	ErrEmptyReason   = errors.New("void reason must not be blank")
)

// IsCharge reports whether the kind posts to the debit side of a folio.
func (k EntryKind) IsCharge() bool {
	switch k {
	case KindRoomCharge, KindServiceCharge, KindPenaltyCharge, KindSurcharge:
		return true
	}
	return false
}

// IsPayment reports whether the kind posts to the credit side of a folio.
func (k EntryKind) IsPayment() bool {
	return k == KindPayment || k == KindRefund
}

// IsValid reports whether the kind is one of the closed set of entry kinds.
func (k EntryKind) IsValid() bool {
	return k.IsCharge() || k.IsPayment()
}

// LedgerEntry is one transaction line in a guest folio. Entries are immutable
// once created; voiding produces a new value so posted history is never
// rewritten in place.
type LedgerEntry struct {
	EntryID     string          `json:"entryID"` // Primary Key (UUID)
	FolioID     string          `json:"folioID"` // FK -> Folio.folioID
	Kind        EntryKind       `json:"kind"`
	Description string          `json:"description"`
	Debit       decimal.Decimal `json:"debit"`  // Nonzero only for charge kinds
	Credit      decimal.Decimal `json:"credit"` // Nonzero only for payment/refund kinds
	Quantity    int64           `json:"quantity"`  // Itemization detail; 1 for flat charges
	UnitPrice   decimal.Decimal `json:"unitPrice"` // Quantity * UnitPrice == Debit for charges
	OccurredAt  time.Time       `json:"occurredAt"`
	PostedBy    string          `json:"postedBy"` // UserID of the posting staff member
	Voided      bool            `json:"voided"`
	VoidReason  string          `json:"voidReason,omitempty"` // Set only when Voided
	VoidedBy    string          `json:"voidedBy,omitempty"`   // Set only when Voided
	AuditFields
}

// NewChargeEntry constructs a debit-side entry for one of the charge kinds.
func NewChargeEntry(kind EntryKind, description string, amount decimal.Decimal, occurredAt time.Time, postedBy string) (LedgerEntry, error) {
	if !kind.IsCharge() {
		return LedgerEntry{}, ErrInvalidKind
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return LedgerEntry{}, ErrInvalidAmount
	}
	return LedgerEntry{
		EntryID:     uuid.NewString(),
		Kind:        kind,
		Description: description,
		Debit:       amount,
		Credit:      decimal.Zero,
		Quantity:    1,
		UnitPrice:   amount,
		OccurredAt:  occurredAt,
		PostedBy:    postedBy,
	}, nil
}

// NewPaymentEntry constructs a credit-side entry for PAYMENT or REFUND.
func NewPaymentEntry(kind EntryKind, amount decimal.Decimal, occurredAt time.Time, postedBy string) (LedgerEntry, error) {
	if !kind.IsPayment() {
		return LedgerEntry{}, ErrInvalidKind
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return LedgerEntry{}, ErrInvalidAmount
	}
	return LedgerEntry{
		EntryID:    uuid.NewString(),
		Kind:       kind,
		Debit:      decimal.Zero,
		Credit:     amount,
		Quantity:   1,
		UnitPrice:  amount,
		OccurredAt: occurredAt,
		PostedBy:   postedBy,
	}, nil
}

// WithItemization returns a copy of the entry carrying quantity and unit price
// detail for itemized display. Quantity * unitPrice must equal the entry amount.
func (e LedgerEntry) WithItemization(quantity int64, unitPrice decimal.Decimal) (LedgerEntry, error) {
	if quantity <= 0 || unitPrice.IsNegative() {
		return LedgerEntry{}, ErrInvalidAmount
	}
	total := unitPrice.Mul(decimal.NewFromInt(quantity))
	if !total.Equal(e.Amount()) {
		return LedgerEntry{}, ErrInvalidAmount
	}
	e.Quantity = quantity
	e.UnitPrice = unitPrice
	return e, nil
}

// Void returns a new entry marked voided. The original value is untouched so
// the audit trail keeps the posted line.
func (e LedgerEntry) Void(reason string, voidedBy string) (LedgerEntry, error) {
	if e.Voided {
		return LedgerEntry{}, ErrAlreadyVoided
	}
	if strings.TrimSpace(reason) == "" {
		return LedgerEntry{}, ErrEmptyReason
	}
	e.Voided = true
	e.VoidReason = reason
	e.VoidedBy = voidedBy
	return e, nil
}

// Amount returns the nonzero side of the entry.
func (e LedgerEntry) Amount() decimal.Decimal {
	if e.Kind.IsPayment() {
		return e.Credit
	}
	return e.Debit
}

// Validate checks the structural invariants of an entry: exactly one of
// debit/credit is nonzero, both are non-negative, and a voided entry carries
// a reason.
func (e LedgerEntry) Validate() error {
	if !e.Kind.IsValid() {
		return ErrInvalidKind
	}
	if e.Debit.IsNegative() || e.Credit.IsNegative() {
		return ErrInvalidAmount
	}
	debitSet := !e.Debit.IsZero()
	creditSet := !e.Credit.IsZero()
	if debitSet == creditSet {
		// Either both sides set or both zero; an entry is a charge or a
		// payment, never both and never neither.
		return ErrInvalidKind
	}
	if debitSet && !e.Kind.IsCharge() {
		return ErrInvalidKind
	}
	if creditSet && !e.Kind.IsPayment() {
		return ErrInvalidKind
	}
	if e.Voided && strings.TrimSpace(e.VoidReason) == "" {
		return ErrEmptyReason
	}
	return nil
}

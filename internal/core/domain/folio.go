package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FolioStatus indicates the lifecycle state of a folio.
// The only legal transition is OPEN -> CLOSED.
type FolioStatus string

const (
	FolioOpen   FolioStatus = "OPEN"
	FolioClosed FolioStatus = "CLOSED"
)

// Folio is the ledger container for one room-stay.
type Folio struct {
	FolioID      string        `json:"folioID"` // Primary Key (UUID)
	CustomerName string        `json:"customerName"`
	RoomID       string        `json:"roomID"` // FK -> Room.roomID
	RoomName     string        `json:"roomName"`
	RoomTypeName string        `json:"roomTypeName"`
	RoomRate     decimal.Decimal `json:"roomRate"` // Nightly rate captured at check-in
	CheckInDate  time.Time     `json:"checkInDate"`
	CheckOutDate *time.Time    `json:"checkOutDate,omitempty"` // Nil while the stay is open
	Status       FolioStatus   `json:"status"`
	Entries      []LedgerEntry `json:"entries,omitempty"` // Insertion order = posting order
	AuditFields
}

// FolioTotals holds the derived debit/credit/balance of a folio.
// Never stored; always recomputed from entries.
type FolioTotals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"` // TotalDebit - TotalCredit
}

// GuestOwes reports whether the folio carries an outstanding amount.
// Balance > 0 means the guest owes; < 0 means the house owes a refund.
func (t FolioTotals) GuestOwes() bool {
	return t.Balance.IsPositive()
}

// Settled reports whether the folio balances to exactly zero.
func (t FolioTotals) Settled() bool {
	return t.Balance.IsZero()
}

// Nights returns the number of nights between check-in and the given checkout
// date, counted in calendar days so a late check-in followed by an early
// checkout still charges every night slept. A same-day checkout is one night.
func (f Folio) Nights(checkOut time.Time) int {
	in := f.CheckInDate.UTC()
	out := checkOut.UTC()
	inDay := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, time.UTC)
	outDay := time.Date(out.Year(), out.Month(), out.Day(), 0, 0, 0, 0, time.UTC)
	nights := int(outDay.Sub(inDay).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return nights
}

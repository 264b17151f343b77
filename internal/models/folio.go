package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// FolioStatus indicates the lifecycle state of a folio.
type FolioStatus string

const (
	FolioOpen   FolioStatus = "OPEN"
	FolioClosed FolioStatus = "CLOSED"
)

// Folio represents a guest's stay and the account its charges post against.
// Entries are loaded separately.
type Folio struct {
	FolioID      string          `db:"folio_id"`
	CustomerName string          `db:"customer_name"`
	RoomID       string          `db:"room_id"`
	RoomRate     decimal.Decimal `db:"room_rate"` // nightly rate captured at check-in
	CheckInDate  time.Time       `db:"check_in_date"`
	CheckOutDate sql.NullTime    `db:"check_out_date"`
	Status       FolioStatus     `db:"status"`
	AuditFields
}

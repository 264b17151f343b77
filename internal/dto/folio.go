package dto

import (
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenFolioRequest defines the data needed to open a folio (guest check-in).
type OpenFolioRequest struct {
	CustomerName string     `json:"customerName" binding:"required"`
	RoomID       string     `json:"roomID" binding:"required"`
	CheckInDate  *time.Time `json:"checkInDate"` // Optional, defaults to now
}

// FolioResponse defines the data returned for a folio.
type FolioResponse struct {
	FolioID      string             `json:"folioID"`
	CustomerName string             `json:"customerName"`
	RoomID       string             `json:"roomID"`
	RoomName     string             `json:"roomName"`
	RoomTypeName string             `json:"roomTypeName"`
	RoomRate     decimal.Decimal    `json:"roomRate"`
	CheckInDate  time.Time          `json:"checkInDate"`
	CheckOutDate *time.Time         `json:"checkOutDate,omitempty"`
	Status       domain.FolioStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	CreatedBy    string             `json:"createdBy"`
}

// ToFolioResponse converts a domain.Folio to FolioResponse DTO
func ToFolioResponse(f *domain.Folio) FolioResponse {
	return FolioResponse{
		FolioID:      f.FolioID,
		CustomerName: f.CustomerName,
		RoomID:       f.RoomID,
		RoomName:     f.RoomName,
		RoomTypeName: f.RoomTypeName,
		RoomRate:     f.RoomRate,
		CheckInDate:  f.CheckInDate,
		CheckOutDate: f.CheckOutDate,
		Status:       f.Status,
		CreatedAt:    f.CreatedAt,
		CreatedBy:    f.CreatedBy,
	}
}

// ListFoliosParams defines query parameters for listing folios.
type ListFoliosParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=OPEN CLOSED"`
	Limit     int    `form:"limit,default=20"`
	NextToken string `form:"nextToken"`
}

// ListFoliosResponse wraps the list of folios with the pagination token.
type ListFoliosResponse struct {
	Folios    []FolioResponse `json:"folios"`
	NextToken *string         `json:"nextToken,omitempty"`
}

// ToListFoliosResponse converts a slice of domain.Folio to ListFoliosResponse
func ToListFoliosResponse(folios []domain.Folio, nextToken *string) ListFoliosResponse {
	res := make([]FolioResponse, len(folios))
	for i, f := range folios {
		res[i] = ToFolioResponse(&f)
	}
	return ListFoliosResponse{Folios: res, NextToken: nextToken}
}

// LedgerEntryResponse defines the data returned for a single ledger entry.
type LedgerEntryResponse struct {
	EntryID     string           `json:"entryID"`
	FolioID     string           `json:"folioID"`
	Kind        domain.EntryKind `json:"kind"`
	Description string           `json:"description"`
	Debit       decimal.Decimal  `json:"debit"`
	Credit      decimal.Decimal  `json:"credit"`
	Quantity    int64            `json:"quantity"`
	UnitPrice   decimal.Decimal  `json:"unitPrice"`
	OccurredAt  time.Time        `json:"occurredAt"`
	PostedBy    string           `json:"postedBy"`
	Voided      bool             `json:"voided"`
	VoidReason  string           `json:"voidReason,omitempty"`
	VoidedBy    string           `json:"voidedBy,omitempty"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:     e.EntryID,
		FolioID:     e.FolioID,
		Kind:        e.Kind,
		Description: e.Description,
		Debit:       e.Debit,
		Credit:      e.Credit,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		OccurredAt:  e.OccurredAt,
		PostedBy:    e.PostedBy,
		Voided:      e.Voided,
		VoidReason:  e.VoidReason,
		VoidedBy:    e.VoidedBy,
	}
}

// ToLedgerEntryResponses converts a slice of domain.LedgerEntry to []LedgerEntryResponse
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i, e := range entries {
		responses[i] = ToLedgerEntryResponse(&e)
	}
	return responses
}

// ListEntriesParams defines query parameters for listing a folio's entries.
type ListEntriesParams struct {
	IncludeVoided bool   `form:"includeVoided,default=true"`
	Limit         int    `form:"limit,default=50"`
	NextToken     string `form:"nextToken"`
}

// ListEntriesResponse wraps the list of entries with the pagination token.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// PostChargeRequest defines the data needed to post a charge entry.
// Quantity/UnitPrice are optional itemization; when given their product must
// equal Amount.
type PostChargeRequest struct {
	Kind        domain.EntryKind `json:"kind" binding:"required,entrykind=charge"`
	Description string           `json:"description" binding:"required"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
	Quantity    *int64           `json:"quantity"`
	UnitPrice   *decimal.Decimal `json:"unitPrice"`
	OccurredAt  *time.Time       `json:"occurredAt"` // Optional, defaults to now
}

// PostPaymentRequest defines the data needed to post a payment or refund entry.
type PostPaymentRequest struct {
	Kind       domain.EntryKind `json:"kind" binding:"required,entrykind=payment"`
	Amount     decimal.Decimal  `json:"amount" binding:"required"`
	OccurredAt *time.Time       `json:"occurredAt"` // Optional, defaults to now
}

// VoidEntryRequest defines the data needed to void a ledger entry.
type VoidEntryRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CloseFolioRequest defines the data for closing a folio.
// Force allows managers to close a folio with an outstanding balance.
type CloseFolioRequest struct {
	Force bool `json:"force"`
}

// FolioTotalsResponse defines the derived totals of a folio.
type FolioTotalsResponse struct {
	FolioID     string          `json:"folioID"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balance     decimal.Decimal `json:"balance"`
}

// ToFolioTotalsResponse converts domain.FolioTotals to FolioTotalsResponse DTO
func ToFolioTotalsResponse(folioID string, t domain.FolioTotals) FolioTotalsResponse {
	return FolioTotalsResponse{
		FolioID:     folioID,
		TotalDebit:  t.TotalDebit,
		TotalCredit: t.TotalCredit,
		Balance:     t.Balance,
	}
}

// AddAdHocChargeRequest defines a charge appended to an already built
// checkout summary (late minibar finds and the like).
type AddAdHocChargeRequest struct {
	Kind        domain.EntryKind `json:"kind" binding:"required,entrykind=charge"`
	Description string           `json:"description" binding:"required"`
	Amount      decimal.Decimal  `json:"amount" binding:"required"`
}

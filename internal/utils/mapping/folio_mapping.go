package mapping

import (
	"database/sql"
	"time"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/models"
)

// ToModelFolio converts a domain Folio to a model Folio
func ToModelFolio(d domain.Folio) models.Folio {
	checkOut := sql.NullTime{}
	if d.CheckOutDate != nil {
		checkOut = sql.NullTime{Time: *d.CheckOutDate, Valid: true}
	}
	return models.Folio{
		FolioID:      d.FolioID,
		CustomerName: d.CustomerName,
		RoomID:       d.RoomID,
		RoomRate:     d.RoomRate,
		CheckInDate:  d.CheckInDate,
		CheckOutDate: checkOut,
		Status:       models.FolioStatus(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainFolio converts a model Folio to a domain Folio.
// Entries and room names are attached by the caller.
func ToDomainFolio(m models.Folio) domain.Folio {
	var checkOut *time.Time
	if m.CheckOutDate.Valid {
		t := m.CheckOutDate.Time
		checkOut = &t
	}
	return domain.Folio{
		FolioID:      m.FolioID,
		CustomerName: m.CustomerName,
		RoomID:       m.RoomID,
		RoomRate:     m.RoomRate,
		CheckInDate:  m.CheckInDate,
		CheckOutDate: checkOut,
		Status:       domain.FolioStatus(m.Status),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainFolioSlice converts a slice of model Folios to a slice of domain Folios
func ToDomainFolioSlice(ms []models.Folio) []domain.Folio {
	ds := make([]domain.Folio, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainFolio(m)
	}
	return ds
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	voidReason := sql.NullString{}
	if d.VoidReason != "" {
		voidReason = sql.NullString{String: d.VoidReason, Valid: true}
	}
	voidedBy := sql.NullString{}
	if d.VoidedBy != "" {
		voidedBy = sql.NullString{String: d.VoidedBy, Valid: true}
	}
	return models.LedgerEntry{
		EntryID:     d.EntryID,
		FolioID:     d.FolioID,
		Kind:        models.EntryKind(d.Kind),
		Description: d.Description,
		Debit:       d.Debit,
		Credit:      d.Credit,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
		OccurredAt:  d.OccurredAt,
		PostedBy:    d.PostedBy,
		Voided:      d.Voided,
		VoidReason:  voidReason,
		VoidedBy:    voidedBy,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:     m.EntryID,
		FolioID:     m.FolioID,
		Kind:        domain.EntryKind(m.Kind),
		Description: m.Description,
		Debit:       m.Debit,
		Credit:      m.Credit,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		OccurredAt:  m.OccurredAt,
		PostedBy:    m.PostedBy,
		Voided:      m.Voided,
		VoidReason:  m.VoidReason.String,
		VoidedBy:    m.VoidedBy.String,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

package mapping

import (
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/models"
)

// ToModelServiceItem converts a domain ServiceItem to a model ServiceItem
func ToModelServiceItem(d domain.ServiceItem) models.ServiceItem {
	return models.ServiceItem{
		ServiceID:   d.ServiceID,
		Name:        d.Name,
		UnitPrice:   d.UnitPrice,
		Unit:        d.Unit,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainServiceItem converts a model ServiceItem to a domain ServiceItem
func ToDomainServiceItem(m models.ServiceItem) domain.ServiceItem {
	return domain.ServiceItem{
		ServiceID:   m.ServiceID,
		Name:        m.Name,
		UnitPrice:   m.UnitPrice,
		Unit:        m.Unit,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainServiceItemSlice converts a slice of model ServiceItems to domain ServiceItems
func ToDomainServiceItemSlice(ms []models.ServiceItem) []domain.ServiceItem {
	ds := make([]domain.ServiceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainServiceItem(m)
	}
	return ds
}

// ToModelPenaltyType converts a domain PenaltyType to a model PenaltyType
func ToModelPenaltyType(d domain.PenaltyType) models.PenaltyType {
	return models.PenaltyType{
		PenaltyTypeID: d.PenaltyTypeID,
		Name:          d.Name,
		Amount:        d.Amount,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPenaltyType converts a model PenaltyType to a domain PenaltyType
func ToDomainPenaltyType(m models.PenaltyType) domain.PenaltyType {
	return domain.PenaltyType{
		PenaltyTypeID: m.PenaltyTypeID,
		Name:          m.Name,
		Amount:        m.Amount,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPenaltyTypeSlice converts a slice of model PenaltyTypes to domain PenaltyTypes
func ToDomainPenaltyTypeSlice(ms []models.PenaltyType) []domain.PenaltyType {
	ds := make([]domain.PenaltyType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPenaltyType(m)
	}
	return ds
}

// ToModelSurchargeType converts a domain SurchargeType to a model SurchargeType
func ToModelSurchargeType(d domain.SurchargeType) models.SurchargeType {
	return models.SurchargeType{
		SurchargeTypeID: d.SurchargeTypeID,
		Name:            d.Name,
		Amount:          d.Amount,
		Rate:            d.Rate,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSurchargeType converts a model SurchargeType to a domain SurchargeType
func ToDomainSurchargeType(m models.SurchargeType) domain.SurchargeType {
	return domain.SurchargeType{
		SurchargeTypeID: m.SurchargeTypeID,
		Name:            m.Name,
		Amount:          m.Amount,
		Rate:            m.Rate,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSurchargeTypeSlice converts a slice of model SurchargeTypes to domain SurchargeTypes
func ToDomainSurchargeTypeSlice(ms []models.SurchargeType) []domain.SurchargeType {
	ds := make([]domain.SurchargeType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSurchargeType(m)
	}
	return ds
}

package dto

import (
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateServiceItemRequest defines the data needed to create a catalog service.
type CreateServiceItemRequest struct {
	Name      string          `json:"name" binding:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"required"`
	Unit      string          `json:"unit" binding:"required"`
}

// UpdateServiceItemRequest defines the data allowed for updating a service.
type UpdateServiceItemRequest struct {
	Name      *string          `json:"name"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
	Unit      *string          `json:"unit"`
	IsActive  *bool            `json:"isActive"`
}

// ServiceItemResponse defines the data returned for a catalog service.
type ServiceItemResponse struct {
	ServiceID string          `json:"serviceID"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Unit      string          `json:"unit"`
	IsActive  bool            `json:"isActive"`
}

// ToServiceItemResponse converts a domain.ServiceItem to ServiceItemResponse DTO
func ToServiceItemResponse(s *domain.ServiceItem) ServiceItemResponse {
	return ServiceItemResponse{
		ServiceID: s.ServiceID,
		Name:      s.Name,
		UnitPrice: s.UnitPrice,
		Unit:      s.Unit,
		IsActive:  s.IsActive,
	}
}

// ToListServiceItemResponse converts a slice of domain.ServiceItem to DTOs
func ToListServiceItemResponse(items []domain.ServiceItem) []ServiceItemResponse {
	res := make([]ServiceItemResponse, len(items))
	for i, s := range items {
		res[i] = ToServiceItemResponse(&s)
	}
	return res
}

// CreatePenaltyTypeRequest defines the data needed to create a penalty type.
type CreatePenaltyTypeRequest struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PenaltyTypeResponse defines the data returned for a penalty type.
type PenaltyTypeResponse struct {
	PenaltyTypeID string          `json:"penaltyTypeID"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	IsActive      bool            `json:"isActive"`
}

// ToPenaltyTypeResponse converts a domain.PenaltyType to PenaltyTypeResponse DTO
func ToPenaltyTypeResponse(p *domain.PenaltyType) PenaltyTypeResponse {
	return PenaltyTypeResponse{
		PenaltyTypeID: p.PenaltyTypeID,
		Name:          p.Name,
		Amount:        p.Amount,
		IsActive:      p.IsActive,
	}
}

// ToListPenaltyTypeResponse converts a slice of domain.PenaltyType to DTOs
func ToListPenaltyTypeResponse(items []domain.PenaltyType) []PenaltyTypeResponse {
	res := make([]PenaltyTypeResponse, len(items))
	for i, p := range items {
		res[i] = ToPenaltyTypeResponse(&p)
	}
	return res
}

// CreateSurchargeTypeRequest defines the data needed to create a surcharge
// type. Exactly one of Amount/Rate must be set; Rate is a percentage
// (10 means 10%).
type CreateSurchargeTypeRequest struct {
	Name   string           `json:"name" binding:"required"`
	Amount *decimal.Decimal `json:"amount"`
	Rate   *decimal.Decimal `json:"rate"`
}

// SurchargeTypeResponse defines the data returned for a surcharge type.
type SurchargeTypeResponse struct {
	SurchargeTypeID string           `json:"surchargeTypeID"`
	Name            string           `json:"name"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Rate            *decimal.Decimal `json:"rate,omitempty"`
	IsActive        bool             `json:"isActive"`
}

// ToSurchargeTypeResponse converts a domain.SurchargeType to SurchargeTypeResponse DTO
func ToSurchargeTypeResponse(s *domain.SurchargeType) SurchargeTypeResponse {
	return SurchargeTypeResponse{
		SurchargeTypeID: s.SurchargeTypeID,
		Name:            s.Name,
		Amount:          s.Amount,
		Rate:            s.Rate,
		IsActive:        s.IsActive,
	}
}

// ToListSurchargeTypeResponse converts a slice of domain.SurchargeType to DTOs
func ToListSurchargeTypeResponse(items []domain.SurchargeType) []SurchargeTypeResponse {
	res := make([]SurchargeTypeResponse, len(items))
	for i, s := range items {
		res[i] = ToSurchargeTypeResponse(&s)
	}
	return res
}

// ResolveSurchargeRequest asks for a surcharge type to be resolved against a
// base amount, turning percentage surcharges into a concrete flat amount.
type ResolveSurchargeRequest struct {
	SurchargeTypeID string          `json:"surchargeTypeID" binding:"required"`
	BaseAmount      decimal.Decimal `json:"baseAmount" binding:"required"`
}

// ResolveSurchargeResponse carries the resolved flat amount.
type ResolveSurchargeResponse struct {
	SurchargeTypeID string          `json:"surchargeTypeID"`
	Name            string          `json:"name"`
	Amount          decimal.Decimal `json:"amount"`
}

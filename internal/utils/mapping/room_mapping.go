package mapping

import (
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/models"
)

// ToModelRoomType converts a domain RoomType to a model RoomType
func ToModelRoomType(d domain.RoomType) models.RoomType {
	return models.RoomType{
		RoomTypeID:  d.RoomTypeID,
		Name:        d.Name,
		NightlyRate: d.NightlyRate,
		Capacity:    d.Capacity,
		Description: d.Description,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoomType converts a model RoomType to a domain RoomType
func ToDomainRoomType(m models.RoomType) domain.RoomType {
	return domain.RoomType{
		RoomTypeID:  m.RoomTypeID,
		Name:        m.Name,
		NightlyRate: m.NightlyRate,
		Capacity:    m.Capacity,
		Description: m.Description,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomTypeSlice converts a slice of model RoomTypes to domain RoomTypes
func ToDomainRoomTypeSlice(ms []models.RoomType) []domain.RoomType {
	ds := make([]domain.RoomType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoomType(m)
	}
	return ds
}

// ToModelRoom converts a domain Room to a model Room
func ToModelRoom(d domain.Room) models.Room {
	return models.Room{
		RoomID:      d.RoomID,
		Name:        d.Name,
		RoomTypeID:  d.RoomTypeID,
		Status:      models.RoomStatus(d.Status),
		Floor:       d.Floor,
		IsActive:    d.IsActive,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRoom converts a model Room to a domain Room.
// RoomTypeName is attached by the caller when joined.
func ToDomainRoom(m models.Room) domain.Room {
	return domain.Room{
		RoomID:      m.RoomID,
		Name:        m.Name,
		RoomTypeID:  m.RoomTypeID,
		Status:      domain.RoomStatus(m.Status),
		Floor:       m.Floor,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoomSlice converts a slice of model Rooms to domain Rooms
func ToDomainRoomSlice(ms []models.Room) []domain.Room {
	ds := make([]domain.Room, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRoom(m)
	}
	return ds
}

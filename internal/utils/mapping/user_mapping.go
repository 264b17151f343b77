package mapping

import (
	"database/sql"

	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
	"github.com/hotelhq/hotel_folio_app/internal/models"
)

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	refreshExpiry := sql.NullTime{}
	if d.RefreshTokenExpiryTime != nil {
		refreshExpiry = sql.NullTime{Time: *d.RefreshTokenExpiryTime, Valid: true}
	}
	return models.User{
		UserID:                 d.UserID,
		Username:               d.Username,
		PasswordHash:           d.PasswordHash,
		Name:                   d.Name,
		Email:                  toNullString(d.Email),
		Role:                   models.StaffRole(d.Role),
		AuthProvider:           toNullString(d.AuthProvider),
		ProviderID:             toNullString(d.ProviderID),
		AuditFields:            ToModelAuditFields(d.AuditFields),
		DeletedAt:              d.DeletedAt,
		RefreshTokenHash:       toNullString(d.RefreshTokenHash),
		RefreshTokenExpiryTime: refreshExpiry,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:           m.UserID,
		Username:         m.Username,
		PasswordHash:     m.PasswordHash,
		Name:             m.Name,
		Email:            m.Email.String,
		Role:             domain.StaffRole(m.Role),
		AuthProvider:     m.AuthProvider.String,
		ProviderID:       m.ProviderID.String,
		RefreshTokenHash: m.RefreshTokenHash.String,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
		DeletedAt:        m.DeletedAt,
	}
	if m.RefreshTokenExpiryTime.Valid {
		t := m.RefreshTokenExpiryTime.Time
		d.RefreshTokenExpiryTime = &t
	}
	return d
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

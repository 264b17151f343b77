package models

import (
	"database/sql"
	"time"
)

// StaffRole controls what back-office operations a user may perform.
type StaffRole string

const (
	RoleAdmin        StaffRole = "ADMIN"
	RoleManager      StaffRole = "MANAGER"
	RoleReceptionist StaffRole = "RECEPTIONIST"
)

// User represents a staff member of the hotel back office.
type User struct {
	UserID       string         `db:"user_id"`
	Username     string         `db:"username"`
	PasswordHash string         `db:"password_hash"`
	Name         string         `db:"name"`
	Email        sql.NullString `db:"email"`
	Role         StaffRole      `db:"role"`
	AuthProvider sql.NullString `db:"auth_provider"` // e.g. "google"
	ProviderID   sql.NullString `db:"provider_id"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`

	// Refresh Token Fields
	RefreshTokenHash       sql.NullString `db:"refresh_token_hash"`        // Store hash of the refresh token
	RefreshTokenExpiryTime sql.NullTime   `db:"refresh_token_expiry_time"` // Expiry of the stored refresh token
}

package domain

import "time"

// StaffRole defines the access level of a staff account.
type StaffRole string

const (
	RoleAdmin        StaffRole = "ADMIN"
	RoleManager      StaffRole = "MANAGER"
	RoleReceptionist StaffRole = "RECEPTIONIST"
)

// roleRank orders roles for authorization checks; higher rank covers lower.
var roleRank = map[StaffRole]int{
	RoleReceptionist: 1,
	RoleManager:      2,
	RoleAdmin:        3,
}

// Covers reports whether the role satisfies the given minimum required role.
func (r StaffRole) Covers(required StaffRole) bool {
	return roleRank[r] >= roleRank[required]
}

// IsValid reports whether the role is one of the known staff roles.
func (r StaffRole) IsValid() bool {
	_, ok := roleRank[r]
	return ok
}

// User represents a staff account of the back office.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         StaffRole `json:"role"`
	PasswordHash string    `json:"-"` // bcrypt; empty for Google-only accounts
	AuthProvider string    `json:"authProvider"` // "local" or "google"
	ProviderID   string    `json:"-"`            // Google subject for google accounts

	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}

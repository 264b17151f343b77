package dto

import (
	"github.com/hotelhq/hotel_folio_app/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a staff account.
type CreateUserRequest struct {
	Username string           `json:"username" binding:"required"`
	Password string           `json:"password" binding:"required,min=8"`
	Name     string           `json:"name" binding:"required"`
	Email    string           `json:"email" binding:"omitempty,email"`
	Role     domain.StaffRole `json:"role" binding:"required,oneof=ADMIN MANAGER RECEPTIONIST"`
}

// UpdateUserRequest defines the data allowed for updating a staff account.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name  *string           `json:"name"`
	Email *string           `json:"email" binding:"omitempty,email"`
	Role  *domain.StaffRole `json:"role" binding:"omitempty,oneof=ADMIN MANAGER RECEPTIONIST"`
}

// LoginRequest defines the credentials for a username/password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries the refresh token being exchanged.
type RefreshTokenRequest struct {
	UserID       string `json:"userID" binding:"required"`
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// GoogleSignInRequest carries the Google ID token from the client.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = ToUserResponse(&user)
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}

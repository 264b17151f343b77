package dto

import "github.com/hotelhq/hotel_folio_app/internal/core/domain"

// UserResponse defines the public view of a staff account.
type UserResponse struct {
	UserID   string           `json:"userID"`
	Username string           `json:"username"`
	Name     string           `json:"name"`
	Email    string           `json:"email,omitempty"`
	Role     domain.StaffRole `json:"role"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
	}
}

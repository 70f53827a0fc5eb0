package dto

import (
	"github.com/joinboard/join-api/internal/models"
)

// UserDTO represents a user in API responses. The password is write-only and
// never appears here; initials are derived server-side.
type UserDTO struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Initials string  `json:"initials"`
}

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	ID    uint64 `json:"id"`
	Token string `json:"token"`
	Email string `json:"email"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		Initials: user.Initials,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}

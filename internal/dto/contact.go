package dto

import (
	"github.com/joinboard/join-api/internal/models"
)

// ContactDTO represents a contact in API responses. Initials, badge_color
// assignment, and active_user are all server-controlled.
type ContactDTO struct {
	ID         uint64  `json:"id"`
	Name       string  `json:"name"`
	Initials   string  `json:"initials"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	BadgeColor int     `json:"badge_color"`
	ActiveUser *uint64 `json:"active_user"`
}

// ToContactDTO converts a Contact model to ContactDTO
func ToContactDTO(contact models.Contact) ContactDTO {
	return ContactDTO{
		ID:         contact.ID,
		Name:       contact.Name,
		Initials:   contact.Initials,
		Email:      contact.Email,
		Phone:      contact.Phone,
		BadgeColor: contact.BadgeColor,
		ActiveUser: contact.ActiveUserID,
	}
}

// ToContactDTOs converts a slice of contacts
func ToContactDTOs(contacts []models.Contact) []ContactDTO {
	dtos := make([]ContactDTO, len(contacts))
	for i, contact := range contacts {
		dtos[i] = ToContactDTO(contact)
	}
	return dtos
}

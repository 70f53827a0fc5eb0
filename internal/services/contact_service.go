package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/repository"
	"github.com/joinboard/join-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrContactNotFound      = errors.New("contact not found")
	ErrContactNameRequired  = errors.New("name is required")
	ErrContactEmailRequired = errors.New("email is required")
	ErrBadgeColorOutOfRange = errors.New("badge_color out of range")
)

// ContactService handles contact directory business logic.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// GetContact retrieves a contact by ID.
func (s *ContactService) GetContact(id uint64) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	return contact, nil
}

// ListContacts retrieves all contacts.
func (s *ContactService) ListContacts() ([]models.Contact, error) {
	contacts, err := s.contactRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// CreateContactInput represents input for creating a user-less contact.
type CreateContactInput struct {
	Name  string
	Email string
	Phone *string
}

// CreateContact creates a contact with no bound user. The badge color is
// drawn once here and never re-randomized; any caller-supplied active_user
// has already been discarded at the API boundary.
func (s *ContactService) CreateContact(input CreateContactInput) (*models.Contact, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrContactNameRequired
	}
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrContactEmailRequired
	}

	badgeColor, err := utils.RandomBadgeColor()
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	contact := &models.Contact{
		Name:       name,
		Initials:   utils.GenerateInitials(name),
		Email:      email,
		Phone:      input.Phone,
		BadgeColor: badgeColor,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// UpdateContactInput holds the mutable contact fields. Nil means "leave
// untouched"; active_user is not represented because it is read-only.
type UpdateContactInput struct {
	Name       *string
	Email      *string
	Phone      *string
	BadgeColor *int
}

// UpdateContact applies a partial update. Initials follow the name; the
// one-to-one user binding is untouchable through this path.
func (s *ContactService) UpdateContact(id uint64, input UpdateContactInput) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrContactNameRequired
		}
		if name != contact.Name {
			contact.Name = name
			contact.Initials = utils.GenerateInitials(name)
		}
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email == "" {
			return nil, ErrContactEmailRequired
		}
		contact.Email = email
	}

	if input.Phone != nil {
		contact.Phone = input.Phone
	}

	if input.BadgeColor != nil {
		if !utils.ValidBadgeColor(*input.BadgeColor) {
			return nil, ErrBadgeColorOutOfRange
		}
		contact.BadgeColor = *input.BadgeColor
	}

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// DeleteContact removes a contact, cascading to its bound user and to every
// task assignment referencing it.
func (s *ContactService) DeleteContact(id uint64) error {
	contact, err := s.contactRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to find contact: %w", err)
	}

	if err := s.contactRepo.DeleteCascade(contact); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}

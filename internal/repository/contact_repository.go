package repository

import (
	"github.com/joinboard/join-api/internal/models"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByID finds a contact by ID
func (r *GormContactRepository) FindByID(id uint64) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List retrieves all contacts
func (r *GormContactRepository) List() ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Order("id").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Update persists changes to a contact
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// DeleteCascade removes the contact from every task's assignment set,
// deletes the bound user (and their token) if one exists, then deletes the
// contact itself. The user side is removed directly here so the
// user->contact cascade is never re-entered.
func (r *GormContactRepository) DeleteCascade(contact *models.Contact) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM task_contacts WHERE contact_id = ?", contact.ID).Error; err != nil {
			return err
		}

		if contact.ActiveUserID != nil {
			if err := tx.Where("user_id = ?", *contact.ActiveUserID).Delete(&models.AuthToken{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&models.User{}, *contact.ActiveUserID).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Contact{}, contact.ID).Error
	})
}

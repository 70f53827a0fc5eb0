package repository

import (
	"errors"
	"fmt"

	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateUser is returned when creating a user fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
	// ErrCreateContact is returned when creating the paired contact fails inside the registration transaction.
	ErrCreateContact = errors.New("user repository: create contact failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// CreateWithContact creates the user and its paired contact atomically.
func (r *GormUserRepository) CreateWithContact(user *models.User, contact *models.Contact) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		contact.ActiveUserID = &user.ID

		if err := tx.Create(contact).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateContact, err)
		}

		return nil
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users
func (r *GormUserRepository) List() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update persists changes to a user
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteWithContact deletes the user and everything hanging off it. The
// contact side is removed here directly rather than by re-entering the
// contact cascade, so each side is deleted exactly once.
func (r *GormUserRepository) DeleteWithContact(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"DELETE FROM task_contacts WHERE contact_id IN (SELECT id FROM contacts WHERE active_user_id = ?)", id,
		).Error; err != nil {
			return err
		}

		if err := tx.Where("active_user_id = ?", id).Delete(&models.Contact{}).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.AuthToken{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, id).Error
	})
}

// GetOrCreateToken issues a token only when the user has none. Concurrent
// logins converge on the same row through FirstOrCreate.
func (r *GormUserRepository) GetOrCreateToken(userID uint64) (*models.AuthToken, error) {
	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, err
	}

	var token models.AuthToken
	if err := r.db.
		Where("user_id = ?", userID).
		Attrs(models.AuthToken{Key: key, UserID: userID}).
		FirstOrCreate(&token).Error; err != nil {
		return nil, err
	}

	return &token, nil
}

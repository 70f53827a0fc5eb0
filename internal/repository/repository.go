package repository

import (
	"github.com/joinboard/join-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithContact creates a user together with its paired contact
	// inside a single transaction.
	CreateWithContact(user *models.User, contact *models.Contact) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email (the login key)
	FindByEmail(email string) (*models.User, error)

	// List retrieves all users
	List() ([]models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error

	// DeleteWithContact deletes a user, its paired contact, the contact's
	// task assignments, and the user's auth token in one transaction.
	DeleteWithContact(id uint64) error

	// GetOrCreateToken returns the user's auth token, issuing one only if
	// none exists yet.
	GetOrCreateToken(userID uint64) (*models.AuthToken, error)
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// FindByID finds a contact by ID
	FindByID(id uint64) (*models.Contact, error)

	// List retrieves all contacts
	List() ([]models.Contact, error)

	// Update persists changes to a contact
	Update(contact *models.Contact) error

	// DeleteCascade deletes a contact, its task assignments, and its bound
	// user (if any) in one transaction.
	DeleteCascade(contact *models.Contact) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// CreateWithRelations creates a task, its assignment rows, and its
	// nested subtasks atomically.
	CreateWithRelations(task *models.Task, contactIDs []uint64, subtasks []models.Subtask) error

	// FindByID finds a task by ID with optional preloading
	FindByID(id uint64, preload ...string) (*models.Task, error)

	// List retrieves all tasks with relations
	List() ([]models.Task, error)

	// UpdateWithRelations updates a task's scalar fields, optionally
	// replaces its assignment set, and optionally replaces all subtasks,
	// atomically. A nil contactIDs slice (or an empty one) leaves the
	// assignment set untouched; replaceSubtasks controls the wholesale
	// subtask swap.
	UpdateWithRelations(task *models.Task, contactIDs []uint64, subtasks []models.Subtask, replaceSubtasks bool) error

	// Delete removes a task, its subtasks, and its assignment rows
	Delete(id uint64) error

	// CountContactsByIDs counts how many of the given contact IDs exist
	CountContactsByIDs(ids []uint64) (int64, error)
}

// SubtaskRepository defines the interface for subtask data access
type SubtaskRepository interface {
	// Create creates a new subtask
	Create(subtask *models.Subtask) error

	// FindByID finds a subtask by ID
	FindByID(id uint64) (*models.Subtask, error)

	// List retrieves all subtasks
	List() ([]models.Subtask, error)

	// Update persists changes to a subtask
	Update(subtask *models.Subtask) error

	// Delete removes a subtask
	Delete(id uint64) error
}

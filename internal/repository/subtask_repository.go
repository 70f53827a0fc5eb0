package repository

import (
	"github.com/joinboard/join-api/internal/models"
	"gorm.io/gorm"
)

// GormSubtaskRepository is a GORM implementation of SubtaskRepository
type GormSubtaskRepository struct {
	db *gorm.DB
}

// NewSubtaskRepository creates a new SubtaskRepository
func NewSubtaskRepository(db *gorm.DB) SubtaskRepository {
	return &GormSubtaskRepository{db: db}
}

// Create creates a new subtask
func (r *GormSubtaskRepository) Create(subtask *models.Subtask) error {
	return r.db.Create(subtask).Error
}

// FindByID finds a subtask by ID
func (r *GormSubtaskRepository) FindByID(id uint64) (*models.Subtask, error) {
	var subtask models.Subtask
	if err := r.db.First(&subtask, id).Error; err != nil {
		return nil, err
	}
	return &subtask, nil
}

// List retrieves all subtasks
func (r *GormSubtaskRepository) List() ([]models.Subtask, error) {
	var subtasks []models.Subtask
	if err := r.db.Order("id").Find(&subtasks).Error; err != nil {
		return nil, err
	}
	return subtasks, nil
}

// Update persists changes to a subtask
func (r *GormSubtaskRepository) Update(subtask *models.Subtask) error {
	return r.db.Save(subtask).Error
}

// Delete removes a subtask
func (r *GormSubtaskRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Subtask{}, id).Error
}

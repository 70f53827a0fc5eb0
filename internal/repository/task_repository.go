package repository

import (
	"github.com/joinboard/join-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// CreateWithRelations creates the task row, the assignment rows, and the
// nested subtasks inside one transaction. A partial failure rolls everything
// back so no subtask can outlive an aborted task insert.
func (r *GormTaskRepository) CreateWithRelations(task *models.Task, contactIDs []uint64, subtasks []models.Subtask) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}

		if len(contactIDs) > 0 {
			var contacts []models.Contact
			if err := tx.Find(&contacts, contactIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(task).Association("AssignedTo").Append(&contacts); err != nil {
				return err
			}
		}

		if len(subtasks) > 0 {
			for i := range subtasks {
				subtasks[i].TaskID = task.ID
			}
			if err := tx.Create(&subtasks).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// FindByID finds a task by ID with optional preloading
func (r *GormTaskRepository) FindByID(id uint64, preload ...string) (*models.Task, error) {
	var task models.Task
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&task, id).Error; err != nil {
		return nil, err
	}

	return &task, nil
}

// List retrieves all tasks with their assignments and subtasks
func (r *GormTaskRepository) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := r.db.
		Preload("AssignedTo").
		Preload("Subtasks").
		Order("id").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateWithRelations saves the task's scalar fields and applies the
// requested relation changes atomically. A non-empty contactIDs slice
// replaces the whole assignment set; replaceSubtasks swaps the entire owned
// subtask collection for the given list.
func (r *GormTaskRepository) UpdateWithRelations(task *models.Task, contactIDs []uint64, subtasks []models.Subtask, replaceSubtasks bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("AssignedTo", "Subtasks").Save(task).Error; err != nil {
			return err
		}

		if len(contactIDs) > 0 {
			var contacts []models.Contact
			if err := tx.Find(&contacts, contactIDs).Error; err != nil {
				return err
			}
			if err := tx.Model(task).Association("AssignedTo").Replace(&contacts); err != nil {
				return err
			}
		}

		if replaceSubtasks {
			if err := tx.Where("task_id = ?", task.ID).Delete(&models.Subtask{}).Error; err != nil {
				return err
			}
			if len(subtasks) > 0 {
				for i := range subtasks {
					subtasks[i].ID = 0
					subtasks[i].TaskID = task.ID
				}
				if err := tx.Create(&subtasks).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// Delete removes a task together with its owned subtasks and assignment rows
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM task_contacts WHERE task_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}

// CountContactsByIDs counts how many of the given contact IDs exist
func (r *GormTaskRepository) CountContactsByIDs(ids []uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.Contact{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

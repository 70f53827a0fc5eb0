package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joinboard/join-api/internal/constants"
	"github.com/joinboard/join-api/internal/models"
	"github.com/joinboard/join-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrSubtaskNotFound     = errors.New("subtask not found")
	ErrSubtaskTaskRequired = errors.New("task is required")
	ErrSubtaskTaskInvalid  = errors.New("task does not exist")
)

// SubtaskService handles subtask business logic for the direct /subtasks
// surface. The nested create/update path lives in TaskService.
type SubtaskService struct {
	subtaskRepo repository.SubtaskRepository
	taskRepo    repository.TaskRepository
}

// NewSubtaskService creates a new SubtaskService.
func NewSubtaskService(subtaskRepo repository.SubtaskRepository, taskRepo repository.TaskRepository) *SubtaskService {
	return &SubtaskService{
		subtaskRepo: subtaskRepo,
		taskRepo:    taskRepo,
	}
}

// GetSubtask retrieves a subtask by ID.
func (s *SubtaskService) GetSubtask(id uint64) (*models.Subtask, error) {
	subtask, err := s.subtaskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubtaskNotFound
		}
		return nil, fmt.Errorf("failed to find subtask: %w", err)
	}

	return subtask, nil
}

// ListSubtasks retrieves all subtasks.
func (s *SubtaskService) ListSubtasks() ([]models.Subtask, error) {
	subtasks, err := s.subtaskRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks: %w", err)
	}
	return subtasks, nil
}

// CreateSubtaskInput represents input for creating a subtask directly. The
// owning task is mandatory on this path; only the nested path through a task
// payload may omit it.
type CreateSubtaskInput struct {
	IsDone      bool
	Description string
	TaskID      *uint64
}

// CreateSubtask creates a subtask bound to an existing task.
func (s *SubtaskService) CreateSubtask(input CreateSubtaskInput) (*models.Subtask, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, ErrSubtaskDescriptionRequired
	}
	if utf8.RuneCountInString(input.Description) > constants.SubtaskDescriptionMaxLength {
		return nil, ErrSubtaskDescriptionTooLong
	}
	if input.TaskID == nil {
		return nil, ErrSubtaskTaskRequired
	}

	if _, err := s.taskRepo.FindByID(*input.TaskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubtaskTaskInvalid
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	subtask := &models.Subtask{
		IsDone:      input.IsDone,
		Description: input.Description,
		TaskID:      *input.TaskID,
	}

	if err := s.subtaskRepo.Create(subtask); err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}

	return subtask, nil
}

// UpdateSubtaskInput holds the mutable subtask fields. The owning task is
// immutable: a task id in the request is silently dropped before this input
// is built, so there is no field for it here.
type UpdateSubtaskInput struct {
	IsDone      *bool
	Description *string
}

// UpdateSubtask applies a partial update to a subtask.
func (s *SubtaskService) UpdateSubtask(id uint64, input UpdateSubtaskInput) (*models.Subtask, error) {
	subtask, err := s.subtaskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubtaskNotFound
		}
		return nil, fmt.Errorf("failed to find subtask: %w", err)
	}

	if input.Description != nil {
		if strings.TrimSpace(*input.Description) == "" {
			return nil, ErrSubtaskDescriptionRequired
		}
		if utf8.RuneCountInString(*input.Description) > constants.SubtaskDescriptionMaxLength {
			return nil, ErrSubtaskDescriptionTooLong
		}
		subtask.Description = *input.Description
	}

	if input.IsDone != nil {
		subtask.IsDone = *input.IsDone
	}

	if err := s.subtaskRepo.Update(subtask); err != nil {
		return nil, fmt.Errorf("failed to update subtask: %w", err)
	}

	return subtask, nil
}

// DeleteSubtask removes a subtask.
func (s *SubtaskService) DeleteSubtask(id uint64) error {
	if _, err := s.subtaskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubtaskNotFound
		}
		return fmt.Errorf("failed to find subtask: %w", err)
	}

	if err := s.subtaskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete subtask: %w", err)
	}

	return nil
}

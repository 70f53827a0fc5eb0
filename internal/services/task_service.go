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
	ErrTaskNotFound               = errors.New("task not found")
	ErrTitleRequired              = errors.New("title is required")
	ErrDueDateRequired            = errors.New("due_date is required")
	ErrCategoryRequired           = errors.New("category is required")
	ErrInvalidStatus              = errors.New("invalid status")
	ErrInvalidPriority            = errors.New("invalid priority")
	ErrInvalidCategory            = errors.New("invalid category")
	ErrInvalidAssignee            = errors.New("one or more assigned contacts do not exist")
	ErrSubtaskDescriptionRequired = errors.New("subtask description is required")
	ErrSubtaskDescriptionTooLong  = errors.New("subtask description too long")
)

// taskPreloads are the relations loaded for every single-task response.
var taskPreloads = []string{"AssignedTo", "Subtasks"}

// TaskService handles task board business logic.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
	}
}

// SubtaskInput is a nested subtask in a task create/update payload. Any
// task id the caller put on the nested object is discarded; nested subtasks
// always bind to the surrounding task.
type SubtaskInput struct {
	IsDone      bool
	Description string
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Status      models.TaskStatus
	Title       string
	Description string
	Priority    models.TaskPriority
	DueDate     models.Date
	Category    models.TaskCategory
	AssignedTo  []uint64
	Subtasks    []SubtaskInput
}

// CreateTask creates a task with its assignment set and nested subtasks in
// one transaction.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if input.DueDate.IsZero() {
		return nil, ErrDueDateRequired
	}
	if input.Category == "" {
		return nil, ErrCategoryRequired
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}

	if input.Status == "" {
		input.Status = models.TaskStatusTodo
	}
	if !input.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	if input.Priority == 0 {
		input.Priority = models.TaskPriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	contactIDs := uniqueUint64(input.AssignedTo)
	if err := s.verifyContacts(contactIDs); err != nil {
		return nil, err
	}

	subtasks, err := buildSubtasks(input.Subtasks)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Status:      input.Status,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Category:    input.Category,
	}

	if err := s.taskRepo.CreateWithRelations(task, contactIDs, subtasks); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, taskPreloads...)
}

// UpdateTaskInput holds a partial task update. Nil scalars stay untouched.
// A non-empty AssignedTo replaces the whole assignment set; an empty or
// omitted one is a no-op, never a clear. Subtasks is only applied when
// ReplaceSubtasks is set, in which case the entire owned collection is
// swapped for the given list (an empty list clears it).
type UpdateTaskInput struct {
	Status          *models.TaskStatus
	Title           *string
	Description     *string
	Priority        *models.TaskPriority
	DueDate         *models.Date
	Category        *models.TaskCategory
	AssignedTo      []uint64
	Subtasks        []SubtaskInput
	ReplaceSubtasks bool
}

// UpdateTask applies a partial update to a task.
func (s *TaskService) UpdateTask(id uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		task.Status = *input.Status
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		task.Priority = *input.Priority
	}
	if input.DueDate != nil {
		if input.DueDate.IsZero() {
			return nil, ErrDueDateRequired
		}
		task.DueDate = *input.DueDate
	}
	if input.Category != nil {
		if !input.Category.Valid() {
			return nil, ErrInvalidCategory
		}
		task.Category = *input.Category
	}

	contactIDs := uniqueUint64(input.AssignedTo)
	if err := s.verifyContacts(contactIDs); err != nil {
		return nil, err
	}

	var subtasks []models.Subtask
	if input.ReplaceSubtasks {
		subtasks, err = buildSubtasks(input.Subtasks)
		if err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.UpdateWithRelations(task, contactIDs, subtasks, input.ReplaceSubtasks); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID, taskPreloads...)
}

// GetTask returns a task with its assignments and subtasks.
func (s *TaskService) GetTask(id uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(id, taskPreloads...)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	return task, nil
}

// ListTasks returns all tasks with their relations.
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// DeleteTask removes a task together with its owned subtasks.
func (s *TaskService) DeleteTask(id uint64) error {
	if _, err := s.taskRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func (s *TaskService) verifyContacts(contactIDs []uint64) error {
	if len(contactIDs) == 0 {
		return nil
	}

	count, err := s.taskRepo.CountContactsByIDs(contactIDs)
	if err != nil {
		return fmt.Errorf("failed to verify contacts: %w", err)
	}
	if int(count) != len(contactIDs) {
		return ErrInvalidAssignee
	}

	return nil
}

func buildSubtasks(inputs []SubtaskInput) ([]models.Subtask, error) {
	subtasks := make([]models.Subtask, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in.Description) == "" {
			return nil, ErrSubtaskDescriptionRequired
		}
		if utf8.RuneCountInString(in.Description) > constants.SubtaskDescriptionMaxLength {
			return nil, ErrSubtaskDescriptionTooLong
		}
		subtasks = append(subtasks, models.Subtask{
			IsDone:      in.IsDone,
			Description: in.Description,
		})
	}
	return subtasks, nil
}

func uniqueUint64(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	unique := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

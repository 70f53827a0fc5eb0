package dto

import (
	"github.com/joinboard/join-api/internal/models"
)

// SubtaskDTO represents a subtask in API responses
type SubtaskDTO struct {
	ID          uint64 `json:"id"`
	IsDone      bool   `json:"is_done"`
	Description string `json:"description"`
	Task        uint64 `json:"task"`
}

// TaskDTO represents a task in API responses. assigned_to carries contact
// ids; subtasks are embedded as full objects.
type TaskDTO struct {
	ID          uint64              `json:"id"`
	Status      models.TaskStatus   `json:"status"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     models.Date         `json:"due_date"`
	Category    models.TaskCategory `json:"category"`
	AssignedTo  []uint64            `json:"assigned_to"`
	Subtasks    []SubtaskDTO        `json:"subtasks"`
}

// ToSubtaskDTO converts a Subtask model to SubtaskDTO
func ToSubtaskDTO(subtask models.Subtask) SubtaskDTO {
	return SubtaskDTO{
		ID:          subtask.ID,
		IsDone:      subtask.IsDone,
		Description: subtask.Description,
		Task:        subtask.TaskID,
	}
}

// ToSubtaskDTOs converts a slice of subtasks
func ToSubtaskDTOs(subtasks []models.Subtask) []SubtaskDTO {
	dtos := make([]SubtaskDTO, len(subtasks))
	for i, subtask := range subtasks {
		dtos[i] = ToSubtaskDTO(subtask)
	}
	return dtos
}

// ToTaskDTO converts a Task model (with AssignedTo and Subtasks preloaded)
// to TaskDTO. Empty relations serialize as empty arrays, not null.
func ToTaskDTO(task models.Task) TaskDTO {
	assigned := make([]uint64, len(task.AssignedTo))
	for i, contact := range task.AssignedTo {
		assigned[i] = contact.ID
	}

	subtasks := make([]SubtaskDTO, len(task.Subtasks))
	for i, subtask := range task.Subtasks {
		subtasks[i] = ToSubtaskDTO(subtask)
	}

	return TaskDTO{
		ID:          task.ID,
		Status:      task.Status,
		Title:       task.Title,
		Description: task.Description,
		Priority:    task.Priority,
		DueDate:     task.DueDate,
		Category:    task.Category,
		AssignedTo:  assigned,
		Subtasks:    subtasks,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}

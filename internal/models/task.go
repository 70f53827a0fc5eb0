package models

import (
	"time"
)

type TaskStatus string

const (
	TaskStatusTodo          TaskStatus = "to-do"
	TaskStatusInProgress    TaskStatus = "in-progress"
	TaskStatusAwaitFeedback TaskStatus = "await-feedback"
	TaskStatusDone          TaskStatus = "done"
)

// Valid reports whether s is one of the four board columns.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusAwaitFeedback, TaskStatusDone:
		return true
	}
	return false
}

type TaskPriority int

const (
	TaskPriorityUrgent TaskPriority = 1
	TaskPriorityMedium TaskPriority = 2
	TaskPriorityLow    TaskPriority = 3
)

func (p TaskPriority) Valid() bool {
	return p >= TaskPriorityUrgent && p <= TaskPriorityLow
}

type TaskCategory string

const (
	TaskCategoryTechnical TaskCategory = "Technical Task"
	TaskCategoryUserStory TaskCategory = "User Story"
)

func (c TaskCategory) Valid() bool {
	return c == TaskCategoryTechnical || c == TaskCategoryUserStory
}

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'to-do'" json:"status"`
	Title       string       `gorm:"type:varchar(200);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Priority    TaskPriority `gorm:"not null;default:2" json:"priority"`
	DueDate     Date         `gorm:"type:date;not null" json:"due_date"`
	Category    TaskCategory `gorm:"type:varchar(20);not null" json:"category"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`

	// Relations
	AssignedTo []Contact `gorm:"many2many:task_contacts" json:"-"`
	Subtasks   []Subtask `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
}

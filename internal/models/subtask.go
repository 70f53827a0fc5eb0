package models

import (
	"time"
)

// Subtask is fully owned by its Task: created through the task's nested
// create/update path (or directly with an explicit task id), removed together
// with the task, and never re-pointed to another task.
type Subtask struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	IsDone      bool      `gorm:"not null;default:false" json:"is_done"`
	Description string    `gorm:"type:varchar(200);not null" json:"description"`
	TaskID      uint64    `gorm:"not null;index" json:"task"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Task Task `gorm:"foreignKey:TaskID" json:"-"`
}

package models

import (
	"time"
)

// Contact is a profile record optionally bound 1:1 to a User account.
// Contacts created through registration carry ActiveUserID; contacts created
// through the public endpoint never do.
type Contact struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Initials     string    `gorm:"type:varchar(2)" json:"initials"`
	Email        string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone        *string   `gorm:"type:varchar(15)" json:"phone"`
	BadgeColor   int       `gorm:"not null;default:0" json:"badge_color"`
	ActiveUserID *uint64   `gorm:"uniqueIndex" json:"active_user"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	ActiveUser *User  `gorm:"foreignKey:ActiveUserID" json:"-"`
	Tasks      []Task `gorm:"many2many:task_contacts" json:"-"`
}

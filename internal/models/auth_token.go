package models

import (
	"time"
)

// AuthToken is the opaque bearer credential issued on login. One token per
// user; re-login returns the existing key instead of rotating it.
type AuthToken struct {
	Key       string    `gorm:"type:varchar(40);primarykey" json:"key"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

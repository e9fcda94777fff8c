package models

import (
	"time"
)

// User represents an account that can authenticate against the API.
// UserID is the stable identifier conversations are keyed by.
type User struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement" json:"-"`
	UserID       string     `gorm:"uniqueIndex;not null" json:"user_id"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

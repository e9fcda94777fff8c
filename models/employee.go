package models

import "time"

// Employee stores one staff record. Name and age fields are kept
// obfuscated in the database.
type Employee struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	LastNameEncoded  string    `gorm:"not null" json:"-"`
	FirstNameEncoded string    `gorm:"not null" json:"-"`
	AgeEncoded       string    `gorm:"not null" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}

// Employer is a singleton record; creating a new one replaces the old.
type Employer struct {
	ID               uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	LastNameEncoded  string    `gorm:"not null" json:"-"`
	FirstNameEncoded string    `gorm:"not null" json:"-"`
	CreatedAt        time.Time `json:"created_at"`
}

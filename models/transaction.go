package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is one billed operation. Client and amount are stored
// obfuscated; Date is kept plain so range queries stay possible.
type Transaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientEncoded string    `gorm:"not null" json:"-"`
	AmountEncoded string    `gorm:"not null" json:"-"`
	Date          time.Time `gorm:"not null;index" json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

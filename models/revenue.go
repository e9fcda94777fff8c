package models

import "time"

// MonthlyRevenue stores the revenue figure for one (year, month) pair.
// AmountEncoded holds the obfuscated amount, never the plain value.
type MonthlyRevenue struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Year          int       `gorm:"not null;uniqueIndex:idx_revenue_year_month" json:"year"`
	Month         int       `gorm:"not null;uniqueIndex:idx_revenue_year_month" json:"month"`
	AmountEncoded string    `gorm:"not null" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

package dao

import (
	"errors"

	"gorm.io/gorm"

	"github.com/ezeflt/horizon-ai/models"
)

// RevenueDAO handles monthly revenue database operations.
type RevenueDAO struct {
	db *gorm.DB
}

func NewRevenueDAO(db *gorm.DB) *RevenueDAO {
	return &RevenueDAO{db: db}
}

// UpsertMonth creates the record for (year, month) or updates the
// encoded amount of the existing one.
func (d *RevenueDAO) UpsertMonth(year, month int, amountEncoded string) (*models.MonthlyRevenue, error) {
	var rev models.MonthlyRevenue
	err := d.db.Where("year = ? AND month = ?", year, month).First(&rev).Error
	switch {
	case err == nil:
		rev.AmountEncoded = amountEncoded
		if err := d.db.Save(&rev).Error; err != nil {
			return nil, err
		}
		return &rev, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		rev = models.MonthlyRevenue{Year: year, Month: month, AmountEncoded: amountEncoded}
		if err := d.db.Create(&rev).Error; err != nil {
			return nil, err
		}
		return &rev, nil
	default:
		return nil, err
	}
}

// ListByYear returns the records of one year ordered by month.
func (d *RevenueDAO) ListByYear(year int) ([]models.MonthlyRevenue, error) {
	var revs []models.MonthlyRevenue
	if err := d.db.Where("year = ?", year).Order("month ASC").Find(&revs).Error; err != nil {
		return nil, err
	}
	return revs, nil
}

// ListAll returns every record, most recent year first.
func (d *RevenueDAO) ListAll() ([]models.MonthlyRevenue, error) {
	var revs []models.MonthlyRevenue
	if err := d.db.Order("year DESC, month ASC").Find(&revs).Error; err != nil {
		return nil, err
	}
	return revs, nil
}

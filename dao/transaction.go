package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ezeflt/horizon-ai/models"
)

// TransactionDAO handles transaction database operations.
type TransactionDAO struct {
	db *gorm.DB
}

func NewTransactionDAO(db *gorm.DB) *TransactionDAO {
	return &TransactionDAO{db: db}
}

// CreateTransaction adds one transaction record.
func (d *TransactionDAO) CreateTransaction(clientEncoded, amountEncoded string, date time.Time) (*models.Transaction, error) {
	tx := &models.Transaction{
		ID:            uuid.New(),
		ClientEncoded: clientEncoded,
		AmountEncoded: amountEncoded,
		Date:          date,
	}
	if err := d.db.Create(tx).Error; err != nil {
		return nil, err
	}
	return tx, nil
}

// ListAll returns every transaction, most recent date first.
func (d *TransactionDAO) ListAll() ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := d.db.Order("date DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// ListByDateRange returns transactions with start <= date <= end, most
// recent first.
func (d *TransactionDAO) ListByDateRange(start, end time.Time) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := d.db.Where("date >= ? AND date <= ?", start, end).Order("date DESC").Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

package logic

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/ezeflt/horizon-ai/dao"
	"github.com/ezeflt/horizon-ai/models"
	"github.com/ezeflt/horizon-ai/pkg"
)

// Transaction is the decoded, caller-facing view of a transaction.
type Transaction struct {
	ID        string    `json:"id"`
	Client    string    `json:"client"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyReport aggregates the transactions of one month.
type MonthlyReport struct {
	Month            int     `json:"month"`
	MonthName        string  `json:"month_name"`
	Revenue          float64 `json:"revenue"`
	TransactionCount int     `json:"transaction_count"`
}

// TransactionLogic handles transaction business logic.
type TransactionLogic struct {
	txDAO *dao.TransactionDAO
}

func NewTransactionLogic(txDAO *dao.TransactionDAO) *TransactionLogic {
	return &TransactionLogic{txDAO: txDAO}
}

// CreateTransaction stores one transaction with obfuscated client and
// amount.
func (l *TransactionLogic) CreateTransaction(client string, amount float64, date time.Time) (*Transaction, error) {
	rec, err := l.txDAO.CreateTransaction(
		pkg.Encode(client),
		pkg.Encode(strconv.FormatFloat(amount, 'f', -1, 64)),
		date,
	)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		ID:        rec.ID.String(),
		Client:    client,
		Amount:    amount,
		Date:      rec.Date,
		CreatedAt: rec.CreatedAt,
	}, nil
}

// ListAll returns every transaction, decoded, most recent first.
func (l *TransactionLogic) ListAll() ([]Transaction, error) {
	recs, err := l.txDAO.ListAll()
	if err != nil {
		return nil, err
	}
	return decodeTransactions(recs)
}

// ListByMonth returns the decoded transactions of one calendar month.
func (l *TransactionLogic) ListByMonth(year, month int) ([]Transaction, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	recs, err := l.txDAO.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return decodeTransactions(recs)
}

// RevenueByMonth groups one year's transactions by month and sums the
// amounts.
func (l *TransactionLogic) RevenueByMonth(year int) ([]MonthlyReport, error) {
	txs, err := l.ListAll()
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int]*MonthlyReport)
	for _, tx := range txs {
		if tx.Date.Year() != year {
			continue
		}
		month := int(tx.Date.Month())
		report, ok := byMonth[month]
		if !ok {
			report = &MonthlyReport{Month: month, MonthName: MonthName(month)}
			byMonth[month] = report
		}
		report.Revenue += tx.Amount
		report.TransactionCount++
	}

	out := make([]MonthlyReport, 0, len(byMonth))
	for _, report := range byMonth {
		out = append(out, *report)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// TotalRevenue sums every transaction amount of one year.
func (l *TransactionLogic) TotalRevenue(year int) (float64, error) {
	txs, err := l.ListAll()
	if err != nil {
		return 0, err
	}
	var total float64
	for _, tx := range txs {
		if tx.Date.Year() == year {
			total += tx.Amount
		}
	}
	return total, nil
}

func decodeTransactions(recs []models.Transaction) ([]Transaction, error) {
	out := make([]Transaction, 0, len(recs))
	for _, rec := range recs {
		client, err := pkg.Decode(rec.ClientEncoded)
		if err != nil {
			return nil, err
		}
		rawAmount, err := pkg.Decode(rec.AmountEncoded)
		if err != nil {
			return nil, err
		}
		amount, err := strconv.ParseFloat(rawAmount, 64)
		if err != nil {
			return nil, fmt.Errorf("stored transaction amount is not numeric: %v", err)
		}
		out = append(out, Transaction{
			ID:        rec.ID.String(),
			Client:    client,
			Amount:    amount,
			Date:      rec.Date,
			CreatedAt: rec.CreatedAt,
		})
	}
	return out, nil
}

package logic

import (
	"fmt"
	"strconv"

	"github.com/ezeflt/horizon-ai/dao"
	"github.com/ezeflt/horizon-ai/models"
	"github.com/ezeflt/horizon-ai/pkg"
)

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the display name for a 1-based month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// Revenue is the decoded, caller-facing view of a MonthlyRevenue record.
type Revenue struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	MonthName string  `json:"month_name"`
	Amount    float64 `json:"amount"`
}

// RevenueLogic handles monthly revenue business logic. Amounts are
// obfuscated before they reach the database and decoded on the way out.
type RevenueLogic struct {
	revenueDAO *dao.RevenueDAO
}

func NewRevenueLogic(revenueDAO *dao.RevenueDAO) *RevenueLogic {
	return &RevenueLogic{revenueDAO: revenueDAO}
}

// CreateOrUpdate upserts the revenue figure for (year, month).
func (l *RevenueLogic) CreateOrUpdate(year, month int, amount float64) (*Revenue, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}

	encoded := pkg.Encode(strconv.FormatFloat(amount, 'f', -1, 64))
	rec, err := l.revenueDAO.UpsertMonth(year, month, encoded)
	if err != nil {
		return nil, err
	}
	return decodeRevenue(rec)
}

// ListByYear returns the decoded records of one year.
func (l *RevenueLogic) ListByYear(year int) ([]Revenue, error) {
	recs, err := l.revenueDAO.ListByYear(year)
	if err != nil {
		return nil, err
	}
	return decodeRevenues(recs)
}

// TotalByYear sums the decoded amounts of one year.
func (l *RevenueLogic) TotalByYear(year int) (float64, error) {
	revs, err := l.ListByYear(year)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, r := range revs {
		total += r.Amount
	}
	return total, nil
}

// ListAll returns every decoded record.
func (l *RevenueLogic) ListAll() ([]Revenue, error) {
	recs, err := l.revenueDAO.ListAll()
	if err != nil {
		return nil, err
	}
	return decodeRevenues(recs)
}

func decodeRevenue(rec *models.MonthlyRevenue) (*Revenue, error) {
	raw, err := pkg.Decode(rec.AmountEncoded)
	if err != nil {
		return nil, err
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("stored revenue amount is not numeric: %v", err)
	}
	return &Revenue{
		Year:      rec.Year,
		Month:     rec.Month,
		MonthName: MonthName(rec.Month),
		Amount:    amount,
	}, nil
}

func decodeRevenues(recs []models.MonthlyRevenue) ([]Revenue, error) {
	out := make([]Revenue, 0, len(recs))
	for i := range recs {
		rev, err := decodeRevenue(&recs[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *rev)
	}
	return out, nil
}

package logic

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ezeflt/horizon-ai/dao"
	"github.com/ezeflt/horizon-ai/models"
)

func newRevenueLogic(t *testing.T) (*RevenueLogic, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.MonthlyRevenue{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return NewRevenueLogic(dao.NewRevenueDAO(db)), db
}

func TestRevenueRoundtrip(t *testing.T) {
	l, db := newRevenueLogic(t)

	rev, err := l.CreateOrUpdate(2024, 9, 100000)
	if err != nil {
		t.Fatalf("CreateOrUpdate failed: %v", err)
	}
	if rev.Amount != 100000 || rev.MonthName != "September" {
		t.Errorf("unexpected view %+v", rev)
	}

	var stored models.MonthlyRevenue
	if err := db.First(&stored).Error; err != nil {
		t.Fatalf("failed to read stored row: %v", err)
	}
	if stored.AmountEncoded == "100000" {
		t.Errorf("amount must be obfuscated at rest, got %q", stored.AmountEncoded)
	}

	listed, err := l.ListByYear(2024)
	if err != nil {
		t.Fatalf("ListByYear failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Amount != 100000 {
		t.Errorf("unexpected list %+v", listed)
	}
}

func TestRevenueTotalByYear(t *testing.T) {
	l, _ := newRevenueLogic(t)
	for _, m := range []struct {
		month  int
		amount float64
	}{{9, 100000}, {10, 10000}, {11, 300000}} {
		if _, err := l.CreateOrUpdate(2024, m.month, m.amount); err != nil {
			t.Fatalf("CreateOrUpdate failed: %v", err)
		}
	}
	if _, err := l.CreateOrUpdate(2023, 12, 99999); err != nil {
		t.Fatalf("CreateOrUpdate failed: %v", err)
	}

	total, err := l.TotalByYear(2024)
	if err != nil {
		t.Fatalf("TotalByYear failed: %v", err)
	}
	if total != 410000 {
		t.Errorf("expected 410000, got %v", total)
	}
}

func TestRevenueInvalidMonth(t *testing.T) {
	l, _ := newRevenueLogic(t)
	if _, err := l.CreateOrUpdate(2024, 13, 100); err == nil {
		t.Fatalf("month 13 must be rejected")
	}
	if _, err := l.CreateOrUpdate(2024, 0, 100); err == nil {
		t.Fatalf("month 0 must be rejected")
	}
}

func TestMonthName(t *testing.T) {
	if got := MonthName(1); got != "January" {
		t.Errorf("expected January, got %q", got)
	}
	if got := MonthName(12); got != "December" {
		t.Errorf("expected December, got %q", got)
	}
	if got := MonthName(0); got != "" {
		t.Errorf("expected empty name for month 0, got %q", got)
	}
}

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"tally/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExpense inserts an expense with the given date, category, and
// amount, bypassing service-level validation. Use it to seed ledgers with
// known contents.
func CreateTestExpense(t *testing.T, db *gorm.DB, date string, category models.Category, amount float64) *models.Expense {
	t.Helper()

	day, err := models.ParseDate(date)
	if err != nil {
		t.Fatalf("invalid fixture date %q: %v", date, err)
	}

	expense := &models.Expense{
		Date:        day,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("test expense %d", nextID()),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CountExpenses returns the number of rows in the expenses table.
func CountExpenses(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Expense{}).Count(&count).Error; err != nil {
		t.Fatalf("failed to count expenses: %v", err)
	}
	return count
}

package services

import (
	"tally/internal/models"
)

// FilteredExpenses holds the result of a ledger filter: the matching
// records plus the sum of their amounts, so callers need not re-sum.
type FilteredExpenses struct {
	Expenses []models.Expense `json:"expenses"`
	Total    float64          `json:"total"`
}

// DailySummary is the total spend for a single calendar date.
type DailySummary struct {
	Date  models.Date `json:"date"`
	Total float64     `json:"total"`
}

// Insights holds derived statistics computed over the entire ledger.
// On an empty ledger every field is zero-valued; that is a normal state.
type Insights struct {
	AverageSpending    float64 `json:"average_spending"`
	HighestExpense     float64 `json:"highest_expense"`
	MostCommonCategory string  `json:"most_common_category"`
	CategoryCount      int64   `json:"category_count"`
}

// LedgerServicer defines the contract for validated expense CRUD and filtering.
type LedgerServicer interface {
	CreateExpense(date, category string, amount float64, description string) (*models.Expense, error)
	ListExpenses() ([]models.Expense, error)
	DeleteExpense(id uint) error
	FilterByDateRange(start, end string) (*FilteredExpenses, error)
	FilterByCategory(category string) (*FilteredExpenses, error)
}

// ReportServicer defines the contract for aggregate views over the ledger.
type ReportServicer interface {
	DailySummaries() ([]DailySummary, error)
	Insights() (*Insights, error)
}

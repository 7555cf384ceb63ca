package services

import (
	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/validation"
)

// ledgerService implements validated CRUD and filtering over the expense store.
type ledgerService struct {
	db *gorm.DB
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB) LedgerServicer {
	return &ledgerService{db: db}
}

// CreateExpense validates the candidate record and inserts it. No write is
// attempted unless all validators pass. The insert and the retrieval of the
// store-assigned id are a single operation; callers never observe a record
// without an id.
func (s *ledgerService) CreateExpense(date, category string, amount float64, description string) (*models.Expense, error) {
	if err := validation.Date(date); err != nil {
		return nil, err
	}
	if err := validation.Category(category); err != nil {
		return nil, err
	}
	if err := validation.Amount(amount); err != nil {
		return nil, err
	}

	// Parse error is unreachable after validation.Date, but don't assume.
	day, err := models.ParseDate(date)
	if err != nil {
		return nil, apperrors.Validation("date", "must be a valid date in YYYY-MM-DD format")
	}

	expense := &models.Expense{
		Date:        day,
		Category:    models.Category(category),
		Amount:      amount,
		Description: description,
	}

	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	if expense.ID == 0 {
		// The insert may have happened but the generated id was not
		// reported back: surface an uncertain outcome, not silence.
		return nil, apperrors.WithMessage(apperrors.ErrStorageFailure,
			"expense was inserted but its id could not be determined")
	}

	return expense, nil
}

// ListExpenses returns the full ledger ordered by date descending, with id
// descending as a deterministic tie-break within a day. Each call issues a
// fresh query; no cursor state is retained.
func (s *ledgerService) ListExpenses() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	return expenses, nil
}

// DeleteExpense removes the record with the given id. A miss is reported as
// ErrExpenseNotFound, which is an expected outcome rather than a fault.
func (s *ledgerService) DeleteExpense(id uint) error {
	result := s.db.Delete(&models.Expense{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrStorageFailure, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}
	return nil
}

// FilterByDateRange returns all expenses with start <= date <= end, ordered
// by date descending, plus the sum of their amounts. A start after end is
// simply an empty range, not an error.
func (s *ledgerService) FilterByDateRange(start, end string) (*FilteredExpenses, error) {
	if err := validation.Date(start); err != nil {
		return nil, apperrors.Validation("start", "must be a valid date in YYYY-MM-DD format")
	}
	if err := validation.Date(end); err != nil {
		return nil, apperrors.Validation("end", "must be a valid date in YYYY-MM-DD format")
	}

	from, _ := models.ParseDate(start)
	to, _ := models.ParseDate(end)

	var expenses []models.Expense
	if err := s.db.
		Where("date >= ? AND date <= ?", from.Time, to.Time).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}

	return newFilteredExpenses(expenses), nil
}

// FilterByCategory returns all expenses in the given category ordered by
// date descending, plus the sum of their amounts.
func (s *ledgerService) FilterByCategory(category string) (*FilteredExpenses, error) {
	if err := validation.Category(category); err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err := s.db.
		Where("category = ?", category).
		Order("date DESC, id DESC").
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}

	return newFilteredExpenses(expenses), nil
}

func newFilteredExpenses(expenses []models.Expense) *FilteredExpenses {
	total := 0.0
	for _, e := range expenses {
		total += e.Amount
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return &FilteredExpenses{Expenses: expenses, Total: total}
}

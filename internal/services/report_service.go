package services

import (
	"gorm.io/gorm"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// reportService computes aggregate views over the ledger. Nothing here is
// persisted; every call derives its result from the current store contents.
type reportService struct {
	db *gorm.DB
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB) ReportServicer {
	return &reportService{db: db}
}

// DailySummaries groups all expenses by date and sums the amounts per day,
// ordered by date descending. Days with no expenses never appear; an empty
// ledger yields an empty slice.
func (s *reportService) DailySummaries() ([]DailySummary, error) {
	var summaries []DailySummary
	if err := s.db.Model(&models.Expense{}).
		Select("date, SUM(amount) AS total").
		Group("date").
		Order("date DESC").
		Scan(&summaries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	if summaries == nil {
		summaries = []DailySummary{}
	}
	return summaries, nil
}

// Insights computes the average and maximum expense amounts and the most
// common category across the whole ledger. Ties for the most common
// category go to the lexicographically smallest category name. An empty
// ledger returns the zero-valued Insights, which is a normal result.
func (s *reportService) Insights() (*Insights, error) {
	var count int64
	if err := s.db.Model(&models.Expense{}).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}
	if count == 0 {
		return &Insights{}, nil
	}

	var stats struct {
		Average float64
		Highest float64
	}
	if err := s.db.Model(&models.Expense{}).
		Select("AVG(amount) AS average, MAX(amount) AS highest").
		Scan(&stats).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}

	var mode struct {
		Category string
		Count    int64
	}
	if err := s.db.Model(&models.Expense{}).
		Select("category, COUNT(*) AS count").
		Group("category").
		Order("count DESC, category ASC").
		Limit(1).
		Scan(&mode).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorageFailure, err)
	}

	return &Insights{
		AverageSpending:    stats.Average,
		HighestExpense:     stats.Highest,
		MostCommonCategory: mode.Category,
		CategoryCount:      mode.Count,
	}, nil
}

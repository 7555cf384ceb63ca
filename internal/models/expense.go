package models

import "time"

// DateLayout is the calendar date format used for expense dates.
// Dates are plain calendar dates with no time component or timezone.
const DateLayout = "2006-01-02"

// Expense represents a single recorded expense. Expenses are immutable
// once created; correcting a mistake means deleting and re-creating.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Date        Date      `gorm:"type:date;not null;index" json:"date"`
	Category    Category  `gorm:"type:text;not null" json:"category"`
	Amount      float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

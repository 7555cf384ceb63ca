// Package validation holds the pure input validators for expense records.
// The functions here have no side effects and perform no I/O; they are
// called by the ledger service before any mutation is attempted.
package validation

import (
	"math"
	"strings"
	"time"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

// Date checks that s is a real calendar date in YYYY-MM-DD form.
// Impossible dates (month 13, day 32) and any other layout are rejected.
func Date(s string) error {
	if _, err := time.Parse(models.DateLayout, s); err != nil {
		return apperrors.Validation("date", "must be a valid date in YYYY-MM-DD format")
	}
	return nil
}

// Amount checks that x is a finite number strictly greater than zero.
func Amount(x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return apperrors.Validation("amount", "must be a finite number")
	}
	if x <= 0 {
		return apperrors.Validation("amount", "must be greater than zero")
	}
	return nil
}

// Category checks that s exactly matches one of the fixed expense
// categories. Matching is case-sensitive.
func Category(s string) error {
	if !models.IsValidCategory(s) {
		return apperrors.Validation("category",
			"must be one of: "+strings.Join(models.CategoryNames(), ", "))
	}
	return nil
}

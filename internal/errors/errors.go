// Package errors provides custom error types for the tally API and CLI.
// All service-layer errors should use AppError so that both front ends can
// render consistent responses without leaking internal details to clients.
package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
// Field is set for validation errors and names the offending input field.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		Field:      sentinel.Field,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		Field:      sentinel.Field,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Validation creates a validation AppError naming the field that failed and
// the rule it violated, e.g. Validation("amount", "must be greater than zero").
func Validation(field, rule string) *AppError {
	return &AppError{
		Code:       "VALIDATION_FAILED",
		Message:    fmt.Sprintf("%s %s", field, rule),
		Field:      field,
		StatusCode: http.StatusBadRequest,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Ledger errors.
var (
	// ErrExpenseNotFound signals a delete or lookup that matched no record.
	// This is a normal, expected outcome, not a system fault.
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}

	// ErrStorageFailure signals that the persistence layer could not complete
	// the operation. The cause is kept internal and logged server-side.
	ErrStorageFailure = &AppError{Code: "STORAGE_FAILURE", Message: "The expense store could not complete the operation", StatusCode: http.StatusInternalServerError}
)

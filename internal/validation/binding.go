package validation

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tally/internal/models"
)

// RegisterBindings registers the custom ledger validators with Gin's
// binding engine so request structs can declare them as binding tags.
// The service-layer validators above remain authoritative; the binding
// tags just reject malformed payloads before they reach the engine.
func RegisterBindings() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("ledger_date", validateLedgerDate)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

func validateLedgerDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(models.DateLayout, fl.Field().String())
	return err == nil
}

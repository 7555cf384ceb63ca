package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/models"
	"tally/internal/services"
)

// ExpenseHandler handles expense ledger requests
type ExpenseHandler struct {
	ledger services.LedgerServicer
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(ledger services.LedgerServicer) *ExpenseHandler {
	return &ExpenseHandler{ledger: ledger}
}

// CreateExpenseRequest represents the request payload for recording an expense
type CreateExpenseRequest struct {
	Date        string  `json:"date" binding:"required,ledger_date"`
	Category    string  `json:"category" binding:"required,expense_category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// RangeQuery represents the query parameters for a date range filter
type RangeQuery struct {
	Start string `form:"start" binding:"required,ledger_date"`
	End   string `form:"end" binding:"required,ledger_date"`
}

// ErrorResponse represents an error payload
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// CreateExpense records a new expense
// @Summary     Record an expense
// @Description Validate and record a new expense in the ledger
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body CreateExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense recorded"
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /api/expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	expense, err := h.ledger.CreateExpense(req.Date, req.Category, req.Amount, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Expense added successfully!",
		"id":      expense.ID,
		"expense": expense,
	})
}

// ListExpenses returns the full ledger
// @Summary     List expenses
// @Description List all recorded expenses, most recent date first
// @Tags        expenses
// @Produce     json
// @Success     200 {array} models.Expense "All expenses"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /api/expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	expenses, err := h.ledger.ListExpenses()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// DeleteExpense removes an expense by id
// @Summary     Delete an expense
// @Description Delete the expense with the given id
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} map[string]string "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid id"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /api/expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledger.DeleteExpense(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Expense ID %d deleted successfully!", id)})
}

// FilterByDateRange returns expenses within an inclusive date range
// @Summary     Filter expenses by date range
// @Description List expenses with start <= date <= end plus their total
// @Tags        expenses
// @Produce     json
// @Param       start query string true "Range start (YYYY-MM-DD)"
// @Param       end   query string true "Range end (YYYY-MM-DD)"
// @Success     200 {object} services.FilteredExpenses "Matching expenses and total"
// @Failure     400 {object} ErrorResponse "Validation failed"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /api/expenses/range [get]
func (h *ExpenseHandler) FilterByDateRange(c *gin.Context) {
	var q RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, bindingError(err))
		return
	}

	result, err := h.ledger.FilterByDateRange(q.Start, q.End)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": result.Expenses, "total": result.Total})
}

// FilterByCategory returns expenses in a single category
// @Summary     Filter expenses by category
// @Description List expenses in the given category plus their total
// @Tags        expenses
// @Produce     json
// @Param       category path string true "Expense category"
// @Success     200 {object} services.FilteredExpenses "Matching expenses and total"
// @Failure     400 {object} ErrorResponse "Unknown category"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /api/expenses/category/{category} [get]
func (h *ExpenseHandler) FilterByCategory(c *gin.Context) {
	result, err := h.ledger.FilterByCategory(c.Param("category"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": result.Expenses, "total": result.Total})
}

// GetCategories lists the fixed category set
// @Summary     List categories
// @Description List the fixed set of valid expense categories
// @Tags        expenses
// @Produce     json
// @Success     200 {array} string "Valid categories"
// @Router      /api/categories [get]
func (h *ExpenseHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.CategoryNames()})
}

// Package menu implements the interactive console front end. It consumes
// the same ledger and report services as the HTTP API and renders their
// result variants as human-readable text.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/services"
)

// Menu drives the interactive expense tracker loop. It owns no database
// state; the caller supplies the services and closes the store afterwards.
type Menu struct {
	ledger  services.LedgerServicer
	reports services.ReportServicer
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a menu reading user input from in and writing to out.
func New(ledger services.LedgerServicer, reports services.ReportServicer, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		ledger:  ledger,
		reports: reports,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run displays the menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		fmt.Fprintln(m.out, "\nExpense Tracker")
		fmt.Fprintln(m.out, "1. Add Expense")
		fmt.Fprintln(m.out, "2. List Expenses")
		fmt.Fprintln(m.out, "3. View Summaries")
		fmt.Fprintln(m.out, "4. View Insights")
		fmt.Fprintln(m.out, "5. Delete Expense")
		fmt.Fprintln(m.out, "6. Filter by Date Range")
		fmt.Fprintln(m.out, "7. Filter by Category")
		fmt.Fprintln(m.out, "8. Exit")

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.addExpense()
		case "2":
			m.listExpenses()
		case "3":
			m.viewSummaries()
		case "4":
			m.viewInsights()
		case "5":
			m.deleteExpense()
		case "6":
			m.filterByDateRange()
		case "7":
			m.filterByCategory()
		case "8":
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice")
		}
	}
}

// prompt prints the message and reads one trimmed line.
// ok is false when input is exhausted.
func (m *Menu) prompt(message string) (string, bool) {
	fmt.Fprint(m.out, message)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) addExpense() {
	date, ok := m.prompt("Enter date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	fmt.Fprintln(m.out, "Categories:")
	for i, c := range models.Categories {
		fmt.Fprintf(m.out, "  %d. %s\n", i+1, c)
	}
	category, ok := m.prompt("Enter category (number or name): ")
	if !ok {
		return
	}
	if n, err := strconv.Atoi(category); err == nil && n >= 1 && n <= len(models.Categories) {
		category = string(models.Categories[n-1])
	}

	amountText, ok := m.prompt("Enter amount: ")
	if !ok {
		return
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		// Non-numeric text is a validation failure, not a crash.
		m.printError(apperrors.Validation("amount", "must be a number"))
		return
	}

	description, ok := m.prompt("Enter description: ")
	if !ok {
		return
	}

	expense, err := m.ledger.CreateExpense(date, category, amount, description)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Expense added successfully! (id %d)\n", expense.ID)
}

func (m *Menu) listExpenses() {
	expenses, err := m.ledger.ListExpenses()
	if err != nil {
		m.printError(err)
		return
	}
	if len(expenses) == 0 {
		fmt.Fprintln(m.out, "No expenses recorded yet.")
		return
	}

	fmt.Fprintln(m.out, "\nExpenses:")
	m.printExpenses(expenses)
}

func (m *Menu) viewSummaries() {
	summaries, err := m.reports.DailySummaries()
	if err != nil {
		m.printError(err)
		return
	}
	if len(summaries) == 0 {
		fmt.Fprintln(m.out, "No expenses recorded yet.")
		return
	}

	fmt.Fprintln(m.out, "\nExpense Summaries:")
	for _, s := range summaries {
		fmt.Fprintf(m.out, "%s: Total amount spent - $%.2f\n", s.Date, s.Total)
	}
}

func (m *Menu) viewInsights() {
	insights, err := m.reports.Insights()
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintln(m.out, "\nExpense Insights:")
	if insights.CategoryCount == 0 {
		fmt.Fprintln(m.out, "No expenses recorded yet.")
		return
	}
	fmt.Fprintf(m.out, "Average Spending: $%.2f\n", insights.AverageSpending)
	fmt.Fprintf(m.out, "Highest Expense: $%.2f\n", insights.HighestExpense)
	fmt.Fprintf(m.out, "Most Common Category: %s (Count: %d)\n",
		insights.MostCommonCategory, insights.CategoryCount)
}

func (m *Menu) deleteExpense() {
	idText, ok := m.prompt("Enter expense id: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idText, 10, 32)
	if err != nil {
		m.printError(apperrors.Validation("id", "must be a positive integer"))
		return
	}

	if err := m.ledger.DeleteExpense(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrExpenseNotFound) {
			fmt.Fprintf(m.out, "No expense with id %d.\n", id)
			return
		}
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Expense ID %d deleted successfully!\n", id)
}

func (m *Menu) filterByDateRange() {
	start, ok := m.prompt("Enter start date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	end, ok := m.prompt("Enter end date (YYYY-MM-DD): ")
	if !ok {
		return
	}

	result, err := m.ledger.FilterByDateRange(start, end)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintf(m.out, "\nExpenses from %s to %s:\n", start, end)
	m.printExpenses(result.Expenses)
	fmt.Fprintf(m.out, "Total: $%.2f\n", result.Total)
}

func (m *Menu) filterByCategory() {
	category, ok := m.prompt("Enter category: ")
	if !ok {
		return
	}

	result, err := m.ledger.FilterByCategory(category)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintf(m.out, "\n%s expenses:\n", category)
	m.printExpenses(result.Expenses)
	fmt.Fprintf(m.out, "Total: $%.2f\n", result.Total)
}

func (m *Menu) printExpenses(expenses []models.Expense) {
	for _, e := range expenses {
		fmt.Fprintf(m.out, "[%d] %s  %-13s $%.2f  %s\n",
			e.ID, e.Date, e.Category, e.Amount, e.Description)
	}
}

// printError renders an engine error as console text. Validation errors
// carry the violated constraint; storage failures stay generic.
func (m *Menu) printError(err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		fmt.Fprintf(m.out, "Error: %s\n", appErr.Message)
		return
	}
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

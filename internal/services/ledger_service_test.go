package services

import (
	"testing"

	"tally/internal/models"
	"tally/internal/testutil"
)

func TestCreateExpense(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		expense, err := svc.CreateExpense("2024-01-15", "Food", 12.50, "lunch")
		testutil.AssertNoError(t, err)

		if expense.ID == 0 {
			t.Fatal("expected non-zero expense ID")
		}
		if expense.Date.String() != "2024-01-15" {
			t.Errorf("expected date 2024-01-15, got %s", expense.Date)
		}
		if expense.Category != models.CategoryFood {
			t.Errorf("expected category Food, got %s", expense.Category)
		}
		if expense.Amount != 12.50 {
			t.Errorf("expected amount 12.50, got %.2f", expense.Amount)
		}
		if expense.Description != "lunch" {
			t.Errorf("expected description lunch, got %s", expense.Description)
		}
	})

	t.Run("empty_description_allowed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		_, err := svc.CreateExpense("2024-01-15", "Other", 1, "")
		testutil.AssertNoError(t, err)
	})

	t.Run("assigns_fresh_ids", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		first, err := svc.CreateExpense("2024-01-15", "Food", 10, "a")
		testutil.AssertNoError(t, err)
		second, err := svc.CreateExpense("2024-01-15", "Food", 20, "b")
		testutil.AssertNoError(t, err)

		if first.ID == second.ID {
			t.Errorf("expected distinct ids, both were %d", first.ID)
		}
	})

	t.Run("invalid_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		for _, date := range []string{"2024-13-01", "2024-01-32", "15/01/2024", "yesterday", ""} {
			_, err := svc.CreateExpense(date, "Food", 10, "")
			testutil.AssertValidationError(t, err, "date")
		}
		if n := testutil.CountExpenses(t, db); n != 0 {
			t.Errorf("store should be unchanged after rejected creates, has %d rows", n)
		}
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		for _, amount := range []float64{0, -0.01, -100} {
			_, err := svc.CreateExpense("2024-01-15", "Food", amount, "")
			testutil.AssertValidationError(t, err, "amount")
		}
		if n := testutil.CountExpenses(t, db); n != 0 {
			t.Errorf("store should be unchanged after rejected creates, has %d rows", n)
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		for _, category := range []string{"Groceries", "food", "FOOD", ""} {
			_, err := svc.CreateExpense("2024-01-15", category, 10, "")
			testutil.AssertValidationError(t, err, "category")
		}
		if n := testutil.CountExpenses(t, db); n != 0 {
			t.Errorf("store should be unchanged after rejected creates, has %d rows", n)
		}
	})
}

func TestListExpenses(t *testing.T) {
	t.Run("ordered_by_date_then_id_descending", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		oldest := testutil.CreateTestExpense(t, db, "2024-01-01", models.CategoryFood, 10)
		newest := testutil.CreateTestExpense(t, db, "2024-01-03", models.CategoryBills, 30)
		middleA := testutil.CreateTestExpense(t, db, "2024-01-02", models.CategoryFood, 20)
		middleB := testutil.CreateTestExpense(t, db, "2024-01-02", models.CategoryOther, 25)

		expenses, err := svc.ListExpenses()
		testutil.AssertNoError(t, err)

		want := []uint{newest.ID, middleB.ID, middleA.ID, oldest.ID}
		if len(expenses) != len(want) {
			t.Fatalf("expected %d expenses, got %d", len(want), len(expenses))
		}
		for i, id := range want {
			if expenses[i].ID != id {
				t.Errorf("position %d: expected id %d, got %d", i, id, expenses[i].ID)
			}
		}
	})

	t.Run("empty_ledger", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		expenses, err := svc.ListExpenses()
		testutil.AssertNoError(t, err)
		if len(expenses) != 0 {
			t.Errorf("expected empty ledger, got %d expenses", len(expenses))
		}
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("succeeds_exactly_once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		expense := testutil.CreateTestExpense(t, db, "2024-01-15", models.CategoryFood, 10)

		testutil.AssertNoError(t, svc.DeleteExpense(expense.ID))

		err := svc.DeleteExpense(expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("unknown_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		err := svc.DeleteExpense(99999)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestFilterByDateRange(t *testing.T) {
	t.Run("inclusive_bounds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		testutil.CreateTestExpense(t, db, "2024-01-01", models.CategoryFood, 10)
		inRangeA := testutil.CreateTestExpense(t, db, "2024-01-02", models.CategoryFood, 20)
		inRangeB := testutil.CreateTestExpense(t, db, "2024-01-04", models.CategoryBills, 5.50)
		testutil.CreateTestExpense(t, db, "2024-01-05", models.CategoryOther, 100)

		result, err := svc.FilterByDateRange("2024-01-02", "2024-01-04")
		testutil.AssertNoError(t, err)

		if len(result.Expenses) != 2 {
			t.Fatalf("expected 2 expenses in range, got %d", len(result.Expenses))
		}
		if result.Expenses[0].ID != inRangeB.ID || result.Expenses[1].ID != inRangeA.ID {
			t.Errorf("expected [%d %d] in date-descending order, got [%d %d]",
				inRangeB.ID, inRangeA.ID, result.Expenses[0].ID, result.Expenses[1].ID)
		}
		if result.Total != 25.50 {
			t.Errorf("expected total 25.50, got %.2f", result.Total)
		}
	})

	t.Run("start_after_end_is_empty_not_error", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		testutil.CreateTestExpense(t, db, "2024-01-03", models.CategoryFood, 10)

		result, err := svc.FilterByDateRange("2024-02-01", "2024-01-01")
		testutil.AssertNoError(t, err)
		if len(result.Expenses) != 0 {
			t.Errorf("expected empty result, got %d expenses", len(result.Expenses))
		}
		if result.Total != 0 {
			t.Errorf("expected total 0, got %.2f", result.Total)
		}
	})

	t.Run("invalid_bounds", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		_, err := svc.FilterByDateRange("not-a-date", "2024-01-01")
		testutil.AssertValidationError(t, err, "start")

		_, err = svc.FilterByDateRange("2024-01-01", "2024-01-99")
		testutil.AssertValidationError(t, err, "end")
	})
}

func TestFilterByCategory(t *testing.T) {
	t.Run("matches_and_total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		testutil.CreateTestExpense(t, db, "2024-01-01", models.CategoryFood, 10)
		testutil.CreateTestExpense(t, db, "2024-01-02", models.CategoryFood, 20)
		testutil.CreateTestExpense(t, db, "2024-01-03", models.CategoryTransport, 5)

		result, err := svc.FilterByCategory("Food")
		testutil.AssertNoError(t, err)

		if len(result.Expenses) != 2 {
			t.Fatalf("expected 2 Food expenses, got %d", len(result.Expenses))
		}
		for _, e := range result.Expenses {
			if e.Category != models.CategoryFood {
				t.Errorf("expected only Food expenses, got %s", e.Category)
			}
		}
		if result.Total != 30 {
			t.Errorf("expected total 30, got %.2f", result.Total)
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		_, err := svc.FilterByCategory("Groceries")
		testutil.AssertValidationError(t, err, "category")
	})

	t.Run("no_matches", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewLedgerService(db)

		testutil.CreateTestExpense(t, db, "2024-01-01", models.CategoryFood, 10)

		result, err := svc.FilterByCategory("Healthcare")
		testutil.AssertNoError(t, err)
		if len(result.Expenses) != 0 || result.Total != 0 {
			t.Errorf("expected empty result with total 0, got %d expenses, total %.2f",
				len(result.Expenses), result.Total)
		}
	})
}

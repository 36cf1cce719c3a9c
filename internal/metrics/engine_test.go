package metrics

import (
	"context"
	"testing"

	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) (*Engine, *store.MemoryStore) {
	t.Helper()
	memStore := store.NewMemoryStore()
	return NewEngine(memStore, logging.NewNop()), memStore
}

func spendRow(yearMonth string, year int, meta models.MetaCategory, amount string) models.Transaction {
	return models.Transaction{
		YearMonth:    yearMonth,
		Year:         year,
		MetaCategory: meta,
		Amount:       decimal.RequireFromString(amount),
	}
}

func seedTable(t *testing.T, s *store.MemoryStore, table string, rows []models.Transaction) {
	t.Helper()
	require.NoError(t, s.ReplaceTable(context.Background(), table, rows))
}

func TestAverageMonthlySpendingByMetaCategory(t *testing.T) {
	engine, memStore := newTestEngine(t)
	seedTable(t, memStore, store.MartsSpending, []models.Transaction{
		spendRow("2024-01", 2024, models.MetaGroceries, "12.50"),
		spendRow("2024-01", 2024, models.MetaGroceries, "45.00"),
		spendRow("2024-02", 2024, models.MetaGroceries, "100.00"),
		spendRow("2024-01", 2024, models.MetaEatingOut, "150.00"),
	})

	result, err := engine.AverageMonthlySpendingByMetaCategory(context.Background(), PeriodFullHistory, true)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// Ascending by average monthly spend.
	eatingOut, groceries := result[0], result[1]
	require.Equal(t, models.MetaEatingOut, eatingOut.MetaCategory)
	require.Equal(t, models.MetaGroceries, groceries.MetaCategory)

	assert.Equal(t, 2, groceries.NumberOfMonthsInSample)
	assert.Equal(t, 2, groceries.MonthsWithTransactions)
	assert.True(t, groceries.SpendingOccursEveryMonth)
	assert.InDelta(t, 1.5, groceries.AvgMonthlyTransactions, 1e-9)
	assert.Equal(t, "157.5", groceries.TotalSpend.String())
	assert.Equal(t, "78.75", groceries.AvgMonthlySpend.String())

	// The denominator is every month observed in the window, so a category
	// active in one of two months is averaged over both.
	assert.Equal(t, 2, eatingOut.NumberOfMonthsInSample)
	assert.Equal(t, 1, eatingOut.MonthsWithTransactions)
	assert.False(t, eatingOut.SpendingOccursEveryMonth)
	assert.Equal(t, "75", eatingOut.AvgMonthlySpend.String())

	// 78.75 / 153.75 = 0.51219..., rounded to 4 places then scaled.
	assert.Equal(t, "51.22", groceries.PctOfAvgMonthlySpend.String())
	assert.Equal(t, "48.78", eatingOut.PctOfAvgMonthlySpend.String())
}

func TestAverageMonthlySpendingWeddingToggle(t *testing.T) {
	engine, memStore := newTestEngine(t)
	seedTable(t, memStore, store.MartsSpending, []models.Transaction{
		spendRow("2024-01", 2024, models.MetaWedding, "5000"),
		spendRow("2024-01", 2024, models.MetaGroceries, "100"),
	})

	withWedding, err := engine.AverageMonthlySpendingByMetaCategory(context.Background(), PeriodFullHistory, true)
	require.NoError(t, err)
	assert.Len(t, withWedding, 2)

	withoutWedding, err := engine.AverageMonthlySpendingByMetaCategory(context.Background(), PeriodFullHistory, false)
	require.NoError(t, err)
	require.Len(t, withoutWedding, 1)
	assert.Equal(t, models.MetaGroceries, withoutWedding[0].MetaCategory)
}

func TestAverageMonthlySpendingEmptyWindow(t *testing.T) {
	engine, _ := newTestEngine(t)
	result, err := engine.AverageMonthlySpendingByMetaCategory(context.Background(), PeriodFullHistory, true)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestMonthlySpending(t *testing.T) {
	engine, memStore := newTestEngine(t)
	seedTable(t, memStore, store.MartsSpending, []models.Transaction{
		spendRow("2024-02", 2024, models.MetaGroceries, "30"),
		spendRow("2024-01", 2024, models.MetaGroceries, "10"),
		spendRow("2024-01", 2024, models.MetaEatingOut, "20"),
	})

	result, err := engine.MonthlySpending(context.Background(), PeriodFullHistory, true)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "2024-01", result[0].YearMonth)
	assert.Equal(t, "30", result[0].MonthlySpending.String())
	assert.Equal(t, "2024-02", result[1].YearMonth)
	assert.Equal(t, "30", result[1].MonthlySpending.String())
}

func TestMonthlySavingsDensified(t *testing.T) {
	engine, memStore := newTestEngine(t)
	seedTable(t, memStore, store.MartsSavings, []models.Transaction{
		spendRow("2024-01", 2024, "", "100"),
		spendRow("2024-03", 2024, "", "200"),
	})

	result, err := engine.MonthlySavings(context.Background(), PeriodFullHistory)
	require.NoError(t, err)
	require.Len(t, result, 3, "gap months appear as explicit zero rows")

	assert.Equal(t, "2024-02", result[1].YearMonth)
	assert.True(t, result[1].MonthlySavings.IsZero())
}

func TestAverageMonthlySavings(t *testing.T) {
	engine, memStore := newTestEngine(t)
	seedTable(t, memStore, store.MartsSavings, []models.Transaction{
		spendRow("2024-01", 2024, "", "100"),
		spendRow("2024-03", 2024, "", "200"),
	})

	avg, err := engine.AverageMonthlySavings(context.Background(), PeriodFullHistory)
	require.NoError(t, err)
	// The zero-filled 2024-02 row counts in the denominator.
	assert.Equal(t, "100", avg.String())
}

func TestAverageMonthlySavingsEmptyWindow(t *testing.T) {
	engine, _ := newTestEngine(t)
	avg, err := engine.AverageMonthlySavings(context.Background(), PeriodFullHistory)
	require.NoError(t, err)
	assert.True(t, avg.IsZero())
}

func TestMonthlySalaryFiltersNonSalaryIncome(t *testing.T) {
	engine, memStore := newTestEngine(t)
	seedTable(t, memStore, store.MartsIncome, []models.Transaction{
		{YearMonth: "2024-01", Year: 2024, Category: models.CategorySalary, Amount: decimal.RequireFromString("5000")},
		{YearMonth: "2024-01", Year: 2024, Category: models.CategoryTaxRefund, Amount: decimal.RequireFromString("750")},
	})

	result, err := engine.MonthlySalary(context.Background(), PeriodFullHistory)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "5000", result[0].MonthlySalary.String())
}

func TestAverageMonthlyBudget(t *testing.T) {
	engine, memStore := newTestEngine(t)
	seedTable(t, memStore, store.MartsSpending, []models.Transaction{
		spendRow("2024-01", 2024, models.MetaGroceries, "100"),
		spendRow("2024-01", 2024, models.MetaHousing, "2200"),
	})
	seedTable(t, memStore, store.MartsIncome, []models.Transaction{
		{YearMonth: "2024-01", Year: 2024, Category: models.CategorySalary, Amount: decimal.RequireFromString("5000")},
	})

	rows, err := engine.AverageMonthlyBudget(context.Background(), PeriodFullHistory, true)
	require.NoError(t, err)
	require.Len(t, rows, 5, "two spending rows, salary, mortgage contribution, cash flow")

	byDescription := make(map[string]BudgetRow, len(rows))
	for _, row := range rows {
		byDescription[row.Description] = row
	}

	assert.True(t, byDescription["GROCERIES"].Amount.Equal(decimal.RequireFromString("-100")),
		"spending enters the waterfall negated")
	assert.Equal(t, BudgetCategorySpending, byDescription["GROCERIES"].Category)
	assert.True(t, byDescription["SALARY"].Amount.Equal(decimal.RequireFromString("5000")))
	assert.Equal(t, BudgetCategoryIncome, byDescription["SALARY"].Category)
	assert.True(t, byDescription["MORTGAGE_CONTRIBUTION"].Amount.Equal(MortgageContribution))

	// The final row nets everything above it.
	last := rows[len(rows)-1]
	assert.Equal(t, "CASH_FLOW", last.Description)
	assert.Equal(t, BudgetCategoryCashFlow, last.Category)

	expected := decimal.Zero
	for _, row := range rows[:len(rows)-1] {
		expected = expected.Add(row.Amount)
	}
	assert.True(t, last.Amount.Equal(expected), "cash flow must equal the sum of every prior row")
	assert.Equal(t, "3550", last.Amount.String())
}

func TestMonthlyBudgetHistory(t *testing.T) {
	engine, memStore := newTestEngine(t)
	seedTable(t, memStore, store.MartsSpending, []models.Transaction{
		spendRow("2024-01", 2024, models.MetaGroceries, "100"),
		spendRow("2024-02", 2024, models.MetaGroceries, "200"),
		spendRow("2024-03", 2024, models.MetaGroceries, "300"),
	})
	seedTable(t, memStore, store.MartsIncome, []models.Transaction{
		{YearMonth: "2024-01", Year: 2024, Category: models.CategorySalary, Amount: decimal.RequireFromString("5000")},
		{YearMonth: "2024-03", Year: 2024, Category: models.CategorySalary, Amount: decimal.RequireFromString("5000")},
	})
	seedTable(t, memStore, store.MartsSavings, []models.Transaction{
		spendRow("2024-01", 2024, "", "1000"),
		spendRow("2024-03", 2024, "", "500"),
	})

	rows, err := engine.MonthlyBudgetHistory(context.Background(), PeriodFullHistory, true)
	require.NoError(t, err)
	require.Len(t, rows, 3, "the history is anchored on the spending series")

	assert.Equal(t, "2024-01", rows[0].YearMonth)
	assert.Equal(t, "1000", rows[0].CumulativeSavings.String())

	// A month with no salary or savings activity joins as zero.
	assert.Equal(t, "2024-02", rows[1].YearMonth)
	assert.True(t, rows[1].MonthlySalary.IsZero())
	assert.True(t, rows[1].MonthlySavings.IsZero())
	assert.Equal(t, "1000", rows[1].CumulativeSavings.String())

	assert.Equal(t, "2024-03", rows[2].YearMonth)
	assert.Equal(t, "500", rows[2].MonthlySavings.String())
	assert.Equal(t, "1500", rows[2].CumulativeSavings.String())
}

func TestEnginePropagatesInvalidPeriod(t *testing.T) {
	engine, _ := newTestEngine(t)
	_, err := engine.MonthlySpending(context.Background(), Period("whenever"), true)
	require.Error(t, err)

	var invalidPeriod *InvalidPeriodError
	assert.ErrorAs(t, err, &invalidPeriod)
}

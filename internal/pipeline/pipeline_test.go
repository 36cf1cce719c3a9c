package pipeline

import (
	"context"
	"testing"
	"time"

	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/store"
	"jcarver/finpipe/internal/taxonomy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawTx(id, description, amount string, date time.Time, sourceCategory string) models.Transaction {
	return models.Transaction{
		ID:             id,
		Date:           date,
		Amount:         decimal.RequireFromString(amount),
		Description:    description,
		SourceCategory: sourceCategory,
	}
}

func newTestPipeline(t *testing.T) (*Pipeline, *store.MemoryStore) {
	t.Helper()
	tax, err := taxonomy.Default()
	require.NoError(t, err)
	memStore := store.NewMemoryStore()
	return New(memStore, tax, logging.NewNop()), memStore
}

func TestRunAll(t *testing.T) {
	ctx := context.Background()
	p, memStore := newTestPipeline(t)

	march15 := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) // Friday
	march16 := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC) // Saturday

	require.NoError(t, memStore.ReplaceTable(ctx, store.RawBankAccountTransactions, []models.Transaction{
		rawTx("salary", "clearcover inc payroll 240315", "2500.00", march15, ""),
		rawTx("mortgage", "ONPOINT COMM CU  MTG PYMTS", "-2200.00", march15, ""),
		rawTx("ccpay", "CHASE CREDIT CRD AUTOPAY", "-800.00", march15, ""),
	}))
	require.NoError(t, memStore.ReplaceTable(ctx, store.RawCreditCardTransactions, []models.Transaction{
		rawTx("coffee", "SQ *OVATION COFFEE 123", "-6.75", march16, "Food & Drink"),
		rawTx("mystery", "SOME NEW RESTAURANT", "-30.00", march16, "Food & Drink"),
	}))

	require.NoError(t, p.RunAll(ctx))

	bank, err := memStore.ReadTable(ctx, store.StagingBankAccountTransactions)
	require.NoError(t, err)
	require.Len(t, bank, 3)

	byID := make(map[string]models.Transaction, len(bank))
	for _, tx := range bank {
		byID[tx.ID] = tx
	}
	assert.Equal(t, "CLEARCOVER INC PAYROLL 240315", byID["salary"].Description,
		"descriptions are normalized before classification")
	assert.Equal(t, models.CategorySalary, byID["salary"].Category)
	assert.Equal(t, "2024-03", byID["salary"].YearMonth)
	assert.Equal(t, 5, byID["salary"].DayOfWeek)
	assert.Equal(t, models.CategoryMortgagePayment, byID["mortgage"].Category,
		"whitespace runs collapse so the rule still matches")

	card, err := memStore.ReadTable(ctx, store.StagingCreditCardTransactions)
	require.NoError(t, err)
	require.Len(t, card, 2)
	for _, tx := range card {
		byID[tx.ID] = tx
	}
	assert.Equal(t, models.CategoryOvationWeekend, byID["coffee"].Category)
	assert.Equal(t, models.CategoryEatingOut, byID["mystery"].Category)

	unified, err := memStore.ReadTable(ctx, store.MartsTransactions)
	require.NoError(t, err)
	assert.Len(t, unified, 4, "the credit card payment drops during unification")

	spending, err := memStore.ReadTable(ctx, store.MartsSpending)
	require.NoError(t, err)
	assert.Len(t, spending, 3)

	income, err := memStore.ReadTable(ctx, store.MartsIncome)
	require.NoError(t, err)
	require.Len(t, income, 1)
	assert.Equal(t, "salary", income[0].ID)
}

func TestRunLayerUnknown(t *testing.T) {
	p, _ := newTestPipeline(t)
	err := p.RunLayer(context.Background(), "gold")
	assert.ErrorContains(t, err, "unknown pipeline layer")
}

func TestRunLayerStagingOnly(t *testing.T) {
	ctx := context.Background()
	p, memStore := newTestPipeline(t)

	require.NoError(t, memStore.ReplaceTable(ctx, store.RawBankAccountTransactions, []models.Transaction{
		rawTx("x", "INTEREST PAYMENT", "1.23", time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), ""),
	}))

	require.NoError(t, p.RunLayer(ctx, LayerStaging))

	staged, err := memStore.ReadTable(ctx, store.StagingBankAccountTransactions)
	require.NoError(t, err)
	require.Len(t, staged, 1)
	assert.Equal(t, models.CategoryAccountInterest, staged[0].Category)

	marts, err := memStore.ReadTable(ctx, store.MartsTransactions)
	require.NoError(t, err)
	assert.Empty(t, marts, "the marts layer only builds when asked")
}

func TestRunAllEmptyRawLayer(t *testing.T) {
	p, memStore := newTestPipeline(t)
	require.NoError(t, p.RunAll(context.Background()))

	for _, table := range []string{
		store.StagingBankAccountTransactions,
		store.StagingCreditCardTransactions,
		store.MartsTransactions,
	} {
		rows, err := memStore.ReadTable(context.Background(), table)
		require.NoError(t, err)
		assert.Empty(t, rows)
	}
}

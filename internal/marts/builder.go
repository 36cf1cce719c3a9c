package marts

import (
	"context"
	"fmt"

	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/store"
	"jcarver/finpipe/internal/taxonomy"
)

// Builder owns the four mart tables. Each build reads the staging tables and
// replaces its output table from scratch; there is no incremental path.
type Builder struct {
	store  store.TableStore
	tax    *taxonomy.Taxonomy
	logger logging.Logger
}

// NewBuilder wires a mart builder against the given store and taxonomy.
func NewBuilder(tableStore store.TableStore, tax *taxonomy.Taxonomy, logger logging.Logger) *Builder {
	return &Builder{store: tableStore, tax: tax, logger: logger}
}

// BuildAll rebuilds every mart table from the staging layer.
func (b *Builder) BuildAll(ctx context.Context) error {
	unified, err := b.unifiedStream(ctx)
	if err != nil {
		return err
	}

	builds := []struct {
		table string
		rows  []models.Transaction
	}{
		{store.MartsTransactions, unified},
		{store.MartsSpending, b.spending(unified)},
		{store.MartsIncome, b.income(unified)},
		{store.MartsSavings, b.savings(unified)},
	}

	for _, build := range builds {
		if err := b.store.ReplaceTable(ctx, build.table, build.rows); err != nil {
			return fmt.Errorf("build %s: %w", build.table, err)
		}
	}
	return nil
}

// unifiedStream reads both staging tables, merges them and assigns
// meta-categories.
func (b *Builder) unifiedStream(ctx context.Context) ([]models.Transaction, error) {
	bank, err := b.store.ReadTable(ctx, store.StagingBankAccountTransactions)
	if err != nil {
		return nil, fmt.Errorf("read staging bank transactions: %w", err)
	}
	card, err := b.store.ReadTable(ctx, store.StagingCreditCardTransactions)
	if err != nil {
		return nil, fmt.Errorf("read staging credit card transactions: %w", err)
	}

	unified := Unify(bank, card, b.tax)
	AssignMetaCategories(unified, b.tax)

	b.logger.Info("unified transaction streams",
		logging.Field{Key: "bank_rows", Value: len(bank)},
		logging.Field{Key: "card_rows", Value: len(card)},
		logging.Field{Key: "unified_rows", Value: len(unified)},
	)
	return unified, nil
}

// spending keeps everything that is neither income nor savings, with the
// sign flipped so spend reads as a positive value in reports.
func (b *Builder) spending(unified []models.Transaction) []models.Transaction {
	var rows []models.Transaction
	for _, tx := range unified {
		if b.tax.IsIncome(tx.Category) || b.tax.IsSavings(tx.Category) {
			continue
		}
		tx.Amount = tx.Amount.Neg()
		rows = append(rows, tx)
	}
	return rows
}

// income keeps transactions in the income category set, amounts unchanged.
func (b *Builder) income(unified []models.Transaction) []models.Transaction {
	var rows []models.Transaction
	for _, tx := range unified {
		if b.tax.IsIncome(tx.Category) {
			rows = append(rows, tx)
		}
	}
	return rows
}

// savings keeps transfers to/from investment accounts. A transfer to the
// brokerage is a deduction on the bank side but an increase in savings, so
// the sign flips.
func (b *Builder) savings(unified []models.Transaction) []models.Transaction {
	var rows []models.Transaction
	for _, tx := range unified {
		if b.tax.IsSavings(tx.Category) {
			tx.Amount = tx.Amount.Neg()
			rows = append(rows, tx)
		}
	}
	return rows
}

// Package store provides the persistence boundary for the pipeline: named
// tables of transactions that are either wholesale replaced (staging and mart
// layers) or idempotently appended to (raw layer).
package store

import (
	"context"

	"jcarver/finpipe/internal/models"
)

// Table names owned by the pipeline. The raw layer is append-only by content
// hash; everything downstream is rebuilt from scratch on each run.
const (
	RawBankAccountTransactions     = "raw_bank_account_transactions"
	RawCreditCardTransactions      = "raw_credit_card_transactions"
	StagingBankAccountTransactions = "staging_bank_account_transactions"
	StagingCreditCardTransactions  = "staging_credit_card_transactions"
	MartsTransactions              = "marts_transactions"
	MartsSpending                  = "marts_spending"
	MartsIncome                    = "marts_income"
	MartsSavings                   = "marts_savings"
)

// TableStore is the persistence collaborator injected into pipeline stages.
// Implementations must make ReplaceTable atomic from a reader's perspective:
// a concurrent ReadTable sees either the old contents or the new, never a
// partial write.
type TableStore interface {
	// ReplaceTable drops any existing contents of the named table and
	// writes rows as its new, complete contents.
	ReplaceTable(ctx context.Context, name string, rows []models.Transaction) error

	// ReadTable returns every row of the named table. Reading a table that
	// was never written returns an empty slice, not an error.
	ReadTable(ctx context.Context, name string) ([]models.Transaction, error)

	// UpsertTransactions inserts rows whose id is not already present and
	// ignores the rest. Returns the number of rows actually inserted, so
	// re-ingesting an identical file reports zero.
	UpsertTransactions(ctx context.Context, name string, rows []models.Transaction) (int, error)

	Close() error
}

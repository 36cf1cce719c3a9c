// Package models defines the transaction types and the category taxonomy
// shared by every pipeline stage.
package models

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Source identifies which kind of account a transaction came from.
type Source string

const (
	SourceBankAccount Source = "bank_account"
	SourceCreditCard  Source = "credit_card"
)

// Transaction is a single normalized, categorized financial transaction.
// Year, Month, YearMonth and DayOfWeek are derived from Date at the
// normalization boundary; downstream stages assume they are consistent.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	YearMonth   string          `json:"year_month"`
	DayOfWeek   int             `json:"day_of_week"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`

	// SourceCategory is the coarse category assigned by the card network
	// (e.g. "Food & Drink"). Only present on credit card transactions and
	// only consulted by the classification refinement pass.
	SourceCategory string `json:"source_category,omitempty"`

	Category     Category     `json:"category"`
	MetaCategory MetaCategory `json:"meta_category,omitempty"`

	// AccountOrCard is the opaque account or card identifier the
	// transaction was recorded against.
	AccountOrCard string `json:"account_or_card_number"`
	Source        Source `json:"source"`
}

// descriptionHashLength bounds how much of the description participates in
// the content hash. Matches the importer that produced the historical ids.
const descriptionHashLength = 50

// TransactionID derives the stable content-hash id for a transaction.
// It is deterministic over (date, amount, description prefix), so importing
// the same source row twice produces the same id and the second import is a
// no-op upsert.
func TransactionID(date time.Time, amount decimal.Decimal, description string) string {
	prefix := description
	if len(prefix) > descriptionHashLength {
		prefix = prefix[:descriptionHashLength]
	}
	content := fmt.Sprintf("%s%s%s", date.Format("2006-01-02"), amount.String(), prefix)
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])[:12]
}

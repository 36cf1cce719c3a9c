// Package marts builds the derived, queryable tables from the categorized
// staging streams: a unified transaction table plus spending, income and
// savings projections. Every table is rebuilt wholesale on each run.
package marts

import (
	"jcarver/finpipe/internal/models"
	"jcarver/finpipe/internal/taxonomy"
)

// Unify merges the bank and credit card streams into one. Categories the
// taxonomy marks as internal transfers are dropped: a credit card bill shows
// up as an outflow on the bank account and an inflow on the card, and
// keeping both sides would double count money that never left the household.
// Rows are deduplicated by content-hash id; concatenation order carries no
// meaning.
func Unify(bank, card []models.Transaction, tax *taxonomy.Taxonomy) []models.Transaction {
	unified := make([]models.Transaction, 0, len(bank)+len(card))
	seen := make(map[string]bool, len(bank)+len(card))

	appendRows := func(rows []models.Transaction, source models.Source) {
		for _, tx := range rows {
			if tax.ExcludedFromUnified(source, tx.Category) {
				continue
			}
			if seen[tx.ID] {
				continue
			}
			seen[tx.ID] = true
			tx.Source = source
			unified = append(unified, tx)
		}
	}

	appendRows(card, models.SourceCreditCard)
	appendRows(bank, models.SourceBankAccount)
	return unified
}

// AssignMetaCategories sets MetaCategory on every row from the taxonomy's
// total mapping.
func AssignMetaCategories(rows []models.Transaction, tax *taxonomy.Taxonomy) {
	for i := range rows {
		rows[i].MetaCategory = tax.MetaCategoryFor(rows[i].Category)
	}
}

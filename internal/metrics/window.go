package metrics

import (
	"sort"

	"jcarver/finpipe/internal/models"
)

// subsetByPeriod filters rows down to the requested window. A window larger
// than the available history returns everything present; that is not an
// error, callers must handle short result sets.
func subsetByPeriod(rows []models.Transaction, period Period) ([]models.Transaction, error) {
	switch period {
	case PeriodFullHistory:
		return rows, nil
	case PeriodYTD:
		maxYear := 0
		for _, tx := range rows {
			if tx.Year > maxYear {
				maxYear = tx.Year
			}
		}
		return filter(rows, func(tx models.Transaction) bool { return tx.Year == maxYear }), nil
	}

	months, ok := period.monthCount()
	if !ok {
		return nil, &InvalidPeriodError{Value: string(period)}
	}

	recent := lastMonths(rows, months)
	return filter(rows, func(tx models.Transaction) bool { return recent[tx.YearMonth] }), nil
}

// lastMonths returns the n most recent distinct year-month keys in the data.
// Descending lexicographic order is chronological because the keys are
// zero-padded "YYYY-MM".
func lastMonths(rows []models.Transaction, n int) map[string]bool {
	distinct := distinctYearMonths(rows)
	sort.Sort(sort.Reverse(sort.StringSlice(distinct)))
	if len(distinct) > n {
		distinct = distinct[:n]
	}

	keep := make(map[string]bool, len(distinct))
	for _, ym := range distinct {
		keep[ym] = true
	}
	return keep
}

// distinctYearMonths returns the unique year-month keys present, unsorted.
func distinctYearMonths(rows []models.Transaction) []string {
	seen := make(map[string]bool)
	var distinct []string
	for _, tx := range rows {
		if !seen[tx.YearMonth] {
			seen[tx.YearMonth] = true
			distinct = append(distinct, tx.YearMonth)
		}
	}
	return distinct
}

// applyWeddingFilter drops wedding spending when the caller excludes it.
// Wedding expenses are a one-off outlier that skews monthly averages, so
// planning views want them toggled off.
func applyWeddingFilter(rows []models.Transaction, includeWedding bool) []models.Transaction {
	if includeWedding {
		return rows
	}
	return filter(rows, func(tx models.Transaction) bool {
		return tx.MetaCategory != models.MetaWedding
	})
}

func filter(rows []models.Transaction, keep func(models.Transaction) bool) []models.Transaction {
	kept := make([]models.Transaction, 0, len(rows))
	for _, tx := range rows {
		if keep(tx) {
			kept = append(kept, tx)
		}
	}
	return kept
}

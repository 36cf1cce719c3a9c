package classify

import (
	"jcarver/finpipe/internal/logging"
	"jcarver/finpipe/internal/models"
)

// sourceCategoryFoodAndDrink is the card network's coarse label consulted by
// the refinement pass for descriptions the rule sets do not know. The label
// arrives as-is from the export; only descriptions get normalized.
const sourceCategoryFoodAndDrink = "Food & Drink"

// Classifier holds the per-source rule sets. Build one at startup and pass it
// into the pipeline; the rule sets are immutable after construction.
type Classifier struct {
	bank   RuleSet
	card   RuleSet
	logger logging.Logger
}

// NewClassifier builds a classifier with the production rule sets.
func NewClassifier(logger logging.Logger) *Classifier {
	return &Classifier{
		bank:   BankAccountRules(),
		card:   CreditCardRules(),
		logger: logger,
	}
}

// ClassifyBankAccount assigns a category to every bank account transaction
// in place.
func (c *Classifier) ClassifyBankAccount(rows []models.Transaction) {
	counts := make(map[models.Category]int)
	for i := range rows {
		rows[i].Category = c.bank.Classify(rows[i].Description)
		counts[rows[i].Category]++
	}
	c.logger.Debug("classified bank account transactions",
		logging.Field{Key: "rows", Value: len(rows)},
		logging.Field{Key: "unmatched", Value: counts[models.CategoryOther]},
	)
}

// ClassifyCreditCard assigns a category to every credit card transaction in
// place, then runs the refinement pass. Refinement runs strictly after the
// base pass because it rewrites base results using fields beyond the
// description text.
func (c *Classifier) ClassifyCreditCard(rows []models.Transaction) {
	for i := range rows {
		rows[i].Category = c.card.Classify(rows[i].Description)
	}
	unmatched := 0
	for i := range rows {
		refineCreditCard(&rows[i])
		if rows[i].Category == models.CategoryOther {
			unmatched++
		}
	}
	c.logger.Debug("classified credit card transactions",
		logging.Field{Key: "rows", Value: len(rows)},
		logging.Field{Key: "unmatched", Value: unmatched},
	)
}

// refineCreditCard rewrites ambiguous base categories using context:
//   - OVATION splits into weekend/weekday visits by day of week
//   - unmatched rows the card network labeled "Food & Drink" become EATING_OUT
func refineCreditCard(tx *models.Transaction) {
	switch {
	case tx.Category == models.CategoryOvation && isWeekend(tx.DayOfWeek):
		tx.Category = models.CategoryOvationWeekend
	case tx.Category == models.CategoryOvation:
		tx.Category = models.CategoryOvationWeekday
	case tx.Category == models.CategoryOther && tx.SourceCategory == sourceCategoryFoodAndDrink:
		tx.Category = models.CategoryEatingOut
	}
}

func isWeekend(dayOfWeek int) bool {
	return dayOfWeek == 6 || dayOfWeek == 7
}

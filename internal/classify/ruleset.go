package classify

import "jcarver/finpipe/internal/models"

// Rule pairs a matcher with the category it assigns.
type Rule struct {
	Match    Matcher
	Category models.Category
}

// RuleSet is an ordered list of rules evaluated top to bottom.
type RuleSet struct {
	name  string
	rules []Rule
}

// NewRuleSet builds a rule set. The slice order is the evaluation order.
func NewRuleSet(name string, rules []Rule) RuleSet {
	return RuleSet{name: name, rules: rules}
}

// Name identifies the rule set in logs.
func (rs RuleSet) Name() string { return rs.name }

// Len returns the number of rules.
func (rs RuleSet) Len() int { return len(rs.rules) }

// Classify returns the category of the first matching rule, or
// models.CategoryOther when nothing matches.
func (rs RuleSet) Classify(description string) models.Category {
	for _, rule := range rs.rules {
		if rule.Match.Matches(description) {
			return rule.Category
		}
	}
	return models.CategoryOther
}

// Package classify maps normalized transaction descriptions to spending
// categories through ordered rule lists.
//
// Rules are data, not control flow: each rule set is an explicit ordered
// slice of (matcher, category) pairs evaluated top to bottom, first match
// wins. Order is semantically significant because specific merchant patterns
// must be checked before generic ones they are substrings of. A description
// no rule matches resolves to models.CategoryOther; classification never
// fails. That is deliberate policy, not a gap: unmatched spend must stay
// visible in reports instead of disappearing into an error path.
package classify

import "strings"

// Matcher decides whether a rule applies to a normalized description.
type Matcher interface {
	Matches(description string) bool
}

type equalsMatcher []string

func (m equalsMatcher) Matches(description string) bool {
	for _, v := range m {
		if description == v {
			return true
		}
	}
	return false
}

type containsMatcher []string

func (m containsMatcher) Matches(description string) bool {
	for _, v := range m {
		if strings.Contains(description, v) {
			return true
		}
	}
	return false
}

type prefixMatcher []string

func (m prefixMatcher) Matches(description string) bool {
	for _, v := range m {
		if strings.HasPrefix(description, v) {
			return true
		}
	}
	return false
}

// Descriptions are normalized to uppercase before classification, so
// patterns are uppercased at construction to keep rule definitions safe
// against mixed-case entries.

// Equals matches when the description equals any of the given values.
func Equals(values ...string) Matcher { return equalsMatcher(upperAll(values)) }

// ContainsAny matches when the description contains any of the given values.
func ContainsAny(values ...string) Matcher { return containsMatcher(upperAll(values)) }

// HasPrefix matches when the description starts with any of the given values.
func HasPrefix(values ...string) Matcher { return prefixMatcher(upperAll(values)) }

func upperAll(values []string) []string {
	upper := make([]string, len(values))
	for i, v := range values {
		upper[i] = strings.ToUpper(v)
	}
	return upper
}

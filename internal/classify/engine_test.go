package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualsMatcher(t *testing.T) {
	m := Equals("INTEREST PAYMENT", "APPLE.COM/BILL")

	assert.True(t, m.Matches("INTEREST PAYMENT"))
	assert.True(t, m.Matches("APPLE.COM/BILL"))
	assert.False(t, m.Matches("INTEREST PAYMENT EXTRA"), "equals must not match supersets")
	assert.False(t, m.Matches(""))
}

func TestContainsAnyMatcher(t *testing.T) {
	m := ContainsAny("LYFT", "UBER")

	assert.True(t, m.Matches("LYFT *RIDE TUE 5PM"))
	assert.True(t, m.Matches("UBER TRIP HELP.UBER.COM"))
	assert.False(t, m.Matches("AMTRAK"))
}

func TestHasPrefixMatcher(t *testing.T) {
	m := HasPrefix("CLEARCOVER INC PAYROLL")

	assert.True(t, m.Matches("CLEARCOVER INC PAYROLL 240315"))
	assert.False(t, m.Matches("REVERSAL CLEARCOVER INC PAYROLL"), "prefix must anchor at the start")
}

func TestMatchersUppercasePatterns(t *testing.T) {
	// Rule definitions can carry mixed-case entries; descriptions arrive
	// uppercased, so patterns must be uppercased at construction.
	assert.True(t, ContainsAny("Hale Pele").Matches("HALE PELE PORTLAND"))
	assert.True(t, Equals("Interest Payment").Matches("INTEREST PAYMENT"))
	assert.True(t, HasPrefix("Clearcover").Matches("CLEARCOVER INC"))
}

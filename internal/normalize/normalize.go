// Package normalize standardizes raw transaction descriptions and derives
// the calendar fields every downstream stage keys on.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Description uppercases the raw description, collapses whitespace runs to a
// single space and trims the ends. Idempotent and total over any string.
func Description(raw string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.ToUpper(raw), " "))
}

// Calendar holds the date-derived grouping fields.
type Calendar struct {
	Year      int
	Month     int
	YearMonth string
	DayOfWeek int
}

// CalendarFields derives year, month, the zero-padded "YYYY-MM" key and the
// day of week from a transaction date. Day of week runs 1=Monday..7=Sunday;
// the 1-indexed Monday start reads better in reports than Go's Sunday=0.
func CalendarFields(date time.Time) Calendar {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return Calendar{
		Year:      date.Year(),
		Month:     int(date.Month()),
		YearMonth: fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month())),
		DayOfWeek: weekday,
	}
}

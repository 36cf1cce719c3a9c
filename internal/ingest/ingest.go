// Package ingest reads Chase CSV exports into the raw transaction tables.
// Imports are idempotent: every row gets a content-hash id and the raw layer
// inserts by id, so re-importing a file someone already loaded is a no-op.
package ingest

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Date formats seen in Chase exports.
var dateLayouts = []string{
	"01/02/2006",
	"2006-01-02",
	"01/02/06",
}

func parseDate(raw string) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

var amountJunk = regexp.MustCompile(`[$,]`)

// parseAmount strips currency formatting ("$1,234.56") and parses the
// signed decimal value.
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := amountJunk.ReplaceAllString(strings.TrimSpace(raw), "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unparseable amount %q: %w", raw, err)
	}
	return amount, nil
}

var accountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Chase\s*\d{4}`),
	regexp.MustCompile(`(?i)Chase.*?ending\s+in\s+(\d{4})`),
	regexp.MustCompile(`(?i)Chase.*?(\d{4})`),
}

var innerWhitespace = regexp.MustCompile(`\s+`)

// extractAccountNumber pulls the account or card identifier out of the
// export's file name (exports are named like "Chase1234_Activity.CSV").
// Returns "" when no pattern matches.
func extractAccountNumber(fileName string) string {
	for _, pattern := range accountPatterns {
		if match := pattern.FindString(fileName); match != "" {
			return innerWhitespace.ReplaceAllString(match, "")
		}
	}
	return ""
}

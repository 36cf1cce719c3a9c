package metrics

import (
	"fmt"
	"time"
)

const yearMonthLayout = "2006-01"

// monthRange lists every calendar month from first to last inclusive, both
// given as zero-padded "YYYY-MM" keys.
func monthRange(first, last string) ([]string, error) {
	start, err := time.Parse(yearMonthLayout, first)
	if err != nil {
		return nil, fmt.Errorf("parse year-month %q: %w", first, err)
	}
	end, err := time.Parse(yearMonthLayout, last)
	if err != nil {
		return nil, fmt.Errorf("parse year-month %q: %w", last, err)
	}

	var months []string
	for cursor := start; !cursor.After(end); cursor = cursor.AddDate(0, 1, 0) {
		months = append(months, cursor.Format(yearMonthLayout))
	}
	return months, nil
}

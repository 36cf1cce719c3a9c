// Package metrics computes monthly and average-monthly aggregates over the
// mart tables for a caller-selected time window.
package metrics

import "fmt"

// Period selects a relative time window. Windows are relative to the most
// recent data present, not the wall clock: asking for the last 3 months of a
// dataset that ends in February returns December through February regardless
// of today's date.
type Period string

const (
	PeriodYTD         Period = "ytd"
	PeriodLast1Month  Period = "last_1_months"
	PeriodLast3Months Period = "last_3_months"
	PeriodLast6Months Period = "last_6_months"
	PeriodLast12Month Period = "last_12_months"
	PeriodFullHistory Period = "full_history"
)

// InvalidPeriodError reports a period selector outside the closed set. An
// invalid selector is a caller error and is never silently coerced to
// full_history.
type InvalidPeriodError struct {
	Value string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period %q: period must be one of ytd, last_1_months, last_3_months, last_6_months, last_12_months, full_history", e.Value)
}

// ParsePeriod validates a raw period string.
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case PeriodYTD, PeriodLast1Month, PeriodLast3Months, PeriodLast6Months, PeriodLast12Month, PeriodFullHistory:
		return Period(raw), nil
	}
	return "", &InvalidPeriodError{Value: raw}
}

// monthCount returns how many trailing months a last_N period selects.
func (p Period) monthCount() (int, bool) {
	switch p {
	case PeriodLast1Month:
		return 1, true
	case PeriodLast3Months:
		return 3, true
	case PeriodLast6Months:
		return 6, true
	case PeriodLast12Month:
		return 12, true
	}
	return 0, false
}

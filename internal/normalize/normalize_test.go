package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescription(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "lowercase is uppercased",
			raw:      "starbucks coffee",
			expected: "STARBUCKS COFFEE",
		},
		{
			name:     "whitespace runs collapse to one space",
			raw:      "AMAZON   WEB\t\tSERVICES",
			expected: "AMAZON WEB SERVICES",
		},
		{
			name:     "leading and trailing whitespace trimmed",
			raw:      "  PAYMENT THANK YOU-MOBILE  ",
			expected: "PAYMENT THANK YOU-MOBILE",
		},
		{
			name:     "newlines and tabs treated as whitespace",
			raw:      "ONLINE\nTRANSFER\tTO SAV",
			expected: "ONLINE TRANSFER TO SAV",
		},
		{
			name:     "empty string stays empty",
			raw:      "",
			expected: "",
		},
		{
			name:     "whitespace only collapses to empty",
			raw:      " \t \n ",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Description(tc.raw))
		})
	}
}

func TestDescriptionIdempotent(t *testing.T) {
	inputs := []string{
		"  mixed   Case  input ",
		"ALREADY NORMALIZED",
		"",
	}
	for _, raw := range inputs {
		once := Description(raw)
		assert.Equal(t, once, Description(once), "normalizing twice must equal normalizing once")
	}
}

func TestCalendarFields(t *testing.T) {
	testCases := []struct {
		name      string
		date      time.Time
		year      int
		month     int
		yearMonth string
		dayOfWeek int
	}{
		{
			name:      "monday is day 1",
			date:      time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			year:      2024,
			month:     7,
			yearMonth: "2024-07",
			dayOfWeek: 1,
		},
		{
			name:      "saturday is day 6",
			date:      time.Date(2024, 7, 6, 0, 0, 0, 0, time.UTC),
			year:      2024,
			month:     7,
			yearMonth: "2024-07",
			dayOfWeek: 6,
		},
		{
			name:      "sunday is day 7 not 0",
			date:      time.Date(2024, 7, 7, 0, 0, 0, 0, time.UTC),
			year:      2024,
			month:     7,
			yearMonth: "2024-07",
			dayOfWeek: 7,
		},
		{
			name:      "single digit month is zero padded",
			date:      time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
			year:      2023,
			month:     1,
			yearMonth: "2023-01",
			dayOfWeek: 7,
		},
		{
			name:      "december",
			date:      time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
			year:      2023,
			month:     12,
			yearMonth: "2023-12",
			dayOfWeek: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cal := CalendarFields(tc.date)
			assert.Equal(t, tc.year, cal.Year)
			assert.Equal(t, tc.month, cal.Month)
			assert.Equal(t, tc.yearMonth, cal.YearMonth)
			assert.Equal(t, tc.dayOfWeek, cal.DayOfWeek)
		})
	}
}

package dateutil

import (
	"time"
)

// YearIndex returns the 1-based simulated year a 1-based month falls in
func YearIndex(month int) int {
	if month <= 0 {
		return 0
	}
	return (month-1)/12 + 1
}

// IsYearBoundary reports whether month closes a simulated year
func IsYearBoundary(month int) bool {
	return month > 0 && month%12 == 0
}

// MonthStart normalizes t to the first day of its month in UTC
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthDate maps a 1-based projection month onto the calendar, anchored at start.
// A zero start yields a zero time.
func MonthDate(start time.Time, month int) time.Time {
	if start.IsZero() || month <= 0 {
		return time.Time{}
	}
	return MonthStart(start).AddDate(0, month-1, 0)
}

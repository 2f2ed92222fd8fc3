// Package period computes calendar-month windows for revenue bucketing.
package period

import "time"

const labelFormat = "2006-01"

// MonthStart returns midnight on the first day of t's month in loc.
func MonthStart(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// TrailingMonths returns the starts of the n calendar months ending with the month
// containing now, oldest first. n < 1 yields an empty slice.
func TrailingMonths(now time.Time, n int, loc *time.Location) []time.Time {
	if n < 1 {
		return []time.Time{}
	}
	current := MonthStart(now, loc)
	months := make([]time.Time, n)
	for i := 0; i < n; i++ {
		months[i] = current.AddDate(0, i-(n-1), 0)
	}
	return months
}

// Label renders a month start as "2006-01".
func Label(monthStart time.Time) string {
	return monthStart.Format(labelFormat)
}

// Bounds returns the half-open range [first, end) covered by months.
func Bounds(months []time.Time) (time.Time, time.Time) {
	if len(months) == 0 {
		return time.Time{}, time.Time{}
	}
	return months[0], months[len(months)-1].AddDate(0, 1, 0)
}

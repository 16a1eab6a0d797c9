package models

import "time"

// DaysPerMonth is the fixed month length used for all tenure arithmetic.
const DaysPerMonth = 30

// Date returns midnight UTC for the given calendar day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// AddDays shifts t by n whole days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// MonthsBetween returns elapsed 30-day months from a to b, never negative.
func MonthsBetween(a, b time.Time) int {
	d := DaysBetween(a, b)
	if d <= 0 {
		return 0
	}
	return d / DaysPerMonth
}

// ParseDate parses a YYYY-MM-DD date as UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// FormatDate renders a date as YYYY-MM-DD, or an empty string for nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

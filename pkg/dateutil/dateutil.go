package dateutil

import (
	"fmt"
	"time"
)

// DayLayout is the DD.MM.YYYY layout used for birthdays in input and output
const DayLayout = "02.01.2006"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// NextWeekday returns the first date strictly after start that falls on weekday.
// A start that already is the requested weekday moves a full week ahead.
func NextWeekday(start time.Time, weekday time.Weekday) time.Time {
	daysAhead := int(weekday) - int(start.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return start.AddDate(0, 0, daysAhead)
}

// DaysBetween returns the number of calendar days from `from` to `to`.
// Time of day is ignored, so the result is not affected by DST shifts.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// WithYear returns the start of day for date's month and day in the given year
// and location. 29 February in a non-leap year normalizes to 1 March.
func WithYear(date time.Time, year int, loc *time.Location) time.Time {
	return time.Date(year, date.Month(), date.Day(), 0, 0, 0, 0, loc)
}

// ParseDay parses a date in strict DD.MM.YYYY format
// Example: 29.02.2024
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return t, nil
}

// FormatDay formats date as DD.MM.YYYY
func FormatDay(date time.Time) string {
	return date.Format(DayLayout)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

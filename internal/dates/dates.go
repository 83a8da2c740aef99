// Package dates holds the calendar arithmetic and the canonical date key
// used for storage and lookup.
package dates

import (
	"fmt"
	"time"
)

// KeyLayout is the time layout of a date key (YYYY-MM-DD).
const KeyLayout = "2006-01-02"

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days of the zero-indexed month.
func DaysInMonth(year, month int) int {
	if month == 1 && IsLeap(year) {
		return 29
	}
	return monthDays[month]
}

// FirstWeekday returns the weekday of day 1 of the zero-indexed month, 0=Sunday.
func FirstWeekday(year, month int) int {
	return int(time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// FormatKey renders t's local calendar day as YYYY-MM-DD.
// No zone conversion happens: the components are read as they are.
func FormatKey(t time.Time) string {
	return Key(t.Year(), int(t.Month())-1, t.Day())
}

// Key builds the date key of a zero-indexed month and a 1-based day.
func Key(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month+1, day)
}

// ParseKey is the inverse of FormatKey. The result is midnight in loc.
func ParseKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

// Today returns the date key of now.
func Today(now time.Time) string { return FormatKey(now) }

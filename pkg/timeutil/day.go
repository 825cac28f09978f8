package timeutil

import (
	"fmt"
	"time"
)

// DayLayout is the calendar day key form used across the store, local
// storage, and remote rows.
const DayLayout = "2006-01-02"

// DayKey renders t as a calendar day key in t's own location.
func DayKey(t time.Time) string {
	return t.Format(DayLayout)
}

// Today is the caller's current local day, not UTC.
func Today() string {
	return DayKey(time.Now())
}

// ParseDay validates a YYYY-MM-DD day key.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return t, nil
}

// IsLeapYear implements the Gregorian rule: divisible by 4 and not by
// 100, unless also divisible by 400.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	default:
		return year%4 == 0
	}
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

package habit

import (
	"tableflip.dev/streak/pkg/timeutil"
)

// StreakThrough counts consecutive completed days ending at today (or
// yesterday, so an unticked today doesn't hide an active streak).
func StreakThrough(done DaySet, today string) int {
	day, err := timeutil.ParseDay(today)
	if err != nil {
		return 0
	}
	if !done.Has(today) {
		day = day.AddDate(0, 0, -1)
	}
	n := 0
	for done.Has(timeutil.DayKey(day)) {
		n++
		day = day.AddDate(0, 0, -1)
	}
	return n
}

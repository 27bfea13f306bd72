package utils

import "time"

// NextValentine returns the next February 14 on or after the calendar day of
// now, and how many whole days away it is. On February 14 itself the count
// is 0.
func NextValentine(now time.Time) (time.Time, int) {
	target := time.Date(now.Year(), time.February, 14, 0, 0, 0, 0, now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if today.After(target) {
		target = target.AddDate(1, 0, 0)
	}

	return target, daysBetween(today, target)
}

// daysBetween counts calendar days from a to b, ignoring DST shifts.
func daysBetween(a, b time.Time) int {
	ua := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	ub := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}

package domain

import "time"

// DateOnly truncates t to midnight UTC. All rental date arithmetic is
// done on normalized dates so wall-clock components and DST offsets
// never leak into day counts.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole days from a to b, using only
// the calendar date of each argument. Negative when b is before a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

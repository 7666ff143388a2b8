package utils

import (
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a calendar-day string ("2006-01-02") into midnight UTC.
// Ledger dates are days, not timestamps; normalizing here keeps <=/>= range
// filters exact across drivers.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date %q, want YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

// TruncateToDay drops the time-of-day component (UTC).
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func UniqueSlice[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func NewTrue() *bool {
	b := true
	return &b
}

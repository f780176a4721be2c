package utils

import (
	"strings"
	"time"
)

const DateOnly = "2006-01-02"

// Garmin reports local timestamps as ISO-like strings, sometimes with a
// trailing "Z", a timezone offset, or a sub-second fraction. The offset and
// fraction carry no useful information here: the value is already local to
// the run, so everything after the seconds is dropped and the remainder is
// parsed as a naive timestamp.
var garminLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	DateOnly,
}

// ParseGarminTimestamp parses a provider timestamp. Returns nil on any
// failure; callers treat a missing timestamp as "cannot enrich", never as a
// reason to abort a sync.
func ParseGarminTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	clean := strings.TrimSuffix(s, "Z")
	clean, _, _ = strings.Cut(clean, "+")
	clean, _, _ = strings.Cut(clean, ".")
	for _, layout := range garminLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return &t
		}
	}
	return nil
}

// ParseGarminDate is ParseGarminTimestamp truncated to the calendar date.
func ParseGarminDate(s string) *time.Time {
	t := ParseGarminTimestamp(s)
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}

// ParseDateOnly parses a "YYYY-MM-DD" query or body value.
func ParseDateOnly(s string) (time.Time, error) {
	return time.Parse(DateOnly, s)
}

// Midnight truncates a time to its calendar date in UTC, matching how
// workout dates are stored.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

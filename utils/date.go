package utils

import (
	"fmt"
	"time"
)

// TruncateToDay drops the time-of-day component, keeping the location.
// A meal logged at any hour belongs to exactly one day; the runtime's
// local clock settings determine the cut.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseDay accepts a plain date or an RFC 3339 timestamp and returns the
// local midnight of that day.
func ParseDay(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return TruncateToDay(t.Local()), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD or RFC 3339", s)
}

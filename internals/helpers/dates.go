// file: internals/helpers/dates.go
package helper

import (
	"strings"
	"time"
)

// Due dates are day-granular: the wire format is always "2006-01-02",
// no time-of-day, no timezone.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar-date string, normalized to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// FormatDate renders a calendar-date string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateOnly truncates to midnight UTC so two dates compare by day.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date (UTC).
func Today() time.Time {
	return DateOnly(time.Now().UTC())
}

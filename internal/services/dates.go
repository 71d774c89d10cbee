package services

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used across request parameters.
const DateLayout = "2006-01-02"

// ErrDateFormat flags a date that does not parse as YYYY-MM-DD.
var ErrDateFormat = errors.New("invalid date format, please use YYYY-MM-DD")

// ParseDate parses a required YYYY-MM-DD value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, ErrDateFormat
	}
	return t, nil
}

// ParseOptionalDate parses an optional YYYY-MM-DD value, returning nil for
// an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// sameCalendarDay reports whether two timestamps fall on the same calendar
// date, ignoring time of day.
func sameCalendarDay(a, b time.Time) bool {
	return a.Format(DateLayout) == b.Format(DateLayout)
}

package services

import (
	"fmt"
	"time"
)

// DateLayout is the calendar format accepted on input (HTML5 date inputs)
const DateLayout = "2006-01-02"

// storedHour is the time-of-day every stored calendar date is pinned to
const storedHour = 12

// ParseDate parses a YYYY-MM-DD string into a normalized calendar date.
// Out-of-range values such as 2026-02-31 are rejected.
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q: expected a valid YYYY-MM-DD date", ErrValidation, dateStr)
	}

	return NormalizeDate(parsedTime), nil
}

// NormalizeDate keeps the calendar day of t and pins it to noon UTC, so a
// client converting to its own timezone still displays the same day.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), storedHour, 0, 0, 0, time.UTC)
}

// SameDay compares two dates by calendar day only
func SameDay(a, b time.Time) bool {
	return NormalizeDate(a).Equal(NormalizeDate(b))
}

// BeforeDay reports whether a falls on an earlier calendar day than b
func BeforeDay(a, b time.Time) bool {
	return NormalizeDate(a).Before(NormalizeDate(b))
}

// ParseClockTime validates an optional HH:MM time-of-day string
func ParseClockTime(value string) (string, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return "", fmt.Errorf("%w: invalid time %q: expected HH:MM", ErrValidation, value)
	}
	return t.Format("15:04"), nil
}

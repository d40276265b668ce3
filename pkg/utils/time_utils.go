package utils

import (
	"fmt"
	"time"
)

const (
	// Layout of curated itinerary rows, e.g. "09:30 AM".
	Clock12Layout = "03:04 PM"
	// Layout of planner timestamps, e.g. "2025-01-26 11:00".
	DateTimeLayout = "2006-01-02 15:04"
)

// ParseClock12 parses a stored 12-hour clock string strictly. A malformed
// stored time is a data-integrity failure, not something to paper over.
func ParseClock12(value string) (time.Time, error) {
	t, err := time.Parse(Clock12Layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad stored time %q: %v", ErrDataIntegrity, value, err)
	}
	return t, nil
}

func FormatClock12(t time.Time) string {
	return t.Format(Clock12Layout)
}

func FormatClock24(t time.Time) string {
	return t.Format("15:04")
}

// ParseDateTime parses a planner window boundary such as "2025-01-26 11:00".
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad datetime %q", ErrInvalidInput, value)
	}
	return t, nil
}

// MinutesOfDay returns the minute offset of t within its day.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

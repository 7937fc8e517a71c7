// Package timeutil is the one place calendar-day boundaries are
// computed. The whole service uses the UTC calendar: upstream
// timestamps arrive as RFC 3339 (usually with a Z suffix) and every
// day split, day key and minute-of-day here is taken in UTC, so a
// segment never lands on different days in different components.
package timeutil

import (
	"fmt"
	"time"
)

// DayKeyFormat is the wire format for calendar-day keys.
const DayKeyFormat = "2006-01-02"

// StartOfDay returns 00:00:00 UTC of t's UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NextMidnight returns 00:00:00 UTC of the day after t's UTC calendar day.
func NextMidnight(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// DayKey formats t's UTC calendar day as 2006-01-02.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyFormat)
}

// ParseDayKey parses a 2006-01-02 day key as midnight UTC.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyFormat, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day key %q: %w", key, err)
	}
	return t, nil
}

// MinuteOfDay returns how many minutes into its UTC calendar day t is,
// in [0, 1440).
func MinuteOfDay(t time.Time) int {
	u := t.UTC()
	return u.Hour()*60 + u.Minute()
}

// FormatClock renders t as a 12-hour clock time like "8:30 AM", the
// format the remarks list uses.
func FormatClock(t time.Time) string {
	return t.UTC().Format("3:04 PM")
}

// FormatDate renders t's day like "March 1, 2024" for sheet headers.
func FormatDate(t time.Time) string {
	return t.UTC().Format("January 2, 2006")
}

// Package dates converts between dd/MM/yyyy strings and the canonical
// storage form of a calendar day: 12:00 UTC on that day. Noon keeps the day
// stable when the instant is rendered in any zone between UTC-12 and UTC+12.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const canonicalHour = 12

// Parse reads a dd/MM/yyyy (or d/M/yyyy) string. It reports false for
// malformed input and for days that do not exist on the calendar.
func Parse(value string) (time.Time, bool) {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	if year < 1 || year > 9999 {
		return time.Time{}, false
	}

	// time.Date normalizes out-of-range values (31/04 becomes 01/05), so a
	// mismatch on the way back out means the input was not a real day.
	t := time.Date(year, time.Month(month), day, canonicalHour, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// Format renders a canonical date as zero-padded dd/MM/yyyy.
func Format(t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
}

// Canonical pins t to noon UTC of its UTC calendar day.
func Canonical(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), canonicalHour, 0, 0, 0, time.UTC)
}

// Today returns the canonical form of the calendar day now falls on in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), canonicalHour, 0, 0, 0, time.UTC)
}

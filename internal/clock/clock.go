package clock

import (
	"fmt"
	"time"
)

// DayLayout is the fixed on-disk day format (dd/mm/yy).
const DayLayout = "02/01/06"

// TimeLayout is the fixed on-disk time-of-day format (24h).
const TimeLayout = "15:04"

const sortableLayout = "060102"

// ParseClock parses a strict 24h "HH:MM" string into a minute of day in
// [0, 1439]. Malformed input reports ok=false; nothing past this boundary
// should ever panic on a bad time string.
func ParseClock(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	hh := int(s[0]-'0')*10 + int(s[1]-'0')
	mm := int(s[3]-'0')*10 + int(s[4]-'0')
	if hh > 23 || mm > 59 {
		return 0, false
	}
	return hh*60 + mm, true
}

// FormatDuration renders a duration in seconds as "Xh Ym", flooring both
// components. Division floors toward minus infinity, so a negative input
// (an end-before-start record) renders the same way the stored data would
// aggregate, e.g. -1800 -> "-1h 30m".
func FormatDuration(totalSec int) string {
	hours := floorDiv(totalSec, 3600)
	minutes := (totalSec - hours*3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// SortableDay converts a dd/mm/yy day string to a "yymmdd" form whose
// lexicographic order matches calendar order. The stored form sorts by day
// number first, which is useless for range comparisons.
func SortableDay(day string) (string, bool) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return "", false
	}
	return t.Format(sortableLayout), true
}

// ValidDay reports whether day is a well-formed dd/mm/yy date.
func ValidDay(day string) bool {
	_, ok := SortableDay(day)
	return ok
}

// Day formats a wall-clock time as a dd/mm/yy day string.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// ShiftDay returns the day string offset by the given number of days.
func ShiftDay(day string, days int) (string, bool) {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return "", false
	}
	return t.AddDate(0, 0, days).Format(DayLayout), true
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

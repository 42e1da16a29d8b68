package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts YYYY-MM-DD or RFC3339 and returns the calendar date at UTC midnight
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// FormatDate formats a date as YYYY-MM-DD, empty for the zero time
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatTimestamp formats a timestamp as RFC3339 in UTC
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// DaysInclusive counts the days from start to end, both included
func DaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

package checklist

import (
	"strings"
	"time"
)

const (
	daysPerYear  = 365.25
	daysPerMonth = 30
)

var dateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano}

// parseDate accepts an ISO calendar date or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func daysBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24
}

// yearsSince is the fractional number of 365.25-day years from start to now.
func yearsSince(start, now time.Time) float64 {
	return daysBetween(start, now) / daysPerYear
}

// monthsSince counts 30-day months from start to now.
func monthsSince(start, now time.Time) float64 {
	return daysBetween(start, now) / daysPerMonth
}

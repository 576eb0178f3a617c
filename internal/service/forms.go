package service

import (
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// optionalString normalizes an empty form value to nil
func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// optionalFloat parses defensively: absent or non-numeric values become nil
func optionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// optionalInt parses defensively: absent or non-numeric values become nil
func optionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &i
}

// startOfDay returns midnight of t's calendar day in t's location
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// parseDate parses a required yyyy-mm-dd form value
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// optionalDate parses an optional yyyy-mm-dd form value; an empty value is
// nil, a malformed one is an error (dates are never silently dropped)
func optionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

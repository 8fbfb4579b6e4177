package utils

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrInvalidDateFormat is returned when a date string matches none of the
	// accepted layouts.
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD or an RFC3339 timestamp")
)

// ParseDate parses a date or timestamp string as used by the record filters.
// RFC3339 timestamps and plain dates (with / or - separators, zero-padded or
// not) are accepted.
func ParseDate(dateStr string) (time.Time, error) {
	trimmed := strings.TrimSpace(dateStr)
	if trimmed == "" {
		return time.Time{}, ErrInvalidDateFormat
	}

	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t, nil
	}

	normalized := strings.ReplaceAll(trimmed, "/", "-")

	dateLayouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02",
		"2006-1-2",
		"2006-01-2",
		"2006-1-02",
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, normalized); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}

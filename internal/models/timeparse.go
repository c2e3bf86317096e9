package models

import (
	"errors"
	"time"
)

// timestampLayouts are tried in order: ISO-8601 with fractional seconds
// first, then without.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

var errEmptyTimestamp = errors.New("empty timestamp")

// parseTimestamp parses an upstream timestamp string. Callers treat a
// failure as "skip this record"; it is never surfaced to the user.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errEmptyTimestamp
	}
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

package views

import (
	"strings"
	"time"
)

// NormalizeTimestamp parses a server timestamp. A value without an
// explicit zone marker is treated as UTC: the backend stores naive UTC
// timestamps, so a missing suffix means UTC, never local time.
func NormalizeTimestamp(value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, &time.ParseError{Layout: time.RFC3339, Value: value}
	}
	if !hasZoneMarker(s) {
		s += "Z"
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05Z07:00", s)
}

// hasZoneMarker reports whether the timestamp carries a trailing Z or a
// +hh:mm / -hh:mm offset after the time portion.
func hasZoneMarker(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	// Look for an offset sign after the date part; the date's own
	// hyphens sit before position 10.
	for i := len(s) - 1; i > 10; i-- {
		switch s[i] {
		case '+', '-':
			return true
		case 'T', ' ':
			return false
		}
	}
	return false
}

// FormatLocal renders a server timestamp in the device's local zone.
// Unparseable values pass through unchanged.
func FormatLocal(value string) string {
	t, err := NormalizeTimestamp(value)
	if err != nil {
		return value
	}
	return t.Local().Format("2006-01-02 15:04")
}

// LocalCalendarDate is the device-local YYYY-MM-DD used for snapshot
// submissions.
func LocalCalendarDate(now time.Time) string {
	return now.Local().Format("2006-01-02")
}

package time_parser

import (
	"errors"
	"time"
)

const (
	// CalendarDateLayout is what date inputs submit.
	CalendarDateLayout = "2006-01-02"
	// InstantLayout matches the millisecond UTC form the log service parses.
	InstantLayout = "2006-01-02T15:04:05.000Z"
)

var ErrEmptyTimestamp = errors.New("timestamp is empty")

// ParseTimestamp converts a record timestamp to time.Time in UTC.
// Supported formats:
//   - RFC3339 and RFC3339Nano
//   - ISO without timezone, with or without fractional seconds (treated as UTC)
//   - space-separated "2006-01-02 15:04:05"
//
// The second return value is false for empty or unsupported strings.
func ParseTimestamp(timestamp string) (time.Time, bool) {
	if timestamp == "" {
		return time.Time{}, false
	}

	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, timestamp); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// ParseCalendarDate returns the start of the given calendar day in location.
func ParseCalendarDate(value string, location *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrEmptyTimestamp
	}

	if location == nil {
		location = time.Local
	}

	return time.ParseInLocation(CalendarDateLayout, value, location)
}

// FormatInstant renders t as a UTC ISO-8601 instant with millisecond precision.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}

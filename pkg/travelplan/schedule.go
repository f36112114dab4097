package travelplan

import (
	"errors"
	"fmt"
	"time"
)

// The Attraction Store exchanges calendar dates as YYYY-MM-DD and start
// times as HH:mm (24 hour). Both are fixed width & zero padded, so
// lexicographic comparison of the raw strings equals chronological
// comparison.
const DateFormat = "2006-01-02"
const ClockFormat = "15:04"

var ErrMalformedTimeValue = errors.New("malformed time value")

// ParseDate validates a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	parsed, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrMalformedTimeValue, value)
	}

	return parsed, nil
}

// ParseClock validates a HH:mm time of day string.
func ParseClock(value string) (time.Time, error) {
	parsed, err := time.Parse(ClockFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: time %q", ErrMalformedTimeValue, value)
	}

	return parsed, nil
}

// FormatDayLabel renders a date with its weekday name for day group
// headers, eg. "Wed May 01 2024".
func FormatDayLabel(date string) (string, error) {
	parsed, err := ParseDate(date)
	if err != nil {
		return "", err
	}

	return parsed.Format("Mon Jan 02 2006"), nil
}

// DurationBetween returns the human readable duration between two times
// of day on an implicit common day, eg. "5 hours" or "2 hours 30 minutes".
// Equal times render as "0 hours". The inputs are clock values only, so
// for a pair that crosses a day boundary this is the clock distance, not
// the elapsed time.
func DurationBetween(clock1 string, clock2 string) (string, error) {
	parsed1, err := ParseClock(clock1)
	if err != nil {
		return "", err
	}
	parsed2, err := ParseClock(clock2)
	if err != nil {
		return "", err
	}

	minutes := int(parsed2.Sub(parsed1).Minutes())
	if minutes < 0 {
		minutes = -minutes
	}

	hours := minutes / 60
	minutes = minutes % 60

	if minutes == 0 {
		return fmt.Sprintf("%d hours", hours), nil
	}

	return fmt.Sprintf("%d hours %d minutes", hours, minutes), nil
}

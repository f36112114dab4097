package travelplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-05-01")
	assert.NoError(t, err)

	for _, value := range []string{"", "2024-5-1", "01-05-2024", "2024/05/01", "2024-13-01", "yesterday"} {
		_, err := ParseDate(value)
		assert.ErrorIs(t, err, ErrMalformedTimeValue, "expected %q to be rejected", value)
	}
}

func TestParseClock(t *testing.T) {
	_, err := ParseClock("09:00")
	assert.NoError(t, err)

	_, err = ParseClock("23:59")
	assert.NoError(t, err)

	for _, value := range []string{"", "9:00", "09:00:00", "25:00", "09h00", "noon"} {
		_, err := ParseClock(value)
		assert.ErrorIs(t, err, ErrMalformedTimeValue, "expected %q to be rejected", value)
	}
}

func TestFormatDayLabel(t *testing.T) {
	label, err := FormatDayLabel("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "Wed May 01 2024", label)

	_, err = FormatDayLabel("not-a-date")
	assert.ErrorIs(t, err, ErrMalformedTimeValue)
}

func TestDurationBetween(t *testing.T) {
	testCases := []struct {
		clock1   string
		clock2   string
		expected string
	}{
		{"09:00", "14:00", "5 hours"},
		{"09:00", "11:30", "2 hours 30 minutes"},
		{"09:00", "09:45", "0 hours 45 minutes"},
		{"10:00", "10:00", "0 hours"},
		{"00:00", "23:59", "23 hours 59 minutes"},
	}

	for _, testCase := range testCases {
		duration, err := DurationBetween(testCase.clock1, testCase.clock2)
		require.NoError(t, err)
		assert.Equal(t, testCase.expected, duration)
	}

	_, err := DurationBetween("09:00", "later")
	assert.ErrorIs(t, err, ErrMalformedTimeValue)
}

func TestStopValidateSchedule(t *testing.T) {
	stop := Stop{Date: "2024-05-01", StartTime: "09:00"}
	assert.NoError(t, stop.ValidateSchedule())

	stop = Stop{Date: "2024-05-01", StartTime: "9am"}
	assert.ErrorIs(t, stop.ValidateSchedule(), ErrMalformedTimeValue)

	stop = Stop{Date: "01/05/2024", StartTime: "09:00"}
	assert.ErrorIs(t, stop.ValidateSchedule(), ErrMalformedTimeValue)
}

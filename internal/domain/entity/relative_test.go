package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		elapsed  time.Duration
		expected string
	}{
		{"zero distance", 0, "just now"},
		{"four seconds", 4 * time.Second, "just now"},
		{"five seconds", 5 * time.Second, "5 seconds ago"},
		{"fifty-nine seconds", 59 * time.Second, "59 seconds ago"},
		{"one minute", 60 * time.Second, "a minute ago"},
		{"ninety seconds rounds up", 90 * time.Second, "2 minutes ago"},
		{"half an hour", 30 * time.Minute, "30 minutes ago"},
		{"one hour", time.Hour, "an hour ago"},
		{"ninety minutes rounds up", 90 * time.Minute, "2 hours ago"},
		{"twenty-three hours", 23 * time.Hour, "23 hours ago"},
		{"one day", 24 * time.Hour, "yesterday"},
		{"thirty-six hours rounds up", 36 * time.Hour, "2 days ago"},
		{"twenty-nine days", 29 * 24 * time.Hour, "29 days ago"},
		{"thirty days", 30 * 24 * time.Hour, "a month ago"},
		{"sixty days", 60 * 24 * time.Hour, "2 months ago"},
		{"three hundred days", 300 * 24 * time.Hour, "10 months ago"},
		{"one year", 365 * 24 * time.Hour, "a year ago"},
		{"two years", 730 * 24 * time.Hour, "2 years ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RelativeTime(now.Add(-tc.elapsed), now))
		})
	}

	t.Run("Future dates read as just now", func(t *testing.T) {
		assert.Equal(t, "just now", RelativeTime(now.Add(3*time.Hour), now))
	})

	t.Run("Chained rounding carries across units", func(t *testing.T) {
		// 59.5 minutes of seconds rounds to 60 minutes, which then
		// rounds to a single hour rather than staying in minutes
		assert.Equal(t, "an hour ago", RelativeTime(now.Add(-3570*time.Second), now))
	})
}

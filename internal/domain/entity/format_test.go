package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTokens(t *testing.T) {
	// Thursday, 7 March 2024, 09:05:03 in the afternoon would flip the
	// meridiem tokens, so a morning instant keeps both halves covered.
	morning := time.Date(2024, 3, 7, 9, 5, 3, 0, time.UTC)
	afternoon := time.Date(2024, 3, 7, 14, 5, 3, 0, time.UTC)

	testCases := []struct {
		name     string
		input    time.Time
		format   string
		expected string
	}{
		{"default layout", morning, "DD MMMM YYYY", "07 March 2024"},
		{"ISO layout", morning, "YYYY-MM-DD", "2024-03-07"},
		{"abbreviated names", morning, "ddd, DD MMM YY", "Thu, 07 Mar 24"},
		{"full weekday", morning, "dddd", "Thursday"},
		{"unpadded fields", morning, "D/M/YYYY", "7/3/2024"},
		{"24-hour time", morning, "HH:mm:ss", "09:05:03"},
		{"unpadded time", morning, "H:m:s", "9:5:3"},
		{"12-hour morning", morning, "hh:mm A", "09:05 AM"},
		{"12-hour afternoon", afternoon, "hh:mm a", "02:05 pm"},
		{"literal passthrough", morning, "DD.MM.YYYY!", "07.03.2024!"},
		{"no tokens at all", morning, "@#$%", "@#$%"},
		{"empty layout falls back to default", morning, "", "07 March 2024"},
		{"repeated tokens", morning, "YYYY YYYY", "2024 2024"},
		{"unicode literals survive", morning, "DD☃MM", "07☃03"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatTokens(tc.input, tc.format))
		})
	}

	t.Run("Longest token wins at each position", func(t *testing.T) {
		// Four Ys must become the full year, never two two-digit years
		assert.Equal(t, "2024", FormatTokens(morning, "YYYY"))
		// MMM binds before MM followed by M
		assert.Equal(t, "Mar", FormatTokens(morning, "MMM"))
	})

	t.Run("Substituted output is not re-scanned", func(t *testing.T) {
		// "March" contains M and a, which must not expand again
		assert.Equal(t, "March", FormatTokens(morning, "MMMM"))
		// "Sunday" contains s and a
		sunday := time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC)
		assert.Equal(t, "Sunday", FormatTokens(sunday, "dddd"))
	})

	t.Run("Hour zero maps to twelve on the 12-hour clock", func(t *testing.T) {
		midnight := time.Date(2024, 3, 7, 0, 30, 0, 0, time.UTC)
		assert.Equal(t, "12:30 am", FormatTokens(midnight, "hh:mm a"))
		noon := time.Date(2024, 3, 7, 12, 30, 0, 0, time.UTC)
		assert.Equal(t, "12:30 pm", FormatTokens(noon, "hh:mm a"))
		thirteen := time.Date(2024, 3, 7, 13, 0, 0, 0, time.UTC)
		assert.Equal(t, "1", FormatTokens(thirteen, "h"))
	})
}

func TestContainsToken(t *testing.T) {
	testCases := []struct {
		name     string
		format   string
		expected bool
	}{
		{"plain layout", "YYYY-MM-DD", true},
		{"single short token", "s", true},
		{"token buried in literals", "on D!", true},
		{"no tokens", "@#$%&*", false},
		{"empty string", "", false},
		{"lowercase y is not a token", "yyyy", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ContainsToken(tc.format))
		})
	}
}

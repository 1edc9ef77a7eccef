package entity

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Sentinel values returned by formatting operations on bad input
const (
	InvalidDate      = "Invalid date"
	InvalidDateRange = "Invalid date range"
)

// Default token layouts
const (
	DefaultFormat      = "DD MMMM YYYY"
	DefaultISOFormat   = "YYYY-MM-DD"
	DefaultRangeFormat = "DD MMM YYYY"
)

// formatTokens lists every recognized token, longest first, so the
// tokenizer always prefers the most specific match at each position.
// A shorter token can therefore never corrupt the expansion of a longer
// one, and substituted output is never re-matched.
var formatTokens = []string{
	"YYYY", "MMMM", "dddd",
	"MMM", "ddd",
	"YY", "MM", "DD", "HH", "hh", "mm", "ss",
	"M", "D", "H", "h", "m", "s", "A", "a",
}

// FormatTokens expands a token layout against the local-time fields of t.
// The layout is consumed in a single greedy left-to-right pass; anything
// that is not a recognized token passes through as a literal. An empty
// layout falls back to DefaultFormat.
func FormatTokens(t time.Time, format string) string {
	if format == "" {
		format = DefaultFormat
	}
	var b strings.Builder
	b.Grow(len(format))
	for i := 0; i < len(format); {
		token := matchToken(format[i:])
		if token != "" {
			b.WriteString(tokenValue(token, t))
			i += len(token)
			continue
		}
		_, size := utf8.DecodeRuneInString(format[i:])
		b.WriteString(format[i : i+size])
		i += size
	}
	return b.String()
}

// ContainsToken reports whether the layout holds at least one recognized
// token.
func ContainsToken(format string) bool {
	for i := 0; i < len(format); i++ {
		if matchToken(format[i:]) != "" {
			return true
		}
	}
	return false
}

// matchToken returns the longest recognized token prefixing s, or "".
func matchToken(s string) string {
	for _, token := range formatTokens {
		if strings.HasPrefix(s, token) {
			return token
		}
	}
	return ""
}

// tokenValue resolves a single token to its field value. Month and
// weekday names are fixed English; the 12-hour field maps hour 0 to 12.
func tokenValue(token string, t time.Time) string {
	switch token {
	case "YYYY":
		return strconv.Itoa(t.Year())
	case "YY":
		return pad2(t.Year() % 100)
	case "MMMM":
		return t.Month().String()
	case "MMM":
		return t.Month().String()[:3]
	case "MM":
		return pad2(int(t.Month()))
	case "M":
		return strconv.Itoa(int(t.Month()))
	case "DD":
		return pad2(t.Day())
	case "D":
		return strconv.Itoa(t.Day())
	case "dddd":
		return t.Weekday().String()
	case "ddd":
		return t.Weekday().String()[:3]
	case "HH":
		return pad2(t.Hour())
	case "H":
		return strconv.Itoa(t.Hour())
	case "hh":
		return pad2(hour12(t))
	case "h":
		return strconv.Itoa(hour12(t))
	case "mm":
		return pad2(t.Minute())
	case "m":
		return strconv.Itoa(t.Minute())
	case "ss":
		return pad2(t.Second())
	case "s":
		return strconv.Itoa(t.Second())
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	}
	return token
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	return h
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

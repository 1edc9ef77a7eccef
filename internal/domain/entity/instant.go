package entity

import (
	"math"
	"strings"
	"time"
)

// instantLayouts lists the string forms Coerce accepts, tried in order.
// Only native-parseable ISO-8601-ish shapes are supported; free-text
// parsing is explicitly out of scope.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006-01",
}

// Coerce normalizes a date-like input into a single absolute instant.
// Accepted inputs are time.Time values, ISO-8601-ish strings and numeric
// epoch milliseconds. The boolean result is false when the input cannot
// be resolved; there is no partial success, and callers translate the
// failure into their own sentinel value.
//
// Every accepted instant is returned in local time: strings without an
// explicit offset are interpreted locally, and inputs that carry their
// own zone (offset strings, time.Time values in other locations) are
// converted, since the whole engine reads local wall-clock fields.
func Coerce(input any) (time.Time, bool) {
	switch v := input.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return v.In(time.Local), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return v.In(time.Local), true
	case string:
		return coerceString(v)
	case int:
		return time.UnixMilli(int64(v)), true
	case int32:
		return time.UnixMilli(int64(v)), true
	case int64:
		return time.UnixMilli(v), true
	case uint64:
		return time.UnixMilli(int64(v)), true
	case float32:
		return coerceFloat(float64(v))
	case float64:
		return coerceFloat(v)
	default:
		return time.Time{}, false
	}
}

func coerceString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t.In(time.Local), true
		}
	}
	return time.Time{}, false
}

func coerceFloat(f float64) (time.Time, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(f)), true
}

package entity

import (
	"fmt"
	"time"
)

// RelativeTime buckets the distance between t and now into a human
// phrase such as "just now", "5 minutes ago" or "a year ago".
//
// Each unit derives from the previous unit's rounded value: minutes =
// round(seconds/60), hours = round(minutes/60), days = round(hours/24),
// months = round(days/30), years = round(days/365). The chained rounding
// is part of the contract and differs subtly from deriving every unit
// independently from raw milliseconds.
func RelativeTime(t, now time.Time) string {
	seconds := roundDiv(now.UnixMilli()-t.UnixMilli(), msPerSecond)
	if seconds < 5 {
		return "just now"
	}
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}

	minutes := roundDiv(seconds, 60)
	if minutes < 60 {
		if minutes == 1 {
			return "a minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := roundDiv(minutes, 60)
	if hours < 24 {
		if hours == 1 {
			return "an hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	}

	days := roundDiv(hours, 24)
	if days < 30 {
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	}

	months := roundDiv(days, 30)
	if months < 12 {
		if months == 1 {
			return "a month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	}

	years := roundDiv(days, 365)
	if years == 1 {
		return "a year ago"
	}
	return fmt.Sprintf("%d years ago", years)
}

// roundDiv divides and rounds half away from zero.
func roundDiv(a, b int64) int64 {
	if a < 0 {
		return -((-a + b/2) / b)
	}
	return (a + b/2) / b
}

package entity

import "time"

// DateAgo returns now decremented by amount units using native calendar
// arithmetic: second through hour are exact duration subtraction, day and
// week subtract whole calendar days, and month, quarter and year go
// through AddDate. AddDate normalizes overflowing day-of-month values
// (e.g. March 31 minus one month lands in early March via February 31),
// and that rollover is preserved rather than corrected.
//
// Unrecognized units leave now untouched.
func DateAgo(now time.Time, amount int, unit TimeUnit) time.Time {
	switch unit {
	case UnitSecond:
		return now.Add(-time.Duration(amount) * time.Second)
	case UnitMinute:
		return now.Add(-time.Duration(amount) * time.Minute)
	case UnitHour:
		return now.Add(-time.Duration(amount) * time.Hour)
	case UnitDay:
		return now.AddDate(0, 0, -amount)
	case UnitWeek:
		return now.AddDate(0, 0, -7*amount)
	case UnitMonth:
		return now.AddDate(0, -amount, 0)
	case UnitQuarter:
		return now.AddDate(0, -3*amount, 0)
	case UnitYear:
		return now.AddDate(-amount, 0, 0)
	}
	return now
}

// DateDifference returns d1 minus d2 in whole units, floored toward
// negative infinity. Month, quarter and year use the averaged-day
// factors from UnitMilliseconds, not calendar boundaries.
func DateDifference(d1, d2 time.Time, unit TimeUnit) int64 {
	return floorDiv(d1.UnixMilli()-d2.UnixMilli(), UnitMilliseconds(unit))
}

// IsBefore reports whether d1 falls before d2 at the given granularity.
// For the day unit the comparison is an exact (year, month, day) triple
// ordering, so two instants on the same calendar day are never before
// each other regardless of their times. Every other unit delegates to
// the sign of DateDifference.
func IsBefore(d1, d2 time.Time, unit TimeUnit) bool {
	if unit == UnitDay {
		return compareCalendarDay(d1, d2) < 0
	}
	return DateDifference(d1, d2, unit) < 0
}

// IsAfter is the mirror of IsBefore.
func IsAfter(d1, d2 time.Time, unit TimeUnit) bool {
	if unit == UnitDay {
		return compareCalendarDay(d1, d2) > 0
	}
	return DateDifference(d1, d2, unit) > 0
}

// SameCalendarDay reports whether two instants share a local calendar day.
func SameCalendarDay(a, b time.Time) bool {
	return compareCalendarDay(a, b) == 0
}

// WithinRange reports whether t falls on or after the boundary obtained
// by decrementing now with the same calendar arithmetic as DateAgo.
func WithinRange(t, now time.Time, amount int, unit TimeUnit) bool {
	return !t.Before(DateAgo(now, amount, unit))
}

// rangeDays maps a range keyword to a count of fixed 24-hour days. This
// is intentionally distinct from the calendar decrement in DateAgo: a
// "month" range is always exactly 30 days.
var rangeDays = map[string]int{
	"day":   1,
	"week":  7,
	"month": 30,
}

// DateRangeStart returns the instant exactly 1, 7 or 30 fixed-length days
// before now for timeRange day, week or month. Unknown ranges fall back
// to week.
func DateRangeStart(now time.Time, timeRange string) time.Time {
	days, ok := rangeDays[timeRange]
	if !ok {
		days = rangeDays["week"]
	}
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// compareCalendarDay orders two instants by local calendar date only.
func compareCalendarDay(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

// floorDiv divides and floors toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

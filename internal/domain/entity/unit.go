package entity

// TimeUnit identifies a calendar unit used by the date arithmetic functions
type TimeUnit string

// Supported time units
const (
	UnitSecond  TimeUnit = "second"
	UnitMinute  TimeUnit = "minute"
	UnitHour    TimeUnit = "hour"
	UnitDay     TimeUnit = "day"
	UnitWeek    TimeUnit = "week"
	UnitMonth   TimeUnit = "month"
	UnitQuarter TimeUnit = "quarter"
	UnitYear    TimeUnit = "year"
)

// Millisecond conversion factors per unit.
// Second through week are exact. Month, quarter and year use averaged
// day counts (30.4375, 91.3125 and 365.25 days) so that difference
// computations stay consistent over long spans. Addition and subtraction
// of those units go through calendar rollover instead (see DateAgo), so
// the two paths are not numerically inverse of each other.
const (
	msPerSecond int64 = 1000
	msPerMinute       = 60 * msPerSecond
	msPerHour         = 60 * msPerMinute
	msPerDay          = 24 * msPerHour
	msPerWeek         = 7 * msPerDay
	msPerMonth        = 2629800000  // 30.4375 days
	msPerQuarter      = 7889400000  // 91.3125 days
	msPerYear         = 31557600000 // 365.25 days
)

// UnitMilliseconds returns the millisecond conversion factor for the unit.
// Unrecognized units return 1 so a difference degrades to raw milliseconds
// instead of failing.
func UnitMilliseconds(unit TimeUnit) int64 {
	switch unit {
	case UnitSecond:
		return msPerSecond
	case UnitMinute:
		return msPerMinute
	case UnitHour:
		return msPerHour
	case UnitDay:
		return msPerDay
	case UnitWeek:
		return msPerWeek
	case UnitMonth:
		return msPerMonth
	case UnitQuarter:
		return msPerQuarter
	case UnitYear:
		return msPerYear
	default:
		return 1
	}
}

// SortOrder selects the comparator direction for SortByDate
type SortOrder string

// Supported sort orders
const (
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

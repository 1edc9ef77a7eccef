package usecase

import (
	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
)

// DateAgoQuery parameterizes GetDateAgo. A zero Amount defaults to 7, an
// empty Unit to day and an empty Format to "YYYY-MM-DD". An explicit
// Amount of 0 is indistinguishable from an absent one and also yields
// the default.
type DateAgoQuery struct {
	Amount int
	Unit   entity.TimeUnit
	Format string
}

// CompareQuery parameterizes the two-date operations. A nil Date2
// defaults to the current instant and an empty Unit to day.
type CompareQuery struct {
	Date1 any
	Date2 any
	Unit  entity.TimeUnit
}

// RangeQuery parameterizes IsDateWithinRange. A zero Amount defaults to 7
// and an empty Unit to day; as with DateAgoQuery, an explicit 0 cannot be
// told apart from an absent Amount.
type RangeQuery struct {
	Date   any
	Amount int
	Unit   entity.TimeUnit
}

// DateRangeQuery parameterizes FormatDateRange. An empty Format defaults
// to "DD MMM YYYY" and an empty Separator to " - ".
type DateRangeQuery struct {
	Start     any
	End       any
	Format    string
	Separator string
}

// DateUseCase exposes the date engine with the ambient clock and the
// configured defaults applied. Failures never surface as errors: every
// method degrades to its documented sentinel ("Invalid date", false, 0,
// an empty slice) when an input cannot be coerced.
type DateUseCase interface {
	// FormatDateString expands a token layout against the coerced input
	FormatDateString(input any, format string) string

	// FormatDate is the general entry point: "relative" or a same-day
	// input routes to the relative classifier, anything else is treated
	// as a token layout
	FormatDate(input any, formatType string) string

	// GetRelativeTime returns the bucketed human phrase for the input
	GetRelativeTime(input any) string

	// GetDateAgo formats the instant amount units before now
	GetDateAgo(q DateAgoQuery) string

	// GetCurrentDate formats the current instant
	GetCurrentDate(format string) string

	// GetDateDifference returns date1 minus date2 in whole units
	GetDateDifference(q CompareQuery) int64

	// IsDateBefore reports whether date1 precedes date2 at unit granularity
	IsDateBefore(q CompareQuery) bool

	// IsDateAfter reports whether date1 follows date2 at unit granularity
	IsDateAfter(q CompareQuery) bool

	// IsDateWithinRange reports whether the date falls within the last
	// amount units
	IsDateWithinRange(q RangeQuery) bool

	// FormatDateRange renders both endpoints and joins them
	FormatDateRange(q DateRangeQuery) string

	// CalculateDateRange returns the ISO date 1/7/30 fixed days back for
	// timeRange day/week/month
	CalculateDateRange(timeRange string) string

	// SortByDate orders records by a date-bearing field into a new slice
	SortByDate(data []map[string]any, field string, order entity.SortOrder) []map[string]any

	// GetReadTime estimates reading minutes for the content
	GetReadTime(content string, wordsPerMinute int) int
}

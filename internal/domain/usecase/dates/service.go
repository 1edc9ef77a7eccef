package dates

import (
	"time"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/date-engine/internal/domain/port/usecase"
)

// Config carries the caller-tunable defaults for the date service.
// Zero-valued fields fall back to the documented defaults.
type Config struct {
	DefaultFormat  string // token layout when none is given ("DD MMMM YYYY")
	RangeFormat    string // token layout for range endpoints ("DD MMM YYYY")
	RangeSeparator string // joiner for range endpoints (" - ")
	WordsPerMinute int    // reading speed for read-time estimates (265)
}

func (c *Config) applyDefaults() {
	if c.DefaultFormat == "" {
		c.DefaultFormat = entity.DefaultFormat
	}
	if c.RangeFormat == "" {
		c.RangeFormat = entity.DefaultRangeFormat
	}
	if c.RangeSeparator == "" {
		c.RangeSeparator = " - "
	}
	if c.WordsPerMinute <= 0 {
		c.WordsPerMinute = entity.DefaultWordsPerMinute
	}
}

// Service implements the date use case over the pure engine functions,
// supplying "now" from the injected time provider. It holds no mutable
// state, so a single instance is safe for concurrent use.
type Service struct {
	timeProvider coreport.TimeProvider
	cfg          Config
}

// NewService creates a new date service instance
func NewService(timeProvider coreport.TimeProvider, cfg Config) usecase.DateUseCase {
	cfg.applyDefaults()
	return &Service{
		timeProvider: timeProvider,
		cfg:          cfg,
	}
}

// FormatDateString expands a token layout against the coerced input.
// An empty format falls back to the configured default layout.
func (s *Service) FormatDateString(input any, format string) string {
	t, ok := entity.Coerce(input)
	if !ok {
		return entity.InvalidDate
	}
	if format == "" {
		format = s.cfg.DefaultFormat
	}
	return entity.FormatTokens(t, format)
}

// FormatDate is the general formatting entry point. The literal
// formatType "relative", or any input falling on the current local
// calendar day, routes to the relative classifier regardless of the
// format string; otherwise formatType is used as the token layout.
func (s *Service) FormatDate(input any, formatType string) string {
	t, ok := entity.Coerce(input)
	if !ok {
		return entity.InvalidDate
	}
	now := s.timeProvider.Now()
	if formatType == "relative" || entity.SameCalendarDay(t, now) {
		return entity.RelativeTime(t, now)
	}
	if formatType == "" {
		formatType = s.cfg.DefaultFormat
	}
	return entity.FormatTokens(t, formatType)
}

// GetRelativeTime returns the bucketed human phrase for the input
func (s *Service) GetRelativeTime(input any) string {
	t, ok := entity.Coerce(input)
	if !ok {
		return entity.InvalidDate
	}
	return entity.RelativeTime(t, s.timeProvider.Now())
}

// GetDateAgo formats the instant q.Amount units before now
func (s *Service) GetDateAgo(q usecase.DateAgoQuery) string {
	if q.Amount == 0 {
		q.Amount = 7
	}
	if q.Unit == "" {
		q.Unit = entity.UnitDay
	}
	if q.Format == "" {
		q.Format = entity.DefaultISOFormat
	}
	t := entity.DateAgo(s.timeProvider.Now(), q.Amount, q.Unit)
	return entity.FormatTokens(t, q.Format)
}

// GetCurrentDate formats the current instant
func (s *Service) GetCurrentDate(format string) string {
	if format == "" {
		format = entity.DefaultISOFormat
	}
	return entity.FormatTokens(s.timeProvider.Now(), format)
}

// GetDateDifference returns date1 minus date2 in whole units. Either
// input failing coercion yields 0.
func (s *Service) GetDateDifference(q usecase.CompareQuery) int64 {
	d1, d2, ok := s.coercePair(q)
	if !ok {
		return 0
	}
	return entity.DateDifference(d1, d2, compareUnit(q))
}

// IsDateBefore reports whether date1 precedes date2 at unit granularity
func (s *Service) IsDateBefore(q usecase.CompareQuery) bool {
	d1, d2, ok := s.coercePair(q)
	if !ok {
		return false
	}
	return entity.IsBefore(d1, d2, compareUnit(q))
}

// IsDateAfter reports whether date1 follows date2 at unit granularity
func (s *Service) IsDateAfter(q usecase.CompareQuery) bool {
	d1, d2, ok := s.coercePair(q)
	if !ok {
		return false
	}
	return entity.IsAfter(d1, d2, compareUnit(q))
}

// IsDateWithinRange reports whether the date falls within the last
// q.Amount units, where the boundary uses the same calendar decrement
// as GetDateAgo.
func (s *Service) IsDateWithinRange(q usecase.RangeQuery) bool {
	t, ok := entity.Coerce(q.Date)
	if !ok {
		return false
	}
	if q.Amount == 0 {
		q.Amount = 7
	}
	if q.Unit == "" {
		q.Unit = entity.UnitDay
	}
	return entity.WithinRange(t, s.timeProvider.Now(), q.Amount, q.Unit)
}

// FormatDateRange renders both endpoints with the same layout and joins
// them. Either endpoint failing coercion yields the invalid-range
// sentinel.
func (s *Service) FormatDateRange(q usecase.DateRangeQuery) string {
	start, sok := entity.Coerce(q.Start)
	end, eok := entity.Coerce(q.End)
	if !sok || !eok {
		return entity.InvalidDateRange
	}
	if q.Format == "" {
		q.Format = s.cfg.RangeFormat
	}
	if q.Separator == "" {
		q.Separator = s.cfg.RangeSeparator
	}
	return entity.FormatTokens(start, q.Format) + q.Separator + entity.FormatTokens(end, q.Format)
}

// CalculateDateRange returns the ISO calendar date exactly 1, 7 or 30
// fixed 24-hour days before now for timeRange day, week or month.
func (s *Service) CalculateDateRange(timeRange string) string {
	if timeRange == "" {
		timeRange = "week"
	}
	start := entity.DateRangeStart(s.timeProvider.Now(), timeRange)
	return entity.FormatTokens(start, entity.DefaultISOFormat)
}

// SortByDate orders records by a date-bearing field into a new slice
func (s *Service) SortByDate(data []map[string]any, field string, order entity.SortOrder) []map[string]any {
	if order == "" {
		order = entity.SortDescending
	}
	return entity.SortByDate(data, field, order)
}

// GetReadTime estimates reading minutes for the content. A non-positive
// wordsPerMinute falls back to the configured reading speed.
func (s *Service) GetReadTime(content string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = s.cfg.WordsPerMinute
	}
	return entity.ReadTime(content, wordsPerMinute)
}

// coercePair resolves both dates of a CompareQuery, substituting the
// current instant for a nil Date2.
func (s *Service) coercePair(q usecase.CompareQuery) (time.Time, time.Time, bool) {
	d1, ok := entity.Coerce(q.Date1)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if q.Date2 == nil {
		return d1, s.timeProvider.Now(), true
	}
	d2, ok := entity.Coerce(q.Date2)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return d1, d2, true
}

// compareUnit applies the day default for two-date operations.
func compareUnit(q usecase.CompareQuery) entity.TimeUnit {
	if q.Unit == "" {
		return entity.UnitDay
	}
	return q.Unit
}

package entity

import (
	"regexp"
	"time"

	errs "github.com/amirhossein-jamali/date-engine/internal/domain/error"
)

// MaxPresetNameLength bounds preset names to keep them usable as URL
// path segments
const MaxPresetNameLength = 64

var presetNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FormatPreset is a named, reusable token layout that callers can
// register once and reference by name in formatting requests.
type FormatPreset struct {
	ID        uint64
	Name      string
	Format    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewFormatPreset builds and validates a preset.
func NewFormatPreset(name, format string) (*FormatPreset, error) {
	p := &FormatPreset{Name: name, Format: format}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the preset name against the allowed character set and
// requires the layout to expand at least one token, so a preset can never
// be a pure literal.
func (p *FormatPreset) Validate() error {
	if p.Name == "" || len(p.Name) > MaxPresetNameLength || !presetNamePattern.MatchString(p.Name) {
		return errs.ErrInvalidPresetName
	}
	if !ContainsToken(p.Format) {
		return errs.ErrInvalidFormat
	}
	return nil
}

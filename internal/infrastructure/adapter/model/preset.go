package model

import (
	"time"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
)

// FormatPreset is the persistence model for named format presets
type FormatPreset struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"size:64;uniqueIndex;not null"`
	Format    string    `gorm:"size:255;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the default table name
func (FormatPreset) TableName() string {
	return "format_presets"
}

// ToEntity converts the persistence model to a domain entity
func (m *FormatPreset) ToEntity() *entity.FormatPreset {
	return &entity.FormatPreset{
		ID:        m.ID,
		Name:      m.Name,
		Format:    m.Format,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromEntity converts a domain entity to the persistence model
func FromEntity(p *entity.FormatPreset) *FormatPreset {
	return &FormatPreset{
		ID:     p.ID,
		Name:   p.Name,
		Format: p.Format,
	}
}

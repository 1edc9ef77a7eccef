package persistence

import (
	"context"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
)

// PresetRepository persists named format presets
type PresetRepository interface {
	// Create stores a new preset; returns ErrDuplicatePreset when the
	// name is already taken
	Create(ctx context.Context, preset *entity.FormatPreset) error

	// GetByName retrieves a preset by its unique name; returns
	// ErrPresetNotFound when it doesn't exist
	GetByName(ctx context.Context, name string) (*entity.FormatPreset, error)

	// List returns all presets ordered by name
	List(ctx context.Context) ([]entity.FormatPreset, error)

	// Delete removes a preset by name; returns ErrPresetNotFound when it
	// doesn't exist
	Delete(ctx context.Context, name string) error
}

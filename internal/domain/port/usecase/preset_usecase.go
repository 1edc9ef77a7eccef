package usecase

import (
	"context"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
)

// PresetUseCase defines the business operations for named format presets
type PresetUseCase interface {
	// CreatePreset validates and stores a new preset
	CreatePreset(ctx context.Context, name, format string) (*entity.FormatPreset, error)

	// GetPreset retrieves a preset by name
	GetPreset(ctx context.Context, name string) (*entity.FormatPreset, error)

	// ListPresets returns all stored presets
	ListPresets(ctx context.Context) ([]entity.FormatPreset, error)

	// DeletePreset removes a preset by name
	DeletePreset(ctx context.Context, name string) error
}

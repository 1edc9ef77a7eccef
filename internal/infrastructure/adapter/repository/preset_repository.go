package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/date-engine/internal/domain/error"
	"github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/date-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/date-engine/internal/infrastructure/adapter/model"
)

// PresetRepository implements the preset persistence port with GORM
type PresetRepository struct {
	db     *gorm.DB
	logger core.Logger
}

// NewPresetRepository creates a new preset repository instance
func NewPresetRepository(db *gorm.DB, logger core.Logger) persistence.PresetRepository {
	return &PresetRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a new preset
func (r *PresetRepository) Create(ctx context.Context, preset *entity.FormatPreset) error {
	m := model.FromEntity(preset)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicateKeyError(err) {
			return errs.ErrDuplicatePreset
		}
		r.logger.Error("Failed to insert preset", map[string]any{
			"preset": preset.Name,
			"error":  err.Error(),
		})
		return err
	}

	preset.ID = m.ID
	preset.CreatedAt = m.CreatedAt
	preset.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByName retrieves a preset by its unique name
func (r *PresetRepository) GetByName(ctx context.Context, name string) (*entity.FormatPreset, error) {
	var m model.FormatPreset
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrPresetNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// List returns all presets ordered by name
func (r *PresetRepository) List(ctx context.Context) ([]entity.FormatPreset, error) {
	var models []model.FormatPreset
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, err
	}

	presets := make([]entity.FormatPreset, 0, len(models))
	for i := range models {
		presets = append(presets, *models[i].ToEntity())
	}
	return presets, nil
}

// Delete removes a preset by name
func (r *PresetRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&model.FormatPreset{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrPresetNotFound
	}
	return nil
}

// isDuplicateKeyError detects unique-constraint violations across the
// error shapes postgres surfaces through GORM
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "sqlstate 23505")
}

package preset

import (
	"context"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/date-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/date-engine/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/date-engine/internal/domain/port/usecase"
)

// Service implements the preset business logic
type Service struct {
	presetRepo persistence.PresetRepository
	logger     coreport.Logger
}

// NewService creates a new preset use case instance
func NewService(
	presetRepo persistence.PresetRepository,
	logger coreport.Logger,
) usecase.PresetUseCase {
	return &Service{
		presetRepo: presetRepo,
		logger:     logger,
	}
}

// CreatePreset validates and stores a new named format preset
func (s *Service) CreatePreset(ctx context.Context, name, format string) (*entity.FormatPreset, error) {
	preset, err := entity.NewFormatPreset(name, format)
	if err != nil {
		return nil, errs.NewPresetError(name, format, err)
	}

	if err := s.presetRepo.Create(ctx, preset); err != nil {
		s.logger.Error("Failed to create preset", map[string]any{
			"preset": name,
			"error":  err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Preset created", map[string]any{
		"preset": preset.Name,
		"format": preset.Format,
	})

	return preset, nil
}

// GetPreset retrieves a preset by name
func (s *Service) GetPreset(ctx context.Context, name string) (*entity.FormatPreset, error) {
	preset, err := s.presetRepo.GetByName(ctx, name)
	if err != nil {
		if !errs.IsNotFoundError(err) {
			s.logger.Error("Failed to get preset", map[string]any{
				"preset": name,
				"error":  err.Error(),
			})
		}
		return nil, err
	}
	return preset, nil
}

// ListPresets returns all stored presets
func (s *Service) ListPresets(ctx context.Context) ([]entity.FormatPreset, error) {
	presets, err := s.presetRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list presets", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}
	return presets, nil
}

// DeletePreset removes a preset by name
func (s *Service) DeletePreset(ctx context.Context, name string) error {
	if err := s.presetRepo.Delete(ctx, name); err != nil {
		if !errs.IsNotFoundError(err) {
			s.logger.Error("Failed to delete preset", map[string]any{
				"preset": name,
				"error":  err.Error(),
			})
		}
		return err
	}

	s.logger.Info("Preset deleted", map[string]any{
		"preset": name,
	})
	return nil
}

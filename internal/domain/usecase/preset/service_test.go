package preset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
	errs "github.com/amirhossein-jamali/date-engine/internal/domain/error"
	mockCore "github.com/amirhossein-jamali/date-engine/mocks/port/core"
	mockPersistence "github.com/amirhossein-jamali/date-engine/mocks/port/persistence"
)

func TestCreatePreset(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.FormatPreset")).Return(nil)
		logger.On("Info", "Preset created", mock.Anything).Return()

		svc := NewService(repo, logger)
		preset, err := svc.CreatePreset(context.Background(), "iso", "YYYY-MM-DD")

		assert.NoError(t, err)
		assert.Equal(t, "iso", preset.Name)
		assert.Equal(t, "YYYY-MM-DD", preset.Format)
		repo.AssertExpectations(t)
		logger.AssertExpectations(t)
	})

	t.Run("Invalid name never reaches the repository", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		svc := NewService(repo, logger)
		preset, err := svc.CreatePreset(context.Background(), "bad name", "YYYY-MM-DD")

		assert.Nil(t, preset)
		assert.ErrorIs(t, err, errs.ErrInvalidPresetName)

		var presetErr *errs.PresetError
		assert.ErrorAs(t, err, &presetErr)
		assert.Equal(t, "bad name", presetErr.Name)

		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Format without tokens is rejected", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		svc := NewService(repo, logger)
		_, err := svc.CreatePreset(context.Background(), "plain", "@#$%")

		assert.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("Duplicate name propagates", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		repo.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDuplicatePreset)
		logger.On("Error", "Failed to create preset", mock.Anything).Return()

		svc := NewService(repo, logger)
		_, err := svc.CreatePreset(context.Background(), "iso", "YYYY-MM-DD")

		assert.ErrorIs(t, err, errs.ErrDuplicatePreset)
		repo.AssertExpectations(t)
		logger.AssertExpectations(t)
	})
}

func TestGetPreset(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		stored := &entity.FormatPreset{ID: 1, Name: "iso", Format: "YYYY-MM-DD"}
		repo.On("GetByName", mock.Anything, "iso").Return(stored, nil)

		svc := NewService(repo, logger)
		preset, err := svc.GetPreset(context.Background(), "iso")

		assert.NoError(t, err)
		assert.Equal(t, stored, preset)
		repo.AssertExpectations(t)
	})

	t.Run("Not found is returned without an error log", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		repo.On("GetByName", mock.Anything, "ghost").Return(nil, errs.ErrPresetNotFound)

		svc := NewService(repo, logger)
		preset, err := svc.GetPreset(context.Background(), "ghost")

		assert.Nil(t, preset)
		assert.ErrorIs(t, err, errs.ErrPresetNotFound)
		logger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
	})

	t.Run("Repository failure is logged", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		repo.On("GetByName", mock.Anything, "iso").Return(nil, errs.ErrDatabaseConnection)
		logger.On("Error", "Failed to get preset", mock.Anything).Return()

		svc := NewService(repo, logger)
		_, err := svc.GetPreset(context.Background(), "iso")

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		logger.AssertExpectations(t)
	})
}

func TestListPresets(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		stored := []entity.FormatPreset{
			{ID: 1, Name: "iso", Format: "YYYY-MM-DD"},
			{ID: 2, Name: "long", Format: "DD MMMM YYYY"},
		}
		repo.On("List", mock.Anything).Return(stored, nil)

		svc := NewService(repo, logger)
		presets, err := svc.ListPresets(context.Background())

		assert.NoError(t, err)
		assert.Len(t, presets, 2)
		repo.AssertExpectations(t)
	})

	t.Run("Repository failure is logged", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		repo.On("List", mock.Anything).Return(nil, errs.ErrDatabaseConnection)
		logger.On("Error", "Failed to list presets", mock.Anything).Return()

		svc := NewService(repo, logger)
		_, err := svc.ListPresets(context.Background())

		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
		logger.AssertExpectations(t)
	})
}

func TestDeletePreset(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		repo.On("Delete", mock.Anything, "iso").Return(nil)
		logger.On("Info", "Preset deleted", mock.Anything).Return()

		svc := NewService(repo, logger)
		err := svc.DeletePreset(context.Background(), "iso")

		assert.NoError(t, err)
		repo.AssertExpectations(t)
		logger.AssertExpectations(t)
	})

	t.Run("Not found is returned without an error log", func(t *testing.T) {
		repo := new(mockPersistence.MockPresetRepository)
		logger := new(mockCore.MockLogger)

		repo.On("Delete", mock.Anything, "ghost").Return(errs.ErrPresetNotFound)

		svc := NewService(repo, logger)
		err := svc.DeletePreset(context.Background(), "ghost")

		assert.ErrorIs(t, err, errs.ErrPresetNotFound)
		logger.AssertNotCalled(t, "Error", mock.Anything, mock.Anything)
		logger.AssertNotCalled(t, "Info", mock.Anything, mock.Anything)
	})
}

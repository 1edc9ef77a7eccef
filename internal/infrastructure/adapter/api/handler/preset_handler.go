package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/date-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/date-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/date-engine/internal/infrastructure/adapter/api/dto"
)

// PresetHandler handles format-preset HTTP requests
type PresetHandler struct {
	presetUseCase usecase.PresetUseCase
	logger        coreport.Logger
}

// NewPresetHandler creates a new preset handler instance
func NewPresetHandler(
	presetUseCase usecase.PresetUseCase,
	logger coreport.Logger,
) *PresetHandler {
	return &PresetHandler{
		presetUseCase: presetUseCase,
		logger:        logger,
	}
}

// Create handles the POST /presets endpoint
func (h *PresetHandler) Create(c *gin.Context) {
	var req dto.PresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	preset, err := h.presetUseCase.CreatePreset(c.Request.Context(), req.Name, req.Format)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toPresetResponse(preset))
}

// Get handles the GET /presets/:name endpoint
func (h *PresetHandler) Get(c *gin.Context) {
	preset, err := h.presetUseCase.GetPreset(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPresetResponse(preset))
}

// List handles the GET /presets endpoint
func (h *PresetHandler) List(c *gin.Context) {
	presets, err := h.presetUseCase.ListPresets(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := dto.PresetListResponse{Presets: make([]dto.PresetResponse, 0, len(presets))}
	for i := range presets {
		resp.Presets = append(resp.Presets, toPresetResponse(&presets[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles the DELETE /presets/:name endpoint
func (h *PresetHandler) Delete(c *gin.Context) {
	if err := h.presetUseCase.DeletePreset(c.Request.Context(), c.Param("name")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// writeError maps domain errors to HTTP status codes
func (h *PresetHandler) writeError(c *gin.Context, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, domainerr.ErrPresetNotFound):
		statusCode = http.StatusNotFound
		message = "Preset not found"
	case errors.Is(err, domainerr.ErrDuplicatePreset):
		statusCode = http.StatusConflict
		message = "Preset with this name already exists"
	case errors.Is(err, domainerr.ErrInvalidPresetName):
		statusCode = http.StatusBadRequest
		message = "Preset name must be 1-64 characters of letters, digits, '-' or '_'"
	case errors.Is(err, domainerr.ErrInvalidFormat):
		statusCode = http.StatusBadRequest
		message = "Format must contain at least one recognized token"
	default:
		h.logger.Error("Preset operation failed", map[string]any{
			"error": err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

func toPresetResponse(p *entity.FormatPreset) dto.PresetResponse {
	return dto.PresetResponse{
		Name:      p.Name,
		Format:    p.Format,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

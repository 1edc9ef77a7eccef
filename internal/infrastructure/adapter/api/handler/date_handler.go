package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/date-engine/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/date-engine/internal/domain/error"
	coreport "github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/date-engine/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/date-engine/internal/infrastructure/adapter/api/dto"
)

// DateHandler handles date-engine HTTP requests
type DateHandler struct {
	dateUseCase   usecase.DateUseCase
	presetUseCase usecase.PresetUseCase
	logger        coreport.Logger
}

// NewDateHandler creates a new date handler instance
func NewDateHandler(
	dateUseCase usecase.DateUseCase,
	presetUseCase usecase.PresetUseCase,
	logger coreport.Logger,
) *DateHandler {
	return &DateHandler{
		dateUseCase:   dateUseCase,
		presetUseCase: presetUseCase,
		logger:        logger,
	}
}

// Format handles GET /dates/format?date=&format=|preset=
func (h *DateHandler) Format(c *gin.Context) {
	date, ok := h.requireQuery(c, "date")
	if !ok {
		return
	}

	format := c.Query("format")
	if name := c.Query("preset"); name != "" {
		preset, err := h.presetUseCase.GetPreset(c.Request.Context(), name)
		if err != nil {
			h.presetError(c, name, err)
			return
		}
		format = preset.Format
	}

	c.JSON(http.StatusOK, dto.FormatResponse{
		Formatted: h.dateUseCase.FormatDate(date, format),
	})
}

// Relative handles GET /dates/relative?date=
func (h *DateHandler) Relative(c *gin.Context) {
	date, ok := h.requireQuery(c, "date")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.FormatResponse{
		Formatted: h.dateUseCase.GetRelativeTime(date),
	})
}

// Ago handles GET /dates/ago?amount=&unit=&format=
func (h *DateHandler) Ago(c *gin.Context) {
	amount, ok := h.intQuery(c, "amount")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.DateResponse{
		Date: h.dateUseCase.GetDateAgo(usecase.DateAgoQuery{
			Amount: amount,
			Unit:   entity.TimeUnit(c.Query("unit")),
			Format: c.Query("format"),
		}),
	})
}

// Current handles GET /dates/current?format=
func (h *DateHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DateResponse{
		Date: h.dateUseCase.GetCurrentDate(c.Query("format")),
	})
}

// Difference handles GET /dates/difference?date1=&date2=&unit=
func (h *DateHandler) Difference(c *gin.Context) {
	q, ok := h.compareQuery(c)
	if !ok {
		return
	}
	unit := q.Unit
	if unit == "" {
		unit = entity.UnitDay
	}
	c.JSON(http.StatusOK, dto.DifferenceResponse{
		Difference: h.dateUseCase.GetDateDifference(q),
		Unit:       string(unit),
	})
}

// Before handles GET /dates/before?date1=&date2=&unit=
func (h *DateHandler) Before(c *gin.Context) {
	q, ok := h.compareQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.BoolResponse{
		Result: h.dateUseCase.IsDateBefore(q),
	})
}

// After handles GET /dates/after?date1=&date2=&unit=
func (h *DateHandler) After(c *gin.Context) {
	q, ok := h.compareQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.BoolResponse{
		Result: h.dateUseCase.IsDateAfter(q),
	})
}

// WithinRange handles GET /dates/within-range?date=&amount=&unit=
func (h *DateHandler) WithinRange(c *gin.Context) {
	date, ok := h.requireQuery(c, "date")
	if !ok {
		return
	}
	amount, ok := h.intQuery(c, "amount")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.BoolResponse{
		Result: h.dateUseCase.IsDateWithinRange(usecase.RangeQuery{
			Date:   date,
			Amount: amount,
			Unit:   entity.TimeUnit(c.Query("unit")),
		}),
	})
}

// RangeStart handles GET /dates/range-start?timeRange=
func (h *DateHandler) RangeStart(c *gin.Context) {
	c.JSON(http.StatusOK, dto.DateResponse{
		Date: h.dateUseCase.CalculateDateRange(c.Query("timeRange")),
	})
}

// FormatRange handles POST /dates/range
func (h *DateHandler) FormatRange(c *gin.Context) {
	var req dto.RangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.FormatResponse{
		Formatted: h.dateUseCase.FormatDateRange(usecase.DateRangeQuery{
			Start:     req.Start,
			End:       req.End,
			Format:    req.Format,
			Separator: req.Separator,
		}),
	})
}

// Sort handles POST /dates/sort
func (h *DateHandler) Sort(c *gin.Context) {
	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.SortResponse{
		Data: h.dateUseCase.SortByDate(req.Data, req.Field, entity.SortOrder(req.Order)),
	})
}

// ReadTime handles POST /read-time
func (h *DateHandler) ReadTime(c *gin.Context) {
	var req dto.ReadTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.ReadTimeResponse{
		Minutes: h.dateUseCase.GetReadTime(req.Content, req.WordsPerMinute),
	})
}

// requireQuery extracts a mandatory query parameter or aborts with 400
func (h *DateHandler) requireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		h.badRequest(c, "Missing required query parameter: "+name)
		return "", false
	}
	return value, true
}

// intQuery parses an optional integer query parameter, treating absence
// as zero so usecase defaults apply
func (h *DateHandler) intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		h.badRequest(c, "Invalid integer for query parameter: "+name)
		return 0, false
	}
	return value, true
}

// compareQuery builds a CompareQuery from the two-date query parameters
func (h *DateHandler) compareQuery(c *gin.Context) (usecase.CompareQuery, bool) {
	date1, ok := h.requireQuery(c, "date1")
	if !ok {
		return usecase.CompareQuery{}, false
	}
	q := usecase.CompareQuery{
		Date1: date1,
		Unit:  entity.TimeUnit(c.Query("unit")),
	}
	if date2 := c.Query("date2"); date2 != "" {
		q.Date2 = date2
	}
	return q, true
}

func (h *DateHandler) badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: message,
	})
}

func (h *DateHandler) presetError(c *gin.Context, name string, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	if errors.Is(err, domainerr.ErrPresetNotFound) {
		statusCode = http.StatusNotFound
		message = "Preset not found"
	} else {
		h.logger.Error("Error resolving preset", map[string]any{
			"preset": name,
			"error":  err.Error(),
		})
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
	"github.com/amirhossein-jamali/date-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/date-engine/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	dateHandler *handler.DateHandler,
	presetHandler *handler.PresetHandler,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Date engine routes
	dateRoutes := router.Group("/dates")
	{
		dateRoutes.GET("/format", dateHandler.Format)
		dateRoutes.GET("/relative", dateHandler.Relative)
		dateRoutes.GET("/ago", dateHandler.Ago)
		dateRoutes.GET("/current", dateHandler.Current)
		dateRoutes.GET("/difference", dateHandler.Difference)
		dateRoutes.GET("/before", dateHandler.Before)
		dateRoutes.GET("/after", dateHandler.After)
		dateRoutes.GET("/within-range", dateHandler.WithinRange)
		dateRoutes.GET("/range-start", dateHandler.RangeStart)
		dateRoutes.POST("/range", dateHandler.FormatRange)
		dateRoutes.POST("/sort", dateHandler.Sort)
	}

	// POST /read-time
	router.POST("/read-time", dateHandler.ReadTime)

	// Preset routes
	presetRoutes := router.Group("/presets")
	{
		presetRoutes.POST("", presetHandler.Create)
		presetRoutes.GET("", presetHandler.List)
		presetRoutes.GET("/:name", presetHandler.Get)
		presetRoutes.DELETE("/:name", presetHandler.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS())
}

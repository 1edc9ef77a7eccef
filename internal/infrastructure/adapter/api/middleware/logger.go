package middleware

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/date-engine/internal/domain/port/core"
)

// Logger middleware logs incoming requests and their responses. Latency
// measurement goes through the time provider so it stays consistent with
// the rest of the system.
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := timeProvider.Since(start)
		statusCode := c.Writer.Status()

		logger.Info("Request processed", map[string]any{
			"method":     method,
			"path":       path,
			"query":      c.Request.URL.RawQuery,
			"status":     statusCode,
			"latency_ms": latency.Std().Milliseconds(),
			"ip":         c.ClientIP(),
			"errors":     c.Errors.Errors(),
		})
	}
}

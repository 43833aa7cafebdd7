package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"hubtel-wallet.backend/pkg/logger"
)

// LoggerMiddleware writes one structured line per request. Query strings are not logged.
func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		logger.LogRequest(ctx, c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP())

		if status >= http.StatusInternalServerError && len(c.Errors) > 0 {
			logger.Error(ctx, "Request failed", zap.String("error", c.Errors.String()))
		}
	}
}

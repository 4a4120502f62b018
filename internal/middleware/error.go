package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/larder/backend/internal/logger"
	"github.com/pageza/larder/backend/internal/metrics"
	"go.uber.org/zap"
)

// Recovery turns a handler panic into a JSON 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				metrics.PanicRecoveries.Inc()
				logger.Error("Recovered from panic",
					zap.Any("error", err),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(RequestIDKey)),
					zap.Stack("stack"))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
			}
		}()
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"time"

	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger writes one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("status", status),
			zap.Int("bytes", c.Writer.Size()),
			zap.Duration("latency", time.Since(start)),
		}

		logger := utils.Logger(c)
		if status >= http.StatusInternalServerError {
			logger.Error("server error", fields...)
		} else {
			logger.Info("request completed", fields...)
		}
	}
}

// Recovery turns panics into a generic 500 and logs the stack.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		utils.Logger(c).Error("panic recovered",
			zap.Any("panic", recovered),
			zap.Stack("stack"),
		)
		utils.RespondError(c, http.StatusInternalServerError, "Something went wrong!")
		c.Abort()
	})
}

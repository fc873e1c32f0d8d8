package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
	"github.com/noah-isme/attendance-api/pkg/middleware/requestid"
	"github.com/noah-isme/attendance-api/pkg/response"
)

// ErrorHandler renders the last error attached with c.Error as the response envelope.
// Internal failures are logged in full and rendered as a generic 500.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestid.Value(c)),
			zap.Error(err),
		}
		if appErrors.IsInternal(err) {
			logger.Error("request failed", fields...)
		} else {
			logger.Debug("request rejected", fields...)
		}
		response.Error(c, err)
	}
}

// Recovery converts panics into the internal error envelope.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", requestid.Value(c)),
			zap.Stack("stack"),
		)
		if !c.Writer.Written() {
			response.Error(c, appErrors.ErrInternal)
		}
		c.Abort()
	})
}

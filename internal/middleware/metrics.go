package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-api/internal/service"
)

// Metrics returns middleware that captures request metrics using the provided service.
// Requests turned away with 401 or 403 are also counted as access-control rejections.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, status, time.Since(start))

		switch status {
		case http.StatusUnauthorized:
			metricsSvc.RecordAuthRejection("unauthenticated")
		case http.StatusForbidden:
			metricsSvc.RecordAuthRejection("forbidden")
		}
	}
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-api/internal/service"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
	"github.com/noah-isme/attendance-api/pkg/response"
)

const (
	welcomeMessage = "Welcome to the Attendance Management System API"
	readyTimeout   = 2 * time.Second
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics *service.MetricsService
	store   Pinger
}

// NewMetricsHandler constructs a metrics handler. store may be nil.
func NewMetricsHandler(metrics *service.MetricsService, store Pinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, store: store}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health godoc
// @Summary Liveness probe
// @Produce plain
// @Success 200 {string} string
// @Router /health [get]
func (h *MetricsHandler) Health(c *gin.Context) {
	c.String(http.StatusOK, welcomeMessage)
}

// Ready reports 200 only when the store answers a ping.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
		defer cancel()
		if err := h.store.PingContext(ctx); err != nil {
			_ = c.Error(appErrors.Wrap(err, "NOT_READY", http.StatusServiceUnavailable, "store unavailable"))
			return
		}
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ready"})
}

package middleware

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

func newErrorRouter(logger *zap.Logger, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Recovery(logger), ErrorHandler(logger))
	r.GET("/", handler)
	return r
}

func TestErrorHandlerRendersDomainErrors(t *testing.T) {
	r := newErrorRouter(zap.NewNop(), func(c *gin.Context) {
		_ = c.Error(appErrors.Clone(appErrors.ErrNotFound, "Class not found"))
	})

	rec := serve(r, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.False(t, env.Success)
	assert.Equal(t, "Class not found", env.Error)
}

func TestErrorHandlerHidesInternalDetail(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := newErrorRouter(zap.New(core), func(c *gin.Context) {
		_ = c.Error(errors.New("pq: password authentication failed"))
	})

	rec := serve(r, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeEnvelope(t, rec).Error)
	assert.NotContains(t, rec.Body.String(), "pq:")
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	r := newErrorRouter(zap.NewNop(), func(c *gin.Context) {
		c.String(http.StatusTeapot, "short and stout")
		_ = c.Error(errors.New("late"))
	})

	rec := serve(r, "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestRecoveryRendersInternalError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	r := newErrorRouter(zap.New(core), func(c *gin.Context) {
		panic("boom")
	})

	rec := serve(r, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", decodeEnvelope(t, rec).Error)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())
}

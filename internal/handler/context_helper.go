package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-api/internal/middleware"
	"github.com/noah-isme/attendance-api/internal/models"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

// actorFromContext returns the identity attached by middleware.Authenticate.
// It records an unauthorized error when the route was mounted without authentication.
func actorFromContext(c *gin.Context) (models.Identity, bool) {
	identity, ok := middleware.IdentityFromContext(c.Request.Context())
	if !ok {
		_ = c.Error(appErrors.ErrUnauthorized)
		return models.Identity{}, false
	}
	return identity, true
}

// bindJSON decodes the request body into dest, recording a validation error on failure.
func bindJSON(c *gin.Context, dest interface{}, message string) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		_ = c.Error(appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message))
		return false
	}
	return true
}

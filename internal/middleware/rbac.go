package middleware

import (
	"strings"

	"github.com/noah-isme/attendance-api/internal/models"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

// roleAllowed reports whether role passes the gate; an empty gate admits any role.
func roleAllowed(role models.UserRole, allowed []models.UserRole) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}

// forbiddenFor builds the rejection shown when the role gate fails,
// e.g. "Forbidden, access is allowed for teachers only".
func forbiddenFor(allowed []models.UserRole) *appErrors.Error {
	if len(allowed) == 0 {
		return appErrors.ErrForbidden
	}
	names := make([]string, len(allowed))
	for i, r := range allowed {
		names[i] = string(r) + "s"
	}
	return appErrors.Clone(appErrors.ErrForbidden, "Forbidden, access is allowed for "+strings.Join(names, " and ")+" only")
}

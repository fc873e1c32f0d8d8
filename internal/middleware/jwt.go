package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/attendance-api/internal/models"
	"github.com/noah-isme/attendance-api/internal/service"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

// ErrTokenMissing is returned when a protected route receives no bearer token.
var ErrTokenMissing = appErrors.New("TOKEN_MISSING", http.StatusUnauthorized, "Unauthorized, token missing")

// TokenVerifier recovers the caller identity from a bearer token.
type TokenVerifier interface {
	Verify(token string) (*models.Identity, error)
}

type identityKey struct{}

// WithIdentity returns a copy of ctx carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity attached by Authenticate.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(models.Identity)
	return identity, ok
}

// Authenticate protects routes by requiring a valid bearer token. When allowed is
// non-empty the token's role must be one of them.
func Authenticate(verifier TokenVerifier, allowed ...models.UserRole) gin.HandlerFunc {
	forbidden := forbiddenFor(allowed)
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			_ = c.Error(ErrTokenMissing)
			c.Abort()
			return
		}

		identity, err := verifier.Verify(token)
		if err != nil || identity == nil {
			_ = c.Error(service.ErrInvalidToken)
			c.Abort()
			return
		}

		if !roleAllowed(identity.Role, allowed) {
			_ = c.Error(forbidden)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(WithIdentity(c.Request.Context(), *identity))
		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

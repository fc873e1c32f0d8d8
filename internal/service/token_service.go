package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/attendance-api/internal/models"
)

// TokenConfig defines how bearer tokens are signed.
type TokenConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

// TokenService issues and verifies HS256 identity tokens. It holds no mutable state.
type TokenService struct {
	config TokenConfig
	now    func() time.Time
}

// NewTokenService constructs a TokenService.
func NewTokenService(config TokenConfig) *TokenService {
	if config.Expiry <= 0 {
		config.Expiry = 24 * time.Hour
	}
	return &TokenService{config: config, now: time.Now}
}

// Issue signs a token asserting subjectID holds role.
func (s *TokenService) Issue(subjectID string, role models.UserRole) (string, error) {
	if subjectID == "" || !role.Valid() {
		return "", errors.New("token subject and role are required")
	}
	issuedAt := s.now().UTC()
	claims := models.TokenClaims{
		UserID: subjectID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.config.Expiry)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.Secret))
}

// Verify checks signature and validity window and returns the asserted identity.
// Every rejection is reported as ErrInvalidToken.
func (s *TokenService) Verify(token string) (*models.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.Issuer))
	}

	claims := &models.TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	}, opts...)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return &models.Identity{UserID: claims.UserID, Role: claims.Role}, nil
}

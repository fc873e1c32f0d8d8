package models

import "github.com/golang-jwt/jwt/v5"

// Identity is the authenticated caller recovered from a verified token.
type Identity struct {
	UserID string   `json:"id"`
	Role   UserRole `json:"role"`
}

// TokenClaims represents the JWT payload for access tokens.
type TokenClaims struct {
	UserID string   `json:"id"`
	Role   UserRole `json:"role"`
	jwt.RegisteredClaims
}

package dto

import "github.com/noah-isme/attendance-api/internal/models"

// SignupRequest registers a new account.
type SignupRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required,oneof=student teacher"`
}

// LoginRequest holds credentials for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

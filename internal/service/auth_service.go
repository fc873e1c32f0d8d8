package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/attendance-api/internal/dto"
	"github.com/noah-isme/attendance-api/internal/models"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

type credentials interface {
	CreateUser(ctx context.Context, name, email, password string, role models.UserRole) (*models.User, error)
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

type tokenIssuer interface {
	Issue(subjectID string, role models.UserRole) (string, error)
}

type cacheInvalidator interface {
	Invalidate(ctx context.Context, pattern string) error
}

// AuthService provides signup, login and profile use cases.
type AuthService struct {
	store     credentials
	tokens    tokenIssuer
	cache     cacheInvalidator
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAuthService constructs an AuthService instance. cache may be nil.
func NewAuthService(store credentials, tokens tokenIssuer, cache cacheInvalidator, validate *validator.Validate, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AuthService{store: store, tokens: tokens, cache: cache, validator: validate, logger: logger}
}

// Signup registers a new account.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid signup payload")
	}

	user, err := s.store.CreateUser(ctx, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return nil, err
	}

	if user.Role == models.RoleStudent && s.cache != nil {
		if err := s.cache.Invalidate(context.WithoutCancel(ctx), studentCachePattern); err != nil {
			s.logger.Warn("failed to invalidate student cache", zap.Error(err))
		}
	}
	return user, nil
}

// Login verifies credentials and issues a bearer token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid login payload")
	}

	user, err := s.store.VerifyCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, internal(err, "failed to issue token")
	}
	return &dto.LoginResponse{Token: token}, nil
}

// Me returns the profile of the authenticated caller.
func (s *AuthService) Me(ctx context.Context, actor models.Identity) (*models.User, error) {
	return s.store.GetByID(ctx, actor.UserID)
}

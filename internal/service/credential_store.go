package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/attendance-api/internal/models"
	"github.com/noah-isme/attendance-api/pkg/database"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

type credentialRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// CredentialStore owns account creation and password verification.
type CredentialStore struct {
	repo   credentialRepository
	cost   int
	logger *zap.Logger
}

// NewCredentialStore constructs a CredentialStore hashing with the given bcrypt cost.
func NewCredentialStore(repo credentialRepository, cost int, logger *zap.Logger) *CredentialStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{repo: repo, cost: cost, logger: logger}
}

// CreateUser hashes the password and stores a new account.
// The email lookup is a fast path; the storage unique constraint is authoritative.
func (s *CredentialStore) CreateUser(ctx context.Context, name, email, password string, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid role")
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, internal(err, "failed to check email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, internal(err, "failed to hash password")
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(context.WithoutCancel(ctx), user); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrDuplicateEmail
		}
		return nil, internal(err, "failed to create user")
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return user, nil
}

// VerifyCredentials returns the account when email and password match.
// Unknown email and wrong password fail identically.
func (s *CredentialStore) VerifyCredentials(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("login rejected", zap.String("reason", "unknown email"))
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, internal(err, "failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("stored password hash unreadable", zap.String("user_id", user.ID), zap.Error(err))
		}
		s.logger.Debug("login rejected", zap.String("reason", "password mismatch"), zap.String("user_id", user.ID))
		return nil, appErrors.ErrInvalidCredentials
	}
	return user, nil
}

// GetByID loads an account by id.
func (s *CredentialStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, internal(err, "failed to fetch user")
	}
	return user, nil
}

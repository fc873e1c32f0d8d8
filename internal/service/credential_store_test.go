package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/attendance-api/internal/models"
	"github.com/noah-isme/attendance-api/pkg/database"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

func TestCredentialStoreCreateUserHashesPassword(t *testing.T) {
	repo := newMemoryUsers()
	store := NewCredentialStore(repo, bcrypt.MinCost, zap.NewNop())

	user, err := store.CreateUser(context.Background(), "Ana", "ana@example.com", "secret1", models.RoleTeacher)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func TestCredentialStoreDuplicateEmailPrecheck(t *testing.T) {
	existing := newUser("ana", models.RoleStudent)
	repo := newMemoryUsers(existing)
	store := NewCredentialStore(repo, bcrypt.MinCost, nil)

	_, err := store.CreateUser(context.Background(), "Other", existing.Email, "secret1", models.RoleTeacher)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 0, repo.creates)
}

func TestCredentialStoreDuplicateEmailFromStorage(t *testing.T) {
	repo := newMemoryUsers()
	repo.createErr = &database.UniqueViolationError{Constraint: "users_email_key"}
	store := NewCredentialStore(repo, bcrypt.MinCost, nil)

	_, err := store.CreateUser(context.Background(), "Ana", "ana@example.com", "secret1", models.RoleTeacher)
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCredentialStoreRejectsPasswordOverBcryptLimit(t *testing.T) {
	repo := newMemoryUsers()
	store := NewCredentialStore(repo, bcrypt.MinCost, nil)

	_, err := store.CreateUser(context.Background(), "Ana", "ana@example.com", strings.Repeat("a", 80), models.RoleTeacher)
	require.ErrorIs(t, err, ErrPasswordTooLong)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.False(t, appErrors.IsInternal(err))
	assert.Equal(t, 0, repo.creates)

	_, err = store.CreateUser(context.Background(), "Ana", "ana@example.com", strings.Repeat("a", 72), models.RoleTeacher)
	assert.NoError(t, err)
}

func TestCredentialStoreEmailIsCaseSensitive(t *testing.T) {
	repo := newMemoryUsers()
	store := NewCredentialStore(repo, bcrypt.MinCost, nil)

	_, err := store.CreateUser(context.Background(), "Ana", "ana@example.com", "secret1", models.RoleTeacher)
	require.NoError(t, err)
	_, err = store.CreateUser(context.Background(), "Ana", "Ana@example.com", "secret1", models.RoleTeacher)
	assert.NoError(t, err)
}

func TestCredentialStoreCreateUserStorageFailure(t *testing.T) {
	repo := newMemoryUsers()
	repo.createErr = errors.New("disk full")
	store := NewCredentialStore(repo, bcrypt.MinCost, nil)

	_, err := store.CreateUser(context.Background(), "Ana", "ana@example.com", "secret1", models.RoleTeacher)
	assert.True(t, appErrors.IsInternal(err))
}

func TestCredentialStoreVerifyFailsUniformly(t *testing.T) {
	repo := newMemoryUsers()
	store := NewCredentialStore(repo, bcrypt.MinCost, nil)
	_, err := store.CreateUser(context.Background(), "Ana", "ana@example.com", "secret1", models.RoleTeacher)
	require.NoError(t, err)

	_, unknownErr := store.VerifyCredentials(context.Background(), "nobody@example.com", "secret1")
	_, mismatchErr := store.VerifyCredentials(context.Background(), "ana@example.com", "wrong-password")

	require.Error(t, unknownErr)
	require.Error(t, mismatchErr)
	assert.Equal(t, unknownErr.Error(), mismatchErr.Error())
	assert.ErrorIs(t, unknownErr, appErrors.ErrInvalidCredentials)
	assert.ErrorIs(t, mismatchErr, appErrors.ErrInvalidCredentials)

	user, err := store.VerifyCredentials(context.Background(), "ana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestCredentialStoreGetByID(t *testing.T) {
	existing := newUser("ana", models.RoleStudent)
	store := NewCredentialStore(newMemoryUsers(existing), bcrypt.MinCost, nil)

	user, err := store.GetByID(context.Background(), existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)

	_, err = store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

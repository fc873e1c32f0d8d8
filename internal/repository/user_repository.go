package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/attendance-api/internal/models"
	"github.com/noah-isme/attendance-api/pkg/database"
)

const userColumns = `id, name, email, password_hash, role, created_at, updated_at`

// UserRepository provides database access for accounts.
type UserRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewUserRepository creates a new instance of UserRepository. observer may be nil.
func NewUserRepository(db *sqlx.DB, observer QueryObserver) *UserRepository {
	return &UserRepository{db: db, observer: observer}
}

// FindByEmail returns a user by exact (case-sensitive) email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	defer observe(r.observer, "users.find_by_email", time.Now())
	const query = `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

// FindByID returns a user by identifier.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	if !validID(id) {
		return nil, sql.ErrNoRows
	}
	defer observe(r.observer, "users.find_by_id", time.Now())
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &user, nil
}

// ListStudents returns every student account, oldest first, without credentials or role.
func (r *UserRepository) ListStudents(ctx context.Context) ([]models.StudentSummary, error) {
	defer observe(r.observer, "users.list_students", time.Now())
	const query = `SELECT id, name, email, created_at, updated_at FROM users WHERE role = $1 ORDER BY created_at ASC, id ASC`
	students := make([]models.StudentSummary, 0)
	if err := r.db.SelectContext(ctx, &students, query, models.RoleStudent); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Create inserts a new user. A duplicate email surfaces as database.ErrUniqueViolation.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	defer observe(r.observer, "users.create", time.Now())
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	const query = `INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at) VALUES (:id, :name, :email, :password_hash, :role, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("create user: %w", database.TranslateError(err))
	}
	return nil
}

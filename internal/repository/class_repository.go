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

// ClassRepository manages persistence for classes and their enrollments.
type ClassRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewClassRepository constructs a new class repository. observer may be nil.
func NewClassRepository(db *sqlx.DB, observer QueryObserver) *ClassRepository {
	return &ClassRepository{db: db, observer: observer}
}

// FindOwned returns the class only when it exists and belongs to teacherID.
// Both misses are reported as sql.ErrNoRows.
func (r *ClassRepository) FindOwned(ctx context.Context, classID, teacherID string) (*models.Class, error) {
	if !validID(classID) || !validID(teacherID) {
		return nil, sql.ErrNoRows
	}
	defer observe(r.observer, "classes.find_owned", time.Now())

	const query = `SELECT id, class_name, teacher_id, created_at, updated_at FROM classes WHERE id = $1 AND teacher_id = $2`
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, classID, teacherID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find class: %w", err)
	}

	const members = `SELECT student_id FROM class_students WHERE class_id = $1 ORDER BY position ASC`
	class.StudentIDs = make([]string, 0)
	if err := r.db.SelectContext(ctx, &class.StudentIDs, members, class.ID); err != nil {
		return nil, fmt.Errorf("list class members: %w", err)
	}
	return &class, nil
}

// ExistsByName checks whether teacherID already owns a class called name.
func (r *ClassRepository) ExistsByName(ctx context.Context, teacherID, name string) (bool, error) {
	defer observe(r.observer, "classes.exists_by_name", time.Now())
	const query = `SELECT 1 FROM classes WHERE teacher_id = $1 AND class_name = $2 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, teacherID, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check class name: %w", err)
	}
	return true, nil
}

// Create persists a class record. A duplicate (teacher, name) pair surfaces as database.ErrUniqueViolation.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	defer observe(r.observer, "classes.create", time.Now())
	if class.ID == "" {
		class.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if class.CreatedAt.IsZero() {
		class.CreatedAt = now
	}
	class.UpdatedAt = now
	if class.StudentIDs == nil {
		class.StudentIDs = make([]string, 0)
	}

	const query = `INSERT INTO classes (id, class_name, teacher_id, created_at, updated_at) VALUES (:id, :class_name, :teacher_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, class); err != nil {
		return fmt.Errorf("create class: %w", database.TranslateError(err))
	}
	return nil
}

// AddStudent appends studentID to the class enrollment and bumps updated_at atomically.
// An existing membership surfaces as database.ErrUniqueViolation.
func (r *ClassRepository) AddStudent(ctx context.Context, classID, studentID string) (time.Time, error) {
	defer observe(r.observer, "classes.add_student", time.Now())
	now := time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("begin add student: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO class_students (class_id, student_id, added_at) VALUES ($1, $2, $3)`, classID, studentID, now); err != nil {
		_ = tx.Rollback()
		return time.Time{}, fmt.Errorf("add student: %w", database.TranslateError(err))
	}
	if _, err := tx.ExecContext(ctx, `UPDATE classes SET updated_at = $2 WHERE id = $1`, classID, now); err != nil {
		_ = tx.Rollback()
		return time.Time{}, fmt.Errorf("touch class: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return time.Time{}, fmt.Errorf("commit add student: %w", err)
	}
	return now, nil
}

// ListEnrolled returns the class members with name and email, in enrollment order.
func (r *ClassRepository) ListEnrolled(ctx context.Context, classID string) ([]models.EnrolledStudent, error) {
	defer observe(r.observer, "classes.list_enrolled", time.Now())
	const query = `SELECT u.id, u.name, u.email FROM class_students cs JOIN users u ON u.id = cs.student_id WHERE cs.class_id = $1 ORDER BY cs.position ASC`
	students := make([]models.EnrolledStudent, 0)
	if err := r.db.SelectContext(ctx, &students, query, classID); err != nil {
		return nil, fmt.Errorf("list enrolled students: %w", err)
	}
	return students, nil
}

package handler

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/attendance-api/internal/models"
	"github.com/noah-isme/attendance-api/pkg/database"
)

// memoryStore backs the real services in router tests with the same
// miss and unique-violation signals the SQL repositories produce.
type memoryStore struct {
	mu      sync.Mutex
	users   map[string]*models.User
	order   []string
	classes map[string]*models.Class
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: map[string]*models.User{}, classes: map[string]*models.Class{}}
}

type memoryUsers struct{ *memoryStore }

type memoryClasses struct{ *memoryStore }

func (s memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s memoryUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (s memoryUsers) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return &database.UniqueViolationError{Constraint: "users_email_key"}
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	s.users[user.ID] = &stored
	s.order = append(s.order, user.ID)
	return nil
}

func (s memoryUsers) ListStudents(ctx context.Context) ([]models.StudentSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.StudentSummary, 0)
	for _, id := range s.order {
		u := s.users[id]
		if u.Role == models.RoleStudent {
			out = append(out, models.StudentSummary{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt})
		}
	}
	return out, nil
}

func (s memoryClasses) FindOwned(ctx context.Context, classID, teacherID string) (*models.Class, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.classes[classID]
	if !ok || c.TeacherID != teacherID {
		return nil, sql.ErrNoRows
	}
	copied := *c
	copied.StudentIDs = append([]string{}, c.StudentIDs...)
	return &copied, nil
}

func (s memoryClasses) ExistsByName(ctx context.Context, teacherID, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.classes {
		if c.TeacherID == teacherID && c.ClassName == name {
			return true, nil
		}
	}
	return false, nil
}

func (s memoryClasses) Create(ctx context.Context, class *models.Class) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	class.ID = uuid.NewString()
	class.StudentIDs = make([]string, 0)
	class.CreatedAt = time.Now().UTC()
	class.UpdatedAt = class.CreatedAt
	stored := *class
	s.classes[class.ID] = &stored
	return nil
}

func (s memoryClasses) AddStudent(ctx context.Context, classID, studentID string) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.classes[classID]
	if c.HasStudent(studentID) {
		return time.Time{}, &database.UniqueViolationError{Constraint: "class_students_pkey"}
	}
	c.StudentIDs = append(c.StudentIDs, studentID)
	c.UpdatedAt = time.Now().UTC()
	return c.UpdatedAt, nil
}

func (s memoryClasses) ListEnrolled(ctx context.Context, classID string) ([]models.EnrolledStudent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.EnrolledStudent, 0)
	for _, id := range s.classes[classID].StudentIDs {
		u := s.users[id]
		out = append(out, models.EnrolledStudent{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out, nil
}

func (s *memoryStore) passwordHashes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	hashes := make([]string, 0, len(s.users))
	for _, u := range s.users {
		hashes = append(hashes, u.PasswordHash)
	}
	sort.Strings(hashes)
	return hashes
}

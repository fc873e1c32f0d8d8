package service

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

type memoryUsers struct {
	mu        sync.Mutex
	users     map[string]*models.User
	findErr   error
	createErr error
	creates   int
}

func newMemoryUsers(users ...*models.User) *memoryUsers {
	m := &memoryUsers{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memoryUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *memoryUsers) FindByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

func (m *memoryUsers) Create(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Email == user.Email {
			return &database.UniqueViolationError{Constraint: "users_email_key"}
		}
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	m.users[user.ID] = user
	return nil
}

func (m *memoryUsers) ListStudents(ctx context.Context) ([]models.StudentSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.StudentSummary, 0)
	for _, u := range m.users {
		if u.Role == models.RoleStudent {
			out = append(out, models.StudentSummary{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt, UpdatedAt: u.UpdatedAt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type memoryClasses struct {
	users   *memoryUsers
	classes map[string]*models.Class
	writes  int
	addErr  error
}

func newMemoryClasses(users *memoryUsers) *memoryClasses {
	return &memoryClasses{users: users, classes: make(map[string]*models.Class)}
}

func (m *memoryClasses) FindOwned(ctx context.Context, classID, teacherID string) (*models.Class, error) {
	c, ok := m.classes[classID]
	if !ok || c.TeacherID != teacherID {
		return nil, sql.ErrNoRows
	}
	copied := *c
	copied.StudentIDs = append([]string{}, c.StudentIDs...)
	return &copied, nil
}

func (m *memoryClasses) ExistsByName(ctx context.Context, teacherID, name string) (bool, error) {
	for _, c := range m.classes {
		if c.TeacherID == teacherID && c.ClassName == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryClasses) Create(ctx context.Context, class *models.Class) error {
	m.writes++
	class.ID = uuid.NewString()
	class.StudentIDs = make([]string, 0)
	class.CreatedAt = time.Now().UTC()
	class.UpdatedAt = class.CreatedAt
	stored := *class
	m.classes[class.ID] = &stored
	return nil
}

func (m *memoryClasses) AddStudent(ctx context.Context, classID, studentID string) (time.Time, error) {
	m.writes++
	if m.addErr != nil {
		return time.Time{}, m.addErr
	}
	c := m.classes[classID]
	if c.HasStudent(studentID) {
		return time.Time{}, &database.UniqueViolationError{Constraint: "class_students_pkey"}
	}
	c.StudentIDs = append(c.StudentIDs, studentID)
	c.UpdatedAt = time.Now().UTC()
	return c.UpdatedAt, nil
}

func (m *memoryClasses) ListEnrolled(ctx context.Context, classID string) ([]models.EnrolledStudent, error) {
	out := make([]models.EnrolledStudent, 0)
	for _, id := range m.classes[classID].StudentIDs {
		u, err := m.users.FindByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, models.EnrolledStudent{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out, nil
}

func newUser(name string, role models.UserRole) *models.User {
	return &models.User{ID: uuid.NewString(), Name: name, Email: name + "@example.com", PasswordHash: "x", Role: role}
}

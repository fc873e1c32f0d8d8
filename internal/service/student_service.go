package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/attendance-api/internal/models"
)

const (
	studentListCacheKey = "students:list"
	studentCachePattern = "students:*"
)

type studentRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	ListStudents(ctx context.Context) ([]models.StudentSummary, error)
}

type studentCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Generation() uint64
	SetIfCurrent(ctx context.Context, key string, value interface{}, ttl time.Duration, gen uint64) error
}

// StudentService exposes the teacher-facing student roster.
type StudentService struct {
	repo   studentRepository
	cache  studentCache
	ttl    time.Duration
	logger *zap.Logger
}

// NewStudentService constructs a StudentService. cache may be nil.
func NewStudentService(repo studentRepository, cache studentCache, ttl time.Duration, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// List returns every student account for a teacher.
func (s *StudentService) List(ctx context.Context, actor models.Identity) ([]models.StudentSummary, error) {
	if _, err := resolveTeacher(ctx, s.repo, actor, "Only teachers can view students list"); err != nil {
		return nil, err
	}

	var gen uint64
	if s.cache != nil {
		gen = s.cache.Generation()
		var cached []models.StudentSummary
		if hit, err := s.cache.Get(ctx, studentListCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, internal(err, "failed to list students")
	}

	if s.cache != nil {
		if err := s.cache.SetIfCurrent(ctx, studentListCacheKey, students, s.ttl, gen); err != nil {
			s.logger.Debug("student roster not cached", zap.Error(err))
		}
	}
	return students, nil
}

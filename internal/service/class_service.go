package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/attendance-api/internal/dto"
	"github.com/noah-isme/attendance-api/internal/models"
	"github.com/noah-isme/attendance-api/pkg/database"
	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

type classRepository interface {
	FindOwned(ctx context.Context, classID, teacherID string) (*models.Class, error)
	ExistsByName(ctx context.Context, teacherID, name string) (bool, error)
	Create(ctx context.Context, class *models.Class) error
	AddStudent(ctx context.Context, classID, studentID string) (time.Time, error)
	ListEnrolled(ctx context.Context, classID string) ([]models.EnrolledStudent, error)
}

type userFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// ClassService enforces class ownership and enrollment rules.
type ClassService struct {
	classes   classRepository
	users     userFinder
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(classes classRepository, users userFinder, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ClassService{classes: classes, users: users, validator: validate, logger: logger}
}

// Create registers a class owned by the acting teacher.
func (s *ClassService) Create(ctx context.Context, actor models.Identity, req dto.CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid class payload")
	}
	teacher, err := resolveTeacher(ctx, s.users, actor, "Only teachers can create classes")
	if err != nil {
		return nil, err
	}

	exists, err := s.classes.ExistsByName(ctx, teacher.ID, req.ClassName)
	if err != nil {
		return nil, internal(err, "failed to check class name")
	}
	if exists {
		return nil, ErrClassNameTaken
	}

	class := &models.Class{ClassName: req.ClassName, TeacherID: teacher.ID}
	if err := s.classes.Create(context.WithoutCancel(ctx), class); err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrClassNameTaken
		}
		return nil, internal(err, "failed to create class")
	}

	s.logger.Info("class created", zap.String("class_id", class.ID), zap.String("teacher_id", teacher.ID))
	return class, nil
}

// AddStudent enrolls a student into a class owned by the acting teacher.
// Nothing is written unless every check passes.
func (s *ClassService) AddStudent(ctx context.Context, actor models.Identity, classID string, req dto.AddStudentRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Validation(err, "invalid add student payload")
	}
	teacher, err := resolveTeacher(ctx, s.users, actor, "Only teachers can add students to classes")
	if err != nil {
		return nil, err
	}

	class, err := s.findOwned(ctx, classID, teacher.ID)
	if err != nil {
		return nil, err
	}

	student, err := s.users.FindByID(ctx, *req.StudentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, internal(err, "failed to fetch student")
	}
	if student.Role != models.RoleStudent {
		return nil, forbidden("Only students can be added to classes")
	}
	if class.HasStudent(student.ID) {
		return nil, ErrAlreadyEnrolled
	}

	updatedAt, err := s.classes.AddStudent(context.WithoutCancel(ctx), class.ID, student.ID)
	if err != nil {
		if errors.Is(err, database.ErrUniqueViolation) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, internal(err, "failed to add student")
	}
	class.StudentIDs = append(class.StudentIDs, student.ID)
	class.UpdatedAt = updatedAt
	return class, nil
}

// Get returns a class with its enrolled students, visible to its owner only.
func (s *ClassService) Get(ctx context.Context, actor models.Identity, classID string) (*models.ClassDetail, error) {
	teacher, err := resolveTeacher(ctx, s.users, actor, "Only teachers can view class details")
	if err != nil {
		return nil, err
	}
	class, err := s.findOwned(ctx, classID, teacher.ID)
	if err != nil {
		return nil, err
	}
	students, err := s.classes.ListEnrolled(ctx, class.ID)
	if err != nil {
		return nil, internal(err, "failed to load class students")
	}
	return &models.ClassDetail{
		ID:        class.ID,
		ClassName: class.ClassName,
		TeacherID: class.TeacherID,
		Students:  students,
		CreatedAt: class.CreatedAt,
		UpdatedAt: class.UpdatedAt,
	}, nil
}

// findOwned folds existence and ownership into one lookup so other teachers' classes stay invisible.
func (s *ClassService) findOwned(ctx context.Context, classID, teacherID string) (*models.Class, error) {
	class, err := s.classes.FindOwned(ctx, classID, teacherID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		return nil, internal(err, "failed to fetch class")
	}
	return class, nil
}

// resolveTeacher loads the acting user and checks it is a teacher.
// A missing account and a wrong role are distinct failures.
func resolveTeacher(ctx context.Context, users userFinder, actor models.Identity, forbiddenMessage string) (*models.User, error) {
	user, err := users.FindByID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTeacherNotFound
		}
		return nil, internal(err, "failed to fetch teacher")
	}
	if user.Role != models.RoleTeacher {
		return nil, forbidden(forbiddenMessage)
	}
	return user, nil
}

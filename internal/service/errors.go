package service

import (
	"net/http"

	appErrors "github.com/noah-isme/attendance-api/pkg/errors"
)

// Domain failures surfaced to callers. Role failures are built per operation from appErrors.ErrForbidden.
var (
	ErrDuplicateEmail  = appErrors.New("DUPLICATE_EMAIL", http.StatusBadRequest, "User with this email already exists")
	ErrUserNotFound    = appErrors.New("USER_NOT_FOUND", http.StatusNotFound, "User not found")
	ErrInvalidToken    = appErrors.New("INVALID_TOKEN", http.StatusUnauthorized, "Unauthorized, token missing or invalid")
	ErrTeacherNotFound = appErrors.New("TEACHER_NOT_FOUND", http.StatusBadRequest, "Teacher not found")
	ErrStudentNotFound = appErrors.New("STUDENT_NOT_FOUND", http.StatusBadRequest, "Student not found")
	ErrClassNotFound   = appErrors.New("CLASS_NOT_FOUND", http.StatusNotFound, "Class not found")
	ErrClassNameTaken  = appErrors.New("DUPLICATE_CLASS_NAME", http.StatusBadRequest, "Class with this name already exists for this teacher")
	ErrAlreadyEnrolled = appErrors.New("ALREADY_ENROLLED", http.StatusBadRequest, "Student is already added to this class")

	// bcrypt only hashes the first 72 bytes and refuses longer input.
	ErrPasswordTooLong = &appErrors.Error{
		Code:    appErrors.ErrValidation.Code,
		Status:  appErrors.ErrValidation.Status,
		Message: "invalid signup payload",
		Details: []appErrors.FieldError{{Field: "password", Message: "must be at most 72 bytes"}},
	}
)

func forbidden(message string) *appErrors.Error {
	return appErrors.Clone(appErrors.ErrForbidden, message)
}

func internal(err error, message string) *appErrors.Error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

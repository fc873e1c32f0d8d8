package dto

// CreateClassRequest captures class creation payload.
type CreateClassRequest struct {
	ClassName string `json:"className" validate:"required"`
}

// AddStudentRequest enrolls a student into a class.
// An empty id is not a shape error; it resolves as an unknown student.
type AddStudentRequest struct {
	StudentID *string `json:"studentId" validate:"required"`
}

package models

import "time"

// Class is a teacher-owned class with its append-only enrollment list.
type Class struct {
	ID         string    `db:"id" json:"id"`
	ClassName  string    `db:"class_name" json:"className"`
	TeacherID  string    `db:"teacher_id" json:"teacherId"`
	StudentIDs []string  `db:"-" json:"studentIds"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `db:"updated_at" json:"updatedAt"`
}

// HasStudent reports whether studentID is already enrolled.
func (c *Class) HasStudent(studentID string) bool {
	for _, id := range c.StudentIDs {
		if id == studentID {
			return true
		}
	}
	return false
}

// EnrolledStudent is a student as shown inside a class detail.
type EnrolledStudent struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}

// ClassDetail is a class with its enrolled students populated, in enrollment order.
type ClassDetail struct {
	ID        string            `json:"id"`
	ClassName string            `json:"className"`
	TeacherID string            `json:"teacherId"`
	Students  []EnrolledStudent `json:"students"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

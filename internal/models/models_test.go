package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoleValid(t *testing.T) {
	assert.True(t, RoleStudent.Valid())
	assert.True(t, RoleTeacher.Valid())
	assert.False(t, UserRole("admin").Valid())
	assert.False(t, UserRole("TEACHER").Valid())
}

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	raw, err := json.Marshal(User{ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: "$2a$10$hash", Role: RoleStudent})
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$10$hash")
	assert.Contains(t, string(raw), `"role":"student"`)
}

func TestClassHasStudent(t *testing.T) {
	class := &Class{StudentIDs: []string{"s1", "s2"}}
	assert.True(t, class.HasStudent("s2"))
	assert.False(t, class.HasStudent("s3"))
}

func TestAttendanceStatusValid(t *testing.T) {
	assert.True(t, AttendanceStatusPresent.Valid())
	assert.True(t, AttendanceStatusAbsent.Valid())
	assert.False(t, AttendanceStatus("late").Valid())
}

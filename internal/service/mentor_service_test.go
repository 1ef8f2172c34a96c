package service

import (
	"testing"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createMentor(t *testing.T, db *gorm.DB, username, expertise string) *model.MentorProfile {
	t.Helper()

	user := &model.User{Username: username, Email: username + "@example.com", Password: "x"}
	require.NoError(t, db.Create(user).Error)

	mentor := &model.MentorProfile{
		UserID:    user.ID,
		Expertise: expertise,
		Languages: "english, hindi",
	}
	require.NoError(t, db.Create(mentor).Error)
	return mentor
}

func TestMentorOverview(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMentorService(repository.NewMentorRepository(db))

	student := createStudent(t, db, "asha")
	mentor := createMentor(t, db, "priya", "mathematics")
	createMentor(t, db, "ravi", "science")

	_, err := svc.RequestMentor(mentor.ID, student.ID)
	require.NoError(t, err)

	overview, err := svc.Overview(student.ID)
	require.NoError(t, err)
	assert.Len(t, overview.Mentors, 2)
	require.Len(t, overview.Relationships, 1)
	assert.Equal(t, mentor.ID, overview.Relationships[0].MentorID)
}

func TestRequestMentor(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMentorService(repository.NewMentorRepository(db))

	student := createStudent(t, db, "asha")
	mentor := createMentor(t, db, "priya", "mathematics")

	rel, err := svc.RequestMentor(mentor.ID, student.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RelationshipPending, rel.Status)
}

func TestRequestMentorIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMentorService(repository.NewMentorRepository(db))

	student := createStudent(t, db, "asha")
	mentor := createMentor(t, db, "priya", "mathematics")

	first, err := svc.RequestMentor(mentor.ID, student.ID)
	require.NoError(t, err)

	second, err := svc.RequestMentor(mentor.ID, student.ID)
	assert.ErrorIs(t, err, util.ErrMentorRequested)
	require.NotNil(t, second)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	db.Model(&model.MentorStudentRelationship{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRequestMentorNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewMentorService(repository.NewMentorRepository(db))

	student := createStudent(t, db, "asha")

	_, err := svc.RequestMentor(9999, student.ID)
	assert.ErrorIs(t, err, util.ErrMentorNotFound)
}

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

func newUserService(db *gorm.DB) *UserService {
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
	)
}

func TestGetProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	user := createStudent(t, db, "asha")

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha", profile.User.Username)
	assert.Equal(t, user.ID, profile.Student.UserID)
}

func TestGetProfileUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	_, err := svc.GetProfile(9999)
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	user := createStudent(t, db, "asha")

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{
		FirstName:          "Asha",
		LastName:           "Kumar",
		PreferredLanguage:  "tamil",
		GradeLevel:         7,
		SchoolName:         "Govt High School",
		SubjectsOfInterest: "mathematics, science",
		RequiresLargeText:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, model.Tamil, updated.User.PreferredLanguage)
	assert.Equal(t, 7, updated.User.GradeLevel)
	assert.Equal(t, "mathematics, science", updated.Student.SubjectsOfInterest)
	assert.True(t, updated.Student.RequiresLargeText)
	assert.False(t, updated.Student.RequiresVoiceNav)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "Asha", stored.FirstName)
	assert.Equal(t, model.Tamil, stored.PreferredLanguage)
}

func TestUpdateProfileUnknownLanguageFallsBack(t *testing.T) {
	db := setupTestDB(t)
	svc := newUserService(db)

	user := createStudent(t, db, "asha")

	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{PreferredLanguage: "klingon", GradeLevel: 6})
	require.NoError(t, err)
	assert.Equal(t, model.English, updated.User.PreferredLanguage)
}

package service

import (
	"testing"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAssessmentService(db *gorm.DB) *AssessmentService {
	progress := NewProgressService(
		repository.NewProfileRepository(db),
		repository.NewActivityRepository(db),
		repository.NewAchievementRepository(db),
	)
	return NewAssessmentService(
		repository.NewAssessmentRepository(db),
		repository.NewProfileRepository(db),
		repository.NewUserRepository(db),
		progress,
	)
}

func TestDominantStyle(t *testing.T) {
	assert.Equal(t, model.Visual, dominantStyle(0.8, 0.5, 0.3))
	assert.Equal(t, model.Auditory, dominantStyle(0.2, 0.6, 0.2))
	assert.Equal(t, model.Kinesthetic, dominantStyle(0.1, 0.2, 0.7))

	// Ties resolve in a fixed order: visual, then auditory, then
	// kinesthetic.
	assert.Equal(t, model.Visual, dominantStyle(0.5, 0.5, 0.0))
	assert.Equal(t, model.Auditory, dominantStyle(0.2, 0.4, 0.4))
	assert.Equal(t, model.Visual, dominantStyle(0.0, 0.0, 0.0))
}

func TestSubmitAssessment(t *testing.T) {
	db := setupTestDB(t)
	svc := newAssessmentService(db)

	user := createStudent(t, db, "asha")

	result, err := svc.SubmitAssessment(user.ID, map[string]string{
		"q1": "visual",
		"q2": "visual",
		"q3": "auditory",
		"q4": "kinesthetic",
	})
	require.NoError(t, err)

	assert.Equal(t, model.Visual, result.DominantStyle)
	assert.InDelta(t, 0.5, result.Scores["visual"], 0.001)
	assert.InDelta(t, 0.25, result.Scores["auditory"], 0.001)
	assert.InDelta(t, 0.25, result.Scores["kinesthetic"], 0.001)

	// Snapshot persisted.
	latest, err := svc.LatestForUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Visual, latest.DominantStyle)

	// Profile and user both carry the new style.
	var profile model.StudentProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, model.Visual, profile.LearningStyle)

	var stored model.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, model.Visual, stored.LearningStyle)
}

func TestSubmitAssessmentReplacesPrevious(t *testing.T) {
	db := setupTestDB(t)
	svc := newAssessmentService(db)

	user := createStudent(t, db, "asha")

	_, err := svc.SubmitAssessment(user.ID, map[string]string{"q1": "visual"})
	require.NoError(t, err)
	_, err = svc.SubmitAssessment(user.ID, map[string]string{"q1": "kinesthetic"})
	require.NoError(t, err)

	latest, err := svc.LatestForUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Kinesthetic, latest.DominantStyle)

	// Both snapshots kept.
	var count int64
	db.Model(&model.LearningStyleAssessment{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

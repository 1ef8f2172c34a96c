package service

import (
	"testing"
	"time"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProgressService(db *gorm.DB) *ProgressService {
	return NewProgressService(
		repository.NewProfileRepository(db),
		repository.NewActivityRepository(db),
		repository.NewAchievementRepository(db),
	)
}

func recordActivityAt(t *testing.T, db *gorm.DB, userID uint, start time.Time, completed bool) *model.LearningActivity {
	t.Helper()

	activity := &model.LearningActivity{
		UserID:    userID,
		ContentID: 1,
		StartTime: start,
		Completed: completed,
	}
	require.NoError(t, db.Create(activity).Error)
	return activity
}

func TestAssessLearningStyle(t *testing.T) {
	svc := newProgressService(setupTestDB(t))

	v, a, k := svc.AssessLearningStyle(map[string]string{
		"q1": "visual",
		"q2": "Visual",
		"q3": "auditory",
		"q4": "kinesthetic",
	})
	assert.InDelta(t, 0.5, v, 0.001)
	assert.InDelta(t, 0.25, a, 0.001)
	assert.InDelta(t, 0.25, k, 0.001)

	v, a, k = svc.AssessLearningStyle(nil)
	assert.Zero(t, v)
	assert.Zero(t, a)
	assert.Zero(t, k)
}

func TestCalculateStreakConsecutiveDays(t *testing.T) {
	db := setupTestDB(t)
	svc := newProgressService(db)

	user := createStudent(t, db, "asha")
	now := time.Now()
	recordActivityAt(t, db, user.ID, now, true)
	recordActivityAt(t, db, user.ID, now.AddDate(0, 0, -1), true)
	recordActivityAt(t, db, user.ID, now.AddDate(0, 0, -2), true)
	// A second activity on the same day does not double-count.
	recordActivityAt(t, db, user.ID, now.AddDate(0, 0, -1), false)

	streak, err := svc.CalculateStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestCalculateStreakBrokenByGap(t *testing.T) {
	db := setupTestDB(t)
	svc := newProgressService(db)

	user := createStudent(t, db, "asha")
	now := time.Now()
	recordActivityAt(t, db, user.ID, now, true)
	recordActivityAt(t, db, user.ID, now.AddDate(0, 0, -3), true)

	streak, err := svc.CalculateStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestCalculateStreakDeadAfterTwoIdleDays(t *testing.T) {
	db := setupTestDB(t)
	svc := newProgressService(db)

	user := createStudent(t, db, "asha")
	recordActivityAt(t, db, user.ID, time.Now().AddDate(0, 0, -4), true)

	streak, err := svc.CalculateStreak(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)
}

func TestUpdateStudentProgressAwards(t *testing.T) {
	db := setupTestDB(t)
	svc := newProgressService(db)

	user := createStudent(t, db, "asha")
	score := 0.95
	activity := recordActivityAt(t, db, user.ID, time.Now(), true)
	activity.Score = &score

	require.NoError(t, svc.UpdateStudentProgress(user.ID, activity))

	var profile model.StudentProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, 10, profile.Points)
	assert.Equal(t, 1, profile.StreakDays)

	var badges []model.Achievement
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&badges).Error)
	names := make([]string, 0, len(badges))
	for _, b := range badges {
		names = append(names, b.BadgeName)
	}
	assert.Contains(t, names, "first_steps")
	assert.Contains(t, names, "subject_mastery")
}

func TestAwardIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := newProgressService(db)

	user := createStudent(t, db, "asha")
	activity := recordActivityAt(t, db, user.ID, time.Now(), true)

	require.NoError(t, svc.UpdateStudentProgress(user.ID, activity))
	require.NoError(t, svc.UpdateStudentProgress(user.ID, activity))

	var count int64
	db.Model(&model.Achievement{}).
		Where("user_id = ? AND badge_name = ?", user.ID, "first_steps").
		Count(&count)
	assert.Equal(t, int64(1), count)
}

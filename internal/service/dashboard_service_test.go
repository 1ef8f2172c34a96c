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

func newDashboardService(db *gorm.DB) *DashboardService {
	progress := newProgressService(db)
	content := newContentService(db, newMemorySessionStore(), &fakeTranslator{})
	return NewDashboardService(
		repository.NewProfileRepository(db),
		repository.NewActivityRepository(db),
		repository.NewAchievementRepository(db),
		repository.NewEmotionRepository(db),
		progress,
		content,
	)
}

func TestDashboardBuild(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)

	user := createStudent(t, db, "asha")
	done := createContent(t, db, "Fractions", "mathematics", 2, model.English)
	createContent(t, db, "Decimals", "mathematics", 2, model.English)
	createContent(t, db, "Water Cycle", "science", 3, model.English)

	require.NoError(t, db.Create(&model.LearningActivity{
		UserID:    user.ID,
		ContentID: done.ID,
		StartTime: time.Now(),
		Completed: true,
	}).Error)
	require.NoError(t, db.Create(&model.Achievement{
		UserID:     user.ID,
		Title:      "First Steps",
		BadgeName:  "first_steps",
		DateEarned: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&model.EmotionLog{
		UserID:    user.ID,
		Timestamp: time.Now(),
		Emotion:   model.Engaged,
	}).Error)

	dashboard, err := svc.Build(user.ID)
	require.NoError(t, err)

	assert.Equal(t, user.ID, dashboard.Student.UserID)
	require.Len(t, dashboard.RecentActivities, 1)
	assert.Equal(t, done.ID, dashboard.RecentActivities[0].ContentID)
	require.Len(t, dashboard.Achievements, 1)
	assert.Equal(t, 1, dashboard.Streak)

	// Completed content is not recommended again.
	for _, rec := range dashboard.RecommendedContent {
		assert.NotEqual(t, done.ID, rec.ID)
	}
	assert.NotEmpty(t, dashboard.RecommendedContent)

	require.Len(t, dashboard.RecentEmotions, 1)
	assert.Equal(t, model.Engaged, dashboard.RecentEmotions[0].Emotion)
}

func TestDashboardBuildEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := newDashboardService(db)

	user := createStudent(t, db, "asha")

	dashboard, err := svc.Build(user.ID)
	require.NoError(t, err)
	assert.Empty(t, dashboard.RecentActivities)
	assert.Empty(t, dashboard.Achievements)
	assert.Zero(t, dashboard.Streak)
}

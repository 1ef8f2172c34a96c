package service

import (
	"context"
	"testing"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newContentService(db *gorm.DB, sessions SessionStore, translator Translator) *ContentService {
	return NewContentService(
		repository.NewContentRepository(db),
		repository.NewActivityRepository(db),
		sessions,
		translator,
	)
}

func TestListContentDifficultyWindow(t *testing.T) {
	db := setupTestDB(t)
	svc := newContentService(db, newMemorySessionStore(), &fakeTranslator{})

	for level := 1; level <= 5; level++ {
		createContent(t, db, "Lesson", "mathematics", level, model.English)
	}

	profile := &model.StudentProfile{DifficultyLevel: 3}

	// difficulty 0 falls back to the profile level; window is one level
	// either side.
	items, err := svc.ListContent(profile, "", 0)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for _, item := range items {
		assert.GreaterOrEqual(t, item.DifficultyLevel, 2)
		assert.LessOrEqual(t, item.DifficultyLevel, 4)
	}

	items, err = svc.ListContent(profile, "", 1)
	require.NoError(t, err)
	assert.Len(t, items, 2) // levels 1 and 2
}

func TestListContentSubjectFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := newContentService(db, newMemorySessionStore(), &fakeTranslator{})

	createContent(t, db, "Fractions", "mathematics", 2, model.English)
	createContent(t, db, "Water Cycle", "science", 2, model.English)

	profile := &model.StudentProfile{DifficultyLevel: 2}

	items, err := svc.ListContent(profile, "math", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Fractions", items[0].Title)
}

func TestViewContentOpensActivity(t *testing.T) {
	db := setupTestDB(t)
	sessions := newMemorySessionStore()
	translator := &fakeTranslator{}
	svc := newContentService(db, sessions, translator)

	user := createStudent(t, db, "asha")
	content := createContent(t, db, "Fractions", "mathematics", 2, model.English)

	viewed, activity, err := svc.ViewContent(context.Background(), user, content.ID)
	require.NoError(t, err)

	// Same language, so the body is untouched.
	assert.Equal(t, 0, translator.calls)
	assert.Equal(t, content.Content, viewed.Content)

	require.NotZero(t, activity.ID)
	assert.Equal(t, user.ID, activity.UserID)
	assert.False(t, activity.Completed)

	current, err := sessions.CurrentActivity(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, activity.ID, current)
}

func TestViewContentTranslatesForDisplay(t *testing.T) {
	db := setupTestDB(t)
	translator := &fakeTranslator{}
	svc := newContentService(db, newMemorySessionStore(), translator)

	user := createStudent(t, db, "asha") // prefers English
	content := createContent(t, db, "सौर मंडल", "science", 2, model.Hindi)

	viewed, _, err := svc.ViewContent(context.Background(), user, content.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, translator.calls)
	assert.Equal(t, "[english] Body of सौर मंडल", viewed.Content)

	// The stored row keeps its original language and body.
	var stored model.LearningContent
	require.NoError(t, db.First(&stored, content.ID).Error)
	assert.Equal(t, model.Hindi, stored.Language)
	assert.Equal(t, "Body of सौर मंडल", stored.Content)
}

func TestViewContentNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newContentService(db, newMemorySessionStore(), &fakeTranslator{})

	user := createStudent(t, db, "asha")

	_, _, err := svc.ViewContent(context.Background(), user, 9999)
	assert.ErrorIs(t, err, util.ErrContentNotFound)
}

func TestRecommendForUserSkipsCompleted(t *testing.T) {
	db := setupTestDB(t)
	svc := newContentService(db, newMemorySessionStore(), &fakeTranslator{})

	user := createStudent(t, db, "asha")
	done := createContent(t, db, "Fractions", "mathematics", 2, model.English)
	createContent(t, db, "Decimals", "mathematics", 2, model.English)

	require.NoError(t, db.Create(&model.LearningActivity{
		UserID:    user.ID,
		ContentID: done.ID,
		Completed: true,
	}).Error)

	profile := &model.StudentProfile{DifficultyLevel: 2}
	items, err := svc.RecommendForUser(user.ID, profile, 3)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Decimals", items[0].Title)
}

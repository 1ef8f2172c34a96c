package service

import (
	"context"
	"testing"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"
	"vidyai_backend/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// memorySessionStore implements SessionStore without redis.
type memorySessionStore struct {
	current map[uint]uint
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{current: make(map[uint]uint)}
}

func (m *memorySessionStore) SetCurrentActivity(_ context.Context, userID, activityID uint) error {
	m.current[userID] = activityID
	return nil
}

func (m *memorySessionStore) CurrentActivity(_ context.Context, userID uint) (uint, error) {
	id, ok := m.current[userID]
	if !ok {
		return 0, util.ErrNoActiveActivity
	}
	return id, nil
}

func (m *memorySessionStore) ClearCurrentActivity(_ context.Context, userID uint) error {
	delete(m.current, userID)
	return nil
}

func (m *memorySessionStore) ClearSession(_ context.Context, userID uint) error {
	delete(m.current, userID)
	return nil
}

// fakeTranslator marks translated text so tests can tell it ran.
type fakeTranslator struct {
	calls int
}

func (f *fakeTranslator) Translate(text string, src, dst model.Language) (string, error) {
	if src == dst || text == "" {
		return text, nil
	}
	f.calls++
	return "[" + string(dst) + "] " + text, nil
}

func createStudent(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{
		Username:          username,
		Email:             username + "@example.com",
		Password:          "not-a-real-hash",
		PreferredLanguage: model.English,
		GradeLevel:        6,
	}
	profile := &model.StudentProfile{
		DifficultyLevel: 2,
		LearningStyle:   model.StyleUnknown,
	}
	require.NoError(t, repository.NewUserRepository(db).CreateWithProfile(user, profile))
	return user
}

func createContent(t *testing.T, db *gorm.DB, title, subject string, difficulty int, lang model.Language) *model.LearningContent {
	t.Helper()

	content := &model.LearningContent{
		Title:           title,
		ContentType:     "text",
		DifficultyLevel: difficulty,
		Subject:         subject,
		Language:        lang,
		Content:         "Body of " + title,
	}
	require.NoError(t, db.Create(content).Error)
	return content
}

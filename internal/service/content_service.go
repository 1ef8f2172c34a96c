package service

import (
	"context"
	"errors"
	"time"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"gorm.io/gorm"
)

type ContentService struct {
	ContentRepo  *repository.ContentRepository
	ActivityRepo *repository.ActivityRepository
	Sessions     SessionStore
	Translator   Translator
}

func NewContentService(
	contentRepo *repository.ContentRepository,
	activityRepo *repository.ActivityRepository,
	sessions SessionStore,
	translator Translator,
) *ContentService {
	return &ContentService{
		ContentRepo:  contentRepo,
		ActivityRepo: activityRepo,
		Sessions:     sessions,
		Translator:   translator,
	}
}

func clampDifficulty(level int) int {
	if level < 1 {
		return 1
	}
	if level > 5 {
		return 5
	}
	return level
}

// ListContent filters the catalogue by subject substring and a ±1 window
// around the requested difficulty. A difficulty of 0 means "use the
// student's stored level".
func (s *ContentService) ListContent(profile *model.StudentProfile, subject string, difficulty int) ([]model.LearningContent, error) {
	if difficulty == 0 {
		difficulty = profile.DifficultyLevel
	}
	return s.ContentRepo.Search(subject, clampDifficulty(difficulty))
}

// ViewContent loads one content item, translating its body when the
// content language differs from the viewer's preferred language, opens a
// learning activity and stores its id in the viewer's session.
func (s *ContentService) ViewContent(ctx context.Context, user *model.User, contentID uint) (*model.LearningContent, *model.LearningActivity, error) {
	content, err := s.ContentRepo.FindByID(contentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, util.ErrContentNotFound
		}
		return nil, nil, err
	}

	if content.Language != user.PreferredLanguage {
		translated, err := s.Translator.Translate(content.Content, content.Language, user.PreferredLanguage)
		if err != nil {
			return nil, nil, err
		}
		// Translated for display only; the stored row keeps its language.
		content.Content = translated
	}

	activity := &model.LearningActivity{
		UserID:    user.ID,
		ContentID: content.ID,
		StartTime: time.Now(),
	}
	if err := s.ActivityRepo.Create(activity); err != nil {
		return nil, nil, err
	}

	if err := s.Sessions.SetCurrentActivity(ctx, user.ID, activity.ID); err != nil {
		return nil, nil, err
	}

	return content, activity, nil
}

// RecommendForUser picks uncompleted catalogue entries near the student's
// difficulty level for the dashboard.
func (s *ContentService) RecommendForUser(userID uint, profile *model.StudentProfile, limit int) ([]model.LearningContent, error) {
	return s.ContentRepo.FindUncompleted(userID, clampDifficulty(profile.DifficultyLevel), limit)
}

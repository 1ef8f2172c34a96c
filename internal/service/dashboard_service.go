package service

import (
	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
)

type DashboardService struct {
	ProfileRepo     *repository.ProfileRepository
	ActivityRepo    *repository.ActivityRepository
	AchievementRepo *repository.AchievementRepository
	EmotionRepo     *repository.EmotionRepository
	Progress        *ProgressService
	Content         *ContentService
}

func NewDashboardService(
	profileRepo *repository.ProfileRepository,
	activityRepo *repository.ActivityRepository,
	achievementRepo *repository.AchievementRepository,
	emotionRepo *repository.EmotionRepository,
	progress *ProgressService,
	content *ContentService,
) *DashboardService {
	return &DashboardService{
		ProfileRepo:     profileRepo,
		ActivityRepo:    activityRepo,
		AchievementRepo: achievementRepo,
		EmotionRepo:     emotionRepo,
		Progress:        progress,
		Content:         content,
	}
}

type Dashboard struct {
	Student            *model.StudentProfile    `json:"student"`
	RecentActivities   []model.LearningActivity `json:"recentActivities"`
	Achievements       []model.Achievement      `json:"achievements"`
	Streak             int                      `json:"streak"`
	RecommendedContent []model.LearningContent  `json:"recommendedContent"`
	RecentEmotions     []model.EmotionLog       `json:"recentEmotions"`
}

const (
	recentActivityLimit  = 5
	recommendedListLimit = 3
	recentEmotionLimit   = 10
)

func (s *DashboardService) Build(userID uint) (*Dashboard, error) {
	profile, err := s.ProfileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	activities, err := s.ActivityRepo.RecentByUser(userID, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	streak, err := s.Progress.CalculateStreak(userID)
	if err != nil {
		return nil, err
	}

	recommended, err := s.Content.RecommendForUser(userID, profile, recommendedListLimit)
	if err != nil {
		return nil, err
	}

	emotions, err := s.EmotionRepo.RecentByUser(userID, recentEmotionLimit)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Student:            profile,
		RecentActivities:   activities,
		Achievements:       achievements,
		Streak:             streak,
		RecommendedContent: recommended,
		RecentEmotions:     emotions,
	}, nil
}

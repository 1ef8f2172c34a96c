package service

import (
	"fmt"
	"strings"
	"time"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
)

// ProgressService owns the gamification heuristics: learning style scoring,
// streaks, points and achievement awarding.
type ProgressService struct {
	ProfileRepo     *repository.ProfileRepository
	ActivityRepo    *repository.ActivityRepository
	AchievementRepo *repository.AchievementRepository
}

func NewProgressService(
	profileRepo *repository.ProfileRepository,
	activityRepo *repository.ActivityRepository,
	achievementRepo *repository.AchievementRepository,
) *ProgressService {
	return &ProgressService{
		ProfileRepo:     profileRepo,
		ActivityRepo:    activityRepo,
		AchievementRepo: achievementRepo,
	}
}

// AssessLearningStyle scores quiz answers into visual/auditory/kinesthetic
// sub-scores in [0,1]. Answers map question ids to the chosen option
// ("visual", "auditory" or "kinesthetic").
func (s *ProgressService) AssessLearningStyle(answers map[string]string) (visual, auditory, kinesthetic float64) {
	if len(answers) == 0 {
		return 0, 0, 0
	}

	var v, a, k int
	for _, choice := range answers {
		switch model.LearningStyle(strings.ToLower(choice)) {
		case model.Visual:
			v++
		case model.Auditory:
			a++
		case model.Kinesthetic:
			k++
		}
	}

	total := float64(len(answers))
	return float64(v) / total, float64(a) / total, float64(k) / total
}

// CalculateStreak counts consecutive days with recorded activity ending
// today or yesterday.
func (s *ProgressService) CalculateStreak(userID uint) (int, error) {
	dates, err := s.ActivityRepo.ActivityDates(userID)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// A streak is alive if the latest activity was today or yesterday.
	gap := int(today.Sub(dates[0]).Hours() / 24)
	if gap > 1 {
		return 0, nil
	}

	streak := 1
	for i := 1; i < len(dates); i++ {
		if int(dates[i-1].Sub(dates[i]).Hours()/24) != 1 {
			break
		}
		streak++
	}
	return streak, nil
}

const (
	pointsPerCompletion = 10
	masteryScore        = 0.9
)

var streakBadges = map[int]string{
	3:  "three_day_streak",
	7:  "week_streak",
	30: "month_streak",
}

// UpdateStudentProgress runs the completion side effects: points, streak
// and completion-rate bookkeeping on the profile, plus achievement checks.
func (s *ProgressService) UpdateStudentProgress(userID uint, activity *model.LearningActivity) error {
	profile, err := s.ProfileRepo.FindByUserID(userID)
	if err != nil {
		return err
	}

	streak, err := s.CalculateStreak(userID)
	if err != nil {
		return err
	}

	completed, err := s.ActivityRepo.CountCompleted(userID)
	if err != nil {
		return err
	}
	total, err := s.ActivityRepo.CountAll(userID)
	if err != nil {
		return err
	}

	profile.Points += pointsPerCompletion
	profile.StreakDays = streak
	profile.LastActive = time.Now()
	if total > 0 {
		profile.CompletionRate = float64(completed) / float64(total)
	}
	if err := s.ProfileRepo.Update(profile); err != nil {
		return err
	}

	if completed == 1 {
		if err := s.award(userID, "first_steps", "First Steps", "Completed your first learning activity", 20, "completion"); err != nil {
			return err
		}
	}

	if badge, ok := streakBadges[streak]; ok {
		if err := s.award(userID, badge, fmt.Sprintf("%d Day Streak", streak),
			fmt.Sprintf("Learned %d days in a row", streak), streak*10, "streak"); err != nil {
			return err
		}
	}

	if activity.Score != nil && *activity.Score >= masteryScore {
		if err := s.award(userID, "subject_mastery", "Subject Mastery", "Scored 90% or higher on an activity", 30, "skill mastery"); err != nil {
			return err
		}
	}

	return nil
}

// award creates the badge once; repeat qualifications are a no-op.
func (s *ProgressService) award(userID uint, badge, title, description string, points int, achievementType string) error {
	has, err := s.AchievementRepo.HasBadge(userID, badge)
	if err != nil || has {
		return err
	}

	return s.AchievementRepo.Create(&model.Achievement{
		UserID:          userID,
		Title:           title,
		Description:     description,
		BadgeName:       badge,
		PointsAwarded:   points,
		DateEarned:      time.Now(),
		AchievementType: achievementType,
	})
}

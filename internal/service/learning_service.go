package service

import (
	"context"
	"errors"
	"time"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"
	"vidyai_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type LearningService struct {
	ActivityRepo *repository.ActivityRepository
	Sessions     SessionStore
	Progress     *ProgressService
}

func NewLearningService(activityRepo *repository.ActivityRepository, sessions SessionStore, progress *ProgressService) *LearningService {
	return &LearningService{
		ActivityRepo: activityRepo,
		Sessions:     sessions,
		Progress:     progress,
	}
}

// CompleteActivity closes the activity referenced by the caller's session.
// util.ErrNoActiveActivity when nothing is open, util.ErrActivityNotFound
// when the referenced row is gone. On success the session pointer is
// cleared and progress side effects run.
func (s *LearningService) CompleteActivity(ctx context.Context, userID uint, score *float64) (*model.LearningActivity, error) {
	activityID, err := s.Sessions.CurrentActivity(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity, err := s.ActivityRepo.FindByID(activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActivityNotFound
		}
		return nil, err
	}

	now := time.Now()
	activity.EndTime = &now
	activity.Completed = true
	if score != nil {
		activity.Score = score
	}

	if err := s.ActivityRepo.Update(activity); err != nil {
		return nil, err
	}

	if err := s.Sessions.ClearCurrentActivity(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.Progress.UpdateStudentProgress(userID, activity); err != nil {
		return nil, err
	}

	monitoring.ActivitiesCompleted.Inc()

	return activity, nil
}

// RecordEngagement appends one sample to the active activity's log and
// updates its rolling engagement level.
func (s *LearningService) RecordEngagement(ctx context.Context, userID uint, sample model.EngagementSample) (*model.LearningActivity, error) {
	activityID, err := s.Sessions.CurrentActivity(ctx, userID)
	if err != nil {
		return nil, err
	}

	activity, err := s.ActivityRepo.FindByID(activityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrActivityNotFound
		}
		return nil, err
	}

	if err := activity.AppendSample(sample); err != nil {
		return nil, err
	}

	if err := s.ActivityRepo.Update(activity); err != nil {
		return nil, err
	}

	monitoring.EngagementSamples.WithLabelValues(string(sample.Emotion)).Inc()

	return activity, nil
}

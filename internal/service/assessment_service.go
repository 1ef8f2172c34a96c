package service

import (
	"time"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
)

type AssessmentService struct {
	AssessmentRepo *repository.AssessmentRepository
	ProfileRepo    *repository.ProfileRepository
	UserRepo       *repository.UserRepository
	Progress       *ProgressService
}

func NewAssessmentService(
	assessmentRepo *repository.AssessmentRepository,
	profileRepo *repository.ProfileRepository,
	userRepo *repository.UserRepository,
	progress *ProgressService,
) *AssessmentService {
	return &AssessmentService{
		AssessmentRepo: assessmentRepo,
		ProfileRepo:    profileRepo,
		UserRepo:       userRepo,
		Progress:       progress,
	}
}

type AssessmentResult struct {
	DominantStyle model.LearningStyle `json:"dominantStyle"`
	Scores        map[string]float64  `json:"scores"`
}

// dominantStyle compares in fixed order so equal scores always resolve the
// same way: visual, then auditory, then kinesthetic.
func dominantStyle(visual, auditory, kinesthetic float64) model.LearningStyle {
	style := model.Visual
	best := visual
	if auditory > best {
		style, best = model.Auditory, auditory
	}
	if kinesthetic > best {
		style = model.Kinesthetic
	}
	return style
}

// SubmitAssessment scores the quiz, persists a snapshot and updates the
// student's stored learning style.
func (s *AssessmentService) SubmitAssessment(userID uint, answers map[string]string) (*AssessmentResult, error) {
	visual, auditory, kinesthetic := s.Progress.AssessLearningStyle(answers)
	style := dominantStyle(visual, auditory, kinesthetic)

	assessment := &model.LearningStyleAssessment{
		UserID:           userID,
		VisualScore:      visual,
		AuditoryScore:    auditory,
		KinestheticScore: kinesthetic,
		DominantStyle:    style,
		AssessmentDate:   time.Now(),
	}
	if err := s.AssessmentRepo.Create(assessment); err != nil {
		return nil, err
	}

	if err := s.ProfileRepo.UpdateLearningStyle(userID, style); err != nil {
		return nil, err
	}

	user, err := s.UserRepo.FindByID(userID)
	if err == nil {
		user.LearningStyle = style
		if err := s.UserRepo.Update(user); err != nil {
			return nil, err
		}
	}

	return &AssessmentResult{
		DominantStyle: style,
		Scores: map[string]float64{
			"visual":      visual,
			"auditory":    auditory,
			"kinesthetic": kinesthetic,
		},
	}, nil
}

func (s *AssessmentService) LatestForUser(userID uint) (*model.LearningStyleAssessment, error) {
	return s.AssessmentRepo.LatestByUser(userID)
}

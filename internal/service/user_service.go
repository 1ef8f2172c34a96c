package service

import (
	"errors"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	UserRepo    *repository.UserRepository
	ProfileRepo *repository.ProfileRepository
}

func NewUserService(userRepo *repository.UserRepository, profileRepo *repository.ProfileRepository) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
	}
}

// ProfileUpdate is the validated form of a profile edit. GradeLevel arrives
// here as an int; the controller rejects non-numeric input up front.
type ProfileUpdate struct {
	FirstName          string
	LastName           string
	PreferredLanguage  string
	GradeLevel         int
	SchoolName         string
	SubjectsOfInterest string
	RequiresVoiceNav   bool
	RequiresLargeText  bool
}

type UserProfile struct {
	User    *model.User           `json:"user"`
	Student *model.StudentProfile `json:"student"`
}

func (s *UserService) GetProfile(userID uint) (*UserProfile, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	profile, err := s.ProfileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProfileNotFound
		}
		return nil, err
	}

	return &UserProfile{User: user, Student: profile}, nil
}

func (s *UserService) UpdateProfile(userID uint, update ProfileUpdate) (*UserProfile, error) {
	current, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	user, profile := current.User, current.Student

	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.PreferredLanguage = model.ParseLanguage(update.PreferredLanguage)
	user.GradeLevel = update.GradeLevel
	user.SchoolName = update.SchoolName
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}

	profile.SubjectsOfInterest = update.SubjectsOfInterest
	profile.RequiresVoiceNav = update.RequiresVoiceNav
	profile.RequiresLargeText = update.RequiresLargeText
	if err := s.ProfileRepo.Update(profile); err != nil {
		return nil, err
	}

	return &UserProfile{User: user, Student: profile}, nil
}

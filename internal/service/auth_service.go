package service

import (
	"errors"
	"time"

	"vidyai_backend/internal/config"
	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// Register hashes the password and creates the user together with its
// student profile in one transaction. Duplicate username or email is
// rejected before anything is written.
func (s *AuthService) Register(user *model.User, password string) error {
	if _, err := s.UserRepo.FindByUsername(user.Username); err == nil {
		return util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if _, err := s.UserRepo.FindByEmail(user.Email); err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	profile := &model.StudentProfile{
		DifficultyLevel: 1,
		LearningStyle:   model.StyleUnknown,
		LastActive:      time.Now(),
	}
	return s.UserRepo.CreateWithProfile(user, profile)
}

// Login verifies the password, stamps last_login and issues a JWT.
func (s *AuthService) Login(username, password string) (string, error) {
	user, err := s.UserRepo.FindByUsername(username)
	if err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", util.ErrInvalidCredentials
	}

	if err := s.UserRepo.UpdateLastLogin(user.ID); err != nil {
		return "", err
	}

	return util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, err := s.UserRepo.FindByID(claims.UserID)
	if err != nil {
		return nil
	}
	return user
}

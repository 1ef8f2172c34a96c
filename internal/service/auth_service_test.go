package service

import (
	"testing"
	"time"

	"vidyai_backend/internal/config"
	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(db *repository.UserRepository) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-for-signing-tokens"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(db, cfg)
}

func TestRegisterCreatesUserWithProfile(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := newAuthService(userRepo)

	user := &model.User{
		Username:          "asha",
		Email:             "asha@example.com",
		PreferredLanguage: model.Hindi,
		GradeLevel:        5,
	}
	require.NoError(t, svc.Register(user, "secret-password"))
	require.NotZero(t, user.ID)

	// Password stored hashed, never plaintext.
	assert.NotEqual(t, "secret-password", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-password")))

	var profile model.StudentProfile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
	assert.Equal(t, 1, profile.DifficultyLevel)
	assert.Equal(t, model.StyleUnknown, profile.LearningStyle)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := newAuthService(userRepo)

	first := &model.User{Username: "asha", Email: "asha@example.com"}
	require.NoError(t, svc.Register(first, "secret-password"))

	dup := &model.User{Username: "asha", Email: "other@example.com"}
	err := svc.Register(dup, "secret-password")
	assert.ErrorIs(t, err, util.ErrUsernameTaken)

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := newAuthService(userRepo)

	first := &model.User{Username: "asha", Email: "asha@example.com"}
	require.NoError(t, svc.Register(first, "secret-password"))

	dup := &model.User{Username: "ravi", Email: "asha@example.com"}
	err := svc.Register(dup, "secret-password")
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := newAuthService(userRepo)

	user := &model.User{Username: "asha", Email: "asha@example.com"}
	require.NoError(t, svc.Register(user, "secret-password"))

	token, err := svc.Login("asha", "secret-password")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "test-secret-for-signing-tokens")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "asha", claims.Username)

	// Login stamps last_login.
	stored, err := userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.False(t, stored.LastLogin.IsZero())
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repository.NewUserRepository(db)
	svc := newAuthService(userRepo)

	user := &model.User{Username: "asha", Email: "asha@example.com"}
	require.NoError(t, svc.Register(user, "secret-password"))

	_, err := svc.Login("asha", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login("nobody", "secret-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}

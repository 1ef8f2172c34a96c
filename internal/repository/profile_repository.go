package repository

import (
	"vidyai_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.StudentProfile, error) {
	var profile model.StudentProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *ProfileRepository) Update(profile *model.StudentProfile) error {
	return r.DB.Save(profile).Error
}

func (r *ProfileRepository) UpdateLearningStyle(userID uint, style model.LearningStyle) error {
	return r.DB.Model(&model.StudentProfile{}).
		Where("user_id = ?", userID).
		Update("learning_style", style).
		Error
}

package repository

import (
	"vidyai_backend/internal/model"

	"gorm.io/gorm"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) Create(achievement *model.Achievement) error {
	return r.DB.Create(achievement).Error
}

func (r *AchievementRepository) FindByUser(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.
		Where("user_id = ?", userID).
		Order("date_earned DESC").
		Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) HasBadge(userID uint, badgeName string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Achievement{}).
		Where("user_id = ? AND badge_name = ?", userID, badgeName).
		Count(&count).Error
	return count > 0, err
}

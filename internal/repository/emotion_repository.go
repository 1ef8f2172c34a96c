package repository

import (
	"vidyai_backend/internal/model"

	"gorm.io/gorm"
)

type EmotionRepository struct {
	DB *gorm.DB
}

func NewEmotionRepository(db *gorm.DB) *EmotionRepository {
	return &EmotionRepository{DB: db}
}

func (r *EmotionRepository) Create(log *model.EmotionLog) error {
	return r.DB.Create(log).Error
}

func (r *EmotionRepository) RecentByUser(userID uint, limit int) ([]model.EmotionLog, error) {
	var logs []model.EmotionLog
	err := r.DB.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

package repository

import (
	"vidyai_backend/internal/model"

	"gorm.io/gorm"
)

type ContentRepository struct {
	DB *gorm.DB
}

func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{DB: db}
}

func (r *ContentRepository) FindByID(id uint) (*model.LearningContent, error) {
	var content model.LearningContent
	err := r.DB.First(&content, id).Error
	return &content, err
}

// Search returns content matching a subject substring inside a difficulty
// window of ±1 around the given level.
func (r *ContentRepository) Search(subject string, difficulty int) ([]model.LearningContent, error) {
	query := r.DB.Model(&model.LearningContent{})

	if subject != "" {
		query = query.Where("subject LIKE ?", "%"+subject+"%")
	}

	query = query.Where("difficulty_level >= ? AND difficulty_level <= ?", difficulty-1, difficulty+1)

	var contents []model.LearningContent
	err := query.Order("difficulty_level, title").Find(&contents).Error
	return contents, err
}

// FindUncompleted lists content in the difficulty window the user has not
// completed yet, for dashboard recommendations.
func (r *ContentRepository) FindUncompleted(userID uint, difficulty, limit int) ([]model.LearningContent, error) {
	var contents []model.LearningContent
	sub := r.DB.Model(&model.LearningActivity{}).
		Select("content_id").
		Where("user_id = ? AND completed = ?", userID, true)

	err := r.DB.
		Where("difficulty_level >= ? AND difficulty_level <= ?", difficulty-1, difficulty+1).
		Where("id NOT IN (?)", sub).
		Limit(limit).
		Find(&contents).Error
	return contents, err
}

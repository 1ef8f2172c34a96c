package repository

import (
	"vidyai_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) Create(assessment *model.LearningStyleAssessment) error {
	return r.DB.Create(assessment).Error
}

func (r *AssessmentRepository) LatestByUser(userID uint) (*model.LearningStyleAssessment, error) {
	var assessment model.LearningStyleAssessment
	err := r.DB.
		Where("user_id = ?", userID).
		Order("assessment_date DESC, id DESC").
		First(&assessment).Error
	return &assessment, err
}

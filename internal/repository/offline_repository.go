package repository

import (
	"vidyai_backend/internal/model"

	"gorm.io/gorm"
)

type OfflineRepository struct {
	DB *gorm.DB
}

func NewOfflineRepository(db *gorm.DB) *OfflineRepository {
	return &OfflineRepository{DB: db}
}

func (r *OfflineRepository) Create(item *model.OfflineContent) error {
	return r.DB.Create(item).Error
}

func (r *OfflineRepository) FindByContentID(contentID uint) (*model.OfflineContent, error) {
	var item model.OfflineContent
	err := r.DB.Where("content_id = ?", contentID).First(&item).Error
	return &item, err
}

func (r *OfflineRepository) FindAll() ([]model.OfflineContent, error) {
	var items []model.OfflineContent
	err := r.DB.Preload("Content").Find(&items).Error
	return items, err
}

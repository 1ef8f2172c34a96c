package repository

import (
	"time"

	"vidyai_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(activity *model.LearningActivity) error {
	return r.DB.Create(activity).Error
}

func (r *ActivityRepository) FindByID(id uint) (*model.LearningActivity, error) {
	var activity model.LearningActivity
	err := r.DB.First(&activity, id).Error
	return &activity, err
}

func (r *ActivityRepository) Update(activity *model.LearningActivity) error {
	return r.DB.Save(activity).Error
}

func (r *ActivityRepository) RecentByUser(userID uint, limit int) ([]model.LearningActivity, error) {
	var activities []model.LearningActivity
	err := r.DB.
		Preload("Content").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// ActivityDates lists the distinct calendar days the user recorded activity
// on, newest first. Used for streak computation.
func (r *ActivityRepository) ActivityDates(userID uint) ([]time.Time, error) {
	var activities []model.LearningActivity
	err := r.DB.
		Select("start_time").
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	var dates []time.Time
	seen := make(map[string]bool)
	for _, a := range activities {
		day := a.StartTime.Format("2006-01-02")
		if !seen[day] {
			seen[day] = true
			y, m, d := a.StartTime.Date()
			dates = append(dates, time.Date(y, m, d, 0, 0, 0, 0, a.StartTime.Location()))
		}
	}
	return dates, nil
}

func (r *ActivityRepository) CountCompleted(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningActivity{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *ActivityRepository) CountAll(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningActivity{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

package model

import "time"

type Achievement struct {
	BaseModel
	UserID          uint      `gorm:"index;not null" json:"userId"`
	Title           string    `gorm:"size:120;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	BadgeName       string    `gorm:"size:50" json:"badgeName"`
	PointsAwarded   int       `gorm:"default:0" json:"pointsAwarded"`
	DateEarned      time.Time `json:"dateEarned"`
	AchievementType string    `gorm:"size:50" json:"achievementType"` // streak, completion, skill mastery
}

func (Achievement) TableName() string {
	return "achievements"
}

package model

import "time"

// StudentProfile carries per-user learning attributes. Exactly one row per
// user; created together with the User record at registration.
// swagger:model StudentProfile
type StudentProfile struct {
	BaseModel
	UserID             uint          `gorm:"uniqueIndex;not null" json:"userId"`
	LearningStyle      LearningStyle `gorm:"size:20;default:'unknown'" json:"learningStyle"`
	SubjectsOfInterest string        `gorm:"size:256" json:"subjectsOfInterest"`
	DifficultyLevel    int           `gorm:"default:1" json:"difficultyLevel"` // 1-5
	StreakDays         int           `gorm:"default:0" json:"streakDays"`
	Points             int           `gorm:"default:0" json:"points"`
	LastActive         time.Time     `json:"lastActive"`

	AverageSessionTime float64 `gorm:"default:0" json:"averageSessionTime"`
	CompletionRate     float64 `gorm:"default:0" json:"completionRate"`

	// Accessibility needs
	RequiresVoiceNav  bool `gorm:"default:false" json:"requiresVoiceNav"`
	RequiresLargeText bool `gorm:"default:false" json:"requiresLargeText"`
}

func (StudentProfile) TableName() string {
	return "student_profiles"
}

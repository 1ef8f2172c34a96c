package model

import "time"

// EmotionLog is an append-only point-in-time emotion sample.
type EmotionLog struct {
	BaseModel
	UserID     uint           `gorm:"index;not null" json:"userId"`
	Timestamp  time.Time      `json:"timestamp"`
	Emotion    EmotionalState `gorm:"size:20;default:'unknown'" json:"emotion"`
	Confidence float64        `json:"confidence"`              // 0-1
	Context    string         `gorm:"size:120" json:"context"` // what the student was doing
}

func (EmotionLog) TableName() string {
	return "emotion_logs"
}

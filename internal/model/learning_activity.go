package model

import (
	"encoding/json"
	"time"
)

// EngagementSample is one entry in an activity's append-only sample log.
type EngagementSample struct {
	Timestamp       time.Time      `json:"timestamp"`
	Emotion         EmotionalState `json:"emotion"`
	EngagementLevel float64        `json:"engagementLevel"` // 0-1
}

// LearningActivity records one content-consumption session. Created when a
// student opens content, mutated on engagement events and completion.
// swagger:model LearningActivity
type LearningActivity struct {
	BaseModel
	UserID    uint       `gorm:"index;not null" json:"userId"`
	ContentID uint       `gorm:"index;not null" json:"contentId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
	Completed bool       `gorm:"default:false" json:"completed"`
	Score     *float64   `json:"score,omitempty"`

	// Emotion tracking
	EmotionalStates json.RawMessage `gorm:"type:json" json:"emotionalStates,omitempty"` // JSON: []EngagementSample
	EngagementLevel float64         `json:"engagementLevel"`                            // 0-1

	Feedback string `gorm:"type:text" json:"feedback"`

	Content *LearningContent `gorm:"foreignKey:ContentID" json:"content,omitempty"`
}

func (LearningActivity) TableName() string {
	return "learning_activities"
}

// Samples decodes the emotional state log. A nil or empty column decodes to
// an empty slice.
func (a *LearningActivity) Samples() ([]EngagementSample, error) {
	if len(a.EmotionalStates) == 0 {
		return []EngagementSample{}, nil
	}
	var samples []EngagementSample
	if err := json.Unmarshal(a.EmotionalStates, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}

// AppendSample adds one sample to the log and updates the rolling
// engagement level.
func (a *LearningActivity) AppendSample(sample EngagementSample) error {
	samples, err := a.Samples()
	if err != nil {
		return err
	}
	samples = append(samples, sample)
	raw, err := json.Marshal(samples)
	if err != nil {
		return err
	}
	a.EmotionalStates = raw
	a.EngagementLevel = sample.EngagementLevel
	return nil
}

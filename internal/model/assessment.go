package model

import "time"

// LearningStyleAssessment snapshots a completed style quiz.
type LearningStyleAssessment struct {
	BaseModel
	UserID           uint          `gorm:"index;not null" json:"userId"`
	VisualScore      float64       `json:"visualScore"`
	AuditoryScore    float64       `json:"auditoryScore"`
	KinestheticScore float64       `json:"kinestheticScore"`
	DominantStyle    LearningStyle `gorm:"size:20" json:"dominantStyle"`
	AssessmentDate   time.Time     `json:"assessmentDate"`
}

func (LearningStyleAssessment) TableName() string {
	return "learning_style_assessments"
}

package model

// swagger:model LearningContent
type LearningContent struct {
	BaseModel
	Title           string   `gorm:"size:120;not null" json:"title"`
	Description     string   `gorm:"type:text" json:"description"`
	ContentType     string   `gorm:"size:50" json:"contentType"` // video, text, quiz
	DifficultyLevel int      `json:"difficultyLevel"`            // 1-5
	Subject         string   `gorm:"size:50;index" json:"subject"`
	Language        Language `gorm:"size:20" json:"language"`
	Content         string   `gorm:"type:text" json:"content"`

	// For adaptive learning
	Prerequisites    string `gorm:"size:256" json:"prerequisites"`
	LearningOutcomes string `gorm:"type:text" json:"learningOutcomes"`

	Activities []LearningActivity `gorm:"foreignKey:ContentID" json:"-"`
}

func (LearningContent) TableName() string {
	return "learning_contents"
}

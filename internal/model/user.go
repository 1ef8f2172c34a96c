package model

import "time"

// swagger:model User
type User struct {
	BaseModel
	Username          string        `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email             string        `gorm:"size:120;uniqueIndex;not null" json:"email"`
	Password          string        `gorm:"size:256;not null" json:"-"`
	FirstName         string        `gorm:"size:64" json:"firstName"`
	LastName          string        `gorm:"size:64" json:"lastName"`
	PreferredLanguage Language      `gorm:"size:20;default:'english'" json:"preferredLanguage"`
	GradeLevel        int           `json:"gradeLevel"`
	SchoolName        string        `gorm:"size:120" json:"schoolName"`
	LearningStyle     LearningStyle `gorm:"size:20;default:'unknown'" json:"learningStyle"`
	LastLogin         time.Time     `json:"lastLogin"`

	StudentProfile *StudentProfile    `gorm:"foreignKey:UserID" json:"studentProfile,omitempty"`
	MentorProfile  *MentorProfile     `gorm:"foreignKey:UserID" json:"mentorProfile,omitempty"`
	Activities     []LearningActivity `gorm:"foreignKey:UserID" json:"-"`
	Achievements   []Achievement      `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

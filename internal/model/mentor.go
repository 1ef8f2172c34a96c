package model

type MentorProfile struct {
	BaseModel
	UserID       uint   `gorm:"uniqueIndex;not null" json:"userId"`
	Expertise    string `gorm:"size:256" json:"expertise"`
	Availability string `gorm:"size:256" json:"availability"`
	Languages    string `gorm:"size:256" json:"languages"`
	Bio          string `gorm:"type:text" json:"bio"`

	Students []MentorStudentRelationship `gorm:"foreignKey:MentorID" json:"-"`
}

func (MentorProfile) TableName() string {
	return "mentor_profiles"
}

type RelationshipStatus string

const (
	RelationshipPending   RelationshipStatus = "pending"
	RelationshipActive    RelationshipStatus = "active"
	RelationshipCompleted RelationshipStatus = "completed"
)

// MentorStudentRelationship joins a mentor and a student. Rows are never
// hard-deleted; at most one row per (mentor, student) pair may be pending
// or active at a time.
type MentorStudentRelationship struct {
	BaseModel
	MentorID  uint               `gorm:"index:idx_mentor_student;not null" json:"mentorId"`
	StudentID uint               `gorm:"index:idx_mentor_student;not null" json:"studentId"`
	Status    RelationshipStatus `gorm:"size:20;default:'pending'" json:"status"`

	Mentor  *MentorProfile  `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	Student *StudentProfile `gorm:"foreignKey:StudentID" json:"-"`
}

func (MentorStudentRelationship) TableName() string {
	return "mentor_student_relationships"
}

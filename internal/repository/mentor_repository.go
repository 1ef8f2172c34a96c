package repository

import (
	"vidyai_backend/internal/model"

	"gorm.io/gorm"
)

type MentorRepository struct {
	DB *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{DB: db}
}

func (r *MentorRepository) FindAll() ([]model.MentorProfile, error) {
	var mentors []model.MentorProfile
	err := r.DB.Find(&mentors).Error
	return mentors, err
}

func (r *MentorRepository) FindByID(id uint) (*model.MentorProfile, error) {
	var mentor model.MentorProfile
	err := r.DB.First(&mentor, id).Error
	return &mentor, err
}

// FindRelationship returns the relationship for a (mentor, student) pair
// regardless of status.
func (r *MentorRepository) FindRelationship(mentorID, studentID uint) (*model.MentorStudentRelationship, error) {
	var rel model.MentorStudentRelationship
	err := r.DB.
		Where("mentor_id = ? AND student_id = ?", mentorID, studentID).
		First(&rel).Error
	return &rel, err
}

func (r *MentorRepository) CreateRelationship(rel *model.MentorStudentRelationship) error {
	return r.DB.Create(rel).Error
}

func (r *MentorRepository) RelationshipsByStudent(studentID uint) ([]model.MentorStudentRelationship, error) {
	var rels []model.MentorStudentRelationship
	err := r.DB.
		Preload("Mentor").
		Where("student_id = ?", studentID).
		Find(&rels).Error
	return rels, err
}

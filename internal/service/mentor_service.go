package service

import (
	"errors"

	"vidyai_backend/internal/model"
	"vidyai_backend/internal/repository"
	"vidyai_backend/internal/util"

	"gorm.io/gorm"
)

type MentorService struct {
	MentorRepo *repository.MentorRepository
}

func NewMentorService(mentorRepo *repository.MentorRepository) *MentorService {
	return &MentorService{MentorRepo: mentorRepo}
}

type MentorOverview struct {
	Mentors       []model.MentorProfile             `json:"mentors"`
	Relationships []model.MentorStudentRelationship `json:"relationships"`
}

func (s *MentorService) Overview(studentID uint) (*MentorOverview, error) {
	mentors, err := s.MentorRepo.FindAll()
	if err != nil {
		return nil, err
	}

	rels, err := s.MentorRepo.RelationshipsByStudent(studentID)
	if err != nil {
		return nil, err
	}

	return &MentorOverview{Mentors: mentors, Relationships: rels}, nil
}

// RequestMentor is idempotent per (mentor, student): an existing
// relationship of any status blocks a second row and reports
// util.ErrMentorRequested so the caller can surface an informational
// message rather than an error.
func (s *MentorService) RequestMentor(mentorID, studentID uint) (*model.MentorStudentRelationship, error) {
	if _, err := s.MentorRepo.FindByID(mentorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMentorNotFound
		}
		return nil, err
	}

	existing, err := s.MentorRepo.FindRelationship(mentorID, studentID)
	if err == nil {
		return existing, util.ErrMentorRequested
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rel := &model.MentorStudentRelationship{
		MentorID:  mentorID,
		StudentID: studentID,
		Status:    model.RelationshipPending,
	}
	if err := s.MentorRepo.CreateRelationship(rel); err != nil {
		return nil, err
	}
	return rel, nil
}

package classrooms

import (
	"context"
	"fmt"
	"strings"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/rs/zerolog/log"
)

type service struct {
	repo Repository
}

// NewService creates a classroom service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, teacherID uint, name, subject, description string) (*models.Classroom, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	classroom := &models.Classroom{
		Name:        name,
		Subject:     strings.TrimSpace(subject),
		Description: description,
		TeacherID:   teacherID,
	}

	if err := s.repo.CreateClassroom(ctx, classroom); err != nil {
		return nil, fmt.Errorf("creating classroom: %w", err)
	}

	log.Info().
		Uint("classroom_id", classroom.ID).
		Uint("teacher_id", teacherID).
		Msg("Classroom created")

	return classroom, nil
}

func (s *service) Update(ctx context.Context, classroomID, teacherID uint, name, subject, description string) (*models.Classroom, error) {
	classroom, err := s.repo.GetByID(ctx, classroomID)
	if err != nil {
		return nil, err
	}
	if !classroom.OwnedBy(teacherID) {
		return nil, ErrNotOwner
	}

	if name = strings.TrimSpace(name); name != "" {
		classroom.Name = name
	}
	if subject = strings.TrimSpace(subject); subject != "" {
		classroom.Subject = subject
	}
	if description != "" {
		classroom.Description = description
	}

	if err := s.repo.UpdateClassroom(ctx, classroom); err != nil {
		return nil, fmt.Errorf("updating classroom: %w", err)
	}

	return classroom, nil
}

func (s *service) Delete(ctx context.Context, classroomID, teacherID uint) error {
	classroom, err := s.repo.GetByID(ctx, classroomID)
	if err != nil {
		return err
	}
	if !classroom.OwnedBy(teacherID) {
		return ErrNotOwner
	}

	if err := s.repo.DeleteClassroom(ctx, classroomID); err != nil {
		return err
	}

	log.Info().
		Uint("classroom_id", classroomID).
		Uint("teacher_id", teacherID).
		Msg("Classroom deleted")

	return nil
}

func (s *service) Get(ctx context.Context, classroomID uint) (*models.Classroom, error) {
	return s.repo.GetByID(ctx, classroomID)
}

func (s *service) ListByTeacher(ctx context.Context, teacherID uint) ([]*models.Classroom, error) {
	return s.repo.ListByTeacher(ctx, teacherID)
}

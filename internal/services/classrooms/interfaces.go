package classrooms

import (
	"context"
	"errors"

	"github.com/lectern/classroom-api/internal/models"
)

// Service errors
var (
	ErrClassroomNotFound = errors.New("classroom not found")
	ErrNameRequired      = errors.New("classroom name is required")
	ErrNotOwner          = errors.New("user does not own this classroom")
)

// Service defines the business logic interface for classrooms
type Service interface {
	Create(ctx context.Context, teacherID uint, name, subject, description string) (*models.Classroom, error)
	Update(ctx context.Context, classroomID, teacherID uint, name, subject, description string) (*models.Classroom, error)
	Delete(ctx context.Context, classroomID, teacherID uint) error
	Get(ctx context.Context, classroomID uint) (*models.Classroom, error)
	ListByTeacher(ctx context.Context, teacherID uint) ([]*models.Classroom, error)
}

// Repository defines the interface for classroom persistence
type Repository interface {
	CreateClassroom(ctx context.Context, classroom *models.Classroom) error
	GetByID(ctx context.Context, id uint) (*models.Classroom, error)
	UpdateClassroom(ctx context.Context, classroom *models.Classroom) error
	DeleteClassroom(ctx context.Context, id uint) error
	ListByTeacher(ctx context.Context, teacherID uint) ([]*models.Classroom, error)
}

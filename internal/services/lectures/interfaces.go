package lectures

import (
	"context"
	"errors"
	"time"

	"github.com/lectern/classroom-api/internal/models"
)

// Service errors
var (
	ErrLectureNotFound = errors.New("lecture not found")
	ErrTitleRequired   = errors.New("lecture title is required")
	ErrNotAllowed      = errors.New("user may not modify this lecture")
)

// AudioUpload describes an audio file staged on local disk, ready to be
// moved into object storage
type AudioUpload struct {
	LocalPath    string
	OriginalName string
	Size         int64
}

// CreateInput holds the fields for creating a lecture
type CreateInput struct {
	ClassroomID uint
	TeacherID   uint
	Title       string
	Description string
	Date        time.Time
	Audio       *AudioUpload
}

// UpdateInput holds the fields for updating a lecture. Nil string fields
// are left unchanged.
type UpdateInput struct {
	LectureID   uint
	TeacherID   uint
	Title       *string
	Description *string
	Date        *time.Time
	Audio       *AudioUpload
}

// Service defines the business logic interface for lectures
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Lecture, error)
	Update(ctx context.Context, input UpdateInput) (*models.Lecture, error)
	Delete(ctx context.Context, lectureID, teacherID uint) error
	Get(ctx context.Context, lectureID uint) (*models.Lecture, error)
	ListByClassroom(ctx context.Context, classroomID uint) ([]*models.Lecture, error)
}

// Repository defines the interface for lecture persistence
type Repository interface {
	CreateLecture(ctx context.Context, lecture *models.Lecture) error
	GetByID(ctx context.Context, id uint) (*models.Lecture, error)
	UpdateLecture(ctx context.Context, lecture *models.Lecture) error
	DeleteLecture(ctx context.Context, id uint) error
	ListByClassroom(ctx context.Context, classroomID uint) ([]*models.Lecture, error)
}

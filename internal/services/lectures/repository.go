package lectures

import (
	"context"
	"errors"
	"fmt"

	"github.com/lectern/classroom-api/internal/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new lecture repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateLecture(ctx context.Context, lecture *models.Lecture) error {
	return r.db.WithContext(ctx).Create(lecture).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Lecture, error) {
	var lecture models.Lecture
	err := r.db.WithContext(ctx).Preload("AudioAsset").First(&lecture, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLectureNotFound
		}
		return nil, fmt.Errorf("getting lecture: %w", err)
	}
	return &lecture, nil
}

func (r *repository) UpdateLecture(ctx context.Context, lecture *models.Lecture) error {
	return r.db.WithContext(ctx).Save(lecture).Error
}

func (r *repository) DeleteLecture(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Lecture{}, id)
	if res.Error != nil {
		return fmt.Errorf("deleting lecture: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrLectureNotFound
	}
	return nil
}

func (r *repository) ListByClassroom(ctx context.Context, classroomID uint) ([]*models.Lecture, error) {
	var lectures []*models.Lecture
	err := r.db.WithContext(ctx).
		Preload("AudioAsset").
		Where("classroom_id = ?", classroomID).
		Order("date DESC, created_at DESC").
		Find(&lectures).Error
	if err != nil {
		return nil, fmt.Errorf("listing lectures: %w", err)
	}
	return lectures, nil
}

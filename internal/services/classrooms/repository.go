package classrooms

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

// NewRepository creates a new classroom repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) CreateClassroom(ctx context.Context, classroom *models.Classroom) error {
	return r.db.WithContext(ctx).Create(classroom).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Classroom, error) {
	var classroom models.Classroom
	err := r.db.WithContext(ctx).First(&classroom, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassroomNotFound
		}
		return nil, fmt.Errorf("getting classroom: %w", err)
	}
	return &classroom, nil
}

func (r *repository) UpdateClassroom(ctx context.Context, classroom *models.Classroom) error {
	return r.db.WithContext(ctx).Save(classroom).Error
}

// DeleteClassroom removes a classroom and its lectures in one transaction.
// Audio assets are soft-deleted separately so their transcripts follow
// the deleted lifecycle.
func (r *repository) DeleteClassroom(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("classroom_id = ?", id).Delete(&models.Lecture{}).Error; err != nil {
			return fmt.Errorf("deleting classroom lectures: %w", err)
		}

		res := tx.Delete(&models.Classroom{}, id)
		if res.Error != nil {
			return fmt.Errorf("deleting classroom: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrClassroomNotFound
		}
		return nil
	})
}

func (r *repository) ListByTeacher(ctx context.Context, teacherID uint) ([]*models.Classroom, error) {
	var classrooms []*models.Classroom
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("created_at DESC").
		Find(&classrooms).Error
	if err != nil {
		return nil, fmt.Errorf("listing classrooms: %w", err)
	}
	return classrooms, nil
}

package transcription

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lectern/classroom-api/internal/models"
	"gorm.io/gorm"
)

// repository implements Repository on top of GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new audio asset repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateAsset inserts a new audio asset
func (r *repository) CreateAsset(ctx context.Context, asset *models.AudioAsset) error {
	if asset.Status == "" {
		asset.Status = models.TranscriptionStatusPending
	}
	return r.db.WithContext(ctx).Create(asset).Error
}

// GetByID retrieves an asset by primary key
func (r *repository) GetByID(ctx context.Context, id uint) (*models.AudioAsset, error) {
	var asset models.AudioAsset
	err := r.db.WithContext(ctx).First(&asset, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("getting audio asset: %w", err)
	}
	return &asset, nil
}

// GetByUUID retrieves an asset by its public UUID
func (r *repository) GetByUUID(ctx context.Context, assetUUID string) (*models.AudioAsset, error) {
	var asset models.AudioAsset
	err := r.db.WithContext(ctx).Where("uuid = ?", assetUUID).First(&asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("getting audio asset by uuid: %w", err)
	}
	return &asset, nil
}

// BeginProcessing atomically moves a pending or failed asset to processing.
// The status guard in the WHERE clause is what makes concurrent requests
// safe: only one of them observes a non-zero row count.
func (r *repository) BeginProcessing(ctx context.Context, id uint) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.AudioAsset{}).
		Where("id = ? AND status IN ?", id, []models.TranscriptionStatus{
			models.TranscriptionStatusPending,
			models.TranscriptionStatusFailed,
		}).
		Updates(map[string]interface{}{
			"status":     models.TranscriptionStatusProcessing,
			"started_at": &now,
			"error":      "",
			"failed_at":  nil,
		})

	if result.Error != nil {
		return 0, fmt.Errorf("beginning transcription: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// MarkCompleted records a successful transcription on a processing asset
func (r *repository) MarkCompleted(ctx context.Context, id uint, outcome Outcome) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.AudioAsset{}).
		Where("id = ? AND status = ?", id, models.TranscriptionStatusProcessing).
		Updates(map[string]interface{}{
			"status":           models.TranscriptionStatusCompleted,
			"text":             outcome.Text,
			"language":         outcome.Language,
			"duration_seconds": outcome.DurationSeconds,
			"completed_at":     &now,
			"failed_at":        nil,
			"error":            "",
		})

	if result.Error != nil {
		return 0, fmt.Errorf("completing transcription: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// MarkFailed records a failed transcription on a processing asset
func (r *repository) MarkFailed(ctx context.Context, id uint, cause string) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.AudioAsset{}).
		Where("id = ? AND status = ?", id, models.TranscriptionStatusProcessing).
		Updates(map[string]interface{}{
			"status":    models.TranscriptionStatusFailed,
			"error":     cause,
			"failed_at": &now,
		})

	if result.Error != nil {
		return 0, fmt.Errorf("failing transcription: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// MarkDeleted soft-deletes an asset and discards its transcript
func (r *repository) MarkDeleted(ctx context.Context, id uint) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.AudioAsset{}).
		Where("id = ? AND status != ?", id, models.TranscriptionStatusDeleted).
		Updates(map[string]interface{}{
			"status":     models.TranscriptionStatusDeleted,
			"text":       "",
			"deleted_at": &now,
		})

	if result.Error != nil {
		return 0, fmt.Errorf("deleting transcription: %w", result.Error)
	}

	return result.RowsAffected, nil
}

// ListCompletedByOwner returns completed transcriptions for a user, newest first
func (r *repository) ListCompletedByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]*models.AudioAsset, error) {
	var assets []*models.AudioAsset
	query := r.db.WithContext(ctx).
		Where("owner_id = ? AND status = ?", ownerID, models.TranscriptionStatusCompleted).
		Order("completed_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	err := query.Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("listing completed transcriptions: %w", err)
	}
	return assets, nil
}

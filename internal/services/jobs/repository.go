package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lectern/classroom-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository errors
var (
	ErrJobNotFound     = errors.New("job not found")
	ErrNoJobsAvailable = errors.New("no jobs available")
)

// Repository defines the interface for job persistence
type Repository interface {
	CreateJob(ctx context.Context, job *models.Job) error

	GetJob(ctx context.Context, id uint) (*models.Job, error)
	GetJobByTypeAndPayload(ctx context.Context, jobType models.JobType, key, value string) (*models.Job, error)
	GetJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error)

	ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error)
	CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error
	FailJob(ctx context.Context, jobID uint, errorMsg string) error
	ReleaseJob(ctx context.Context, jobID uint) error

	DeleteOldJobs(ctx context.Context, olderThan time.Time) (int64, error)
}

// repository implements Repository interface
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new job repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// CreateJob creates a new job
func (r *repository) CreateJob(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetJob retrieves a job by ID
func (r *repository) GetJob(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return &job, nil
}

// GetJobByTypeAndPayload finds the most recent job by type and a specific
// payload value
func (r *repository) GetJobByTypeAndPayload(ctx context.Context, jobType models.JobType, key, value string) (*models.Job, error) {
	var job models.Job

	// JSON extract works on SQLite's json column type
	err := r.db.WithContext(ctx).
		Where("type = ?", jobType).
		Where("json_extract(payload, ?) = ?", "$."+key, value).
		Order("created_at DESC").
		First(&job).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("getting job by type and payload: %w", err)
	}

	return &job, nil
}

// GetJobsByStatus retrieves jobs by status
func (r *repository) GetJobsByStatus(ctx context.Context, status models.JobStatus, limit int) ([]*models.Job, error) {
	var jobs []*models.Job
	query := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&jobs).Error
	return jobs, err
}

// ClaimNextJob atomically claims the next available job for a worker.
// Pending jobs and failed jobs with retries left are eligible.
func (r *repository) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	var job models.Job

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("(status = ? OR (status = ? AND retry_count < max_retries))",
				models.JobStatusPending, models.JobStatusFailed)

		if len(jobTypes) > 0 {
			query = query.Where("type IN ?", jobTypes)
		}

		err := query.Order("priority DESC, created_at ASC").
			First(&job).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoJobsAvailable
			}
			return fmt.Errorf("finding job to claim: %w", err)
		}

		now := time.Now()
		updates := map[string]interface{}{
			"status":     models.JobStatusProcessing,
			"worker_id":  workerID,
			"started_at": &now,
		}

		wasRetry := job.Status == models.JobStatusFailed
		if wasRetry {
			updates["retry_count"] = job.RetryCount + 1
		}

		if err := tx.Model(&job).Updates(updates).Error; err != nil {
			return fmt.Errorf("updating claimed job: %w", err)
		}

		job.Status = models.JobStatusProcessing
		job.WorkerID = workerID
		job.StartedAt = &now
		if wasRetry {
			job.RetryCount++
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &job, nil
}

// CompleteJob marks a job as completed with a result
func (r *repository) CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":       models.JobStatusCompleted,
		"completed_at": &now,
		"result":       result,
	}

	res := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", jobID).
		Updates(updates)

	if res.Error != nil {
		return fmt.Errorf("completing job: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// FailJob marks a job as failed with an error message. Exhausted jobs keep
// the failed status but stop being eligible for ClaimNextJob.
func (r *repository) FailJob(ctx context.Context, jobID uint, errorMsg string) error {
	now := time.Now()
	updates := map[string]interface{}{
		"status":         models.JobStatusFailed,
		"error":          errorMsg,
		"last_failed_at": &now,
		"worker_id":      "",
	}

	res := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", jobID).
		Updates(updates)

	if res.Error != nil {
		return fmt.Errorf("failing job: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// ReleaseJob releases a job back to pending status (e.g. on shutdown)
func (r *repository) ReleaseJob(ctx context.Context, jobID uint) error {
	updates := map[string]interface{}{
		"status":     models.JobStatusPending,
		"worker_id":  "",
		"started_at": nil,
	}

	res := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", jobID).
		Updates(updates)

	if res.Error != nil {
		return fmt.Errorf("releasing job: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// DeleteOldJobs removes terminal jobs older than the cutoff
func (r *repository) DeleteOldJobs(ctx context.Context, olderThan time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Unscoped().
		Where("status IN ?", []models.JobStatus{
			models.JobStatusCompleted,
			models.JobStatusCancelled,
		}).
		Where("created_at < ?", olderThan).
		Delete(&models.Job{})

	if res.Error != nil {
		return 0, fmt.Errorf("deleting old jobs: %w", res.Error)
	}

	return res.RowsAffected, nil
}

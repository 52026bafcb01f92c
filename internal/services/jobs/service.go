package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	DefaultMaxRetries = 3
	DefaultPriority   = 0
)

type service struct {
	repo Repository
}

// NewService creates a job queue service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) EnqueueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, opts ...JobOption) (*models.Job, error) {
	cfg := &jobConfig{
		Priority:   DefaultPriority,
		MaxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	job := &models.Job{
		Type:       jobType,
		Status:     models.JobStatusPending,
		Payload:    payload,
		Priority:   cfg.Priority,
		MaxRetries: cfg.MaxRetries,
		CreatedBy:  cfg.CreatedBy,
	}

	if err := s.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	log.Debug().
		Str("type", string(jobType)).
		Uint("job_id", job.ID).
		Int("priority", job.Priority).
		Msg("Enqueued job")

	return job, nil
}

// EnqueueUniqueJob enqueues a job unless a non-terminal job of the same type
// already exists for the unique key, in which case the existing job is
// returned instead.
func (s *service) EnqueueUniqueJob(ctx context.Context, jobType models.JobType, payload models.JobPayload, uniqueKey string, opts ...JobOption) (*models.Job, error) {
	uniqueValue, ok := payload[uniqueKey]
	if !ok {
		return nil, fmt.Errorf("unique key %s not found in payload", uniqueKey)
	}

	existingJob, err := s.repo.GetJobByTypeAndPayload(ctx, jobType, uniqueKey, fmt.Sprintf("%v", uniqueValue))
	if err == nil && existingJob != nil && !existingJob.IsTerminal() {
		log.Debug().
			Str("type", string(jobType)).
			Str("unique_key", uniqueKey).
			Uint("job_id", existingJob.ID).
			Str("status", string(existingJob.Status)).
			Msg("Job already queued")
		return existingJob, nil
	}

	return s.EnqueueJob(ctx, jobType, payload, opts...)
}

func (s *service) GetJob(ctx context.Context, jobID uint) (*models.Job, error) {
	job, err := s.repo.GetJob(ctx, jobID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting job: %w", err)
	}
	return job, nil
}

func (s *service) GetJobStatus(ctx context.Context, jobID uint) (models.JobStatus, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return "", err
	}
	return job.Status, nil
}

func (s *service) GetJobForAsset(ctx context.Context, assetID uint) (*models.Job, error) {
	job, err := s.repo.GetJobByTypeAndPayload(ctx, models.JobTypeTranscription, "asset_id", fmt.Sprintf("%d", assetID))
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting job for asset: %w", err)
	}
	return job, nil
}

func (s *service) ClaimNextJob(ctx context.Context, workerID string, jobTypes []models.JobType) (*models.Job, error) {
	job, err := s.repo.ClaimNextJob(ctx, workerID, jobTypes)
	if err != nil {
		if errors.Is(err, ErrNoJobsAvailable) {
			return nil, err
		}
		return nil, fmt.Errorf("claiming job: %w", err)
	}

	log.Debug().
		Str("worker_id", workerID).
		Str("type", string(job.Type)).
		Uint("job_id", job.ID).
		Msg("Claimed job")

	return job, nil
}

func (s *service) CompleteJob(ctx context.Context, jobID uint, result models.JobResult) error {
	if err := s.repo.CompleteJob(ctx, jobID, result); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("completing job: %w", err)
	}

	log.Debug().Uint("job_id", jobID).Msg("Job completed")

	return nil
}

func (s *service) FailJob(ctx context.Context, jobID uint, jobErr error) error {
	errorMsg := jobErr.Error()

	if err := s.repo.FailJob(ctx, jobID, errorMsg); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("failing job: %w", err)
	}

	job, _ := s.repo.GetJob(ctx, jobID)
	if job != nil && job.IsRetryable() {
		log.Error().
			Uint("job_id", jobID).
			Int("retry_count", job.RetryCount).
			Int("max_retries", job.MaxRetries).
			Str("error", errorMsg).
			Msg("Job failed, will retry")
	} else {
		log.Error().
			Uint("job_id", jobID).
			Str("error", errorMsg).
			Msg("Job failed permanently")
	}

	return nil
}

func (s *service) ReleaseJob(ctx context.Context, jobID uint) error {
	if err := s.repo.ReleaseJob(ctx, jobID); err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return err
		}
		return fmt.Errorf("releasing job: %w", err)
	}

	log.Debug().Uint("job_id", jobID).Msg("Job released back to pending")

	return nil
}

func (s *service) CleanupOldJobs(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = 30
	}

	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	deleted, err := s.repo.DeleteOldJobs(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up old jobs: %w", err)
	}

	if deleted > 0 {
		log.Info().
			Int64("deleted", deleted).
			Int("retention_days", retentionDays).
			Msg("Cleaned up old jobs")
	}

	return deleted, nil
}

package transcription

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lectern/classroom-api/internal/models"
	"github.com/rs/zerolog/log"
)

type service struct {
	repo Repository
}

// NewService creates a transcription lifecycle service
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateAsset(ctx context.Context, asset *models.AudioAsset) error {
	if asset.UUID == "" {
		asset.UUID = uuid.NewString()
	}
	asset.Status = models.TranscriptionStatusPending

	if err := s.repo.CreateAsset(ctx, asset); err != nil {
		return fmt.Errorf("creating audio asset: %w", err)
	}

	log.Debug().
		Uint("asset_id", asset.ID).
		Str("file_name", asset.FileName).
		Msg("Audio asset registered")

	return nil
}

// Begin attempts the pending/failed -> processing transition. On rejection
// it re-reads the asset to report why: completed assets return their
// snapshot so callers can short-circuit with the cached transcript.
func (s *service) Begin(ctx context.Context, assetID uint) (*models.AudioAsset, error) {
	affected, err := s.repo.BeginProcessing(ctx, assetID)
	if err != nil {
		return nil, err
	}

	asset, getErr := s.repo.GetByID(ctx, assetID)
	if getErr != nil {
		return nil, getErr
	}

	if affected > 0 {
		log.Info().
			Uint("asset_id", assetID).
			Msg("Transcription started")
		return asset, nil
	}

	switch asset.Status {
	case models.TranscriptionStatusCompleted:
		return asset, ErrAlreadyCompleted
	case models.TranscriptionStatusProcessing:
		return asset, ErrTranscriptionInFlight
	case models.TranscriptionStatusDeleted:
		return asset, ErrAssetDeleted
	default:
		// The asset changed state between the update and the read.
		// Treat it as a concurrent request winning the race.
		return asset, ErrTranscriptionInFlight
	}
}

func (s *service) Complete(ctx context.Context, assetID uint, outcome Outcome) error {
	if strings.TrimSpace(outcome.Text) == "" {
		return fmt.Errorf("refusing to complete asset %d with an empty transcript", assetID)
	}

	affected, err := s.repo.MarkCompleted(ctx, assetID, outcome)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("asset %d is not processing, cannot complete", assetID)
	}

	log.Info().
		Uint("asset_id", assetID).
		Str("language", outcome.Language).
		Float64("duration_seconds", outcome.DurationSeconds).
		Msg("Transcription completed")

	return nil
}

func (s *service) Fail(ctx context.Context, assetID uint, cause string) error {
	if cause == "" {
		cause = "transcription failed"
	}

	affected, err := s.repo.MarkFailed(ctx, assetID, cause)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("asset %d is not processing, cannot fail", assetID)
	}

	log.Warn().
		Uint("asset_id", assetID).
		Str("cause", cause).
		Msg("Transcription failed")

	return nil
}

func (s *service) Get(ctx context.Context, assetID uint) (*models.AudioAsset, error) {
	return s.repo.GetByID(ctx, assetID)
}

func (s *service) GetByUUID(ctx context.Context, assetUUID string) (*models.AudioAsset, error) {
	return s.repo.GetByUUID(ctx, assetUUID)
}

func (s *service) SoftDelete(ctx context.Context, assetID uint) error {
	affected, err := s.repo.MarkDeleted(ctx, assetID)
	if err != nil {
		return err
	}
	if affected == 0 {
		// Either missing or already deleted; distinguish for the caller.
		if _, getErr := s.repo.GetByID(ctx, assetID); getErr != nil {
			return getErr
		}
		return ErrAssetDeleted
	}

	log.Info().
		Uint("asset_id", assetID).
		Msg("Transcription deleted")

	return nil
}

func (s *service) ListCompletedByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]*models.AudioAsset, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListCompletedByOwner(ctx, ownerID, limit, offset)
}

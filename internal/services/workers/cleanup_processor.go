package workers

import (
	"context"
	"fmt"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/lectern/classroom-api/internal/services/storage"
	"github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/rs/zerolog/log"
)

// CleanupProcessor removes stored audio files for soft-deleted assets
type CleanupProcessor struct {
	transcriptions transcription.Service
	store          storage.ObjectStore
}

// NewCleanupProcessor creates an asset cleanup job processor
func NewCleanupProcessor(transcriptions transcription.Service, store storage.ObjectStore) *CleanupProcessor {
	return &CleanupProcessor{
		transcriptions: transcriptions,
		store:          store,
	}
}

// CanProcess returns true for asset cleanup jobs
func (p *CleanupProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeAssetCleanup
}

// ProcessJob deletes the object storage file behind a deleted asset
func (p *CleanupProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	assetID, ok := job.GetPayloadUint("asset_id")
	if !ok {
		return fmt.Errorf("job %d has no asset_id in payload", job.ID)
	}

	asset, err := p.transcriptions.Get(ctx, assetID)
	if err != nil {
		return fmt.Errorf("loading asset %d: %w", assetID, err)
	}

	if asset.Status != models.TranscriptionStatusDeleted {
		log.Info().
			Uint("asset_id", assetID).
			Str("status", string(asset.Status)).
			Msg("Skipping cleanup, asset is not deleted")
		return nil
	}

	if asset.ObjectName == "" {
		return nil
	}

	if err := p.store.Remove(ctx, asset.ObjectName); err != nil {
		return fmt.Errorf("removing stored audio for asset %d: %w", assetID, err)
	}

	log.Info().
		Uint("asset_id", assetID).
		Str("object_name", asset.ObjectName).
		Msg("Removed stored audio for deleted asset")

	return nil
}

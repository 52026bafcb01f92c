package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/lectern/classroom-api/internal/models"
	"github.com/lectern/classroom-api/internal/services/transcription"
	"github.com/lectern/classroom-api/pkg/transcriber"
	"github.com/rs/zerolog/log"
)

// Transcriber abstracts the external transcription client
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (*transcriber.Result, error)
}

// TranscriptionProcessor runs transcription jobs. Transcription outcomes,
// success or failure, land on the audio asset; the job itself fails only
// when the system prevents recording an outcome at all.
type TranscriptionProcessor struct {
	transcriptions transcription.Service
	client         Transcriber
}

// NewTranscriptionProcessor creates a transcription job processor
func NewTranscriptionProcessor(transcriptions transcription.Service, client Transcriber) *TranscriptionProcessor {
	return &TranscriptionProcessor{
		transcriptions: transcriptions,
		client:         client,
	}
}

// CanProcess returns true for transcription jobs
func (p *TranscriptionProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeTranscription
}

// ProcessJob transcribes the audio asset referenced by the job payload
func (p *TranscriptionProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	assetID, ok := job.GetPayloadUint("asset_id")
	if !ok {
		return fmt.Errorf("job %d has no asset_id in payload", job.ID)
	}

	asset, err := p.transcriptions.Get(ctx, assetID)
	if err != nil {
		return fmt.Errorf("loading asset %d: %w", assetID, err)
	}

	// The request handler moved the asset to processing before enqueueing.
	// Anything else means the asset advanced without us; skip quietly.
	if asset.Status != models.TranscriptionStatusProcessing {
		log.Info().
			Uint("asset_id", assetID).
			Str("status", string(asset.Status)).
			Msg("Skipping transcription, asset is not processing")
		return nil
	}

	result, err := p.client.Transcribe(ctx, asset.StorageURL)
	if err != nil {
		return p.recordFailure(ctx, assetID, err)
	}

	err = p.transcriptions.Complete(ctx, assetID, transcription.Outcome{
		Text:            result.Text,
		Language:        result.Language,
		DurationSeconds: result.DurationSeconds,
	})
	if err != nil {
		return fmt.Errorf("recording transcription result for asset %d: %w", assetID, err)
	}

	job.SetResult("asset_id", assetID)
	job.SetResult("language", result.Language)

	return nil
}

// recordFailure captures a transcription error on the asset. The job
// succeeds as long as the failure is durably recorded.
func (p *TranscriptionProcessor) recordFailure(ctx context.Context, assetID uint, cause error) error {
	msg := cause.Error()
	switch {
	case transcriber.IsTimeout(cause):
		msg = "transcription timed out"
	case errors.Is(cause, transcriber.ErrEmptyTranscript):
		msg = "transcription returned no text"
	}

	if err := p.transcriptions.Fail(ctx, assetID, msg); err != nil {
		return fmt.Errorf("recording transcription failure for asset %d: %w", assetID, err)
	}

	return nil
}

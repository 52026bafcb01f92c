package transcription

import (
	"context"
	"errors"

	"github.com/lectern/classroom-api/internal/models"
)

// State machine errors
var (
	ErrAssetNotFound         = errors.New("audio asset not found")
	ErrAlreadyCompleted      = errors.New("transcription already completed")
	ErrTranscriptionInFlight = errors.New("transcription already in progress")
	ErrAssetDeleted          = errors.New("transcription has been deleted")
)

// Outcome holds the result of a successful transcription run
type Outcome struct {
	Text            string
	Language        string
	DurationSeconds float64
}

// Service defines the business logic interface for the transcription lifecycle
type Service interface {
	// CreateAsset registers a new audio asset in the pending state
	CreateAsset(ctx context.Context, asset *models.AudioAsset) error

	// Begin attempts the transition to processing. Only pending and failed
	// assets may begin; a completed asset returns its snapshot with
	// ErrAlreadyCompleted, a processing asset returns ErrTranscriptionInFlight.
	Begin(ctx context.Context, assetID uint) (*models.AudioAsset, error)

	// Complete records a successful transcription for a processing asset
	Complete(ctx context.Context, assetID uint, outcome Outcome) error

	// Fail records a transcription failure for a processing asset
	Fail(ctx context.Context, assetID uint, cause string) error

	// Get retrieves an asset by ID
	Get(ctx context.Context, assetID uint) (*models.AudioAsset, error)

	// GetByUUID retrieves an asset by its public UUID
	GetByUUID(ctx context.Context, assetUUID string) (*models.AudioAsset, error)

	// SoftDelete marks an asset deleted and discards its transcript text
	SoftDelete(ctx context.Context, assetID uint) error

	// ListCompletedByOwner returns completed transcriptions for a user,
	// newest first
	ListCompletedByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]*models.AudioAsset, error)
}

// Repository defines the interface for audio asset persistence
type Repository interface {
	CreateAsset(ctx context.Context, asset *models.AudioAsset) error
	GetByID(ctx context.Context, id uint) (*models.AudioAsset, error)
	GetByUUID(ctx context.Context, assetUUID string) (*models.AudioAsset, error)

	// BeginProcessing performs the guarded pending/failed -> processing
	// update. Returns the number of rows affected; zero means the asset was
	// not in a startable state.
	BeginProcessing(ctx context.Context, id uint) (int64, error)

	MarkCompleted(ctx context.Context, id uint, outcome Outcome) (int64, error)
	MarkFailed(ctx context.Context, id uint, cause string) (int64, error)
	MarkDeleted(ctx context.Context, id uint) (int64, error)

	ListCompletedByOwner(ctx context.Context, ownerID uint, limit, offset int) ([]*models.AudioAsset, error)
}

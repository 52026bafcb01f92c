package models

import (
	"time"
)

// TranscriptionStatus represents the lifecycle state of an audio asset's transcription
type TranscriptionStatus string

const (
	TranscriptionStatusPending    TranscriptionStatus = "pending"
	TranscriptionStatusProcessing TranscriptionStatus = "processing"
	TranscriptionStatusCompleted  TranscriptionStatus = "completed"
	TranscriptionStatusFailed     TranscriptionStatus = "failed"
	TranscriptionStatusDeleted    TranscriptionStatus = "deleted"
)

// AudioAsset represents one uploaded audio file and its transcription lifecycle.
// StorageURL and OwnerID are set at creation and never change; all mutation
// happens on the transcription fields via guarded status transitions.
type AudioAsset struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	UUID       string `gorm:"uniqueIndex;size:36" json:"uuid"`
	FileName   string `json:"file_name"`
	ObjectName string `json:"-"`
	StorageURL string `json:"storage_url"`
	FileSize   int64  `json:"file_size"`
	OwnerID    uint   `gorm:"index:idx_audio_assets_owner" json:"owner_id"`

	Status          TranscriptionStatus `gorm:"default:'pending';index:idx_audio_assets_status" json:"status"`
	Text            string              `gorm:"type:text" json:"text,omitempty"`
	Language        string              `json:"language,omitempty"`
	DurationSeconds float64             `json:"duration_seconds,omitempty"`
	Error           string              `json:"error,omitempty"`

	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (AudioAsset) TableName() string {
	return "audio_assets"
}

// IsTerminal returns true if no further automatic transition is possible
func (a *AudioAsset) IsTerminal() bool {
	return a.Status == TranscriptionStatusCompleted ||
		a.Status == TranscriptionStatusFailed ||
		a.Status == TranscriptionStatusDeleted
}

// CanBegin returns true if a transcription attempt may be started.
// Completed assets are excluded so callers short-circuit with the cached
// result; processing assets are excluded to keep at most one attempt in
// flight.
func (a *AudioAsset) CanBegin() bool {
	return a.Status == TranscriptionStatusPending || a.Status == TranscriptionStatusFailed
}

// TranscriptSummary returns the first 150 characters of the transcript,
// or an empty string when there is none.
func (a *AudioAsset) TranscriptSummary() string {
	const maxLength = 150
	if a.Text == "" {
		return ""
	}
	if len(a.Text) <= maxLength {
		return a.Text
	}
	return a.Text[:maxLength] + "..."
}

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAudioAssetCanBegin(t *testing.T) {
	tests := []struct {
		name   string
		status TranscriptionStatus
		want   bool
	}{
		{name: "pending asset can begin", status: TranscriptionStatusPending, want: true},
		{name: "failed asset can be re-requested", status: TranscriptionStatusFailed, want: true},
		{name: "processing asset cannot begin again", status: TranscriptionStatusProcessing, want: false},
		{name: "completed asset short-circuits", status: TranscriptionStatusCompleted, want: false},
		{name: "deleted asset cannot begin", status: TranscriptionStatusDeleted, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := AudioAsset{Status: tt.status}
			assert.Equal(t, tt.want, asset.CanBegin())
		})
	}
}

func TestAudioAssetIsTerminal(t *testing.T) {
	terminal := []TranscriptionStatus{
		TranscriptionStatusCompleted,
		TranscriptionStatusFailed,
		TranscriptionStatusDeleted,
	}
	for _, status := range terminal {
		asset := AudioAsset{Status: status}
		assert.True(t, asset.IsTerminal(), "status %s should be terminal", status)
	}

	for _, status := range []TranscriptionStatus{TranscriptionStatusPending, TranscriptionStatusProcessing} {
		asset := AudioAsset{Status: status}
		assert.False(t, asset.IsTerminal(), "status %s should not be terminal", status)
	}
}

func TestAudioAssetTranscriptSummary(t *testing.T) {
	asset := AudioAsset{}
	assert.Empty(t, asset.TranscriptSummary())

	asset.Text = "short transcript"
	assert.Equal(t, "short transcript", asset.TranscriptSummary())

	long := make([]byte, 200)
	for i := range long {
		long[i] = 'a'
	}
	asset.Text = string(long)
	summary := asset.TranscriptSummary()
	assert.Len(t, summary, 153)
	assert.Equal(t, "...", summary[150:])
}

func TestUserIsTeacher(t *testing.T) {
	assert.True(t, (&User{Role: UserRoleTeacher}).IsTeacher())
	assert.True(t, (&User{Role: UserRoleAdmin}).IsTeacher())
	assert.False(t, (&User{Role: UserRoleStudent}).IsTeacher())
}

func TestJobIsRetryable(t *testing.T) {
	job := Job{Status: JobStatusFailed, RetryCount: 1, MaxRetries: 3}
	assert.True(t, job.IsRetryable())

	job.RetryCount = 3
	assert.False(t, job.IsRetryable())
	assert.True(t, job.IsTerminal())

	job.Status = JobStatusCompleted
	assert.True(t, job.IsTerminal())
}

func TestJobPayloadHelpers(t *testing.T) {
	job := Job{Payload: JobPayload{"asset_id": float64(42)}}

	id, ok := job.GetPayloadUint("asset_id")
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)

	_, ok = job.GetPayloadUint("missing")
	assert.False(t, ok)

	job.Payload["negative"] = float64(-1)
	_, ok = job.GetPayloadUint("negative")
	assert.False(t, ok)

	job.SetResult("status", "completed")
	assert.Equal(t, "completed", job.Result["status"])
}

func TestJobPayloadRoundTrip(t *testing.T) {
	payload := JobPayload{"asset_id": float64(7), "requested_by": "teacher-1"}

	value, err := payload.Value()
	assert.NoError(t, err)

	var decoded JobPayload
	err = decoded.Scan(value)
	assert.NoError(t, err)
	assert.Equal(t, payload, decoded)

	var empty JobPayload
	assert.NoError(t, empty.Scan(nil))
	assert.NotNil(t, empty)
}

func TestLectureHasAudio(t *testing.T) {
	lecture := Lecture{Title: "Intro", Date: time.Now()}
	assert.False(t, lecture.HasAudio())

	assetID := uint(3)
	lecture.AudioAssetID = &assetID
	assert.True(t, lecture.HasAudio())
}

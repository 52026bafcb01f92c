package transcriber

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Typed failures so callers can translate each into a distinct persisted
// error message.
var (
	ErrEmptyTranscript    = errors.New("transcription returned no text")
	ErrMalformedResponse  = errors.New("malformed transcription response")
	ErrServiceUnavailable = errors.New("transcription service unavailable")
)

// Result is the validated output of one transcription call
type Result struct {
	TranscriptionID string  `json:"transcription_id"`
	Text            string  `json:"transcription"`
	Language        string  `json:"language"`
	DurationSeconds float64 `json:"duration"`
}

// Config holds transcriber client configuration
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Language string
}

// Client calls the external speech-to-text service. The service fetches the
// audio from the given URL itself, so one call covers download plus
// transcription and the timeout budget is minutes-scale.
type Client struct {
	baseURL    string
	language   string
	httpClient *http.Client
}

// NewClient creates a transcriber client
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}

	return &Client{
		baseURL:  cfg.BaseURL,
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type transcribeRequest struct {
	AudioURL string `json:"audio_url"`
	Language string `json:"language,omitempty"`
}

type transcribeResponse struct {
	TranscriptionID string   `json:"transcription_id"`
	Transcription   *string  `json:"transcription"`
	Language        string   `json:"language"`
	Duration        *float64 `json:"duration"`
	Status          string   `json:"status"`
	Error           string   `json:"error"`
}

// Transcribe sends the audio URL to the transcription service and returns a
// strictly validated result. It never mutates caller state; any partial or
// malformed output is rejected rather than passed through.
func (c *Client) Transcribe(ctx context.Context, audioURL string) (*Result, error) {
	if audioURL == "" {
		return nil, fmt.Errorf("audio URL is required")
	}

	body, err := json.Marshal(transcribeRequest{AudioURL: audioURL, Language: c.language})
	if err != nil {
		return nil, fmt.Errorf("encoding transcription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe-url", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building transcription request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if IsTimeout(err) {
			return nil, fmt.Errorf("transcription request timed out: %w", err)
		}
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: status %d: %s", ErrServiceUnavailable, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var decoded transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if decoded.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrServiceUnavailable, decoded.Error)
	}

	if decoded.Status != "" && decoded.Status != "success" {
		return nil, fmt.Errorf("%w: status %q", ErrMalformedResponse, decoded.Status)
	}

	// Required fields: reject on missing text rather than coercing
	if decoded.Transcription == nil || *decoded.Transcription == "" {
		return nil, ErrEmptyTranscript
	}

	result := &Result{
		TranscriptionID: decoded.TranscriptionID,
		Text:            *decoded.Transcription,
		Language:        decoded.Language,
	}
	if decoded.Duration != nil {
		result.DurationSeconds = *decoded.Duration
	}

	return result, nil
}

// IsTimeout reports whether the error came from the call exceeding its
// deadline rather than from the service itself.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

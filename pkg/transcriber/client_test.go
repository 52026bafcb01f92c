package transcriber

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Transcribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe-url" {
			t.Errorf("Expected path /transcribe-url, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"transcription_id": "tr-123",
			"transcription": "hello world",
			"language": "en",
			"duration": 5,
			"status": "success"
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second, Language: "en"})

	result, err := client.Transcribe(context.Background(), "https://cdn.example.com/audio/intro.mp3")
	require.NoError(t, err)

	assert.Equal(t, "tr-123", result.TranscriptionID)
	assert.Equal(t, "hello world", result.Text)
	assert.Equal(t, "en", result.Language)
	assert.Equal(t, float64(5), result.DurationSeconds)
}

func TestClient_TranscribeEmptyText(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing text field", body: `{"language": "en", "duration": 5, "status": "success"}`},
		{name: "empty text", body: `{"transcription": "", "language": "en", "status": "success"}`},
		{name: "null text", body: `{"transcription": null, "language": "en", "status": "success"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second})

			_, err := client.Transcribe(context.Background(), "https://cdn.example.com/a.mp3")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrEmptyTranscript)
		})
	}
}

func TestClient_TranscribeMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`this is not json`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second})

	_, err := client.Transcribe(context.Background(), "https://cdn.example.com/a.mp3")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestClient_TranscribeServiceError(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not loaded", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second})

		_, err := client.Transcribe(context.Background(), "https://cdn.example.com/a.mp3")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("connection refused", func(t *testing.T) {
		// Grab a URL and immediately close the server behind it
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewClient(Config{BaseURL: url, Timeout: 2 * time.Second})

		_, err := client.Transcribe(context.Background(), "https://cdn.example.com/a.mp3")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	})

	t.Run("error field in body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error": "failed to download audio"}`))
		}))
		defer server.Close()

		client := NewClient(Config{BaseURL: server.URL, Timeout: 5 * time.Second})

		_, err := client.Transcribe(context.Background(), "https://cdn.example.com/a.mp3")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrServiceUnavailable)
		assert.Contains(t, err.Error(), "failed to download audio")
	})
}

func TestClient_TranscribeTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: time.Minute})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := client.Transcribe(ctx, "https://cdn.example.com/a.mp3")
	require.Error(t, err)
	assert.True(t, IsTimeout(err), "expected a timeout-class error, got %v", err)
}

func TestClient_TranscribeRequiresURL(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://localhost:5000"})

	_, err := client.Transcribe(context.Background(), "")
	require.Error(t, err)
}

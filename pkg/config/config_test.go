package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T)
		cleanup func()
		check   func(t *testing.T)
	}{
		{
			name: "defaults when no config file exists",
			setup: func(t *testing.T) {
				viper.Reset()
			},
			cleanup: viper.Reset,
			check: func(t *testing.T) {
				assert.Equal(t, 8080, GetInt("server.port"))
				assert.Equal(t, 5*time.Minute, GetDuration("transcription.timeout"))
				assert.Equal(t, "lecture-audio", GetString("storage.bucket"))
			},
		},
		{
			name: "environment variable override",
			setup: func(t *testing.T) {
				viper.Reset()
				t.Setenv("CLASSROOM_SERVER_PORT", "9090")
			},
			cleanup: viper.Reset,
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))
			},
		},
		{
			name: "invalid worker count is corrected",
			setup: func(t *testing.T) {
				viper.Reset()
				t.Setenv("CLASSROOM_PROCESSING_WORKERS", "0")
			},
			cleanup: viper.Reset,
			check: func(t *testing.T) {
				assert.Equal(t, 2, GetInt("processing.workers"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			defer tt.cleanup()

			err := Init()
			require.NoError(t, err)
			tt.check(t)
		})
	}
}

func TestInitRejectsInvalidPort(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	t.Setenv("CLASSROOM_SERVER_PORT", "-1")

	err := Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid server port")
}

func TestGetConfigUnmarshal(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	require.NoError(t, Init())

	cfg, err := GetConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, os.TempDir(), cfg.Storage.TempDir)
	assert.Equal(t, "en", cfg.Transcription.Language)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

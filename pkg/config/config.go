package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Init initializes the configuration system. It should be called once at
// application startup, before any Get* helper is used.
func Init() error {
	setDefaults()

	// Environment variables override file values, e.g. CLASSROOM_SERVER_PORT
	viper.SetEnvPrefix("CLASSROOM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	configPath := filepath.Clean("./config/settings.yaml")
	viper.SetConfigFile(configPath)

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply
		if !os.IsNotExist(err) {
			return fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	if err := validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	// Auto-correct invalid worker count
	if viper.GetInt("processing.workers") <= 0 {
		viper.Set("processing.workers", 2)
	}

	return nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1<<20)
	viper.SetDefault("server.max_upload_bytes", int64(50<<20))

	// Database defaults
	viper.SetDefault("database.path", "./data/classroom.db")
	viper.SetDefault("database.log_queries", false)

	// Auth defaults
	viper.SetDefault("auth.jwt_secret", "")
	viper.SetDefault("auth.token_ttl", 24*time.Hour)

	// Object storage defaults
	viper.SetDefault("storage.endpoint", "localhost:9000")
	viper.SetDefault("storage.access_key", "")
	viper.SetDefault("storage.secret_key", "")
	viper.SetDefault("storage.bucket", "lecture-audio")
	viper.SetDefault("storage.use_ssl", false)
	viper.SetDefault("storage.public_url", "")
	viper.SetDefault("storage.temp_dir", os.TempDir())

	// Transcription service defaults. The external service downloads the
	// audio itself, so the timeout budget is minutes, not seconds.
	viper.SetDefault("transcription.service_url", "http://localhost:5000")
	viper.SetDefault("transcription.timeout", 5*time.Minute)
	viper.SetDefault("transcription.language", "en")

	// Worker defaults
	viper.SetDefault("processing.workers", 2)
	viper.SetDefault("processing.poll_interval", 2*time.Second)
	viper.SetDefault("processing.job_retention_days", 30)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}

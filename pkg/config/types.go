package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server        ServerConfig        `mapstructure:"server"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Auth          AuthConfig          `mapstructure:"auth"`
	Storage       StorageConfig       `mapstructure:"storage"`
	Transcription TranscriptionConfig `mapstructure:"transcription"`
	Processing    ProcessingConfig    `mapstructure:"processing"`
	Logging       LoggingConfig       `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path       string `mapstructure:"path"`
	LogQueries bool   `mapstructure:"log_queries"`
}

// AuthConfig contains JWT settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// StorageConfig contains object storage settings
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"`
	TempDir   string `mapstructure:"temp_dir"`
}

// TranscriptionConfig contains external transcription service settings
type TranscriptionConfig struct {
	ServiceURL string        `mapstructure:"service_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Language   string        `mapstructure:"language"`
}

// ProcessingConfig contains background worker settings
type ProcessingConfig struct {
	Workers          int           `mapstructure:"workers"`
	PollInterval     time.Duration `mapstructure:"poll_interval"`
	JobRetentionDays int           `mapstructure:"job_retention_days"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

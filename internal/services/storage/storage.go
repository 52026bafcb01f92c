package storage

import (
	"context"

	"github.com/lectern/classroom-api/pkg/config"
)

// UploadResult describes a stored object
type UploadResult struct {
	ObjectName string
	URL        string
	Size       int64
}

// ObjectStore uploads lecture audio to durable storage and deletes blobs
// when their asset is explicitly removed.
type ObjectStore interface {
	// Upload stores the file at localPath and returns its public URL.
	// The local temp file is removed once the upload has been attempted,
	// whether it succeeded or not.
	Upload(ctx context.Context, localPath, originalName string) (*UploadResult, error)

	// Remove deletes a stored object by name
	Remove(ctx context.Context, objectName string) error
}

// Config holds object storage settings
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

// ConfigFromApp maps the application config section onto storage config
func ConfigFromApp(cfg config.StorageConfig) Config {
	return Config{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Bucket:    cfg.Bucket,
		UseSSL:    cfg.UseSSL,
		PublicURL: cfg.PublicURL,
	}
}

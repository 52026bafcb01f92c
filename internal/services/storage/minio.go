package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// minioStore implements ObjectStore backed by a MinIO (or any S3
// compatible) bucket.
type minioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

// NewMinIOStore creates an ObjectStore and ensures the bucket exists
func NewMinIOStore(ctx context.Context, cfg Config) (ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", cfg.Bucket, err)
		}
	}

	publicURL := strings.TrimRight(cfg.PublicURL, "/")
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &minioStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// Upload stores the local file under a fresh object name and deletes the
// local temp file once the attempt finishes.
func (s *minioStore) Upload(ctx context.Context, localPath, originalName string) (*UploadResult, error) {
	if localPath == "" {
		return nil, fmt.Errorf("local path is required")
	}
	defer func() {
		if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", localPath).Msg("failed to remove temp upload file")
		}
	}()

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = filepath.Ext(localPath)
	}

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName := fmt.Sprintf("audio/%s%s", uuid.NewString(), ext)

	info, err := s.client.FPutObject(ctx, s.bucket, objectName, localPath, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", originalName, err)
	}

	log.Debug().Str("object", objectName).Int64("size", info.Size).Msg("uploaded audio object")

	return &UploadResult{
		ObjectName: objectName,
		URL:        s.publicURL + "/" + objectName,
		Size:       info.Size,
	}, nil
}

// Remove deletes a stored object by name
func (s *minioStore) Remove(ctx context.Context, objectName string) error {
	if objectName == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing object %s: %w", objectName, err)
	}
	return nil
}

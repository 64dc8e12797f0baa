/*
Package storage issues presigned upload URLs for viewer avatars on S3-compatible object storage.

Clients upload directly to the bucket; the server never handles file bytes. The resulting public
URL is what viewers later send as "avatar" when requesting a room token.
*/
package storage

import (
	"context"
	"time"
)

// ServiceConfig holds the configuration required to connect to the storage service.
type ServiceConfig struct {
	S3BucketName      string
	S3Endpoint        string
	S3AccessKeyID     string
	S3SecretAccessKey string

	// PublicBaseURL is the base URL under which uploaded objects are publicly readable.
	PublicBaseURL string
}

// StorageService defines the public interface for the avatar storage service.
type StorageService interface {
	// PresignUpload generates a pre-signed URL for uploading a file.
	PresignUpload(
		ctx context.Context,
		key string,
		mimeType string,
		fileSize int64,
		duration time.Duration,
	) (string, error)

	// PublicURL returns the public URL of the object stored under key.
	PublicURL(key string) string
}

// NewStorageService is the factory function for StorageService.
func NewStorageService(cfg ServiceConfig) (StorageService, error) {
	// Currently, only S3 compatible implementations are supported.
	return newS3Client(cfg)
}

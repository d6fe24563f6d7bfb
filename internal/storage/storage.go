package storage

import (
	"context"
	"errors"
	"time"
)

// DefaultPresignedURLExpiry applies when no expiry is configured.
const DefaultPresignedURLExpiry = 15 * time.Minute

// ErrStorageUnavailable is returned when no object store was configured.
var ErrStorageUnavailable = errors.New("object storage is not configured")

// FileStorage defines the object storage operations used for member photos.
// Uploads and downloads go straight to the provider through presigned URLs.
type FileStorage interface {
	// GeneratePresignedUploadURL returns a URL accepting a PUT of contentType
	// to objectKey. The uploader must send the same Content-Type header.
	GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string) (string, error)

	// GeneratePresignedDownloadURL returns a temporary GET URL for objectKey.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string) (string, error)

	// DeleteObject removes objectKey. Missing objects are not an error.
	DeleteObject(ctx context.Context, objectKey string) error
}

// disabledStorage is used when the S3 section of the configuration is empty.
type disabledStorage struct{}

// NewDisabledStorage returns a FileStorage whose operations all fail with
// ErrStorageUnavailable.
func NewDisabledStorage() FileStorage {
	return disabledStorage{}
}

func (disabledStorage) GeneratePresignedUploadURL(context.Context, string, string) (string, error) {
	return "", ErrStorageUnavailable
}

func (disabledStorage) GeneratePresignedDownloadURL(context.Context, string) (string, error) {
	return "", ErrStorageUnavailable
}

func (disabledStorage) DeleteObject(context.Context, string) error {
	return ErrStorageUnavailable
}

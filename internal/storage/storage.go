// Package storage keeps the raw bytes of uploaded documents.
// Two backends exist: an S3-compatible bucket (MinIO) and a local directory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"tutorapi/internal/config"
)

const (
	DriverMinIO = "minio"
	DriverLocal = "local"
)

// ErrObjectNotFound is returned by Get when the key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, or -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage stores document bytes under opaque keys.
type Storage interface {
	// Put uploads an object under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the backend selected by cfg.Driver.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "", DriverMinIO:
		return NewMinIO(cfg.MinIO)
	case DriverLocal:
		return NewLocal(cfg.LocalDir)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// ReadAll fetches the whole object behind key.
func ReadAll(ctx context.Context, s Storage, key string) ([]byte, error) {
	rc, _, err := s.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

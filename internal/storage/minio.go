package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"tutorapi/internal/config"
)

const bucketCheckTimeout = 10 * time.Second

// bucketStorage keeps documents in an S3-compatible bucket. Safe for concurrent use.
type bucketStorage struct {
	client *minio.Client
	bucket string
}

func validateMinIO(cfg config.MinIOConfig) error {
	return validation.ValidateStruct(&cfg,
		validation.Field(&cfg.Endpoint, validation.Required),
		validation.Field(&cfg.AccessKey, validation.Required),
		validation.Field(&cfg.SecretKey, validation.Required),
		validation.Field(&cfg.Bucket, validation.Required, validation.Length(3, 63)),
	)
}

// NewMinIO connects to the bucket named in cfg, creating it on first start.
func NewMinIO(cfg config.MinIOConfig) (Storage, error) {
	if err := validateMinIO(cfg); err != nil {
		return nil, fmt.Errorf("minio config: %w", err)
	}

	cli, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), bucketCheckTimeout)
	defer cancel()
	if err := ensureBucket(ctx, cli, cfg.Bucket, cfg.Region); err != nil {
		return nil, err
	}
	return &bucketStorage{client: cli, bucket: cfg.Bucket}, nil
}

func ensureBucket(ctx context.Context, cli *minio.Client, bucket, region string) error {
	exists, err := cli.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	err = cli.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region})
	if err != nil {
		// Another replica may have created it between the two calls.
		if code := minio.ToErrorResponse(err).Code; code == "BucketAlreadyOwnedByYou" || code == "BucketAlreadyExists" {
			return nil
		}
		return fmt.Errorf("create bucket %s: %w", bucket, err)
	}
	return nil
}

func (b *bucketStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	size := opt.Size
	if size <= 0 {
		size = -1
	}
	up, err := b.client.PutObject(ctx, b.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  opt.ContentType,
		UserMetadata: opt.Metadata,
	})
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("put %s: %w", key, err)
	}
	return ObjectInfo{
		Key:          key,
		Size:         up.Size,
		ETag:         up.ETag,
		ContentType:  opt.ContentType,
		LastModified: up.LastModified,
		Metadata:     opt.Metadata,
	}, nil
}

func (b *bucketStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := b.client.GetObject(ctx, b.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, translateMinIOError(err)
	}
	// GetObject is lazy; Stat surfaces a missing key.
	st, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		return nil, ObjectInfo{}, translateMinIOError(err)
	}
	return obj, objectInfoFrom(key, st), nil
}

// Delete removes key. S3 treats a missing key as success.
func (b *bucketStorage) Delete(ctx context.Context, key string) error {
	if err := b.client.RemoveObject(ctx, b.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return translateMinIOError(err)
	}
	return nil
}

func objectInfoFrom(key string, st minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Key:          key,
		Size:         st.Size,
		ETag:         st.ETag,
		ContentType:  st.ContentType,
		LastModified: st.LastModified,
		Metadata:     st.UserMetadata,
	}
}

func translateMinIOError(err error) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return ErrObjectNotFound
	default:
		return err
	}
}

// Package storage keeps uploaded meal photos in S3-compatible object storage.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sbilibin2017/insighteats/internal/logger"
)

// minioAPI is the subset of *minio.Client the photo store needs.
type minioAPI interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// PhotoStore uploads meal photos into a single bucket.
type PhotoStore struct {
	api    minioAPI
	bucket string
}

// NewMinioClient connects to the object storage endpoint.
func NewMinioClient(endpoint, accessKey, secretKey string, useSSL bool) (*minio.Client, error) {
	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
}

// NewPhotoStore creates a store backed by a real *minio.Client.
func NewPhotoStore(ctx context.Context, client *minio.Client, bucket string) (*PhotoStore, error) {
	return NewPhotoStoreWithAPI(ctx, client, bucket)
}

// NewPhotoStoreWithAPI allows injecting a fake API in tests.
func NewPhotoStoreWithAPI(ctx context.Context, api minioAPI, bucket string) (*PhotoStore, error) {
	s := &PhotoStore{api: api, bucket: bucket}

	if err := s.ensureBucketExists(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket exists: %w", err)
	}

	return s, nil
}

func (s *PhotoStore) ensureBucketExists(ctx context.Context) error {
	exists, err := s.api.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.api.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Upload stores the photo under key.
func (s *PhotoStore) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	info, err := s.api.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{ContentType: contentType})

	logger.FromContext(ctx).Infow("photo upload", "bucket", s.bucket, "key", key, "size", info.Size, "error", err)

	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// Delete removes the photo stored under key.
func (s *PhotoStore) Delete(ctx context.Context, key string) error {
	if err := s.api.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

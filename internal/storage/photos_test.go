package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMinio implements minioAPI without network.
type fakeMinio struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	madeBucket      string

	putErr      error
	putKey      string
	putBody     []byte
	putSize     int64
	contentType string

	removeErr error
	removed   string
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinio) MakeBucket(_ context.Context, bucket string, _ minio.MakeBucketOptions) error {
	f.madeBucket = bucket
	return f.makeBucketErr
}

func (f *fakeMinio) PutObject(_ context.Context, _ string, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	body, _ := io.ReadAll(reader)
	f.putKey, f.putBody, f.putSize, f.contentType = key, body, size, opts.ContentType
	return minio.UploadInfo{Key: key, Size: int64(len(body))}, nil
}

func (f *fakeMinio) RemoveObject(_ context.Context, _ string, key string, _ minio.RemoveObjectOptions) error {
	f.removed = key
	return f.removeErr
}

func TestNewPhotoStoreWithAPI(t *testing.T) {
	ctx := context.Background()

	t.Run("bucket exists", func(t *testing.T) {
		api := &fakeMinio{bucketExists: true}
		s, err := NewPhotoStoreWithAPI(ctx, api, "meal-photos")
		require.NoError(t, err)
		assert.Equal(t, "meal-photos", s.bucket)
		assert.Empty(t, api.madeBucket)
	})

	t.Run("creates missing bucket", func(t *testing.T) {
		api := &fakeMinio{}
		_, err := NewPhotoStoreWithAPI(ctx, api, "meal-photos")
		require.NoError(t, err)
		assert.Equal(t, "meal-photos", api.madeBucket)
	})

	t.Run("exists check fails", func(t *testing.T) {
		s, err := NewPhotoStoreWithAPI(ctx, &fakeMinio{bucketExistsErr: errors.New("boom")}, "b")
		assert.Nil(t, s)
		assert.ErrorContains(t, err, "failed to ensure bucket exists")
	})

	t.Run("make bucket fails", func(t *testing.T) {
		s, err := NewPhotoStoreWithAPI(ctx, &fakeMinio{makeBucketErr: errors.New("denied")}, "b")
		assert.Nil(t, s)
		assert.ErrorContains(t, err, "failed to create bucket")
	})
}

func TestPhotoStore_Upload(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	s, err := NewPhotoStoreWithAPI(ctx, api, "b")
	require.NoError(t, err)

	err = s.Upload(ctx, "user/photo.jpg", bytes.NewReader([]byte("jpeg")), 4, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "user/photo.jpg", api.putKey)
	assert.Equal(t, []byte("jpeg"), api.putBody)
	assert.Equal(t, int64(4), api.putSize)
	assert.Equal(t, "image/jpeg", api.contentType)

	api.putErr = errors.New("quota")
	err = s.Upload(ctx, "user/other.jpg", bytes.NewReader(nil), 0, "image/jpeg")
	assert.ErrorContains(t, err, "failed to upload object")
}

func TestPhotoStore_Delete(t *testing.T) {
	ctx := context.Background()
	api := &fakeMinio{bucketExists: true}
	s, err := NewPhotoStoreWithAPI(ctx, api, "b")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "user/photo.jpg"))
	assert.Equal(t, "user/photo.jpg", api.removed)

	api.removeErr = errors.New("gone")
	assert.ErrorContains(t, s.Delete(ctx, "x"), "failed to delete object")
}

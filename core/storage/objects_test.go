package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"chest-sorter/core/storage"
	"chest-sorter/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEnsureBucket(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "chests").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), m, "chests"))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Created", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "chests").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "chests", mock.Anything).Return(nil)

		assert.NoError(t, storage.EnsureBucket(context.Background(), m, "chests"))
		m.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "chests").Return(false, errors.New("offline"))

		assert.ErrorContains(t, storage.EnsureBucket(context.Background(), m, "chests"), "offline")
	})
}

func TestGetBytes(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "chests", "containers/a.json.zst", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("payload"))), nil)

		data, err := storage.GetBytes(context.Background(), m, "chests", "containers/a.json.zst")
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("Missing", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "chests", "containers/b.json.zst", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		_, err := storage.GetBytes(context.Background(), m, "chests", "containers/b.json.zst")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestPutBytes(t *testing.T) {
	m := new(mocks.Client)
	m.On("PutObject", mock.Anything, "chests", "k", mock.Anything, int64(3), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "application/zstd"
	})).Return(minio.UploadInfo{}, nil)

	assert.NoError(t, storage.PutBytes(context.Background(), m, "chests", "k", []byte("abc"), "application/zstd"))
	m.AssertExpectations(t)
}

func TestListAndRemoveKeys(t *testing.T) {
	m := new(mocks.Client)
	listCh := make(chan minio.ObjectInfo, 2)
	listCh <- minio.ObjectInfo{Key: "journal/a/1.json.zst"}
	listCh <- minio.ObjectInfo{Key: "journal/a/2.json.zst"}
	close(listCh)
	m.On("ListObjects", mock.Anything, "chests", mock.Anything).Return((<-chan minio.ObjectInfo)(listCh))

	keys, err := storage.ListKeys(context.Background(), m, "chests", "journal/a/")
	require.NoError(t, err)
	assert.Equal(t, []string{"journal/a/1.json.zst", "journal/a/2.json.zst"}, keys)

	errCh := make(chan minio.RemoveObjectError, 1)
	errCh <- minio.RemoveObjectError{ObjectName: "journal/a/1.json.zst", Err: errors.New("denied")}
	close(errCh)
	m.On("RemoveObjects", mock.Anything, "chests", mock.Anything, mock.Anything).Return((<-chan minio.RemoveObjectError)(errCh))

	err = storage.RemoveKeys(context.Background(), m, "chests", keys)
	assert.ErrorContains(t, err, "denied")
	assert.NoError(t, storage.RemoveKeys(context.Background(), m, "chests", nil))
}

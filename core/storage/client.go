package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client is the subset of the MinIO API the container store and the structure
// check use.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// MakeBucket creates a new bucket.
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	// PutObject uploads a container document, journal entry or folder marker.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	// GetObject downloads an object. Missing keys may only surface on the first read.
	GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error)
	// ListObjects lists objects in a bucket.
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	// RemoveObjects deletes pruned journal entries in one batch.
	RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError
}

// Host returns the endpoint without its scheme, and whether TLS is used.
// An https:// endpoint turns TLS on even when UseSSL is false.
func (c Config) Host() (string, bool) {
	switch {
	case strings.HasPrefix(c.Endpoint, "https://"):
		return strings.TrimSuffix(strings.TrimPrefix(c.Endpoint, "https://"), "/"), true
	case strings.HasPrefix(c.Endpoint, "http://"):
		return strings.TrimSuffix(strings.TrimPrefix(c.Endpoint, "http://"), "/"), c.UseSSL
	}
	return strings.TrimSuffix(c.Endpoint, "/"), c.UseSSL
}

// Validate reports settings the storage backend cannot run without.
func (c Config) Validate() error {
	if host, _ := c.Host(); host == "" {
		return errors.New("storage endpoint is not set")
	}
	if c.Bucket == "" {
		return errors.New("storage bucket is not set")
	}
	return nil
}

// NewClient creates a new Minio client based on the configuration. The client
// connects lazily; Open also makes sure the container bucket exists.
func NewClient(cfg Config) (Client, error) {
	endpoint, secure := cfg.Host()

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    secure,
		Region:    cfg.Region,
		Transport: newTransport(time.Duration(timeout) * time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &bucketClient{Client: minioClient}, nil
}

// Open creates a client and prepares the container bucket.
func Open(ctx context.Context, cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := Prepare(ctx, client, cfg); err != nil {
		return nil, err
	}
	return client, nil
}

// Prepare validates cfg and creates its bucket when missing.
func Prepare(ctx context.Context, client Client, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := EnsureBucket(ctx, client, cfg.Bucket); err != nil {
		return fmt.Errorf("storage backend unavailable: %w", err)
	}
	return nil
}

// newTransport bounds every phase of a request by timeout, so a stalled
// object store fails a sort instead of holding its container lock.
func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
}

// bucketClient adapts *minio.Client to Client. GetObject returns *minio.Object,
// which has to be widened to io.ReadCloser.
type bucketClient struct {
	*minio.Client
}

func (c *bucketClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucketName, objectName, opts)
}

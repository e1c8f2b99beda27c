package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"

	"mozfest-backend/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrNotConfigured is returned on every upload attempt when no valid
// credential combination was resolved from the environment.
var ErrNotConfigured = errors.New(
	"storage not configured: set STORAGE_URL or MINIO_ENDPOINT/MINIO_ACCESS_KEY/MINIO_SECRET_KEY")

// MinIOGateway uploads images to MinIO. The client is dialed lazily on
// first use; concurrent first uploads converge on a single client behind
// the mutex. A failed dial or bucket check leaves the client unset so the
// next upload retries it, only missing credentials are terminal. Missing
// credentials fail each upload with a clear error instead of crashing the
// process at startup.
type MinIOGateway struct {
	cfg       config.StorageConfig
	processor *ImageProcessor

	mu     sync.Mutex
	client *minio.Client
}

func NewMinIOGateway(cfg config.StorageConfig, processor *ImageProcessor) *MinIOGateway {
	return &MinIOGateway{
		cfg:       cfg,
		processor: processor,
	}
}

func (g *MinIOGateway) ensureClient(ctx context.Context) (*minio.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.client != nil {
		return g.client, nil
	}

	if !g.cfg.Configured() {
		return nil, ErrNotConfigured
	}

	client, err := minio.New(g.cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(g.cfg.AccessKey, g.cfg.SecretKey, ""),
		Secure: g.cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, g.cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, g.cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	g.client = client
	return client, nil
}

// Upload resizes the image, stores it under <folder>/<uuid>.jpg and
// returns the public HTTPS URL plus the object key. Overwriting an
// existing object at the same key is permitted.
func (g *MinIOGateway) Upload(ctx context.Context, data []byte, folder string) (string, string, error) {
	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", "", err
	}

	if err := g.processor.ValidateImage(data); err != nil {
		return "", "", fmt.Errorf("upload rejected: %w", err)
	}

	processed, err := g.processor.Process(data)
	if err != nil {
		return "", "", fmt.Errorf("upload rejected: %w", err)
	}

	key := fmt.Sprintf("%s/%s.jpg", folder, uuid.NewString())

	_, err = client.PutObject(
		ctx,
		g.cfg.Bucket,
		key,
		bytes.NewReader(processed),
		int64(len(processed)),
		minio.PutObjectOptions{ContentType: "image/jpeg"},
	)
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to minio: %w", err)
	}

	// Delivery URLs are always https regardless of how the client dials.
	url := fmt.Sprintf("https://%s/%s/%s", client.EndpointURL().Host, g.cfg.Bucket, key)

	return url, key, nil
}

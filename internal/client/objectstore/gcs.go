package objectstore

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/dmitrijs2005/fieldsync/internal/client/config"
)

// gcsWriter opens a writer for bucket/key. Tests replace it.
type gcsWriter func(ctx context.Context, bucket, key, contentType string) io.WriteCloser

// GCS uploads to a Google Cloud Storage bucket.
type GCS struct {
	client    *storage.Client
	newWriter gcsWriter
	bucket    string
	publicURL string
}

func NewGCS(ctx context.Context, cfg config.ObjectStore) (*GCS, error) {
	var opts []option.ClientOption
	if cfg.GCSCredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.GCSCredentialsFile))
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("init gcs: %w", err)
	}

	g := &GCS{client: client, bucket: cfg.Bucket, publicURL: cfg.PublicBaseURL}
	if g.publicURL == "" {
		g.publicURL = "https://storage.googleapis.com/" + cfg.Bucket
	}
	g.newWriter = func(ctx context.Context, bucket, key, contentType string) io.WriteCloser {
		w := client.Bucket(bucket).Object(key).NewWriter(ctx)
		w.ContentType = contentType
		return w
	}
	return g, nil
}

func (u *GCS) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	w := u.newWriter(ctx, u.bucket, key, contentType)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", key, err)
	}
	return joinURL(u.publicURL, key), nil
}

func (u *GCS) Close() error {
	if u.client == nil {
		return nil
	}
	return u.client.Close()
}

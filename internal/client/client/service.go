package client

import (
	"context"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
)

// Client is the remote record API.
type Client interface {
	Commit(ctx context.Context, r models.StructuredReport) (string, error)
	List(ctx context.Context, siteID string) ([]models.StructuredReport, error)
	Delete(ctx context.Context, id string) error
	PresignUpload(ctx context.Context, key, contentType string) (uploadURL, publicURL string, err error)
	Ping(ctx context.Context) error
	Close() error
}

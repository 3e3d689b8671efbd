// Package reports persists committed field reports in PostgreSQL.
package reports

import (
	"context"

	"github.com/dmitrijs2005/fieldsync/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Report) (*models.Report, error)
	Get(ctx context.Context, id string) (*models.Report, error)
	ListBySite(ctx context.Context, siteID string) ([]*models.Report, error)
	Delete(ctx context.Context, id string) error
}

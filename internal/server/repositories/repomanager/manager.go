package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/fieldsync/internal/dbx"
	"github.com/dmitrijs2005/fieldsync/internal/server/repositories/reports"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Reports(db dbx.DBTX) reports.Repository
}

package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/fieldsync/internal/client/migrations"
	"github.com/dmitrijs2005/fieldsync/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/fieldsync/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/fieldsync/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Drafts   drafts.Repository
	Metadata metadata.Repository
}

// RunMigrations applies the embedded migrations. It uses a goose Provider
// rather than the package-level goose state, so several databases can be
// migrated concurrently.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite queue at path and
// migrates it. The pool is limited to one connection.
func InitDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	dsn := "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewRepositories builds the stores and resets drafts a previous process
// left in the syncing state.
func NewRepositories(ctx context.Context, db *sql.DB) (*Repositories, error) {
	store := drafts.NewSQLiteStore(db)
	if _, err := store.ResetSyncing(ctx); err != nil {
		return nil, err
	}
	return &Repositories{
		Drafts:   store,
		Metadata: metadata.NewSQLiteRepository(db),
	}, nil
}

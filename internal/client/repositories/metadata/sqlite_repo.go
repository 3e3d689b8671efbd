package metadata

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/dbx"
	"github.com/google/uuid"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Get returns (nil, nil) when key is absent.
func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) DeviceID(ctx context.Context) (string, error) {
	v, err := r.Get(ctx, common.MetadataKeyDeviceID)
	if err != nil {
		return "", err
	}
	if len(v) > 0 {
		return string(v), nil
	}

	id := uuid.NewString()
	// INSERT OR IGNORE keeps the first id if two callers race.
	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO metadata (key, value) VALUES (?, ?)`,
		common.MetadataKeyDeviceID, []byte(id)); err != nil {
		return "", fmt.Errorf("failed to set metadata[%s]: %w", common.MetadataKeyDeviceID, err)
	}
	v, err = r.Get(ctx, common.MetadataKeyDeviceID)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (r *SQLiteRepository) LastSyncAt(ctx context.Context) (time.Time, error) {
	v, err := r.Get(ctx, common.MetadataKeyLastSyncAt)
	if err != nil || len(v) == 0 {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, string(v))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse metadata[%s]: %w", common.MetadataKeyLastSyncAt, err)
	}
	return t, nil
}

func (r *SQLiteRepository) SetLastSyncAt(ctx context.Context, t time.Time) error {
	return r.Set(ctx, common.MetadataKeyLastSyncAt, []byte(t.UTC().Format(time.RFC3339Nano)))
}

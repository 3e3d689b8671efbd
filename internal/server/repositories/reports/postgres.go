package reports

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/dbx"
	"github.com/dmitrijs2005/fieldsync/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts r and fills in CommittedAt from the database clock.
func (r *PostgresRepository) Create(ctx context.Context, rep *models.Report) (*models.Report, error) {
	body, err := json.Marshal(rep.Body)
	if err != nil {
		return nil, fmt.Errorf("encode report body: %w", err)
	}

	query := `INSERT INTO reports (id, site_id, captured_at, body, client_ref, device_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING committed_at`

	err = r.db.QueryRowContext(ctx, query, rep.ID, rep.SiteID, rep.CapturedAt, body, rep.ClientRef, rep.DeviceID).
		Scan(&rep.CommittedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rep, nil
}

const selectColumns = `SELECT id, site_id, captured_at, body, client_ref, device_id, committed_at FROM reports`

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Report, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id)
	rep, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// ListBySite returns the site's reports, newest capture first.
func (r *PostgresRepository) ListBySite(ctx context.Context, siteID string) ([]*models.Report, error) {
	rows, err := r.db.QueryContext(ctx, selectColumns+` WHERE site_id = $1 ORDER BY captured_at DESC, committed_at DESC`, siteID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := dbx.Exec(ctx, r.db, common.ErrNotFound, `DELETE FROM reports WHERE id = $1`, id)
	if errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("report %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReport(s scanner) (*models.Report, error) {
	var (
		rep  models.Report
		body []byte
	)
	if err := s.Scan(&rep.ID, &rep.SiteID, &rep.CapturedAt, &body, &rep.ClientRef, &rep.DeviceID, &rep.CommittedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan report: %w", err)
	}
	if err := json.Unmarshal(body, &rep.Body); err != nil {
		return nil, fmt.Errorf("decode report body: %w", err)
	}
	return &rep, nil
}

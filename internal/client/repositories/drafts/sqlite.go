package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/dbx"
	"github.com/google/uuid"
)

const (
	attachmentInline = "inline"
	attachmentRemote = "remote"
)

type SQLiteStore struct {
	db        *sql.DB
	locks     *lockTable
	listeners listeners
	now       func() time.Time
}

type Option func(*SQLiteStore)

// WithClock overrides time.Now for CreatedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *SQLiteStore) { s.now = now }
}

func NewSQLiteStore(db *sql.DB, opts ...Option) *SQLiteStore {
	s := &SQLiteStore{db: db, locks: newLockTable(), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ResetSyncing rewrites rows left in the syncing state by older builds.
func (s *SQLiteStore) ResetSyncing(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE drafts SET sync_state = ? WHERE sync_state = ?`,
		models.SyncStatePending, models.SyncStateSyncing)
	if err != nil {
		return 0, storageErr("reset syncing drafts", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrLocalStorageFailure, err)
}

func (s *SQLiteStore) Append(ctx context.Context, d *models.Draft) (string, error) {
	if err := d.ValidateSlotIDs(); err != nil {
		return "", err
	}

	obs, err := json.Marshal(d.Observations)
	if err != nil {
		return "", fmt.Errorf("encode observations: %w", err)
	}
	meas, err := json.Marshal(d.Measurements)
	if err != nil {
		return "", fmt.Errorf("encode measurements: %w", err)
	}
	acts, err := json.Marshal(d.Actions)
	if err != nil {
		return "", fmt.Errorf("encode actions: %w", err)
	}

	id := uuid.NewString()
	createdAt := s.now().UTC()

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO drafts (local_id, site_id, captured_at, observations, measurements, actions,
			                    sync_state, attempts, last_error, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, 0, '', ?)`,
			id, d.SiteID, d.CapturedAt.UTC().UnixNano(), string(obs), string(meas), string(acts),
			models.SyncStatePending, createdAt.UnixNano())
		if err != nil {
			return err
		}
		for slot, a := range d.Attachments() {
			if err := upsertAttachment(ctx, tx, id, slot, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", storageErr("append draft", err)
	}

	d.LocalID = id
	d.SyncState = models.SyncStatePending
	d.Attempts = 0
	d.LastError = ""
	d.CreatedAt = createdAt

	s.listeners.notify(d.SiteID)
	return id, nil
}

func upsertAttachment(ctx context.Context, tx dbx.DBTX, draftID string, slot models.Slot, a models.Attachment) error {
	var kind, mime, data, url string
	switch v := a.(type) {
	case models.InlineAttachment:
		kind, mime, data = attachmentInline, v.MimeType, v.Data
	case models.RemoteAttachmentRef:
		kind, url = attachmentRemote, v.URL
	default:
		return fmt.Errorf("slot %s: unsupported attachment %T", slot, a)
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO attachments (draft_id, slot, kind, mime_type, inline_data, url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(draft_id, slot) DO UPDATE SET
			kind = excluded.kind, mime_type = excluded.mime_type,
			inline_data = excluded.inline_data, url = excluded.url`,
		draftID, slot.String(), kind, mime, data, url)
	return err
}

// ListPending yields every Pending or Failed draft in insertion order. The id
// list is read up front; each draft is then loaded on demand, so drafts that
// are removed or locked in the meantime are skipped.
func (s *SQLiteStore) ListPending(ctx context.Context) iter.Seq2[*models.Draft, error] {
	return func(yield func(*models.Draft, error) bool) {
		ids, err := s.pendingIDs(ctx)
		if err != nil {
			yield(nil, err)
			return
		}
		for _, id := range ids {
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}
			if s.locks.isLocked(id) {
				continue
			}
			d, err := s.Get(ctx, id)
			if errors.Is(err, common.ErrNotFound) {
				continue
			}
			if !yield(d, err) || err != nil {
				return
			}
		}
	}
}

func (s *SQLiteStore) pendingIDs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT local_id FROM drafts WHERE sync_state IN (?, ?) ORDER BY rowid`,
		models.SyncStatePending, models.SyncStateFailed)
	if err != nil {
		return nil, storageErr("list pending drafts", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, storageErr("scan draft id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list pending drafts", err)
	}
	return ids, nil
}

// UpdatePartial applies p to one draft in a single transaction.
func (s *SQLiteStore) UpdatePartial(ctx context.Context, localID string, p Patch) error {
	if p.SyncState != nil && *p.SyncState == models.SyncStateSyncing {
		return fmt.Errorf("%w: syncing state is not persisted", common.ErrInvalidDraft)
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := dbx.Exec(ctx, tx, common.ErrNotFound, `
			UPDATE drafts SET
				sync_state = COALESCE(?, sync_state),
				attempts   = COALESCE(?, attempts),
				last_error = COALESCE(?, last_error)
			WHERE local_id = ?`,
			nullable(p.SyncState), nullable(p.Attempts), nullable(p.LastError), localID)
		if err != nil {
			return err
		}
		for slot, a := range p.Attachments {
			if err := upsertAttachment(ctx, tx, localID, slot, a); err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("draft %s: %w", localID, common.ErrNotFound)
	}
	if err != nil {
		return storageErr("update draft", err)
	}
	return nil
}

func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

// Remove deletes a delivered draft. The caller is expected to hold its lock.
func (s *SQLiteStore) Remove(ctx context.Context, localID string) error {
	return s.delete(ctx, localID, "remove draft")
}

// Discard deletes a draft on user request. It fails with ErrDraftBusy while
// a sync pass holds the draft.
func (s *SQLiteStore) Discard(ctx context.Context, localID string) error {
	unlock, ok := s.locks.tryLock(localID)
	if !ok {
		return fmt.Errorf("draft %s: %w", localID, common.ErrDraftBusy)
	}
	defer unlock()
	return s.delete(ctx, localID, "discard draft")
}

func (s *SQLiteStore) delete(ctx context.Context, localID, op string) error {
	var siteID string
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM attachments WHERE draft_id = ?`, localID); err != nil {
			return err
		}
		return tx.QueryRowContext(ctx, `DELETE FROM drafts WHERE local_id = ? RETURNING site_id`, localID).Scan(&siteID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("draft %s: %w", localID, common.ErrNotFound)
	}
	if err != nil {
		return storageErr(op, err)
	}
	s.listeners.notify(siteID)
	return nil
}

func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drafts`).Scan(&n); err != nil {
		return 0, storageErr("count drafts", err)
	}
	return n, nil
}

func (s *SQLiteStore) CountBySite(ctx context.Context, siteID string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drafts WHERE site_id = ?`, siteID).Scan(&n); err != nil {
		return 0, storageErr("count drafts by site", err)
	}
	return n, nil
}

const draftColumns = `local_id, site_id, captured_at, observations, measurements, actions,
	sync_state, attempts, last_error, created_at`

func (s *SQLiteStore) Get(ctx context.Context, localID string) (*models.Draft, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+draftColumns+` FROM drafts WHERE local_id = ?`, localID)
	d, err := scanDraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("draft %s: %w", localID, common.ErrNotFound)
	}
	if err != nil {
		return nil, storageErr("get draft", err)
	}
	if err := s.loadAttachments(ctx, d); err != nil {
		return nil, err
	}
	s.markSyncing(d)
	return d, nil
}

func (s *SQLiteStore) ListBySite(ctx context.Context, siteID string) ([]*models.Draft, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+draftColumns+` FROM drafts WHERE site_id = ? ORDER BY rowid`, siteID)
	if err != nil {
		return nil, storageErr("list drafts by site", err)
	}

	var result []*models.Draft
	for rows.Next() {
		d, err := scanDraft(rows)
		if err != nil {
			rows.Close()
			return nil, storageErr("scan draft", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, storageErr("list drafts by site", err)
	}
	rows.Close()

	for _, d := range result {
		if err := s.loadAttachments(ctx, d); err != nil {
			return nil, err
		}
		s.markSyncing(d)
	}
	return result, nil
}

func (s *SQLiteStore) TryLock(localID string) (func(), bool) {
	return s.locks.tryLock(localID)
}

func (s *SQLiteStore) Subscribe(fn func(siteID string)) func() {
	return s.listeners.add(fn)
}

func (s *SQLiteStore) markSyncing(d *models.Draft) {
	if s.locks.isLocked(d.LocalID) {
		d.SyncState = models.SyncStateSyncing
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDraft(row scanner) (*models.Draft, error) {
	var (
		d                   models.Draft
		capturedAt, created int64
		obs, meas, acts     string
		state               string
	)
	if err := row.Scan(&d.LocalID, &d.SiteID, &capturedAt, &obs, &meas, &acts,
		&state, &d.Attempts, &d.LastError, &created); err != nil {
		return nil, err
	}
	d.CapturedAt = time.Unix(0, capturedAt).UTC()
	d.CreatedAt = time.Unix(0, created).UTC()
	d.SyncState = models.SyncState(state)

	if err := json.Unmarshal([]byte(obs), &d.Observations); err != nil {
		return nil, fmt.Errorf("decode observations: %w", err)
	}
	if err := json.Unmarshal([]byte(meas), &d.Measurements); err != nil {
		return nil, fmt.Errorf("decode measurements: %w", err)
	}
	if err := json.Unmarshal([]byte(acts), &d.Actions); err != nil {
		return nil, fmt.Errorf("decode actions: %w", err)
	}
	return &d, nil
}

func (s *SQLiteStore) loadAttachments(ctx context.Context, d *models.Draft) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slot, kind, mime_type, inline_data, url FROM attachments WHERE draft_id = ?`, d.LocalID)
	if err != nil {
		return storageErr("load attachments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slotName, kind, mime, data, url string
		if err := rows.Scan(&slotName, &kind, &mime, &data, &url); err != nil {
			return storageErr("scan attachment", err)
		}
		slot, err := models.ParseSlot(slotName)
		if err != nil {
			return storageErr("load attachments", err)
		}
		var a models.Attachment = models.InlineAttachment{MimeType: mime, Data: data}
		if kind == attachmentRemote {
			a = models.RemoteAttachmentRef{URL: url}
		}
		if err := d.SetAttachment(slot, a); err != nil {
			return storageErr("load attachments", err)
		}
	}
	if err := rows.Err(); err != nil {
		return storageErr("load attachments", err)
	}
	return nil
}

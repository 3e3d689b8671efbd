package drafts

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/client/migrations"
	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) (*SQLiteStore, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	require.NoError(t, err)
	_, err = provider.Up(context.Background())
	require.NoError(t, err)

	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewSQLiteStore(db, WithClock(func() time.Time { return now })), db
}

func newDraft(site string) *models.Draft {
	return &models.Draft{
		SiteID:     site,
		CapturedAt: time.Date(2024, 6, 1, 9, 15, 0, 123, time.UTC),
		Observations: []models.Observation{
			{ID: "o1", Category: "coating", Severity: models.SeverityWatch, Text: "blistering", WeatherTags: []string{"humid"},
				Attachment: models.NewInlineAttachment("image/png", []byte("photo"))},
			{ID: "o2", Severity: models.SeverityInfo, Text: "ok"},
		},
		Measurements: []models.Measurement{
			{ID: "m1", Label: "wall", GeometryType: "rectangle", Dimensions: map[string]float64{"w": 2, "h": 3},
				Derived: models.Derived{Surface: 6}, SketchAttachment: models.RemoteAttachmentRef{URL: "https://cdn/sketches/s.png"}},
		},
		Actions: []models.Action{{ID: "a1", Description: "touch up", Assignee: "crew-2"}},
	}
}

func pending(t *testing.T, s *SQLiteStore) []*models.Draft {
	t.Helper()
	var out []*models.Draft
	for d, err := range s.ListPending(context.Background()) {
		require.NoError(t, err)
		out = append(out, d)
	}
	return out
}

func TestAppendAndGet_RoundTrip(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	in := newDraft("site-1")
	id, err := s.Append(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	assert.Equal(t, id, in.LocalID)
	assert.Equal(t, models.SyncStatePending, in.SyncState)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "site-1", got.SiteID)
	assert.True(t, in.CapturedAt.Equal(got.CapturedAt))
	assert.Equal(t, models.SyncStatePending, got.SyncState)
	assert.Equal(t, 0, got.Attempts)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), got.CreatedAt)
	require.Len(t, got.Observations, 2)
	assert.Equal(t, []string{"humid"}, got.Observations[0].WeatherTags)
	assert.Equal(t, in.Observations[0].Attachment, got.Observations[0].Attachment)
	assert.Nil(t, got.Observations[1].Attachment)
	assert.Equal(t, models.RemoteAttachmentRef{URL: "https://cdn/sketches/s.png"}, got.Measurements[0].SketchAttachment)
	assert.Equal(t, 3.0, got.Measurements[0].Dimensions["h"])
	assert.Equal(t, "crew-2", got.Actions[0].Assignee)
}

func TestGet_NotFound(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.Get(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestCountAndCountBySite(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	for _, site := range []string{"a", "a", "b"} {
		_, err := s.Append(ctx, newDraft(site))
		require.NoError(t, err)
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = s.CountBySite(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := s.ListBySite(ctx, "b")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].SiteID)
}

func TestListPending_OrderSkipsLockedAndIsRestartable(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	id1, _ := s.Append(ctx, newDraft("x"))
	id2, _ := s.Append(ctx, newDraft("x"))
	id3, _ := s.Append(ctx, newDraft("x"))

	unlock, ok := s.TryLock(id2)
	require.True(t, ok)

	var ids []string
	for _, d := range pending(t, s) {
		ids = append(ids, d.LocalID)
	}
	assert.Equal(t, []string{id1, id3}, ids)

	unlock()
	assert.Len(t, pending(t, s), 3, "a second iteration starts over")
}

func TestListPending_SkipsDraftsRemovedDuringIteration(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	id1, _ := s.Append(ctx, newDraft("x"))
	id2, _ := s.Append(ctx, newDraft("x"))

	var seen []string
	for d, err := range s.ListPending(ctx) {
		require.NoError(t, err)
		seen = append(seen, d.LocalID)
		if d.LocalID == id1 {
			require.NoError(t, s.Remove(ctx, id2))
		}
	}
	assert.Equal(t, []string{id1}, seen)
}

func TestListPending_IncludesFailed(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	id, _ := s.Append(ctx, newDraft("x"))
	failed := models.SyncStateFailed
	require.NoError(t, s.UpdatePartial(ctx, id, Patch{SyncState: &failed}))

	list := pending(t, s)
	require.Len(t, list, 1)
	assert.Equal(t, models.SyncStateFailed, list[0].SyncState)
}

func TestUpdatePartial_PromotesSingleSlotAndBookkeeping(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	id, _ := s.Append(ctx, newDraft("x"))

	slot := models.Slot{Kind: models.SlotObservation, OwnerID: "o1"}
	require.NoError(t, s.UpdatePartial(ctx, id, PromotedSlot(slot, models.RemoteAttachmentRef{URL: "https://cdn/notes/1.png"})))

	attempts, lastErr := 2, "commit failed"
	require.NoError(t, s.UpdatePartial(ctx, id, Patch{Attempts: &attempts, LastError: &lastErr}))

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.RemoteAttachmentRef{URL: "https://cdn/notes/1.png"}, got.Observations[0].Attachment)
	assert.Equal(t, 2, got.Attempts)
	assert.Equal(t, "commit failed", got.LastError)
	assert.Equal(t, models.SyncStatePending, got.SyncState)
}

func TestUpdatePartial_Errors(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	err := s.UpdatePartial(ctx, "missing", Patch{})
	require.ErrorIs(t, err, common.ErrNotFound)

	id, _ := s.Append(ctx, newDraft("x"))
	syncing := models.SyncStateSyncing
	err = s.UpdatePartial(ctx, id, Patch{SyncState: &syncing})
	require.ErrorIs(t, err, common.ErrInvalidDraft)
}

func TestLockedDraftReportsSyncing(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	id, _ := s.Append(ctx, newDraft("x"))
	unlock, ok := s.TryLock(id)
	require.True(t, ok)

	_, again := s.TryLock(id)
	assert.False(t, again)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStateSyncing, got.SyncState)

	unlock()
	unlock()
	got, err = s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatePending, got.SyncState)
}

func TestDiscard(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	id, _ := s.Append(ctx, newDraft("x"))

	unlock, _ := s.TryLock(id)
	require.ErrorIs(t, s.Discard(ctx, id), common.ErrDraftBusy)
	unlock()

	require.NoError(t, s.Discard(ctx, id))
	require.ErrorIs(t, s.Discard(ctx, id), common.ErrNotFound)

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRemove_DeletesAttachments(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	id, _ := s.Append(ctx, newDraft("x"))
	require.NoError(t, s.Remove(ctx, id))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM attachments WHERE draft_id = ?`, id).Scan(&n))
	assert.Zero(t, n)
	require.ErrorIs(t, s.Remove(ctx, id), common.ErrNotFound)
}

func TestSubscribe_NotifiesOnAppendAndRemove(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	var calls atomic.Int32
	var lastSite atomic.Value
	cancel := s.Subscribe(func(siteID string) {
		calls.Add(1)
		lastSite.Store(siteID)
	})

	id, _ := s.Append(ctx, newDraft("site-9"))
	require.NoError(t, s.Remove(ctx, id))
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, "site-9", lastSite.Load())

	cancel()
	_, _ = s.Append(ctx, newDraft("site-9"))
	assert.Equal(t, int32(2), calls.Load())
}

func TestResetSyncing(t *testing.T) {
	s, db := setupStore(t)
	ctx := context.Background()

	id, _ := s.Append(ctx, newDraft("x"))
	_, err := db.Exec(`UPDATE drafts SET sync_state = 'syncing' WHERE local_id = ?`, id)
	require.NoError(t, err)

	n, err := s.ResetSyncing(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.SyncStatePending, got.SyncState)
}

func TestAppend_StorageFailure(t *testing.T) {
	s, db := setupStore(t)
	require.NoError(t, db.Close())

	_, err := s.Append(context.Background(), newDraft("x"))
	require.ErrorIs(t, err, common.ErrLocalStorageFailure)
}

func TestAppend_RejectsBadSlotIDs(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	empty := newDraft("x")
	empty.Observations[1].ID = ""
	dup := newDraft("x")
	dup.Observations[1].ID = "o1"
	dupMeas := newDraft("x")
	dupMeas.Measurements = append(dupMeas.Measurements, models.Measurement{ID: "m1", Label: "floor"})

	for _, d := range []*models.Draft{empty, dup, dupMeas} {
		_, err := s.Append(ctx, d)
		require.ErrorIs(t, err, common.ErrInvalidDraft)
		assert.Empty(t, d.LocalID)
	}

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Empty(t, pending(t, s))

	// Same id across kinds keys different slots.
	mixed := newDraft("x")
	mixed.Measurements[0].ID = "o1"
	_, err = s.Append(ctx, mixed)
	require.NoError(t, err)
	assert.Len(t, pending(t, s), 1)
}

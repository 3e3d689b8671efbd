package cli

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/client/notify"
	"github.com/dmitrijs2005/fieldsync/internal/client/projector"
	"github.com/dmitrijs2005/fieldsync/internal/client/services"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDrafts struct {
	saved     []*models.Draft
	saveErr   error
	discarded []string
	deleted   []string
	deleteErr error
	resync    services.SyncResult
	resyncErr error
	status    services.Status
}

func (f *fakeDrafts) Save(_ context.Context, d *models.Draft) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, d)
	return "local-1", nil
}

func (f *fakeDrafts) Discard(_ context.Context, id string) error {
	f.discarded = append(f.discarded, id)
	return nil
}

func (f *fakeDrafts) DeleteRemote(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeDrafts) Resync(context.Context) (services.SyncResult, error) {
	return f.resync, f.resyncErr
}

func (f *fakeDrafts) Status(_ context.Context, siteID string) (services.Status, error) {
	st := f.status
	st.SiteID = siteID
	return st, nil
}

func (f *fakeDrafts) Wait() {}

type fakeViewer struct{ view projector.View }

func (f fakeViewer) Project(_ context.Context, siteID string) (projector.View, error) {
	v := f.view
	v.SiteID = siteID
	return v, nil
}

type onlineFlag bool

func (o onlineFlag) Online() bool { return bool(o) }

type fakeCounter struct {
	n     int
	calls int
}

func (c *fakeCounter) Count(context.Context) (int, error) {
	c.calls++
	return c.n, nil
}

func newTestApp(input string) (*App, *fakeDrafts, *bytes.Buffer) {
	fd := &fakeDrafts{}
	var out bytes.Buffer
	a := &App{
		logger: logging.NewNop(),
		drafts: fd,
		viewer: fakeViewer{},
		online: onlineFlag(false),
		toasts: notify.NewQueue(0),
		reader: rdr(input),
		out:    &out,
	}
	return a, fd, &out
}

func TestSave_RequiresSite(t *testing.T) {
	a, _, _ := newTestApp("")
	require.Error(t, a.Save(context.Background()))
}

func TestSave_CapturesFullDraft(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nrest")
	orig := readFile
	readFile = func(name string) ([]byte, error) {
		if name == "/photos/crack.png" {
			return png, nil
		}
		return nil, os.ErrNotExist
	}
	t.Cleanup(func() { readFile = orig })

	input := strings.Join([]string{
		"Hairline crack near weld", "", // observation text
		"structure",
		"watch",
		"rain, wind",
		"/photos/crack.png",
		"Tank wall", // measurement
		"cylinder",
		"d=4", "h=6", "",
		"75.4",
		"12.5",
		"300",
		"",                 // no sketch
		"Grind and recoat", // action
		"crew-2",
		"2024-07-01",
	}, "\n") + "\n"

	a, fd, out := newTestApp(input)
	ctx := context.Background()
	require.NoError(t, a.SelectSite(ctx, "site123"))
	require.NoError(t, a.Save(ctx))

	require.Len(t, fd.saved, 1)
	d := fd.saved[0]
	assert.Equal(t, "site123", d.SiteID)

	require.Len(t, d.Observations, 1)
	o := d.Observations[0]
	assert.Equal(t, "Hairline crack near weld", o.Text)
	assert.Equal(t, models.SeverityWatch, o.Severity)
	assert.Equal(t, []string{"rain", "wind"}, o.WeatherTags)
	inline, ok := o.Attachment.(models.InlineAttachment)
	require.True(t, ok)
	assert.Equal(t, "image/png", inline.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString(png), inline.Data)

	require.Len(t, d.Measurements, 1)
	m := d.Measurements[0]
	assert.Equal(t, map[string]float64{"d": 4, "h": 6}, m.Dimensions)
	assert.Equal(t, models.Derived{Surface: 75.4, CoatingVolume: 12.5, AbrasiveMass: 300}, m.Derived)
	assert.Nil(t, m.SketchAttachment)

	require.Len(t, d.Actions, 1)
	require.NotNil(t, d.Actions[0].DueDate)
	assert.Equal(t, "crew-2", d.Actions[0].Assignee)

	assert.Contains(t, out.String(), "Saved draft local-1 with 1 attachment(s)")
}

func TestSave_SkipsSectionsAndReportsErrors(t *testing.T) {
	a, fd, _ := newTestApp("\n\nfix fence\n\n\n")
	ctx := context.Background()
	_ = a.SelectSite(ctx, "s")
	require.NoError(t, a.Save(ctx))
	require.Len(t, fd.saved, 1)
	assert.Empty(t, fd.saved[0].Observations)
	assert.Empty(t, fd.saved[0].Measurements)
	assert.Len(t, fd.saved[0].Actions, 1)

	a, fd, _ = newTestApp("\n\nfix fence\n\n\n")
	_ = a.SelectSite(ctx, "s")
	fd.saveErr = common.ErrLocalStorageFailure
	require.ErrorIs(t, a.Save(ctx), common.ErrLocalStorageFailure)

	a, _, _ = newTestApp("text\n\ncat\nextreme\n")
	_ = a.SelectSite(ctx, "s")
	require.ErrorIs(t, a.Save(ctx), common.ErrInvalidDraft)
}

func TestList_RendersBothProvenances(t *testing.T) {
	a, _, out := newTestApp("")
	at := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	a.viewer = fakeViewer{view: projector.View{
		Stale: true,
		Records: projector.Merge(
			[]models.StructuredReport{{ID: "rep-1", SiteID: "s", CapturedAt: at, Observations: make([]models.ReportObservation, 2)}},
			[]*models.Draft{
				{LocalID: "d-1", SiteID: "s", CapturedAt: at, SyncState: models.SyncStatePending, Attempts: 1, LastError: "record commit failed"},
				{LocalID: "d-2", SiteID: "s", CapturedAt: at, SyncState: models.SyncStateFailed},
			}),
	}}

	ctx := context.Background()
	require.Error(t, a.List(ctx))
	_ = a.SelectSite(ctx, "s")
	require.NoError(t, a.List(ctx))

	got := out.String()
	assert.Contains(t, got, "Reports for s")
	assert.Contains(t, got, "offline: server list from never")
	assert.Contains(t, got, "[remote] rep-1")
	assert.Contains(t, got, "2 obs / 0 meas / 0 actions")
	assert.Contains(t, got, "[awaiting sync] d-1")
	assert.Contains(t, got, "attempts 1: record commit failed")
	assert.Contains(t, got, "[failed] d-2")
}

func TestStatusAndPrompt(t *testing.T) {
	a, fd, out := newTestApp("")
	fd.status = services.Status{Online: false, Pending: 2}
	require.NoError(t, a.Status(context.Background()))
	assert.Contains(t, out.String(), "offline")
	assert.NotContains(t, out.String(), "this site:")
	assert.Contains(t, out.String(), "last sync:")
	assert.Contains(t, out.String(), "never")

	counter := &fakeCounter{n: 2}
	a.counter = counter
	a.pendingDirty.Store(true)
	_ = a.SelectSite(context.Background(), "site9")

	assert.Equal(t, "(site9 offline 2 pending)", a.promptStatus())
	assert.Equal(t, "(site9 offline 2 pending)", a.promptStatus())
	assert.Equal(t, 1, counter.calls, "count is cached until the queue changes")

	counter.n = 0
	a.pendingDirty.Store(true)
	a.online = onlineFlag(true)
	assert.Equal(t, "(site9 online)", a.promptStatus())

	out.Reset()
	fd.status.SitePending = 1
	require.NoError(t, a.Status(context.Background()))
	assert.Contains(t, out.String(), "this site:")
}

func TestSyncDeleteDiscard(t *testing.T) {
	a, fd, out := newTestApp("")
	ctx := context.Background()

	fd.resyncErr = common.ErrNetworkUnavailable
	require.EqualError(t, a.Sync(ctx), "sync is disabled while offline")

	fd.resyncErr = nil
	fd.resync = services.SyncResult{Skipped: true}
	require.NoError(t, a.Sync(ctx))
	assert.Contains(t, out.String(), "already running")

	fd.resync = services.SyncResult{Synced: []string{"a", "b"}, Remaining: 1}
	require.NoError(t, a.Sync(ctx))
	assert.Contains(t, out.String(), "2 synced, 1 pending")

	require.NoError(t, a.Discard(ctx, "d-1"))
	assert.Equal(t, []string{"d-1"}, fd.discarded)

	fd.deleteErr = common.ErrNetworkUnavailable
	require.EqualError(t, a.Delete(ctx, "rep-1"), "delete is disabled while offline")
	fd.deleteErr = errors.New("boom")
	require.EqualError(t, a.Delete(ctx, "rep-1"), "boom")
	fd.deleteErr = nil
	require.NoError(t, a.Delete(ctx, "rep-1"))
	assert.Equal(t, []string{"rep-1"}, fd.deleted)
}

func TestClose_RunsClosersOnceInReverse(t *testing.T) {
	a, _, _ := newTestApp("")
	var order []int
	a.closers = []func() error{
		func() error { order = append(order, 1); return nil },
		func() error { order = append(order, 2); return errors.New("x") },
	}
	require.Error(t, a.Close())
	require.NoError(t, a.Close())
	assert.Equal(t, []int{2, 1}, order)
}

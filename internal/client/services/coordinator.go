package services

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/client/notify"
	"github.com/dmitrijs2005/fieldsync/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/logging"
)

// Queue is the part of the local draft store a sync pass needs.
type Queue interface {
	ListPending(ctx context.Context) iter.Seq2[*models.Draft, error]
	TryLock(localID string) (unlock func(), ok bool)
	UpdatePartial(ctx context.Context, localID string, p drafts.Patch) error
	Remove(ctx context.Context, localID string) error
	Count(ctx context.Context) (int, error)
}

type AttachmentPromoter interface {
	Promote(ctx context.Context, d *models.Draft) (*models.Draft, error)
}

type RecordCommitter interface {
	Commit(ctx context.Context, r models.StructuredReport) (string, error)
}

// Refresher is told which site changed after a commit.
type Refresher interface {
	Refresh(siteID string)
}

// SyncClock records when the last pass finished.
type SyncClock interface {
	SetLastSyncAt(ctx context.Context, t time.Time) error
}

// Syncer runs a sync pass. Both the connectivity monitor and the draft
// service trigger passes through it.
type Syncer interface {
	SyncAll(ctx context.Context) (SyncResult, error)
}

type SyncResult struct {
	// Skipped is set when another pass was already running.
	Skipped bool
	// Synced lists the server ids of reports committed in this pass.
	Synced []string
	// Retrying counts drafts left pending after a transient failure.
	Retrying int
	// Failed counts drafts whose payload could not be decoded.
	Failed int
	// Remaining is the queue length after the pass.
	Remaining int
}

type Coordinator struct {
	queue     Queue
	promoter  AttachmentPromoter
	records   RecordCommitter
	notifier  notify.Notifier
	refresher Refresher
	clock     SyncClock
	logger    logging.Logger

	draftTimeout time.Duration
	now          func() time.Time
	inFlight     atomic.Bool
}

type CoordinatorOption func(*Coordinator)

func WithRefresher(r Refresher) CoordinatorOption {
	return func(c *Coordinator) { c.refresher = r }
}

func WithSyncClock(s SyncClock) CoordinatorOption {
	return func(c *Coordinator) { c.clock = s }
}

// WithDraftTimeout bounds the time spent on a single draft.
func WithDraftTimeout(d time.Duration) CoordinatorOption {
	return func(c *Coordinator) { c.draftTimeout = d }
}

func NewCoordinator(queue Queue, promoter AttachmentPromoter, records RecordCommitter, notifier notify.Notifier, logger logging.Logger, opts ...CoordinatorOption) *Coordinator {
	c := &Coordinator{
		queue:    queue,
		promoter: promoter,
		records:  records,
		notifier: notifier,
		logger:   logger.With("module", "coordinator"),
		now:      time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Running reports whether a pass is in flight.
func (c *Coordinator) Running() bool { return c.inFlight.Load() }

// SyncAll drives every pending draft through promotion and commit, one at a
// time. A call made while another pass runs returns immediately with
// Skipped set. Per-draft failures are recorded on the draft and do not stop
// the pass; only a failure to list the queue is returned as an error.
func (c *Coordinator) SyncAll(ctx context.Context) (SyncResult, error) {
	if !c.inFlight.CompareAndSwap(false, true) {
		c.logger.Debug(ctx, "sync pass already running, trigger dropped")
		return SyncResult{Skipped: true}, nil
	}
	defer c.inFlight.Store(false)

	c.logger.Info(ctx, "sync pass started")
	var res SyncResult
	var listErr error

	for d, err := range c.queue.ListPending(ctx) {
		if err != nil {
			listErr = err
			break
		}
		c.syncOne(ctx, d, &res)
		if ctx.Err() != nil {
			break
		}
	}

	if listErr != nil && !errors.Is(listErr, context.Canceled) && !errors.Is(listErr, context.DeadlineExceeded) {
		c.logger.Error(ctx, "sync pass aborted", "error", listErr)
		c.notifier.Notify(notify.KindError, "sync aborted: "+listErr.Error())
		return res, fmt.Errorf("list pending drafts: %w", listErr)
	}

	c.finish(ctx, &res)
	return res, nil
}

func (c *Coordinator) syncOne(ctx context.Context, d *models.Draft, res *SyncResult) {
	unlock, ok := c.queue.TryLock(d.LocalID)
	if !ok {
		return
	}
	defer unlock()

	log := c.logger.With("draft", d.LocalID, "site", d.SiteID)

	dctx := ctx
	if c.draftTimeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, c.draftTimeout)
		defer cancel()
	}

	if _, err := c.promoter.Promote(dctx, d); err != nil {
		if errors.Is(err, common.ErrInvalidAttachment) {
			log.Error(ctx, "attachment cannot be decoded", "error", err)
			c.recordFailure(ctx, d, models.SyncStateFailed, err)
			c.notifier.Notify(notify.KindError, fmt.Sprintf("report for %s has an unreadable attachment", d.SiteID))
			res.Failed++
			return
		}
		log.Warn(ctx, "attachment upload failed", "error", err)
		c.recordFailure(ctx, d, models.SyncStatePending, err)
		c.notifier.Notify(notify.KindWarning, "attachment upload failed")
		res.Retrying++
		return
	}

	report, err := d.ToStructuredReport()
	if err == nil {
		var id string
		id, err = c.records.Commit(dctx, report)
		if err == nil {
			c.committed(ctx, d, id, res)
			return
		}
	}

	err = fmt.Errorf("%w: %w", common.ErrRecordCommitFailed, err)
	log.Warn(ctx, "record commit failed", "error", err)
	c.recordFailure(ctx, d, models.SyncStatePending, err)
	c.notifier.Notify(notify.KindWarning, "record commit failed")
	res.Retrying++
}

func (c *Coordinator) committed(ctx context.Context, d *models.Draft, id string, res *SyncResult) {
	res.Synced = append(res.Synced, id)

	// The server already holds the report; a failed local delete only means
	// it is committed again on the next pass. Cancelling the pass must not
	// cause that.
	if err := c.queue.Remove(context.WithoutCancel(ctx), d.LocalID); err != nil {
		c.logger.Error(ctx, "committed draft could not be removed", "draft", d.LocalID, "report", id, "error", err)
	}

	c.logger.Info(ctx, "report committed", "draft", d.LocalID, "report", id, "site", d.SiteID)
	c.notifier.Notify(notify.KindSuccess, fmt.Sprintf("report for %s synced", d.SiteID))
	if c.refresher != nil {
		c.refresher.Refresh(d.SiteID)
	}
}

func (c *Coordinator) recordFailure(ctx context.Context, d *models.Draft, state models.SyncState, cause error) {
	attempts := d.Attempts + 1
	msg := cause.Error()
	p := drafts.Patch{SyncState: &state, Attempts: &attempts, LastError: &msg}

	// Bookkeeping survives a cancelled pass.
	if err := c.queue.UpdatePartial(context.WithoutCancel(ctx), d.LocalID, p); err != nil {
		c.logger.Error(ctx, "failed to record sync failure", "draft", d.LocalID, "error", err)
		return
	}
	d.SyncState, d.Attempts, d.LastError = state, attempts, msg
}

func (c *Coordinator) finish(ctx context.Context, res *SyncResult) {
	n, err := c.queue.Count(context.WithoutCancel(ctx))
	if err != nil {
		n = res.Retrying + res.Failed
	}
	res.Remaining = n

	if c.clock != nil {
		if err := c.clock.SetLastSyncAt(context.WithoutCancel(ctx), c.now()); err != nil {
			c.logger.Warn(ctx, "failed to record last sync time", "error", err)
		}
	}

	c.logger.Info(ctx, "sync pass finished", "synced", len(res.Synced), "retrying", res.Retrying, "failed", res.Failed, "remaining", res.Remaining)

	if len(res.Synced) > 0 {
		c.notifier.Notify(notify.KindSuccess, fmt.Sprintf("%d synced", len(res.Synced)))
	}
	if res.Remaining > 0 {
		c.notifier.Notify(notify.KindInfo, fmt.Sprintf("%d still pending, will retry", res.Remaining))
	}
}

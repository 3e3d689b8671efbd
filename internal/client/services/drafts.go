package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/logging"
)

// Store is the part of the local draft store used by the capture flow.
type Store interface {
	Append(ctx context.Context, d *models.Draft) (string, error)
	Discard(ctx context.Context, localID string) error
	Count(ctx context.Context) (int, error)
	CountBySite(ctx context.Context, siteID string) (int, error)
}

type RecordDeleter interface {
	Delete(ctx context.Context, id string) error
}

// OnlineState reports the current connectivity.
type OnlineState interface {
	Online() bool
}

type LastSync interface {
	LastSyncAt(ctx context.Context) (time.Time, error)
}

type Status struct {
	Online      bool
	Pending     int
	SiteID      string
	SitePending int
	Syncing     bool
	LastSyncAt  time.Time
}

type DraftService struct {
	store   Store
	records RecordDeleter
	syncer  Syncer
	online  OnlineState
	last    LastSync
	logger  logging.Logger
	now     func() time.Time

	wg sync.WaitGroup
}

func NewDraftService(store Store, records RecordDeleter, syncer Syncer, online OnlineState, last LastSync, logger logging.Logger) *DraftService {
	return &DraftService{
		store:   store,
		records: records,
		syncer:  syncer,
		online:  online,
		last:    last,
		logger:  logger.With("module", "drafts"),
		now:     time.Now,
	}
}

// Save validates and queues d. Storage errors are returned to the caller.
// When the device is online a sync pass is started in the background; ctx
// must outlive it.
func (s *DraftService) Save(ctx context.Context, d *models.Draft) (string, error) {
	d.Normalize(s.now())
	if err := d.Validate(); err != nil {
		return "", err
	}

	id, err := s.store.Append(ctx, d)
	if err != nil {
		s.logger.Error(ctx, "draft not saved", "site", d.SiteID, "error", err)
		return "", err
	}
	s.logger.Info(ctx, "draft saved", "draft", id, "site", d.SiteID, "inline", d.InlineCount())

	if s.online.Online() {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if _, err := s.syncer.SyncAll(ctx); err != nil {
				s.logger.Error(ctx, "background sync failed", "error", err)
			}
		}()
	}
	return id, nil
}

func (s *DraftService) Discard(ctx context.Context, localID string) error {
	if err := s.store.Discard(ctx, localID); err != nil {
		return fmt.Errorf("discard draft: %w", err)
	}
	s.logger.Info(ctx, "draft discarded", "draft", localID)
	return nil
}

// DeleteRemote deletes a committed report on the server.
func (s *DraftService) DeleteRemote(ctx context.Context, id string) error {
	if !s.online.Online() {
		return common.ErrNetworkUnavailable
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	s.logger.Info(ctx, "report deleted", "report", id)
	return nil
}

// Resync runs a pass in the foreground. It is refused while offline.
func (s *DraftService) Resync(ctx context.Context) (SyncResult, error) {
	if !s.online.Online() {
		return SyncResult{}, common.ErrNetworkUnavailable
	}
	return s.syncer.SyncAll(ctx)
}

// Status reports the queue badge. siteID may be empty; otherwise the count of
// drafts for that site is included.
func (s *DraftService) Status(ctx context.Context, siteID string) (Status, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return Status{}, err
	}
	st := Status{Online: s.online.Online(), Pending: n, SiteID: siteID}
	if siteID != "" {
		if st.SitePending, err = s.store.CountBySite(ctx, siteID); err != nil {
			return Status{}, err
		}
	}
	if r, ok := s.syncer.(interface{ Running() bool }); ok {
		st.Syncing = r.Running()
	}
	if s.last != nil {
		if st.LastSyncAt, err = s.last.LastSyncAt(ctx); err != nil {
			return Status{}, err
		}
	}
	return st, nil
}

// Wait blocks until background passes started by Save return.
func (s *DraftService) Wait() { s.wg.Wait() }

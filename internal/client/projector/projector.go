// Package projector builds the single list the field CLI renders for a site:
// committed reports from the record server next to drafts still waiting in
// the local queue, each tagged with where it lives.
package projector

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/logging"
)

type Provenance string

const (
	ProvenanceRemote Provenance = "remote"
	ProvenanceLocal  Provenance = "local"
)

// DisplayRecord is one row of a site view. Exactly one of Report and Draft
// is set, matching Provenance.
type DisplayRecord struct {
	Provenance Provenance
	ID         string
	SiteID     string
	CapturedAt time.Time

	Report *models.StructuredReport
	Draft  *models.Draft
}

// Editable reports whether the record may be changed through the record API.
func (r DisplayRecord) Editable() bool { return r.Provenance == ProvenanceRemote }

// RemoteDeletable reports whether the record may be deleted on the server.
// Local drafts can only be discarded from the device queue.
func (r DisplayRecord) RemoteDeletable() bool { return r.Provenance == ProvenanceRemote }

// AwaitingSync is true for drafts not yet committed.
func (r DisplayRecord) AwaitingSync() bool { return r.Provenance == ProvenanceLocal }

type View struct {
	SiteID  string
	Records []DisplayRecord
	// Stale is set when the remote list could not be fetched and the last
	// cached copy was used instead.
	Stale     bool
	FetchedAt time.Time
}

// Merge combines both sources without converting one into the other. Local
// drafts come first, each group newest first.
func Merge(committed []models.StructuredReport, pending []*models.Draft) []DisplayRecord {
	out := make([]DisplayRecord, 0, len(committed)+len(pending))

	local := make([]DisplayRecord, 0, len(pending))
	for _, d := range pending {
		local = append(local, DisplayRecord{
			Provenance: ProvenanceLocal,
			ID:         d.LocalID,
			SiteID:     d.SiteID,
			CapturedAt: d.CapturedAt,
			Draft:      d,
		})
	}
	remote := make([]DisplayRecord, 0, len(committed))
	for i := range committed {
		r := &committed[i]
		remote = append(remote, DisplayRecord{
			Provenance: ProvenanceRemote,
			ID:         r.ID,
			SiteID:     r.SiteID,
			CapturedAt: r.CapturedAt,
			Report:     r,
		})
	}

	newestFirst(local)
	newestFirst(remote)
	out = append(out, local...)
	return append(out, remote...)
}

func newestFirst(rs []DisplayRecord) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].CapturedAt.After(rs[j].CapturedAt) })
}

type RemoteLister interface {
	List(ctx context.Context, siteID string) ([]models.StructuredReport, error)
}

type LocalLister interface {
	ListBySite(ctx context.Context, siteID string) ([]*models.Draft, error)
}

type cached struct {
	reports []models.StructuredReport
	at      time.Time
}

type Projector struct {
	remote RemoteLister
	local  LocalLister
	logger logging.Logger
	now    func() time.Time

	mu        sync.Mutex
	cache     map[string]cached
	listeners map[int]func(siteID string)
	nextID    int
}

func New(remote RemoteLister, local LocalLister, logger logging.Logger) *Projector {
	return &Projector{
		remote:    remote,
		local:     local,
		logger:    logger.With("module", "projector"),
		now:       time.Now,
		cache:     map[string]cached{},
		listeners: map[int]func(string){},
	}
}

// Project returns the current view for siteID. A failing remote list falls
// back to the last successful one for the site and marks the view stale.
// Local read errors are returned.
func (p *Projector) Project(ctx context.Context, siteID string) (View, error) {
	pending, err := p.local.ListBySite(ctx, siteID)
	if err != nil {
		return View{}, fmt.Errorf("list drafts: %w", err)
	}

	view := View{SiteID: siteID}
	committed, err := p.remote.List(ctx, siteID)
	if err != nil {
		p.logger.Warn(ctx, "remote list failed, using cached", "site", siteID, "error", err)
		p.mu.Lock()
		c := p.cache[siteID]
		p.mu.Unlock()
		committed = c.reports
		view.Stale = true
		view.FetchedAt = c.at
	} else {
		view.FetchedAt = p.now()
		p.mu.Lock()
		p.cache[siteID] = cached{reports: committed, at: view.FetchedAt}
		p.mu.Unlock()
	}

	view.Records = Merge(committed, pending)
	return view, nil
}

// Refresh drops the cached remote list for siteID and tells subscribers the
// site changed.
func (p *Projector) Refresh(siteID string) {
	p.mu.Lock()
	delete(p.cache, siteID)
	fns := make([]func(string), 0, len(p.listeners))
	for _, fn := range p.listeners {
		fns = append(fns, fn)
	}
	p.mu.Unlock()

	for _, fn := range fns {
		fn(siteID)
	}
}

func (p *Projector) Subscribe(fn func(siteID string)) (cancel func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id := p.nextID
	p.nextID++
	p.listeners[id] = fn
	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.listeners, id)
	}
}

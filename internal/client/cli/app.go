package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/fieldsync/internal/client/client"
	"github.com/dmitrijs2005/fieldsync/internal/client/config"
	"github.com/dmitrijs2005/fieldsync/internal/client/connectivity"
	"github.com/dmitrijs2005/fieldsync/internal/client/models"
	"github.com/dmitrijs2005/fieldsync/internal/client/notify"
	"github.com/dmitrijs2005/fieldsync/internal/client/objectstore"
	"github.com/dmitrijs2005/fieldsync/internal/client/projector"
	"github.com/dmitrijs2005/fieldsync/internal/client/promoter"
	"github.com/dmitrijs2005/fieldsync/internal/client/services"
	"github.com/dmitrijs2005/fieldsync/internal/common"
	"github.com/dmitrijs2005/fieldsync/internal/logging"

	_ "modernc.org/sqlite"
)

type draftsAPI interface {
	Save(ctx context.Context, d *models.Draft) (string, error)
	Discard(ctx context.Context, localID string) error
	DeleteRemote(ctx context.Context, id string) error
	Resync(ctx context.Context) (services.SyncResult, error)
	Status(ctx context.Context, siteID string) (services.Status, error)
	Wait()
}

type viewer interface {
	Project(ctx context.Context, siteID string) (projector.View, error)
}

type App struct {
	config *config.Config
	logger logging.Logger

	drafts  draftsAPI
	viewer  viewer
	online  services.OnlineState
	toasts  *notify.Queue
	monitor *connectivity.Monitor
	signal  connectivity.Signal

	// pending badge, recomputed only after the queue changes
	pending      atomic.Int64
	pendingDirty atomic.Bool
	counter      interface {
		Count(ctx context.Context) (int, error)
	}

	siteMu sync.RWMutex
	site   string
	reader *bufio.Reader
	out    io.Writer

	closeOnce sync.Once
	closers   []func() error
}

// NewApp opens the local queue and wires the sync engine.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}
	a := &App{
		config: c,
		logger: logger,
		toasts: notify.NewQueue(0),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
	a.closers = append(a.closers, db.Close)

	if err := a.wire(ctx, db); err != nil {
		_ = a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) wire(ctx context.Context, db *sql.DB) error {
	repos, err := client.NewRepositories(ctx, db)
	if err != nil {
		return err
	}
	deviceID, err := repos.Metadata.DeviceID(ctx)
	if err != nil {
		return err
	}

	var api client.Client
	api, err = client.NewGRPCClient(a.config.ServerEndpointAddr, client.WithDeviceID(deviceID))
	if err != nil {
		return fmt.Errorf("error creating record client: %w", err)
	}
	a.closers = append(a.closers, api.Close)

	uploader, err := objectstore.New(ctx, a.config.ObjectStore, api, http.DefaultClient)
	if err != nil {
		return fmt.Errorf("error creating object store: %w", err)
	}
	if c, ok := uploader.(io.Closer); ok {
		a.closers = append(a.closers, c.Close)
	}

	proj := projector.New(api, repos.Drafts, a.logger)
	prom := promoter.New(uploader, repos.Drafts, a.logger)
	coord := services.NewCoordinator(repos.Drafts, prom, api, a.toasts, a.logger,
		services.WithRefresher(proj),
		services.WithSyncClock(repos.Metadata),
		services.WithDraftTimeout(a.config.SyncTimeout))

	a.monitor = connectivity.NewMonitor(coord, a.logger)
	a.online = a.monitor
	a.drafts = services.NewDraftService(repos.Drafts, api, coord, a.monitor, repos.Metadata, a.logger)
	a.viewer = proj
	a.counter = repos.Drafts

	if a.config.StatusFile != "" {
		a.signal = connectivity.FileSignal{Path: a.config.StatusFile}
	} else {
		a.signal = connectivity.PingProbe{Pinger: api, Interval: a.config.OnlineCheckInterval}
	}

	a.pendingDirty.Store(true)
	repos.Drafts.Subscribe(func(string) { a.pendingDirty.Store(true) })
	proj.Subscribe(func(siteID string) {
		if siteID == a.currentSite() {
			a.toasts.Notify(notify.KindInfo, "reports for "+siteID+" changed, type list to refresh")
		}
	})

	a.logger.Info(ctx, "field client ready", "device", deviceID, "db", a.config.DBPath, "server", a.config.ServerEndpointAddr)
	return nil
}

// Run starts the connectivity watcher and blocks in the REPL until the user
// exits, then waits for background passes.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		a.monitor.Wait()
		a.drafts.Wait()
		_ = a.Close()
	}()

	go func() {
		if err := a.monitor.Run(ctx, a.signal); err != nil {
			a.logger.Error(ctx, "connectivity watcher stopped", "error", err)
		}
	}()

	fmt.Fprintln(a.out, "FieldSync field client (type 'help' for commands)")
	runREPL(ctx, a, a.promptStatus, func() string { return notify.Render(a.toasts.Drain()) }, bufio.NewScanner(a.reader))
}

func (a *App) Close() error {
	var errs []error
	a.closeOnce.Do(func() {
		for i := len(a.closers) - 1; i >= 0; i-- {
			errs = append(errs, a.closers[i]())
		}
	})
	return errors.Join(errs...)
}

func (a *App) currentSite() string {
	a.siteMu.RLock()
	defer a.siteMu.RUnlock()
	return a.site
}

func (a *App) SelectSite(_ context.Context, siteID string) error {
	a.siteMu.Lock()
	a.site = siteID
	a.siteMu.Unlock()
	fmt.Fprintf(a.out, "Site %s selected\n", siteID)
	return nil
}

func (a *App) Sync(ctx context.Context) error {
	res, err := a.drafts.Resync(ctx)
	if errors.Is(err, common.ErrNetworkUnavailable) {
		return fmt.Errorf("sync is disabled while offline")
	}
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Fprintln(a.out, "A sync pass is already running")
		return nil
	}
	fmt.Fprintf(a.out, "%d synced, %d pending\n", len(res.Synced), res.Remaining)
	return nil
}

func (a *App) Discard(ctx context.Context, localID string) error {
	if err := a.drafts.Discard(ctx, localID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Draft %s discarded\n", localID)
	return nil
}

func (a *App) Delete(ctx context.Context, remoteID string) error {
	err := a.drafts.DeleteRemote(ctx, remoteID)
	if errors.Is(err, common.ErrNetworkUnavailable) {
		return fmt.Errorf("delete is disabled while offline")
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Report %s deleted\n", remoteID)
	return nil
}

func (a *App) pendingBadge() int {
	if a.counter == nil {
		return 0
	}
	if a.pendingDirty.CompareAndSwap(true, false) {
		n, err := a.counter.Count(context.Background())
		if err != nil {
			a.pendingDirty.Store(true)
			return int(a.pending.Load())
		}
		a.pending.Store(int64(n))
	}
	return int(a.pending.Load())
}

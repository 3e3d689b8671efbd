// Package connectivity tracks whether the record server is reachable and
// starts a sync pass each time the device comes back online.
package connectivity

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fieldsync/internal/client/services"
	"github.com/dmitrijs2005/fieldsync/internal/logging"
)

// Signal produces connectivity observations. The channel is closed when the
// source stops.
type Signal interface {
	Watch(ctx context.Context) (<-chan bool, error)
}

type Monitor struct {
	syncer services.Syncer
	logger logging.Logger

	mu     sync.RWMutex
	online bool
	wg     sync.WaitGroup
}

// NewMonitor returns a monitor that starts offline.
func NewMonitor(syncer services.Syncer, logger logging.Logger) *Monitor {
	return &Monitor{syncer: syncer, logger: logger.With("module", "connectivity")}
}

func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// Set records the connectivity state. Only an offline to online transition
// starts a pass; it runs in a goroutine joined by Wait, under ctx.
func (m *Monitor) Set(ctx context.Context, online bool) {
	m.mu.Lock()
	prev := m.online
	m.online = online
	if online && !prev {
		m.wg.Add(1)
	}
	m.mu.Unlock()

	if prev == online {
		return
	}
	if !online {
		m.logger.Info(ctx, "switched to offline mode")
		return
	}

	m.logger.Info(ctx, "switched to online mode")
	go func() {
		defer m.wg.Done()
		res, err := m.syncer.SyncAll(ctx)
		if err != nil {
			m.logger.Error(ctx, "sync after reconnect failed", "error", err)
			return
		}
		m.logger.Debug(ctx, "sync after reconnect done", "synced", len(res.Synced), "skipped", res.Skipped)
	}()
}

// Run feeds observations from sig into Set until ctx is done or the source
// closes.
func (m *Monitor) Run(ctx context.Context, sig Signal) error {
	ch, err := sig.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case online, ok := <-ch:
			if !ok {
				return nil
			}
			m.Set(ctx, online)
		}
	}
}

// Wait blocks until every pass started by Set has returned.
func (m *Monitor) Wait() { m.wg.Wait() }

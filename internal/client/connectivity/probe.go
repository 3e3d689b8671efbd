package connectivity

import (
	"context"
	"time"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

const defaultPingTimeout = 3 * time.Second

// PingProbe checks the record server at a fixed interval. The first check
// runs immediately.
type PingProbe struct {
	Pinger   Pinger
	Interval time.Duration
	Timeout  time.Duration
}

func (p PingProbe) Watch(ctx context.Context) (<-chan bool, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	out := make(chan bool)

	go func() {
		defer close(out)
		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		for {
			pctx, cancel := context.WithTimeout(ctx, timeout)
			err := p.Pinger.Ping(pctx)
			cancel()

			select {
			case out <- err == nil:
			case <-ctx.Done():
				return
			}

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Package metadata stores small device-level key/value settings such as the
// device id and the time of the last completed sync pass.
package metadata

import (
	"context"
	"time"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error

	// DeviceID returns the persistent device id, creating it on first use.
	DeviceID(ctx context.Context) (string, error)
	// LastSyncAt returns the zero time if no pass has completed yet.
	LastSyncAt(ctx context.Context) (time.Time, error)
	SetLastSyncAt(ctx context.Context, t time.Time) error
}

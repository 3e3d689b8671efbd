// Package notify collects user-facing notifications raised by background sync
// passes. Producers never block; the CLI drains the queue before each prompt.
package notify

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

type Notification struct {
	Kind    Kind
	Message string
	At      time.Time
}

// Notifier accepts notifications without blocking.
type Notifier interface {
	Notify(kind Kind, message string)
}

const defaultCapacity = 64

// Queue is a bounded FIFO of notifications. When full, the oldest entry is
// dropped.
type Queue struct {
	mu    sync.Mutex
	items []Notification
	limit int
	now   func() time.Time
}

func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = defaultCapacity
	}
	return &Queue{limit: limit, now: time.Now}
}

func (q *Queue) Notify(kind Kind, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == q.limit {
		q.items = q.items[1:]
	}
	q.items = append(q.items, Notification{Kind: kind, Message: message, At: q.now()})
}

// Drain returns and clears all queued notifications in arrival order.
func (q *Queue) Drain() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

type nop struct{}

func (nop) Notify(Kind, string) {}

// Discard is a Notifier that drops everything.
var Discard Notifier = nop{}

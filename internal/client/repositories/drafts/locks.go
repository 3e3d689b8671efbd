package drafts

import "sync"

type lockTable struct {
	mu     sync.Mutex
	locked map[string]struct{}
}

func newLockTable() *lockTable {
	return &lockTable{locked: make(map[string]struct{})}
}

func (t *lockTable) tryLock(id string) (func(), bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, busy := t.locked[id]; busy {
		return nil, false
	}
	t.locked[id] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.locked, id)
			t.mu.Unlock()
		})
	}, true
}

func (t *lockTable) isLocked(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, busy := t.locked[id]
	return busy
}

type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func(string)
}

func (l *listeners) add(fn func(string)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func(string))
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	return func() {
		l.mu.Lock()
		delete(l.fns, id)
		l.mu.Unlock()
	}
}

func (l *listeners) notify(siteID string) {
	l.mu.Lock()
	fns := make([]func(string), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()

	for _, fn := range fns {
		fn(siteID)
	}
}

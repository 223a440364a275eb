package server

import (
	"sync"

	"github.com/google/uuid"
)

// busyRegistry tracks which records have a draft generation in flight, per
// action kind. A second request for the same record and kind is rejected
// instead of queued.
type busyRegistry struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func newBusyRegistry() *busyRegistry {
	return &busyRegistry{active: make(map[string]struct{})}
}

// acquire marks the record busy for an action. It reports false when the
// record is already busy.
func (b *busyRegistry) acquire(action string, id uuid.UUID) bool {
	key := action + ":" + id.String()
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, busy := b.active[key]; busy {
		return false
	}
	b.active[key] = struct{}{}
	return true
}

func (b *busyRegistry) release(action string, id uuid.UUID) {
	key := action + ":" + id.String()
	b.mu.Lock()
	delete(b.active, key)
	b.mu.Unlock()
}

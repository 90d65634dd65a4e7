package memory

import (
	"context"
	"sync"
	"time"
)

// Registry is a process-local order registry guarded by a read/write mutex.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

// NewRegistry creates an empty in-memory registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]time.Time)}
}

// Record stores the creation time, replacing any previous value.
func (r *Registry) Record(_ context.Context, orderID string, createdAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[orderID] = createdAt
	return nil
}

// Observe returns the recorded creation time if present.
func (r *Registry) Observe(_ context.Context, orderID string) (time.Time, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ts, ok := r.entries[orderID]
	return ts, ok, nil
}

// Evict drops entries recorded before cutoff.
func (r *Registry) Evict(_ context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, ts := range r.entries {
		if ts.Before(cutoff) {
			delete(r.entries, id)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of tracked orders.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

func (r *Registry) Close() error { return nil }

func (r *Registry) Name() string { return "memory" }

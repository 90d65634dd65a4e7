package test

import (
	"context"
	"sync"
	"time"
)

// RegistryStub records registry calls and can inject errors.
type RegistryStub struct {
	mu       sync.Mutex
	Entries  map[string]int64
	Err      error
	Evicted  int
	Cutoffs  []int64
	Observed []string
}

// Record stores the timestamp unless Err is set.
func (s *RegistryStub) Record(_ context.Context, orderID string, createdAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if s.Entries == nil {
		s.Entries = make(map[string]int64)
	}
	s.Entries[orderID] = createdAt.Unix()
	return nil
}

// Observe returns the stored timestamp and remembers the lookup.
func (s *RegistryStub) Observe(_ context.Context, orderID string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Observed = append(s.Observed, orderID)
	if s.Err != nil {
		return time.Time{}, false, s.Err
	}
	ts, ok := s.Entries[orderID]
	if !ok {
		return time.Time{}, false, nil
	}
	return time.Unix(ts, 0), true, nil
}

// Evict remembers the cutoff and reports Evicted.
func (s *RegistryStub) Evict(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cutoffs = append(s.Cutoffs, cutoff.Unix())
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Evicted, nil
}

// Recorded returns the stored timestamp for orderID.
func (s *RegistryStub) Recorded(orderID string) (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.Entries[orderID]
	return ts, ok
}

// EvictCalls reports how many times Evict ran.
func (s *RegistryStub) EvictCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Cutoffs)
}

func (s *RegistryStub) Close() error { return nil }

func (s *RegistryStub) Name() string { return "stub" }

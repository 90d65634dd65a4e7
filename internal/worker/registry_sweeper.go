package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Evictor exposes the subset of application functionality required by the sweeper.
type Evictor interface {
	EvictExpiredOrders(ctx context.Context) (int, error)
}

// RegistrySweeper periodically drops registry entries past the validity window.
type RegistrySweeper struct {
	evictor  Evictor
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewRegistrySweeper constructs a sweeper running every interval.
func NewRegistrySweeper(evictor Evictor, interval time.Duration, logger *slog.Logger) *RegistrySweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &RegistrySweeper{
		evictor:  evictor,
		interval: interval,
		logger:   logger,
	}
}

// Start launches background sweeping. Calling Start twice is a no-op.
func (s *RegistrySweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(runCtx)
}

// Stop cancels the loop and waits for it to exit.
func (s *RegistrySweeper) Stop() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *RegistrySweeper) run(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *RegistrySweeper) sweep(ctx context.Context) {
	removed, err := s.evictor.EvictExpiredOrders(ctx)
	if err != nil {
		s.logger.Error("registry eviction failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("registry entries evicted", slog.Int("count", removed))
	}
}

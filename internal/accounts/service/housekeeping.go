package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store"
)

// HousekeepingService periodically hard-deletes users that have been
// soft-deleted for longer than the retention period.
type HousekeepingService struct {
	Store     store.Store
	Logger    *slog.Logger
	Interval  time.Duration
	Retention time.Duration
	Now       func() time.Time

	// Internal channels for lifecycle management
	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(
	store store.Store,
	logger *slog.Logger,
	interval, retention time.Duration,
) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:     store,
		Logger:    logger,
		Interval:  interval,
		Retention: retention,
		Now:       time.Now,
		stopCh:    make(chan struct{}),
		doneCh:    make(chan struct{}),
	}
}

// Start begins the background worker that periodically runs cleanup.
// Call Stop() to gracefully shutdown the worker. Starting twice, or after
// Stop, does nothing.
func (s *HousekeepingService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.stopped {
		return
	}
	s.started = true

	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval, "retention", s.Retention)
}

// Stop shuts down the background worker, blocking until any in-progress
// cleanup finishes. It is safe to call without Start and more than once.
func (s *HousekeepingService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	running := s.started
	close(s.stopCh)
	s.mu.Unlock()

	if running {
		<-s.doneCh
	}
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup purges users deleted before now minus the retention period and
// returns how many rows went. A non-positive retention keeps everything.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	if s.Retention <= 0 {
		return 0
	}

	cutoff := s.Now().Add(-s.Retention)
	n, err := s.Store.Users().PurgeDeletedUsers(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to purge deleted users", "error", err)
		return 0
	}

	s.Logger.Info("housekeeping cleanup completed", "purged_users", n, "cutoff", cutoff)
	return n
}

package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"board_syncer/internal/domain"
	"board_syncer/internal/service"
)

// Syncer defines the interface for board updates.
type Syncer interface {
	Bootstrap(ctx context.Context) (*domain.SyncStats, error)
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

// Scheduler polls the board on a fixed interval. Every tick runs in its own
// goroutine; a tick that finds an update still in flight is dropped by the
// Syncer.
type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	logger   *slog.Logger

	needsBootstrap atomic.Bool
	wg             sync.WaitGroup
}

func NewScheduler(syncer Syncer, interval time.Duration, logger *slog.Logger) *Scheduler {
	s := &Scheduler{
		syncer:   syncer,
		interval: interval,
		logger:   logger,
	}
	s.needsBootstrap.Store(true)
	return s
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				s.tick(ctx)
			}()
		}
	}
}

// RunOnce bootstraps the board and runs a single sync cycle.
func (s *Scheduler) RunOnce(ctx context.Context) error {
	if _, err := s.syncer.Bootstrap(ctx); err != nil {
		return err
	}
	_, err := s.syncer.Sync(ctx)
	if errors.Is(err, service.ErrPrecondition) {
		// nothing was displayed, so there is nothing to sync from
		return nil
	}
	return err
}

func (s *Scheduler) tick(ctx context.Context) {
	if s.needsBootstrap.Load() {
		s.runBootstrap(ctx)
		return
	}
	s.runSync(ctx)
}

func (s *Scheduler) runBootstrap(ctx context.Context) {
	stats, err := s.syncer.Bootstrap(ctx)
	if err != nil {
		if errors.Is(err, service.ErrPrecondition) {
			s.needsBootstrap.Store(false)
			return
		}
		s.logger.Error("bootstrap failed", "error", err)
		return
	}

	switch stats.Outcome {
	case domain.OutcomeApplied:
		s.needsBootstrap.Store(false)
	case domain.OutcomeEmpty:
		s.logger.Info("board is empty, bootstrapping again on next tick")
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	_, err := s.syncer.Sync(ctx)
	if errors.Is(err, service.ErrPrecondition) {
		s.logger.Warn("sync before bootstrap, bootstrapping on next tick", "error", err)
		s.needsBootstrap.Store(true)
		return
	}
	if err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}

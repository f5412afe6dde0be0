// Package scheduler runs periodic maintenance jobs on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateSchedule checks a five-field cron expression.
func ValidateSchedule(schedule string) error {
	if _, err := parser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return nil
}

// Pruner removes expired cache entries.
type Pruner interface {
	MaxAge() time.Duration
	Prune() (int, error)
}

// CachePruneScheduler periodically removes expired translations from the cache.
type CachePruneScheduler struct {
	pruner   Pruner
	schedule string
	logger   *zap.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewCachePruneScheduler(pruner Pruner, schedule string, logger *zap.Logger) *CachePruneScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachePruneScheduler{
		pruner:   pruner,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(cron.WithParser(parser)),
	}
}

// Start schedules the prune job. It does nothing when the cache keeps entries
// forever or no schedule is set. The scheduler stops when ctx is cancelled.
func (s *CachePruneScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}
	if s.pruner.MaxAge() <= 0 || s.schedule == "" {
		s.logger.Info("cache prune scheduler disabled")
		return nil
	}
	if err := ValidateSchedule(s.schedule); err != nil {
		return err
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule prune job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.logger.Info("cache prune scheduler started",
		zap.String("schedule", s.schedule), zap.Duration("max_age", s.pruner.MaxAge()))

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running prune to finish.
func (s *CachePruneScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}
	s.isRunning = false

	s.logger.Info("cache prune scheduler stopped")
}

func (s *CachePruneScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next prune will occur, nil when not running.
func (s *CachePruneScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// RunNow prunes synchronously and returns the number of removed entries.
func (s *CachePruneScheduler) RunNow() int {
	start := time.Now()
	removed, err := s.pruner.Prune()
	if err != nil {
		s.logger.Error("cache prune failed", zap.Error(err))
		return removed
	}
	s.logger.Info("cache pruned", zap.Int("removed", removed), zap.Duration("took", time.Since(start)))
	return removed
}

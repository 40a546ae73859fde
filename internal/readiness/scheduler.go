// Package readiness estimates how prepared a user is for a license
// exam and decides when that estimate is worth recomputing. The
// recomputation aggregates a user's whole answer history, so the
// scheduler batches and debounces it instead of running it on every
// recorded attempt.
package readiness

import (
	"context"
	"sync"
	"time"

	"github.com/jmarlow/hamprep/internal/cache"
	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/streak"
)

// Config tunes the scheduler's trigger policy.
type Config struct {
	// BatchThreshold is the number of recorded attempts that forces a
	// recompute attempt.
	BatchThreshold int

	// Debounce is the minimum gap between two recomputations.
	Debounce time.Duration
}

// DefaultConfig returns the trigger policy used in production.
func DefaultConfig() Config {
	return Config{BatchThreshold: 10, Debounce: 5 * time.Second}
}

// Recomputer performs the expensive readiness recomputation.
type Recomputer interface {
	Recompute(ctx context.Context, userID string, examType question.ExamType) error
}

// Scheduler throttles readiness recomputation for one user session.
// Create one per session; sharing an instance across sessions would
// leak pending counts between users.
type Scheduler struct {
	cfg     Config
	compute Recomputer
	caches  cache.Invalidator
	now     streak.Clock

	mu       sync.Mutex
	pending  int
	lastRun  time.Time
	inFlight bool
}

// NewScheduler creates a scheduler. Zero config fields fall back to
// DefaultConfig values; a nil clock falls back to time.Now.
func NewScheduler(cfg Config, compute Recomputer, caches cache.Invalidator, now streak.Clock) *Scheduler {
	def := DefaultConfig()
	if cfg.BatchThreshold <= 0 {
		cfg.BatchThreshold = def.BatchThreshold
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = def.Debounce
	}
	if now == nil {
		now = time.Now
	}
	return &Scheduler{cfg: cfg, compute: compute, caches: caches, now: now}
}

// NoteAttempts adds n freshly recorded attempts to the pending count.
// When the count reaches the batch threshold it resets to zero and a
// recompute is attempted, subject to the debounce and single-flight
// guards.
func (s *Scheduler) NoteAttempts(ctx context.Context, userID string, examType question.ExamType, n int) error {
	if n <= 0 {
		return nil
	}
	s.mu.Lock()
	s.pending += n
	if s.pending < s.cfg.BatchThreshold {
		s.mu.Unlock()
		return nil
	}
	s.pending = 0
	s.mu.Unlock()
	return s.TryRecompute(ctx, userID, examType)
}

// ForceRecompute attempts a recompute regardless of the pending count.
// Exam completions and quiz batches are high-signal, so they never
// wait for the counter. The debounce and single-flight guards still
// apply.
func (s *Scheduler) ForceRecompute(ctx context.Context, userID string, examType question.ExamType) error {
	return s.TryRecompute(ctx, userID, examType)
}

// TryRecompute runs at most one recomputation at a time and at most
// one per debounce window. A call inside the window skips the
// computation but still invalidates the readiness views, because an
// earlier run may already have written a fresher snapshot. Caches are
// invalidated and the in-flight guard cleared on every exit path of a
// real run, including errors.
func (s *Scheduler) TryRecompute(ctx context.Context, userID string, examType question.ExamType) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil
	}
	if s.now().Sub(s.lastRun) < s.cfg.Debounce {
		s.mu.Unlock()
		s.caches.Invalidate(cache.ViewReadiness, cache.ViewProfileStats)
		return nil
	}
	s.inFlight = true
	s.lastRun = s.now()
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
		s.caches.Invalidate(cache.ViewReadiness, cache.ViewProfileStats)
	}()

	return s.compute.Recompute(ctx, userID, examType)
}

// Pending reports attempts counted toward the next batch trigger.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Package cache coordinates read-side view staleness. Writers mark
// views stale after a successful write; readers check and clear the
// mark when they refetch.
package cache

import "sync"

// View names a cached read-side view.
type View string

const (
	ViewExamResults  View = "exam-results"
	ViewAttempts     View = "attempts"
	ViewProfileStats View = "profile-stats"
	ViewWeeklyGoal   View = "weekly-goal"
	ViewStreak       View = "streak"
	ViewReadiness    View = "readiness"
	ViewBadges       View = "badges"
)

// AttemptViews are the views stale after any recorded attempt. The
// streak view is deliberately absent: it is invalidated only after the
// daily-activity increment is confirmed, so readers never refetch a
// streak the counters don't back yet.
var AttemptViews = []View{ViewExamResults, ViewAttempts, ViewProfileStats, ViewWeeklyGoal}

// Invalidator is the write-side interface components use to mark
// views stale.
type Invalidator interface {
	Invalidate(views ...View)
}

// Coordinator tracks stale views for one user session. A coordinator
// with no user ID ignores all marks, so invalidation during a
// signed-out session is a safe no-op.
type Coordinator struct {
	mu     sync.Mutex
	userID string
	stale  map[View]bool

	// onInvalidate, when set, observes every accepted mark. Tests use
	// it to assert invalidation ordering.
	onInvalidate func(View)
}

// NewCoordinator creates a coordinator for the given user session.
// An empty userID produces an inert coordinator.
func NewCoordinator(userID string) *Coordinator {
	return &Coordinator{
		userID: userID,
		stale:  make(map[View]bool),
	}
}

// OnInvalidate registers an observer for accepted invalidations.
func (c *Coordinator) OnInvalidate(fn func(View)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onInvalidate = fn
}

// Invalidate marks the views stale. Marking an already-stale view is
// harmless, and the call is a no-op without an active user.
func (c *Coordinator) Invalidate(views ...View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.userID == "" {
		return
	}
	for _, v := range views {
		c.stale[v] = true
		if c.onInvalidate != nil {
			c.onInvalidate(v)
		}
	}
}

// IsStale reports whether the view needs a refetch.
func (c *Coordinator) IsStale(v View) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stale[v]
}

// MarkFresh clears the stale mark after a reader refetches the view.
func (c *Coordinator) MarkFresh(v View) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.stale, v)
}

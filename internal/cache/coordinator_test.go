package cache

import "testing"

func TestInvalidateAndRefresh(t *testing.T) {
	c := NewCoordinator("u1")

	if c.IsStale(ViewStreak) {
		t.Error("new coordinator should have no stale views")
	}

	c.Invalidate(ViewStreak, ViewAttempts)
	if !c.IsStale(ViewStreak) || !c.IsStale(ViewAttempts) {
		t.Error("invalidated views should be stale")
	}
	if c.IsStale(ViewBadges) {
		t.Error("untouched view should not be stale")
	}

	c.MarkFresh(ViewStreak)
	if c.IsStale(ViewStreak) {
		t.Error("refreshed view should not be stale")
	}
	if !c.IsStale(ViewAttempts) {
		t.Error("other views should stay stale")
	}
}

func TestInvalidateIsIdempotent(t *testing.T) {
	c := NewCoordinator("u1")

	calls := 0
	c.OnInvalidate(func(View) { calls++ })

	c.Invalidate(ViewReadiness)
	c.Invalidate(ViewReadiness)
	if !c.IsStale(ViewReadiness) {
		t.Error("view should be stale")
	}
	// Double-marking is allowed and observable, but harmless.
	if calls != 2 {
		t.Errorf("observer calls = %d, want 2", calls)
	}
}

func TestNoActiveUserIsNoop(t *testing.T) {
	c := NewCoordinator("")

	called := false
	c.OnInvalidate(func(View) { called = true })

	c.Invalidate(ViewStreak, ViewAttempts, ViewReadiness)
	if called {
		t.Error("invalidation with no active user should not reach the observer")
	}
	if c.IsStale(ViewStreak) {
		t.Error("invalidation with no active user should not mark views")
	}
}

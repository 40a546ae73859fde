package readiness

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmarlow/hamprep/internal/cache"
	"github.com/jmarlow/hamprep/internal/question"
)

// fakeRecomputer counts invocations and can block or fail on demand.
type fakeRecomputer struct {
	mu      sync.Mutex
	calls   int
	err     error
	started chan struct{}
	release chan struct{}
}

func (f *fakeRecomputer) Recompute(ctx context.Context, userID string, examType question.ExamType) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func (f *fakeRecomputer) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeInvalidator counts invalidation calls per view.
type fakeInvalidator struct {
	mu    sync.Mutex
	marks map[cache.View]int
}

func newFakeInvalidator() *fakeInvalidator {
	return &fakeInvalidator{marks: make(map[cache.View]int)}
}

func (f *fakeInvalidator) Invalidate(views ...cache.View) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range views {
		f.marks[v]++
	}
}

func (f *fakeInvalidator) count(v cache.View) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.marks[v]
}

// fakeClock is a settable clock for debounce tests.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestScheduler(rc Recomputer, inv cache.Invalidator, clock *fakeClock) *Scheduler {
	return NewScheduler(Config{BatchThreshold: 10, Debounce: 5 * time.Second}, rc, inv, clock.Now)
}

func TestBatchThresholdTriggersRecompute(t *testing.T) {
	rc := &fakeRecomputer{}
	s := newTestScheduler(rc, newFakeInvalidator(), newFakeClock())
	ctx := context.Background()

	for i := 0; i < 9; i++ {
		if err := s.NoteAttempts(ctx, "u1", question.ExamTechnician, 1); err != nil {
			t.Fatal(err)
		}
	}
	if rc.count() != 0 {
		t.Fatalf("recompute ran after 9 attempts, want 0 runs")
	}

	if err := s.NoteAttempts(ctx, "u1", question.ExamTechnician, 1); err != nil {
		t.Fatal(err)
	}
	if rc.count() != 1 {
		t.Errorf("recompute runs = %d after 10th attempt, want 1", rc.count())
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d after trigger, want 0", s.Pending())
	}
}

func TestBatchCountsWholeBatches(t *testing.T) {
	rc := &fakeRecomputer{}
	s := newTestScheduler(rc, newFakeInvalidator(), newFakeClock())

	if err := s.NoteAttempts(context.Background(), "u1", question.ExamGeneral, 10); err != nil {
		t.Fatal(err)
	}
	if rc.count() != 1 {
		t.Errorf("recompute runs = %d for a 10-attempt batch, want 1", rc.count())
	}
}

func TestDebounceSkipsComputeButInvalidates(t *testing.T) {
	rc := &fakeRecomputer{}
	inv := newFakeInvalidator()
	clock := newFakeClock()
	s := newTestScheduler(rc, inv, clock)
	ctx := context.Background()

	if err := s.TryRecompute(ctx, "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}
	clock.Advance(time.Second)
	if err := s.TryRecompute(ctx, "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}

	if rc.count() != 1 {
		t.Errorf("recompute runs = %d inside debounce window, want 1", rc.count())
	}
	if inv.count(cache.ViewReadiness) != 2 {
		t.Errorf("readiness invalidations = %d, want 2 (both calls refresh the view)", inv.count(cache.ViewReadiness))
	}
}

func TestDebounceExpiryAllowsNextRun(t *testing.T) {
	rc := &fakeRecomputer{}
	clock := newFakeClock()
	s := newTestScheduler(rc, newFakeInvalidator(), clock)
	ctx := context.Background()

	if err := s.TryRecompute(ctx, "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}
	clock.Advance(6 * time.Second)
	if err := s.TryRecompute(ctx, "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}
	if rc.count() != 2 {
		t.Errorf("recompute runs = %d after window expired, want 2", rc.count())
	}
}

func TestSingleFlightRejectsConcurrentRun(t *testing.T) {
	rc := &fakeRecomputer{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	s := newTestScheduler(rc, newFakeInvalidator(), newFakeClock())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		done <- s.TryRecompute(ctx, "u1", question.ExamExtra)
	}()
	<-rc.started

	// Second call while the first is in flight returns immediately
	// without invoking the recomputer.
	if err := s.TryRecompute(ctx, "u1", question.ExamExtra); err != nil {
		t.Fatal(err)
	}
	if rc.count() != 1 {
		t.Errorf("recompute runs = %d with one in flight, want 1", rc.count())
	}

	close(rc.release)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestFailureClearsGuardAndInvalidates(t *testing.T) {
	wantErr := errors.New("backend down")
	rc := &fakeRecomputer{err: wantErr}
	inv := newFakeInvalidator()
	clock := newFakeClock()
	s := newTestScheduler(rc, inv, clock)
	ctx := context.Background()

	if err := s.TryRecompute(ctx, "u1", question.ExamTechnician); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if inv.count(cache.ViewReadiness) != 1 {
		t.Error("failed run must still invalidate the readiness view")
	}

	// Guard must be clear: once the window passes, the next attempt runs.
	clock.Advance(6 * time.Second)
	if err := s.TryRecompute(ctx, "u1", question.ExamTechnician); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if rc.count() != 2 {
		t.Errorf("recompute runs = %d, want 2", rc.count())
	}
}

func TestForceBypassesCounterNotGuards(t *testing.T) {
	rc := &fakeRecomputer{}
	clock := newFakeClock()
	s := newTestScheduler(rc, newFakeInvalidator(), clock)
	ctx := context.Background()

	if err := s.NoteAttempts(ctx, "u1", question.ExamTechnician, 3); err != nil {
		t.Fatal(err)
	}
	if err := s.ForceRecompute(ctx, "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}
	if rc.count() != 1 {
		t.Errorf("forced recompute runs = %d, want 1", rc.count())
	}
	if s.Pending() != 3 {
		t.Errorf("pending = %d, want 3 (force does not reset the counter)", s.Pending())
	}

	// A second force inside the debounce window is still debounced.
	clock.Advance(time.Second)
	if err := s.ForceRecompute(ctx, "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}
	if rc.count() != 1 {
		t.Errorf("recompute runs = %d after debounced force, want 1", rc.count())
	}
}

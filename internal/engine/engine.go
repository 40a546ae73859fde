// Package engine wires the study-session components together: one
// engine per signed-in session owns the recorder, streak tracker,
// badge evaluator, readiness scheduler, and cache coordinator for that
// session's user.
package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/jmarlow/hamprep/internal/badges"
	"github.com/jmarlow/hamprep/internal/cache"
	"github.com/jmarlow/hamprep/internal/explain"
	"github.com/jmarlow/hamprep/internal/picker"
	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/readiness"
	"github.com/jmarlow/hamprep/internal/recorder"
	"github.com/jmarlow/hamprep/internal/store"
	"github.com/jmarlow/hamprep/internal/streak"
	"github.com/jmarlow/hamprep/internal/telemetry"
)

// Options configures a session engine.
type Options struct {
	UserID string
	Store  *store.Store
	Bank   *question.Bank

	// DailyGoal is the streak qualification threshold; zero means the
	// default.
	DailyGoal int

	// Readiness tunes the recompute trigger policy; zero fields mean
	// defaults.
	Readiness readiness.Config

	// Clock is injectable for tests; nil means time.Now.
	Clock streak.Clock

	// Rand drives question selection; nil means a fresh PCG source.
	Rand *rand.Rand

	// Explain is optional; when nil, missed questions go unexplained.
	Explain explain.Provider
}

// Engine is one user session's view of the progress system.
type Engine struct {
	userID string
	st     *store.Store
	bank   *question.Bank
	clock  streak.Clock
	rng    *rand.Rand

	Caches    *cache.Coordinator
	Tracker   *streak.Tracker
	Badges    *badges.Evaluator
	Scheduler *readiness.Scheduler
	Recorder  *recorder.Recorder
	Explainer *explain.Explainer
}

// New builds a session engine. The store and bank are required; an
// empty user ID produces a read-only engine whose writes are silent
// no-ops.
func New(opts Options) (*Engine, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("engine: store is required")
	}
	if opts.Bank == nil {
		return nil, fmt.Errorf("engine: question bank is required")
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	sink := telemetry.NewStoreSink(opts.Store.TelemetryRepo())
	caches := cache.NewCoordinator(opts.UserID)
	tracker := streak.NewTracker(opts.Store.ActivityRepo(), opts.DailyGoal, opts.Clock)
	computer := readiness.NewComputer(opts.Store.AttemptRepo(), opts.Store.ReadinessRepo(), opts.Bank, opts.Clock)
	scheduler := readiness.NewScheduler(opts.Readiness, computer, caches, opts.Clock)
	collector := badges.NewCollector(opts.Store.AttemptRepo(), opts.Store.ExamRepo(), opts.Store.ReadinessRepo(), tracker)
	evaluator := badges.NewEvaluator(opts.Store.BadgeRepo(), collector, opts.Clock)

	rec := recorder.New(recorder.Options{
		UserID:    opts.UserID,
		Attempts:  opts.Store.AttemptRepo(),
		Exams:     opts.Store.ExamRepo(),
		Activity:  opts.Store.ActivityRepo(),
		Caches:    caches,
		Scheduler: scheduler,
		Sink:      sink,
		Clock:     opts.Clock,
	})

	return &Engine{
		userID:    opts.UserID,
		st:        opts.Store,
		bank:      opts.Bank,
		clock:     opts.Clock,
		rng:       rng,
		Caches:    caches,
		Tracker:   tracker,
		Badges:    evaluator,
		Scheduler: scheduler,
		Recorder:  rec,
		Explainer: explain.NewExplainer(opts.Explain),
	}, nil
}

// UserID returns the session's user.
func (e *Engine) UserID() string {
	return e.userID
}

// Bank returns the loaded question bank.
func (e *Engine) Bank() *question.Bank {
	return e.bank
}

// NewCursor creates a practice cursor over the full pool for the exam
// type.
func (e *Engine) NewCursor(t question.ExamType) *picker.Cursor {
	return picker.New(e.bank.Pool(t), e.rng)
}

// NewSubelementCursor creates a cursor scoped to one subelement.
func (e *Engine) NewSubelementCursor(sub string) *picker.Cursor {
	return picker.New(e.bank.SubelementPool(sub), e.rng)
}

// Close releases the engine's resources.
func (e *Engine) Close() error {
	return e.st.Close()
}

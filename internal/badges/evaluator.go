// Package badges evaluates achievement unlock rules against a user's
// aggregated statistics and tracks which unlocks have been
// acknowledged. Unlocking is idempotent; the persisted (user, badge)
// pair is the source of truth, rules only ever add to it.
package badges

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/store"
	"github.com/jmarlow/hamprep/internal/streak"
)

// StatsSource supplies the aggregated stats the unlock rules read.
type StatsSource interface {
	Stats(ctx context.Context, userID string) (Stats, error)
}

// Collector gathers Stats from the persistence layer and the streak
// tracker.
type Collector struct {
	attempts  store.AttemptRepo
	exams     store.ExamRepo
	readiness store.ReadinessRepo
	tracker   *streak.Tracker
}

// NewCollector builds a stats collector over the given repos.
func NewCollector(attempts store.AttemptRepo, exams store.ExamRepo, readiness store.ReadinessRepo, tracker *streak.Tracker) *Collector {
	return &Collector{attempts: attempts, exams: exams, readiness: readiness, tracker: tracker}
}

// Stats aggregates one consistent snapshot for rule evaluation.
func (c *Collector) Stats(ctx context.Context, userID string) (Stats, error) {
	accuracy, total, err := c.attempts.OverallAccuracy(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	passed, completed, err := c.exams.PassCounts(ctx, userID)
	if err != nil {
		return Stats{}, err
	}
	info, err := c.tracker.Info(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		QuestionsAnswered: total,
		QuestionsCorrect:  int(math.Round(accuracy * float64(total))),
		OverallAccuracy:   accuracy,
		ExamsCompleted:    completed,
		ExamsPassed:       passed,
		CurrentStreak:     info.CurrentStreak,
		LongestStreak:     info.LongestStreak,
	}
	for _, et := range question.AllExamTypes() {
		snap, err := c.readiness.Latest(ctx, userID, string(et))
		if err != nil {
			return Stats{}, err
		}
		if snap != nil && snap.ReadinessScore > s.BestReadiness {
			s.BestReadiness = snap.ReadinessScore
		}
	}
	return s, nil
}

// Unlocked pairs a catalog badge with its persisted unlock state.
type Unlocked struct {
	Badge
	UnlockedAt time.Time
	Seen       bool
}

// Evaluator checks unlock rules and serves badge views for one user
// store.
type Evaluator struct {
	catalog []Badge
	repo    store.BadgeRepo
	stats   StatsSource
	now     streak.Clock
}

// NewEvaluator creates an evaluator over the default catalog. A nil
// clock falls back to time.Now.
func NewEvaluator(repo store.BadgeRepo, stats StatsSource, now streak.Clock) *Evaluator {
	if now == nil {
		now = time.Now
	}
	return &Evaluator{catalog: Catalog(), repo: repo, stats: stats, now: now}
}

// Catalog returns the evaluator's badge catalog.
func (e *Evaluator) Catalog() []Badge {
	return e.catalog
}

// CheckForNew evaluates every unlock rule and returns only the badges
// that crossed their condition on this call. Already-unlocked badges
// are never re-reported; calling twice with no intervening activity
// returns nothing the second time. New unlocks start unseen.
func (e *Evaluator) CheckForNew(ctx context.Context, userID string) ([]Unlocked, error) {
	if userID == "" {
		return nil, nil
	}
	s, err := e.stats.Stats(ctx, userID)
	if err != nil {
		return nil, err
	}

	at := e.now()
	var fresh []Unlocked
	for _, b := range e.catalog {
		if !b.Rule(s) {
			continue
		}
		created, err := e.repo.CreateIfMissing(ctx, userID, b.ID, at)
		if err != nil {
			return fresh, err
		}
		if created {
			fresh = append(fresh, Unlocked{Badge: b, UnlockedAt: at})
		}
	}
	return fresh, nil
}

// MarkSeen acknowledges the given unlocks. An empty list is a no-op.
func (e *Evaluator) MarkSeen(ctx context.Context, userID string, badgeIDs []string) error {
	if len(badgeIDs) == 0 {
		return nil
	}
	return e.repo.MarkSeen(ctx, userID, badgeIDs)
}

// Unlocked returns the user's unlocked badges with unlock metadata, in
// catalog order.
func (e *Evaluator) Unlocked(ctx context.Context, userID string) ([]Unlocked, error) {
	unlocks, err := e.repo.Unlocks(ctx, userID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]store.BadgeUnlockRecord, len(unlocks))
	for _, u := range unlocks {
		byID[u.BadgeID] = u
	}
	var out []Unlocked
	for _, b := range e.catalog {
		if u, ok := byID[b.ID]; ok {
			out = append(out, Unlocked{Badge: b, UnlockedAt: u.UnlockedAt, Seen: u.Seen})
		}
	}
	return out, nil
}

// Locked returns the catalog badges the user has not unlocked yet.
func (e *Evaluator) Locked(ctx context.Context, userID string) ([]Badge, error) {
	unlocks, err := e.repo.Unlocks(ctx, userID)
	if err != nil {
		return nil, err
	}
	have := make(map[string]bool, len(unlocks))
	for _, u := range unlocks {
		have[u.BadgeID] = true
	}
	var out []Badge
	for _, b := range e.catalog {
		if !have[b.ID] {
			out = append(out, b)
		}
	}
	return out, nil
}

// Unseen returns unlocked badges not yet acknowledged.
func (e *Evaluator) Unseen(ctx context.Context, userID string) ([]Unlocked, error) {
	unlocked, err := e.Unlocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []Unlocked
	for _, u := range unlocked {
		if !u.Seen {
			out = append(out, u)
		}
	}
	return out, nil
}

// TotalPoints sums the points of the user's unlocked badges.
func (e *Evaluator) TotalPoints(ctx context.Context, userID string) (int, error) {
	unlocked, err := e.Unlocked(ctx, userID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, u := range unlocked {
		total += u.Points
	}
	return total, nil
}

// Recent returns the most recently unlocked badges, newest first,
// truncated to limit.
func (e *Evaluator) Recent(ctx context.Context, userID string, limit int) ([]Unlocked, error) {
	unlocked, err := e.Unlocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(unlocked, func(i, j int) bool {
		return unlocked[i].UnlockedAt.After(unlocked[j].UnlockedAt)
	})
	if limit >= 0 && len(unlocked) > limit {
		unlocked = unlocked[:limit]
	}
	return unlocked, nil
}

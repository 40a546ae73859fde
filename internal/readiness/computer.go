package readiness

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/store"
	"github.com/jmarlow/hamprep/internal/streak"
)

// recentWindow is how many of the latest answers feed the recent
// accuracy signal.
const recentWindow = 50

// masteryFloor is the minimum attempts on a subelement before its
// accuracy counts as evidence. Below it the subelement scores zero,
// which keeps one lucky answer from inflating mastery.
const masteryFloor = 3

// Blend weights for the readiness score. Recent accuracy dominates
// because it tracks the user's current level, not their history.
const (
	weightRecent   = 0.35
	weightOverall  = 0.25
	weightCoverage = 0.20
	weightMastery  = 0.20
)

// Computer aggregates a user's history into a readiness snapshot. It
// implements Recomputer.
type Computer struct {
	attempts  store.AttemptRepo
	snapshots store.ReadinessRepo
	bank      *question.Bank
	now       streak.Clock
}

// NewComputer creates a computer over the given repos and question
// bank. A nil clock falls back to time.Now.
func NewComputer(attempts store.AttemptRepo, snapshots store.ReadinessRepo, bank *question.Bank, now streak.Clock) *Computer {
	c := &Computer{attempts: attempts, snapshots: snapshots, bank: bank, now: now}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Recompute aggregates accuracy, coverage, and mastery for the exam
// type and upserts today's snapshot row.
func (c *Computer) Recompute(ctx context.Context, userID string, examType question.ExamType) error {
	pool := c.bank.Pool(examType)
	if len(pool) == 0 {
		return fmt.Errorf("readiness: no questions for exam type %q", examType)
	}

	overall, _, err := c.attempts.OverallAccuracy(ctx, userID)
	if err != nil {
		return fmt.Errorf("readiness: overall accuracy: %w", err)
	}

	results, err := c.attempts.RecentResults(ctx, userID, recentWindow)
	if err != nil {
		return fmt.Errorf("readiness: recent results: %w", err)
	}
	recent := 0.0
	if len(results) > 0 {
		correct := 0
		for _, ok := range results {
			if ok {
				correct++
			}
		}
		recent = float64(correct) / float64(len(results))
	}

	stats, err := c.attempts.PerQuestionStats(ctx, userID)
	if err != nil {
		return fmt.Errorf("readiness: per-question stats: %w", err)
	}
	coverage, mastery := c.poolSignals(examType, pool, stats)

	score := weightRecent*recent + weightOverall*overall + weightCoverage*coverage + weightMastery*mastery

	data := store.ReadinessData{
		UserID:          userID,
		ExamType:        string(examType),
		SnapshotDay:     store.ActivityDay(c.now()),
		ReadinessScore:  score,
		PassProbability: passProbability(score),
		RecentAccuracy:  recent,
		OverallAccuracy: overall,
		Coverage:        coverage,
		Mastery:         mastery,
	}
	if err := c.snapshots.Upsert(ctx, data); err != nil {
		return fmt.Errorf("readiness: store snapshot: %w", err)
	}
	return nil
}

// poolSignals computes coverage (distinct pool questions attempted /
// pool size) and mastery (mean per-subelement accuracy, with
// unattempted and under-floor subelements counting as zero).
func (c *Computer) poolSignals(examType question.ExamType, pool []question.Question, stats []store.QuestionStat) (float64, float64) {
	inPool := make(map[string]question.Question, len(pool))
	for _, q := range pool {
		inPool[q.ID] = q
	}

	type subAgg struct{ attempts, correct int }
	bySub := make(map[string]*subAgg)
	for _, sub := range c.bank.Subelements(examType) {
		bySub[sub] = &subAgg{}
	}

	seen := 0
	for _, st := range stats {
		q, ok := inPool[st.QuestionID]
		if !ok {
			continue
		}
		seen++
		agg := bySub[q.Subelement]
		if agg == nil {
			continue
		}
		agg.attempts += st.Attempts
		agg.correct += st.Correct
	}

	coverage := float64(seen) / float64(len(pool))

	if len(bySub) == 0 {
		return coverage, 0
	}
	sum := 0.0
	for _, agg := range bySub {
		if agg.attempts >= masteryFloor {
			sum += float64(agg.correct) / float64(agg.attempts)
		}
	}
	return coverage, sum / float64(len(bySub))
}

// passProbability maps a readiness score onto a pass likelihood with
// a logistic curve centered on the 74% passing bar.
func passProbability(score float64) float64 {
	return 1.0 / (1.0 + math.Exp(-12*(score-0.74)))
}

package readiness

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/store"
)

// fakeAttemptRepo serves canned aggregates.
type fakeAttemptRepo struct {
	accuracy float64
	total    int
	results  []bool
	stats    []store.QuestionStat
}

func (f *fakeAttemptRepo) Append(ctx context.Context, data store.AttemptData) error { return nil }

func (f *fakeAttemptRepo) ListByUser(ctx context.Context, userID string, limit int) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) RecentResults(ctx context.Context, userID string, limit int) ([]bool, error) {
	if limit < len(f.results) {
		return f.results[:limit], nil
	}
	return f.results, nil
}

func (f *fakeAttemptRepo) PerQuestionStats(ctx context.Context, userID string) ([]store.QuestionStat, error) {
	return f.stats, nil
}

func (f *fakeAttemptRepo) OverallAccuracy(ctx context.Context, userID string) (float64, int, error) {
	return f.accuracy, f.total, nil
}

// fakeReadinessRepo captures the last upserted snapshot.
type fakeReadinessRepo struct {
	last *store.ReadinessData
}

func (f *fakeReadinessRepo) Upsert(ctx context.Context, data store.ReadinessData) error {
	f.last = &data
	return nil
}

func (f *fakeReadinessRepo) Latest(ctx context.Context, userID, examType string) (*store.ReadinessData, error) {
	return f.last, nil
}

const computerBankJSON = `{
	"version": "2026.1",
	"questions": [
		{"id": "q1", "display_code": "T1A01", "prompt": "p1",
		 "options": ["a", "b", "c", "d"], "correct_index": 0, "exam_type": "technician"},
		{"id": "q2", "display_code": "T1A02", "prompt": "p2",
		 "options": ["a", "b", "c", "d"], "correct_index": 1, "exam_type": "technician"},
		{"id": "q3", "display_code": "T2A01", "prompt": "p3",
		 "options": ["a", "b", "c", "d"], "correct_index": 2, "exam_type": "technician"},
		{"id": "q4", "display_code": "T2A02", "prompt": "p4",
		 "options": ["a", "b", "c", "d"], "correct_index": 3, "exam_type": "technician"}
	]
}`

func computerBank(t *testing.T) *question.Bank {
	t.Helper()
	b, err := question.ParseBank([]byte(computerBankJSON))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func computerClock() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func almost(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestRecomputeBlendsSignalsIntoSnapshot(t *testing.T) {
	attempts := &fakeAttemptRepo{
		accuracy: 0.5,
		total:    6,
		results:  []bool{true, false, true, false},
		stats: []store.QuestionStat{
			{QuestionID: "q1", Attempts: 3, Correct: 3}, // T1, fully mastered
			{QuestionID: "q3", Attempts: 3, Correct: 0}, // T2, fully missed
		},
	}
	snapshots := &fakeReadinessRepo{}
	c := NewComputer(attempts, snapshots, computerBank(t), computerClock)

	if err := c.Recompute(context.Background(), "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}
	got := snapshots.last
	if got == nil {
		t.Fatal("no snapshot written")
	}

	if got.UserID != "u1" || got.ExamType != "technician" {
		t.Errorf("snapshot identity = %s/%s", got.UserID, got.ExamType)
	}
	if got.SnapshotDay != "2026-03-10" {
		t.Errorf("snapshot day = %s, want 2026-03-10", got.SnapshotDay)
	}
	if !almost(got.RecentAccuracy, 0.5) {
		t.Errorf("recent accuracy = %v, want 0.5", got.RecentAccuracy)
	}
	if !almost(got.OverallAccuracy, 0.5) {
		t.Errorf("overall accuracy = %v, want 0.5", got.OverallAccuracy)
	}
	// 2 of 4 pool questions seen.
	if !almost(got.Coverage, 0.5) {
		t.Errorf("coverage = %v, want 0.5", got.Coverage)
	}
	// T1 at 1.0, T2 at 0.0.
	if !almost(got.Mastery, 0.5) {
		t.Errorf("mastery = %v, want 0.5", got.Mastery)
	}
	// Every signal is 0.5, so the blend is too.
	if !almost(got.ReadinessScore, 0.5) {
		t.Errorf("readiness score = %v, want 0.5", got.ReadinessScore)
	}
	if got.PassProbability <= 0 || got.PassProbability >= 0.5 {
		t.Errorf("pass probability = %v, want in (0, 0.5) for a 0.5 score", got.PassProbability)
	}
}

func TestRecomputeIgnoresUnderFloorSubelements(t *testing.T) {
	attempts := &fakeAttemptRepo{
		accuracy: 1.0,
		total:    2,
		results:  []bool{true, true},
		stats: []store.QuestionStat{
			// Two perfect answers, but below the evidence floor.
			{QuestionID: "q1", Attempts: 2, Correct: 2},
		},
	}
	snapshots := &fakeReadinessRepo{}
	c := NewComputer(attempts, snapshots, computerBank(t), computerClock)

	if err := c.Recompute(context.Background(), "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}
	if snapshots.last.Mastery != 0 {
		t.Errorf("mastery = %v, want 0 below the attempt floor", snapshots.last.Mastery)
	}
}

func TestRecomputeEmptyHistory(t *testing.T) {
	snapshots := &fakeReadinessRepo{}
	c := NewComputer(&fakeAttemptRepo{}, snapshots, computerBank(t), computerClock)

	if err := c.Recompute(context.Background(), "u1", question.ExamTechnician); err != nil {
		t.Fatal(err)
	}
	got := snapshots.last
	if got == nil {
		t.Fatal("no snapshot written")
	}
	if got.ReadinessScore != 0 || got.Coverage != 0 || got.Mastery != 0 {
		t.Errorf("fresh user snapshot = %+v, want all-zero signals", got)
	}
	if got.PassProbability >= 0.01 {
		t.Errorf("pass probability = %v for a fresh user, want near zero", got.PassProbability)
	}
}

func TestRecomputeFailsWithoutPool(t *testing.T) {
	c := NewComputer(&fakeAttemptRepo{}, &fakeReadinessRepo{}, computerBank(t), computerClock)

	if err := c.Recompute(context.Background(), "u1", question.ExamExtra); err == nil {
		t.Fatal("expected error for exam type with no questions")
	}
}

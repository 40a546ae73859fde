package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestActivityDay(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("EST", -5*3600)
	local := time.Date(2026, 3, 1, 23, 30, 0, 0, loc)
	if got := ActivityDay(local); got != "2026-03-02" {
		t.Errorf("ActivityDay = %q, want 2026-03-02", got)
	}
}

func TestActivityIncrementIsAddOnly(t *testing.T) {
	s := openTestStore(t)
	repo := s.ActivityRepo()
	ctx := context.Background()

	day := "2026-03-02"
	if err := repo.Increment(ctx, "u1", day, ActivityCounters{QuestionsAnswered: 3, QuestionsCorrect: 2}); err != nil {
		t.Fatalf("first increment: %v", err)
	}
	if err := repo.Increment(ctx, "u1", day, ActivityCounters{QuestionsAnswered: 2, QuestionsCorrect: 1, ExamsCompleted: 1, ExamsPassed: 1}); err != nil {
		t.Fatalf("second increment: %v", err)
	}

	row, err := repo.Day(ctx, "u1", day)
	if err != nil {
		t.Fatalf("day: %v", err)
	}
	if row == nil {
		t.Fatal("expected a row for the day")
	}
	if row.QuestionsAnswered != 5 || row.QuestionsCorrect != 3 {
		t.Errorf("questions = %d/%d, want 5/3", row.QuestionsAnswered, row.QuestionsCorrect)
	}
	if row.ExamsCompleted != 1 || row.ExamsPassed != 1 {
		t.Errorf("exams = %d/%d, want 1/1", row.ExamsCompleted, row.ExamsPassed)
	}
}

func TestActivityNewDayNewRow(t *testing.T) {
	s := openTestStore(t)
	repo := s.ActivityRepo()
	ctx := context.Background()

	if err := repo.Increment(ctx, "u1", "2026-03-01", ActivityCounters{QuestionsAnswered: 4}); err != nil {
		t.Fatalf("increment day 1: %v", err)
	}
	if err := repo.Increment(ctx, "u1", "2026-03-02", ActivityCounters{QuestionsAnswered: 7}); err != nil {
		t.Fatalf("increment day 2: %v", err)
	}

	history, err := repo.History(ctx, "u1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	// Most recent day first.
	if history[0].Day != "2026-03-02" || history[0].QuestionsAnswered != 7 {
		t.Errorf("history[0] = %+v, want day 2026-03-02 with 7 answered", history[0])
	}
	if history[1].Day != "2026-03-01" || history[1].QuestionsAnswered != 4 {
		t.Errorf("history[1] = %+v, want day 2026-03-01 with 4 answered", history[1])
	}
}

func TestBadgeUnlockIdempotent(t *testing.T) {
	s := openTestStore(t)
	repo := s.BadgeRepo()
	ctx := context.Background()

	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	created, err := repo.CreateIfMissing(ctx, "u1", "first-steps", first)
	if err != nil {
		t.Fatalf("first unlock: %v", err)
	}
	if !created {
		t.Fatal("expected first unlock to create a row")
	}

	created, err = repo.CreateIfMissing(ctx, "u1", "first-steps", first.Add(time.Hour))
	if err != nil {
		t.Fatalf("second unlock: %v", err)
	}
	if created {
		t.Fatal("expected second unlock to be a no-op")
	}

	unlocks, err := repo.Unlocks(ctx, "u1")
	if err != nil {
		t.Fatalf("unlocks: %v", err)
	}
	if len(unlocks) != 1 {
		t.Fatalf("unlock count = %d, want 1", len(unlocks))
	}
	if !unlocks[0].UnlockedAt.Equal(first) {
		t.Errorf("unlocked_at was reset: got %v, want %v", unlocks[0].UnlockedAt, first)
	}
}

func TestMarkSeenEmptyIsNoop(t *testing.T) {
	s := openTestStore(t)
	repo := s.BadgeRepo()

	if err := repo.MarkSeen(context.Background(), "u1", nil); err != nil {
		t.Fatalf("mark seen with empty list: %v", err)
	}
}

func TestExamCreateRejectsCountMismatch(t *testing.T) {
	s := openTestStore(t)
	repo := s.ExamRepo()

	exam := ExamAttemptData{
		ExamAttemptID:  "e1",
		UserID:         "u1",
		ExamType:       "technician",
		RawScore:       26,
		TotalQuestions: 35,
		Percentage:     74,
		Passed:         true,
	}
	// Only one child attempt for a 35-question exam.
	err := repo.Create(context.Background(), exam, []AttemptData{{
		AttemptID: "a1", UserID: "u1", QuestionID: "q1", DisplayCode: "T1A01",
		SelectedIndex: 0, Correct: true, SessionKind: "exam",
	}})
	if err == nil {
		t.Fatal("expected error for child count mismatch")
	}
}

func TestReadinessUpsertReplacesDay(t *testing.T) {
	s := openTestStore(t)
	repo := s.ReadinessRepo()
	ctx := context.Background()

	data := ReadinessData{
		UserID: "u1", ExamType: "technician", SnapshotDay: "2026-03-02",
		ReadinessScore: 0.5, PassProbability: 0.4,
		RecentAccuracy: 0.6, OverallAccuracy: 0.55, Coverage: 0.3, Mastery: 0.5,
	}
	if err := repo.Upsert(ctx, data); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	data.ReadinessScore = 0.7
	if err := repo.Upsert(ctx, data); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := repo.Latest(ctx, "u1", "technician")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("expected a snapshot")
	}
	if got.ReadinessScore != 0.7 {
		t.Errorf("readiness score = %v, want 0.7 (upsert should replace)", got.ReadinessScore)
	}
}

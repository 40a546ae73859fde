package badges

import (
	"context"
	"testing"
	"time"

	"github.com/jmarlow/hamprep/internal/store"
	"github.com/jmarlow/hamprep/internal/streak"
)

// fakeBadgeRepo keeps unlocks in memory and counts writes.
type fakeBadgeRepo struct {
	unlocks       map[string]store.BadgeUnlockRecord // keyed by badge ID
	markSeenCalls int
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{unlocks: make(map[string]store.BadgeUnlockRecord)}
}

func (f *fakeBadgeRepo) Unlocks(ctx context.Context, userID string) ([]store.BadgeUnlockRecord, error) {
	var out []store.BadgeUnlockRecord
	for _, u := range f.unlocks {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeBadgeRepo) CreateIfMissing(ctx context.Context, userID, badgeID string, at time.Time) (bool, error) {
	if _, ok := f.unlocks[badgeID]; ok {
		return false, nil
	}
	f.unlocks[badgeID] = store.BadgeUnlockRecord{UserID: userID, BadgeID: badgeID, UnlockedAt: at}
	return true, nil
}

func (f *fakeBadgeRepo) MarkSeen(ctx context.Context, userID string, badgeIDs []string) error {
	f.markSeenCalls++
	for _, id := range badgeIDs {
		u := f.unlocks[id]
		u.Seen = true
		f.unlocks[id] = u
	}
	return nil
}

// fixedStats returns the same snapshot on every call.
type fixedStats struct {
	stats Stats
	calls int
}

func (f *fixedStats) Stats(ctx context.Context, userID string) (Stats, error) {
	f.calls++
	return f.stats, nil
}

func testClock() time.Time {
	return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func TestCheckForNewIsIdempotent(t *testing.T) {
	repo := newFakeBadgeRepo()
	stats := &fixedStats{stats: Stats{QuestionsAnswered: 1}}
	ev := NewEvaluator(repo, stats, testClock)

	first, err := ev.CheckForNew(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 || first[0].ID != "first-contact" {
		t.Fatalf("first call = %v, want one first-contact unlock", first)
	}
	if first[0].Seen {
		t.Error("fresh unlock should start unseen")
	}

	second, err := ev.CheckForNew(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 0 {
		t.Errorf("second call with no new activity = %v, want empty", second)
	}
}

func TestCheckForNewReportsOnlyCrossedRules(t *testing.T) {
	repo := newFakeBadgeRepo()
	stats := &fixedStats{stats: Stats{QuestionsAnswered: 120, ExamsCompleted: 1, ExamsPassed: 1}}
	ev := NewEvaluator(repo, stats, testClock)

	fresh, err := ev.CheckForNew(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}

	got := make(map[string]bool, len(fresh))
	for _, u := range fresh {
		got[u.ID] = true
	}
	for _, want := range []string{"first-contact", "century", "checkpoint", "first-pass"} {
		if !got[want] {
			t.Errorf("expected %s to unlock", want)
		}
	}
	if got["ragchewer"] || got["triple-pass"] {
		t.Errorf("unearned badges unlocked: %v", got)
	}
}

func TestCheckForNewSkipsSignedOutUser(t *testing.T) {
	stats := &fixedStats{stats: Stats{QuestionsAnswered: 1000}}
	ev := NewEvaluator(newFakeBadgeRepo(), stats, testClock)

	fresh, err := ev.CheckForNew(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if fresh != nil {
		t.Errorf("signed-out check = %v, want nil", fresh)
	}
	if stats.calls != 0 {
		t.Errorf("stats gathered %d times for signed-out user, want 0", stats.calls)
	}
}

func TestMarkSeenEmptyListIsNoop(t *testing.T) {
	repo := newFakeBadgeRepo()
	ev := NewEvaluator(repo, &fixedStats{}, testClock)

	if err := ev.MarkSeen(context.Background(), "u1", nil); err != nil {
		t.Fatal(err)
	}
	if repo.markSeenCalls != 0 {
		t.Errorf("store calls = %d, want 0 for empty list", repo.markSeenCalls)
	}
}

func TestUnseenClearsAfterMarkSeen(t *testing.T) {
	repo := newFakeBadgeRepo()
	stats := &fixedStats{stats: Stats{QuestionsAnswered: 1}}
	ev := NewEvaluator(repo, stats, testClock)

	if _, err := ev.CheckForNew(context.Background(), "u1"); err != nil {
		t.Fatal(err)
	}
	unseen, err := ev.Unseen(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(unseen) != 1 {
		t.Fatalf("unseen = %d, want 1", len(unseen))
	}

	if err := ev.MarkSeen(context.Background(), "u1", []string{unseen[0].ID}); err != nil {
		t.Fatal(err)
	}
	unseen, err = ev.Unseen(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(unseen) != 0 {
		t.Errorf("unseen after acknowledge = %d, want 0", len(unseen))
	}
}

func TestLockedIsCatalogComplement(t *testing.T) {
	repo := newFakeBadgeRepo()
	stats := &fixedStats{stats: Stats{QuestionsAnswered: 1}}
	ev := NewEvaluator(repo, stats, testClock)

	if _, err := ev.CheckForNew(context.Background(), "u1"); err != nil {
		t.Fatal(err)
	}
	unlocked, err := ev.Unlocked(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	locked, err := ev.Locked(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(unlocked)+len(locked) != len(Catalog()) {
		t.Errorf("unlocked(%d) + locked(%d) != catalog(%d)", len(unlocked), len(locked), len(Catalog()))
	}
	for _, b := range locked {
		if b.ID == "first-contact" {
			t.Error("first-contact should not appear in locked view")
		}
	}
}

func TestTotalPointsSumsUnlocked(t *testing.T) {
	repo := newFakeBadgeRepo()
	stats := &fixedStats{stats: Stats{QuestionsAnswered: 100}}
	ev := NewEvaluator(repo, stats, testClock)

	if _, err := ev.CheckForNew(context.Background(), "u1"); err != nil {
		t.Fatal(err)
	}
	total, err := ev.TotalPoints(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	// first-contact (10) + century (25).
	if total != 35 {
		t.Errorf("total points = %d, want 35", total)
	}
}

func TestRecentOrdersByUnlockTimeAndTruncates(t *testing.T) {
	repo := newFakeBadgeRepo()
	repo.unlocks["first-contact"] = store.BadgeUnlockRecord{
		UserID: "u1", BadgeID: "first-contact",
		UnlockedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	repo.unlocks["century"] = store.BadgeUnlockRecord{
		UserID: "u1", BadgeID: "century",
		UnlockedAt: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}
	repo.unlocks["checkpoint"] = store.BadgeUnlockRecord{
		UserID: "u1", BadgeID: "checkpoint",
		UnlockedAt: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	ev := NewEvaluator(repo, &fixedStats{}, testClock)

	recent, err := ev.Recent(context.Background(), "u1", 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent = %d entries, want 2", len(recent))
	}
	if recent[0].ID != "century" || recent[1].ID != "checkpoint" {
		t.Errorf("recent order = %s, %s; want century, checkpoint", recent[0].ID, recent[1].ID)
	}
}

// Minimal repos for exercising the Collector directly.

type statAttemptRepo struct{ correct, total int }

func (r *statAttemptRepo) Append(ctx context.Context, data store.AttemptData) error { return nil }

func (r *statAttemptRepo) ListByUser(ctx context.Context, userID string, limit int) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (r *statAttemptRepo) RecentResults(ctx context.Context, userID string, limit int) ([]bool, error) {
	return nil, nil
}

func (r *statAttemptRepo) PerQuestionStats(ctx context.Context, userID string) ([]store.QuestionStat, error) {
	return nil, nil
}

func (r *statAttemptRepo) OverallAccuracy(ctx context.Context, userID string) (float64, int, error) {
	return float64(r.correct) / float64(r.total), r.total, nil
}

type statExamRepo struct{}

func (statExamRepo) Create(ctx context.Context, exam store.ExamAttemptData, attempts []store.AttemptData) error {
	return nil
}

func (statExamRepo) ListByUser(ctx context.Context, userID string, limit int) ([]store.ExamAttemptRecord, error) {
	return nil, nil
}

func (statExamRepo) PassCounts(ctx context.Context, userID string) (int, int, error) {
	return 0, 0, nil
}

type statReadinessRepo struct{}

func (statReadinessRepo) Upsert(ctx context.Context, data store.ReadinessData) error { return nil }

func (statReadinessRepo) Latest(ctx context.Context, userID, examType string) (*store.ReadinessData, error) {
	return nil, nil
}

type statActivityRepo struct{}

func (statActivityRepo) Increment(ctx context.Context, userID, day string, c store.ActivityCounters) error {
	return nil
}

func (statActivityRepo) History(ctx context.Context, userID string) ([]store.ActivityRow, error) {
	return nil, nil
}

func (statActivityRepo) Day(ctx context.Context, userID, day string) (*store.ActivityRow, error) {
	return nil, nil
}

func TestCollectorRecoversExactCorrectCount(t *testing.T) {
	// 2/3 accuracy must come back as 2 correct, not truncate to 1.
	tracker := streak.NewTracker(statActivityRepo{}, 0, testClock)
	c := NewCollector(&statAttemptRepo{correct: 2, total: 3}, statExamRepo{}, statReadinessRepo{}, tracker)

	s, err := c.Stats(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if s.QuestionsAnswered != 3 {
		t.Errorf("answered = %d, want 3", s.QuestionsAnswered)
	}
	if s.QuestionsCorrect != 2 {
		t.Errorf("correct = %d, want 2", s.QuestionsCorrect)
	}
}

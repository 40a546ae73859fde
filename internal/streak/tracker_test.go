package streak

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/jmarlow/hamprep/internal/store"
)

// fakeActivityRepo serves canned rows and counts store calls.
type fakeActivityRepo struct {
	rows  map[string]store.ActivityRow // keyed by day
	calls int
}

func (f *fakeActivityRepo) Increment(ctx context.Context, userID, day string, c store.ActivityCounters) error {
	if f.rows == nil {
		f.rows = make(map[string]store.ActivityRow)
	}
	row := f.rows[day]
	row.UserID = userID
	row.Day = day
	row.QuestionsAnswered += c.QuestionsAnswered
	row.QuestionsCorrect += c.QuestionsCorrect
	row.ExamsCompleted += c.ExamsCompleted
	row.ExamsPassed += c.ExamsPassed
	f.rows[day] = row
	return nil
}

func (f *fakeActivityRepo) History(ctx context.Context, userID string) ([]store.ActivityRow, error) {
	f.calls++
	days := make([]string, 0, len(f.rows))
	for d := range f.rows {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))
	out := make([]store.ActivityRow, len(days))
	for i, d := range days {
		out[i] = f.rows[d]
	}
	return out, nil
}

func (f *fakeActivityRepo) Day(ctx context.Context, userID, day string) (*store.ActivityRow, error) {
	f.calls++
	row, ok := f.rows[day]
	if !ok {
		return nil, nil
	}
	return &row, nil
}

// fixedClock pins "now" to 2026-03-10 15:00 UTC.
func fixedClock() time.Time {
	return time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
}

func repoWithDays(answered map[string]int) *fakeActivityRepo {
	repo := &fakeActivityRepo{rows: make(map[string]store.ActivityRow)}
	for day, n := range answered {
		repo.rows[day] = store.ActivityRow{UserID: "u1", Day: day, QuestionsAnswered: n}
	}
	return repo
}

func TestQuestionsNeededTodayNeverNegative(t *testing.T) {
	tests := []struct {
		answered int
		want     int
	}{
		{0, 10},
		{3, 7},
		{10, 0},
		{25, 0},
	}

	for _, tt := range tests {
		repo := repoWithDays(map[string]int{"2026-03-10": tt.answered})
		tr := NewTracker(repo, 10, fixedClock)
		info, err := tr.Info(context.Background(), "u1")
		if err != nil {
			t.Fatal(err)
		}
		if info.QuestionsNeededToday != tt.want {
			t.Errorf("answered=%d: needed = %d, want %d", tt.answered, info.QuestionsNeededToday, tt.want)
		}
	}
}

func TestCurrentStreakEndingToday(t *testing.T) {
	repo := repoWithDays(map[string]int{
		"2026-03-08": 12,
		"2026-03-09": 10,
		"2026-03-10": 11,
	})
	tr := NewTracker(repo, 10, fixedClock)

	info, err := tr.Info(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if info.CurrentStreak != 3 {
		t.Errorf("current streak = %d, want 3", info.CurrentStreak)
	}
	if info.IsAtRisk {
		t.Error("streak that qualified today should not be at risk")
	}
	if info.LastQualifyingDate != "2026-03-10" {
		t.Errorf("last qualifying = %s, want 2026-03-10", info.LastQualifyingDate)
	}
}

func TestStreakAtRiskUntilTodayQualifies(t *testing.T) {
	repo := repoWithDays(map[string]int{
		"2026-03-08": 15,
		"2026-03-09": 10,
		"2026-03-10": 4, // below goal so far today
	})
	tr := NewTracker(repo, 10, fixedClock)

	info, err := tr.Info(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if info.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2 (through yesterday)", info.CurrentStreak)
	}
	if !info.IsAtRisk {
		t.Error("streak should be at risk until today qualifies")
	}
	if info.QuestionsNeededToday != 6 {
		t.Errorf("needed today = %d, want 6", info.QuestionsNeededToday)
	}
}

func TestStreakBrokenByMissedDay(t *testing.T) {
	repo := repoWithDays(map[string]int{
		"2026-03-06": 20,
		"2026-03-07": 12,
		// 03-08 and 03-09 missed entirely.
		"2026-03-10": 3,
	})
	tr := NewTracker(repo, 10, fixedClock)

	info, err := tr.Info(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if info.CurrentStreak != 0 {
		t.Errorf("current streak = %d, want 0", info.CurrentStreak)
	}
	if info.IsAtRisk {
		t.Error("a dead streak is not at risk, it is over")
	}
	if info.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", info.LongestStreak)
	}
}

func TestLongestStreakSurvivesBreaks(t *testing.T) {
	repo := repoWithDays(map[string]int{
		"2026-02-20": 10,
		"2026-02-21": 10,
		"2026-02-22": 10,
		"2026-02-23": 10,
		// Break.
		"2026-03-09": 10,
		"2026-03-10": 10,
	})
	tr := NewTracker(repo, 10, fixedClock)

	info, err := tr.Info(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if info.CurrentStreak != 2 {
		t.Errorf("current streak = %d, want 2", info.CurrentStreak)
	}
	if info.LongestStreak != 4 {
		t.Errorf("longest streak = %d, want 4", info.LongestStreak)
	}
}

func TestNonQualifyingDaysDoNotCount(t *testing.T) {
	repo := repoWithDays(map[string]int{
		"2026-03-09": 9, // one short of the goal
		"2026-03-10": 10,
	})
	tr := NewTracker(repo, 10, fixedClock)

	info, err := tr.Info(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if info.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", info.CurrentStreak)
	}
}

func TestNoUserNoStoreCalls(t *testing.T) {
	repo := repoWithDays(nil)
	tr := NewTracker(repo, 10, fixedClock)

	info, err := tr.Info(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if repo.calls != 0 {
		t.Errorf("store calls = %d, want 0 for signed-out session", repo.calls)
	}
	if info.CurrentStreak != 0 || info.QuestionsNeededToday != 10 {
		t.Errorf("zero-user info = %+v", info)
	}
}

func TestDefaultGoalFallback(t *testing.T) {
	tr := NewTracker(repoWithDays(nil), 0, fixedClock)
	if tr.Goal() != DefaultDailyGoal {
		t.Errorf("goal = %d, want %d", tr.Goal(), DefaultDailyGoal)
	}
}

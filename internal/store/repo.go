package store

import (
	"context"
	"time"
)

// ActivityDay formats t as the canonical UTC calendar day used for
// DailyActivity and ReadinessSnapshot rows. Normalizing at the store
// boundary keeps a client's local clock from skewing day identity.
func ActivityDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// AttemptData is the input for recording one answered question.
type AttemptData struct {
	AttemptID     string
	UserID        string
	QuestionID    string
	DisplayCode   string
	SelectedIndex int
	Correct       bool
	SessionKind   string
	ParentExamID  *string
}

// AttemptRecord is a persisted attempt with its event metadata.
type AttemptRecord struct {
	AttemptData
	Sequence  int64
	Timestamp time.Time
}

// QuestionStat aggregates a user's history on one question.
type QuestionStat struct {
	QuestionID string
	Attempts   int
	Correct    int
}

// AttemptRepo provides append and aggregate access to attempt events.
type AttemptRepo interface {
	// Append records a single attempt.
	Append(ctx context.Context, data AttemptData) error

	// ListByUser returns a user's attempts, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]AttemptRecord, error)

	// RecentResults returns the correctness of the user's most recent
	// attempts, newest first, up to limit.
	RecentResults(ctx context.Context, userID string, limit int) ([]bool, error)

	// PerQuestionStats aggregates attempts and correct counts per
	// distinct question for the user.
	PerQuestionStats(ctx context.Context, userID string) ([]QuestionStat, error)

	// OverallAccuracy returns correct/total over the user's full
	// history, and the total attempt count.
	OverallAccuracy(ctx context.Context, userID string) (float64, int, error)
}

// ExamAttemptData is the input for recording a completed exam.
type ExamAttemptData struct {
	ExamAttemptID  string
	UserID         string
	ExamType       string
	RawScore       int
	TotalQuestions int
	Percentage     int
	Passed         bool
}

// ExamAttemptRecord is a persisted exam attempt.
type ExamAttemptRecord struct {
	ExamAttemptData
	CreatedAt time.Time
}

// ExamRepo persists exam attempts together with their child attempts.
type ExamRepo interface {
	// Create writes the exam attempt and all child attempts in one
	// transaction, tagging each child with the exam's ID.
	Create(ctx context.Context, exam ExamAttemptData, attempts []AttemptData) error

	// ListByUser returns a user's exam attempts, most recent first.
	ListByUser(ctx context.Context, userID string, limit int) ([]ExamAttemptRecord, error)

	// PassCounts returns (passed, total) exam counts for the user.
	PassCounts(ctx context.Context, userID string) (int, int, error)
}

// ActivityCounters is a set of increments to apply to a day's activity.
type ActivityCounters struct {
	QuestionsAnswered int
	QuestionsCorrect  int
	ExamsCompleted    int
	ExamsPassed       int
}

// ActivityRow is one user-day of aggregated activity.
type ActivityRow struct {
	UserID            string
	Day               string // YYYY-MM-DD, UTC
	QuestionsAnswered int
	QuestionsCorrect  int
	ExamsCompleted    int
	ExamsPassed       int
}

// ActivityRepo maintains per-day activity counters.
type ActivityRepo interface {
	// Increment adds the counters to the row for (userID, day),
	// creating it if absent. Counters are add-only; calling twice
	// adds twice, and nothing is ever zeroed in place.
	Increment(ctx context.Context, userID, day string, c ActivityCounters) error

	// History returns the user's activity rows, most recent day first.
	History(ctx context.Context, userID string) ([]ActivityRow, error)

	// Day returns the row for one day, or nil if no activity occurred.
	Day(ctx context.Context, userID, day string) (*ActivityRow, error)
}

// BadgeUnlockRecord is a persisted badge unlock.
type BadgeUnlockRecord struct {
	UserID     string
	BadgeID    string
	UnlockedAt time.Time
	Seen       bool
}

// BadgeRepo tracks which badges a user has unlocked.
type BadgeRepo interface {
	// Unlocks returns all of the user's unlocks.
	Unlocks(ctx context.Context, userID string) ([]BadgeUnlockRecord, error)

	// CreateIfMissing inserts an unlock for (userID, badgeID) unless
	// one already exists. Returns true if a new row was created.
	// Existing rows keep their original unlocked_at.
	CreateIfMissing(ctx context.Context, userID, badgeID string, at time.Time) (bool, error)

	// MarkSeen flips seen=true for the given badges.
	MarkSeen(ctx context.Context, userID string, badgeIDs []string) error
}

// ReadinessData is one day's readiness estimate for a user/exam type.
type ReadinessData struct {
	UserID          string
	ExamType        string
	SnapshotDay     string // YYYY-MM-DD, UTC
	ReadinessScore  float64
	PassProbability float64
	RecentAccuracy  float64
	OverallAccuracy float64
	Coverage        float64
	Mastery         float64
}

// ReadinessRepo stores readiness snapshots, one row per user/type/day.
type ReadinessRepo interface {
	// Upsert replaces the row for (user, exam type, day).
	Upsert(ctx context.Context, data ReadinessData) error

	// Latest returns the most recent snapshot for the user and exam
	// type, or nil if none exists.
	Latest(ctx context.Context, userID, examType string) (*ReadinessData, error)
}

// TelemetryEventData records the outcome of one fire-and-forget task.
type TelemetryEventData struct {
	Name         string
	Payload      map[string]any
	Success      bool
	ErrorMessage string
}

// TelemetryRepo appends telemetry events.
type TelemetryRepo interface {
	Append(ctx context.Context, data TelemetryEventData) error
}

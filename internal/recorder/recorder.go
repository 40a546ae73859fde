// Package recorder persists answer attempts and drives the downstream
// chain each answer triggers: daily-activity counters, cache
// invalidation, and the readiness scheduler. The downstream steps are
// independently fault-tolerant so a failing counter update never costs
// the user their recorded answer.
package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmarlow/hamprep/internal/cache"
	"github.com/jmarlow/hamprep/internal/exam"
	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/readiness"
	"github.com/jmarlow/hamprep/internal/store"
	"github.com/jmarlow/hamprep/internal/streak"
	"github.com/jmarlow/hamprep/internal/telemetry"
)

// SessionKind tags an attempt with the study context it came from.
type SessionKind string

const (
	KindStandalonePractice SessionKind = "standalone-practice"
	KindWeakItemReview     SessionKind = "weak-item-review"
	KindTopicPractice      SessionKind = "topic-practice"
	KindChapterPractice    SessionKind = "chapter-practice"
	KindTopicQuiz          SessionKind = "topic-quiz"
	KindExamAttempt        SessionKind = "exam-attempt"
)

// Answer pairs a question with the option the learner selected.
type Answer struct {
	Question      question.Question
	SelectedIndex int
}

// Correct reports whether the selection matches the question's answer.
func (a Answer) Correct() bool {
	return a.SelectedIndex == a.Question.CorrectIndex
}

// BatchResult summarizes a recorded batch of answers.
type BatchResult struct {
	Correct    int
	Total      int
	Percentage int
	Passed     bool // meaningful for quiz-style batches only
}

// Recorder records attempts for one user session.
type Recorder struct {
	userID    string
	attempts  store.AttemptRepo
	exams     store.ExamRepo
	activity  store.ActivityRepo
	caches    cache.Invalidator
	scheduler *readiness.Scheduler
	sink      telemetry.Sink
	now       streak.Clock
	newID     func() string
}

// Options configures a Recorder. Sink and Clock are optional; NewID
// defaults to random UUIDs.
type Options struct {
	UserID    string
	Attempts  store.AttemptRepo
	Exams     store.ExamRepo
	Activity  store.ActivityRepo
	Caches    cache.Invalidator
	Scheduler *readiness.Scheduler
	Sink      telemetry.Sink
	Clock     streak.Clock
	NewID     func() string
}

// New creates a recorder bound to one user session. An empty user ID
// yields a recorder whose operations are silent no-ops, matching a
// signed-out session.
func New(opts Options) *Recorder {
	r := &Recorder{
		userID:    opts.UserID,
		attempts:  opts.Attempts,
		exams:     opts.Exams,
		activity:  opts.Activity,
		caches:    opts.Caches,
		scheduler: opts.Scheduler,
		sink:      opts.Sink,
		now:       opts.Clock,
		newID:     opts.NewID,
	}
	if r.sink == nil {
		r.sink = telemetry.Nop{}
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.newID == nil {
		r.newID = uuid.NewString
	}
	return r
}

// RecordAttempt persists one answered question and runs the downstream
// chain. The persist error is returned to the caller; downstream
// failures are logged to telemetry and never block each other.
func (r *Recorder) RecordAttempt(ctx context.Context, ans Answer, kind SessionKind) error {
	if r.userID == "" {
		return nil
	}

	if err := r.attempts.Append(ctx, r.attemptData(ans, kind, nil)); err != nil {
		r.sink.Record(ctx, "attempt.persist", r.payload(ans), err)
		return fmt.Errorf("record attempt: %w", err)
	}

	correct := 0
	if ans.Correct() {
		correct = 1
	}
	r.downstream(ctx, ans.Question.ExamType, store.ActivityCounters{
		QuestionsAnswered: 1,
		QuestionsCorrect:  correct,
	}, 1, false)
	return nil
}

// RecordAttempts persists a batch of answers as a unit and runs the
// downstream chain once for the whole batch. Quiz-style batches
// additionally get an aggregate pass mark and force a readiness
// recompute.
func (r *Recorder) RecordAttempts(ctx context.Context, answers []Answer, kind SessionKind) (BatchResult, error) {
	res := batchResult(answers)
	if r.userID == "" || len(answers) == 0 {
		return res, nil
	}

	// A mid-batch persist failure stops appending, but the attempts
	// already written still flow downstream so the day's counters and
	// caches reflect them.
	persisted, correct := 0, 0
	var persistErr error
	for _, ans := range answers {
		if err := r.attempts.Append(ctx, r.attemptData(ans, kind, nil)); err != nil {
			r.sink.Record(ctx, "attempt.persist", r.payload(ans), err)
			persistErr = fmt.Errorf("record batch: %w", err)
			break
		}
		persisted++
		if ans.Correct() {
			correct++
		}
	}

	if persisted > 0 {
		r.downstream(ctx, answers[0].Question.ExamType, store.ActivityCounters{
			QuestionsAnswered: persisted,
			QuestionsCorrect:  correct,
		}, persisted, kind == KindTopicQuiz)
	}
	return res, persistErr
}

// RecordExam scores a completed exam, persists it atomically with its
// child attempts, and runs the downstream chain with the exam's full
// question count. Exam completion always forces a readiness recompute.
func (r *Recorder) RecordExam(ctx context.Context, examType question.ExamType, answers []Answer) (exam.Result, error) {
	questions := make([]question.Question, len(answers))
	selections := make(map[string]int, len(answers))
	for i, ans := range answers {
		questions[i] = ans.Question
		selections[ans.Question.ID] = ans.SelectedIndex
	}
	result, err := exam.Score(questions, selections, examType)
	if err != nil {
		return exam.Result{}, err
	}
	if r.userID == "" {
		return result, nil
	}

	examID := r.newID()
	data := store.ExamAttemptData{
		ExamAttemptID:  examID,
		UserID:         r.userID,
		ExamType:       string(examType),
		RawScore:       result.RawScore,
		TotalQuestions: result.TotalQuestions,
		Percentage:     result.Percentage,
		Passed:         result.Passed,
	}
	children := make([]store.AttemptData, len(answers))
	for i, ans := range answers {
		children[i] = r.attemptData(ans, KindExamAttempt, &examID)
	}
	if err := r.exams.Create(ctx, data, children); err != nil {
		r.sink.Record(ctx, "exam.persist", map[string]any{"exam_type": string(examType)}, err)
		return result, fmt.Errorf("record exam: %w", err)
	}

	counters := store.ActivityCounters{
		QuestionsAnswered: result.TotalQuestions,
		QuestionsCorrect:  result.RawScore,
		ExamsCompleted:    1,
	}
	if result.Passed {
		counters.ExamsPassed = 1
	}
	r.downstream(ctx, examType, counters, result.TotalQuestions, true)
	return result, nil
}

// downstream runs the post-persist steps: activity increment, cache
// invalidation, and the scheduler notification. Each step is isolated;
// a failure is sent to telemetry and the next step still runs. The
// streak view is invalidated only once the counter update is
// confirmed, so readers never see a streak ahead of its counters.
func (r *Recorder) downstream(ctx context.Context, examType question.ExamType, counters store.ActivityCounters, attempts int, force bool) {
	day := store.ActivityDay(r.now())
	if err := r.activity.Increment(ctx, r.userID, day, counters); err != nil {
		r.sink.Record(ctx, "activity.increment", map[string]any{"day": day}, err)
	} else {
		r.caches.Invalidate(cache.ViewStreak)
	}

	r.caches.Invalidate(cache.AttemptViews...)
	if counters.ExamsCompleted > 0 {
		r.caches.Invalidate(cache.ViewExamResults)
	}

	// Every attempt counts toward the batch threshold, even when a
	// forced recompute follows; a debounce-skipped force would
	// otherwise drop the batch from the counter.
	err := r.scheduler.NoteAttempts(ctx, r.userID, examType, attempts)
	if force {
		if ferr := r.scheduler.ForceRecompute(ctx, r.userID, examType); ferr != nil {
			err = ferr
		}
	}
	if err != nil {
		r.sink.Record(ctx, "readiness.recompute", map[string]any{"exam_type": string(examType)}, err)
	}
}

func (r *Recorder) attemptData(ans Answer, kind SessionKind, parentExamID *string) store.AttemptData {
	return store.AttemptData{
		AttemptID:     r.newID(),
		UserID:        r.userID,
		QuestionID:    ans.Question.ID,
		DisplayCode:   ans.Question.DisplayCode,
		SelectedIndex: ans.SelectedIndex,
		Correct:       ans.Correct(),
		SessionKind:   string(kind),
		ParentExamID:  parentExamID,
	}
}

func (r *Recorder) payload(ans Answer) map[string]any {
	return map[string]any{"question": ans.Question.DisplayCode}
}

func batchResult(answers []Answer) BatchResult {
	res := BatchResult{Total: len(answers)}
	for _, ans := range answers {
		if ans.Correct() {
			res.Correct++
		}
	}
	if res.Total > 0 {
		res.Percentage = exam.Percentage(res.Correct, res.Total)
		res.Passed = exam.QuizPassed(res.Correct, res.Total)
	}
	return res
}

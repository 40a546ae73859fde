package recorder

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jmarlow/hamprep/internal/cache"
	"github.com/jmarlow/hamprep/internal/question"
	"github.com/jmarlow/hamprep/internal/readiness"
	"github.com/jmarlow/hamprep/internal/store"
)

type fakeAttemptRepo struct {
	appended  []store.AttemptData
	err       error
	failAfter int // with err set, this many appends succeed first
}

func (f *fakeAttemptRepo) Append(ctx context.Context, data store.AttemptData) error {
	if f.err != nil && len(f.appended) >= f.failAfter {
		return f.err
	}
	f.appended = append(f.appended, data)
	return nil
}

func (f *fakeAttemptRepo) ListByUser(ctx context.Context, userID string, limit int) ([]store.AttemptRecord, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) RecentResults(ctx context.Context, userID string, limit int) ([]bool, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) PerQuestionStats(ctx context.Context, userID string) ([]store.QuestionStat, error) {
	return nil, nil
}

func (f *fakeAttemptRepo) OverallAccuracy(ctx context.Context, userID string) (float64, int, error) {
	return 0, 0, nil
}

type fakeExamRepo struct {
	exam     *store.ExamAttemptData
	children []store.AttemptData
	err      error
}

func (f *fakeExamRepo) Create(ctx context.Context, exam store.ExamAttemptData, attempts []store.AttemptData) error {
	if f.err != nil {
		return f.err
	}
	f.exam = &exam
	f.children = attempts
	return nil
}

func (f *fakeExamRepo) ListByUser(ctx context.Context, userID string, limit int) ([]store.ExamAttemptRecord, error) {
	return nil, nil
}

func (f *fakeExamRepo) PassCounts(ctx context.Context, userID string) (int, int, error) {
	return 0, 0, nil
}

type fakeActivityRepo struct {
	total store.ActivityCounters
	calls int
	err   error
}

func (f *fakeActivityRepo) Increment(ctx context.Context, userID, day string, c store.ActivityCounters) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.total.QuestionsAnswered += c.QuestionsAnswered
	f.total.QuestionsCorrect += c.QuestionsCorrect
	f.total.ExamsCompleted += c.ExamsCompleted
	f.total.ExamsPassed += c.ExamsPassed
	return nil
}

func (f *fakeActivityRepo) History(ctx context.Context, userID string) ([]store.ActivityRow, error) {
	return nil, nil
}

func (f *fakeActivityRepo) Day(ctx context.Context, userID, day string) (*store.ActivityRow, error) {
	return nil, nil
}

type fakeRecomputer struct{ calls int }

func (f *fakeRecomputer) Recompute(ctx context.Context, userID string, examType question.ExamType) error {
	f.calls++
	return nil
}

type fakeInvalidator struct {
	marks map[cache.View]int
}

func newFakeInvalidator() *fakeInvalidator {
	return &fakeInvalidator{marks: make(map[cache.View]int)}
}

func (f *fakeInvalidator) Invalidate(views ...cache.View) {
	for _, v := range views {
		f.marks[v]++
	}
}

type recordedEvent struct {
	name string
	err  error
}

type recordingSink struct {
	events []recordedEvent
}

func (s *recordingSink) Record(ctx context.Context, name string, payload map[string]any, err error) {
	s.events = append(s.events, recordedEvent{name: name, err: err})
}

type harness struct {
	attempts   *fakeAttemptRepo
	exams      *fakeExamRepo
	activity   *fakeActivityRepo
	inv        *fakeInvalidator
	recomputer *fakeRecomputer
	scheduler  *readiness.Scheduler
	sink       *recordingSink
	rec        *Recorder
}

func newHarness(userID string) *harness {
	h := &harness{
		attempts:   &fakeAttemptRepo{},
		exams:      &fakeExamRepo{},
		activity:   &fakeActivityRepo{},
		inv:        newFakeInvalidator(),
		recomputer: &fakeRecomputer{},
		sink:       &recordingSink{},
	}
	// High threshold so only forced recomputes fire in these tests.
	h.scheduler = readiness.NewScheduler(
		readiness.Config{BatchThreshold: 100, Debounce: time.Second},
		h.recomputer, h.inv, nil,
	)
	seq := 0
	h.rec = New(Options{
		UserID:    userID,
		Attempts:  h.attempts,
		Exams:     h.exams,
		Activity:  h.activity,
		Caches:    h.inv,
		Scheduler: h.scheduler,
		Sink:      h.sink,
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		},
	})
	return h
}

func techQuestion(id string, correct int) question.Question {
	return question.Question{
		ID:           id,
		DisplayCode:  "T1A01",
		Prompt:       "prompt",
		Options:      [4]string{"a", "b", "c", "d"},
		CorrectIndex: correct,
		ExamType:     question.ExamTechnician,
		Subelement:   "T1",
		Group:        "A",
	}
}

func TestRecordAttemptPersistsAndIncrements(t *testing.T) {
	h := newHarness("u1")

	ans := Answer{Question: techQuestion("q1", 2), SelectedIndex: 2}
	if err := h.rec.RecordAttempt(context.Background(), ans, KindStandalonePractice); err != nil {
		t.Fatal(err)
	}

	if len(h.attempts.appended) != 1 {
		t.Fatalf("appended %d attempts, want 1", len(h.attempts.appended))
	}
	got := h.attempts.appended[0]
	if got.UserID != "u1" || got.QuestionID != "q1" || !got.Correct {
		t.Errorf("attempt = %+v", got)
	}
	if got.SessionKind != string(KindStandalonePractice) {
		t.Errorf("session kind = %s", got.SessionKind)
	}
	if got.ParentExamID != nil {
		t.Error("standalone attempt must have no parent exam")
	}

	want := store.ActivityCounters{QuestionsAnswered: 1, QuestionsCorrect: 1}
	if h.activity.total != want {
		t.Errorf("activity = %+v, want %+v", h.activity.total, want)
	}
	if h.inv.marks[cache.ViewStreak] != 1 {
		t.Error("streak view not invalidated after confirmed increment")
	}
	if h.inv.marks[cache.ViewAttempts] != 1 {
		t.Error("attempts view not invalidated")
	}
}

func TestRecordAttemptPersistFailureStopsDownstream(t *testing.T) {
	h := newHarness("u1")
	h.attempts.err = errors.New("disk full")

	ans := Answer{Question: techQuestion("q1", 0), SelectedIndex: 0}
	err := h.rec.RecordAttempt(context.Background(), ans, KindStandalonePractice)
	if err == nil {
		t.Fatal("expected persist error to surface")
	}
	if h.activity.calls != 0 {
		t.Error("activity incremented despite failed persist")
	}
	if len(h.sink.events) != 1 || h.sink.events[0].name != "attempt.persist" {
		t.Errorf("telemetry = %+v, want one attempt.persist failure", h.sink.events)
	}
}

func TestRecordAttemptActivityFailureIsIsolated(t *testing.T) {
	h := newHarness("u1")
	h.activity.err = errors.New("counter unavailable")

	ans := Answer{Question: techQuestion("q1", 0), SelectedIndex: 1}
	if err := h.rec.RecordAttempt(context.Background(), ans, KindTopicPractice); err != nil {
		t.Fatalf("downstream failure must not surface: %v", err)
	}

	if h.inv.marks[cache.ViewStreak] != 0 {
		t.Error("streak view invalidated despite failed increment")
	}
	if h.inv.marks[cache.ViewAttempts] != 1 {
		t.Error("attempts view should be invalidated regardless")
	}
	if h.scheduler.Pending() != 1 {
		t.Errorf("scheduler pending = %d, want 1 (notify still runs)", h.scheduler.Pending())
	}
	if len(h.sink.events) != 1 || h.sink.events[0].name != "activity.increment" {
		t.Errorf("telemetry = %+v, want one activity.increment failure", h.sink.events)
	}
}

func TestRecordAttemptsQuizBatch(t *testing.T) {
	h := newHarness("u1")

	answers := []Answer{
		{Question: techQuestion("q1", 0), SelectedIndex: 0},
		{Question: techQuestion("q2", 0), SelectedIndex: 0},
		{Question: techQuestion("q3", 0), SelectedIndex: 0},
		{Question: techQuestion("q4", 0), SelectedIndex: 0},
		{Question: techQuestion("q5", 0), SelectedIndex: 1}, // miss
	}
	res, err := h.rec.RecordAttempts(context.Background(), answers, KindTopicQuiz)
	if err != nil {
		t.Fatal(err)
	}

	if res.Correct != 4 || res.Total != 5 || res.Percentage != 80 {
		t.Errorf("batch result = %+v", res)
	}
	if !res.Passed {
		t.Error("80%% quiz should pass the 74%% bar")
	}
	if len(h.attempts.appended) != 5 {
		t.Errorf("appended %d attempts, want 5", len(h.attempts.appended))
	}
	if h.activity.calls != 1 {
		t.Errorf("activity increments = %d, want 1 for the whole batch", h.activity.calls)
	}
	if h.recomputer.calls != 1 {
		t.Errorf("recompute runs = %d, want 1 (quiz batch forces)", h.recomputer.calls)
	}
}

func TestRecordExamPersistsExamWithChildren(t *testing.T) {
	h := newHarness("u1")

	// 8 of 10 correct clears the scaled technician threshold.
	answers := make([]Answer, 10)
	for i := range answers {
		q := techQuestion(fmt.Sprintf("q%d", i), 0)
		sel := 0
		if i >= 8 {
			sel = 1
		}
		answers[i] = Answer{Question: q, SelectedIndex: sel}
	}

	res, err := h.rec.RecordExam(context.Background(), question.ExamTechnician, answers)
	if err != nil {
		t.Fatal(err)
	}
	if res.RawScore != 8 || !res.Passed {
		t.Errorf("result = %+v, want 8 correct and passed", res)
	}

	if h.exams.exam == nil {
		t.Fatal("exam not persisted")
	}
	if h.exams.exam.RawScore != 8 || !h.exams.exam.Passed {
		t.Errorf("persisted exam = %+v", h.exams.exam)
	}
	if len(h.exams.children) != 10 {
		t.Fatalf("children = %d, want 10", len(h.exams.children))
	}
	for _, child := range h.exams.children {
		if child.ParentExamID == nil || *child.ParentExamID != h.exams.exam.ExamAttemptID {
			t.Fatalf("child %s not tagged with exam ID", child.QuestionID)
		}
		if child.SessionKind != string(KindExamAttempt) {
			t.Fatalf("child session kind = %s", child.SessionKind)
		}
	}

	want := store.ActivityCounters{QuestionsAnswered: 10, QuestionsCorrect: 8, ExamsCompleted: 1, ExamsPassed: 1}
	if h.activity.total != want {
		t.Errorf("activity = %+v, want %+v", h.activity.total, want)
	}
	if h.recomputer.calls != 1 {
		t.Errorf("recompute runs = %d, want 1 (exam forces)", h.recomputer.calls)
	}
	if h.inv.marks[cache.ViewExamResults] == 0 {
		t.Error("exam results view not invalidated")
	}
}

func TestSignedOutSessionRecordsNothing(t *testing.T) {
	h := newHarness("")

	ans := Answer{Question: techQuestion("q1", 0), SelectedIndex: 0}
	if err := h.rec.RecordAttempt(context.Background(), ans, KindStandalonePractice); err != nil {
		t.Fatal(err)
	}
	res, err := h.rec.RecordAttempts(context.Background(), []Answer{ans}, KindTopicQuiz)
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct != 1 {
		t.Errorf("batch result still computed locally: %+v", res)
	}
	examRes, err := h.rec.RecordExam(context.Background(), question.ExamTechnician, []Answer{ans})
	if err != nil {
		t.Fatal(err)
	}
	if examRes.TotalQuestions != 1 {
		t.Errorf("exam still scored locally: %+v", examRes)
	}

	if len(h.attempts.appended) != 0 || h.exams.exam != nil || h.activity.calls != 0 {
		t.Error("signed-out session must persist nothing")
	}
}

func TestRecordAttemptsEmptyBatch(t *testing.T) {
	h := newHarness("u1")

	res, err := h.rec.RecordAttempts(context.Background(), nil, KindTopicQuiz)
	if err != nil {
		t.Fatal(err)
	}
	if res != (BatchResult{}) {
		t.Errorf("empty batch result = %+v, want zero", res)
	}
	if h.activity.calls != 0 {
		t.Error("empty batch must not touch the store")
	}
}

func TestRecordAttemptsPartialBatchStillRunsDownstream(t *testing.T) {
	h := newHarness("u1")
	h.attempts.err = errors.New("disk full")
	h.attempts.failAfter = 2

	answers := []Answer{
		{Question: techQuestion("q1", 0), SelectedIndex: 0},
		{Question: techQuestion("q2", 0), SelectedIndex: 1}, // miss
		{Question: techQuestion("q3", 0), SelectedIndex: 0},
		{Question: techQuestion("q4", 0), SelectedIndex: 0},
	}
	_, err := h.rec.RecordAttempts(context.Background(), answers, KindTopicPractice)
	if err == nil {
		t.Fatal("expected the persist failure to surface")
	}

	if len(h.attempts.appended) != 2 {
		t.Fatalf("appended %d attempts, want 2", len(h.attempts.appended))
	}
	want := store.ActivityCounters{QuestionsAnswered: 2, QuestionsCorrect: 1}
	if h.activity.total != want {
		t.Errorf("activity = %+v, want %+v for the persisted prefix", h.activity.total, want)
	}
	if h.inv.marks[cache.ViewAttempts] != 1 {
		t.Error("attempts view not invalidated for the persisted prefix")
	}
	if h.scheduler.Pending() != 2 {
		t.Errorf("scheduler pending = %d, want 2", h.scheduler.Pending())
	}
}

func TestForcedBatchesCountTowardPending(t *testing.T) {
	h := newHarness("u1")

	answers := []Answer{
		{Question: techQuestion("q1", 0), SelectedIndex: 0},
		{Question: techQuestion("q2", 0), SelectedIndex: 0},
		{Question: techQuestion("q3", 0), SelectedIndex: 0},
	}
	if _, err := h.rec.RecordAttempts(context.Background(), answers, KindTopicQuiz); err != nil {
		t.Fatal(err)
	}
	// Second quiz inside the debounce window: the forced recompute is
	// skipped, but its attempts must still accumulate.
	if _, err := h.rec.RecordAttempts(context.Background(), answers, KindTopicQuiz); err != nil {
		t.Fatal(err)
	}

	if h.recomputer.calls != 1 {
		t.Errorf("recompute runs = %d, want 1 (second force debounced)", h.recomputer.calls)
	}
	if h.scheduler.Pending() != 6 {
		t.Errorf("scheduler pending = %d, want 6", h.scheduler.Pending())
	}
}

// Package exam scores completed exam attempts against the per-element
// passing thresholds published for each license exam.
package exam

import (
	"errors"
	"fmt"
	"math"

	"github.com/jmarlow/hamprep/internal/question"
)

// ErrNoQuestions reports a zero-length exam, which is a programming
// error in the caller, not a scoreable outcome.
var ErrNoQuestions = errors.New("exam has no questions")

// ErrUnknownExamType reports an exam type with no threshold entry.
var ErrUnknownExamType = errors.New("unknown exam type")

// QuizPassPercent is the aggregate pass bar for quiz-style batches
// (topic quizzes), distinct from the full-exam thresholds below.
const QuizPassPercent = 74

// Result is the outcome of scoring one completed exam attempt.
type Result struct {
	RawScore       int
	TotalQuestions int
	Percentage     int // rounded to nearest integer
	Passed         bool
}

// thresholdEntry defines the passing bar for one exam type as a
// fraction, so the same entry scales to any pool-sanctioned question
// count for that element.
type thresholdEntry struct {
	passNumerator   int
	passDenominator int
}

// passTable is the per-exam-type threshold table. Adding an exam type
// means adding a row here; the scoring logic never changes.
var passTable = map[question.ExamType]thresholdEntry{
	question.ExamTechnician: {26, 35},
	question.ExamGeneral:    {26, 35},
	question.ExamExtra:      {37, 50},
}

// PassThreshold returns the minimum raw score needed to pass an exam
// of the given type and question count.
func PassThreshold(t question.ExamType, totalQuestions int) (int, error) {
	if totalQuestions <= 0 {
		return 0, ErrNoQuestions
	}
	entry, ok := passTable[t]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownExamType, t)
	}
	// At the standard question count this is exactly the published
	// threshold (26/35, 37/50). Off-standard counts scale by the same
	// ratio, rounded up so a pass never needs less than the ratio.
	return ceilDiv(entry.passNumerator*totalQuestions, entry.passDenominator), nil
}

// Score computes the result for a completed exam: the ordered question
// list, the learner's selections keyed by question ID, and the exam
// type. Unanswered questions count as incorrect.
func Score(questions []question.Question, selections map[string]int, t question.ExamType) (Result, error) {
	total := len(questions)
	threshold, err := PassThreshold(t, total)
	if err != nil {
		return Result{}, err
	}

	raw := 0
	for _, q := range questions {
		if sel, ok := selections[q.ID]; ok && sel == q.CorrectIndex {
			raw++
		}
	}

	return Result{
		RawScore:       raw,
		TotalQuestions: total,
		Percentage:     Percentage(raw, total),
		Passed:         raw >= threshold,
	}, nil
}

// Percentage returns 100*raw/total rounded to the nearest integer.
// total must be positive; Score guards the zero case.
func Percentage(raw, total int) int {
	return int(math.Round(100 * float64(raw) / float64(total)))
}

// QuizPassed reports whether a quiz-style batch met the quiz pass bar.
func QuizPassed(correct, total int) bool {
	if total == 0 {
		return false
	}
	return Percentage(correct, total) >= QuizPassPercent
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

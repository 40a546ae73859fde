package exam

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jmarlow/hamprep/internal/question"
)

// examQuestions builds n questions where the correct answer is always
// option 0.
func examQuestions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:           fmt.Sprintf("q-%d", i),
			DisplayCode:  fmt.Sprintf("T1A%02d", i%100),
			CorrectIndex: 0,
		}
	}
	return qs
}

// selections answers the first correct questions right (option 0) and
// the rest wrong (option 1).
func selections(qs []question.Question, correct int) map[string]int {
	sel := make(map[string]int, len(qs))
	for i, q := range qs {
		if i < correct {
			sel[q.ID] = 0
		} else {
			sel[q.ID] = 1
		}
	}
	return sel
}

func TestScorePassBoundaries(t *testing.T) {
	tests := []struct {
		examType question.ExamType
		total    int
		raw      int
		passed   bool
	}{
		{question.ExamTechnician, 35, 25, false},
		{question.ExamTechnician, 35, 26, true},
		{question.ExamGeneral, 35, 25, false},
		{question.ExamGeneral, 35, 26, true},
		{question.ExamExtra, 50, 36, false},
		{question.ExamExtra, 50, 37, true},
	}

	for _, tt := range tests {
		qs := examQuestions(tt.total)
		res, err := Score(qs, selections(qs, tt.raw), tt.examType)
		if err != nil {
			t.Fatalf("Score(%s, %d/%d): %v", tt.examType, tt.raw, tt.total, err)
		}
		if res.RawScore != tt.raw {
			t.Errorf("%s %d/%d: raw = %d", tt.examType, tt.raw, tt.total, res.RawScore)
		}
		if res.Passed != tt.passed {
			t.Errorf("%s %d/%d: passed = %v, want %v", tt.examType, tt.raw, tt.total, res.Passed, tt.passed)
		}
	}
}

func TestScorePercentageRounding(t *testing.T) {
	qs := examQuestions(35)
	res, err := Score(qs, selections(qs, 26), question.ExamTechnician)
	if err != nil {
		t.Fatal(err)
	}
	// 26/35 = 74.28..., rounds to 74.
	if res.Percentage != 74 {
		t.Errorf("percentage = %d, want 74", res.Percentage)
	}
}

func TestScoreUnansweredCountsWrong(t *testing.T) {
	qs := examQuestions(35)
	sel := selections(qs, 26)
	delete(sel, qs[0].ID) // first question answered correctly -> now unanswered

	res, err := Score(qs, sel, question.ExamTechnician)
	if err != nil {
		t.Fatal(err)
	}
	if res.RawScore != 25 {
		t.Errorf("raw = %d, want 25", res.RawScore)
	}
	if res.Passed {
		t.Error("expected fail at 25/35")
	}
}

func TestScoreFailsFast(t *testing.T) {
	_, err := Score(nil, nil, question.ExamTechnician)
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("empty exam: err = %v, want ErrNoQuestions", err)
	}

	qs := examQuestions(35)
	_, err = Score(qs, selections(qs, 30), question.ExamType("novice"))
	if !errors.Is(err, ErrUnknownExamType) {
		t.Errorf("unknown type: err = %v, want ErrUnknownExamType", err)
	}
}

func TestPassThreshold(t *testing.T) {
	tests := []struct {
		examType question.ExamType
		total    int
		want     int
	}{
		{question.ExamTechnician, 35, 26},
		{question.ExamGeneral, 35, 26},
		{question.ExamExtra, 50, 37},
		// Off-standard counts scale by the same ratio, rounded up.
		{question.ExamTechnician, 10, 8},
		{question.ExamExtra, 10, 8},
	}

	for _, tt := range tests {
		got, err := PassThreshold(tt.examType, tt.total)
		if err != nil {
			t.Fatalf("PassThreshold(%s, %d): %v", tt.examType, tt.total, err)
		}
		if got != tt.want {
			t.Errorf("PassThreshold(%s, %d) = %d, want %d", tt.examType, tt.total, got, tt.want)
		}
	}
}

func TestQuizPassed(t *testing.T) {
	tests := []struct {
		correct, total int
		want           bool
	}{
		{0, 0, false},
		{5, 5, true},
		{4, 5, true},  // 80%
		{3, 5, false}, // 60%
		{37, 50, true},
		{7, 10, false}, // 70%
	}

	for _, tt := range tests {
		if got := QuizPassed(tt.correct, tt.total); got != tt.want {
			t.Errorf("QuizPassed(%d, %d) = %v, want %v", tt.correct, tt.total, got, tt.want)
		}
	}
}

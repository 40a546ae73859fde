package picker

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/jmarlow/hamprep/internal/question"
)

// countingSource wraps a PCG source and counts how many random values
// were consumed, so tests can assert that an operation drew nothing.
type countingSource struct {
	inner *rand.PCG
	calls int
}

func (s *countingSource) Uint64() uint64 {
	s.calls++
	return s.inner.Uint64()
}

func testPool(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:          fmt.Sprintf("q-%d", i),
			DisplayCode: fmt.Sprintf("T1A%02d", i+1),
		}
	}
	return qs
}

func newTestCursor(n int) (*Cursor, *countingSource) {
	src := &countingSource{inner: rand.NewPCG(1, 2)}
	return New(testPool(n), rand.New(src)), src
}

func TestAdvanceNoRepeatsUntilExhausted(t *testing.T) {
	const k = 5
	c, _ := newTestCursor(k)

	drawn := make(map[string]bool)
	for i := 0; i < k; i++ {
		e, ok := c.Advance()
		if !ok {
			t.Fatalf("advance %d failed", i)
		}
		if drawn[e.Question.ID] {
			t.Fatalf("advance %d repeated %s before exhaustion", i, e.Question.ID)
		}
		drawn[e.Question.ID] = true
	}

	if c.HistoryLen() != k {
		t.Fatalf("history length = %d, want %d", c.HistoryLen(), k)
	}

	// The (K+1)th advance wraps and resets history.
	e, ok := c.Advance()
	if !ok {
		t.Fatal("wraparound advance failed")
	}
	if !drawn[e.Question.ID] {
		t.Error("wraparound draw should come from the already-shown pool")
	}
	if c.HistoryLen() != 1 {
		t.Errorf("history length after wrap = %d, want 1", c.HistoryLen())
	}
	if c.Pos() != 0 {
		t.Errorf("cursor pos after wrap = %d, want 0", c.Pos())
	}
}

func TestBackThenForwardConsumesNoDraw(t *testing.T) {
	c, src := newTestCursor(5)

	for i := 0; i < 3; i++ {
		if _, ok := c.Advance(); !ok {
			t.Fatalf("advance %d failed", i)
		}
	}
	third, _ := c.Current()
	callsAfterDraws := src.calls

	back, ok := c.GoBack()
	if !ok {
		t.Fatal("goBack failed")
	}

	fwd, ok := c.Advance()
	if !ok {
		t.Fatal("advance after goBack failed")
	}

	if src.calls != callsAfterDraws {
		t.Errorf("back-then-forward consumed %d random values, want 0", src.calls-callsAfterDraws)
	}
	if fwd.Question.ID != third.Question.ID {
		t.Errorf("advance after goBack returned %s, want %s", fwd.Question.ID, third.Question.ID)
	}
	if back.Question.ID == fwd.Question.ID {
		// Sanity: the pool has distinct questions, so back must differ.
		t.Errorf("goBack returned the same question as the entry ahead of it")
	}
}

func TestGoBackNeverDiscards(t *testing.T) {
	c, _ := newTestCursor(5)
	for i := 0; i < 4; i++ {
		c.Advance()
	}

	for c.Pos() > 0 {
		if _, ok := c.GoBack(); !ok {
			t.Fatal("goBack failed mid-history")
		}
	}
	if _, ok := c.GoBack(); ok {
		t.Error("goBack at index 0 should report false")
	}
	if c.HistoryLen() != 4 {
		t.Errorf("history length = %d after walking back, want 4", c.HistoryLen())
	}
}

func TestEmptyPool(t *testing.T) {
	c, _ := newTestCursor(0)

	if _, ok := c.DrawNext(nil); ok {
		t.Error("DrawNext on empty pool should report false")
	}
	if _, ok := c.Advance(); ok {
		t.Error("Advance on empty pool should report false")
	}
	if _, ok := c.Reset(); ok {
		t.Error("Reset on empty pool should report false")
	}
}

func TestSingleQuestionPool(t *testing.T) {
	c, _ := newTestCursor(1)

	first, ok := c.Advance()
	if !ok {
		t.Fatal("first advance failed")
	}

	// Every subsequent advance is a wraparound draw of the same question.
	for i := 0; i < 3; i++ {
		e, ok := c.Advance()
		if !ok {
			t.Fatalf("advance %d failed", i)
		}
		if e.Question.ID != first.Question.ID {
			t.Errorf("advance %d returned %s, want %s", i, e.Question.ID, first.Question.ID)
		}
		if c.HistoryLen() != 1 {
			t.Errorf("history length = %d, want 1", c.HistoryLen())
		}
	}
}

func TestReset(t *testing.T) {
	c, _ := newTestCursor(5)
	for i := 0; i < 3; i++ {
		c.Advance()
	}

	e, ok := c.Reset()
	if !ok {
		t.Fatal("reset failed")
	}
	if c.HistoryLen() != 1 || c.Pos() != 0 {
		t.Errorf("after reset: history=%d pos=%d, want 1/0", c.HistoryLen(), c.Pos())
	}
	if e.Answered {
		t.Error("fresh entry should be unanswered")
	}
}

func TestMarkAnswered(t *testing.T) {
	c, _ := newTestCursor(3)

	if c.MarkAnswered(2) {
		t.Error("MarkAnswered before first draw should report false")
	}

	c.Advance()
	if !c.MarkAnswered(2) {
		t.Fatal("MarkAnswered failed")
	}

	e, _ := c.Current()
	if !e.Answered || e.SelectedIndex != 2 {
		t.Errorf("entry = %+v, want answered with index 2", e)
	}

	// The answer survives navigation.
	c.Advance()
	back, _ := c.GoBack()
	if !back.Answered || back.SelectedIndex != 2 {
		t.Errorf("after navigation entry = %+v, want answered with index 2", back)
	}
}

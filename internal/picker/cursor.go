// Package picker selects practice questions from a pool with
// no-repeat-until-exhausted semantics and a navigable session history.
package picker

import (
	"math/rand/v2"

	"github.com/jmarlow/hamprep/internal/question"
)

// HistoryEntry is one question the session has shown. Entries record
// the learner's answer so stepping back re-displays it.
type HistoryEntry struct {
	Question      question.Question
	SelectedIndex int // -1 until answered
	Answered      bool
}

// Draw is the result of pulling a question from the pool.
type Draw struct {
	Question question.Question
	// Wrapped is true when the whole pool had been shown and the draw
	// restarted from the full pool.
	Wrapped bool
}

// Cursor walks a question pool for one practice session. It tracks the
// set of questions shown since the last wraparound, an ordered history,
// and the learner's position within that history. The zero value is
// not usable; construct with New.
type Cursor struct {
	pool    []question.Question
	seen    map[string]bool
	history []HistoryEntry
	pos     int
	rng     *rand.Rand
}

// New creates a cursor over pool drawing from rng. Passing a seeded
// rng makes draw sequences reproducible in tests; pass
// rand.New(rand.NewPCG(...)) with entropy for real sessions.
func New(pool []question.Question, rng *rand.Rand) *Cursor {
	return &Cursor{
		pool: pool,
		seen: make(map[string]bool),
		pos:  -1,
		rng:  rng,
	}
}

// PoolSize returns the size of the underlying pool.
func (c *Cursor) PoolSize() int {
	return len(c.pool)
}

// HistoryLen returns the number of entries in the session history.
func (c *Cursor) HistoryLen() int {
	return len(c.history)
}

// Pos returns the cursor's index into the history, or -1 before the
// first draw.
func (c *Cursor) Pos() int {
	return c.pos
}

// Current returns the entry at the cursor, or false before the first
// draw.
func (c *Cursor) Current() (HistoryEntry, bool) {
	if c.pos < 0 || c.pos >= len(c.history) {
		return HistoryEntry{}, false
	}
	return c.history[c.pos], true
}

// DrawNext picks a question not in exclude, uniformly at random. When
// every pool question is excluded, it redraws uniformly from the full
// pool and reports Wrapped. An empty pool returns ok=false.
func (c *Cursor) DrawNext(exclude map[string]bool) (Draw, bool) {
	if len(c.pool) == 0 {
		return Draw{}, false
	}

	available := make([]question.Question, 0, len(c.pool))
	for _, q := range c.pool {
		if !exclude[q.ID] {
			available = append(available, q)
		}
	}

	if len(available) > 0 {
		return Draw{Question: available[c.rng.IntN(len(available))]}, true
	}

	// Pool exhausted: repeats are allowed again.
	return Draw{
		Question: c.pool[c.rng.IntN(len(c.pool))],
		Wrapped:  true,
	}, true
}

// Advance moves the cursor forward one step. Inside history it reuses
// the existing entry without consuming a draw, so back-then-forward
// returns the same question. At the end of history it draws a new
// question, excluding everything shown since the last wraparound; a
// wrapped draw clears the seen set and restarts history at a single
// fresh entry, resetting the visible question counter.
func (c *Cursor) Advance() (HistoryEntry, bool) {
	if c.pos >= 0 && c.pos < len(c.history)-1 {
		c.pos++
		return c.history[c.pos], true
	}

	d, ok := c.DrawNext(c.seen)
	if !ok {
		return HistoryEntry{}, false
	}

	entry := HistoryEntry{Question: d.Question, SelectedIndex: -1}
	if d.Wrapped {
		c.seen = map[string]bool{d.Question.ID: true}
		c.history = []HistoryEntry{entry}
		c.pos = 0
		return entry, true
	}

	c.seen[d.Question.ID] = true
	c.history = append(c.history, entry)
	c.pos = len(c.history) - 1
	return entry, true
}

// GoBack moves the cursor one step earlier. It never discards entries;
// at index 0 (or before the first draw) it reports false and stays put.
func (c *Cursor) GoBack() (HistoryEntry, bool) {
	if c.pos <= 0 {
		return HistoryEntry{}, false
	}
	c.pos--
	return c.history[c.pos], true
}

// Reset clears the seen set and history, then draws a fresh first
// question. An empty pool reports false and leaves the cursor empty.
func (c *Cursor) Reset() (HistoryEntry, bool) {
	c.seen = make(map[string]bool)
	c.history = nil
	c.pos = -1
	return c.Advance()
}

// MarkAnswered records the learner's selection on the current entry.
// It reports false before the first draw.
func (c *Cursor) MarkAnswered(selectedIndex int) bool {
	if c.pos < 0 || c.pos >= len(c.history) {
		return false
	}
	c.history[c.pos].SelectedIndex = selectedIndex
	c.history[c.pos].Answered = true
	return true
}

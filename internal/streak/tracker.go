// Package streak derives daily-engagement streaks from aggregated
// activity rows. Nothing here is stored; the streak is recomputed on
// every read so the counters stay the single source of truth.
package streak

import (
	"context"
	"time"

	"github.com/jmarlow/hamprep/internal/store"
)

// DefaultDailyGoal is the number of questions a calendar day needs
// before it counts toward the streak. Tunable, not an invariant.
const DefaultDailyGoal = 10

// Clock supplies the current time, injectable for tests.
type Clock func() time.Time

// Info is the derived streak state, recomputed on read.
type Info struct {
	CurrentStreak          int
	LongestStreak          int
	LastQualifyingDate     string // YYYY-MM-DD, empty if no day ever qualified
	QuestionsAnsweredToday int
	QuestionsNeededToday   int
	IsAtRisk               bool
}

// Tracker derives streak info for one user from activity history.
type Tracker struct {
	activity store.ActivityRepo
	goal     int
	now      Clock
}

// NewTracker creates a tracker. A zero or negative goal falls back to
// DefaultDailyGoal; a nil clock falls back to time.Now.
func NewTracker(activity store.ActivityRepo, goal int, now Clock) *Tracker {
	if goal <= 0 {
		goal = DefaultDailyGoal
	}
	if now == nil {
		now = time.Now
	}
	return &Tracker{activity: activity, goal: goal, now: now}
}

// Goal returns the daily qualification threshold.
func (t *Tracker) Goal() int {
	return t.goal
}

// Info derives the user's streak state. An empty user ID returns zero
// info without touching the store.
func (t *Tracker) Info(ctx context.Context, userID string) (Info, error) {
	info := Info{QuestionsNeededToday: t.goal}
	if userID == "" {
		return info, nil
	}

	history, err := t.activity.History(ctx, userID)
	if err != nil {
		return Info{}, err
	}

	byDay := make(map[string]store.ActivityRow, len(history))
	for _, row := range history {
		byDay[row.Day] = row
	}

	now := t.now()
	today := store.ActivityDay(now)
	yesterday := store.ActivityDay(now.AddDate(0, 0, -1))

	info.QuestionsAnsweredToday = byDay[today].QuestionsAnswered
	info.QuestionsNeededToday = max(0, t.goal-info.QuestionsAnsweredToday)

	qualifies := func(day string) bool {
		return byDay[day].QuestionsAnswered >= t.goal
	}

	// Current streak: consecutive qualifying days ending today, or
	// ending yesterday when today hasn't qualified yet. A streak
	// anchored at yesterday is still alive, just at risk.
	anchor := ""
	switch {
	case qualifies(today):
		anchor = today
	case qualifies(yesterday):
		anchor = yesterday
		info.IsAtRisk = true
	}
	if anchor != "" {
		day, _ := time.Parse("2006-01-02", anchor)
		for qualifies(store.ActivityDay(day)) {
			info.CurrentStreak++
			day = day.AddDate(0, 0, -1)
		}
	}

	// Longest streak: maximum consecutive qualifying run anywhere in
	// history. History is most-recent-first.
	run := 0
	var prev time.Time
	for i := len(history) - 1; i >= 0; i-- {
		row := history[i]
		if row.QuestionsAnswered < t.goal {
			run = 0
			continue
		}
		day, err := time.Parse("2006-01-02", row.Day)
		if err != nil {
			continue
		}
		if run > 0 && day.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		prev = day
		info.LongestStreak = max(info.LongestStreak, run)
		info.LastQualifyingDate = row.Day
	}
	info.LongestStreak = max(info.LongestStreak, info.CurrentStreak)

	return info, nil
}

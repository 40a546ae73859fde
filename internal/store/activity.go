package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent"
	"github.com/jmarlow/hamprep/ent/dailyactivity"
)

// activityRepo implements ActivityRepo using the ent client.
type activityRepo struct {
	client *ent.Client
}

// Increment upserts the (user, day) row, adding the counters to any
// existing values. The upsert keeps the operation add-only: a lost race
// with another increment still leaves both sets of counts applied.
func (r *activityRepo) Increment(ctx context.Context, userID, day string, c ActivityCounters) error {
	err := r.client.DailyActivity.Create().
		SetUserID(userID).
		SetActivityDay(day).
		SetQuestionsAnswered(c.QuestionsAnswered).
		SetQuestionsCorrect(c.QuestionsCorrect).
		SetExamsCompleted(c.ExamsCompleted).
		SetExamsPassed(c.ExamsPassed).
		OnConflict(
			entsql.ConflictColumns(dailyactivity.FieldUserID, dailyactivity.FieldActivityDay),
		).
		Update(func(u *ent.DailyActivityUpsert) {
			u.AddQuestionsAnswered(c.QuestionsAnswered)
			u.AddQuestionsCorrect(c.QuestionsCorrect)
			u.AddExamsCompleted(c.ExamsCompleted)
			u.AddExamsPassed(c.ExamsPassed)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("increment daily activity: %w", err)
	}
	return nil
}

func (r *activityRepo) History(ctx context.Context, userID string) ([]ActivityRow, error) {
	rows, err := r.client.DailyActivity.Query().
		Where(dailyactivity.UserID(userID)).
		Order(ent.Desc(dailyactivity.FieldActivityDay)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query activity history: %w", err)
	}

	out := make([]ActivityRow, len(rows))
	for i, a := range rows {
		out[i] = activityRowFromEnt(a)
	}
	return out, nil
}

func (r *activityRepo) Day(ctx context.Context, userID, day string) (*ActivityRow, error) {
	a, err := r.client.DailyActivity.Query().
		Where(dailyactivity.UserID(userID), dailyactivity.ActivityDay(day)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query activity day: %w", err)
	}
	row := activityRowFromEnt(a)
	return &row, nil
}

func activityRowFromEnt(a *ent.DailyActivity) ActivityRow {
	return ActivityRow{
		UserID:            a.UserID,
		Day:               a.ActivityDay,
		QuestionsAnswered: a.QuestionsAnswered,
		QuestionsCorrect:  a.QuestionsCorrect,
		ExamsCompleted:    a.ExamsCompleted,
		ExamsPassed:       a.ExamsPassed,
	}
}

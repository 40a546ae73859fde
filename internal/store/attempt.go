package store

import (
	"context"
	"fmt"

	"github.com/jmarlow/hamprep/ent"
	"github.com/jmarlow/hamprep/ent/attempt"
)

// attemptRepo implements AttemptRepo using the ent client.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) Append(ctx context.Context, data AttemptData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.Attempt.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetDisplayCode(data.DisplayCode).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrect(data.Correct).
		SetSessionKind(data.SessionKind).
		SetNillableParentExamID(data.ParentExamID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) ListByUser(ctx context.Context, userID string, limit int) ([]AttemptRecord, error) {
	query := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		Order(ent.Desc(attempt.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	records := make([]AttemptRecord, len(rows))
	for i, a := range rows {
		records[i] = AttemptRecord{
			AttemptData: AttemptData{
				AttemptID:     a.AttemptID,
				UserID:        a.UserID,
				QuestionID:    a.QuestionID,
				DisplayCode:   a.DisplayCode,
				SelectedIndex: a.SelectedIndex,
				Correct:       a.Correct,
				SessionKind:   a.SessionKind,
				ParentExamID:  a.ParentExamID,
			},
			Sequence:  a.Sequence,
			Timestamp: a.Timestamp,
		}
	}
	return records, nil
}

func (r *attemptRepo) RecentResults(ctx context.Context, userID string, limit int) ([]bool, error) {
	query := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		Order(ent.Desc(attempt.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent results: %w", err)
	}

	results := make([]bool, len(rows))
	for i, a := range rows {
		results[i] = a.Correct
	}
	return results, nil
}

func (r *attemptRepo) PerQuestionStats(ctx context.Context, userID string) ([]QuestionStat, error) {
	rows, err := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query per-question stats: %w", err)
	}

	byQuestion := make(map[string]*QuestionStat)
	order := make([]string, 0)
	for _, a := range rows {
		st := byQuestion[a.QuestionID]
		if st == nil {
			st = &QuestionStat{QuestionID: a.QuestionID}
			byQuestion[a.QuestionID] = st
			order = append(order, a.QuestionID)
		}
		st.Attempts++
		if a.Correct {
			st.Correct++
		}
	}

	stats := make([]QuestionStat, len(order))
	for i, id := range order {
		stats[i] = *byQuestion[id]
	}
	return stats, nil
}

func (r *attemptRepo) OverallAccuracy(ctx context.Context, userID string) (float64, int, error) {
	total, err := r.client.Attempt.Query().
		Where(attempt.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count attempts: %w", err)
	}
	if total == 0 {
		return 0, 0, nil
	}

	correct, err := r.client.Attempt.Query().
		Where(attempt.UserID(userID), attempt.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct attempts: %w", err)
	}

	return float64(correct) / float64(total), total, nil
}

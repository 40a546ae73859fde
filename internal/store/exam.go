package store

import (
	"context"
	"fmt"

	"github.com/jmarlow/hamprep/ent"
	"github.com/jmarlow/hamprep/ent/examattempt"
)

// examRepo implements ExamRepo using the ent client.
type examRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// Create writes the parent exam attempt and every child attempt in a
// single transaction, so the invariant that total_questions equals the
// number of referencing attempts can't be broken by a partial write.
func (r *examRepo) Create(ctx context.Context, exam ExamAttemptData, attempts []AttemptData) error {
	if len(attempts) != exam.TotalQuestions {
		return fmt.Errorf("exam %s: %d child attempts for total_questions=%d",
			exam.ExamAttemptID, len(attempts), exam.TotalQuestions)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := r.createInTx(ctx, tx, exam, attempts); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit exam attempt: %w", err)
	}
	return nil
}

func (r *examRepo) createInTx(ctx context.Context, tx *ent.Tx, exam ExamAttemptData, attempts []AttemptData) error {
	_, err := tx.ExamAttempt.Create().
		SetExamAttemptID(exam.ExamAttemptID).
		SetUserID(exam.UserID).
		SetExamType(exam.ExamType).
		SetRawScore(exam.RawScore).
		SetTotalQuestions(exam.TotalQuestions).
		SetPercentage(exam.Percentage).
		SetPassed(exam.Passed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save exam attempt: %w", err)
	}

	for _, a := range attempts {
		seqNum, err := r.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		_, err = tx.Attempt.Create().
			SetSequence(seqNum).
			SetAttemptID(a.AttemptID).
			SetUserID(a.UserID).
			SetQuestionID(a.QuestionID).
			SetDisplayCode(a.DisplayCode).
			SetSelectedIndex(a.SelectedIndex).
			SetCorrect(a.Correct).
			SetSessionKind(a.SessionKind).
			SetParentExamID(exam.ExamAttemptID).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save exam child attempt: %w", err)
		}
	}
	return nil
}

func (r *examRepo) ListByUser(ctx context.Context, userID string, limit int) ([]ExamAttemptRecord, error) {
	query := r.client.ExamAttempt.Query().
		Where(examattempt.UserID(userID)).
		Order(ent.Desc(examattempt.FieldCreatedAt))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam attempts: %w", err)
	}

	records := make([]ExamAttemptRecord, len(rows))
	for i, e := range rows {
		records[i] = ExamAttemptRecord{
			ExamAttemptData: ExamAttemptData{
				ExamAttemptID:  e.ExamAttemptID,
				UserID:         e.UserID,
				ExamType:       e.ExamType,
				RawScore:       e.RawScore,
				TotalQuestions: e.TotalQuestions,
				Percentage:     e.Percentage,
				Passed:         e.Passed,
			},
			CreatedAt: e.CreatedAt,
		}
	}
	return records, nil
}

func (r *examRepo) PassCounts(ctx context.Context, userID string) (int, int, error) {
	total, err := r.client.ExamAttempt.Query().
		Where(examattempt.UserID(userID)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count exams: %w", err)
	}

	passed, err := r.client.ExamAttempt.Query().
		Where(examattempt.UserID(userID), examattempt.Passed(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count passed exams: %w", err)
	}

	return passed, total, nil
}

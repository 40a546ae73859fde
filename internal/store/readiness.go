package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent"
	"github.com/jmarlow/hamprep/ent/readinesssnapshot"
)

// readinessRepo implements ReadinessRepo using the ent client.
type readinessRepo struct {
	client *ent.Client
}

// Upsert replaces the current day's snapshot for the user and exam
// type. Re-running a recompute within the same day overwrites the
// day's row instead of accumulating history rows.
func (r *readinessRepo) Upsert(ctx context.Context, data ReadinessData) error {
	err := r.client.ReadinessSnapshot.Create().
		SetUserID(data.UserID).
		SetExamType(data.ExamType).
		SetSnapshotDay(data.SnapshotDay).
		SetReadinessScore(data.ReadinessScore).
		SetPassProbability(data.PassProbability).
		SetRecentAccuracy(data.RecentAccuracy).
		SetOverallAccuracy(data.OverallAccuracy).
		SetCoverage(data.Coverage).
		SetMastery(data.Mastery).
		OnConflict(
			entsql.ConflictColumns(
				readinesssnapshot.FieldUserID,
				readinesssnapshot.FieldExamType,
				readinesssnapshot.FieldSnapshotDay,
			),
		).
		Update(func(u *ent.ReadinessSnapshotUpsert) {
			u.SetReadinessScore(data.ReadinessScore)
			u.SetPassProbability(data.PassProbability)
			u.SetRecentAccuracy(data.RecentAccuracy)
			u.SetOverallAccuracy(data.OverallAccuracy)
			u.SetCoverage(data.Coverage)
			u.SetMastery(data.Mastery)
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert readiness snapshot: %w", err)
	}
	return nil
}

func (r *readinessRepo) Latest(ctx context.Context, userID, examType string) (*ReadinessData, error) {
	row, err := r.client.ReadinessSnapshot.Query().
		Where(
			readinesssnapshot.UserID(userID),
			readinesssnapshot.ExamType(examType),
		).
		Order(ent.Desc(readinesssnapshot.FieldSnapshotDay)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest readiness: %w", err)
	}

	return &ReadinessData{
		UserID:          row.UserID,
		ExamType:        row.ExamType,
		SnapshotDay:     row.SnapshotDay,
		ReadinessScore:  row.ReadinessScore,
		PassProbability: row.PassProbability,
		RecentAccuracy:  row.RecentAccuracy,
		OverallAccuracy: row.OverallAccuracy,
		Coverage:        row.Coverage,
		Mastery:         row.Mastery,
	}, nil
}

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmarlow/hamprep/ent"
	"github.com/jmarlow/hamprep/ent/badgeunlock"
)

// badgeRepo implements BadgeRepo using the ent client.
type badgeRepo struct {
	client *ent.Client
}

func (r *badgeRepo) Unlocks(ctx context.Context, userID string) ([]BadgeUnlockRecord, error) {
	rows, err := r.client.BadgeUnlock.Query().
		Where(badgeunlock.UserID(userID)).
		Order(ent.Desc(badgeunlock.FieldUnlockedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query badge unlocks: %w", err)
	}

	records := make([]BadgeUnlockRecord, len(rows))
	for i, b := range rows {
		records[i] = BadgeUnlockRecord{
			UserID:     b.UserID,
			BadgeID:    b.BadgeID,
			UnlockedAt: b.UnlockedAt,
			Seen:       b.Seen,
		}
	}
	return records, nil
}

// CreateIfMissing relies on the unique (user_id, badge_id) index: a
// concurrent or repeated unlock surfaces as a constraint error, which
// is reported as "not new" rather than a failure.
func (r *badgeRepo) CreateIfMissing(ctx context.Context, userID, badgeID string, at time.Time) (bool, error) {
	_, err := r.client.BadgeUnlock.Create().
		SetUserID(userID).
		SetBadgeID(badgeID).
		SetUnlockedAt(at).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return false, nil
		}
		return false, fmt.Errorf("save badge unlock: %w", err)
	}
	return true, nil
}

func (r *badgeRepo) MarkSeen(ctx context.Context, userID string, badgeIDs []string) error {
	if len(badgeIDs) == 0 {
		return nil
	}
	_, err := r.client.BadgeUnlock.Update().
		Where(badgeunlock.UserID(userID), badgeunlock.BadgeIDIn(badgeIDs...)).
		SetSeen(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark badges seen: %w", err)
	}
	return nil
}

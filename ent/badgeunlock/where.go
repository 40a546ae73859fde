// Code generated by ent, DO NOT EDIT.

package badgeunlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/jmarlow/hamprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldUserID, v))
}

// BadgeID applies equality check predicate on the "badge_id" field. It's identical to BadgeIDEQ.
func BadgeID(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldBadgeID, v))
}

// UnlockedAt applies equality check predicate on the "unlocked_at" field. It's identical to UnlockedAtEQ.
func UnlockedAt(v time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldUnlockedAt, v))
}

// Seen applies equality check predicate on the "seen" field. It's identical to SeenEQ.
func Seen(v bool) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldSeen, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldContainsFold(FieldUserID, v))
}

// BadgeIDEQ applies the EQ predicate on the "badge_id" field.
func BadgeIDEQ(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldBadgeID, v))
}

// BadgeIDNEQ applies the NEQ predicate on the "badge_id" field.
func BadgeIDNEQ(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNEQ(FieldBadgeID, v))
}

// BadgeIDIn applies the In predicate on the "badge_id" field.
func BadgeIDIn(vs ...string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldIn(FieldBadgeID, vs...))
}

// BadgeIDNotIn applies the NotIn predicate on the "badge_id" field.
func BadgeIDNotIn(vs ...string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNotIn(FieldBadgeID, vs...))
}

// BadgeIDGT applies the GT predicate on the "badge_id" field.
func BadgeIDGT(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldGT(FieldBadgeID, v))
}

// BadgeIDGTE applies the GTE predicate on the "badge_id" field.
func BadgeIDGTE(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldGTE(FieldBadgeID, v))
}

// BadgeIDLT applies the LT predicate on the "badge_id" field.
func BadgeIDLT(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldLT(FieldBadgeID, v))
}

// BadgeIDLTE applies the LTE predicate on the "badge_id" field.
func BadgeIDLTE(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldLTE(FieldBadgeID, v))
}

// BadgeIDContains applies the Contains predicate on the "badge_id" field.
func BadgeIDContains(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldContains(FieldBadgeID, v))
}

// BadgeIDHasPrefix applies the HasPrefix predicate on the "badge_id" field.
func BadgeIDHasPrefix(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldHasPrefix(FieldBadgeID, v))
}

// BadgeIDHasSuffix applies the HasSuffix predicate on the "badge_id" field.
func BadgeIDHasSuffix(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldHasSuffix(FieldBadgeID, v))
}

// BadgeIDEqualFold applies the EqualFold predicate on the "badge_id" field.
func BadgeIDEqualFold(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEqualFold(FieldBadgeID, v))
}

// BadgeIDContainsFold applies the ContainsFold predicate on the "badge_id" field.
func BadgeIDContainsFold(v string) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldContainsFold(FieldBadgeID, v))
}

// UnlockedAtEQ applies the EQ predicate on the "unlocked_at" field.
func UnlockedAtEQ(v time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldUnlockedAt, v))
}

// UnlockedAtNEQ applies the NEQ predicate on the "unlocked_at" field.
func UnlockedAtNEQ(v time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNEQ(FieldUnlockedAt, v))
}

// UnlockedAtIn applies the In predicate on the "unlocked_at" field.
func UnlockedAtIn(vs ...time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldIn(FieldUnlockedAt, vs...))
}

// UnlockedAtNotIn applies the NotIn predicate on the "unlocked_at" field.
func UnlockedAtNotIn(vs ...time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNotIn(FieldUnlockedAt, vs...))
}

// UnlockedAtGT applies the GT predicate on the "unlocked_at" field.
func UnlockedAtGT(v time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldGT(FieldUnlockedAt, v))
}

// UnlockedAtGTE applies the GTE predicate on the "unlocked_at" field.
func UnlockedAtGTE(v time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldGTE(FieldUnlockedAt, v))
}

// UnlockedAtLT applies the LT predicate on the "unlocked_at" field.
func UnlockedAtLT(v time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldLT(FieldUnlockedAt, v))
}

// UnlockedAtLTE applies the LTE predicate on the "unlocked_at" field.
func UnlockedAtLTE(v time.Time) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldLTE(FieldUnlockedAt, v))
}

// SeenEQ applies the EQ predicate on the "seen" field.
func SeenEQ(v bool) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldEQ(FieldSeen, v))
}

// SeenNEQ applies the NEQ predicate on the "seen" field.
func SeenNEQ(v bool) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.FieldNEQ(FieldSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BadgeUnlock) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BadgeUnlock) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BadgeUnlock) predicate.BadgeUnlock {
	return predicate.BadgeUnlock(sql.NotPredicates(p))
}

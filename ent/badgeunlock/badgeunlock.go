// Code generated by ent, DO NOT EDIT.

package badgeunlock

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the badgeunlock type in the database.
	Label = "badge_unlock"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldBadgeID holds the string denoting the badge_id field in the database.
	FieldBadgeID = "badge_id"
	// FieldUnlockedAt holds the string denoting the unlocked_at field in the database.
	FieldUnlockedAt = "unlocked_at"
	// FieldSeen holds the string denoting the seen field in the database.
	FieldSeen = "seen"
	// Table holds the table name of the badgeunlock in the database.
	Table = "badge_unlocks"
)

// Columns holds all SQL columns for badgeunlock fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldBadgeID,
	FieldUnlockedAt,
	FieldSeen,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	BadgeIDValidator func(string) error
	// DefaultUnlockedAt holds the default value on creation for the "unlocked_at" field.
	DefaultUnlockedAt func() time.Time
	// DefaultSeen holds the default value on creation for the "seen" field.
	DefaultSeen bool
)

// OrderOption defines the ordering options for the BadgeUnlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByBadgeID orders the results by the badge_id field.
func ByBadgeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadgeID, opts...).ToFunc()
}

// ByUnlockedAt orders the results by the unlocked_at field.
func ByUnlockedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlockedAt, opts...).ToFunc()
}

// BySeen orders the results by the seen field.
func BySeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeen, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jmarlow/hamprep/ent/badgeunlock"
)

// BadgeUnlockCreate is the builder for creating a BadgeUnlock entity.
type BadgeUnlockCreate struct {
	config
	mutation *BadgeUnlockMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *BadgeUnlockCreate) SetUserID(v string) *BadgeUnlockCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetBadgeID sets the "badge_id" field.
func (_c *BadgeUnlockCreate) SetBadgeID(v string) *BadgeUnlockCreate {
	_c.mutation.SetBadgeID(v)
	return _c
}

// SetUnlockedAt sets the "unlocked_at" field.
func (_c *BadgeUnlockCreate) SetUnlockedAt(v time.Time) *BadgeUnlockCreate {
	_c.mutation.SetUnlockedAt(v)
	return _c
}

// SetNillableUnlockedAt sets the "unlocked_at" field if the given value is not nil.
func (_c *BadgeUnlockCreate) SetNillableUnlockedAt(v *time.Time) *BadgeUnlockCreate {
	if v != nil {
		_c.SetUnlockedAt(*v)
	}
	return _c
}

// SetSeen sets the "seen" field.
func (_c *BadgeUnlockCreate) SetSeen(v bool) *BadgeUnlockCreate {
	_c.mutation.SetSeen(v)
	return _c
}

// SetNillableSeen sets the "seen" field if the given value is not nil.
func (_c *BadgeUnlockCreate) SetNillableSeen(v *bool) *BadgeUnlockCreate {
	if v != nil {
		_c.SetSeen(*v)
	}
	return _c
}

// Mutation returns the BadgeUnlockMutation object of the builder.
func (_c *BadgeUnlockCreate) Mutation() *BadgeUnlockMutation {
	return _c.mutation
}

// Save creates the BadgeUnlock in the database.
func (_c *BadgeUnlockCreate) Save(ctx context.Context) (*BadgeUnlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BadgeUnlockCreate) SaveX(ctx context.Context) *BadgeUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeUnlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeUnlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BadgeUnlockCreate) defaults() {
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		v := badgeunlock.DefaultUnlockedAt()
		_c.mutation.SetUnlockedAt(v)
	}
	if _, ok := _c.mutation.Seen(); !ok {
		v := badgeunlock.DefaultSeen
		_c.mutation.SetSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BadgeUnlockCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "BadgeUnlock.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := badgeunlock.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "BadgeUnlock.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BadgeID(); !ok {
		return &ValidationError{Name: "badge_id", err: errors.New(`ent: missing required field "BadgeUnlock.badge_id"`)}
	}
	if v, ok := _c.mutation.BadgeID(); ok {
		if err := badgeunlock.BadgeIDValidator(v); err != nil {
			return &ValidationError{Name: "badge_id", err: fmt.Errorf(`ent: validator failed for field "BadgeUnlock.badge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnlockedAt(); !ok {
		return &ValidationError{Name: "unlocked_at", err: errors.New(`ent: missing required field "BadgeUnlock.unlocked_at"`)}
	}
	if _, ok := _c.mutation.Seen(); !ok {
		return &ValidationError{Name: "seen", err: errors.New(`ent: missing required field "BadgeUnlock.seen"`)}
	}
	return nil
}

func (_c *BadgeUnlockCreate) sqlSave(ctx context.Context) (*BadgeUnlock, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BadgeUnlockCreate) createSpec() (*BadgeUnlock, *sqlgraph.CreateSpec) {
	var (
		_node = &BadgeUnlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(badgeunlock.Table, sqlgraph.NewFieldSpec(badgeunlock.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(badgeunlock.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.BadgeID(); ok {
		_spec.SetField(badgeunlock.FieldBadgeID, field.TypeString, value)
		_node.BadgeID = value
	}
	if value, ok := _c.mutation.UnlockedAt(); ok {
		_spec.SetField(badgeunlock.FieldUnlockedAt, field.TypeTime, value)
		_node.UnlockedAt = value
	}
	if value, ok := _c.mutation.Seen(); ok {
		_spec.SetField(badgeunlock.FieldSeen, field.TypeBool, value)
		_node.Seen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BadgeUnlock.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeUnlockUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *BadgeUnlockCreate) OnConflict(opts ...sql.ConflictOption) *BadgeUnlockUpsertOne {
	_c.conflict = opts
	return &BadgeUnlockUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BadgeUnlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BadgeUnlockCreate) OnConflictColumns(columns ...string) *BadgeUnlockUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BadgeUnlockUpsertOne{
		create: _c,
	}
}

type (
	// BadgeUnlockUpsertOne is the builder for "upsert"-ing
	//  one BadgeUnlock node.
	BadgeUnlockUpsertOne struct {
		create *BadgeUnlockCreate
	}

	// BadgeUnlockUpsert is the "OnConflict" setter.
	BadgeUnlockUpsert struct {
		*sql.UpdateSet
	}
)

// SetSeen sets the "seen" field.
func (u *BadgeUnlockUpsert) SetSeen(v bool) *BadgeUnlockUpsert {
	u.Set(badgeunlock.FieldSeen, v)
	return u
}

// UpdateSeen sets the "seen" field to the value that was provided on create.
func (u *BadgeUnlockUpsert) UpdateSeen() *BadgeUnlockUpsert {
	u.SetExcluded(badgeunlock.FieldSeen)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BadgeUnlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BadgeUnlockUpsertOne) UpdateNewValues() *BadgeUnlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(badgeunlock.FieldUserID)
		}
		if _, exists := u.create.mutation.BadgeID(); exists {
			s.SetIgnore(badgeunlock.FieldBadgeID)
		}
		if _, exists := u.create.mutation.UnlockedAt(); exists {
			s.SetIgnore(badgeunlock.FieldUnlockedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BadgeUnlock.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BadgeUnlockUpsertOne) Ignore() *BadgeUnlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeUnlockUpsertOne) DoNothing() *BadgeUnlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeUnlockCreate.OnConflict
// documentation for more info.
func (u *BadgeUnlockUpsertOne) Update(set func(*BadgeUnlockUpsert)) *BadgeUnlockUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeUnlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetSeen sets the "seen" field.
func (u *BadgeUnlockUpsertOne) SetSeen(v bool) *BadgeUnlockUpsertOne {
	return u.Update(func(s *BadgeUnlockUpsert) {
		s.SetSeen(v)
	})
}

// UpdateSeen sets the "seen" field to the value that was provided on create.
func (u *BadgeUnlockUpsertOne) UpdateSeen() *BadgeUnlockUpsertOne {
	return u.Update(func(s *BadgeUnlockUpsert) {
		s.UpdateSeen()
	})
}

// Exec executes the query.
func (u *BadgeUnlockUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeUnlockCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeUnlockUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BadgeUnlockUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BadgeUnlockUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BadgeUnlockCreateBulk is the builder for creating many BadgeUnlock entities in bulk.
type BadgeUnlockCreateBulk struct {
	config
	err      error
	builders []*BadgeUnlockCreate
	conflict []sql.ConflictOption
}

// Save creates the BadgeUnlock entities in the database.
func (_c *BadgeUnlockCreateBulk) Save(ctx context.Context) ([]*BadgeUnlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BadgeUnlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BadgeUnlockMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BadgeUnlockCreateBulk) SaveX(ctx context.Context) []*BadgeUnlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BadgeUnlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BadgeUnlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BadgeUnlock.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BadgeUnlockUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *BadgeUnlockCreateBulk) OnConflict(opts ...sql.ConflictOption) *BadgeUnlockUpsertBulk {
	_c.conflict = opts
	return &BadgeUnlockUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BadgeUnlock.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BadgeUnlockCreateBulk) OnConflictColumns(columns ...string) *BadgeUnlockUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BadgeUnlockUpsertBulk{
		create: _c,
	}
}

// BadgeUnlockUpsertBulk is the builder for "upsert"-ing
// a bulk of BadgeUnlock nodes.
type BadgeUnlockUpsertBulk struct {
	create *BadgeUnlockCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BadgeUnlock.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BadgeUnlockUpsertBulk) UpdateNewValues() *BadgeUnlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(badgeunlock.FieldUserID)
			}
			if _, exists := b.mutation.BadgeID(); exists {
				s.SetIgnore(badgeunlock.FieldBadgeID)
			}
			if _, exists := b.mutation.UnlockedAt(); exists {
				s.SetIgnore(badgeunlock.FieldUnlockedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BadgeUnlock.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BadgeUnlockUpsertBulk) Ignore() *BadgeUnlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BadgeUnlockUpsertBulk) DoNothing() *BadgeUnlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BadgeUnlockCreateBulk.OnConflict
// documentation for more info.
func (u *BadgeUnlockUpsertBulk) Update(set func(*BadgeUnlockUpsert)) *BadgeUnlockUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BadgeUnlockUpsert{UpdateSet: update})
	}))
	return u
}

// SetSeen sets the "seen" field.
func (u *BadgeUnlockUpsertBulk) SetSeen(v bool) *BadgeUnlockUpsertBulk {
	return u.Update(func(s *BadgeUnlockUpsert) {
		s.SetSeen(v)
	})
}

// UpdateSeen sets the "seen" field to the value that was provided on create.
func (u *BadgeUnlockUpsertBulk) UpdateSeen() *BadgeUnlockUpsertBulk {
	return u.Update(func(s *BadgeUnlockUpsert) {
		s.UpdateSeen()
	})
}

// Exec executes the query.
func (u *BadgeUnlockUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BadgeUnlockCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BadgeUnlockCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BadgeUnlockUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/jmarlow/hamprep/ent/telemetryevent"
)

// TelemetryEventCreate is the builder for creating a TelemetryEvent entity.
type TelemetryEventCreate struct {
	config
	mutation *TelemetryEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSequence sets the "sequence" field.
func (_c *TelemetryEventCreate) SetSequence(v int64) *TelemetryEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TelemetryEventCreate) SetTimestamp(v time.Time) *TelemetryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableTimestamp(v *time.Time) *TelemetryEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *TelemetryEventCreate) SetName(v string) *TelemetryEventCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *TelemetryEventCreate) SetPayload(v map[string]interface{}) *TelemetryEventCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *TelemetryEventCreate) SetSuccess(v bool) *TelemetryEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TelemetryEventCreate) SetErrorMessage(v string) *TelemetryEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TelemetryEventCreate) SetNillableErrorMessage(v *string) *TelemetryEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// Mutation returns the TelemetryEventMutation object of the builder.
func (_c *TelemetryEventCreate) Mutation() *TelemetryEventMutation {
	return _c.mutation
}

// Save creates the TelemetryEvent in the database.
func (_c *TelemetryEventCreate) Save(ctx context.Context) (*TelemetryEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TelemetryEventCreate) SaveX(ctx context.Context) *TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TelemetryEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := telemetryevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TelemetryEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TelemetryEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TelemetryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "TelemetryEvent.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := telemetryevent.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "TelemetryEvent.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "TelemetryEvent.success"`)}
	}
	return nil
}

func (_c *TelemetryEventCreate) sqlSave(ctx context.Context) (*TelemetryEvent, error) {
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

func (_c *TelemetryEventCreate) createSpec() (*TelemetryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TelemetryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(telemetryevent.Table, sqlgraph.NewFieldSpec(telemetryevent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(telemetryevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(telemetryevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(telemetryevent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(telemetryevent.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(telemetryevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(telemetryevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TelemetryEvent.Create().
//		SetSequence(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TelemetryEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *TelemetryEventCreate) OnConflict(opts ...sql.ConflictOption) *TelemetryEventUpsertOne {
	_c.conflict = opts
	return &TelemetryEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TelemetryEventCreate) OnConflictColumns(columns ...string) *TelemetryEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TelemetryEventUpsertOne{
		create: _c,
	}
}

type (
	// TelemetryEventUpsertOne is the builder for "upsert"-ing
	//  one TelemetryEvent node.
	TelemetryEventUpsertOne struct {
		create *TelemetryEventCreate
	}

	// TelemetryEventUpsert is the "OnConflict" setter.
	TelemetryEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetPayload sets the "payload" field.
func (u *TelemetryEventUpsert) SetPayload(v map[string]interface{}) *TelemetryEventUpsert {
	u.Set(telemetryevent.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TelemetryEventUpsert) UpdatePayload() *TelemetryEventUpsert {
	u.SetExcluded(telemetryevent.FieldPayload)
	return u
}

// ClearPayload clears the value of the "payload" field.
func (u *TelemetryEventUpsert) ClearPayload() *TelemetryEventUpsert {
	u.SetNull(telemetryevent.FieldPayload)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TelemetryEventUpsertOne) UpdateNewValues() *TelemetryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.Sequence(); exists {
			s.SetIgnore(telemetryevent.FieldSequence)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(telemetryevent.FieldTimestamp)
		}
		if _, exists := u.create.mutation.Name(); exists {
			s.SetIgnore(telemetryevent.FieldName)
		}
		if _, exists := u.create.mutation.Success(); exists {
			s.SetIgnore(telemetryevent.FieldSuccess)
		}
		if _, exists := u.create.mutation.ErrorMessage(); exists {
			s.SetIgnore(telemetryevent.FieldErrorMessage)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TelemetryEventUpsertOne) Ignore() *TelemetryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TelemetryEventUpsertOne) DoNothing() *TelemetryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TelemetryEventCreate.OnConflict
// documentation for more info.
func (u *TelemetryEventUpsertOne) Update(set func(*TelemetryEventUpsert)) *TelemetryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TelemetryEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *TelemetryEventUpsertOne) SetPayload(v map[string]interface{}) *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TelemetryEventUpsertOne) UpdatePayload() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *TelemetryEventUpsertOne) ClearPayload() *TelemetryEventUpsertOne {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.ClearPayload()
	})
}

// Exec executes the query.
func (u *TelemetryEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TelemetryEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TelemetryEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TelemetryEventUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TelemetryEventUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TelemetryEventCreateBulk is the builder for creating many TelemetryEvent entities in bulk.
type TelemetryEventCreateBulk struct {
	config
	err      error
	builders []*TelemetryEventCreate
	conflict []sql.ConflictOption
}

// Save creates the TelemetryEvent entities in the database.
func (_c *TelemetryEventCreateBulk) Save(ctx context.Context) ([]*TelemetryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TelemetryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TelemetryEventMutation)
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
func (_c *TelemetryEventCreateBulk) SaveX(ctx context.Context) []*TelemetryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TelemetryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TelemetryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TelemetryEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TelemetryEventUpsert) {
//			SetSequence(v+v).
//		}).
//		Exec(ctx)
func (_c *TelemetryEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *TelemetryEventUpsertBulk {
	_c.conflict = opts
	return &TelemetryEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TelemetryEventCreateBulk) OnConflictColumns(columns ...string) *TelemetryEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TelemetryEventUpsertBulk{
		create: _c,
	}
}

// TelemetryEventUpsertBulk is the builder for "upsert"-ing
// a bulk of TelemetryEvent nodes.
type TelemetryEventUpsertBulk struct {
	create *TelemetryEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TelemetryEventUpsertBulk) UpdateNewValues() *TelemetryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.Sequence(); exists {
				s.SetIgnore(telemetryevent.FieldSequence)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(telemetryevent.FieldTimestamp)
			}
			if _, exists := b.mutation.Name(); exists {
				s.SetIgnore(telemetryevent.FieldName)
			}
			if _, exists := b.mutation.Success(); exists {
				s.SetIgnore(telemetryevent.FieldSuccess)
			}
			if _, exists := b.mutation.ErrorMessage(); exists {
				s.SetIgnore(telemetryevent.FieldErrorMessage)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TelemetryEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TelemetryEventUpsertBulk) Ignore() *TelemetryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TelemetryEventUpsertBulk) DoNothing() *TelemetryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TelemetryEventCreateBulk.OnConflict
// documentation for more info.
func (u *TelemetryEventUpsertBulk) Update(set func(*TelemetryEventUpsert)) *TelemetryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TelemetryEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetPayload sets the "payload" field.
func (u *TelemetryEventUpsertBulk) SetPayload(v map[string]interface{}) *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *TelemetryEventUpsertBulk) UpdatePayload() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.UpdatePayload()
	})
}

// ClearPayload clears the value of the "payload" field.
func (u *TelemetryEventUpsertBulk) ClearPayload() *TelemetryEventUpsertBulk {
	return u.Update(func(s *TelemetryEventUpsert) {
		s.ClearPayload()
	})
}

// Exec executes the query.
func (u *TelemetryEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TelemetryEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TelemetryEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TelemetryEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

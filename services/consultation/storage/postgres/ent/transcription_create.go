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
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/transcription"
)

// TranscriptionCreate is the builder for creating a Transcription entity.
type TranscriptionCreate struct {
	config
	mutation *TranscriptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetText sets the "text" field.
func (_c *TranscriptionCreate) SetText(v string) *TranscriptionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetRecordingID sets the "recording_id" field.
func (_c *TranscriptionCreate) SetRecordingID(v int) *TranscriptionCreate {
	_c.mutation.SetRecordingID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TranscriptionCreate) SetCreatedAt(v time.Time) *TranscriptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableCreatedAt(v *time.Time) *TranscriptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TranscriptionCreate) SetUpdatedAt(v time.Time) *TranscriptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TranscriptionCreate) SetNillableUpdatedAt(v *time.Time) *TranscriptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRecording sets the "recording" edge to the Recording entity.
func (_c *TranscriptionCreate) SetRecording(v *Recording) *TranscriptionCreate {
	return _c.SetRecordingID(v.ID)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_c *TranscriptionCreate) Mutation() *TranscriptionMutation {
	return _c.mutation
}

// Save creates the Transcription in the database.
func (_c *TranscriptionCreate) Save(ctx context.Context) (*Transcription, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TranscriptionCreate) SaveX(ctx context.Context) *Transcription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TranscriptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transcription.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := transcription.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TranscriptionCreate) check() error {
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Transcription.text"`)}
	}
	if _, ok := _c.mutation.RecordingID(); !ok {
		return &ValidationError{Name: "recording_id", err: errors.New(`ent: missing required field "Transcription.recording_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Transcription.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Transcription.updated_at"`)}
	}
	if len(_c.mutation.RecordingIDs()) == 0 {
		return &ValidationError{Name: "recording", err: errors.New(`ent: missing required edge "Transcription.recording"`)}
	}
	return nil
}

func (_c *TranscriptionCreate) sqlSave(ctx context.Context) (*Transcription, error) {
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

func (_c *TranscriptionCreate) createSpec() (*Transcription, *sqlgraph.CreateSpec) {
	var (
		_node = &Transcription{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transcription.Table, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(transcription.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transcription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(transcription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RecordingIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   transcription.RecordingTable,
			Columns: []string{transcription.RecordingColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RecordingID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcription.Create().
//		SetText(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptionUpsert) {
//			SetText(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptionCreate) OnConflict(opts ...sql.ConflictOption) *TranscriptionUpsertOne {
	_c.conflict = opts
	return &TranscriptionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptionCreate) OnConflictColumns(columns ...string) *TranscriptionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptionUpsertOne{
		create: _c,
	}
}

type (
	// TranscriptionUpsertOne is the builder for "upsert"-ing
	//  one Transcription node.
	TranscriptionUpsertOne struct {
		create *TranscriptionCreate
	}

	// TranscriptionUpsert is the "OnConflict" setter.
	TranscriptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetText sets the "text" field.
func (u *TranscriptionUpsert) SetText(v string) *TranscriptionUpsert {
	u.Set(transcription.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *TranscriptionUpsert) UpdateText() *TranscriptionUpsert {
	u.SetExcluded(transcription.FieldText)
	return u
}

// SetRecordingID sets the "recording_id" field.
func (u *TranscriptionUpsert) SetRecordingID(v int) *TranscriptionUpsert {
	u.Set(transcription.FieldRecordingID, v)
	return u
}

// UpdateRecordingID sets the "recording_id" field to the value that was provided on create.
func (u *TranscriptionUpsert) UpdateRecordingID() *TranscriptionUpsert {
	u.SetExcluded(transcription.FieldRecordingID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *TranscriptionUpsert) SetCreatedAt(v time.Time) *TranscriptionUpsert {
	u.Set(transcription.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TranscriptionUpsert) UpdateCreatedAt() *TranscriptionUpsert {
	u.SetExcluded(transcription.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranscriptionUpsert) SetUpdatedAt(v time.Time) *TranscriptionUpsert {
	u.Set(transcription.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranscriptionUpsert) UpdateUpdatedAt() *TranscriptionUpsert {
	u.SetExcluded(transcription.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Transcription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TranscriptionUpsertOne) UpdateNewValues() *TranscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcription.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TranscriptionUpsertOne) Ignore() *TranscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptionUpsertOne) DoNothing() *TranscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptionCreate.OnConflict
// documentation for more info.
func (u *TranscriptionUpsertOne) Update(set func(*TranscriptionUpsert)) *TranscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *TranscriptionUpsertOne) SetText(v string) *TranscriptionUpsertOne {
	return u.Update(func(s *TranscriptionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *TranscriptionUpsertOne) UpdateText() *TranscriptionUpsertOne {
	return u.Update(func(s *TranscriptionUpsert) {
		s.UpdateText()
	})
}

// SetRecordingID sets the "recording_id" field.
func (u *TranscriptionUpsertOne) SetRecordingID(v int) *TranscriptionUpsertOne {
	return u.Update(func(s *TranscriptionUpsert) {
		s.SetRecordingID(v)
	})
}

// UpdateRecordingID sets the "recording_id" field to the value that was provided on create.
func (u *TranscriptionUpsertOne) UpdateRecordingID() *TranscriptionUpsertOne {
	return u.Update(func(s *TranscriptionUpsert) {
		s.UpdateRecordingID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TranscriptionUpsertOne) SetCreatedAt(v time.Time) *TranscriptionUpsertOne {
	return u.Update(func(s *TranscriptionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TranscriptionUpsertOne) UpdateCreatedAt() *TranscriptionUpsertOne {
	return u.Update(func(s *TranscriptionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranscriptionUpsertOne) SetUpdatedAt(v time.Time) *TranscriptionUpsertOne {
	return u.Update(func(s *TranscriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranscriptionUpsertOne) UpdateUpdatedAt() *TranscriptionUpsertOne {
	return u.Update(func(s *TranscriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TranscriptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TranscriptionUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TranscriptionUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TranscriptionCreateBulk is the builder for creating many Transcription entities in bulk.
type TranscriptionCreateBulk struct {
	config
	err      error
	builders []*TranscriptionCreate
	conflict []sql.ConflictOption
}

// Save creates the Transcription entities in the database.
func (_c *TranscriptionCreateBulk) Save(ctx context.Context) ([]*Transcription, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Transcription, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TranscriptionMutation)
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
func (_c *TranscriptionCreateBulk) SaveX(ctx context.Context) []*Transcription {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TranscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TranscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Transcription.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TranscriptionUpsert) {
//			SetText(v+v).
//		}).
//		Exec(ctx)
func (_c *TranscriptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *TranscriptionUpsertBulk {
	_c.conflict = opts
	return &TranscriptionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Transcription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TranscriptionCreateBulk) OnConflictColumns(columns ...string) *TranscriptionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TranscriptionUpsertBulk{
		create: _c,
	}
}

// TranscriptionUpsertBulk is the builder for "upsert"-ing
// a bulk of Transcription nodes.
type TranscriptionUpsertBulk struct {
	create *TranscriptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Transcription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TranscriptionUpsertBulk) UpdateNewValues() *TranscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Transcription.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TranscriptionUpsertBulk) Ignore() *TranscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TranscriptionUpsertBulk) DoNothing() *TranscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TranscriptionCreateBulk.OnConflict
// documentation for more info.
func (u *TranscriptionUpsertBulk) Update(set func(*TranscriptionUpsert)) *TranscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TranscriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetText sets the "text" field.
func (u *TranscriptionUpsertBulk) SetText(v string) *TranscriptionUpsertBulk {
	return u.Update(func(s *TranscriptionUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *TranscriptionUpsertBulk) UpdateText() *TranscriptionUpsertBulk {
	return u.Update(func(s *TranscriptionUpsert) {
		s.UpdateText()
	})
}

// SetRecordingID sets the "recording_id" field.
func (u *TranscriptionUpsertBulk) SetRecordingID(v int) *TranscriptionUpsertBulk {
	return u.Update(func(s *TranscriptionUpsert) {
		s.SetRecordingID(v)
	})
}

// UpdateRecordingID sets the "recording_id" field to the value that was provided on create.
func (u *TranscriptionUpsertBulk) UpdateRecordingID() *TranscriptionUpsertBulk {
	return u.Update(func(s *TranscriptionUpsert) {
		s.UpdateRecordingID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TranscriptionUpsertBulk) SetCreatedAt(v time.Time) *TranscriptionUpsertBulk {
	return u.Update(func(s *TranscriptionUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TranscriptionUpsertBulk) UpdateCreatedAt() *TranscriptionUpsertBulk {
	return u.Update(func(s *TranscriptionUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TranscriptionUpsertBulk) SetUpdatedAt(v time.Time) *TranscriptionUpsertBulk {
	return u.Update(func(s *TranscriptionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TranscriptionUpsertBulk) UpdateUpdatedAt() *TranscriptionUpsertBulk {
	return u.Update(func(s *TranscriptionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *TranscriptionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TranscriptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TranscriptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TranscriptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

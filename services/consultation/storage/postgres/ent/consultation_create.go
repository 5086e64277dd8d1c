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
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/note"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/summary"
)

// ConsultationCreate is the builder for creating a Consultation entity.
type ConsultationCreate struct {
	config
	mutation *ConsultationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *ConsultationCreate) SetTitle(v string) *ConsultationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ConsultationCreate) SetDescription(v string) *ConsultationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableDescription(v *string) *ConsultationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConsultationCreate) SetCreatedAt(v time.Time) *ConsultationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableCreatedAt(v *time.Time) *ConsultationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConsultationCreate) SetUpdatedAt(v time.Time) *ConsultationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConsultationCreate) SetNillableUpdatedAt(v *time.Time) *ConsultationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNoteID sets the "note" edge to the Note entity by ID.
func (_c *ConsultationCreate) SetNoteID(id int) *ConsultationCreate {
	_c.mutation.SetNoteID(id)
	return _c
}

// SetNillableNoteID sets the "note" edge to the Note entity by ID if the given value is not nil.
func (_c *ConsultationCreate) SetNillableNoteID(id *int) *ConsultationCreate {
	if id != nil {
		_c = _c.SetNoteID(*id)
	}
	return _c
}

// SetNote sets the "note" edge to the Note entity.
func (_c *ConsultationCreate) SetNote(v *Note) *ConsultationCreate {
	return _c.SetNoteID(v.ID)
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_c *ConsultationCreate) SetSummaryID(id int) *ConsultationCreate {
	_c.mutation.SetSummaryID(id)
	return _c
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_c *ConsultationCreate) SetNillableSummaryID(id *int) *ConsultationCreate {
	if id != nil {
		_c = _c.SetSummaryID(*id)
	}
	return _c
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_c *ConsultationCreate) SetSummary(v *Summary) *ConsultationCreate {
	return _c.SetSummaryID(v.ID)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_c *ConsultationCreate) AddRecordingIDs(ids ...int) *ConsultationCreate {
	_c.mutation.AddRecordingIDs(ids...)
	return _c
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_c *ConsultationCreate) AddRecordings(v ...*Recording) *ConsultationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecordingIDs(ids...)
}

// Mutation returns the ConsultationMutation object of the builder.
func (_c *ConsultationCreate) Mutation() *ConsultationMutation {
	return _c.mutation
}

// Save creates the Consultation in the database.
func (_c *ConsultationCreate) Save(ctx context.Context) (*Consultation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConsultationCreate) SaveX(ctx context.Context) *Consultation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsultationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsultationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConsultationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := consultation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := consultation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConsultationCreate) check() error {
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Consultation.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := consultation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Consultation.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Consultation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Consultation.updated_at"`)}
	}
	return nil
}

func (_c *ConsultationCreate) sqlSave(ctx context.Context) (*Consultation, error) {
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

func (_c *ConsultationCreate) createSpec() (*Consultation, *sqlgraph.CreateSpec) {
	var (
		_node = &Consultation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(consultation.Table, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(consultation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(consultation.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(consultation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.NoteIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   consultation.NoteTable,
			Columns: []string{consultation.NoteColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(note.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SummaryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   consultation.SummaryTable,
			Columns: []string{consultation.SummaryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(summary.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecordingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   consultation.RecordingsTable,
			Columns: []string{consultation.RecordingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recording.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Consultation.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConsultationUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ConsultationCreate) OnConflict(opts ...sql.ConflictOption) *ConsultationUpsertOne {
	_c.conflict = opts
	return &ConsultationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConsultationCreate) OnConflictColumns(columns ...string) *ConsultationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConsultationUpsertOne{
		create: _c,
	}
}

type (
	// ConsultationUpsertOne is the builder for "upsert"-ing
	//  one Consultation node.
	ConsultationUpsertOne struct {
		create *ConsultationCreate
	}

	// ConsultationUpsert is the "OnConflict" setter.
	ConsultationUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *ConsultationUpsert) SetTitle(v string) *ConsultationUpsert {
	u.Set(consultation.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateTitle() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *ConsultationUpsert) SetDescription(v string) *ConsultationUpsert {
	u.Set(consultation.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateDescription() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ConsultationUpsert) ClearDescription() *ConsultationUpsert {
	u.SetNull(consultation.FieldDescription)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *ConsultationUpsert) SetCreatedAt(v time.Time) *ConsultationUpsert {
	u.Set(consultation.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateCreatedAt() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConsultationUpsert) SetUpdatedAt(v time.Time) *ConsultationUpsert {
	u.Set(consultation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConsultationUpsert) UpdateUpdatedAt() *ConsultationUpsert {
	u.SetExcluded(consultation.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ConsultationUpsertOne) UpdateNewValues() *ConsultationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Consultation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ConsultationUpsertOne) Ignore() *ConsultationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConsultationUpsertOne) DoNothing() *ConsultationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConsultationCreate.OnConflict
// documentation for more info.
func (u *ConsultationUpsertOne) Update(set func(*ConsultationUpsert)) *ConsultationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConsultationUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ConsultationUpsertOne) SetTitle(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateTitle() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ConsultationUpsertOne) SetDescription(v string) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateDescription() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ConsultationUpsertOne) ClearDescription() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.ClearDescription()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ConsultationUpsertOne) SetCreatedAt(v time.Time) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateCreatedAt() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConsultationUpsertOne) SetUpdatedAt(v time.Time) *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConsultationUpsertOne) UpdateUpdatedAt() *ConsultationUpsertOne {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConsultationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConsultationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConsultationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ConsultationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ConsultationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ConsultationCreateBulk is the builder for creating many Consultation entities in bulk.
type ConsultationCreateBulk struct {
	config
	err      error
	builders []*ConsultationCreate
	conflict []sql.ConflictOption
}

// Save creates the Consultation entities in the database.
func (_c *ConsultationCreateBulk) Save(ctx context.Context) ([]*Consultation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Consultation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConsultationMutation)
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
func (_c *ConsultationCreateBulk) SaveX(ctx context.Context) []*Consultation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConsultationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConsultationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Consultation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ConsultationUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *ConsultationCreateBulk) OnConflict(opts ...sql.ConflictOption) *ConsultationUpsertBulk {
	_c.conflict = opts
	return &ConsultationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ConsultationCreateBulk) OnConflictColumns(columns ...string) *ConsultationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ConsultationUpsertBulk{
		create: _c,
	}
}

// ConsultationUpsertBulk is the builder for "upsert"-ing
// a bulk of Consultation nodes.
type ConsultationUpsertBulk struct {
	create *ConsultationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ConsultationUpsertBulk) UpdateNewValues() *ConsultationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Consultation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ConsultationUpsertBulk) Ignore() *ConsultationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ConsultationUpsertBulk) DoNothing() *ConsultationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ConsultationCreateBulk.OnConflict
// documentation for more info.
func (u *ConsultationUpsertBulk) Update(set func(*ConsultationUpsert)) *ConsultationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ConsultationUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *ConsultationUpsertBulk) SetTitle(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateTitle() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *ConsultationUpsertBulk) SetDescription(v string) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateDescription() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ConsultationUpsertBulk) ClearDescription() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.ClearDescription()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *ConsultationUpsertBulk) SetCreatedAt(v time.Time) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateCreatedAt() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ConsultationUpsertBulk) SetUpdatedAt(v time.Time) *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ConsultationUpsertBulk) UpdateUpdatedAt() *ConsultationUpsertBulk {
	return u.Update(func(s *ConsultationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ConsultationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ConsultationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ConsultationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ConsultationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

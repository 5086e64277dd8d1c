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
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/transcription"
)

// RecordingCreate is the builder for creating a Recording entity.
type RecordingCreate struct {
	config
	mutation *RecordingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFilename sets the "filename" field.
func (_c *RecordingCreate) SetFilename(v string) *RecordingCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetFilepath sets the "filepath" field.
func (_c *RecordingCreate) SetFilepath(v string) *RecordingCreate {
	_c.mutation.SetFilepath(v)
	return _c
}

// SetMimetype sets the "mimetype" field.
func (_c *RecordingCreate) SetMimetype(v string) *RecordingCreate {
	_c.mutation.SetMimetype(v)
	return _c
}

// SetSize sets the "size" field.
func (_c *RecordingCreate) SetSize(v int64) *RecordingCreate {
	_c.mutation.SetSize(v)
	return _c
}

// SetConsultationID sets the "consultation_id" field.
func (_c *RecordingCreate) SetConsultationID(v int) *RecordingCreate {
	_c.mutation.SetConsultationID(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecordingCreate) SetCreatedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableCreatedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecordingCreate) SetUpdatedAt(v time.Time) *RecordingCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecordingCreate) SetNillableUpdatedAt(v *time.Time) *RecordingCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetConsultation sets the "consultation" edge to the Consultation entity.
func (_c *RecordingCreate) SetConsultation(v *Consultation) *RecordingCreate {
	return _c.SetConsultationID(v.ID)
}

// SetTranscriptionID sets the "transcription" edge to the Transcription entity by ID.
func (_c *RecordingCreate) SetTranscriptionID(id int) *RecordingCreate {
	_c.mutation.SetTranscriptionID(id)
	return _c
}

// SetNillableTranscriptionID sets the "transcription" edge to the Transcription entity by ID if the given value is not nil.
func (_c *RecordingCreate) SetNillableTranscriptionID(id *int) *RecordingCreate {
	if id != nil {
		_c = _c.SetTranscriptionID(*id)
	}
	return _c
}

// SetTranscription sets the "transcription" edge to the Transcription entity.
func (_c *RecordingCreate) SetTranscription(v *Transcription) *RecordingCreate {
	return _c.SetTranscriptionID(v.ID)
}

// Mutation returns the RecordingMutation object of the builder.
func (_c *RecordingCreate) Mutation() *RecordingMutation {
	return _c.mutation
}

// Save creates the Recording in the database.
func (_c *RecordingCreate) Save(ctx context.Context) (*Recording, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecordingCreate) SaveX(ctx context.Context) *Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecordingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recording.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recording.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecordingCreate) check() error {
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Recording.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := recording.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Recording.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Filepath(); !ok {
		return &ValidationError{Name: "filepath", err: errors.New(`ent: missing required field "Recording.filepath"`)}
	}
	if v, ok := _c.mutation.Filepath(); ok {
		if err := recording.FilepathValidator(v); err != nil {
			return &ValidationError{Name: "filepath", err: fmt.Errorf(`ent: validator failed for field "Recording.filepath": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Mimetype(); !ok {
		return &ValidationError{Name: "mimetype", err: errors.New(`ent: missing required field "Recording.mimetype"`)}
	}
	if v, ok := _c.mutation.Mimetype(); ok {
		if err := recording.MimetypeValidator(v); err != nil {
			return &ValidationError{Name: "mimetype", err: fmt.Errorf(`ent: validator failed for field "Recording.mimetype": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Size(); !ok {
		return &ValidationError{Name: "size", err: errors.New(`ent: missing required field "Recording.size"`)}
	}
	if _, ok := _c.mutation.ConsultationID(); !ok {
		return &ValidationError{Name: "consultation_id", err: errors.New(`ent: missing required field "Recording.consultation_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recording.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Recording.updated_at"`)}
	}
	if len(_c.mutation.ConsultationIDs()) == 0 {
		return &ValidationError{Name: "consultation", err: errors.New(`ent: missing required edge "Recording.consultation"`)}
	}
	return nil
}

func (_c *RecordingCreate) sqlSave(ctx context.Context) (*Recording, error) {
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

func (_c *RecordingCreate) createSpec() (*Recording, *sqlgraph.CreateSpec) {
	var (
		_node = &Recording{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recording.Table, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(recording.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.Filepath(); ok {
		_spec.SetField(recording.FieldFilepath, field.TypeString, value)
		_node.Filepath = value
	}
	if value, ok := _c.mutation.Mimetype(); ok {
		_spec.SetField(recording.FieldMimetype, field.TypeString, value)
		_node.Mimetype = value
	}
	if value, ok := _c.mutation.Size(); ok {
		_spec.SetField(recording.FieldSize, field.TypeInt64, value)
		_node.Size = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recording.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConsultationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recording.ConsultationTable,
			Columns: []string{recording.ConsultationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConsultationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TranscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   recording.TranscriptionTable,
			Columns: []string{recording.TranscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeInt),
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
//	client.Recording.Create().
//		SetFilename(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecordingUpsert) {
//			SetFilename(v+v).
//		}).
//		Exec(ctx)
func (_c *RecordingCreate) OnConflict(opts ...sql.ConflictOption) *RecordingUpsertOne {
	_c.conflict = opts
	return &RecordingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Recording.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecordingCreate) OnConflictColumns(columns ...string) *RecordingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecordingUpsertOne{
		create: _c,
	}
}

type (
	// RecordingUpsertOne is the builder for "upsert"-ing
	//  one Recording node.
	RecordingUpsertOne struct {
		create *RecordingCreate
	}

	// RecordingUpsert is the "OnConflict" setter.
	RecordingUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilename sets the "filename" field.
func (u *RecordingUpsert) SetFilename(v string) *RecordingUpsert {
	u.Set(recording.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *RecordingUpsert) UpdateFilename() *RecordingUpsert {
	u.SetExcluded(recording.FieldFilename)
	return u
}

// SetFilepath sets the "filepath" field.
func (u *RecordingUpsert) SetFilepath(v string) *RecordingUpsert {
	u.Set(recording.FieldFilepath, v)
	return u
}

// UpdateFilepath sets the "filepath" field to the value that was provided on create.
func (u *RecordingUpsert) UpdateFilepath() *RecordingUpsert {
	u.SetExcluded(recording.FieldFilepath)
	return u
}

// SetMimetype sets the "mimetype" field.
func (u *RecordingUpsert) SetMimetype(v string) *RecordingUpsert {
	u.Set(recording.FieldMimetype, v)
	return u
}

// UpdateMimetype sets the "mimetype" field to the value that was provided on create.
func (u *RecordingUpsert) UpdateMimetype() *RecordingUpsert {
	u.SetExcluded(recording.FieldMimetype)
	return u
}

// SetSize sets the "size" field.
func (u *RecordingUpsert) SetSize(v int64) *RecordingUpsert {
	u.Set(recording.FieldSize, v)
	return u
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *RecordingUpsert) UpdateSize() *RecordingUpsert {
	u.SetExcluded(recording.FieldSize)
	return u
}

// AddSize adds v to the "size" field.
func (u *RecordingUpsert) AddSize(v int64) *RecordingUpsert {
	u.Add(recording.FieldSize, v)
	return u
}

// SetConsultationID sets the "consultation_id" field.
func (u *RecordingUpsert) SetConsultationID(v int) *RecordingUpsert {
	u.Set(recording.FieldConsultationID, v)
	return u
}

// UpdateConsultationID sets the "consultation_id" field to the value that was provided on create.
func (u *RecordingUpsert) UpdateConsultationID() *RecordingUpsert {
	u.SetExcluded(recording.FieldConsultationID)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *RecordingUpsert) SetCreatedAt(v time.Time) *RecordingUpsert {
	u.Set(recording.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RecordingUpsert) UpdateCreatedAt() *RecordingUpsert {
	u.SetExcluded(recording.FieldCreatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecordingUpsert) SetUpdatedAt(v time.Time) *RecordingUpsert {
	u.Set(recording.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecordingUpsert) UpdateUpdatedAt() *RecordingUpsert {
	u.SetExcluded(recording.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Recording.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RecordingUpsertOne) UpdateNewValues() *RecordingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Recording.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecordingUpsertOne) Ignore() *RecordingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecordingUpsertOne) DoNothing() *RecordingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecordingCreate.OnConflict
// documentation for more info.
func (u *RecordingUpsertOne) Update(set func(*RecordingUpsert)) *RecordingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecordingUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *RecordingUpsertOne) SetFilename(v string) *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *RecordingUpsertOne) UpdateFilename() *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateFilename()
	})
}

// SetFilepath sets the "filepath" field.
func (u *RecordingUpsertOne) SetFilepath(v string) *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.SetFilepath(v)
	})
}

// UpdateFilepath sets the "filepath" field to the value that was provided on create.
func (u *RecordingUpsertOne) UpdateFilepath() *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateFilepath()
	})
}

// SetMimetype sets the "mimetype" field.
func (u *RecordingUpsertOne) SetMimetype(v string) *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.SetMimetype(v)
	})
}

// UpdateMimetype sets the "mimetype" field to the value that was provided on create.
func (u *RecordingUpsertOne) UpdateMimetype() *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateMimetype()
	})
}

// SetSize sets the "size" field.
func (u *RecordingUpsertOne) SetSize(v int64) *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *RecordingUpsertOne) AddSize(v int64) *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *RecordingUpsertOne) UpdateSize() *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateSize()
	})
}

// SetConsultationID sets the "consultation_id" field.
func (u *RecordingUpsertOne) SetConsultationID(v int) *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.SetConsultationID(v)
	})
}

// UpdateConsultationID sets the "consultation_id" field to the value that was provided on create.
func (u *RecordingUpsertOne) UpdateConsultationID() *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateConsultationID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RecordingUpsertOne) SetCreatedAt(v time.Time) *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RecordingUpsertOne) UpdateCreatedAt() *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecordingUpsertOne) SetUpdatedAt(v time.Time) *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecordingUpsertOne) UpdateUpdatedAt() *RecordingUpsertOne {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RecordingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecordingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecordingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecordingUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecordingUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecordingCreateBulk is the builder for creating many Recording entities in bulk.
type RecordingCreateBulk struct {
	config
	err      error
	builders []*RecordingCreate
	conflict []sql.ConflictOption
}

// Save creates the Recording entities in the database.
func (_c *RecordingCreateBulk) Save(ctx context.Context) ([]*Recording, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recording, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecordingMutation)
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
func (_c *RecordingCreateBulk) SaveX(ctx context.Context) []*Recording {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecordingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecordingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Recording.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecordingUpsert) {
//			SetFilename(v+v).
//		}).
//		Exec(ctx)
func (_c *RecordingCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecordingUpsertBulk {
	_c.conflict = opts
	return &RecordingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Recording.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecordingCreateBulk) OnConflictColumns(columns ...string) *RecordingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecordingUpsertBulk{
		create: _c,
	}
}

// RecordingUpsertBulk is the builder for "upsert"-ing
// a bulk of Recording nodes.
type RecordingUpsertBulk struct {
	create *RecordingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Recording.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *RecordingUpsertBulk) UpdateNewValues() *RecordingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Recording.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecordingUpsertBulk) Ignore() *RecordingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecordingUpsertBulk) DoNothing() *RecordingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecordingCreateBulk.OnConflict
// documentation for more info.
func (u *RecordingUpsertBulk) Update(set func(*RecordingUpsert)) *RecordingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecordingUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *RecordingUpsertBulk) SetFilename(v string) *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *RecordingUpsertBulk) UpdateFilename() *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateFilename()
	})
}

// SetFilepath sets the "filepath" field.
func (u *RecordingUpsertBulk) SetFilepath(v string) *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.SetFilepath(v)
	})
}

// UpdateFilepath sets the "filepath" field to the value that was provided on create.
func (u *RecordingUpsertBulk) UpdateFilepath() *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateFilepath()
	})
}

// SetMimetype sets the "mimetype" field.
func (u *RecordingUpsertBulk) SetMimetype(v string) *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.SetMimetype(v)
	})
}

// UpdateMimetype sets the "mimetype" field to the value that was provided on create.
func (u *RecordingUpsertBulk) UpdateMimetype() *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateMimetype()
	})
}

// SetSize sets the "size" field.
func (u *RecordingUpsertBulk) SetSize(v int64) *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.SetSize(v)
	})
}

// AddSize adds v to the "size" field.
func (u *RecordingUpsertBulk) AddSize(v int64) *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.AddSize(v)
	})
}

// UpdateSize sets the "size" field to the value that was provided on create.
func (u *RecordingUpsertBulk) UpdateSize() *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateSize()
	})
}

// SetConsultationID sets the "consultation_id" field.
func (u *RecordingUpsertBulk) SetConsultationID(v int) *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.SetConsultationID(v)
	})
}

// UpdateConsultationID sets the "consultation_id" field to the value that was provided on create.
func (u *RecordingUpsertBulk) UpdateConsultationID() *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateConsultationID()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *RecordingUpsertBulk) SetCreatedAt(v time.Time) *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *RecordingUpsertBulk) UpdateCreatedAt() *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecordingUpsertBulk) SetUpdatedAt(v time.Time) *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecordingUpsertBulk) UpdateUpdatedAt() *RecordingUpsertBulk {
	return u.Update(func(s *RecordingUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RecordingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RecordingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecordingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecordingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/predicate"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/transcription"
)

// TranscriptionUpdate is the builder for updating Transcription entities.
type TranscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *TranscriptionMutation
}

// Where appends a list predicates to the TranscriptionUpdate builder.
func (_u *TranscriptionUpdate) Where(ps ...predicate.Transcription) *TranscriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *TranscriptionUpdate) SetText(v string) *TranscriptionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableText(v *string) *TranscriptionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetRecordingID sets the "recording_id" field.
func (_u *TranscriptionUpdate) SetRecordingID(v int) *TranscriptionUpdate {
	_u.mutation.SetRecordingID(v)
	return _u
}

// SetNillableRecordingID sets the "recording_id" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableRecordingID(v *int) *TranscriptionUpdate {
	if v != nil {
		_u.SetRecordingID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TranscriptionUpdate) SetCreatedAt(v time.Time) *TranscriptionUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TranscriptionUpdate) SetNillableCreatedAt(v *time.Time) *TranscriptionUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranscriptionUpdate) SetUpdatedAt(v time.Time) *TranscriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecording sets the "recording" edge to the Recording entity.
func (_u *TranscriptionUpdate) SetRecording(v *Recording) *TranscriptionUpdate {
	return _u.SetRecordingID(v.ID)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_u *TranscriptionUpdate) Mutation() *TranscriptionMutation {
	return _u.mutation
}

// ClearRecording clears the "recording" edge to the Recording entity.
func (_u *TranscriptionUpdate) ClearRecording() *TranscriptionUpdate {
	_u.mutation.ClearRecording()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TranscriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TranscriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranscriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transcription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptionUpdate) check() error {
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transcription.recording"`)
	}
	return nil
}

func (_u *TranscriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcription.Table, transcription.Columns, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(transcription.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transcription.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transcription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RecordingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TranscriptionUpdateOne is the builder for updating a single Transcription entity.
type TranscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TranscriptionMutation
}

// SetText sets the "text" field.
func (_u *TranscriptionUpdateOne) SetText(v string) *TranscriptionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableText(v *string) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetRecordingID sets the "recording_id" field.
func (_u *TranscriptionUpdateOne) SetRecordingID(v int) *TranscriptionUpdateOne {
	_u.mutation.SetRecordingID(v)
	return _u
}

// SetNillableRecordingID sets the "recording_id" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableRecordingID(v *int) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetRecordingID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *TranscriptionUpdateOne) SetCreatedAt(v time.Time) *TranscriptionUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *TranscriptionUpdateOne) SetNillableCreatedAt(v *time.Time) *TranscriptionUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TranscriptionUpdateOne) SetUpdatedAt(v time.Time) *TranscriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRecording sets the "recording" edge to the Recording entity.
func (_u *TranscriptionUpdateOne) SetRecording(v *Recording) *TranscriptionUpdateOne {
	return _u.SetRecordingID(v.ID)
}

// Mutation returns the TranscriptionMutation object of the builder.
func (_u *TranscriptionUpdateOne) Mutation() *TranscriptionMutation {
	return _u.mutation
}

// ClearRecording clears the "recording" edge to the Recording entity.
func (_u *TranscriptionUpdateOne) ClearRecording() *TranscriptionUpdateOne {
	_u.mutation.ClearRecording()
	return _u
}

// Where appends a list predicates to the TranscriptionUpdate builder.
func (_u *TranscriptionUpdateOne) Where(ps ...predicate.Transcription) *TranscriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TranscriptionUpdateOne) Select(field string, fields ...string) *TranscriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Transcription entity.
func (_u *TranscriptionUpdateOne) Save(ctx context.Context) (*Transcription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TranscriptionUpdateOne) SaveX(ctx context.Context) *Transcription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TranscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TranscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TranscriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := transcription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TranscriptionUpdateOne) check() error {
	if _u.mutation.RecordingCleared() && len(_u.mutation.RecordingIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Transcription.recording"`)
	}
	return nil
}

func (_u *TranscriptionUpdateOne) sqlSave(ctx context.Context) (_node *Transcription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(transcription.Table, transcription.Columns, sqlgraph.NewFieldSpec(transcription.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Transcription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transcription.FieldID)
		for _, f := range fields {
			if !transcription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transcription.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(transcription.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(transcription.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(transcription.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RecordingCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Transcription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transcription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

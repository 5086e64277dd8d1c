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
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/predicate"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/transcription"
)

// RecordingUpdate is the builder for updating Recording entities.
type RecordingUpdate struct {
	config
	hooks    []Hook
	mutation *RecordingMutation
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdate) Where(ps ...predicate.Recording) *RecordingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFilename sets the "filename" field.
func (_u *RecordingUpdate) SetFilename(v string) *RecordingUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableFilename(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilepath sets the "filepath" field.
func (_u *RecordingUpdate) SetFilepath(v string) *RecordingUpdate {
	_u.mutation.SetFilepath(v)
	return _u
}

// SetNillableFilepath sets the "filepath" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableFilepath(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetFilepath(*v)
	}
	return _u
}

// SetMimetype sets the "mimetype" field.
func (_u *RecordingUpdate) SetMimetype(v string) *RecordingUpdate {
	_u.mutation.SetMimetype(v)
	return _u
}

// SetNillableMimetype sets the "mimetype" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableMimetype(v *string) *RecordingUpdate {
	if v != nil {
		_u.SetMimetype(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *RecordingUpdate) SetSize(v int64) *RecordingUpdate {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableSize(v *int64) *RecordingUpdate {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *RecordingUpdate) AddSize(v int64) *RecordingUpdate {
	_u.mutation.AddSize(v)
	return _u
}

// SetConsultationID sets the "consultation_id" field.
func (_u *RecordingUpdate) SetConsultationID(v int) *RecordingUpdate {
	_u.mutation.SetConsultationID(v)
	return _u
}

// SetNillableConsultationID sets the "consultation_id" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableConsultationID(v *int) *RecordingUpdate {
	if v != nil {
		_u.SetConsultationID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecordingUpdate) SetCreatedAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecordingUpdate) SetNillableCreatedAt(v *time.Time) *RecordingUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordingUpdate) SetUpdatedAt(v time.Time) *RecordingUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConsultation sets the "consultation" edge to the Consultation entity.
func (_u *RecordingUpdate) SetConsultation(v *Consultation) *RecordingUpdate {
	return _u.SetConsultationID(v.ID)
}

// SetTranscriptionID sets the "transcription" edge to the Transcription entity by ID.
func (_u *RecordingUpdate) SetTranscriptionID(id int) *RecordingUpdate {
	_u.mutation.SetTranscriptionID(id)
	return _u
}

// SetNillableTranscriptionID sets the "transcription" edge to the Transcription entity by ID if the given value is not nil.
func (_u *RecordingUpdate) SetNillableTranscriptionID(id *int) *RecordingUpdate {
	if id != nil {
		_u = _u.SetTranscriptionID(*id)
	}
	return _u
}

// SetTranscription sets the "transcription" edge to the Transcription entity.
func (_u *RecordingUpdate) SetTranscription(v *Transcription) *RecordingUpdate {
	return _u.SetTranscriptionID(v.ID)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdate) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearConsultation clears the "consultation" edge to the Consultation entity.
func (_u *RecordingUpdate) ClearConsultation() *RecordingUpdate {
	_u.mutation.ClearConsultation()
	return _u
}

// ClearTranscription clears the "transcription" edge to the Transcription entity.
func (_u *RecordingUpdate) ClearTranscription() *RecordingUpdate {
	_u.mutation.ClearTranscription()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecordingUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecordingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordingUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recording.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := recording.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Recording.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filepath(); ok {
		if err := recording.FilepathValidator(v); err != nil {
			return &ValidationError{Name: "filepath", err: fmt.Errorf(`ent: validator failed for field "Recording.filepath": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mimetype(); ok {
		if err := recording.MimetypeValidator(v); err != nil {
			return &ValidationError{Name: "mimetype", err: fmt.Errorf(`ent: validator failed for field "Recording.mimetype": %w`, err)}
		}
	}
	if _u.mutation.ConsultationCleared() && len(_u.mutation.ConsultationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recording.consultation"`)
	}
	return nil
}

func (_u *RecordingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(recording.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filepath(); ok {
		_spec.SetField(recording.FieldFilepath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mimetype(); ok {
		_spec.SetField(recording.FieldMimetype, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(recording.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(recording.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recording.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsultationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsultationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranscriptionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecordingUpdateOne is the builder for updating a single Recording entity.
type RecordingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecordingMutation
}

// SetFilename sets the "filename" field.
func (_u *RecordingUpdateOne) SetFilename(v string) *RecordingUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableFilename(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetFilepath sets the "filepath" field.
func (_u *RecordingUpdateOne) SetFilepath(v string) *RecordingUpdateOne {
	_u.mutation.SetFilepath(v)
	return _u
}

// SetNillableFilepath sets the "filepath" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableFilepath(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetFilepath(*v)
	}
	return _u
}

// SetMimetype sets the "mimetype" field.
func (_u *RecordingUpdateOne) SetMimetype(v string) *RecordingUpdateOne {
	_u.mutation.SetMimetype(v)
	return _u
}

// SetNillableMimetype sets the "mimetype" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableMimetype(v *string) *RecordingUpdateOne {
	if v != nil {
		_u.SetMimetype(*v)
	}
	return _u
}

// SetSize sets the "size" field.
func (_u *RecordingUpdateOne) SetSize(v int64) *RecordingUpdateOne {
	_u.mutation.ResetSize()
	_u.mutation.SetSize(v)
	return _u
}

// SetNillableSize sets the "size" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableSize(v *int64) *RecordingUpdateOne {
	if v != nil {
		_u.SetSize(*v)
	}
	return _u
}

// AddSize adds value to the "size" field.
func (_u *RecordingUpdateOne) AddSize(v int64) *RecordingUpdateOne {
	_u.mutation.AddSize(v)
	return _u
}

// SetConsultationID sets the "consultation_id" field.
func (_u *RecordingUpdateOne) SetConsultationID(v int) *RecordingUpdateOne {
	_u.mutation.SetConsultationID(v)
	return _u
}

// SetNillableConsultationID sets the "consultation_id" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableConsultationID(v *int) *RecordingUpdateOne {
	if v != nil {
		_u.SetConsultationID(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *RecordingUpdateOne) SetCreatedAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableCreatedAt(v *time.Time) *RecordingUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecordingUpdateOne) SetUpdatedAt(v time.Time) *RecordingUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetConsultation sets the "consultation" edge to the Consultation entity.
func (_u *RecordingUpdateOne) SetConsultation(v *Consultation) *RecordingUpdateOne {
	return _u.SetConsultationID(v.ID)
}

// SetTranscriptionID sets the "transcription" edge to the Transcription entity by ID.
func (_u *RecordingUpdateOne) SetTranscriptionID(id int) *RecordingUpdateOne {
	_u.mutation.SetTranscriptionID(id)
	return _u
}

// SetNillableTranscriptionID sets the "transcription" edge to the Transcription entity by ID if the given value is not nil.
func (_u *RecordingUpdateOne) SetNillableTranscriptionID(id *int) *RecordingUpdateOne {
	if id != nil {
		_u = _u.SetTranscriptionID(*id)
	}
	return _u
}

// SetTranscription sets the "transcription" edge to the Transcription entity.
func (_u *RecordingUpdateOne) SetTranscription(v *Transcription) *RecordingUpdateOne {
	return _u.SetTranscriptionID(v.ID)
}

// Mutation returns the RecordingMutation object of the builder.
func (_u *RecordingUpdateOne) Mutation() *RecordingMutation {
	return _u.mutation
}

// ClearConsultation clears the "consultation" edge to the Consultation entity.
func (_u *RecordingUpdateOne) ClearConsultation() *RecordingUpdateOne {
	_u.mutation.ClearConsultation()
	return _u
}

// ClearTranscription clears the "transcription" edge to the Transcription entity.
func (_u *RecordingUpdateOne) ClearTranscription() *RecordingUpdateOne {
	_u.mutation.ClearTranscription()
	return _u
}

// Where appends a list predicates to the RecordingUpdate builder.
func (_u *RecordingUpdateOne) Where(ps ...predicate.Recording) *RecordingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecordingUpdateOne) Select(field string, fields ...string) *RecordingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recording entity.
func (_u *RecordingUpdateOne) Save(ctx context.Context) (*Recording, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecordingUpdateOne) SaveX(ctx context.Context) *Recording {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecordingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecordingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecordingUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recording.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecordingUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := recording.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Recording.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Filepath(); ok {
		if err := recording.FilepathValidator(v); err != nil {
			return &ValidationError{Name: "filepath", err: fmt.Errorf(`ent: validator failed for field "Recording.filepath": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mimetype(); ok {
		if err := recording.MimetypeValidator(v); err != nil {
			return &ValidationError{Name: "mimetype", err: fmt.Errorf(`ent: validator failed for field "Recording.mimetype": %w`, err)}
		}
	}
	if _u.mutation.ConsultationCleared() && len(_u.mutation.ConsultationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recording.consultation"`)
	}
	return nil
}

func (_u *RecordingUpdateOne) sqlSave(ctx context.Context) (_node *Recording, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recording.Table, recording.Columns, sqlgraph.NewFieldSpec(recording.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recording.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recording.FieldID)
		for _, f := range fields {
			if !recording.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recording.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(recording.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Filepath(); ok {
		_spec.SetField(recording.FieldFilepath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mimetype(); ok {
		_spec.SetField(recording.FieldMimetype, field.TypeString, value)
	}
	if value, ok := _u.mutation.Size(); ok {
		_spec.SetField(recording.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSize(); ok {
		_spec.AddField(recording.FieldSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(recording.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recording.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConsultationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsultationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TranscriptionCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TranscriptionIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Recording{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recording.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

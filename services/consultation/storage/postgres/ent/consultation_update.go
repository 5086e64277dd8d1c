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
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/predicate"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/recording"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/summary"
)

// ConsultationUpdate is the builder for updating Consultation entities.
type ConsultationUpdate struct {
	config
	hooks    []Hook
	mutation *ConsultationMutation
}

// Where appends a list predicates to the ConsultationUpdate builder.
func (_u *ConsultationUpdate) Where(ps ...predicate.Consultation) *ConsultationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ConsultationUpdate) SetTitle(v string) *ConsultationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableTitle(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ConsultationUpdate) SetDescription(v string) *ConsultationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableDescription(v *string) *ConsultationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ConsultationUpdate) ClearDescription() *ConsultationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ConsultationUpdate) SetCreatedAt(v time.Time) *ConsultationUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableCreatedAt(v *time.Time) *ConsultationUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsultationUpdate) SetUpdatedAt(v time.Time) *ConsultationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNoteID sets the "note" edge to the Note entity by ID.
func (_u *ConsultationUpdate) SetNoteID(id int) *ConsultationUpdate {
	_u.mutation.SetNoteID(id)
	return _u
}

// SetNillableNoteID sets the "note" edge to the Note entity by ID if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableNoteID(id *int) *ConsultationUpdate {
	if id != nil {
		_u = _u.SetNoteID(*id)
	}
	return _u
}

// SetNote sets the "note" edge to the Note entity.
func (_u *ConsultationUpdate) SetNote(v *Note) *ConsultationUpdate {
	return _u.SetNoteID(v.ID)
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_u *ConsultationUpdate) SetSummaryID(id int) *ConsultationUpdate {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_u *ConsultationUpdate) SetNillableSummaryID(id *int) *ConsultationUpdate {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_u *ConsultationUpdate) SetSummary(v *Summary) *ConsultationUpdate {
	return _u.SetSummaryID(v.ID)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_u *ConsultationUpdate) AddRecordingIDs(ids ...int) *ConsultationUpdate {
	_u.mutation.AddRecordingIDs(ids...)
	return _u
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_u *ConsultationUpdate) AddRecordings(v ...*Recording) *ConsultationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordingIDs(ids...)
}

// Mutation returns the ConsultationMutation object of the builder.
func (_u *ConsultationUpdate) Mutation() *ConsultationMutation {
	return _u.mutation
}

// ClearNote clears the "note" edge to the Note entity.
func (_u *ConsultationUpdate) ClearNote() *ConsultationUpdate {
	_u.mutation.ClearNote()
	return _u
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (_u *ConsultationUpdate) ClearSummary() *ConsultationUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// ClearRecordings clears all "recordings" edges to the Recording entity.
func (_u *ConsultationUpdate) ClearRecordings() *ConsultationUpdate {
	_u.mutation.ClearRecordings()
	return _u
}

// RemoveRecordingIDs removes the "recordings" edge to Recording entities by IDs.
func (_u *ConsultationUpdate) RemoveRecordingIDs(ids ...int) *ConsultationUpdate {
	_u.mutation.RemoveRecordingIDs(ids...)
	return _u
}

// RemoveRecordings removes "recordings" edges to Recording entities.
func (_u *ConsultationUpdate) RemoveRecordings(v ...*Recording) *ConsultationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConsultationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsultationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConsultationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsultationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsultationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consultation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsultationUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := consultation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Consultation.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ConsultationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consultation.Table, consultation.Columns, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(consultation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(consultation.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(consultation.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(consultation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NoteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NoteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummaryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordingsIDs(); len(nodes) > 0 && !_u.mutation.RecordingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consultation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConsultationUpdateOne is the builder for updating a single Consultation entity.
type ConsultationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConsultationMutation
}

// SetTitle sets the "title" field.
func (_u *ConsultationUpdateOne) SetTitle(v string) *ConsultationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableTitle(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ConsultationUpdateOne) SetDescription(v string) *ConsultationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableDescription(v *string) *ConsultationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ConsultationUpdateOne) ClearDescription() *ConsultationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ConsultationUpdateOne) SetCreatedAt(v time.Time) *ConsultationUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableCreatedAt(v *time.Time) *ConsultationUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConsultationUpdateOne) SetUpdatedAt(v time.Time) *ConsultationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNoteID sets the "note" edge to the Note entity by ID.
func (_u *ConsultationUpdateOne) SetNoteID(id int) *ConsultationUpdateOne {
	_u.mutation.SetNoteID(id)
	return _u
}

// SetNillableNoteID sets the "note" edge to the Note entity by ID if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableNoteID(id *int) *ConsultationUpdateOne {
	if id != nil {
		_u = _u.SetNoteID(*id)
	}
	return _u
}

// SetNote sets the "note" edge to the Note entity.
func (_u *ConsultationUpdateOne) SetNote(v *Note) *ConsultationUpdateOne {
	return _u.SetNoteID(v.ID)
}

// SetSummaryID sets the "summary" edge to the Summary entity by ID.
func (_u *ConsultationUpdateOne) SetSummaryID(id int) *ConsultationUpdateOne {
	_u.mutation.SetSummaryID(id)
	return _u
}

// SetNillableSummaryID sets the "summary" edge to the Summary entity by ID if the given value is not nil.
func (_u *ConsultationUpdateOne) SetNillableSummaryID(id *int) *ConsultationUpdateOne {
	if id != nil {
		_u = _u.SetSummaryID(*id)
	}
	return _u
}

// SetSummary sets the "summary" edge to the Summary entity.
func (_u *ConsultationUpdateOne) SetSummary(v *Summary) *ConsultationUpdateOne {
	return _u.SetSummaryID(v.ID)
}

// AddRecordingIDs adds the "recordings" edge to the Recording entity by IDs.
func (_u *ConsultationUpdateOne) AddRecordingIDs(ids ...int) *ConsultationUpdateOne {
	_u.mutation.AddRecordingIDs(ids...)
	return _u
}

// AddRecordings adds the "recordings" edges to the Recording entity.
func (_u *ConsultationUpdateOne) AddRecordings(v ...*Recording) *ConsultationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecordingIDs(ids...)
}

// Mutation returns the ConsultationMutation object of the builder.
func (_u *ConsultationUpdateOne) Mutation() *ConsultationMutation {
	return _u.mutation
}

// ClearNote clears the "note" edge to the Note entity.
func (_u *ConsultationUpdateOne) ClearNote() *ConsultationUpdateOne {
	_u.mutation.ClearNote()
	return _u
}

// ClearSummary clears the "summary" edge to the Summary entity.
func (_u *ConsultationUpdateOne) ClearSummary() *ConsultationUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// ClearRecordings clears all "recordings" edges to the Recording entity.
func (_u *ConsultationUpdateOne) ClearRecordings() *ConsultationUpdateOne {
	_u.mutation.ClearRecordings()
	return _u
}

// RemoveRecordingIDs removes the "recordings" edge to Recording entities by IDs.
func (_u *ConsultationUpdateOne) RemoveRecordingIDs(ids ...int) *ConsultationUpdateOne {
	_u.mutation.RemoveRecordingIDs(ids...)
	return _u
}

// RemoveRecordings removes "recordings" edges to Recording entities.
func (_u *ConsultationUpdateOne) RemoveRecordings(v ...*Recording) *ConsultationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecordingIDs(ids...)
}

// Where appends a list predicates to the ConsultationUpdate builder.
func (_u *ConsultationUpdateOne) Where(ps ...predicate.Consultation) *ConsultationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConsultationUpdateOne) Select(field string, fields ...string) *ConsultationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Consultation entity.
func (_u *ConsultationUpdateOne) Save(ctx context.Context) (*Consultation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConsultationUpdateOne) SaveX(ctx context.Context) *Consultation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConsultationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConsultationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConsultationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := consultation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConsultationUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := consultation.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Consultation.title": %w`, err)}
		}
	}
	return nil
}

func (_u *ConsultationUpdateOne) sqlSave(ctx context.Context) (_node *Consultation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(consultation.Table, consultation.Columns, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Consultation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, consultation.FieldID)
		for _, f := range fields {
			if !consultation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != consultation.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(consultation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(consultation.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(consultation.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(consultation.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(consultation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NoteCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.NoteIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SummaryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SummaryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecordingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecordingsIDs(); len(nodes) > 0 && !_u.mutation.RecordingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecordingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Consultation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{consultation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/consultation"
	"github.com/felixmccuaig/lyrebird-health-interview/services/consultation/storage/postgres/ent/predicate"
)

// ConsultationDelete is the builder for deleting a Consultation entity.
type ConsultationDelete struct {
	config
	hooks    []Hook
	mutation *ConsultationMutation
}

// Where appends a list predicates to the ConsultationDelete builder.
func (_d *ConsultationDelete) Where(ps ...predicate.Consultation) *ConsultationDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConsultationDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsultationDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConsultationDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(consultation.Table, sqlgraph.NewFieldSpec(consultation.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ConsultationDeleteOne is the builder for deleting a single Consultation entity.
type ConsultationDeleteOne struct {
	_d *ConsultationDelete
}

// Where appends a list predicates to the ConsultationDelete builder.
func (_d *ConsultationDeleteOne) Where(ps ...predicate.Consultation) *ConsultationDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConsultationDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{consultation.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConsultationDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

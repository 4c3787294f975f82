// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/secopshq/caseflow/ent/graphedge"
	"github.com/secopshq/caseflow/ent/predicate"
)

// GraphEdgeUpdate is the builder for updating GraphEdge entities.
type GraphEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *GraphEdgeMutation
}

// Where appends a list predicates to the GraphEdgeUpdate builder.
func (_u *GraphEdgeUpdate) Where(ps ...predicate.GraphEdge) *GraphEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRelType sets the "rel_type" field.
func (_u *GraphEdgeUpdate) SetRelType(v graphedge.RelType) *GraphEdgeUpdate {
	_u.mutation.SetRelType(v)
	return _u
}

// SetNillableRelType sets the "rel_type" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableRelType(v *graphedge.RelType) *GraphEdgeUpdate {
	if v != nil {
		_u.SetRelType(*v)
	}
	return _u
}

// SetProps sets the "props" field.
func (_u *GraphEdgeUpdate) SetProps(v map[string]interface{}) *GraphEdgeUpdate {
	_u.mutation.SetProps(v)
	return _u
}

// ClearProps clears the value of the "props" field.
func (_u *GraphEdgeUpdate) ClearProps() *GraphEdgeUpdate {
	_u.mutation.ClearProps()
	return _u
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_u *GraphEdgeUpdate) Mutation() *GraphEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphEdgeUpdate) check() error {
	if v, ok := _u.mutation.RelType(); ok {
		if err := graphedge.RelTypeValidator(v); err != nil {
			return &ValidationError{Name: "rel_type", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.rel_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphedge.Table, graphedge.Columns, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RelType(); ok {
		_spec.SetField(graphedge.FieldRelType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Props(); ok {
		_spec.SetField(graphedge.FieldProps, field.TypeJSON, value)
	}
	if _u.mutation.PropsCleared() {
		_spec.ClearField(graphedge.FieldProps, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphEdgeUpdateOne is the builder for updating a single GraphEdge entity.
type GraphEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphEdgeMutation
}

// SetRelType sets the "rel_type" field.
func (_u *GraphEdgeUpdateOne) SetRelType(v graphedge.RelType) *GraphEdgeUpdateOne {
	_u.mutation.SetRelType(v)
	return _u
}

// SetNillableRelType sets the "rel_type" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableRelType(v *graphedge.RelType) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetRelType(*v)
	}
	return _u
}

// SetProps sets the "props" field.
func (_u *GraphEdgeUpdateOne) SetProps(v map[string]interface{}) *GraphEdgeUpdateOne {
	_u.mutation.SetProps(v)
	return _u
}

// ClearProps clears the value of the "props" field.
func (_u *GraphEdgeUpdateOne) ClearProps() *GraphEdgeUpdateOne {
	_u.mutation.ClearProps()
	return _u
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_u *GraphEdgeUpdateOne) Mutation() *GraphEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphEdgeUpdate builder.
func (_u *GraphEdgeUpdateOne) Where(ps ...predicate.GraphEdge) *GraphEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphEdgeUpdateOne) Select(field string, fields ...string) *GraphEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphEdge entity.
func (_u *GraphEdgeUpdateOne) Save(ctx context.Context) (*GraphEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphEdgeUpdateOne) SaveX(ctx context.Context) *GraphEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphEdgeUpdateOne) check() error {
	if v, ok := _u.mutation.RelType(); ok {
		if err := graphedge.RelTypeValidator(v); err != nil {
			return &ValidationError{Name: "rel_type", err: fmt.Errorf(`ent: validator failed for field "GraphEdge.rel_type": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphEdgeUpdateOne) sqlSave(ctx context.Context) (_node *GraphEdge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphedge.Table, graphedge.Columns, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphedge.FieldID)
		for _, f := range fields {
			if !graphedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphedge.FieldID {
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
	if value, ok := _u.mutation.RelType(); ok {
		_spec.SetField(graphedge.FieldRelType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Props(); ok {
		_spec.SetField(graphedge.FieldProps, field.TypeJSON, value)
	}
	if _u.mutation.PropsCleared() {
		_spec.ClearField(graphedge.FieldProps, field.TypeJSON)
	}
	_node = &GraphEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/secopshq/caseflow/ent/graphnode"
	"github.com/secopshq/caseflow/ent/predicate"
)

// GraphNodeUpdate is the builder for updating GraphNode entities.
type GraphNodeUpdate struct {
	config
	hooks    []Hook
	mutation *GraphNodeMutation
}

// Where appends a list predicates to the GraphNodeUpdate builder.
func (_u *GraphNodeUpdate) Where(ps ...predicate.GraphNode) *GraphNodeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLabel sets the "label" field.
func (_u *GraphNodeUpdate) SetLabel(v graphnode.Label) *GraphNodeUpdate {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *GraphNodeUpdate) SetNillableLabel(v *graphnode.Label) *GraphNodeUpdate {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetProps sets the "props" field.
func (_u *GraphNodeUpdate) SetProps(v map[string]interface{}) *GraphNodeUpdate {
	_u.mutation.SetProps(v)
	return _u
}

// ClearProps clears the value of the "props" field.
func (_u *GraphNodeUpdate) ClearProps() *GraphNodeUpdate {
	_u.mutation.ClearProps()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GraphNodeUpdate) SetUpdatedAt(v time.Time) *GraphNodeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GraphNodeMutation object of the builder.
func (_u *GraphNodeUpdate) Mutation() *GraphNodeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphNodeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphNodeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphNodeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphNodeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GraphNodeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := graphnode.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphNodeUpdate) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := graphnode.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "GraphNode.label": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphNodeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphnode.Table, graphnode.Columns, sqlgraph.NewFieldSpec(graphnode.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(graphnode.FieldLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Props(); ok {
		_spec.SetField(graphnode.FieldProps, field.TypeJSON, value)
	}
	if _u.mutation.PropsCleared() {
		_spec.ClearField(graphnode.FieldProps, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(graphnode.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphnode.EntityLabel}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphNodeUpdateOne is the builder for updating a single GraphNode entity.
type GraphNodeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphNodeMutation
}

// SetLabel sets the "label" field.
func (_u *GraphNodeUpdateOne) SetLabel(v graphnode.Label) *GraphNodeUpdateOne {
	_u.mutation.SetLabel(v)
	return _u
}

// SetNillableLabel sets the "label" field if the given value is not nil.
func (_u *GraphNodeUpdateOne) SetNillableLabel(v *graphnode.Label) *GraphNodeUpdateOne {
	if v != nil {
		_u.SetLabel(*v)
	}
	return _u
}

// SetProps sets the "props" field.
func (_u *GraphNodeUpdateOne) SetProps(v map[string]interface{}) *GraphNodeUpdateOne {
	_u.mutation.SetProps(v)
	return _u
}

// ClearProps clears the value of the "props" field.
func (_u *GraphNodeUpdateOne) ClearProps() *GraphNodeUpdateOne {
	_u.mutation.ClearProps()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *GraphNodeUpdateOne) SetUpdatedAt(v time.Time) *GraphNodeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the GraphNodeMutation object of the builder.
func (_u *GraphNodeUpdateOne) Mutation() *GraphNodeMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphNodeUpdate builder.
func (_u *GraphNodeUpdateOne) Where(ps ...predicate.GraphNode) *GraphNodeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphNodeUpdateOne) Select(field string, fields ...string) *GraphNodeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphNode entity.
func (_u *GraphNodeUpdateOne) Save(ctx context.Context) (*GraphNode, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphNodeUpdateOne) SaveX(ctx context.Context) *GraphNode {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphNodeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphNodeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *GraphNodeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := graphnode.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GraphNodeUpdateOne) check() error {
	if v, ok := _u.mutation.Label(); ok {
		if err := graphnode.LabelValidator(v); err != nil {
			return &ValidationError{Name: "label", err: fmt.Errorf(`ent: validator failed for field "GraphNode.label": %w`, err)}
		}
	}
	return nil
}

func (_u *GraphNodeUpdateOne) sqlSave(ctx context.Context) (_node *GraphNode, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(graphnode.Table, graphnode.Columns, sqlgraph.NewFieldSpec(graphnode.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphNode.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphnode.FieldID)
		for _, f := range fields {
			if !graphnode.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphnode.FieldID {
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
	if value, ok := _u.mutation.Label(); ok {
		_spec.SetField(graphnode.FieldLabel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Props(); ok {
		_spec.SetField(graphnode.FieldProps, field.TypeJSON, value)
	}
	if _u.mutation.PropsCleared() {
		_spec.ClearField(graphnode.FieldProps, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(graphnode.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &GraphNode{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphnode.EntityLabel}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/secopshq/caseflow/ent/agentprompt"
	"github.com/secopshq/caseflow/ent/predicate"
)

// AgentPromptUpdate is the builder for updating AgentPrompt entities.
type AgentPromptUpdate struct {
	config
	hooks    []Hook
	mutation *AgentPromptMutation
}

// Where appends a list predicates to the AgentPromptUpdate builder.
func (_u *AgentPromptUpdate) Where(ps ...predicate.AgentPrompt) *AgentPromptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *AgentPromptUpdate) SetIsActive(v bool) *AgentPromptUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentPromptUpdate) SetNillableIsActive(v *bool) *AgentPromptUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AgentPromptMutation object of the builder.
func (_u *AgentPromptUpdate) Mutation() *AgentPromptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentPromptUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPromptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentPromptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPromptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentPromptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentprompt.Table, agentprompt.Columns, sqlgraph.NewFieldSpec(agentprompt.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agentprompt.FieldIsActive, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentprompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentPromptUpdateOne is the builder for updating a single AgentPrompt entity.
type AgentPromptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentPromptMutation
}

// SetIsActive sets the "is_active" field.
func (_u *AgentPromptUpdateOne) SetIsActive(v bool) *AgentPromptUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *AgentPromptUpdateOne) SetNillableIsActive(v *bool) *AgentPromptUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// Mutation returns the AgentPromptMutation object of the builder.
func (_u *AgentPromptUpdateOne) Mutation() *AgentPromptMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentPromptUpdate builder.
func (_u *AgentPromptUpdateOne) Where(ps ...predicate.AgentPrompt) *AgentPromptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentPromptUpdateOne) Select(field string, fields ...string) *AgentPromptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentPrompt entity.
func (_u *AgentPromptUpdateOne) Save(ctx context.Context) (*AgentPrompt, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentPromptUpdateOne) SaveX(ctx context.Context) *AgentPrompt {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentPromptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentPromptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AgentPromptUpdateOne) sqlSave(ctx context.Context) (_node *AgentPrompt, err error) {
	_spec := sqlgraph.NewUpdateSpec(agentprompt.Table, agentprompt.Columns, sqlgraph.NewFieldSpec(agentprompt.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentPrompt.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentprompt.FieldID)
		for _, f := range fields {
			if !agentprompt.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentprompt.FieldID {
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
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(agentprompt.FieldIsActive, field.TypeBool, value)
	}
	_node = &AgentPrompt{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentprompt.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

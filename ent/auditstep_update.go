// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/ent/predicate"
)

// AuditStepUpdate is the builder for updating AuditStep entities.
type AuditStepUpdate struct {
	config
	hooks    []Hook
	mutation *AuditStepMutation
}

// Where appends a list predicates to the AuditStepUpdate builder.
func (_u *AuditStepUpdate) Where(ps ...predicate.AuditStep) *AuditStepUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetInputs sets the "inputs" field.
func (_u *AuditStepUpdate) SetInputs(v map[string]interface{}) *AuditStepUpdate {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *AuditStepUpdate) ClearInputs() *AuditStepUpdate {
	_u.mutation.ClearInputs()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *AuditStepUpdate) SetPlan(v []string) *AuditStepUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *AuditStepUpdate) AppendPlan(v []string) *AuditStepUpdate {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *AuditStepUpdate) ClearPlan() *AuditStepUpdate {
	_u.mutation.ClearPlan()
	return _u
}

// SetObservations sets the "observations" field.
func (_u *AuditStepUpdate) SetObservations(v []string) *AuditStepUpdate {
	_u.mutation.SetObservations(v)
	return _u
}

// AppendObservations appends value to the "observations" field.
func (_u *AuditStepUpdate) AppendObservations(v []string) *AuditStepUpdate {
	_u.mutation.AppendObservations(v)
	return _u
}

// ClearObservations clears the value of the "observations" field.
func (_u *AuditStepUpdate) ClearObservations() *AuditStepUpdate {
	_u.mutation.ClearObservations()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *AuditStepUpdate) SetOutputs(v map[string]interface{}) *AuditStepUpdate {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *AuditStepUpdate) ClearOutputs() *AuditStepUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// Mutation returns the AuditStepMutation object of the builder.
func (_u *AuditStepUpdate) Mutation() *AuditStepMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditStepUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditStepUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditStepUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditStepUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditStepUpdate) check() error {
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditStep.case"`)
	}
	return nil
}

func (_u *AuditStepUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditstep.Table, auditstep.Columns, sqlgraph.NewFieldSpec(auditstep.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(auditstep.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(auditstep.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(auditstep.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditstep.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(auditstep.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(auditstep.FieldObservations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObservations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditstep.FieldObservations, value)
		})
	}
	if _u.mutation.ObservationsCleared() {
		_spec.ClearField(auditstep.FieldObservations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(auditstep.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(auditstep.FieldOutputs, field.TypeJSON)
	}
	if _u.mutation.PrevHashCleared() {
		_spec.ClearField(auditstep.FieldPrevHash, field.TypeString)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(auditstep.FieldSignature, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditStepUpdateOne is the builder for updating a single AuditStep entity.
type AuditStepUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditStepMutation
}

// SetInputs sets the "inputs" field.
func (_u *AuditStepUpdateOne) SetInputs(v map[string]interface{}) *AuditStepUpdateOne {
	_u.mutation.SetInputs(v)
	return _u
}

// ClearInputs clears the value of the "inputs" field.
func (_u *AuditStepUpdateOne) ClearInputs() *AuditStepUpdateOne {
	_u.mutation.ClearInputs()
	return _u
}

// SetPlan sets the "plan" field.
func (_u *AuditStepUpdateOne) SetPlan(v []string) *AuditStepUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// AppendPlan appends value to the "plan" field.
func (_u *AuditStepUpdateOne) AppendPlan(v []string) *AuditStepUpdateOne {
	_u.mutation.AppendPlan(v)
	return _u
}

// ClearPlan clears the value of the "plan" field.
func (_u *AuditStepUpdateOne) ClearPlan() *AuditStepUpdateOne {
	_u.mutation.ClearPlan()
	return _u
}

// SetObservations sets the "observations" field.
func (_u *AuditStepUpdateOne) SetObservations(v []string) *AuditStepUpdateOne {
	_u.mutation.SetObservations(v)
	return _u
}

// AppendObservations appends value to the "observations" field.
func (_u *AuditStepUpdateOne) AppendObservations(v []string) *AuditStepUpdateOne {
	_u.mutation.AppendObservations(v)
	return _u
}

// ClearObservations clears the value of the "observations" field.
func (_u *AuditStepUpdateOne) ClearObservations() *AuditStepUpdateOne {
	_u.mutation.ClearObservations()
	return _u
}

// SetOutputs sets the "outputs" field.
func (_u *AuditStepUpdateOne) SetOutputs(v map[string]interface{}) *AuditStepUpdateOne {
	_u.mutation.SetOutputs(v)
	return _u
}

// ClearOutputs clears the value of the "outputs" field.
func (_u *AuditStepUpdateOne) ClearOutputs() *AuditStepUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// Mutation returns the AuditStepMutation object of the builder.
func (_u *AuditStepUpdateOne) Mutation() *AuditStepMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditStepUpdate builder.
func (_u *AuditStepUpdateOne) Where(ps ...predicate.AuditStep) *AuditStepUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditStepUpdateOne) Select(field string, fields ...string) *AuditStepUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditStep entity.
func (_u *AuditStepUpdateOne) Save(ctx context.Context) (*AuditStep, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditStepUpdateOne) SaveX(ctx context.Context) *AuditStep {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditStepUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditStepUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuditStepUpdateOne) check() error {
	if _u.mutation.CaseCleared() && len(_u.mutation.CaseIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AuditStep.case"`)
	}
	return nil
}

func (_u *AuditStepUpdateOne) sqlSave(ctx context.Context) (_node *AuditStep, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(auditstep.Table, auditstep.Columns, sqlgraph.NewFieldSpec(auditstep.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditStep.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditstep.FieldID)
		for _, f := range fields {
			if !auditstep.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditstep.FieldID {
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
	if value, ok := _u.mutation.Inputs(); ok {
		_spec.SetField(auditstep.FieldInputs, field.TypeJSON, value)
	}
	if _u.mutation.InputsCleared() {
		_spec.ClearField(auditstep.FieldInputs, field.TypeJSON)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(auditstep.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPlan(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditstep.FieldPlan, value)
		})
	}
	if _u.mutation.PlanCleared() {
		_spec.ClearField(auditstep.FieldPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.Observations(); ok {
		_spec.SetField(auditstep.FieldObservations, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObservations(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, auditstep.FieldObservations, value)
		})
	}
	if _u.mutation.ObservationsCleared() {
		_spec.ClearField(auditstep.FieldObservations, field.TypeJSON)
	}
	if value, ok := _u.mutation.Outputs(); ok {
		_spec.SetField(auditstep.FieldOutputs, field.TypeJSON, value)
	}
	if _u.mutation.OutputsCleared() {
		_spec.ClearField(auditstep.FieldOutputs, field.TypeJSON)
	}
	if _u.mutation.PrevHashCleared() {
		_spec.ClearField(auditstep.FieldPrevHash, field.TypeString)
	}
	if _u.mutation.SignatureCleared() {
		_spec.ClearField(auditstep.FieldSignature, field.TypeString)
	}
	_node = &AuditStep{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditstep.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

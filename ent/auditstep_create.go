// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/ent/caserecord"
)

// AuditStepCreate is the builder for creating a AuditStep entity.
type AuditStepCreate struct {
	config
	mutation *AuditStepMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCaseID sets the "case_id" field.
func (_c *AuditStepCreate) SetCaseID(v string) *AuditStepCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *AuditStepCreate) SetSeq(v int) *AuditStepCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *AuditStepCreate) SetVersion(v string) *AuditStepCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AuditStepCreate) SetTimestamp(v time.Time) *AuditStepCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AuditStepCreate) SetNillableTimestamp(v *time.Time) *AuditStepCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAgentName sets the "agent_name" field.
func (_c *AuditStepCreate) SetAgentName(v string) *AuditStepCreate {
	_c.mutation.SetAgentName(v)
	return _c
}

// SetAgentRole sets the "agent_role" field.
func (_c *AuditStepCreate) SetAgentRole(v string) *AuditStepCreate {
	_c.mutation.SetAgentRole(v)
	return _c
}

// SetAgentModel sets the "agent_model" field.
func (_c *AuditStepCreate) SetAgentModel(v string) *AuditStepCreate {
	_c.mutation.SetAgentModel(v)
	return _c
}

// SetPromptVersion sets the "prompt_version" field.
func (_c *AuditStepCreate) SetPromptVersion(v string) *AuditStepCreate {
	_c.mutation.SetPromptVersion(v)
	return _c
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (_c *AuditStepCreate) SetAutonomyLevel(v string) *AuditStepCreate {
	_c.mutation.SetAutonomyLevel(v)
	return _c
}

// SetInputs sets the "inputs" field.
func (_c *AuditStepCreate) SetInputs(v map[string]interface{}) *AuditStepCreate {
	_c.mutation.SetInputs(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *AuditStepCreate) SetPlan(v []string) *AuditStepCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetObservations sets the "observations" field.
func (_c *AuditStepCreate) SetObservations(v []string) *AuditStepCreate {
	_c.mutation.SetObservations(v)
	return _c
}

// SetOutputs sets the "outputs" field.
func (_c *AuditStepCreate) SetOutputs(v map[string]interface{}) *AuditStepCreate {
	_c.mutation.SetOutputs(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *AuditStepCreate) SetInputTokens(v int) *AuditStepCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *AuditStepCreate) SetNillableInputTokens(v *int) *AuditStepCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *AuditStepCreate) SetOutputTokens(v int) *AuditStepCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *AuditStepCreate) SetNillableOutputTokens(v *int) *AuditStepCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *AuditStepCreate) SetTotalTokens(v int) *AuditStepCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetNillableTotalTokens sets the "total_tokens" field if the given value is not nil.
func (_c *AuditStepCreate) SetNillableTotalTokens(v *int) *AuditStepCreate {
	if v != nil {
		_c.SetTotalTokens(*v)
	}
	return _c
}

// SetCostUsd sets the "cost_usd" field.
func (_c *AuditStepCreate) SetCostUsd(v float64) *AuditStepCreate {
	_c.mutation.SetCostUsd(v)
	return _c
}

// SetNillableCostUsd sets the "cost_usd" field if the given value is not nil.
func (_c *AuditStepCreate) SetNillableCostUsd(v *float64) *AuditStepCreate {
	if v != nil {
		_c.SetCostUsd(*v)
	}
	return _c
}

// SetPrevHash sets the "prev_hash" field.
func (_c *AuditStepCreate) SetPrevHash(v string) *AuditStepCreate {
	_c.mutation.SetPrevHash(v)
	return _c
}

// SetNillablePrevHash sets the "prev_hash" field if the given value is not nil.
func (_c *AuditStepCreate) SetNillablePrevHash(v *string) *AuditStepCreate {
	if v != nil {
		_c.SetPrevHash(*v)
	}
	return _c
}

// SetHash sets the "hash" field.
func (_c *AuditStepCreate) SetHash(v string) *AuditStepCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetSignature sets the "signature" field.
func (_c *AuditStepCreate) SetSignature(v string) *AuditStepCreate {
	_c.mutation.SetSignature(v)
	return _c
}

// SetNillableSignature sets the "signature" field if the given value is not nil.
func (_c *AuditStepCreate) SetNillableSignature(v *string) *AuditStepCreate {
	if v != nil {
		_c.SetSignature(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AuditStepCreate) SetID(v string) *AuditStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetCase sets the "case" edge to the CaseRecord entity.
func (_c *AuditStepCreate) SetCase(v *CaseRecord) *AuditStepCreate {
	return _c.SetCaseID(v.ID)
}

// Mutation returns the AuditStepMutation object of the builder.
func (_c *AuditStepCreate) Mutation() *AuditStepMutation {
	return _c.mutation
}

// Save creates the AuditStep in the database.
func (_c *AuditStepCreate) Save(ctx context.Context) (*AuditStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AuditStepCreate) SaveX(ctx context.Context) *AuditStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AuditStepCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := auditstep.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := auditstep.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := auditstep.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		v := auditstep.DefaultTotalTokens
		_c.mutation.SetTotalTokens(v)
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		v := auditstep.DefaultCostUsd
		_c.mutation.SetCostUsd(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AuditStepCreate) check() error {
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "AuditStep.case_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "AuditStep.seq"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "AuditStep.version"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AuditStep.timestamp"`)}
	}
	if _, ok := _c.mutation.AgentName(); !ok {
		return &ValidationError{Name: "agent_name", err: errors.New(`ent: missing required field "AuditStep.agent_name"`)}
	}
	if _, ok := _c.mutation.AgentRole(); !ok {
		return &ValidationError{Name: "agent_role", err: errors.New(`ent: missing required field "AuditStep.agent_role"`)}
	}
	if _, ok := _c.mutation.AgentModel(); !ok {
		return &ValidationError{Name: "agent_model", err: errors.New(`ent: missing required field "AuditStep.agent_model"`)}
	}
	if _, ok := _c.mutation.PromptVersion(); !ok {
		return &ValidationError{Name: "prompt_version", err: errors.New(`ent: missing required field "AuditStep.prompt_version"`)}
	}
	if _, ok := _c.mutation.AutonomyLevel(); !ok {
		return &ValidationError{Name: "autonomy_level", err: errors.New(`ent: missing required field "AuditStep.autonomy_level"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "AuditStep.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "AuditStep.output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "AuditStep.total_tokens"`)}
	}
	if _, ok := _c.mutation.CostUsd(); !ok {
		return &ValidationError{Name: "cost_usd", err: errors.New(`ent: missing required field "AuditStep.cost_usd"`)}
	}
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "AuditStep.hash"`)}
	}
	if len(_c.mutation.CaseIDs()) == 0 {
		return &ValidationError{Name: "case", err: errors.New(`ent: missing required edge "AuditStep.case"`)}
	}
	return nil
}

func (_c *AuditStepCreate) sqlSave(ctx context.Context) (*AuditStep, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AuditStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AuditStepCreate) createSpec() (*AuditStep, *sqlgraph.CreateSpec) {
	var (
		_node = &AuditStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(auditstep.Table, sqlgraph.NewFieldSpec(auditstep.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(auditstep.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(auditstep.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(auditstep.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.AgentName(); ok {
		_spec.SetField(auditstep.FieldAgentName, field.TypeString, value)
		_node.AgentName = value
	}
	if value, ok := _c.mutation.AgentRole(); ok {
		_spec.SetField(auditstep.FieldAgentRole, field.TypeString, value)
		_node.AgentRole = value
	}
	if value, ok := _c.mutation.AgentModel(); ok {
		_spec.SetField(auditstep.FieldAgentModel, field.TypeString, value)
		_node.AgentModel = value
	}
	if value, ok := _c.mutation.PromptVersion(); ok {
		_spec.SetField(auditstep.FieldPromptVersion, field.TypeString, value)
		_node.PromptVersion = value
	}
	if value, ok := _c.mutation.AutonomyLevel(); ok {
		_spec.SetField(auditstep.FieldAutonomyLevel, field.TypeString, value)
		_node.AutonomyLevel = value
	}
	if value, ok := _c.mutation.Inputs(); ok {
		_spec.SetField(auditstep.FieldInputs, field.TypeJSON, value)
		_node.Inputs = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(auditstep.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Observations(); ok {
		_spec.SetField(auditstep.FieldObservations, field.TypeJSON, value)
		_node.Observations = value
	}
	if value, ok := _c.mutation.Outputs(); ok {
		_spec.SetField(auditstep.FieldOutputs, field.TypeJSON, value)
		_node.Outputs = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(auditstep.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(auditstep.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(auditstep.FieldTotalTokens, field.TypeInt, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.CostUsd(); ok {
		_spec.SetField(auditstep.FieldCostUsd, field.TypeFloat64, value)
		_node.CostUsd = value
	}
	if value, ok := _c.mutation.PrevHash(); ok {
		_spec.SetField(auditstep.FieldPrevHash, field.TypeString, value)
		_node.PrevHash = &value
	}
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(auditstep.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.Signature(); ok {
		_spec.SetField(auditstep.FieldSignature, field.TypeString, value)
		_node.Signature = value
	}
	if nodes := _c.mutation.CaseIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   auditstep.CaseTable,
			Columns: []string{auditstep.CaseColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CaseID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditStep.Create().
//		SetCaseID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditStepUpsert) {
//			SetCaseID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditStepCreate) OnConflict(opts ...sql.ConflictOption) *AuditStepUpsertOne {
	_c.conflict = opts
	return &AuditStepUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditStepCreate) OnConflictColumns(columns ...string) *AuditStepUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditStepUpsertOne{
		create: _c,
	}
}

type (
	// AuditStepUpsertOne is the builder for "upsert"-ing
	//  one AuditStep node.
	AuditStepUpsertOne struct {
		create *AuditStepCreate
	}

	// AuditStepUpsert is the "OnConflict" setter.
	AuditStepUpsert struct {
		*sql.UpdateSet
	}
)

// SetInputs sets the "inputs" field.
func (u *AuditStepUpsert) SetInputs(v map[string]interface{}) *AuditStepUpsert {
	u.Set(auditstep.FieldInputs, v)
	return u
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *AuditStepUpsert) UpdateInputs() *AuditStepUpsert {
	u.SetExcluded(auditstep.FieldInputs)
	return u
}

// ClearInputs clears the value of the "inputs" field.
func (u *AuditStepUpsert) ClearInputs() *AuditStepUpsert {
	u.SetNull(auditstep.FieldInputs)
	return u
}

// SetPlan sets the "plan" field.
func (u *AuditStepUpsert) SetPlan(v []string) *AuditStepUpsert {
	u.Set(auditstep.FieldPlan, v)
	return u
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *AuditStepUpsert) UpdatePlan() *AuditStepUpsert {
	u.SetExcluded(auditstep.FieldPlan)
	return u
}

// ClearPlan clears the value of the "plan" field.
func (u *AuditStepUpsert) ClearPlan() *AuditStepUpsert {
	u.SetNull(auditstep.FieldPlan)
	return u
}

// SetObservations sets the "observations" field.
func (u *AuditStepUpsert) SetObservations(v []string) *AuditStepUpsert {
	u.Set(auditstep.FieldObservations, v)
	return u
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *AuditStepUpsert) UpdateObservations() *AuditStepUpsert {
	u.SetExcluded(auditstep.FieldObservations)
	return u
}

// ClearObservations clears the value of the "observations" field.
func (u *AuditStepUpsert) ClearObservations() *AuditStepUpsert {
	u.SetNull(auditstep.FieldObservations)
	return u
}

// SetOutputs sets the "outputs" field.
func (u *AuditStepUpsert) SetOutputs(v map[string]interface{}) *AuditStepUpsert {
	u.Set(auditstep.FieldOutputs, v)
	return u
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *AuditStepUpsert) UpdateOutputs() *AuditStepUpsert {
	u.SetExcluded(auditstep.FieldOutputs)
	return u
}

// ClearOutputs clears the value of the "outputs" field.
func (u *AuditStepUpsert) ClearOutputs() *AuditStepUpsert {
	u.SetNull(auditstep.FieldOutputs)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuditStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditStepUpsertOne) UpdateNewValues() *AuditStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(auditstep.FieldID)
		}
		if _, exists := u.create.mutation.CaseID(); exists {
			s.SetIgnore(auditstep.FieldCaseID)
		}
		if _, exists := u.create.mutation.Seq(); exists {
			s.SetIgnore(auditstep.FieldSeq)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(auditstep.FieldVersion)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(auditstep.FieldTimestamp)
		}
		if _, exists := u.create.mutation.AgentName(); exists {
			s.SetIgnore(auditstep.FieldAgentName)
		}
		if _, exists := u.create.mutation.AgentRole(); exists {
			s.SetIgnore(auditstep.FieldAgentRole)
		}
		if _, exists := u.create.mutation.AgentModel(); exists {
			s.SetIgnore(auditstep.FieldAgentModel)
		}
		if _, exists := u.create.mutation.PromptVersion(); exists {
			s.SetIgnore(auditstep.FieldPromptVersion)
		}
		if _, exists := u.create.mutation.AutonomyLevel(); exists {
			s.SetIgnore(auditstep.FieldAutonomyLevel)
		}
		if _, exists := u.create.mutation.InputTokens(); exists {
			s.SetIgnore(auditstep.FieldInputTokens)
		}
		if _, exists := u.create.mutation.OutputTokens(); exists {
			s.SetIgnore(auditstep.FieldOutputTokens)
		}
		if _, exists := u.create.mutation.TotalTokens(); exists {
			s.SetIgnore(auditstep.FieldTotalTokens)
		}
		if _, exists := u.create.mutation.CostUsd(); exists {
			s.SetIgnore(auditstep.FieldCostUsd)
		}
		if _, exists := u.create.mutation.PrevHash(); exists {
			s.SetIgnore(auditstep.FieldPrevHash)
		}
		if _, exists := u.create.mutation.Hash(); exists {
			s.SetIgnore(auditstep.FieldHash)
		}
		if _, exists := u.create.mutation.Signature(); exists {
			s.SetIgnore(auditstep.FieldSignature)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditStep.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuditStepUpsertOne) Ignore() *AuditStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditStepUpsertOne) DoNothing() *AuditStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditStepCreate.OnConflict
// documentation for more info.
func (u *AuditStepUpsertOne) Update(set func(*AuditStepUpsert)) *AuditStepUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetInputs sets the "inputs" field.
func (u *AuditStepUpsertOne) SetInputs(v map[string]interface{}) *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.SetInputs(v)
	})
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *AuditStepUpsertOne) UpdateInputs() *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.UpdateInputs()
	})
}

// ClearInputs clears the value of the "inputs" field.
func (u *AuditStepUpsertOne) ClearInputs() *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.ClearInputs()
	})
}

// SetPlan sets the "plan" field.
func (u *AuditStepUpsertOne) SetPlan(v []string) *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *AuditStepUpsertOne) UpdatePlan() *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *AuditStepUpsertOne) ClearPlan() *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.ClearPlan()
	})
}

// SetObservations sets the "observations" field.
func (u *AuditStepUpsertOne) SetObservations(v []string) *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.SetObservations(v)
	})
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *AuditStepUpsertOne) UpdateObservations() *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.UpdateObservations()
	})
}

// ClearObservations clears the value of the "observations" field.
func (u *AuditStepUpsertOne) ClearObservations() *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.ClearObservations()
	})
}

// SetOutputs sets the "outputs" field.
func (u *AuditStepUpsertOne) SetOutputs(v map[string]interface{}) *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *AuditStepUpsertOne) UpdateOutputs() *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.UpdateOutputs()
	})
}

// ClearOutputs clears the value of the "outputs" field.
func (u *AuditStepUpsertOne) ClearOutputs() *AuditStepUpsertOne {
	return u.Update(func(s *AuditStepUpsert) {
		s.ClearOutputs()
	})
}

// Exec executes the query.
func (u *AuditStepUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditStepCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditStepUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuditStepUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuditStepUpsertOne.ID is not supported by MySQL driver. Use AuditStepUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuditStepUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuditStepCreateBulk is the builder for creating many AuditStep entities in bulk.
type AuditStepCreateBulk struct {
	config
	err      error
	builders []*AuditStepCreate
	conflict []sql.ConflictOption
}

// Save creates the AuditStep entities in the database.
func (_c *AuditStepCreateBulk) Save(ctx context.Context) ([]*AuditStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AuditStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuditStepMutation)
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
func (_c *AuditStepCreateBulk) SaveX(ctx context.Context) []*AuditStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AuditStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AuditStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuditStep.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuditStepUpsert) {
//			SetCaseID(v+v).
//		}).
//		Exec(ctx)
func (_c *AuditStepCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuditStepUpsertBulk {
	_c.conflict = opts
	return &AuditStepUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuditStep.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AuditStepCreateBulk) OnConflictColumns(columns ...string) *AuditStepUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AuditStepUpsertBulk{
		create: _c,
	}
}

// AuditStepUpsertBulk is the builder for "upsert"-ing
// a bulk of AuditStep nodes.
type AuditStepUpsertBulk struct {
	create *AuditStepCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuditStep.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(auditstep.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuditStepUpsertBulk) UpdateNewValues() *AuditStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(auditstep.FieldID)
			}
			if _, exists := b.mutation.CaseID(); exists {
				s.SetIgnore(auditstep.FieldCaseID)
			}
			if _, exists := b.mutation.Seq(); exists {
				s.SetIgnore(auditstep.FieldSeq)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(auditstep.FieldVersion)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(auditstep.FieldTimestamp)
			}
			if _, exists := b.mutation.AgentName(); exists {
				s.SetIgnore(auditstep.FieldAgentName)
			}
			if _, exists := b.mutation.AgentRole(); exists {
				s.SetIgnore(auditstep.FieldAgentRole)
			}
			if _, exists := b.mutation.AgentModel(); exists {
				s.SetIgnore(auditstep.FieldAgentModel)
			}
			if _, exists := b.mutation.PromptVersion(); exists {
				s.SetIgnore(auditstep.FieldPromptVersion)
			}
			if _, exists := b.mutation.AutonomyLevel(); exists {
				s.SetIgnore(auditstep.FieldAutonomyLevel)
			}
			if _, exists := b.mutation.InputTokens(); exists {
				s.SetIgnore(auditstep.FieldInputTokens)
			}
			if _, exists := b.mutation.OutputTokens(); exists {
				s.SetIgnore(auditstep.FieldOutputTokens)
			}
			if _, exists := b.mutation.TotalTokens(); exists {
				s.SetIgnore(auditstep.FieldTotalTokens)
			}
			if _, exists := b.mutation.CostUsd(); exists {
				s.SetIgnore(auditstep.FieldCostUsd)
			}
			if _, exists := b.mutation.PrevHash(); exists {
				s.SetIgnore(auditstep.FieldPrevHash)
			}
			if _, exists := b.mutation.Hash(); exists {
				s.SetIgnore(auditstep.FieldHash)
			}
			if _, exists := b.mutation.Signature(); exists {
				s.SetIgnore(auditstep.FieldSignature)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuditStep.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuditStepUpsertBulk) Ignore() *AuditStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuditStepUpsertBulk) DoNothing() *AuditStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuditStepCreateBulk.OnConflict
// documentation for more info.
func (u *AuditStepUpsertBulk) Update(set func(*AuditStepUpsert)) *AuditStepUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuditStepUpsert{UpdateSet: update})
	}))
	return u
}

// SetInputs sets the "inputs" field.
func (u *AuditStepUpsertBulk) SetInputs(v map[string]interface{}) *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.SetInputs(v)
	})
}

// UpdateInputs sets the "inputs" field to the value that was provided on create.
func (u *AuditStepUpsertBulk) UpdateInputs() *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.UpdateInputs()
	})
}

// ClearInputs clears the value of the "inputs" field.
func (u *AuditStepUpsertBulk) ClearInputs() *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.ClearInputs()
	})
}

// SetPlan sets the "plan" field.
func (u *AuditStepUpsertBulk) SetPlan(v []string) *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.SetPlan(v)
	})
}

// UpdatePlan sets the "plan" field to the value that was provided on create.
func (u *AuditStepUpsertBulk) UpdatePlan() *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.UpdatePlan()
	})
}

// ClearPlan clears the value of the "plan" field.
func (u *AuditStepUpsertBulk) ClearPlan() *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.ClearPlan()
	})
}

// SetObservations sets the "observations" field.
func (u *AuditStepUpsertBulk) SetObservations(v []string) *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.SetObservations(v)
	})
}

// UpdateObservations sets the "observations" field to the value that was provided on create.
func (u *AuditStepUpsertBulk) UpdateObservations() *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.UpdateObservations()
	})
}

// ClearObservations clears the value of the "observations" field.
func (u *AuditStepUpsertBulk) ClearObservations() *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.ClearObservations()
	})
}

// SetOutputs sets the "outputs" field.
func (u *AuditStepUpsertBulk) SetOutputs(v map[string]interface{}) *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.SetOutputs(v)
	})
}

// UpdateOutputs sets the "outputs" field to the value that was provided on create.
func (u *AuditStepUpsertBulk) UpdateOutputs() *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.UpdateOutputs()
	})
}

// ClearOutputs clears the value of the "outputs" field.
func (u *AuditStepUpsertBulk) ClearOutputs() *AuditStepUpsertBulk {
	return u.Update(func(s *AuditStepUpsert) {
		s.ClearOutputs()
	})
}

// Exec executes the query.
func (u *AuditStepUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuditStepCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuditStepCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuditStepUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

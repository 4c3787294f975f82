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
	"github.com/secopshq/caseflow/ent/agentexecution"
	"github.com/secopshq/caseflow/ent/approval"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/ent/report"
)

// CaseRecordCreate is the builder for creating a CaseRecord entity.
type CaseRecordCreate struct {
	config
	mutation *CaseRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTitle sets the "title" field.
func (_c *CaseRecordCreate) SetTitle(v string) *CaseRecordCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableTitle(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *CaseRecordCreate) SetDescription(v string) *CaseRecordCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableDescription(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *CaseRecordCreate) SetSeverity(v string) *CaseRecordCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableSeverity(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CaseRecordCreate) SetStatus(v caserecord.Status) *CaseRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableStatus(v *caserecord.Status) *CaseRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentStep sets the "current_step" field.
func (_c *CaseRecordCreate) SetCurrentStep(v string) *CaseRecordCreate {
	_c.mutation.SetCurrentStep(v)
	return _c
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableCurrentStep(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetCurrentStep(*v)
	}
	return _c
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (_c *CaseRecordCreate) SetAutonomyLevel(v string) *CaseRecordCreate {
	_c.mutation.SetAutonomyLevel(v)
	return _c
}

// SetNillableAutonomyLevel sets the "autonomy_level" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableAutonomyLevel(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetAutonomyLevel(*v)
	}
	return _c
}

// SetEntities sets the "entities" field.
func (_c *CaseRecordCreate) SetEntities(v map[string][]string) *CaseRecordCreate {
	_c.mutation.SetEntities(v)
	return _c
}

// SetThreatClassification sets the "threat_classification" field.
func (_c *CaseRecordCreate) SetThreatClassification(v string) *CaseRecordCreate {
	_c.mutation.SetThreatClassification(v)
	return _c
}

// SetNillableThreatClassification sets the "threat_classification" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableThreatClassification(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetThreatClassification(*v)
	}
	return _c
}

// SetActualCost sets the "actual_cost" field.
func (_c *CaseRecordCreate) SetActualCost(v float64) *CaseRecordCreate {
	_c.mutation.SetActualCost(v)
	return _c
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableActualCost(v *float64) *CaseRecordCreate {
	if v != nil {
		_c.SetActualCost(*v)
	}
	return _c
}

// SetActualTokens sets the "actual_tokens" field.
func (_c *CaseRecordCreate) SetActualTokens(v int) *CaseRecordCreate {
	_c.mutation.SetActualTokens(v)
	return _c
}

// SetNillableActualTokens sets the "actual_tokens" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableActualTokens(v *int) *CaseRecordCreate {
	if v != nil {
		_c.SetActualTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaseRecordCreate) SetCreatedAt(v time.Time) *CaseRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableCreatedAt(v *time.Time) *CaseRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CaseRecordCreate) SetUpdatedAt(v time.Time) *CaseRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableUpdatedAt(v *time.Time) *CaseRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *CaseRecordCreate) SetCompletedAt(v time.Time) *CaseRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableCompletedAt(v *time.Time) *CaseRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *CaseRecordCreate) SetErrorMessage(v string) *CaseRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *CaseRecordCreate) SetNillableErrorMessage(v *string) *CaseRecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CaseRecordCreate) SetID(v string) *CaseRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddAuditStepIDs adds the "audit_steps" edge to the AuditStep entity by IDs.
func (_c *CaseRecordCreate) AddAuditStepIDs(ids ...string) *CaseRecordCreate {
	_c.mutation.AddAuditStepIDs(ids...)
	return _c
}

// AddAuditSteps adds the "audit_steps" edges to the AuditStep entity.
func (_c *CaseRecordCreate) AddAuditSteps(v ...*AuditStep) *CaseRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAuditStepIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_c *CaseRecordCreate) AddApprovalIDs(ids ...string) *CaseRecordCreate {
	_c.mutation.AddApprovalIDs(ids...)
	return _c
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_c *CaseRecordCreate) AddApprovals(v ...*Approval) *CaseRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddApprovalIDs(ids...)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_c *CaseRecordCreate) AddAgentExecutionIDs(ids ...string) *CaseRecordCreate {
	_c.mutation.AddAgentExecutionIDs(ids...)
	return _c
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_c *CaseRecordCreate) AddAgentExecutions(v ...*AgentExecution) *CaseRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentExecutionIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_c *CaseRecordCreate) AddReportIDs(ids ...string) *CaseRecordCreate {
	_c.mutation.AddReportIDs(ids...)
	return _c
}

// AddReports adds the "reports" edges to the Report entity.
func (_c *CaseRecordCreate) AddReports(v ...*Report) *CaseRecordCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReportIDs(ids...)
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_c *CaseRecordCreate) Mutation() *CaseRecordMutation {
	return _c.mutation
}

// Save creates the CaseRecord in the database.
func (_c *CaseRecordCreate) Save(ctx context.Context) (*CaseRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaseRecordCreate) SaveX(ctx context.Context) *CaseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaseRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := caserecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ActualCost(); !ok {
		v := caserecord.DefaultActualCost
		_c.mutation.SetActualCost(v)
	}
	if _, ok := _c.mutation.ActualTokens(); !ok {
		v := caserecord.DefaultActualTokens
		_c.mutation.SetActualTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := caserecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := caserecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaseRecordCreate) check() error {
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CaseRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := caserecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActualCost(); !ok {
		return &ValidationError{Name: "actual_cost", err: errors.New(`ent: missing required field "CaseRecord.actual_cost"`)}
	}
	if _, ok := _c.mutation.ActualTokens(); !ok {
		return &ValidationError{Name: "actual_tokens", err: errors.New(`ent: missing required field "CaseRecord.actual_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaseRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CaseRecord.updated_at"`)}
	}
	return nil
}

func (_c *CaseRecordCreate) sqlSave(ctx context.Context) (*CaseRecord, error) {
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
			return nil, fmt.Errorf("unexpected CaseRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CaseRecordCreate) createSpec() (*CaseRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CaseRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(caserecord.Table, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(caserecord.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(caserecord.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(caserecord.FieldSeverity, field.TypeString, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(caserecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentStep(); ok {
		_spec.SetField(caserecord.FieldCurrentStep, field.TypeString, value)
		_node.CurrentStep = value
	}
	if value, ok := _c.mutation.AutonomyLevel(); ok {
		_spec.SetField(caserecord.FieldAutonomyLevel, field.TypeString, value)
		_node.AutonomyLevel = value
	}
	if value, ok := _c.mutation.Entities(); ok {
		_spec.SetField(caserecord.FieldEntities, field.TypeJSON, value)
		_node.Entities = value
	}
	if value, ok := _c.mutation.ThreatClassification(); ok {
		_spec.SetField(caserecord.FieldThreatClassification, field.TypeString, value)
		_node.ThreatClassification = value
	}
	if value, ok := _c.mutation.ActualCost(); ok {
		_spec.SetField(caserecord.FieldActualCost, field.TypeFloat64, value)
		_node.ActualCost = value
	}
	if value, ok := _c.mutation.ActualTokens(); ok {
		_spec.SetField(caserecord.FieldActualTokens, field.TypeInt, value)
		_node.ActualTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(caserecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(caserecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(caserecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(caserecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.AuditStepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.AuditStepsTable,
			Columns: []string{caserecord.AuditStepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(auditstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ApprovalsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.ApprovalsTable,
			Columns: []string{caserecord.ApprovalsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approval.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.AgentExecutionsTable,
			Columns: []string{caserecord.AgentExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agentexecution.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   caserecord.ReportsTable,
			Columns: []string{caserecord.ReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(report.FieldID, field.TypeString),
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
//	client.CaseRecord.Create().
//		SetTitle(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CaseRecordUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *CaseRecordCreate) OnConflict(opts ...sql.ConflictOption) *CaseRecordUpsertOne {
	_c.conflict = opts
	return &CaseRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CaseRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CaseRecordCreate) OnConflictColumns(columns ...string) *CaseRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CaseRecordUpsertOne{
		create: _c,
	}
}

type (
	// CaseRecordUpsertOne is the builder for "upsert"-ing
	//  one CaseRecord node.
	CaseRecordUpsertOne struct {
		create *CaseRecordCreate
	}

	// CaseRecordUpsert is the "OnConflict" setter.
	CaseRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *CaseRecordUpsert) SetTitle(v string) *CaseRecordUpsert {
	u.Set(caserecord.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateTitle() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *CaseRecordUpsert) ClearTitle() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *CaseRecordUpsert) SetDescription(v string) *CaseRecordUpsert {
	u.Set(caserecord.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateDescription() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *CaseRecordUpsert) ClearDescription() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldDescription)
	return u
}

// SetSeverity sets the "severity" field.
func (u *CaseRecordUpsert) SetSeverity(v string) *CaseRecordUpsert {
	u.Set(caserecord.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateSeverity() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldSeverity)
	return u
}

// ClearSeverity clears the value of the "severity" field.
func (u *CaseRecordUpsert) ClearSeverity() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldSeverity)
	return u
}

// SetStatus sets the "status" field.
func (u *CaseRecordUpsert) SetStatus(v caserecord.Status) *CaseRecordUpsert {
	u.Set(caserecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateStatus() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldStatus)
	return u
}

// SetCurrentStep sets the "current_step" field.
func (u *CaseRecordUpsert) SetCurrentStep(v string) *CaseRecordUpsert {
	u.Set(caserecord.FieldCurrentStep, v)
	return u
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateCurrentStep() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldCurrentStep)
	return u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *CaseRecordUpsert) ClearCurrentStep() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldCurrentStep)
	return u
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (u *CaseRecordUpsert) SetAutonomyLevel(v string) *CaseRecordUpsert {
	u.Set(caserecord.FieldAutonomyLevel, v)
	return u
}

// UpdateAutonomyLevel sets the "autonomy_level" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateAutonomyLevel() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldAutonomyLevel)
	return u
}

// ClearAutonomyLevel clears the value of the "autonomy_level" field.
func (u *CaseRecordUpsert) ClearAutonomyLevel() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldAutonomyLevel)
	return u
}

// SetEntities sets the "entities" field.
func (u *CaseRecordUpsert) SetEntities(v map[string][]string) *CaseRecordUpsert {
	u.Set(caserecord.FieldEntities, v)
	return u
}

// UpdateEntities sets the "entities" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateEntities() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldEntities)
	return u
}

// ClearEntities clears the value of the "entities" field.
func (u *CaseRecordUpsert) ClearEntities() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldEntities)
	return u
}

// SetThreatClassification sets the "threat_classification" field.
func (u *CaseRecordUpsert) SetThreatClassification(v string) *CaseRecordUpsert {
	u.Set(caserecord.FieldThreatClassification, v)
	return u
}

// UpdateThreatClassification sets the "threat_classification" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateThreatClassification() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldThreatClassification)
	return u
}

// ClearThreatClassification clears the value of the "threat_classification" field.
func (u *CaseRecordUpsert) ClearThreatClassification() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldThreatClassification)
	return u
}

// SetActualCost sets the "actual_cost" field.
func (u *CaseRecordUpsert) SetActualCost(v float64) *CaseRecordUpsert {
	u.Set(caserecord.FieldActualCost, v)
	return u
}

// UpdateActualCost sets the "actual_cost" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateActualCost() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldActualCost)
	return u
}

// AddActualCost adds v to the "actual_cost" field.
func (u *CaseRecordUpsert) AddActualCost(v float64) *CaseRecordUpsert {
	u.Add(caserecord.FieldActualCost, v)
	return u
}

// SetActualTokens sets the "actual_tokens" field.
func (u *CaseRecordUpsert) SetActualTokens(v int) *CaseRecordUpsert {
	u.Set(caserecord.FieldActualTokens, v)
	return u
}

// UpdateActualTokens sets the "actual_tokens" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateActualTokens() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldActualTokens)
	return u
}

// AddActualTokens adds v to the "actual_tokens" field.
func (u *CaseRecordUpsert) AddActualTokens(v int) *CaseRecordUpsert {
	u.Add(caserecord.FieldActualTokens, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CaseRecordUpsert) SetUpdatedAt(v time.Time) *CaseRecordUpsert {
	u.Set(caserecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateUpdatedAt() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldUpdatedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *CaseRecordUpsert) SetCompletedAt(v time.Time) *CaseRecordUpsert {
	u.Set(caserecord.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateCompletedAt() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CaseRecordUpsert) ClearCompletedAt() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldCompletedAt)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *CaseRecordUpsert) SetErrorMessage(v string) *CaseRecordUpsert {
	u.Set(caserecord.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CaseRecordUpsert) UpdateErrorMessage() *CaseRecordUpsert {
	u.SetExcluded(caserecord.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CaseRecordUpsert) ClearErrorMessage() *CaseRecordUpsert {
	u.SetNull(caserecord.FieldErrorMessage)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.CaseRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(caserecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CaseRecordUpsertOne) UpdateNewValues() *CaseRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(caserecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(caserecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CaseRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CaseRecordUpsertOne) Ignore() *CaseRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CaseRecordUpsertOne) DoNothing() *CaseRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CaseRecordCreate.OnConflict
// documentation for more info.
func (u *CaseRecordUpsertOne) Update(set func(*CaseRecordUpsert)) *CaseRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CaseRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CaseRecordUpsertOne) SetTitle(v string) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateTitle() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *CaseRecordUpsertOne) ClearTitle() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CaseRecordUpsertOne) SetDescription(v string) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateDescription() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CaseRecordUpsertOne) ClearDescription() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearDescription()
	})
}

// SetSeverity sets the "severity" field.
func (u *CaseRecordUpsertOne) SetSeverity(v string) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateSeverity() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *CaseRecordUpsertOne) ClearSeverity() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearSeverity()
	})
}

// SetStatus sets the "status" field.
func (u *CaseRecordUpsertOne) SetStatus(v caserecord.Status) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateStatus() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *CaseRecordUpsertOne) SetCurrentStep(v string) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateCurrentStep() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *CaseRecordUpsertOne) ClearCurrentStep() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearCurrentStep()
	})
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (u *CaseRecordUpsertOne) SetAutonomyLevel(v string) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetAutonomyLevel(v)
	})
}

// UpdateAutonomyLevel sets the "autonomy_level" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateAutonomyLevel() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateAutonomyLevel()
	})
}

// ClearAutonomyLevel clears the value of the "autonomy_level" field.
func (u *CaseRecordUpsertOne) ClearAutonomyLevel() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearAutonomyLevel()
	})
}

// SetEntities sets the "entities" field.
func (u *CaseRecordUpsertOne) SetEntities(v map[string][]string) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetEntities(v)
	})
}

// UpdateEntities sets the "entities" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateEntities() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateEntities()
	})
}

// ClearEntities clears the value of the "entities" field.
func (u *CaseRecordUpsertOne) ClearEntities() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearEntities()
	})
}

// SetThreatClassification sets the "threat_classification" field.
func (u *CaseRecordUpsertOne) SetThreatClassification(v string) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetThreatClassification(v)
	})
}

// UpdateThreatClassification sets the "threat_classification" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateThreatClassification() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateThreatClassification()
	})
}

// ClearThreatClassification clears the value of the "threat_classification" field.
func (u *CaseRecordUpsertOne) ClearThreatClassification() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearThreatClassification()
	})
}

// SetActualCost sets the "actual_cost" field.
func (u *CaseRecordUpsertOne) SetActualCost(v float64) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetActualCost(v)
	})
}

// AddActualCost adds v to the "actual_cost" field.
func (u *CaseRecordUpsertOne) AddActualCost(v float64) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.AddActualCost(v)
	})
}

// UpdateActualCost sets the "actual_cost" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateActualCost() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateActualCost()
	})
}

// SetActualTokens sets the "actual_tokens" field.
func (u *CaseRecordUpsertOne) SetActualTokens(v int) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetActualTokens(v)
	})
}

// AddActualTokens adds v to the "actual_tokens" field.
func (u *CaseRecordUpsertOne) AddActualTokens(v int) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.AddActualTokens(v)
	})
}

// UpdateActualTokens sets the "actual_tokens" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateActualTokens() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateActualTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CaseRecordUpsertOne) SetUpdatedAt(v time.Time) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateUpdatedAt() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CaseRecordUpsertOne) SetCompletedAt(v time.Time) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateCompletedAt() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CaseRecordUpsertOne) ClearCompletedAt() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CaseRecordUpsertOne) SetErrorMessage(v string) *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CaseRecordUpsertOne) UpdateErrorMessage() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CaseRecordUpsertOne) ClearErrorMessage() *CaseRecordUpsertOne {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *CaseRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CaseRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CaseRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CaseRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CaseRecordUpsertOne.ID is not supported by MySQL driver. Use CaseRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CaseRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CaseRecordCreateBulk is the builder for creating many CaseRecord entities in bulk.
type CaseRecordCreateBulk struct {
	config
	err      error
	builders []*CaseRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the CaseRecord entities in the database.
func (_c *CaseRecordCreateBulk) Save(ctx context.Context) ([]*CaseRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaseRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaseRecordMutation)
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
func (_c *CaseRecordCreateBulk) SaveX(ctx context.Context) []*CaseRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaseRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaseRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CaseRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CaseRecordUpsert) {
//			SetTitle(v+v).
//		}).
//		Exec(ctx)
func (_c *CaseRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *CaseRecordUpsertBulk {
	_c.conflict = opts
	return &CaseRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CaseRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CaseRecordCreateBulk) OnConflictColumns(columns ...string) *CaseRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CaseRecordUpsertBulk{
		create: _c,
	}
}

// CaseRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of CaseRecord nodes.
type CaseRecordUpsertBulk struct {
	create *CaseRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CaseRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(caserecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CaseRecordUpsertBulk) UpdateNewValues() *CaseRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(caserecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(caserecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CaseRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CaseRecordUpsertBulk) Ignore() *CaseRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CaseRecordUpsertBulk) DoNothing() *CaseRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CaseRecordCreateBulk.OnConflict
// documentation for more info.
func (u *CaseRecordUpsertBulk) Update(set func(*CaseRecordUpsert)) *CaseRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CaseRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *CaseRecordUpsertBulk) SetTitle(v string) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateTitle() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *CaseRecordUpsertBulk) ClearTitle() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearTitle()
	})
}

// SetDescription sets the "description" field.
func (u *CaseRecordUpsertBulk) SetDescription(v string) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateDescription() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *CaseRecordUpsertBulk) ClearDescription() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearDescription()
	})
}

// SetSeverity sets the "severity" field.
func (u *CaseRecordUpsertBulk) SetSeverity(v string) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateSeverity() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *CaseRecordUpsertBulk) ClearSeverity() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearSeverity()
	})
}

// SetStatus sets the "status" field.
func (u *CaseRecordUpsertBulk) SetStatus(v caserecord.Status) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateStatus() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateStatus()
	})
}

// SetCurrentStep sets the "current_step" field.
func (u *CaseRecordUpsertBulk) SetCurrentStep(v string) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetCurrentStep(v)
	})
}

// UpdateCurrentStep sets the "current_step" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateCurrentStep() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateCurrentStep()
	})
}

// ClearCurrentStep clears the value of the "current_step" field.
func (u *CaseRecordUpsertBulk) ClearCurrentStep() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearCurrentStep()
	})
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (u *CaseRecordUpsertBulk) SetAutonomyLevel(v string) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetAutonomyLevel(v)
	})
}

// UpdateAutonomyLevel sets the "autonomy_level" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateAutonomyLevel() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateAutonomyLevel()
	})
}

// ClearAutonomyLevel clears the value of the "autonomy_level" field.
func (u *CaseRecordUpsertBulk) ClearAutonomyLevel() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearAutonomyLevel()
	})
}

// SetEntities sets the "entities" field.
func (u *CaseRecordUpsertBulk) SetEntities(v map[string][]string) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetEntities(v)
	})
}

// UpdateEntities sets the "entities" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateEntities() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateEntities()
	})
}

// ClearEntities clears the value of the "entities" field.
func (u *CaseRecordUpsertBulk) ClearEntities() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearEntities()
	})
}

// SetThreatClassification sets the "threat_classification" field.
func (u *CaseRecordUpsertBulk) SetThreatClassification(v string) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetThreatClassification(v)
	})
}

// UpdateThreatClassification sets the "threat_classification" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateThreatClassification() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateThreatClassification()
	})
}

// ClearThreatClassification clears the value of the "threat_classification" field.
func (u *CaseRecordUpsertBulk) ClearThreatClassification() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearThreatClassification()
	})
}

// SetActualCost sets the "actual_cost" field.
func (u *CaseRecordUpsertBulk) SetActualCost(v float64) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetActualCost(v)
	})
}

// AddActualCost adds v to the "actual_cost" field.
func (u *CaseRecordUpsertBulk) AddActualCost(v float64) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.AddActualCost(v)
	})
}

// UpdateActualCost sets the "actual_cost" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateActualCost() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateActualCost()
	})
}

// SetActualTokens sets the "actual_tokens" field.
func (u *CaseRecordUpsertBulk) SetActualTokens(v int) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetActualTokens(v)
	})
}

// AddActualTokens adds v to the "actual_tokens" field.
func (u *CaseRecordUpsertBulk) AddActualTokens(v int) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.AddActualTokens(v)
	})
}

// UpdateActualTokens sets the "actual_tokens" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateActualTokens() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateActualTokens()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CaseRecordUpsertBulk) SetUpdatedAt(v time.Time) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateUpdatedAt() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *CaseRecordUpsertBulk) SetCompletedAt(v time.Time) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateCompletedAt() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *CaseRecordUpsertBulk) ClearCompletedAt() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearCompletedAt()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *CaseRecordUpsertBulk) SetErrorMessage(v string) *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *CaseRecordUpsertBulk) UpdateErrorMessage() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *CaseRecordUpsertBulk) ClearErrorMessage() *CaseRecordUpsertBulk {
	return u.Update(func(s *CaseRecordUpsert) {
		s.ClearErrorMessage()
	})
}

// Exec executes the query.
func (u *CaseRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CaseRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CaseRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CaseRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/secopshq/caseflow/ent/agentexecution"
	"github.com/secopshq/caseflow/ent/approval"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/ent/predicate"
	"github.com/secopshq/caseflow/ent/report"
)

// CaseRecordUpdate is the builder for updating CaseRecord entities.
type CaseRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CaseRecordMutation
}

// Where appends a list predicates to the CaseRecordUpdate builder.
func (_u *CaseRecordUpdate) Where(ps ...predicate.CaseRecord) *CaseRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CaseRecordUpdate) SetTitle(v string) *CaseRecordUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableTitle(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CaseRecordUpdate) ClearTitle() *CaseRecordUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CaseRecordUpdate) SetDescription(v string) *CaseRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableDescription(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CaseRecordUpdate) ClearDescription() *CaseRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *CaseRecordUpdate) SetSeverity(v string) *CaseRecordUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableSeverity(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *CaseRecordUpdate) ClearSeverity() *CaseRecordUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaseRecordUpdate) SetStatus(v caserecord.Status) *CaseRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableStatus(v *caserecord.Status) *CaseRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *CaseRecordUpdate) SetCurrentStep(v string) *CaseRecordUpdate {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableCurrentStep(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *CaseRecordUpdate) ClearCurrentStep() *CaseRecordUpdate {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (_u *CaseRecordUpdate) SetAutonomyLevel(v string) *CaseRecordUpdate {
	_u.mutation.SetAutonomyLevel(v)
	return _u
}

// SetNillableAutonomyLevel sets the "autonomy_level" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableAutonomyLevel(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetAutonomyLevel(*v)
	}
	return _u
}

// ClearAutonomyLevel clears the value of the "autonomy_level" field.
func (_u *CaseRecordUpdate) ClearAutonomyLevel() *CaseRecordUpdate {
	_u.mutation.ClearAutonomyLevel()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *CaseRecordUpdate) SetEntities(v map[string][]string) *CaseRecordUpdate {
	_u.mutation.SetEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *CaseRecordUpdate) ClearEntities() *CaseRecordUpdate {
	_u.mutation.ClearEntities()
	return _u
}

// SetThreatClassification sets the "threat_classification" field.
func (_u *CaseRecordUpdate) SetThreatClassification(v string) *CaseRecordUpdate {
	_u.mutation.SetThreatClassification(v)
	return _u
}

// SetNillableThreatClassification sets the "threat_classification" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableThreatClassification(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetThreatClassification(*v)
	}
	return _u
}

// ClearThreatClassification clears the value of the "threat_classification" field.
func (_u *CaseRecordUpdate) ClearThreatClassification() *CaseRecordUpdate {
	_u.mutation.ClearThreatClassification()
	return _u
}

// SetActualCost sets the "actual_cost" field.
func (_u *CaseRecordUpdate) SetActualCost(v float64) *CaseRecordUpdate {
	_u.mutation.ResetActualCost()
	_u.mutation.SetActualCost(v)
	return _u
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableActualCost(v *float64) *CaseRecordUpdate {
	if v != nil {
		_u.SetActualCost(*v)
	}
	return _u
}

// AddActualCost adds value to the "actual_cost" field.
func (_u *CaseRecordUpdate) AddActualCost(v float64) *CaseRecordUpdate {
	_u.mutation.AddActualCost(v)
	return _u
}

// SetActualTokens sets the "actual_tokens" field.
func (_u *CaseRecordUpdate) SetActualTokens(v int) *CaseRecordUpdate {
	_u.mutation.ResetActualTokens()
	_u.mutation.SetActualTokens(v)
	return _u
}

// SetNillableActualTokens sets the "actual_tokens" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableActualTokens(v *int) *CaseRecordUpdate {
	if v != nil {
		_u.SetActualTokens(*v)
	}
	return _u
}

// AddActualTokens adds value to the "actual_tokens" field.
func (_u *CaseRecordUpdate) AddActualTokens(v int) *CaseRecordUpdate {
	_u.mutation.AddActualTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseRecordUpdate) SetUpdatedAt(v time.Time) *CaseRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CaseRecordUpdate) SetCompletedAt(v time.Time) *CaseRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableCompletedAt(v *time.Time) *CaseRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CaseRecordUpdate) ClearCompletedAt() *CaseRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CaseRecordUpdate) SetErrorMessage(v string) *CaseRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CaseRecordUpdate) SetNillableErrorMessage(v *string) *CaseRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CaseRecordUpdate) ClearErrorMessage() *CaseRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddAuditStepIDs adds the "audit_steps" edge to the AuditStep entity by IDs.
func (_u *CaseRecordUpdate) AddAuditStepIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.AddAuditStepIDs(ids...)
	return _u
}

// AddAuditSteps adds the "audit_steps" edges to the AuditStep entity.
func (_u *CaseRecordUpdate) AddAuditSteps(v ...*AuditStep) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditStepIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_u *CaseRecordUpdate) AddApprovalIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_u *CaseRecordUpdate) AddApprovals(v ...*Approval) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *CaseRecordUpdate) AddAgentExecutionIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *CaseRecordUpdate) AddAgentExecutions(v ...*AgentExecution) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_u *CaseRecordUpdate) AddReportIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the Report entity.
func (_u *CaseRecordUpdate) AddReports(v ...*Report) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_u *CaseRecordUpdate) Mutation() *CaseRecordMutation {
	return _u.mutation
}

// ClearAuditSteps clears all "audit_steps" edges to the AuditStep entity.
func (_u *CaseRecordUpdate) ClearAuditSteps() *CaseRecordUpdate {
	_u.mutation.ClearAuditSteps()
	return _u
}

// RemoveAuditStepIDs removes the "audit_steps" edge to AuditStep entities by IDs.
func (_u *CaseRecordUpdate) RemoveAuditStepIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.RemoveAuditStepIDs(ids...)
	return _u
}

// RemoveAuditSteps removes "audit_steps" edges to AuditStep entities.
func (_u *CaseRecordUpdate) RemoveAuditSteps(v ...*AuditStep) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditStepIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the Approval entity.
func (_u *CaseRecordUpdate) ClearApprovals() *CaseRecordUpdate {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to Approval entities by IDs.
func (_u *CaseRecordUpdate) RemoveApprovalIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to Approval entities.
func (_u *CaseRecordUpdate) RemoveApprovals(v ...*Approval) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *CaseRecordUpdate) ClearAgentExecutions() *CaseRecordUpdate {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *CaseRecordUpdate) RemoveAgentExecutionIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *CaseRecordUpdate) RemoveAgentExecutions(v ...*AgentExecution) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearReports clears all "reports" edges to the Report entity.
func (_u *CaseRecordUpdate) ClearReports() *CaseRecordUpdate {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to Report entities by IDs.
func (_u *CaseRecordUpdate) RemoveReportIDs(ids ...string) *CaseRecordUpdate {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to Report entities.
func (_u *CaseRecordUpdate) RemoveReports(v ...*Report) *CaseRecordUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaseRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaseRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := caserecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := caserecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caserecord.Table, caserecord.Columns, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(caserecord.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(caserecord.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(caserecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(caserecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(caserecord.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(caserecord.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(caserecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(caserecord.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(caserecord.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.AutonomyLevel(); ok {
		_spec.SetField(caserecord.FieldAutonomyLevel, field.TypeString, value)
	}
	if _u.mutation.AutonomyLevelCleared() {
		_spec.ClearField(caserecord.FieldAutonomyLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(caserecord.FieldEntities, field.TypeJSON, value)
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(caserecord.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.ThreatClassification(); ok {
		_spec.SetField(caserecord.FieldThreatClassification, field.TypeString, value)
	}
	if _u.mutation.ThreatClassificationCleared() {
		_spec.ClearField(caserecord.FieldThreatClassification, field.TypeString)
	}
	if value, ok := _u.mutation.ActualCost(); ok {
		_spec.SetField(caserecord.FieldActualCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualCost(); ok {
		_spec.AddField(caserecord.FieldActualCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActualTokens(); ok {
		_spec.SetField(caserecord.FieldActualTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualTokens(); ok {
		_spec.AddField(caserecord.FieldActualTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(caserecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(caserecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(caserecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(caserecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(caserecord.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.AuditStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditStepsIDs(); len(nodes) > 0 && !_u.mutation.AuditStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditStepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaseRecordUpdateOne is the builder for updating a single CaseRecord entity.
type CaseRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaseRecordMutation
}

// SetTitle sets the "title" field.
func (_u *CaseRecordUpdateOne) SetTitle(v string) *CaseRecordUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableTitle(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *CaseRecordUpdateOne) ClearTitle() *CaseRecordUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDescription sets the "description" field.
func (_u *CaseRecordUpdateOne) SetDescription(v string) *CaseRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableDescription(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CaseRecordUpdateOne) ClearDescription() *CaseRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *CaseRecordUpdateOne) SetSeverity(v string) *CaseRecordUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableSeverity(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *CaseRecordUpdateOne) ClearSeverity() *CaseRecordUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CaseRecordUpdateOne) SetStatus(v caserecord.Status) *CaseRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableStatus(v *caserecord.Status) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentStep sets the "current_step" field.
func (_u *CaseRecordUpdateOne) SetCurrentStep(v string) *CaseRecordUpdateOne {
	_u.mutation.SetCurrentStep(v)
	return _u
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableCurrentStep(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetCurrentStep(*v)
	}
	return _u
}

// ClearCurrentStep clears the value of the "current_step" field.
func (_u *CaseRecordUpdateOne) ClearCurrentStep() *CaseRecordUpdateOne {
	_u.mutation.ClearCurrentStep()
	return _u
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (_u *CaseRecordUpdateOne) SetAutonomyLevel(v string) *CaseRecordUpdateOne {
	_u.mutation.SetAutonomyLevel(v)
	return _u
}

// SetNillableAutonomyLevel sets the "autonomy_level" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableAutonomyLevel(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetAutonomyLevel(*v)
	}
	return _u
}

// ClearAutonomyLevel clears the value of the "autonomy_level" field.
func (_u *CaseRecordUpdateOne) ClearAutonomyLevel() *CaseRecordUpdateOne {
	_u.mutation.ClearAutonomyLevel()
	return _u
}

// SetEntities sets the "entities" field.
func (_u *CaseRecordUpdateOne) SetEntities(v map[string][]string) *CaseRecordUpdateOne {
	_u.mutation.SetEntities(v)
	return _u
}

// ClearEntities clears the value of the "entities" field.
func (_u *CaseRecordUpdateOne) ClearEntities() *CaseRecordUpdateOne {
	_u.mutation.ClearEntities()
	return _u
}

// SetThreatClassification sets the "threat_classification" field.
func (_u *CaseRecordUpdateOne) SetThreatClassification(v string) *CaseRecordUpdateOne {
	_u.mutation.SetThreatClassification(v)
	return _u
}

// SetNillableThreatClassification sets the "threat_classification" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableThreatClassification(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetThreatClassification(*v)
	}
	return _u
}

// ClearThreatClassification clears the value of the "threat_classification" field.
func (_u *CaseRecordUpdateOne) ClearThreatClassification() *CaseRecordUpdateOne {
	_u.mutation.ClearThreatClassification()
	return _u
}

// SetActualCost sets the "actual_cost" field.
func (_u *CaseRecordUpdateOne) SetActualCost(v float64) *CaseRecordUpdateOne {
	_u.mutation.ResetActualCost()
	_u.mutation.SetActualCost(v)
	return _u
}

// SetNillableActualCost sets the "actual_cost" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableActualCost(v *float64) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetActualCost(*v)
	}
	return _u
}

// AddActualCost adds value to the "actual_cost" field.
func (_u *CaseRecordUpdateOne) AddActualCost(v float64) *CaseRecordUpdateOne {
	_u.mutation.AddActualCost(v)
	return _u
}

// SetActualTokens sets the "actual_tokens" field.
func (_u *CaseRecordUpdateOne) SetActualTokens(v int) *CaseRecordUpdateOne {
	_u.mutation.ResetActualTokens()
	_u.mutation.SetActualTokens(v)
	return _u
}

// SetNillableActualTokens sets the "actual_tokens" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableActualTokens(v *int) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetActualTokens(*v)
	}
	return _u
}

// AddActualTokens adds value to the "actual_tokens" field.
func (_u *CaseRecordUpdateOne) AddActualTokens(v int) *CaseRecordUpdateOne {
	_u.mutation.AddActualTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CaseRecordUpdateOne) SetUpdatedAt(v time.Time) *CaseRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *CaseRecordUpdateOne) SetCompletedAt(v time.Time) *CaseRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *CaseRecordUpdateOne) ClearCompletedAt() *CaseRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *CaseRecordUpdateOne) SetErrorMessage(v string) *CaseRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *CaseRecordUpdateOne) SetNillableErrorMessage(v *string) *CaseRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *CaseRecordUpdateOne) ClearErrorMessage() *CaseRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddAuditStepIDs adds the "audit_steps" edge to the AuditStep entity by IDs.
func (_u *CaseRecordUpdateOne) AddAuditStepIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.AddAuditStepIDs(ids...)
	return _u
}

// AddAuditSteps adds the "audit_steps" edges to the AuditStep entity.
func (_u *CaseRecordUpdateOne) AddAuditSteps(v ...*AuditStep) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAuditStepIDs(ids...)
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by IDs.
func (_u *CaseRecordUpdateOne) AddApprovalIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.AddApprovalIDs(ids...)
	return _u
}

// AddApprovals adds the "approvals" edges to the Approval entity.
func (_u *CaseRecordUpdateOne) AddApprovals(v ...*Approval) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddApprovalIDs(ids...)
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by IDs.
func (_u *CaseRecordUpdateOne) AddAgentExecutionIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.AddAgentExecutionIDs(ids...)
	return _u
}

// AddAgentExecutions adds the "agent_executions" edges to the AgentExecution entity.
func (_u *CaseRecordUpdateOne) AddAgentExecutions(v ...*AgentExecution) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAgentExecutionIDs(ids...)
}

// AddReportIDs adds the "reports" edge to the Report entity by IDs.
func (_u *CaseRecordUpdateOne) AddReportIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.AddReportIDs(ids...)
	return _u
}

// AddReports adds the "reports" edges to the Report entity.
func (_u *CaseRecordUpdateOne) AddReports(v ...*Report) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReportIDs(ids...)
}

// Mutation returns the CaseRecordMutation object of the builder.
func (_u *CaseRecordUpdateOne) Mutation() *CaseRecordMutation {
	return _u.mutation
}

// ClearAuditSteps clears all "audit_steps" edges to the AuditStep entity.
func (_u *CaseRecordUpdateOne) ClearAuditSteps() *CaseRecordUpdateOne {
	_u.mutation.ClearAuditSteps()
	return _u
}

// RemoveAuditStepIDs removes the "audit_steps" edge to AuditStep entities by IDs.
func (_u *CaseRecordUpdateOne) RemoveAuditStepIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.RemoveAuditStepIDs(ids...)
	return _u
}

// RemoveAuditSteps removes "audit_steps" edges to AuditStep entities.
func (_u *CaseRecordUpdateOne) RemoveAuditSteps(v ...*AuditStep) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAuditStepIDs(ids...)
}

// ClearApprovals clears all "approvals" edges to the Approval entity.
func (_u *CaseRecordUpdateOne) ClearApprovals() *CaseRecordUpdateOne {
	_u.mutation.ClearApprovals()
	return _u
}

// RemoveApprovalIDs removes the "approvals" edge to Approval entities by IDs.
func (_u *CaseRecordUpdateOne) RemoveApprovalIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.RemoveApprovalIDs(ids...)
	return _u
}

// RemoveApprovals removes "approvals" edges to Approval entities.
func (_u *CaseRecordUpdateOne) RemoveApprovals(v ...*Approval) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveApprovalIDs(ids...)
}

// ClearAgentExecutions clears all "agent_executions" edges to the AgentExecution entity.
func (_u *CaseRecordUpdateOne) ClearAgentExecutions() *CaseRecordUpdateOne {
	_u.mutation.ClearAgentExecutions()
	return _u
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to AgentExecution entities by IDs.
func (_u *CaseRecordUpdateOne) RemoveAgentExecutionIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.RemoveAgentExecutionIDs(ids...)
	return _u
}

// RemoveAgentExecutions removes "agent_executions" edges to AgentExecution entities.
func (_u *CaseRecordUpdateOne) RemoveAgentExecutions(v ...*AgentExecution) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAgentExecutionIDs(ids...)
}

// ClearReports clears all "reports" edges to the Report entity.
func (_u *CaseRecordUpdateOne) ClearReports() *CaseRecordUpdateOne {
	_u.mutation.ClearReports()
	return _u
}

// RemoveReportIDs removes the "reports" edge to Report entities by IDs.
func (_u *CaseRecordUpdateOne) RemoveReportIDs(ids ...string) *CaseRecordUpdateOne {
	_u.mutation.RemoveReportIDs(ids...)
	return _u
}

// RemoveReports removes "reports" edges to Report entities.
func (_u *CaseRecordUpdateOne) RemoveReports(v ...*Report) *CaseRecordUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReportIDs(ids...)
}

// Where appends a list predicates to the CaseRecordUpdate builder.
func (_u *CaseRecordUpdateOne) Where(ps ...predicate.CaseRecord) *CaseRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaseRecordUpdateOne) Select(field string, fields ...string) *CaseRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaseRecord entity.
func (_u *CaseRecordUpdateOne) Save(ctx context.Context) (*CaseRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaseRecordUpdateOne) SaveX(ctx context.Context) *CaseRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaseRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaseRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CaseRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := caserecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaseRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := caserecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CaseRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CaseRecordUpdateOne) sqlSave(ctx context.Context) (_node *CaseRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(caserecord.Table, caserecord.Columns, sqlgraph.NewFieldSpec(caserecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaseRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, caserecord.FieldID)
		for _, f := range fields {
			if !caserecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != caserecord.FieldID {
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
		_spec.SetField(caserecord.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(caserecord.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(caserecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(caserecord.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(caserecord.FieldSeverity, field.TypeString, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(caserecord.FieldSeverity, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(caserecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentStep(); ok {
		_spec.SetField(caserecord.FieldCurrentStep, field.TypeString, value)
	}
	if _u.mutation.CurrentStepCleared() {
		_spec.ClearField(caserecord.FieldCurrentStep, field.TypeString)
	}
	if value, ok := _u.mutation.AutonomyLevel(); ok {
		_spec.SetField(caserecord.FieldAutonomyLevel, field.TypeString, value)
	}
	if _u.mutation.AutonomyLevelCleared() {
		_spec.ClearField(caserecord.FieldAutonomyLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Entities(); ok {
		_spec.SetField(caserecord.FieldEntities, field.TypeJSON, value)
	}
	if _u.mutation.EntitiesCleared() {
		_spec.ClearField(caserecord.FieldEntities, field.TypeJSON)
	}
	if value, ok := _u.mutation.ThreatClassification(); ok {
		_spec.SetField(caserecord.FieldThreatClassification, field.TypeString, value)
	}
	if _u.mutation.ThreatClassificationCleared() {
		_spec.ClearField(caserecord.FieldThreatClassification, field.TypeString)
	}
	if value, ok := _u.mutation.ActualCost(); ok {
		_spec.SetField(caserecord.FieldActualCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedActualCost(); ok {
		_spec.AddField(caserecord.FieldActualCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ActualTokens(); ok {
		_spec.SetField(caserecord.FieldActualTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActualTokens(); ok {
		_spec.AddField(caserecord.FieldActualTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(caserecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(caserecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(caserecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(caserecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(caserecord.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.AuditStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAuditStepsIDs(); len(nodes) > 0 && !_u.mutation.AuditStepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AuditStepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedApprovalsIDs(); len(nodes) > 0 && !_u.mutation.ApprovalsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ApprovalsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AgentExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAgentExecutionsIDs(); len(nodes) > 0 && !_u.mutation.AgentExecutionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AgentExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReportsIDs(); len(nodes) > 0 && !_u.mutation.ReportsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReportsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CaseRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{caserecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

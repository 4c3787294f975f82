// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/secopshq/caseflow/ent/agentexecution"
	"github.com/secopshq/caseflow/ent/agentprompt"
	"github.com/secopshq/caseflow/ent/approval"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/ent/graphedge"
	"github.com/secopshq/caseflow/ent/graphnode"
	"github.com/secopshq/caseflow/ent/predicate"
	"github.com/secopshq/caseflow/ent/report"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAgentExecution = "AgentExecution"
	TypeAgentPrompt    = "AgentPrompt"
	TypeApproval       = "Approval"
	TypeAuditStep      = "AuditStep"
	TypeCaseRecord     = "CaseRecord"
	TypeGraphEdge      = "GraphEdge"
	TypeGraphNode      = "GraphNode"
	TypeReport         = "Report"
)

// AgentExecutionMutation represents an operation that mutates the AgentExecution nodes in the graph.
type AgentExecutionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	agent_name       *string
	status           *agentexecution.Status
	started_at       *time.Time
	completed_at     *time.Time
	duration_ms      *int
	addduration_ms   *int
	error_message    *string
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	total_tokens     *int
	addtotal_tokens  *int
	cost_usd         *float64
	addcost_usd      *float64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	_case            *string
	cleared_case     bool
	done             bool
	oldValue         func(context.Context) (*AgentExecution, error)
	predicates       []predicate.AgentExecution
}

var _ ent.Mutation = (*AgentExecutionMutation)(nil)

// agentexecutionOption allows management of the mutation configuration using functional options.
type agentexecutionOption func(*AgentExecutionMutation)

// newAgentExecutionMutation creates new mutation for the AgentExecution entity.
func newAgentExecutionMutation(c config, op Op, opts ...agentexecutionOption) *AgentExecutionMutation {
	m := &AgentExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentExecutionID sets the ID field of the mutation.
func withAgentExecutionID(id string) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentExecution
		)
		m.oldValue = func(ctx context.Context) (*AgentExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentExecution sets the old AgentExecution of the mutation.
func withAgentExecution(node *AgentExecution) agentexecutionOption {
	return func(m *AgentExecutionMutation) {
		m.oldValue = func(context.Context) (*AgentExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentExecution entities.
func (m *AgentExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *AgentExecutionMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *AgentExecutionMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *AgentExecutionMutation) ResetCaseID() {
	m._case = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AgentExecutionMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentExecutionMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentExecutionMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetStatus sets the "status" field.
func (m *AgentExecutionMutation) SetStatus(a agentexecution.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentExecutionMutation) Status() (r agentexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStatus(ctx context.Context) (v agentexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AgentExecutionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AgentExecutionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AgentExecutionMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[agentexecution.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AgentExecutionMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, agentexecution.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AgentExecutionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AgentExecutionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AgentExecutionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[agentexecution.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AgentExecutionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AgentExecutionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, agentexecution.FieldCompletedAt)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AgentExecutionMutation) SetDurationMs(i int) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AgentExecutionMutation) DurationMs() (r int, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldDurationMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AgentExecutionMutation) AddDurationMs(i int) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AgentExecutionMutation) AddedDurationMs() (r int, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *AgentExecutionMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[agentexecution.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *AgentExecutionMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AgentExecutionMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, agentexecution.FieldDurationMs)
}

// SetErrorMessage sets the "error_message" field.
func (m *AgentExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AgentExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AgentExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[agentexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AgentExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[agentexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AgentExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, agentexecution.FieldErrorMessage)
}

// SetInputTokens sets the "input_tokens" field.
func (m *AgentExecutionMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AgentExecutionMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AgentExecutionMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AgentExecutionMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AgentExecutionMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AgentExecutionMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AgentExecutionMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AgentExecutionMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AgentExecutionMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AgentExecutionMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *AgentExecutionMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *AgentExecutionMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *AgentExecutionMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *AgentExecutionMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *AgentExecutionMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *AgentExecutionMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *AgentExecutionMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *AgentExecutionMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *AgentExecutionMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *AgentExecutionMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentExecution entity.
// If the AgentExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCase clears the "case" edge to the CaseRecord entity.
func (m *AgentExecutionMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[agentexecution.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CaseRecord entity was cleared.
func (m *AgentExecutionMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *AgentExecutionMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *AgentExecutionMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the AgentExecutionMutation builder.
func (m *AgentExecutionMutation) Where(ps ...predicate.AgentExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentExecution).
func (m *AgentExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentExecutionMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m._case != nil {
		fields = append(fields, agentexecution.FieldCaseID)
	}
	if m.agent_name != nil {
		fields = append(fields, agentexecution.FieldAgentName)
	}
	if m.status != nil {
		fields = append(fields, agentexecution.FieldStatus)
	}
	if m.started_at != nil {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.duration_ms != nil {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	if m.error_message != nil {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	if m.input_tokens != nil {
		fields = append(fields, agentexecution.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, agentexecution.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, agentexecution.FieldTotalTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, agentexecution.FieldCostUsd)
	}
	if m.created_at != nil {
		fields = append(fields, agentexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldCaseID:
		return m.CaseID()
	case agentexecution.FieldAgentName:
		return m.AgentName()
	case agentexecution.FieldStatus:
		return m.Status()
	case agentexecution.FieldStartedAt:
		return m.StartedAt()
	case agentexecution.FieldCompletedAt:
		return m.CompletedAt()
	case agentexecution.FieldDurationMs:
		return m.DurationMs()
	case agentexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case agentexecution.FieldInputTokens:
		return m.InputTokens()
	case agentexecution.FieldOutputTokens:
		return m.OutputTokens()
	case agentexecution.FieldTotalTokens:
		return m.TotalTokens()
	case agentexecution.FieldCostUsd:
		return m.CostUsd()
	case agentexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentexecution.FieldCaseID:
		return m.OldCaseID(ctx)
	case agentexecution.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentexecution.FieldStatus:
		return m.OldStatus(ctx)
	case agentexecution.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case agentexecution.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case agentexecution.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case agentexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case agentexecution.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case agentexecution.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case agentexecution.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case agentexecution.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case agentexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case agentexecution.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentexecution.FieldStatus:
		v, ok := value.(agentexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentexecution.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case agentexecution.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case agentexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case agentexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case agentexecution.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case agentexecution.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case agentexecution.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case agentexecution.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case agentexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, agentexecution.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, agentexecution.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, agentexecution.FieldTotalTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, agentexecution.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case agentexecution.FieldDurationMs:
		return m.AddedDurationMs()
	case agentexecution.FieldInputTokens:
		return m.AddedInputTokens()
	case agentexecution.FieldOutputTokens:
		return m.AddedOutputTokens()
	case agentexecution.FieldTotalTokens:
		return m.AddedTotalTokens()
	case agentexecution.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case agentexecution.FieldDurationMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	case agentexecution.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case agentexecution.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case agentexecution.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case agentexecution.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown AgentExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentexecution.FieldStartedAt) {
		fields = append(fields, agentexecution.FieldStartedAt)
	}
	if m.FieldCleared(agentexecution.FieldCompletedAt) {
		fields = append(fields, agentexecution.FieldCompletedAt)
	}
	if m.FieldCleared(agentexecution.FieldDurationMs) {
		fields = append(fields, agentexecution.FieldDurationMs)
	}
	if m.FieldCleared(agentexecution.FieldErrorMessage) {
		fields = append(fields, agentexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ClearField(name string) error {
	switch name {
	case agentexecution.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case agentexecution.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentExecutionMutation) ResetField(name string) error {
	switch name {
	case agentexecution.FieldCaseID:
		m.ResetCaseID()
		return nil
	case agentexecution.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case agentexecution.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case agentexecution.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case agentexecution.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case agentexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case agentexecution.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case agentexecution.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case agentexecution.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case agentexecution.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case agentexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, agentexecution.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentexecution.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentExecutionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, agentexecution.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case agentexecution.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentExecutionMutation) ClearEdge(name string) error {
	switch name {
	case agentexecution.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentExecutionMutation) ResetEdge(name string) error {
	switch name {
	case agentexecution.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown AgentExecution edge %s", name)
}

// AgentPromptMutation represents an operation that mutates the AgentPrompt nodes in the graph.
type AgentPromptMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_name    *string
	version       *string
	content       *string
	created_at    *time.Time
	modified_by   *string
	is_active     *bool
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AgentPrompt, error)
	predicates    []predicate.AgentPrompt
}

var _ ent.Mutation = (*AgentPromptMutation)(nil)

// agentpromptOption allows management of the mutation configuration using functional options.
type agentpromptOption func(*AgentPromptMutation)

// newAgentPromptMutation creates new mutation for the AgentPrompt entity.
func newAgentPromptMutation(c config, op Op, opts ...agentpromptOption) *AgentPromptMutation {
	m := &AgentPromptMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentPrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentPromptID sets the ID field of the mutation.
func withAgentPromptID(id string) agentpromptOption {
	return func(m *AgentPromptMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentPrompt
		)
		m.oldValue = func(ctx context.Context) (*AgentPrompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentPrompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentPrompt sets the old AgentPrompt of the mutation.
func withAgentPrompt(node *AgentPrompt) agentpromptOption {
	return func(m *AgentPromptMutation) {
		m.oldValue = func(context.Context) (*AgentPrompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentPromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentPromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentPrompt entities.
func (m *AgentPromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentPromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentPromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentPrompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAgentName sets the "agent_name" field.
func (m *AgentPromptMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AgentPromptMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AgentPrompt entity.
// If the AgentPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPromptMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AgentPromptMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetVersion sets the "version" field.
func (m *AgentPromptMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *AgentPromptMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AgentPrompt entity.
// If the AgentPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPromptMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *AgentPromptMutation) ResetVersion() {
	m.version = nil
}

// SetContent sets the "content" field.
func (m *AgentPromptMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *AgentPromptMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the AgentPrompt entity.
// If the AgentPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPromptMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *AgentPromptMutation) ResetContent() {
	m.content = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AgentPromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AgentPromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AgentPrompt entity.
// If the AgentPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AgentPromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetModifiedBy sets the "modified_by" field.
func (m *AgentPromptMutation) SetModifiedBy(s string) {
	m.modified_by = &s
}

// ModifiedBy returns the value of the "modified_by" field in the mutation.
func (m *AgentPromptMutation) ModifiedBy() (r string, exists bool) {
	v := m.modified_by
	if v == nil {
		return
	}
	return *v, true
}

// OldModifiedBy returns the old "modified_by" field's value of the AgentPrompt entity.
// If the AgentPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPromptMutation) OldModifiedBy(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModifiedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModifiedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModifiedBy: %w", err)
	}
	return oldValue.ModifiedBy, nil
}

// ResetModifiedBy resets all changes to the "modified_by" field.
func (m *AgentPromptMutation) ResetModifiedBy() {
	m.modified_by = nil
}

// SetIsActive sets the "is_active" field.
func (m *AgentPromptMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *AgentPromptMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the AgentPrompt entity.
// If the AgentPrompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentPromptMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *AgentPromptMutation) ResetIsActive() {
	m.is_active = nil
}

// Where appends a list predicates to the AgentPromptMutation builder.
func (m *AgentPromptMutation) Where(ps ...predicate.AgentPrompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentPromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentPromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentPrompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentPromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentPromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentPrompt).
func (m *AgentPromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentPromptMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.agent_name != nil {
		fields = append(fields, agentprompt.FieldAgentName)
	}
	if m.version != nil {
		fields = append(fields, agentprompt.FieldVersion)
	}
	if m.content != nil {
		fields = append(fields, agentprompt.FieldContent)
	}
	if m.created_at != nil {
		fields = append(fields, agentprompt.FieldCreatedAt)
	}
	if m.modified_by != nil {
		fields = append(fields, agentprompt.FieldModifiedBy)
	}
	if m.is_active != nil {
		fields = append(fields, agentprompt.FieldIsActive)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentPromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentprompt.FieldAgentName:
		return m.AgentName()
	case agentprompt.FieldVersion:
		return m.Version()
	case agentprompt.FieldContent:
		return m.Content()
	case agentprompt.FieldCreatedAt:
		return m.CreatedAt()
	case agentprompt.FieldModifiedBy:
		return m.ModifiedBy()
	case agentprompt.FieldIsActive:
		return m.IsActive()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentPromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentprompt.FieldAgentName:
		return m.OldAgentName(ctx)
	case agentprompt.FieldVersion:
		return m.OldVersion(ctx)
	case agentprompt.FieldContent:
		return m.OldContent(ctx)
	case agentprompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case agentprompt.FieldModifiedBy:
		return m.OldModifiedBy(ctx)
	case agentprompt.FieldIsActive:
		return m.OldIsActive(ctx)
	}
	return nil, fmt.Errorf("unknown AgentPrompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentprompt.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case agentprompt.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case agentprompt.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case agentprompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case agentprompt.FieldModifiedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModifiedBy(v)
		return nil
	case agentprompt.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	}
	return fmt.Errorf("unknown AgentPrompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentPromptMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentPromptMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentPromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentPrompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentPromptMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentPromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentPromptMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AgentPrompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentPromptMutation) ResetField(name string) error {
	switch name {
	case agentprompt.FieldAgentName:
		m.ResetAgentName()
		return nil
	case agentprompt.FieldVersion:
		m.ResetVersion()
		return nil
	case agentprompt.FieldContent:
		m.ResetContent()
		return nil
	case agentprompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case agentprompt.FieldModifiedBy:
		m.ResetModifiedBy()
		return nil
	case agentprompt.FieldIsActive:
		m.ResetIsActive()
		return nil
	}
	return fmt.Errorf("unknown AgentPrompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentPromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentPromptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentPromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentPromptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentPromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentPromptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentPromptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AgentPrompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentPromptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AgentPrompt edge %s", name)
}

// ApprovalMutation represents an operation that mutates the Approval nodes in the graph.
type ApprovalMutation struct {
	config
	op             Op
	typ            string
	id             *string
	agent_name     *string
	description    *string
	autonomy_level *string
	status         *approval.Status
	created_at     *time.Time
	expires_at     *time.Time
	decided_by     *string
	decided_at     *time.Time
	reason         *string
	clearedFields  map[string]struct{}
	_case          *string
	cleared_case   bool
	done           bool
	oldValue       func(context.Context) (*Approval, error)
	predicates     []predicate.Approval
}

var _ ent.Mutation = (*ApprovalMutation)(nil)

// approvalOption allows management of the mutation configuration using functional options.
type approvalOption func(*ApprovalMutation)

// newApprovalMutation creates new mutation for the Approval entity.
func newApprovalMutation(c config, op Op, opts ...approvalOption) *ApprovalMutation {
	m := &ApprovalMutation{
		config:        c,
		op:            op,
		typ:           TypeApproval,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApprovalID sets the ID field of the mutation.
func withApprovalID(id string) approvalOption {
	return func(m *ApprovalMutation) {
		var (
			err   error
			once  sync.Once
			value *Approval
		)
		m.oldValue = func(ctx context.Context) (*Approval, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Approval.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApproval sets the old Approval of the mutation.
func withApproval(node *Approval) approvalOption {
	return func(m *ApprovalMutation) {
		m.oldValue = func(context.Context) (*Approval, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApprovalMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApprovalMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Approval entities.
func (m *ApprovalMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApprovalMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApprovalMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Approval.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *ApprovalMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *ApprovalMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *ApprovalMutation) ResetCaseID() {
	m._case = nil
}

// SetAgentName sets the "agent_name" field.
func (m *ApprovalMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *ApprovalMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *ApprovalMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetDescription sets the "description" field.
func (m *ApprovalMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ApprovalMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *ApprovalMutation) ResetDescription() {
	m.description = nil
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (m *ApprovalMutation) SetAutonomyLevel(s string) {
	m.autonomy_level = &s
}

// AutonomyLevel returns the value of the "autonomy_level" field in the mutation.
func (m *ApprovalMutation) AutonomyLevel() (r string, exists bool) {
	v := m.autonomy_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAutonomyLevel returns the old "autonomy_level" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldAutonomyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutonomyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutonomyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutonomyLevel: %w", err)
	}
	return oldValue.AutonomyLevel, nil
}

// ResetAutonomyLevel resets all changes to the "autonomy_level" field.
func (m *ApprovalMutation) ResetAutonomyLevel() {
	m.autonomy_level = nil
}

// SetStatus sets the "status" field.
func (m *ApprovalMutation) SetStatus(a approval.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ApprovalMutation) Status() (r approval.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldStatus(ctx context.Context) (v approval.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ApprovalMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ApprovalMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApprovalMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ApprovalMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ApprovalMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ApprovalMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ApprovalMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetDecidedBy sets the "decided_by" field.
func (m *ApprovalMutation) SetDecidedBy(s string) {
	m.decided_by = &s
}

// DecidedBy returns the value of the "decided_by" field in the mutation.
func (m *ApprovalMutation) DecidedBy() (r string, exists bool) {
	v := m.decided_by
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedBy returns the old "decided_by" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecidedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedBy: %w", err)
	}
	return oldValue.DecidedBy, nil
}

// ClearDecidedBy clears the value of the "decided_by" field.
func (m *ApprovalMutation) ClearDecidedBy() {
	m.decided_by = nil
	m.clearedFields[approval.FieldDecidedBy] = struct{}{}
}

// DecidedByCleared returns if the "decided_by" field was cleared in this mutation.
func (m *ApprovalMutation) DecidedByCleared() bool {
	_, ok := m.clearedFields[approval.FieldDecidedBy]
	return ok
}

// ResetDecidedBy resets all changes to the "decided_by" field.
func (m *ApprovalMutation) ResetDecidedBy() {
	m.decided_by = nil
	delete(m.clearedFields, approval.FieldDecidedBy)
}

// SetDecidedAt sets the "decided_at" field.
func (m *ApprovalMutation) SetDecidedAt(t time.Time) {
	m.decided_at = &t
}

// DecidedAt returns the value of the "decided_at" field in the mutation.
func (m *ApprovalMutation) DecidedAt() (r time.Time, exists bool) {
	v := m.decided_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDecidedAt returns the old "decided_at" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldDecidedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDecidedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDecidedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDecidedAt: %w", err)
	}
	return oldValue.DecidedAt, nil
}

// ClearDecidedAt clears the value of the "decided_at" field.
func (m *ApprovalMutation) ClearDecidedAt() {
	m.decided_at = nil
	m.clearedFields[approval.FieldDecidedAt] = struct{}{}
}

// DecidedAtCleared returns if the "decided_at" field was cleared in this mutation.
func (m *ApprovalMutation) DecidedAtCleared() bool {
	_, ok := m.clearedFields[approval.FieldDecidedAt]
	return ok
}

// ResetDecidedAt resets all changes to the "decided_at" field.
func (m *ApprovalMutation) ResetDecidedAt() {
	m.decided_at = nil
	delete(m.clearedFields, approval.FieldDecidedAt)
}

// SetReason sets the "reason" field.
func (m *ApprovalMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *ApprovalMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Approval entity.
// If the Approval object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApprovalMutation) OldReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ClearReason clears the value of the "reason" field.
func (m *ApprovalMutation) ClearReason() {
	m.reason = nil
	m.clearedFields[approval.FieldReason] = struct{}{}
}

// ReasonCleared returns if the "reason" field was cleared in this mutation.
func (m *ApprovalMutation) ReasonCleared() bool {
	_, ok := m.clearedFields[approval.FieldReason]
	return ok
}

// ResetReason resets all changes to the "reason" field.
func (m *ApprovalMutation) ResetReason() {
	m.reason = nil
	delete(m.clearedFields, approval.FieldReason)
}

// ClearCase clears the "case" edge to the CaseRecord entity.
func (m *ApprovalMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[approval.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CaseRecord entity was cleared.
func (m *ApprovalMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *ApprovalMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *ApprovalMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the ApprovalMutation builder.
func (m *ApprovalMutation) Where(ps ...predicate.Approval) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApprovalMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApprovalMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Approval, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApprovalMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApprovalMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Approval).
func (m *ApprovalMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApprovalMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m._case != nil {
		fields = append(fields, approval.FieldCaseID)
	}
	if m.agent_name != nil {
		fields = append(fields, approval.FieldAgentName)
	}
	if m.description != nil {
		fields = append(fields, approval.FieldDescription)
	}
	if m.autonomy_level != nil {
		fields = append(fields, approval.FieldAutonomyLevel)
	}
	if m.status != nil {
		fields = append(fields, approval.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, approval.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, approval.FieldExpiresAt)
	}
	if m.decided_by != nil {
		fields = append(fields, approval.FieldDecidedBy)
	}
	if m.decided_at != nil {
		fields = append(fields, approval.FieldDecidedAt)
	}
	if m.reason != nil {
		fields = append(fields, approval.FieldReason)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApprovalMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case approval.FieldCaseID:
		return m.CaseID()
	case approval.FieldAgentName:
		return m.AgentName()
	case approval.FieldDescription:
		return m.Description()
	case approval.FieldAutonomyLevel:
		return m.AutonomyLevel()
	case approval.FieldStatus:
		return m.Status()
	case approval.FieldCreatedAt:
		return m.CreatedAt()
	case approval.FieldExpiresAt:
		return m.ExpiresAt()
	case approval.FieldDecidedBy:
		return m.DecidedBy()
	case approval.FieldDecidedAt:
		return m.DecidedAt()
	case approval.FieldReason:
		return m.Reason()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApprovalMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case approval.FieldCaseID:
		return m.OldCaseID(ctx)
	case approval.FieldAgentName:
		return m.OldAgentName(ctx)
	case approval.FieldDescription:
		return m.OldDescription(ctx)
	case approval.FieldAutonomyLevel:
		return m.OldAutonomyLevel(ctx)
	case approval.FieldStatus:
		return m.OldStatus(ctx)
	case approval.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case approval.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case approval.FieldDecidedBy:
		return m.OldDecidedBy(ctx)
	case approval.FieldDecidedAt:
		return m.OldDecidedAt(ctx)
	case approval.FieldReason:
		return m.OldReason(ctx)
	}
	return nil, fmt.Errorf("unknown Approval field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) SetField(name string, value ent.Value) error {
	switch name {
	case approval.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case approval.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case approval.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case approval.FieldAutonomyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutonomyLevel(v)
		return nil
	case approval.FieldStatus:
		v, ok := value.(approval.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case approval.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case approval.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case approval.FieldDecidedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedBy(v)
		return nil
	case approval.FieldDecidedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDecidedAt(v)
		return nil
	case approval.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApprovalMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApprovalMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApprovalMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Approval numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApprovalMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(approval.FieldDecidedBy) {
		fields = append(fields, approval.FieldDecidedBy)
	}
	if m.FieldCleared(approval.FieldDecidedAt) {
		fields = append(fields, approval.FieldDecidedAt)
	}
	if m.FieldCleared(approval.FieldReason) {
		fields = append(fields, approval.FieldReason)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApprovalMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApprovalMutation) ClearField(name string) error {
	switch name {
	case approval.FieldDecidedBy:
		m.ClearDecidedBy()
		return nil
	case approval.FieldDecidedAt:
		m.ClearDecidedAt()
		return nil
	case approval.FieldReason:
		m.ClearReason()
		return nil
	}
	return fmt.Errorf("unknown Approval nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApprovalMutation) ResetField(name string) error {
	switch name {
	case approval.FieldCaseID:
		m.ResetCaseID()
		return nil
	case approval.FieldAgentName:
		m.ResetAgentName()
		return nil
	case approval.FieldDescription:
		m.ResetDescription()
		return nil
	case approval.FieldAutonomyLevel:
		m.ResetAutonomyLevel()
		return nil
	case approval.FieldStatus:
		m.ResetStatus()
		return nil
	case approval.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case approval.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case approval.FieldDecidedBy:
		m.ResetDecidedBy()
		return nil
	case approval.FieldDecidedAt:
		m.ResetDecidedAt()
		return nil
	case approval.FieldReason:
		m.ResetReason()
		return nil
	}
	return fmt.Errorf("unknown Approval field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApprovalMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, approval.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApprovalMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case approval.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApprovalMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApprovalMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApprovalMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, approval.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApprovalMutation) EdgeCleared(name string) bool {
	switch name {
	case approval.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApprovalMutation) ClearEdge(name string) error {
	switch name {
	case approval.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown Approval unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApprovalMutation) ResetEdge(name string) error {
	switch name {
	case approval.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown Approval edge %s", name)
}

// AuditStepMutation represents an operation that mutates the AuditStep nodes in the graph.
type AuditStepMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	seq                *int
	addseq             *int
	version            *string
	timestamp          *time.Time
	agent_name         *string
	agent_role         *string
	agent_model        *string
	prompt_version     *string
	autonomy_level     *string
	inputs             *map[string]interface{}
	plan               *[]string
	appendplan         []string
	observations       *[]string
	appendobservations []string
	outputs            *map[string]interface{}
	input_tokens       *int
	addinput_tokens    *int
	output_tokens      *int
	addoutput_tokens   *int
	total_tokens       *int
	addtotal_tokens    *int
	cost_usd           *float64
	addcost_usd        *float64
	prev_hash          *string
	hash               *string
	signature          *string
	clearedFields      map[string]struct{}
	_case              *string
	cleared_case       bool
	done               bool
	oldValue           func(context.Context) (*AuditStep, error)
	predicates         []predicate.AuditStep
}

var _ ent.Mutation = (*AuditStepMutation)(nil)

// auditstepOption allows management of the mutation configuration using functional options.
type auditstepOption func(*AuditStepMutation)

// newAuditStepMutation creates new mutation for the AuditStep entity.
func newAuditStepMutation(c config, op Op, opts ...auditstepOption) *AuditStepMutation {
	m := &AuditStepMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditStep,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditStepID sets the ID field of the mutation.
func withAuditStepID(id string) auditstepOption {
	return func(m *AuditStepMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditStep
		)
		m.oldValue = func(ctx context.Context) (*AuditStep, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditStep.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditStep sets the old AuditStep of the mutation.
func withAuditStep(node *AuditStep) auditstepOption {
	return func(m *AuditStepMutation) {
		m.oldValue = func(context.Context) (*AuditStep, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditStepMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditStepMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditStep entities.
func (m *AuditStepMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditStepMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditStepMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditStep.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *AuditStepMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *AuditStepMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *AuditStepMutation) ResetCaseID() {
	m._case = nil
}

// SetSeq sets the "seq" field.
func (m *AuditStepMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *AuditStepMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *AuditStepMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *AuditStepMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *AuditStepMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetVersion sets the "version" field.
func (m *AuditStepMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *AuditStepMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *AuditStepMutation) ResetVersion() {
	m.version = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AuditStepMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AuditStepMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AuditStepMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AuditStepMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AuditStepMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AuditStepMutation) ResetAgentName() {
	m.agent_name = nil
}

// SetAgentRole sets the "agent_role" field.
func (m *AuditStepMutation) SetAgentRole(s string) {
	m.agent_role = &s
}

// AgentRole returns the value of the "agent_role" field in the mutation.
func (m *AuditStepMutation) AgentRole() (r string, exists bool) {
	v := m.agent_role
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentRole returns the old "agent_role" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldAgentRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentRole: %w", err)
	}
	return oldValue.AgentRole, nil
}

// ResetAgentRole resets all changes to the "agent_role" field.
func (m *AuditStepMutation) ResetAgentRole() {
	m.agent_role = nil
}

// SetAgentModel sets the "agent_model" field.
func (m *AuditStepMutation) SetAgentModel(s string) {
	m.agent_model = &s
}

// AgentModel returns the value of the "agent_model" field in the mutation.
func (m *AuditStepMutation) AgentModel() (r string, exists bool) {
	v := m.agent_model
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentModel returns the old "agent_model" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldAgentModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentModel: %w", err)
	}
	return oldValue.AgentModel, nil
}

// ResetAgentModel resets all changes to the "agent_model" field.
func (m *AuditStepMutation) ResetAgentModel() {
	m.agent_model = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *AuditStepMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *AuditStepMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldPromptVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *AuditStepMutation) ResetPromptVersion() {
	m.prompt_version = nil
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (m *AuditStepMutation) SetAutonomyLevel(s string) {
	m.autonomy_level = &s
}

// AutonomyLevel returns the value of the "autonomy_level" field in the mutation.
func (m *AuditStepMutation) AutonomyLevel() (r string, exists bool) {
	v := m.autonomy_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAutonomyLevel returns the old "autonomy_level" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldAutonomyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutonomyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutonomyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutonomyLevel: %w", err)
	}
	return oldValue.AutonomyLevel, nil
}

// ResetAutonomyLevel resets all changes to the "autonomy_level" field.
func (m *AuditStepMutation) ResetAutonomyLevel() {
	m.autonomy_level = nil
}

// SetInputs sets the "inputs" field.
func (m *AuditStepMutation) SetInputs(value map[string]interface{}) {
	m.inputs = &value
}

// Inputs returns the value of the "inputs" field in the mutation.
func (m *AuditStepMutation) Inputs() (r map[string]interface{}, exists bool) {
	v := m.inputs
	if v == nil {
		return
	}
	return *v, true
}

// OldInputs returns the old "inputs" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldInputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputs: %w", err)
	}
	return oldValue.Inputs, nil
}

// ClearInputs clears the value of the "inputs" field.
func (m *AuditStepMutation) ClearInputs() {
	m.inputs = nil
	m.clearedFields[auditstep.FieldInputs] = struct{}{}
}

// InputsCleared returns if the "inputs" field was cleared in this mutation.
func (m *AuditStepMutation) InputsCleared() bool {
	_, ok := m.clearedFields[auditstep.FieldInputs]
	return ok
}

// ResetInputs resets all changes to the "inputs" field.
func (m *AuditStepMutation) ResetInputs() {
	m.inputs = nil
	delete(m.clearedFields, auditstep.FieldInputs)
}

// SetPlan sets the "plan" field.
func (m *AuditStepMutation) SetPlan(s []string) {
	m.plan = &s
	m.appendplan = nil
}

// Plan returns the value of the "plan" field in the mutation.
func (m *AuditStepMutation) Plan() (r []string, exists bool) {
	v := m.plan
	if v == nil {
		return
	}
	return *v, true
}

// OldPlan returns the old "plan" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldPlan(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlan is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlan requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlan: %w", err)
	}
	return oldValue.Plan, nil
}

// AppendPlan adds s to the "plan" field.
func (m *AuditStepMutation) AppendPlan(s []string) {
	m.appendplan = append(m.appendplan, s...)
}

// AppendedPlan returns the list of values that were appended to the "plan" field in this mutation.
func (m *AuditStepMutation) AppendedPlan() ([]string, bool) {
	if len(m.appendplan) == 0 {
		return nil, false
	}
	return m.appendplan, true
}

// ClearPlan clears the value of the "plan" field.
func (m *AuditStepMutation) ClearPlan() {
	m.plan = nil
	m.appendplan = nil
	m.clearedFields[auditstep.FieldPlan] = struct{}{}
}

// PlanCleared returns if the "plan" field was cleared in this mutation.
func (m *AuditStepMutation) PlanCleared() bool {
	_, ok := m.clearedFields[auditstep.FieldPlan]
	return ok
}

// ResetPlan resets all changes to the "plan" field.
func (m *AuditStepMutation) ResetPlan() {
	m.plan = nil
	m.appendplan = nil
	delete(m.clearedFields, auditstep.FieldPlan)
}

// SetObservations sets the "observations" field.
func (m *AuditStepMutation) SetObservations(s []string) {
	m.observations = &s
	m.appendobservations = nil
}

// Observations returns the value of the "observations" field in the mutation.
func (m *AuditStepMutation) Observations() (r []string, exists bool) {
	v := m.observations
	if v == nil {
		return
	}
	return *v, true
}

// OldObservations returns the old "observations" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldObservations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldObservations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldObservations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldObservations: %w", err)
	}
	return oldValue.Observations, nil
}

// AppendObservations adds s to the "observations" field.
func (m *AuditStepMutation) AppendObservations(s []string) {
	m.appendobservations = append(m.appendobservations, s...)
}

// AppendedObservations returns the list of values that were appended to the "observations" field in this mutation.
func (m *AuditStepMutation) AppendedObservations() ([]string, bool) {
	if len(m.appendobservations) == 0 {
		return nil, false
	}
	return m.appendobservations, true
}

// ClearObservations clears the value of the "observations" field.
func (m *AuditStepMutation) ClearObservations() {
	m.observations = nil
	m.appendobservations = nil
	m.clearedFields[auditstep.FieldObservations] = struct{}{}
}

// ObservationsCleared returns if the "observations" field was cleared in this mutation.
func (m *AuditStepMutation) ObservationsCleared() bool {
	_, ok := m.clearedFields[auditstep.FieldObservations]
	return ok
}

// ResetObservations resets all changes to the "observations" field.
func (m *AuditStepMutation) ResetObservations() {
	m.observations = nil
	m.appendobservations = nil
	delete(m.clearedFields, auditstep.FieldObservations)
}

// SetOutputs sets the "outputs" field.
func (m *AuditStepMutation) SetOutputs(value map[string]interface{}) {
	m.outputs = &value
}

// Outputs returns the value of the "outputs" field in the mutation.
func (m *AuditStepMutation) Outputs() (r map[string]interface{}, exists bool) {
	v := m.outputs
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputs returns the old "outputs" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldOutputs(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputs: %w", err)
	}
	return oldValue.Outputs, nil
}

// ClearOutputs clears the value of the "outputs" field.
func (m *AuditStepMutation) ClearOutputs() {
	m.outputs = nil
	m.clearedFields[auditstep.FieldOutputs] = struct{}{}
}

// OutputsCleared returns if the "outputs" field was cleared in this mutation.
func (m *AuditStepMutation) OutputsCleared() bool {
	_, ok := m.clearedFields[auditstep.FieldOutputs]
	return ok
}

// ResetOutputs resets all changes to the "outputs" field.
func (m *AuditStepMutation) ResetOutputs() {
	m.outputs = nil
	delete(m.clearedFields, auditstep.FieldOutputs)
}

// SetInputTokens sets the "input_tokens" field.
func (m *AuditStepMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AuditStepMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AuditStepMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AuditStepMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AuditStepMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AuditStepMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AuditStepMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AuditStepMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AuditStepMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AuditStepMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *AuditStepMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *AuditStepMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *AuditStepMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *AuditStepMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *AuditStepMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetCostUsd sets the "cost_usd" field.
func (m *AuditStepMutation) SetCostUsd(f float64) {
	m.cost_usd = &f
	m.addcost_usd = nil
}

// CostUsd returns the value of the "cost_usd" field in the mutation.
func (m *AuditStepMutation) CostUsd() (r float64, exists bool) {
	v := m.cost_usd
	if v == nil {
		return
	}
	return *v, true
}

// OldCostUsd returns the old "cost_usd" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldCostUsd(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostUsd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostUsd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostUsd: %w", err)
	}
	return oldValue.CostUsd, nil
}

// AddCostUsd adds f to the "cost_usd" field.
func (m *AuditStepMutation) AddCostUsd(f float64) {
	if m.addcost_usd != nil {
		*m.addcost_usd += f
	} else {
		m.addcost_usd = &f
	}
}

// AddedCostUsd returns the value that was added to the "cost_usd" field in this mutation.
func (m *AuditStepMutation) AddedCostUsd() (r float64, exists bool) {
	v := m.addcost_usd
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostUsd resets all changes to the "cost_usd" field.
func (m *AuditStepMutation) ResetCostUsd() {
	m.cost_usd = nil
	m.addcost_usd = nil
}

// SetPrevHash sets the "prev_hash" field.
func (m *AuditStepMutation) SetPrevHash(s string) {
	m.prev_hash = &s
}

// PrevHash returns the value of the "prev_hash" field in the mutation.
func (m *AuditStepMutation) PrevHash() (r string, exists bool) {
	v := m.prev_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPrevHash returns the old "prev_hash" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldPrevHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrevHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrevHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrevHash: %w", err)
	}
	return oldValue.PrevHash, nil
}

// ClearPrevHash clears the value of the "prev_hash" field.
func (m *AuditStepMutation) ClearPrevHash() {
	m.prev_hash = nil
	m.clearedFields[auditstep.FieldPrevHash] = struct{}{}
}

// PrevHashCleared returns if the "prev_hash" field was cleared in this mutation.
func (m *AuditStepMutation) PrevHashCleared() bool {
	_, ok := m.clearedFields[auditstep.FieldPrevHash]
	return ok
}

// ResetPrevHash resets all changes to the "prev_hash" field.
func (m *AuditStepMutation) ResetPrevHash() {
	m.prev_hash = nil
	delete(m.clearedFields, auditstep.FieldPrevHash)
}

// SetHash sets the "hash" field.
func (m *AuditStepMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *AuditStepMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *AuditStepMutation) ResetHash() {
	m.hash = nil
}

// SetSignature sets the "signature" field.
func (m *AuditStepMutation) SetSignature(s string) {
	m.signature = &s
}

// Signature returns the value of the "signature" field in the mutation.
func (m *AuditStepMutation) Signature() (r string, exists bool) {
	v := m.signature
	if v == nil {
		return
	}
	return *v, true
}

// OldSignature returns the old "signature" field's value of the AuditStep entity.
// If the AuditStep object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditStepMutation) OldSignature(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignature: %w", err)
	}
	return oldValue.Signature, nil
}

// ClearSignature clears the value of the "signature" field.
func (m *AuditStepMutation) ClearSignature() {
	m.signature = nil
	m.clearedFields[auditstep.FieldSignature] = struct{}{}
}

// SignatureCleared returns if the "signature" field was cleared in this mutation.
func (m *AuditStepMutation) SignatureCleared() bool {
	_, ok := m.clearedFields[auditstep.FieldSignature]
	return ok
}

// ResetSignature resets all changes to the "signature" field.
func (m *AuditStepMutation) ResetSignature() {
	m.signature = nil
	delete(m.clearedFields, auditstep.FieldSignature)
}

// ClearCase clears the "case" edge to the CaseRecord entity.
func (m *AuditStepMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[auditstep.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CaseRecord entity was cleared.
func (m *AuditStepMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *AuditStepMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *AuditStepMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the AuditStepMutation builder.
func (m *AuditStepMutation) Where(ps ...predicate.AuditStep) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditStepMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditStepMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditStep, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditStepMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditStepMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditStep).
func (m *AuditStepMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditStepMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m._case != nil {
		fields = append(fields, auditstep.FieldCaseID)
	}
	if m.seq != nil {
		fields = append(fields, auditstep.FieldSeq)
	}
	if m.version != nil {
		fields = append(fields, auditstep.FieldVersion)
	}
	if m.timestamp != nil {
		fields = append(fields, auditstep.FieldTimestamp)
	}
	if m.agent_name != nil {
		fields = append(fields, auditstep.FieldAgentName)
	}
	if m.agent_role != nil {
		fields = append(fields, auditstep.FieldAgentRole)
	}
	if m.agent_model != nil {
		fields = append(fields, auditstep.FieldAgentModel)
	}
	if m.prompt_version != nil {
		fields = append(fields, auditstep.FieldPromptVersion)
	}
	if m.autonomy_level != nil {
		fields = append(fields, auditstep.FieldAutonomyLevel)
	}
	if m.inputs != nil {
		fields = append(fields, auditstep.FieldInputs)
	}
	if m.plan != nil {
		fields = append(fields, auditstep.FieldPlan)
	}
	if m.observations != nil {
		fields = append(fields, auditstep.FieldObservations)
	}
	if m.outputs != nil {
		fields = append(fields, auditstep.FieldOutputs)
	}
	if m.input_tokens != nil {
		fields = append(fields, auditstep.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, auditstep.FieldOutputTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, auditstep.FieldTotalTokens)
	}
	if m.cost_usd != nil {
		fields = append(fields, auditstep.FieldCostUsd)
	}
	if m.prev_hash != nil {
		fields = append(fields, auditstep.FieldPrevHash)
	}
	if m.hash != nil {
		fields = append(fields, auditstep.FieldHash)
	}
	if m.signature != nil {
		fields = append(fields, auditstep.FieldSignature)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditStepMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditstep.FieldCaseID:
		return m.CaseID()
	case auditstep.FieldSeq:
		return m.Seq()
	case auditstep.FieldVersion:
		return m.Version()
	case auditstep.FieldTimestamp:
		return m.Timestamp()
	case auditstep.FieldAgentName:
		return m.AgentName()
	case auditstep.FieldAgentRole:
		return m.AgentRole()
	case auditstep.FieldAgentModel:
		return m.AgentModel()
	case auditstep.FieldPromptVersion:
		return m.PromptVersion()
	case auditstep.FieldAutonomyLevel:
		return m.AutonomyLevel()
	case auditstep.FieldInputs:
		return m.Inputs()
	case auditstep.FieldPlan:
		return m.Plan()
	case auditstep.FieldObservations:
		return m.Observations()
	case auditstep.FieldOutputs:
		return m.Outputs()
	case auditstep.FieldInputTokens:
		return m.InputTokens()
	case auditstep.FieldOutputTokens:
		return m.OutputTokens()
	case auditstep.FieldTotalTokens:
		return m.TotalTokens()
	case auditstep.FieldCostUsd:
		return m.CostUsd()
	case auditstep.FieldPrevHash:
		return m.PrevHash()
	case auditstep.FieldHash:
		return m.Hash()
	case auditstep.FieldSignature:
		return m.Signature()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditStepMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditstep.FieldCaseID:
		return m.OldCaseID(ctx)
	case auditstep.FieldSeq:
		return m.OldSeq(ctx)
	case auditstep.FieldVersion:
		return m.OldVersion(ctx)
	case auditstep.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case auditstep.FieldAgentName:
		return m.OldAgentName(ctx)
	case auditstep.FieldAgentRole:
		return m.OldAgentRole(ctx)
	case auditstep.FieldAgentModel:
		return m.OldAgentModel(ctx)
	case auditstep.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case auditstep.FieldAutonomyLevel:
		return m.OldAutonomyLevel(ctx)
	case auditstep.FieldInputs:
		return m.OldInputs(ctx)
	case auditstep.FieldPlan:
		return m.OldPlan(ctx)
	case auditstep.FieldObservations:
		return m.OldObservations(ctx)
	case auditstep.FieldOutputs:
		return m.OldOutputs(ctx)
	case auditstep.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case auditstep.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case auditstep.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case auditstep.FieldCostUsd:
		return m.OldCostUsd(ctx)
	case auditstep.FieldPrevHash:
		return m.OldPrevHash(ctx)
	case auditstep.FieldHash:
		return m.OldHash(ctx)
	case auditstep.FieldSignature:
		return m.OldSignature(ctx)
	}
	return nil, fmt.Errorf("unknown AuditStep field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditStepMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditstep.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case auditstep.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case auditstep.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case auditstep.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case auditstep.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case auditstep.FieldAgentRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentRole(v)
		return nil
	case auditstep.FieldAgentModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentModel(v)
		return nil
	case auditstep.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case auditstep.FieldAutonomyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutonomyLevel(v)
		return nil
	case auditstep.FieldInputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputs(v)
		return nil
	case auditstep.FieldPlan:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlan(v)
		return nil
	case auditstep.FieldObservations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetObservations(v)
		return nil
	case auditstep.FieldOutputs:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputs(v)
		return nil
	case auditstep.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case auditstep.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case auditstep.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case auditstep.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostUsd(v)
		return nil
	case auditstep.FieldPrevHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrevHash(v)
		return nil
	case auditstep.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case auditstep.FieldSignature:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignature(v)
		return nil
	}
	return fmt.Errorf("unknown AuditStep field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditStepMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, auditstep.FieldSeq)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, auditstep.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, auditstep.FieldOutputTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, auditstep.FieldTotalTokens)
	}
	if m.addcost_usd != nil {
		fields = append(fields, auditstep.FieldCostUsd)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditStepMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditstep.FieldSeq:
		return m.AddedSeq()
	case auditstep.FieldInputTokens:
		return m.AddedInputTokens()
	case auditstep.FieldOutputTokens:
		return m.AddedOutputTokens()
	case auditstep.FieldTotalTokens:
		return m.AddedTotalTokens()
	case auditstep.FieldCostUsd:
		return m.AddedCostUsd()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditStepMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditstep.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case auditstep.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case auditstep.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case auditstep.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case auditstep.FieldCostUsd:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostUsd(v)
		return nil
	}
	return fmt.Errorf("unknown AuditStep numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditStepMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditstep.FieldInputs) {
		fields = append(fields, auditstep.FieldInputs)
	}
	if m.FieldCleared(auditstep.FieldPlan) {
		fields = append(fields, auditstep.FieldPlan)
	}
	if m.FieldCleared(auditstep.FieldObservations) {
		fields = append(fields, auditstep.FieldObservations)
	}
	if m.FieldCleared(auditstep.FieldOutputs) {
		fields = append(fields, auditstep.FieldOutputs)
	}
	if m.FieldCleared(auditstep.FieldPrevHash) {
		fields = append(fields, auditstep.FieldPrevHash)
	}
	if m.FieldCleared(auditstep.FieldSignature) {
		fields = append(fields, auditstep.FieldSignature)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditStepMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditStepMutation) ClearField(name string) error {
	switch name {
	case auditstep.FieldInputs:
		m.ClearInputs()
		return nil
	case auditstep.FieldPlan:
		m.ClearPlan()
		return nil
	case auditstep.FieldObservations:
		m.ClearObservations()
		return nil
	case auditstep.FieldOutputs:
		m.ClearOutputs()
		return nil
	case auditstep.FieldPrevHash:
		m.ClearPrevHash()
		return nil
	case auditstep.FieldSignature:
		m.ClearSignature()
		return nil
	}
	return fmt.Errorf("unknown AuditStep nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditStepMutation) ResetField(name string) error {
	switch name {
	case auditstep.FieldCaseID:
		m.ResetCaseID()
		return nil
	case auditstep.FieldSeq:
		m.ResetSeq()
		return nil
	case auditstep.FieldVersion:
		m.ResetVersion()
		return nil
	case auditstep.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case auditstep.FieldAgentName:
		m.ResetAgentName()
		return nil
	case auditstep.FieldAgentRole:
		m.ResetAgentRole()
		return nil
	case auditstep.FieldAgentModel:
		m.ResetAgentModel()
		return nil
	case auditstep.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case auditstep.FieldAutonomyLevel:
		m.ResetAutonomyLevel()
		return nil
	case auditstep.FieldInputs:
		m.ResetInputs()
		return nil
	case auditstep.FieldPlan:
		m.ResetPlan()
		return nil
	case auditstep.FieldObservations:
		m.ResetObservations()
		return nil
	case auditstep.FieldOutputs:
		m.ResetOutputs()
		return nil
	case auditstep.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case auditstep.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case auditstep.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case auditstep.FieldCostUsd:
		m.ResetCostUsd()
		return nil
	case auditstep.FieldPrevHash:
		m.ResetPrevHash()
		return nil
	case auditstep.FieldHash:
		m.ResetHash()
		return nil
	case auditstep.FieldSignature:
		m.ResetSignature()
		return nil
	}
	return fmt.Errorf("unknown AuditStep field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditStepMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, auditstep.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditStepMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditstep.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditStepMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditStepMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditStepMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, auditstep.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditStepMutation) EdgeCleared(name string) bool {
	switch name {
	case auditstep.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditStepMutation) ClearEdge(name string) error {
	switch name {
	case auditstep.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown AuditStep unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditStepMutation) ResetEdge(name string) error {
	switch name {
	case auditstep.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown AuditStep edge %s", name)
}

// CaseRecordMutation represents an operation that mutates the CaseRecord nodes in the graph.
type CaseRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	title                   *string
	description             *string
	severity                *string
	status                  *caserecord.Status
	current_step            *string
	autonomy_level          *string
	entities                *map[string][]string
	threat_classification   *string
	actual_cost             *float64
	addactual_cost          *float64
	actual_tokens           *int
	addactual_tokens        *int
	created_at              *time.Time
	updated_at              *time.Time
	completed_at            *time.Time
	error_message           *string
	clearedFields           map[string]struct{}
	audit_steps             map[string]struct{}
	removedaudit_steps      map[string]struct{}
	clearedaudit_steps      bool
	approvals               map[string]struct{}
	removedapprovals        map[string]struct{}
	clearedapprovals        bool
	agent_executions        map[string]struct{}
	removedagent_executions map[string]struct{}
	clearedagent_executions bool
	reports                 map[string]struct{}
	removedreports          map[string]struct{}
	clearedreports          bool
	done                    bool
	oldValue                func(context.Context) (*CaseRecord, error)
	predicates              []predicate.CaseRecord
}

var _ ent.Mutation = (*CaseRecordMutation)(nil)

// caserecordOption allows management of the mutation configuration using functional options.
type caserecordOption func(*CaseRecordMutation)

// newCaseRecordMutation creates new mutation for the CaseRecord entity.
func newCaseRecordMutation(c config, op Op, opts ...caserecordOption) *CaseRecordMutation {
	m := &CaseRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCaseRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaseRecordID sets the ID field of the mutation.
func withCaseRecordID(id string) caserecordOption {
	return func(m *CaseRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CaseRecord
		)
		m.oldValue = func(ctx context.Context) (*CaseRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaseRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaseRecord sets the old CaseRecord of the mutation.
func withCaseRecord(node *CaseRecord) caserecordOption {
	return func(m *CaseRecordMutation) {
		m.oldValue = func(context.Context) (*CaseRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaseRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaseRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaseRecord entities.
func (m *CaseRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaseRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaseRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaseRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CaseRecordMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CaseRecordMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CaseRecordMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[caserecord.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CaseRecordMutation) TitleCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CaseRecordMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, caserecord.FieldTitle)
}

// SetDescription sets the "description" field.
func (m *CaseRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CaseRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CaseRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[caserecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CaseRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CaseRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, caserecord.FieldDescription)
}

// SetSeverity sets the "severity" field.
func (m *CaseRecordMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *CaseRecordMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ClearSeverity clears the value of the "severity" field.
func (m *CaseRecordMutation) ClearSeverity() {
	m.severity = nil
	m.clearedFields[caserecord.FieldSeverity] = struct{}{}
}

// SeverityCleared returns if the "severity" field was cleared in this mutation.
func (m *CaseRecordMutation) SeverityCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldSeverity]
	return ok
}

// ResetSeverity resets all changes to the "severity" field.
func (m *CaseRecordMutation) ResetSeverity() {
	m.severity = nil
	delete(m.clearedFields, caserecord.FieldSeverity)
}

// SetStatus sets the "status" field.
func (m *CaseRecordMutation) SetStatus(c caserecord.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *CaseRecordMutation) Status() (r caserecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldStatus(ctx context.Context) (v caserecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *CaseRecordMutation) ResetStatus() {
	m.status = nil
}

// SetCurrentStep sets the "current_step" field.
func (m *CaseRecordMutation) SetCurrentStep(s string) {
	m.current_step = &s
}

// CurrentStep returns the value of the "current_step" field in the mutation.
func (m *CaseRecordMutation) CurrentStep() (r string, exists bool) {
	v := m.current_step
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStep returns the old "current_step" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldCurrentStep(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStep is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStep requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStep: %w", err)
	}
	return oldValue.CurrentStep, nil
}

// ClearCurrentStep clears the value of the "current_step" field.
func (m *CaseRecordMutation) ClearCurrentStep() {
	m.current_step = nil
	m.clearedFields[caserecord.FieldCurrentStep] = struct{}{}
}

// CurrentStepCleared returns if the "current_step" field was cleared in this mutation.
func (m *CaseRecordMutation) CurrentStepCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldCurrentStep]
	return ok
}

// ResetCurrentStep resets all changes to the "current_step" field.
func (m *CaseRecordMutation) ResetCurrentStep() {
	m.current_step = nil
	delete(m.clearedFields, caserecord.FieldCurrentStep)
}

// SetAutonomyLevel sets the "autonomy_level" field.
func (m *CaseRecordMutation) SetAutonomyLevel(s string) {
	m.autonomy_level = &s
}

// AutonomyLevel returns the value of the "autonomy_level" field in the mutation.
func (m *CaseRecordMutation) AutonomyLevel() (r string, exists bool) {
	v := m.autonomy_level
	if v == nil {
		return
	}
	return *v, true
}

// OldAutonomyLevel returns the old "autonomy_level" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldAutonomyLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAutonomyLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAutonomyLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAutonomyLevel: %w", err)
	}
	return oldValue.AutonomyLevel, nil
}

// ClearAutonomyLevel clears the value of the "autonomy_level" field.
func (m *CaseRecordMutation) ClearAutonomyLevel() {
	m.autonomy_level = nil
	m.clearedFields[caserecord.FieldAutonomyLevel] = struct{}{}
}

// AutonomyLevelCleared returns if the "autonomy_level" field was cleared in this mutation.
func (m *CaseRecordMutation) AutonomyLevelCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldAutonomyLevel]
	return ok
}

// ResetAutonomyLevel resets all changes to the "autonomy_level" field.
func (m *CaseRecordMutation) ResetAutonomyLevel() {
	m.autonomy_level = nil
	delete(m.clearedFields, caserecord.FieldAutonomyLevel)
}

// SetEntities sets the "entities" field.
func (m *CaseRecordMutation) SetEntities(value map[string][]string) {
	m.entities = &value
}

// Entities returns the value of the "entities" field in the mutation.
func (m *CaseRecordMutation) Entities() (r map[string][]string, exists bool) {
	v := m.entities
	if v == nil {
		return
	}
	return *v, true
}

// OldEntities returns the old "entities" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldEntities(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntities: %w", err)
	}
	return oldValue.Entities, nil
}

// ClearEntities clears the value of the "entities" field.
func (m *CaseRecordMutation) ClearEntities() {
	m.entities = nil
	m.clearedFields[caserecord.FieldEntities] = struct{}{}
}

// EntitiesCleared returns if the "entities" field was cleared in this mutation.
func (m *CaseRecordMutation) EntitiesCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldEntities]
	return ok
}

// ResetEntities resets all changes to the "entities" field.
func (m *CaseRecordMutation) ResetEntities() {
	m.entities = nil
	delete(m.clearedFields, caserecord.FieldEntities)
}

// SetThreatClassification sets the "threat_classification" field.
func (m *CaseRecordMutation) SetThreatClassification(s string) {
	m.threat_classification = &s
}

// ThreatClassification returns the value of the "threat_classification" field in the mutation.
func (m *CaseRecordMutation) ThreatClassification() (r string, exists bool) {
	v := m.threat_classification
	if v == nil {
		return
	}
	return *v, true
}

// OldThreatClassification returns the old "threat_classification" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldThreatClassification(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThreatClassification is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThreatClassification requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThreatClassification: %w", err)
	}
	return oldValue.ThreatClassification, nil
}

// ClearThreatClassification clears the value of the "threat_classification" field.
func (m *CaseRecordMutation) ClearThreatClassification() {
	m.threat_classification = nil
	m.clearedFields[caserecord.FieldThreatClassification] = struct{}{}
}

// ThreatClassificationCleared returns if the "threat_classification" field was cleared in this mutation.
func (m *CaseRecordMutation) ThreatClassificationCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldThreatClassification]
	return ok
}

// ResetThreatClassification resets all changes to the "threat_classification" field.
func (m *CaseRecordMutation) ResetThreatClassification() {
	m.threat_classification = nil
	delete(m.clearedFields, caserecord.FieldThreatClassification)
}

// SetActualCost sets the "actual_cost" field.
func (m *CaseRecordMutation) SetActualCost(f float64) {
	m.actual_cost = &f
	m.addactual_cost = nil
}

// ActualCost returns the value of the "actual_cost" field in the mutation.
func (m *CaseRecordMutation) ActualCost() (r float64, exists bool) {
	v := m.actual_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldActualCost returns the old "actual_cost" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldActualCost(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualCost: %w", err)
	}
	return oldValue.ActualCost, nil
}

// AddActualCost adds f to the "actual_cost" field.
func (m *CaseRecordMutation) AddActualCost(f float64) {
	if m.addactual_cost != nil {
		*m.addactual_cost += f
	} else {
		m.addactual_cost = &f
	}
}

// AddedActualCost returns the value that was added to the "actual_cost" field in this mutation.
func (m *CaseRecordMutation) AddedActualCost() (r float64, exists bool) {
	v := m.addactual_cost
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualCost resets all changes to the "actual_cost" field.
func (m *CaseRecordMutation) ResetActualCost() {
	m.actual_cost = nil
	m.addactual_cost = nil
}

// SetActualTokens sets the "actual_tokens" field.
func (m *CaseRecordMutation) SetActualTokens(i int) {
	m.actual_tokens = &i
	m.addactual_tokens = nil
}

// ActualTokens returns the value of the "actual_tokens" field in the mutation.
func (m *CaseRecordMutation) ActualTokens() (r int, exists bool) {
	v := m.actual_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldActualTokens returns the old "actual_tokens" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldActualTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActualTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActualTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActualTokens: %w", err)
	}
	return oldValue.ActualTokens, nil
}

// AddActualTokens adds i to the "actual_tokens" field.
func (m *CaseRecordMutation) AddActualTokens(i int) {
	if m.addactual_tokens != nil {
		*m.addactual_tokens += i
	} else {
		m.addactual_tokens = &i
	}
}

// AddedActualTokens returns the value that was added to the "actual_tokens" field in this mutation.
func (m *CaseRecordMutation) AddedActualTokens() (r int, exists bool) {
	v := m.addactual_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetActualTokens resets all changes to the "actual_tokens" field.
func (m *CaseRecordMutation) ResetActualTokens() {
	m.actual_tokens = nil
	m.addactual_tokens = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CaseRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaseRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CaseRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CaseRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CaseRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CaseRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *CaseRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *CaseRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *CaseRecordMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[caserecord.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *CaseRecordMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *CaseRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, caserecord.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *CaseRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *CaseRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the CaseRecord entity.
// If the CaseRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaseRecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *CaseRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[caserecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *CaseRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[caserecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *CaseRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, caserecord.FieldErrorMessage)
}

// AddAuditStepIDs adds the "audit_steps" edge to the AuditStep entity by ids.
func (m *CaseRecordMutation) AddAuditStepIDs(ids ...string) {
	if m.audit_steps == nil {
		m.audit_steps = make(map[string]struct{})
	}
	for i := range ids {
		m.audit_steps[ids[i]] = struct{}{}
	}
}

// ClearAuditSteps clears the "audit_steps" edge to the AuditStep entity.
func (m *CaseRecordMutation) ClearAuditSteps() {
	m.clearedaudit_steps = true
}

// AuditStepsCleared reports if the "audit_steps" edge to the AuditStep entity was cleared.
func (m *CaseRecordMutation) AuditStepsCleared() bool {
	return m.clearedaudit_steps
}

// RemoveAuditStepIDs removes the "audit_steps" edge to the AuditStep entity by IDs.
func (m *CaseRecordMutation) RemoveAuditStepIDs(ids ...string) {
	if m.removedaudit_steps == nil {
		m.removedaudit_steps = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audit_steps, ids[i])
		m.removedaudit_steps[ids[i]] = struct{}{}
	}
}

// RemovedAuditSteps returns the removed IDs of the "audit_steps" edge to the AuditStep entity.
func (m *CaseRecordMutation) RemovedAuditStepsIDs() (ids []string) {
	for id := range m.removedaudit_steps {
		ids = append(ids, id)
	}
	return
}

// AuditStepsIDs returns the "audit_steps" edge IDs in the mutation.
func (m *CaseRecordMutation) AuditStepsIDs() (ids []string) {
	for id := range m.audit_steps {
		ids = append(ids, id)
	}
	return
}

// ResetAuditSteps resets all changes to the "audit_steps" edge.
func (m *CaseRecordMutation) ResetAuditSteps() {
	m.audit_steps = nil
	m.clearedaudit_steps = false
	m.removedaudit_steps = nil
}

// AddApprovalIDs adds the "approvals" edge to the Approval entity by ids.
func (m *CaseRecordMutation) AddApprovalIDs(ids ...string) {
	if m.approvals == nil {
		m.approvals = make(map[string]struct{})
	}
	for i := range ids {
		m.approvals[ids[i]] = struct{}{}
	}
}

// ClearApprovals clears the "approvals" edge to the Approval entity.
func (m *CaseRecordMutation) ClearApprovals() {
	m.clearedapprovals = true
}

// ApprovalsCleared reports if the "approvals" edge to the Approval entity was cleared.
func (m *CaseRecordMutation) ApprovalsCleared() bool {
	return m.clearedapprovals
}

// RemoveApprovalIDs removes the "approvals" edge to the Approval entity by IDs.
func (m *CaseRecordMutation) RemoveApprovalIDs(ids ...string) {
	if m.removedapprovals == nil {
		m.removedapprovals = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.approvals, ids[i])
		m.removedapprovals[ids[i]] = struct{}{}
	}
}

// RemovedApprovals returns the removed IDs of the "approvals" edge to the Approval entity.
func (m *CaseRecordMutation) RemovedApprovalsIDs() (ids []string) {
	for id := range m.removedapprovals {
		ids = append(ids, id)
	}
	return
}

// ApprovalsIDs returns the "approvals" edge IDs in the mutation.
func (m *CaseRecordMutation) ApprovalsIDs() (ids []string) {
	for id := range m.approvals {
		ids = append(ids, id)
	}
	return
}

// ResetApprovals resets all changes to the "approvals" edge.
func (m *CaseRecordMutation) ResetApprovals() {
	m.approvals = nil
	m.clearedapprovals = false
	m.removedapprovals = nil
}

// AddAgentExecutionIDs adds the "agent_executions" edge to the AgentExecution entity by ids.
func (m *CaseRecordMutation) AddAgentExecutionIDs(ids ...string) {
	if m.agent_executions == nil {
		m.agent_executions = make(map[string]struct{})
	}
	for i := range ids {
		m.agent_executions[ids[i]] = struct{}{}
	}
}

// ClearAgentExecutions clears the "agent_executions" edge to the AgentExecution entity.
func (m *CaseRecordMutation) ClearAgentExecutions() {
	m.clearedagent_executions = true
}

// AgentExecutionsCleared reports if the "agent_executions" edge to the AgentExecution entity was cleared.
func (m *CaseRecordMutation) AgentExecutionsCleared() bool {
	return m.clearedagent_executions
}

// RemoveAgentExecutionIDs removes the "agent_executions" edge to the AgentExecution entity by IDs.
func (m *CaseRecordMutation) RemoveAgentExecutionIDs(ids ...string) {
	if m.removedagent_executions == nil {
		m.removedagent_executions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agent_executions, ids[i])
		m.removedagent_executions[ids[i]] = struct{}{}
	}
}

// RemovedAgentExecutions returns the removed IDs of the "agent_executions" edge to the AgentExecution entity.
func (m *CaseRecordMutation) RemovedAgentExecutionsIDs() (ids []string) {
	for id := range m.removedagent_executions {
		ids = append(ids, id)
	}
	return
}

// AgentExecutionsIDs returns the "agent_executions" edge IDs in the mutation.
func (m *CaseRecordMutation) AgentExecutionsIDs() (ids []string) {
	for id := range m.agent_executions {
		ids = append(ids, id)
	}
	return
}

// ResetAgentExecutions resets all changes to the "agent_executions" edge.
func (m *CaseRecordMutation) ResetAgentExecutions() {
	m.agent_executions = nil
	m.clearedagent_executions = false
	m.removedagent_executions = nil
}

// AddReportIDs adds the "reports" edge to the Report entity by ids.
func (m *CaseRecordMutation) AddReportIDs(ids ...string) {
	if m.reports == nil {
		m.reports = make(map[string]struct{})
	}
	for i := range ids {
		m.reports[ids[i]] = struct{}{}
	}
}

// ClearReports clears the "reports" edge to the Report entity.
func (m *CaseRecordMutation) ClearReports() {
	m.clearedreports = true
}

// ReportsCleared reports if the "reports" edge to the Report entity was cleared.
func (m *CaseRecordMutation) ReportsCleared() bool {
	return m.clearedreports
}

// RemoveReportIDs removes the "reports" edge to the Report entity by IDs.
func (m *CaseRecordMutation) RemoveReportIDs(ids ...string) {
	if m.removedreports == nil {
		m.removedreports = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.reports, ids[i])
		m.removedreports[ids[i]] = struct{}{}
	}
}

// RemovedReports returns the removed IDs of the "reports" edge to the Report entity.
func (m *CaseRecordMutation) RemovedReportsIDs() (ids []string) {
	for id := range m.removedreports {
		ids = append(ids, id)
	}
	return
}

// ReportsIDs returns the "reports" edge IDs in the mutation.
func (m *CaseRecordMutation) ReportsIDs() (ids []string) {
	for id := range m.reports {
		ids = append(ids, id)
	}
	return
}

// ResetReports resets all changes to the "reports" edge.
func (m *CaseRecordMutation) ResetReports() {
	m.reports = nil
	m.clearedreports = false
	m.removedreports = nil
}

// Where appends a list predicates to the CaseRecordMutation builder.
func (m *CaseRecordMutation) Where(ps ...predicate.CaseRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaseRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaseRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaseRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaseRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaseRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaseRecord).
func (m *CaseRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaseRecordMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.title != nil {
		fields = append(fields, caserecord.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, caserecord.FieldDescription)
	}
	if m.severity != nil {
		fields = append(fields, caserecord.FieldSeverity)
	}
	if m.status != nil {
		fields = append(fields, caserecord.FieldStatus)
	}
	if m.current_step != nil {
		fields = append(fields, caserecord.FieldCurrentStep)
	}
	if m.autonomy_level != nil {
		fields = append(fields, caserecord.FieldAutonomyLevel)
	}
	if m.entities != nil {
		fields = append(fields, caserecord.FieldEntities)
	}
	if m.threat_classification != nil {
		fields = append(fields, caserecord.FieldThreatClassification)
	}
	if m.actual_cost != nil {
		fields = append(fields, caserecord.FieldActualCost)
	}
	if m.actual_tokens != nil {
		fields = append(fields, caserecord.FieldActualTokens)
	}
	if m.created_at != nil {
		fields = append(fields, caserecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, caserecord.FieldUpdatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, caserecord.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, caserecord.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaseRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case caserecord.FieldTitle:
		return m.Title()
	case caserecord.FieldDescription:
		return m.Description()
	case caserecord.FieldSeverity:
		return m.Severity()
	case caserecord.FieldStatus:
		return m.Status()
	case caserecord.FieldCurrentStep:
		return m.CurrentStep()
	case caserecord.FieldAutonomyLevel:
		return m.AutonomyLevel()
	case caserecord.FieldEntities:
		return m.Entities()
	case caserecord.FieldThreatClassification:
		return m.ThreatClassification()
	case caserecord.FieldActualCost:
		return m.ActualCost()
	case caserecord.FieldActualTokens:
		return m.ActualTokens()
	case caserecord.FieldCreatedAt:
		return m.CreatedAt()
	case caserecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case caserecord.FieldCompletedAt:
		return m.CompletedAt()
	case caserecord.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaseRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case caserecord.FieldTitle:
		return m.OldTitle(ctx)
	case caserecord.FieldDescription:
		return m.OldDescription(ctx)
	case caserecord.FieldSeverity:
		return m.OldSeverity(ctx)
	case caserecord.FieldStatus:
		return m.OldStatus(ctx)
	case caserecord.FieldCurrentStep:
		return m.OldCurrentStep(ctx)
	case caserecord.FieldAutonomyLevel:
		return m.OldAutonomyLevel(ctx)
	case caserecord.FieldEntities:
		return m.OldEntities(ctx)
	case caserecord.FieldThreatClassification:
		return m.OldThreatClassification(ctx)
	case caserecord.FieldActualCost:
		return m.OldActualCost(ctx)
	case caserecord.FieldActualTokens:
		return m.OldActualTokens(ctx)
	case caserecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case caserecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case caserecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case caserecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown CaseRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case caserecord.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case caserecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case caserecord.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case caserecord.FieldStatus:
		v, ok := value.(caserecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case caserecord.FieldCurrentStep:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStep(v)
		return nil
	case caserecord.FieldAutonomyLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAutonomyLevel(v)
		return nil
	case caserecord.FieldEntities:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntities(v)
		return nil
	case caserecord.FieldThreatClassification:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThreatClassification(v)
		return nil
	case caserecord.FieldActualCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualCost(v)
		return nil
	case caserecord.FieldActualTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActualTokens(v)
		return nil
	case caserecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case caserecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case caserecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case caserecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown CaseRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaseRecordMutation) AddedFields() []string {
	var fields []string
	if m.addactual_cost != nil {
		fields = append(fields, caserecord.FieldActualCost)
	}
	if m.addactual_tokens != nil {
		fields = append(fields, caserecord.FieldActualTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaseRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case caserecord.FieldActualCost:
		return m.AddedActualCost()
	case caserecord.FieldActualTokens:
		return m.AddedActualTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaseRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case caserecord.FieldActualCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualCost(v)
		return nil
	case caserecord.FieldActualTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActualTokens(v)
		return nil
	}
	return fmt.Errorf("unknown CaseRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaseRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(caserecord.FieldTitle) {
		fields = append(fields, caserecord.FieldTitle)
	}
	if m.FieldCleared(caserecord.FieldDescription) {
		fields = append(fields, caserecord.FieldDescription)
	}
	if m.FieldCleared(caserecord.FieldSeverity) {
		fields = append(fields, caserecord.FieldSeverity)
	}
	if m.FieldCleared(caserecord.FieldCurrentStep) {
		fields = append(fields, caserecord.FieldCurrentStep)
	}
	if m.FieldCleared(caserecord.FieldAutonomyLevel) {
		fields = append(fields, caserecord.FieldAutonomyLevel)
	}
	if m.FieldCleared(caserecord.FieldEntities) {
		fields = append(fields, caserecord.FieldEntities)
	}
	if m.FieldCleared(caserecord.FieldThreatClassification) {
		fields = append(fields, caserecord.FieldThreatClassification)
	}
	if m.FieldCleared(caserecord.FieldCompletedAt) {
		fields = append(fields, caserecord.FieldCompletedAt)
	}
	if m.FieldCleared(caserecord.FieldErrorMessage) {
		fields = append(fields, caserecord.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaseRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaseRecordMutation) ClearField(name string) error {
	switch name {
	case caserecord.FieldTitle:
		m.ClearTitle()
		return nil
	case caserecord.FieldDescription:
		m.ClearDescription()
		return nil
	case caserecord.FieldSeverity:
		m.ClearSeverity()
		return nil
	case caserecord.FieldCurrentStep:
		m.ClearCurrentStep()
		return nil
	case caserecord.FieldAutonomyLevel:
		m.ClearAutonomyLevel()
		return nil
	case caserecord.FieldEntities:
		m.ClearEntities()
		return nil
	case caserecord.FieldThreatClassification:
		m.ClearThreatClassification()
		return nil
	case caserecord.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case caserecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown CaseRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaseRecordMutation) ResetField(name string) error {
	switch name {
	case caserecord.FieldTitle:
		m.ResetTitle()
		return nil
	case caserecord.FieldDescription:
		m.ResetDescription()
		return nil
	case caserecord.FieldSeverity:
		m.ResetSeverity()
		return nil
	case caserecord.FieldStatus:
		m.ResetStatus()
		return nil
	case caserecord.FieldCurrentStep:
		m.ResetCurrentStep()
		return nil
	case caserecord.FieldAutonomyLevel:
		m.ResetAutonomyLevel()
		return nil
	case caserecord.FieldEntities:
		m.ResetEntities()
		return nil
	case caserecord.FieldThreatClassification:
		m.ResetThreatClassification()
		return nil
	case caserecord.FieldActualCost:
		m.ResetActualCost()
		return nil
	case caserecord.FieldActualTokens:
		m.ResetActualTokens()
		return nil
	case caserecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case caserecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case caserecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case caserecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown CaseRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaseRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.audit_steps != nil {
		edges = append(edges, caserecord.EdgeAuditSteps)
	}
	if m.approvals != nil {
		edges = append(edges, caserecord.EdgeApprovals)
	}
	if m.agent_executions != nil {
		edges = append(edges, caserecord.EdgeAgentExecutions)
	}
	if m.reports != nil {
		edges = append(edges, caserecord.EdgeReports)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaseRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case caserecord.EdgeAuditSteps:
		ids := make([]ent.Value, 0, len(m.audit_steps))
		for id := range m.audit_steps {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.approvals))
		for id := range m.approvals {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.agent_executions))
		for id := range m.agent_executions {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeReports:
		ids := make([]ent.Value, 0, len(m.reports))
		for id := range m.reports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaseRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedaudit_steps != nil {
		edges = append(edges, caserecord.EdgeAuditSteps)
	}
	if m.removedapprovals != nil {
		edges = append(edges, caserecord.EdgeApprovals)
	}
	if m.removedagent_executions != nil {
		edges = append(edges, caserecord.EdgeAgentExecutions)
	}
	if m.removedreports != nil {
		edges = append(edges, caserecord.EdgeReports)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaseRecordMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case caserecord.EdgeAuditSteps:
		ids := make([]ent.Value, 0, len(m.removedaudit_steps))
		for id := range m.removedaudit_steps {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeApprovals:
		ids := make([]ent.Value, 0, len(m.removedapprovals))
		for id := range m.removedapprovals {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeAgentExecutions:
		ids := make([]ent.Value, 0, len(m.removedagent_executions))
		for id := range m.removedagent_executions {
			ids = append(ids, id)
		}
		return ids
	case caserecord.EdgeReports:
		ids := make([]ent.Value, 0, len(m.removedreports))
		for id := range m.removedreports {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaseRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedaudit_steps {
		edges = append(edges, caserecord.EdgeAuditSteps)
	}
	if m.clearedapprovals {
		edges = append(edges, caserecord.EdgeApprovals)
	}
	if m.clearedagent_executions {
		edges = append(edges, caserecord.EdgeAgentExecutions)
	}
	if m.clearedreports {
		edges = append(edges, caserecord.EdgeReports)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaseRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case caserecord.EdgeAuditSteps:
		return m.clearedaudit_steps
	case caserecord.EdgeApprovals:
		return m.clearedapprovals
	case caserecord.EdgeAgentExecutions:
		return m.clearedagent_executions
	case caserecord.EdgeReports:
		return m.clearedreports
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaseRecordMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown CaseRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaseRecordMutation) ResetEdge(name string) error {
	switch name {
	case caserecord.EdgeAuditSteps:
		m.ResetAuditSteps()
		return nil
	case caserecord.EdgeApprovals:
		m.ResetApprovals()
		return nil
	case caserecord.EdgeAgentExecutions:
		m.ResetAgentExecutions()
		return nil
	case caserecord.EdgeReports:
		m.ResetReports()
		return nil
	}
	return fmt.Errorf("unknown CaseRecord edge %s", name)
}

// GraphEdgeMutation represents an operation that mutates the GraphEdge nodes in the graph.
type GraphEdgeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	src_id        *string
	dst_id        *string
	rel_type      *graphedge.RelType
	props         *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GraphEdge, error)
	predicates    []predicate.GraphEdge
}

var _ ent.Mutation = (*GraphEdgeMutation)(nil)

// graphedgeOption allows management of the mutation configuration using functional options.
type graphedgeOption func(*GraphEdgeMutation)

// newGraphEdgeMutation creates new mutation for the GraphEdge entity.
func newGraphEdgeMutation(c config, op Op, opts ...graphedgeOption) *GraphEdgeMutation {
	m := &GraphEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphEdgeID sets the ID field of the mutation.
func withGraphEdgeID(id string) graphedgeOption {
	return func(m *GraphEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphEdge
		)
		m.oldValue = func(ctx context.Context) (*GraphEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphEdge sets the old GraphEdge of the mutation.
func withGraphEdge(node *GraphEdge) graphedgeOption {
	return func(m *GraphEdgeMutation) {
		m.oldValue = func(context.Context) (*GraphEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GraphEdge entities.
func (m *GraphEdgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphEdgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphEdgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSrcID sets the "src_id" field.
func (m *GraphEdgeMutation) SetSrcID(s string) {
	m.src_id = &s
}

// SrcID returns the value of the "src_id" field in the mutation.
func (m *GraphEdgeMutation) SrcID() (r string, exists bool) {
	v := m.src_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSrcID returns the old "src_id" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldSrcID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSrcID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSrcID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSrcID: %w", err)
	}
	return oldValue.SrcID, nil
}

// ResetSrcID resets all changes to the "src_id" field.
func (m *GraphEdgeMutation) ResetSrcID() {
	m.src_id = nil
}

// SetDstID sets the "dst_id" field.
func (m *GraphEdgeMutation) SetDstID(s string) {
	m.dst_id = &s
}

// DstID returns the value of the "dst_id" field in the mutation.
func (m *GraphEdgeMutation) DstID() (r string, exists bool) {
	v := m.dst_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDstID returns the old "dst_id" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldDstID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDstID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDstID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDstID: %w", err)
	}
	return oldValue.DstID, nil
}

// ResetDstID resets all changes to the "dst_id" field.
func (m *GraphEdgeMutation) ResetDstID() {
	m.dst_id = nil
}

// SetRelType sets the "rel_type" field.
func (m *GraphEdgeMutation) SetRelType(gt graphedge.RelType) {
	m.rel_type = &gt
}

// RelType returns the value of the "rel_type" field in the mutation.
func (m *GraphEdgeMutation) RelType() (r graphedge.RelType, exists bool) {
	v := m.rel_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelType returns the old "rel_type" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldRelType(ctx context.Context) (v graphedge.RelType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelType: %w", err)
	}
	return oldValue.RelType, nil
}

// ResetRelType resets all changes to the "rel_type" field.
func (m *GraphEdgeMutation) ResetRelType() {
	m.rel_type = nil
}

// SetProps sets the "props" field.
func (m *GraphEdgeMutation) SetProps(value map[string]interface{}) {
	m.props = &value
}

// Props returns the value of the "props" field in the mutation.
func (m *GraphEdgeMutation) Props() (r map[string]interface{}, exists bool) {
	v := m.props
	if v == nil {
		return
	}
	return *v, true
}

// OldProps returns the old "props" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldProps(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProps: %w", err)
	}
	return oldValue.Props, nil
}

// ClearProps clears the value of the "props" field.
func (m *GraphEdgeMutation) ClearProps() {
	m.props = nil
	m.clearedFields[graphedge.FieldProps] = struct{}{}
}

// PropsCleared returns if the "props" field was cleared in this mutation.
func (m *GraphEdgeMutation) PropsCleared() bool {
	_, ok := m.clearedFields[graphedge.FieldProps]
	return ok
}

// ResetProps resets all changes to the "props" field.
func (m *GraphEdgeMutation) ResetProps() {
	m.props = nil
	delete(m.clearedFields, graphedge.FieldProps)
}

// SetCreatedAt sets the "created_at" field.
func (m *GraphEdgeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GraphEdgeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GraphEdgeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the GraphEdgeMutation builder.
func (m *GraphEdgeMutation) Where(ps ...predicate.GraphEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphEdge).
func (m *GraphEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphEdgeMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.src_id != nil {
		fields = append(fields, graphedge.FieldSrcID)
	}
	if m.dst_id != nil {
		fields = append(fields, graphedge.FieldDstID)
	}
	if m.rel_type != nil {
		fields = append(fields, graphedge.FieldRelType)
	}
	if m.props != nil {
		fields = append(fields, graphedge.FieldProps)
	}
	if m.created_at != nil {
		fields = append(fields, graphedge.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphedge.FieldSrcID:
		return m.SrcID()
	case graphedge.FieldDstID:
		return m.DstID()
	case graphedge.FieldRelType:
		return m.RelType()
	case graphedge.FieldProps:
		return m.Props()
	case graphedge.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphedge.FieldSrcID:
		return m.OldSrcID(ctx)
	case graphedge.FieldDstID:
		return m.OldDstID(ctx)
	case graphedge.FieldRelType:
		return m.OldRelType(ctx)
	case graphedge.FieldProps:
		return m.OldProps(ctx)
	case graphedge.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GraphEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphedge.FieldSrcID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSrcID(v)
		return nil
	case graphedge.FieldDstID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDstID(v)
		return nil
	case graphedge.FieldRelType:
		v, ok := value.(graphedge.RelType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelType(v)
		return nil
	case graphedge.FieldProps:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProps(v)
		return nil
	case graphedge.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GraphEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphEdgeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphEdgeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GraphEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphEdgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(graphedge.FieldProps) {
		fields = append(fields, graphedge.FieldProps)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphEdgeMutation) ClearField(name string) error {
	switch name {
	case graphedge.FieldProps:
		m.ClearProps()
		return nil
	}
	return fmt.Errorf("unknown GraphEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphEdgeMutation) ResetField(name string) error {
	switch name {
	case graphedge.FieldSrcID:
		m.ResetSrcID()
		return nil
	case graphedge.FieldDstID:
		m.ResetDstID()
		return nil
	case graphedge.FieldRelType:
		m.ResetRelType()
		return nil
	case graphedge.FieldProps:
		m.ResetProps()
		return nil
	case graphedge.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown GraphEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GraphEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GraphEdge edge %s", name)
}

// GraphNodeMutation represents an operation that mutates the GraphNode nodes in the graph.
type GraphNodeMutation struct {
	config
	op            Op
	typ           string
	id            *string
	label         *graphnode.Label
	props         *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GraphNode, error)
	predicates    []predicate.GraphNode
}

var _ ent.Mutation = (*GraphNodeMutation)(nil)

// graphnodeOption allows management of the mutation configuration using functional options.
type graphnodeOption func(*GraphNodeMutation)

// newGraphNodeMutation creates new mutation for the GraphNode entity.
func newGraphNodeMutation(c config, op Op, opts ...graphnodeOption) *GraphNodeMutation {
	m := &GraphNodeMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphNode,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphNodeID sets the ID field of the mutation.
func withGraphNodeID(id string) graphnodeOption {
	return func(m *GraphNodeMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphNode
		)
		m.oldValue = func(ctx context.Context) (*GraphNode, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphNode.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphNode sets the old GraphNode of the mutation.
func withGraphNode(node *GraphNode) graphnodeOption {
	return func(m *GraphNodeMutation) {
		m.oldValue = func(context.Context) (*GraphNode, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphNodeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphNodeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GraphNode entities.
func (m *GraphNodeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphNodeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphNodeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphNode.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLabel sets the "label" field.
func (m *GraphNodeMutation) SetLabel(gr graphnode.Label) {
	m.label = &gr
}

// Label returns the value of the "label" field in the mutation.
func (m *GraphNodeMutation) Label() (r graphnode.Label, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldLabel(ctx context.Context) (v graphnode.Label, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *GraphNodeMutation) ResetLabel() {
	m.label = nil
}

// SetProps sets the "props" field.
func (m *GraphNodeMutation) SetProps(value map[string]interface{}) {
	m.props = &value
}

// Props returns the value of the "props" field in the mutation.
func (m *GraphNodeMutation) Props() (r map[string]interface{}, exists bool) {
	v := m.props
	if v == nil {
		return
	}
	return *v, true
}

// OldProps returns the old "props" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldProps(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProps: %w", err)
	}
	return oldValue.Props, nil
}

// ClearProps clears the value of the "props" field.
func (m *GraphNodeMutation) ClearProps() {
	m.props = nil
	m.clearedFields[graphnode.FieldProps] = struct{}{}
}

// PropsCleared returns if the "props" field was cleared in this mutation.
func (m *GraphNodeMutation) PropsCleared() bool {
	_, ok := m.clearedFields[graphnode.FieldProps]
	return ok
}

// ResetProps resets all changes to the "props" field.
func (m *GraphNodeMutation) ResetProps() {
	m.props = nil
	delete(m.clearedFields, graphnode.FieldProps)
}

// SetCreatedAt sets the "created_at" field.
func (m *GraphNodeMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GraphNodeMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GraphNodeMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GraphNodeMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GraphNodeMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GraphNode entity.
// If the GraphNode object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphNodeMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GraphNodeMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the GraphNodeMutation builder.
func (m *GraphNodeMutation) Where(ps ...predicate.GraphNode) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphNodeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphNodeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphNode, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphNodeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphNodeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphNode).
func (m *GraphNodeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphNodeMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.label != nil {
		fields = append(fields, graphnode.FieldLabel)
	}
	if m.props != nil {
		fields = append(fields, graphnode.FieldProps)
	}
	if m.created_at != nil {
		fields = append(fields, graphnode.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, graphnode.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphNodeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphnode.FieldLabel:
		return m.Label()
	case graphnode.FieldProps:
		return m.Props()
	case graphnode.FieldCreatedAt:
		return m.CreatedAt()
	case graphnode.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphNodeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphnode.FieldLabel:
		return m.OldLabel(ctx)
	case graphnode.FieldProps:
		return m.OldProps(ctx)
	case graphnode.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case graphnode.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown GraphNode field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphNodeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphnode.FieldLabel:
		v, ok := value.(graphnode.Label)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case graphnode.FieldProps:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProps(v)
		return nil
	case graphnode.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case graphnode.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown GraphNode field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphNodeMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphNodeMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphNodeMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown GraphNode numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphNodeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(graphnode.FieldProps) {
		fields = append(fields, graphnode.FieldProps)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphNodeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphNodeMutation) ClearField(name string) error {
	switch name {
	case graphnode.FieldProps:
		m.ClearProps()
		return nil
	}
	return fmt.Errorf("unknown GraphNode nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphNodeMutation) ResetField(name string) error {
	switch name {
	case graphnode.FieldLabel:
		m.ResetLabel()
		return nil
	case graphnode.FieldProps:
		m.ResetProps()
		return nil
	case graphnode.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case graphnode.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown GraphNode field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphNodeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphNodeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphNodeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphNodeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphNodeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphNodeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphNodeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GraphNode unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphNodeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GraphNode edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op            Op
	typ           string
	id            *string
	report_type   *string
	content       *string
	file_path     *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	_case         *string
	cleared_case  bool
	done          bool
	oldValue      func(context.Context) (*Report, error)
	predicates    []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id string) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCaseID sets the "case_id" field.
func (m *ReportMutation) SetCaseID(s string) {
	m._case = &s
}

// CaseID returns the value of the "case_id" field in the mutation.
func (m *ReportMutation) CaseID() (r string, exists bool) {
	v := m._case
	if v == nil {
		return
	}
	return *v, true
}

// OldCaseID returns the old "case_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCaseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCaseID: %w", err)
	}
	return oldValue.CaseID, nil
}

// ResetCaseID resets all changes to the "case_id" field.
func (m *ReportMutation) ResetCaseID() {
	m._case = nil
}

// SetReportType sets the "report_type" field.
func (m *ReportMutation) SetReportType(s string) {
	m.report_type = &s
}

// ReportType returns the value of the "report_type" field in the mutation.
func (m *ReportMutation) ReportType() (r string, exists bool) {
	v := m.report_type
	if v == nil {
		return
	}
	return *v, true
}

// OldReportType returns the old "report_type" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldReportType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportType: %w", err)
	}
	return oldValue.ReportType, nil
}

// ResetReportType resets all changes to the "report_type" field.
func (m *ReportMutation) ResetReportType() {
	m.report_type = nil
}

// SetContent sets the "content" field.
func (m *ReportMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ReportMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ReportMutation) ResetContent() {
	m.content = nil
}

// SetFilePath sets the "file_path" field.
func (m *ReportMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *ReportMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ClearFilePath clears the value of the "file_path" field.
func (m *ReportMutation) ClearFilePath() {
	m.file_path = nil
	m.clearedFields[report.FieldFilePath] = struct{}{}
}

// FilePathCleared returns if the "file_path" field was cleared in this mutation.
func (m *ReportMutation) FilePathCleared() bool {
	_, ok := m.clearedFields[report.FieldFilePath]
	return ok
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *ReportMutation) ResetFilePath() {
	m.file_path = nil
	delete(m.clearedFields, report.FieldFilePath)
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCase clears the "case" edge to the CaseRecord entity.
func (m *ReportMutation) ClearCase() {
	m.cleared_case = true
	m.clearedFields[report.FieldCaseID] = struct{}{}
}

// CaseCleared reports if the "case" edge to the CaseRecord entity was cleared.
func (m *ReportMutation) CaseCleared() bool {
	return m.cleared_case
}

// CaseIDs returns the "case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CaseID instead. It exists only for internal usage by the builders.
func (m *ReportMutation) CaseIDs() (ids []string) {
	if id := m._case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCase resets all changes to the "case" edge.
func (m *ReportMutation) ResetCase() {
	m._case = nil
	m.cleared_case = false
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m._case != nil {
		fields = append(fields, report.FieldCaseID)
	}
	if m.report_type != nil {
		fields = append(fields, report.FieldReportType)
	}
	if m.content != nil {
		fields = append(fields, report.FieldContent)
	}
	if m.file_path != nil {
		fields = append(fields, report.FieldFilePath)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldCaseID:
		return m.CaseID()
	case report.FieldReportType:
		return m.ReportType()
	case report.FieldContent:
		return m.Content()
	case report.FieldFilePath:
		return m.FilePath()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldCaseID:
		return m.OldCaseID(ctx)
	case report.FieldReportType:
		return m.OldReportType(ctx)
	case report.FieldContent:
		return m.OldContent(ctx)
	case report.FieldFilePath:
		return m.OldFilePath(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCaseID(v)
		return nil
	case report.FieldReportType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportType(v)
		return nil
	case report.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case report.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(report.FieldFilePath) {
		fields = append(fields, report.FieldFilePath)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	switch name {
	case report.FieldFilePath:
		m.ClearFilePath()
		return nil
	}
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldCaseID:
		m.ResetCaseID()
		return nil
	case report.FieldReportType:
		m.ResetReportType()
		return nil
	case report.FieldContent:
		m.ResetContent()
		return nil
	case report.FieldFilePath:
		m.ResetFilePath()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m._case != nil {
		edges = append(edges, report.EdgeCase)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeCase:
		if id := m._case; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleared_case {
		edges = append(edges, report.EdgeCase)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeCase:
		return m.cleared_case
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	case report.EdgeCase:
		m.ClearCase()
		return nil
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeCase:
		m.ResetCase()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/secopshq/caseflow/ent/caserecord"
)

// CaseRecord is the model entity for the CaseRecord schema.
type CaseRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity string `json:"severity,omitempty"`
	// Status holds the value of the "status" field.
	Status caserecord.Status `json:"status,omitempty"`
	// Pipeline stage currently executing
	CurrentStep string `json:"current_step,omitempty"`
	// AutonomyLevel holds the value of the "autonomy_level" field.
	AutonomyLevel string `json:"autonomy_level,omitempty"`
	// Canonical entity bag: type -> normalized values
	Entities map[string][]string `json:"entities,omitempty"`
	// ThreatClassification holds the value of the "threat_classification" field.
	ThreatClassification string `json:"threat_classification,omitempty"`
	// Accumulated LLM spend in USD
	ActualCost float64 `json:"actual_cost,omitempty"`
	// ActualTokens holds the value of the "actual_tokens" field.
	ActualTokens int `json:"actual_tokens,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CaseRecordQuery when eager-loading is set.
	Edges        CaseRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CaseRecordEdges holds the relations/edges for other nodes in the graph.
type CaseRecordEdges struct {
	// AuditSteps holds the value of the audit_steps edge.
	AuditSteps []*AuditStep `json:"audit_steps,omitempty"`
	// Approvals holds the value of the approvals edge.
	Approvals []*Approval `json:"approvals,omitempty"`
	// AgentExecutions holds the value of the agent_executions edge.
	AgentExecutions []*AgentExecution `json:"agent_executions,omitempty"`
	// Reports holds the value of the reports edge.
	Reports []*Report `json:"reports,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// AuditStepsOrErr returns the AuditSteps value or an error if the edge
// was not loaded in eager-loading.
func (e CaseRecordEdges) AuditStepsOrErr() ([]*AuditStep, error) {
	if e.loadedTypes[0] {
		return e.AuditSteps, nil
	}
	return nil, &NotLoadedError{edge: "audit_steps"}
}

// ApprovalsOrErr returns the Approvals value or an error if the edge
// was not loaded in eager-loading.
func (e CaseRecordEdges) ApprovalsOrErr() ([]*Approval, error) {
	if e.loadedTypes[1] {
		return e.Approvals, nil
	}
	return nil, &NotLoadedError{edge: "approvals"}
}

// AgentExecutionsOrErr returns the AgentExecutions value or an error if the edge
// was not loaded in eager-loading.
func (e CaseRecordEdges) AgentExecutionsOrErr() ([]*AgentExecution, error) {
	if e.loadedTypes[2] {
		return e.AgentExecutions, nil
	}
	return nil, &NotLoadedError{edge: "agent_executions"}
}

// ReportsOrErr returns the Reports value or an error if the edge
// was not loaded in eager-loading.
func (e CaseRecordEdges) ReportsOrErr() ([]*Report, error) {
	if e.loadedTypes[3] {
		return e.Reports, nil
	}
	return nil, &NotLoadedError{edge: "reports"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaseRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case caserecord.FieldEntities:
			values[i] = new([]byte)
		case caserecord.FieldActualCost:
			values[i] = new(sql.NullFloat64)
		case caserecord.FieldActualTokens:
			values[i] = new(sql.NullInt64)
		case caserecord.FieldID, caserecord.FieldTitle, caserecord.FieldDescription, caserecord.FieldSeverity, caserecord.FieldStatus, caserecord.FieldCurrentStep, caserecord.FieldAutonomyLevel, caserecord.FieldThreatClassification, caserecord.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case caserecord.FieldCreatedAt, caserecord.FieldUpdatedAt, caserecord.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaseRecord fields.
func (_m *CaseRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case caserecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case caserecord.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case caserecord.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case caserecord.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = value.String
			}
		case caserecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = caserecord.Status(value.String)
			}
		case caserecord.FieldCurrentStep:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_step", values[i])
			} else if value.Valid {
				_m.CurrentStep = value.String
			}
		case caserecord.FieldAutonomyLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field autonomy_level", values[i])
			} else if value.Valid {
				_m.AutonomyLevel = value.String
			}
		case caserecord.FieldEntities:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field entities", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Entities); err != nil {
					return fmt.Errorf("unmarshal field entities: %w", err)
				}
			}
		case caserecord.FieldThreatClassification:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field threat_classification", values[i])
			} else if value.Valid {
				_m.ThreatClassification = value.String
			}
		case caserecord.FieldActualCost:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_cost", values[i])
			} else if value.Valid {
				_m.ActualCost = value.Float64
			}
		case caserecord.FieldActualTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field actual_tokens", values[i])
			} else if value.Valid {
				_m.ActualTokens = int(value.Int64)
			}
		case caserecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case caserecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case caserecord.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case caserecord.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaseRecord.
// This includes values selected through modifiers, order, etc.
func (_m *CaseRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAuditSteps queries the "audit_steps" edge of the CaseRecord entity.
func (_m *CaseRecord) QueryAuditSteps() *AuditStepQuery {
	return NewCaseRecordClient(_m.config).QueryAuditSteps(_m)
}

// QueryApprovals queries the "approvals" edge of the CaseRecord entity.
func (_m *CaseRecord) QueryApprovals() *ApprovalQuery {
	return NewCaseRecordClient(_m.config).QueryApprovals(_m)
}

// QueryAgentExecutions queries the "agent_executions" edge of the CaseRecord entity.
func (_m *CaseRecord) QueryAgentExecutions() *AgentExecutionQuery {
	return NewCaseRecordClient(_m.config).QueryAgentExecutions(_m)
}

// QueryReports queries the "reports" edge of the CaseRecord entity.
func (_m *CaseRecord) QueryReports() *ReportQuery {
	return NewCaseRecordClient(_m.config).QueryReports(_m)
}

// Update returns a builder for updating this CaseRecord.
// Note that you need to call CaseRecord.Unwrap() before calling this method if this CaseRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaseRecord) Update() *CaseRecordUpdateOne {
	return NewCaseRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaseRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaseRecord) Unwrap() *CaseRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaseRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaseRecord) String() string {
	var builder strings.Builder
	builder.WriteString("CaseRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("severity=")
	builder.WriteString(_m.Severity)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_step=")
	builder.WriteString(_m.CurrentStep)
	builder.WriteString(", ")
	builder.WriteString("autonomy_level=")
	builder.WriteString(_m.AutonomyLevel)
	builder.WriteString(", ")
	builder.WriteString("entities=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entities))
	builder.WriteString(", ")
	builder.WriteString("threat_classification=")
	builder.WriteString(_m.ThreatClassification)
	builder.WriteString(", ")
	builder.WriteString("actual_cost=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActualCost))
	builder.WriteString(", ")
	builder.WriteString("actual_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActualTokens))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// CaseRecords is a parsable slice of CaseRecord.
type CaseRecords []*CaseRecord

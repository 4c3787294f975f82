// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentExecution is the predicate function for agentexecution builders.
type AgentExecution func(*sql.Selector)

// AgentPrompt is the predicate function for agentprompt builders.
type AgentPrompt func(*sql.Selector)

// Approval is the predicate function for approval builders.
type Approval func(*sql.Selector)

// AuditStep is the predicate function for auditstep builders.
type AuditStep func(*sql.Selector)

// CaseRecord is the predicate function for caserecord builders.
type CaseRecord func(*sql.Selector)

// GraphEdge is the predicate function for graphedge builders.
type GraphEdge func(*sql.Selector)

// GraphNode is the predicate function for graphnode builders.
type GraphNode func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CaseRecord holds the schema definition for a security case lifecycle row.
type CaseRecord struct {
	ent.Schema
}

// Annotations maps the entity to the "cases" table.
func (CaseRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "cases"},
	}
}

// Fields of the CaseRecord.
func (CaseRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("case_id").
			Unique().
			Immutable(),
		field.String("title").
			Optional(),
		field.Text("description").
			Optional(),
		field.String("severity").
			Optional(),
		field.Enum("status").
			Values("pending", "analyzing", "completed", "failed").
			Default("pending"),
		field.String("current_step").
			Optional().
			Comment("Pipeline stage currently executing"),
		field.String("autonomy_level").
			Optional(),
		field.JSON("entities", map[string][]string{}).
			Optional().
			Comment("Canonical entity bag: type -> normalized values"),
		field.String("threat_classification").
			Optional(),
		field.Float("actual_cost").
			Default(0).
			Comment("Accumulated LLM spend in USD"),
		field.Int("actual_tokens").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.String("error_message").
			Optional().
			Nillable(),
	}
}

// Edges of the CaseRecord.
func (CaseRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("audit_steps", AuditStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("approvals", Approval.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_executions", AgentExecution.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("reports", Report.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the CaseRecord.
func (CaseRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "created_at"),
	}
}

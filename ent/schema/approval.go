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

// Approval holds the schema definition for a human approval request bound to
// one pipeline stage of one case. Terminal states are absorbing.
type Approval struct {
	ent.Schema
}

// Annotations maps the entity to the "approvals" table.
func (Approval) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "approvals"},
	}
}

// Fields of the Approval.
func (Approval) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("approval_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.String("agent_name").
			Immutable().
			Comment("Pipeline stage awaiting the decision"),
		field.Text("description").
			Immutable(),
		field.String("autonomy_level").
			Immutable(),
		field.Enum("status").
			Values("pending", "approved", "rejected", "expired").
			Default("pending"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("expires_at").
			Immutable(),
		field.String("decided_by").
			Optional().
			Nillable(),
		field.Time("decided_at").
			Optional().
			Nillable(),
		field.Text("reason").
			Optional().
			Nillable(),
	}
}

// Edges of the Approval.
func (Approval) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", CaseRecord.Type).
			Ref("approvals").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Approval.
func (Approval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("case_id", "status"),
		index.Fields("status", "expires_at"),
	}
}

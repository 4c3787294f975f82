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

// AuditStep holds the schema definition for one hash-chained agent step.
// Rows are append-only: within a case they form a total order by seq, and
// each row's prev_hash equals the hash of the preceding row.
type AuditStep struct {
	ent.Schema
}

// Annotations maps the entity to the "audit_steps" table.
func (AuditStep) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_steps"},
	}
}

// Fields of the AuditStep.
func (AuditStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("step_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.Int("seq").
			Immutable().
			Comment("Insertion order within the case, assigned under the per-case lock"),
		field.String("version").
			Immutable(),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
		field.String("agent_name").
			Immutable(),
		field.String("agent_role").
			Immutable(),
		field.String("agent_model").
			Immutable(),
		field.String("prompt_version").
			Immutable(),
		field.String("autonomy_level").
			Immutable(),
		field.JSON("inputs", map[string]interface{}{}).
			Optional(),
		field.JSON("plan", []string{}).
			Optional(),
		field.JSON("observations", []string{}).
			Optional(),
		field.JSON("outputs", map[string]interface{}{}).
			Optional(),
		field.Int("input_tokens").
			Default(0).
			Immutable(),
		field.Int("output_tokens").
			Default(0).
			Immutable(),
		field.Int("total_tokens").
			Default(0).
			Immutable(),
		field.Float("cost_usd").
			Default(0).
			Immutable(),
		field.String("prev_hash").
			Optional().
			Nillable().
			Immutable().
			Comment("Hash of the previous step; null for the first step of a case"),
		field.String("hash").
			Immutable(),
		field.String("signature").
			Optional().
			Immutable().
			Comment("ed25519:<hex> when signing is enabled"),
	}
}

// Edges of the AuditStep.
func (AuditStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", CaseRecord.Type).
			Ref("audit_steps").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the AuditStep.
func (AuditStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "seq").
			Unique(),
		index.Fields("case_id"),
	}
}

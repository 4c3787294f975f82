package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentPrompt holds the schema definition for one versioned prompt row.
// Prompts are append-only: updates insert a new (agent_name, version) row and
// flip is_active, never rewrite content.
type AgentPrompt struct {
	ent.Schema
}

// Annotations maps the entity to the "agent_prompts" table.
func (AgentPrompt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "agent_prompts"},
	}
}

// Fields of the AgentPrompt.
func (AgentPrompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_id").
			Unique().
			Immutable(),
		field.String("agent_name").
			Immutable(),
		field.String("version").
			Immutable().
			Comment("e.g. v1.0, v1.1"),
		field.Text("content").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.String("modified_by").
			Immutable(),
		field.Bool("is_active").
			Default(true),
	}
}

// Indexes of the AgentPrompt.
func (AgentPrompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_name", "version").
			Unique(),
		index.Fields("agent_name", "is_active"),
	}
}

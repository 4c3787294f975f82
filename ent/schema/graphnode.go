package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphNode holds the schema definition for one knowledge-graph node.
// The node ID is the natural key "<label>:<key>" so merges are idempotent.
type GraphNode struct {
	ent.Schema
}

// Annotations maps the entity to the "graph_nodes" table.
func (GraphNode) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "graph_nodes"},
	}
}

// Fields of the GraphNode.
func (GraphNode) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("node_id").
			Unique().
			Immutable(),
		field.Enum("label").
			Values("Case", "Rule", "Entity", "KnowledgeItem"),
		field.JSON("props", map[string]interface{}{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the GraphNode.
func (GraphNode) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("label"),
	}
}

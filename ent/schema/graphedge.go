package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GraphEdge holds the schema definition for one knowledge-graph relationship.
type GraphEdge struct {
	ent.Schema
}

// Annotations maps the entity to the "graph_edges" table.
func (GraphEdge) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "graph_edges"},
	}
}

// Fields of the GraphEdge.
func (GraphEdge) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("edge_id").
			Unique().
			Immutable(),
		field.String("src_id").
			Immutable(),
		field.String("dst_id").
			Immutable(),
		field.Enum("rel_type").
			Values("TRIGGERED_BY", "OBSERVED_IN", "RELATES_TO"),
		field.JSON("props", map[string]interface{}{}).
			Optional().
			Comment("e.g. similarity score on RELATES_TO"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the GraphEdge.
func (GraphEdge) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("src_id", "dst_id", "rel_type").
			Unique(),
		index.Fields("src_id"),
		index.Fields("dst_id"),
	}
}

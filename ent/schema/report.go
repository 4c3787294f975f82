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

// Report holds the schema definition for a persisted report artifact.
type Report struct {
	ent.Schema
}

// Annotations maps the entity to the "reports" table.
func (Report) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "reports"},
	}
}

// Fields of the Report.
func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("report_id").
			Unique().
			Immutable(),
		field.String("case_id").
			Immutable(),
		field.String("report_type").
			Comment("incident_report, executive_summary, technical_analysis"),
		field.Text("content"),
		field.String("file_path").
			Optional().
			Comment("On-disk artifact path, when written"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Report.
func (Report) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("case", CaseRecord.Type).
			Ref("reports").
			Field("case_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Report.
func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("case_id", "report_type"),
	}
}

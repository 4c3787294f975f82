// Code generated by ent, DO NOT EDIT.

package graphnode

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// EntityLabel holds the string label denoting the graphnode type in the database.
	EntityLabel = "graph_node"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "node_id"
	// FieldLabel holds the string denoting the label field in the database.
	FieldLabel = "label"
	// FieldProps holds the string denoting the props field in the database.
	FieldProps = "props"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the graphnode in the database.
	Table = "graph_nodes"
)

// Columns holds all SQL columns for graphnode fields.
var Columns = []string{
	FieldID,
	FieldLabel,
	FieldProps,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Label defines the type for the "label" enum field.
type Label string

// Label values.
const (
	LabelCase          Label = "Case"
	LabelRule          Label = "Rule"
	LabelEntity        Label = "Entity"
	LabelKnowledgeItem Label = "KnowledgeItem"
)

func (l Label) String() string {
	return string(l)
}

// LabelValidator is a validator for the "label" field enum values. It is called by the builders before save.
func LabelValidator(l Label) error {
	switch l {
	case LabelCase, LabelRule, LabelEntity, LabelKnowledgeItem:
		return nil
	default:
		return fmt.Errorf("graphnode: invalid enum value for label field: %q", l)
	}
}

// OrderOption defines the ordering options for the GraphNode queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByLabel orders the results by the label field.
func ByLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the graphedge type in the database.
	Label = "graph_edge"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "edge_id"
	// FieldSrcID holds the string denoting the src_id field in the database.
	FieldSrcID = "src_id"
	// FieldDstID holds the string denoting the dst_id field in the database.
	FieldDstID = "dst_id"
	// FieldRelType holds the string denoting the rel_type field in the database.
	FieldRelType = "rel_type"
	// FieldProps holds the string denoting the props field in the database.
	FieldProps = "props"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the graphedge in the database.
	Table = "graph_edges"
)

// Columns holds all SQL columns for graphedge fields.
var Columns = []string{
	FieldID,
	FieldSrcID,
	FieldDstID,
	FieldRelType,
	FieldProps,
	FieldCreatedAt,
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
)

// RelType defines the type for the "rel_type" enum field.
type RelType string

// RelType values.
const (
	RelTypeTRIGGERED_BY RelType = "TRIGGERED_BY"
	RelTypeOBSERVED_IN  RelType = "OBSERVED_IN"
	RelTypeRELATES_TO   RelType = "RELATES_TO"
)

func (rt RelType) String() string {
	return string(rt)
}

// RelTypeValidator is a validator for the "rel_type" field enum values. It is called by the builders before save.
func RelTypeValidator(rt RelType) error {
	switch rt {
	case RelTypeTRIGGERED_BY, RelTypeOBSERVED_IN, RelTypeRELATES_TO:
		return nil
	default:
		return fmt.Errorf("graphedge: invalid enum value for rel_type field: %q", rt)
	}
}

// OrderOption defines the ordering options for the GraphEdge queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySrcID orders the results by the src_id field.
func BySrcID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSrcID, opts...).ToFunc()
}

// ByDstID orders the results by the dst_id field.
func ByDstID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDstID, opts...).ToFunc()
}

// ByRelType orders the results by the rel_type field.
func ByRelType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRelType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

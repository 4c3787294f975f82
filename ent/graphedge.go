// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/secopshq/caseflow/ent/graphedge"
)

// GraphEdge is the model entity for the GraphEdge schema.
type GraphEdge struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SrcID holds the value of the "src_id" field.
	SrcID string `json:"src_id,omitempty"`
	// DstID holds the value of the "dst_id" field.
	DstID string `json:"dst_id,omitempty"`
	// RelType holds the value of the "rel_type" field.
	RelType graphedge.RelType `json:"rel_type,omitempty"`
	// e.g. similarity score on RELATES_TO
	Props map[string]interface{} `json:"props,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GraphEdge) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldProps:
			values[i] = new([]byte)
		case graphedge.FieldID, graphedge.FieldSrcID, graphedge.FieldDstID, graphedge.FieldRelType:
			values[i] = new(sql.NullString)
		case graphedge.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GraphEdge fields.
func (_m *GraphEdge) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case graphedge.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case graphedge.FieldSrcID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field src_id", values[i])
			} else if value.Valid {
				_m.SrcID = value.String
			}
		case graphedge.FieldDstID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dst_id", values[i])
			} else if value.Valid {
				_m.DstID = value.String
			}
		case graphedge.FieldRelType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rel_type", values[i])
			} else if value.Valid {
				_m.RelType = graphedge.RelType(value.String)
			}
		case graphedge.FieldProps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field props", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Props); err != nil {
					return fmt.Errorf("unmarshal field props: %w", err)
				}
			}
		case graphedge.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GraphEdge.
// This includes values selected through modifiers, order, etc.
func (_m *GraphEdge) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GraphEdge.
// Note that you need to call GraphEdge.Unwrap() before calling this method if this GraphEdge
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GraphEdge) Update() *GraphEdgeUpdateOne {
	return NewGraphEdgeClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GraphEdge entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GraphEdge) Unwrap() *GraphEdge {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GraphEdge is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GraphEdge) String() string {
	var builder strings.Builder
	builder.WriteString("GraphEdge(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("src_id=")
	builder.WriteString(_m.SrcID)
	builder.WriteString(", ")
	builder.WriteString("dst_id=")
	builder.WriteString(_m.DstID)
	builder.WriteString(", ")
	builder.WriteString("rel_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelType))
	builder.WriteString(", ")
	builder.WriteString("props=")
	builder.WriteString(fmt.Sprintf("%v", _m.Props))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// GraphEdges is a parsable slice of GraphEdge.
type GraphEdges []*GraphEdge

// Code generated by ent, DO NOT EDIT.

package graphedge

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/secopshq/caseflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldID, id))
}

// SrcID applies equality check predicate on the "src_id" field. It's identical to SrcIDEQ.
func SrcID(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldSrcID, v))
}

// DstID applies equality check predicate on the "dst_id" field. It's identical to DstIDEQ.
func DstID(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldDstID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// SrcIDEQ applies the EQ predicate on the "src_id" field.
func SrcIDEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldSrcID, v))
}

// SrcIDNEQ applies the NEQ predicate on the "src_id" field.
func SrcIDNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldSrcID, v))
}

// SrcIDIn applies the In predicate on the "src_id" field.
func SrcIDIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldSrcID, vs...))
}

// SrcIDNotIn applies the NotIn predicate on the "src_id" field.
func SrcIDNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldSrcID, vs...))
}

// SrcIDGT applies the GT predicate on the "src_id" field.
func SrcIDGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldSrcID, v))
}

// SrcIDGTE applies the GTE predicate on the "src_id" field.
func SrcIDGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldSrcID, v))
}

// SrcIDLT applies the LT predicate on the "src_id" field.
func SrcIDLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldSrcID, v))
}

// SrcIDLTE applies the LTE predicate on the "src_id" field.
func SrcIDLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldSrcID, v))
}

// SrcIDContains applies the Contains predicate on the "src_id" field.
func SrcIDContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldSrcID, v))
}

// SrcIDHasPrefix applies the HasPrefix predicate on the "src_id" field.
func SrcIDHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldSrcID, v))
}

// SrcIDHasSuffix applies the HasSuffix predicate on the "src_id" field.
func SrcIDHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldSrcID, v))
}

// SrcIDEqualFold applies the EqualFold predicate on the "src_id" field.
func SrcIDEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldSrcID, v))
}

// SrcIDContainsFold applies the ContainsFold predicate on the "src_id" field.
func SrcIDContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldSrcID, v))
}

// DstIDEQ applies the EQ predicate on the "dst_id" field.
func DstIDEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldDstID, v))
}

// DstIDNEQ applies the NEQ predicate on the "dst_id" field.
func DstIDNEQ(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldDstID, v))
}

// DstIDIn applies the In predicate on the "dst_id" field.
func DstIDIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldDstID, vs...))
}

// DstIDNotIn applies the NotIn predicate on the "dst_id" field.
func DstIDNotIn(vs ...string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldDstID, vs...))
}

// DstIDGT applies the GT predicate on the "dst_id" field.
func DstIDGT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldDstID, v))
}

// DstIDGTE applies the GTE predicate on the "dst_id" field.
func DstIDGTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldDstID, v))
}

// DstIDLT applies the LT predicate on the "dst_id" field.
func DstIDLT(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldDstID, v))
}

// DstIDLTE applies the LTE predicate on the "dst_id" field.
func DstIDLTE(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldDstID, v))
}

// DstIDContains applies the Contains predicate on the "dst_id" field.
func DstIDContains(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContains(FieldDstID, v))
}

// DstIDHasPrefix applies the HasPrefix predicate on the "dst_id" field.
func DstIDHasPrefix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasPrefix(FieldDstID, v))
}

// DstIDHasSuffix applies the HasSuffix predicate on the "dst_id" field.
func DstIDHasSuffix(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldHasSuffix(FieldDstID, v))
}

// DstIDEqualFold applies the EqualFold predicate on the "dst_id" field.
func DstIDEqualFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEqualFold(FieldDstID, v))
}

// DstIDContainsFold applies the ContainsFold predicate on the "dst_id" field.
func DstIDContainsFold(v string) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldContainsFold(FieldDstID, v))
}

// RelTypeEQ applies the EQ predicate on the "rel_type" field.
func RelTypeEQ(v RelType) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldRelType, v))
}

// RelTypeNEQ applies the NEQ predicate on the "rel_type" field.
func RelTypeNEQ(v RelType) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldRelType, v))
}

// RelTypeIn applies the In predicate on the "rel_type" field.
func RelTypeIn(vs ...RelType) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldRelType, vs...))
}

// RelTypeNotIn applies the NotIn predicate on the "rel_type" field.
func RelTypeNotIn(vs ...RelType) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldRelType, vs...))
}

// PropsIsNil applies the IsNil predicate on the "props" field.
func PropsIsNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIsNull(FieldProps))
}

// PropsNotNil applies the NotNil predicate on the "props" field.
func PropsNotNil() predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotNull(FieldProps))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GraphEdge {
	return predicate.GraphEdge(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GraphEdge) predicate.GraphEdge {
	return predicate.GraphEdge(sql.NotPredicates(p))
}

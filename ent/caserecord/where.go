// Code generated by ent, DO NOT EDIT.

package caserecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/secopshq/caseflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldDescription, v))
}

// Severity applies equality check predicate on the "severity" field. It's identical to SeverityEQ.
func Severity(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldSeverity, v))
}

// CurrentStep applies equality check predicate on the "current_step" field. It's identical to CurrentStepEQ.
func CurrentStep(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldCurrentStep, v))
}

// AutonomyLevel applies equality check predicate on the "autonomy_level" field. It's identical to AutonomyLevelEQ.
func AutonomyLevel(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldAutonomyLevel, v))
}

// ThreatClassification applies equality check predicate on the "threat_classification" field. It's identical to ThreatClassificationEQ.
func ThreatClassification(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldThreatClassification, v))
}

// ActualCost applies equality check predicate on the "actual_cost" field. It's identical to ActualCostEQ.
func ActualCost(v float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldActualCost, v))
}

// ActualTokens applies equality check predicate on the "actual_tokens" field. It's identical to ActualTokensEQ.
func ActualTokens(v int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldActualTokens, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldDescription, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldSeverity, vs...))
}

// SeverityGT applies the GT predicate on the "severity" field.
func SeverityGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldSeverity, v))
}

// SeverityGTE applies the GTE predicate on the "severity" field.
func SeverityGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldSeverity, v))
}

// SeverityLT applies the LT predicate on the "severity" field.
func SeverityLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldSeverity, v))
}

// SeverityLTE applies the LTE predicate on the "severity" field.
func SeverityLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldSeverity, v))
}

// SeverityContains applies the Contains predicate on the "severity" field.
func SeverityContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldSeverity, v))
}

// SeverityHasPrefix applies the HasPrefix predicate on the "severity" field.
func SeverityHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldSeverity, v))
}

// SeverityHasSuffix applies the HasSuffix predicate on the "severity" field.
func SeverityHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldSeverity, v))
}

// SeverityIsNil applies the IsNil predicate on the "severity" field.
func SeverityIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldSeverity))
}

// SeverityNotNil applies the NotNil predicate on the "severity" field.
func SeverityNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldSeverity))
}

// SeverityEqualFold applies the EqualFold predicate on the "severity" field.
func SeverityEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldSeverity, v))
}

// SeverityContainsFold applies the ContainsFold predicate on the "severity" field.
func SeverityContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldSeverity, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// CurrentStepEQ applies the EQ predicate on the "current_step" field.
func CurrentStepEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldCurrentStep, v))
}

// CurrentStepNEQ applies the NEQ predicate on the "current_step" field.
func CurrentStepNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldCurrentStep, v))
}

// CurrentStepIn applies the In predicate on the "current_step" field.
func CurrentStepIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldCurrentStep, vs...))
}

// CurrentStepNotIn applies the NotIn predicate on the "current_step" field.
func CurrentStepNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldCurrentStep, vs...))
}

// CurrentStepGT applies the GT predicate on the "current_step" field.
func CurrentStepGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldCurrentStep, v))
}

// CurrentStepGTE applies the GTE predicate on the "current_step" field.
func CurrentStepGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldCurrentStep, v))
}

// CurrentStepLT applies the LT predicate on the "current_step" field.
func CurrentStepLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldCurrentStep, v))
}

// CurrentStepLTE applies the LTE predicate on the "current_step" field.
func CurrentStepLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldCurrentStep, v))
}

// CurrentStepContains applies the Contains predicate on the "current_step" field.
func CurrentStepContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldCurrentStep, v))
}

// CurrentStepHasPrefix applies the HasPrefix predicate on the "current_step" field.
func CurrentStepHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldCurrentStep, v))
}

// CurrentStepHasSuffix applies the HasSuffix predicate on the "current_step" field.
func CurrentStepHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldCurrentStep, v))
}

// CurrentStepIsNil applies the IsNil predicate on the "current_step" field.
func CurrentStepIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldCurrentStep))
}

// CurrentStepNotNil applies the NotNil predicate on the "current_step" field.
func CurrentStepNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldCurrentStep))
}

// CurrentStepEqualFold applies the EqualFold predicate on the "current_step" field.
func CurrentStepEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldCurrentStep, v))
}

// CurrentStepContainsFold applies the ContainsFold predicate on the "current_step" field.
func CurrentStepContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldCurrentStep, v))
}

// AutonomyLevelEQ applies the EQ predicate on the "autonomy_level" field.
func AutonomyLevelEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldAutonomyLevel, v))
}

// AutonomyLevelNEQ applies the NEQ predicate on the "autonomy_level" field.
func AutonomyLevelNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldAutonomyLevel, v))
}

// AutonomyLevelIn applies the In predicate on the "autonomy_level" field.
func AutonomyLevelIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldAutonomyLevel, vs...))
}

// AutonomyLevelNotIn applies the NotIn predicate on the "autonomy_level" field.
func AutonomyLevelNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldAutonomyLevel, vs...))
}

// AutonomyLevelGT applies the GT predicate on the "autonomy_level" field.
func AutonomyLevelGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldAutonomyLevel, v))
}

// AutonomyLevelGTE applies the GTE predicate on the "autonomy_level" field.
func AutonomyLevelGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldAutonomyLevel, v))
}

// AutonomyLevelLT applies the LT predicate on the "autonomy_level" field.
func AutonomyLevelLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldAutonomyLevel, v))
}

// AutonomyLevelLTE applies the LTE predicate on the "autonomy_level" field.
func AutonomyLevelLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldAutonomyLevel, v))
}

// AutonomyLevelContains applies the Contains predicate on the "autonomy_level" field.
func AutonomyLevelContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldAutonomyLevel, v))
}

// AutonomyLevelHasPrefix applies the HasPrefix predicate on the "autonomy_level" field.
func AutonomyLevelHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldAutonomyLevel, v))
}

// AutonomyLevelHasSuffix applies the HasSuffix predicate on the "autonomy_level" field.
func AutonomyLevelHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldAutonomyLevel, v))
}

// AutonomyLevelIsNil applies the IsNil predicate on the "autonomy_level" field.
func AutonomyLevelIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldAutonomyLevel))
}

// AutonomyLevelNotNil applies the NotNil predicate on the "autonomy_level" field.
func AutonomyLevelNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldAutonomyLevel))
}

// AutonomyLevelEqualFold applies the EqualFold predicate on the "autonomy_level" field.
func AutonomyLevelEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldAutonomyLevel, v))
}

// AutonomyLevelContainsFold applies the ContainsFold predicate on the "autonomy_level" field.
func AutonomyLevelContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldAutonomyLevel, v))
}

// EntitiesIsNil applies the IsNil predicate on the "entities" field.
func EntitiesIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldEntities))
}

// EntitiesNotNil applies the NotNil predicate on the "entities" field.
func EntitiesNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldEntities))
}

// ThreatClassificationEQ applies the EQ predicate on the "threat_classification" field.
func ThreatClassificationEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldThreatClassification, v))
}

// ThreatClassificationNEQ applies the NEQ predicate on the "threat_classification" field.
func ThreatClassificationNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldThreatClassification, v))
}

// ThreatClassificationIn applies the In predicate on the "threat_classification" field.
func ThreatClassificationIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldThreatClassification, vs...))
}

// ThreatClassificationNotIn applies the NotIn predicate on the "threat_classification" field.
func ThreatClassificationNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldThreatClassification, vs...))
}

// ThreatClassificationGT applies the GT predicate on the "threat_classification" field.
func ThreatClassificationGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldThreatClassification, v))
}

// ThreatClassificationGTE applies the GTE predicate on the "threat_classification" field.
func ThreatClassificationGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldThreatClassification, v))
}

// ThreatClassificationLT applies the LT predicate on the "threat_classification" field.
func ThreatClassificationLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldThreatClassification, v))
}

// ThreatClassificationLTE applies the LTE predicate on the "threat_classification" field.
func ThreatClassificationLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldThreatClassification, v))
}

// ThreatClassificationContains applies the Contains predicate on the "threat_classification" field.
func ThreatClassificationContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldThreatClassification, v))
}

// ThreatClassificationHasPrefix applies the HasPrefix predicate on the "threat_classification" field.
func ThreatClassificationHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldThreatClassification, v))
}

// ThreatClassificationHasSuffix applies the HasSuffix predicate on the "threat_classification" field.
func ThreatClassificationHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldThreatClassification, v))
}

// ThreatClassificationIsNil applies the IsNil predicate on the "threat_classification" field.
func ThreatClassificationIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldThreatClassification))
}

// ThreatClassificationNotNil applies the NotNil predicate on the "threat_classification" field.
func ThreatClassificationNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldThreatClassification))
}

// ThreatClassificationEqualFold applies the EqualFold predicate on the "threat_classification" field.
func ThreatClassificationEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldThreatClassification, v))
}

// ThreatClassificationContainsFold applies the ContainsFold predicate on the "threat_classification" field.
func ThreatClassificationContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldThreatClassification, v))
}

// ActualCostEQ applies the EQ predicate on the "actual_cost" field.
func ActualCostEQ(v float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldActualCost, v))
}

// ActualCostNEQ applies the NEQ predicate on the "actual_cost" field.
func ActualCostNEQ(v float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldActualCost, v))
}

// ActualCostIn applies the In predicate on the "actual_cost" field.
func ActualCostIn(vs ...float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldActualCost, vs...))
}

// ActualCostNotIn applies the NotIn predicate on the "actual_cost" field.
func ActualCostNotIn(vs ...float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldActualCost, vs...))
}

// ActualCostGT applies the GT predicate on the "actual_cost" field.
func ActualCostGT(v float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldActualCost, v))
}

// ActualCostGTE applies the GTE predicate on the "actual_cost" field.
func ActualCostGTE(v float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldActualCost, v))
}

// ActualCostLT applies the LT predicate on the "actual_cost" field.
func ActualCostLT(v float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldActualCost, v))
}

// ActualCostLTE applies the LTE predicate on the "actual_cost" field.
func ActualCostLTE(v float64) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldActualCost, v))
}

// ActualTokensEQ applies the EQ predicate on the "actual_tokens" field.
func ActualTokensEQ(v int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldActualTokens, v))
}

// ActualTokensNEQ applies the NEQ predicate on the "actual_tokens" field.
func ActualTokensNEQ(v int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldActualTokens, v))
}

// ActualTokensIn applies the In predicate on the "actual_tokens" field.
func ActualTokensIn(vs ...int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldActualTokens, vs...))
}

// ActualTokensNotIn applies the NotIn predicate on the "actual_tokens" field.
func ActualTokensNotIn(vs ...int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldActualTokens, vs...))
}

// ActualTokensGT applies the GT predicate on the "actual_tokens" field.
func ActualTokensGT(v int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldActualTokens, v))
}

// ActualTokensGTE applies the GTE predicate on the "actual_tokens" field.
func ActualTokensGTE(v int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldActualTokens, v))
}

// ActualTokensLT applies the LT predicate on the "actual_tokens" field.
func ActualTokensLT(v int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldActualTokens, v))
}

// ActualTokensLTE applies the LTE predicate on the "actual_tokens" field.
func ActualTokensLTE(v int) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldActualTokens, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldCompletedAt))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.CaseRecord {
	return predicate.CaseRecord(sql.FieldContainsFold(FieldErrorMessage, v))
}

// HasAuditSteps applies the HasEdge predicate on the "audit_steps" edge.
func HasAuditSteps() predicate.CaseRecord {
	return predicate.CaseRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AuditStepsTable, AuditStepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAuditStepsWith applies the HasEdge predicate on the "audit_steps" edge with a given conditions (other predicates).
func HasAuditStepsWith(preds ...predicate.AuditStep) predicate.CaseRecord {
	return predicate.CaseRecord(func(s *sql.Selector) {
		step := newAuditStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasApprovals applies the HasEdge predicate on the "approvals" edge.
func HasApprovals() predicate.CaseRecord {
	return predicate.CaseRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ApprovalsTable, ApprovalsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasApprovalsWith applies the HasEdge predicate on the "approvals" edge with a given conditions (other predicates).
func HasApprovalsWith(preds ...predicate.Approval) predicate.CaseRecord {
	return predicate.CaseRecord(func(s *sql.Selector) {
		step := newApprovalsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAgentExecutions applies the HasEdge predicate on the "agent_executions" edge.
func HasAgentExecutions() predicate.CaseRecord {
	return predicate.CaseRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AgentExecutionsTable, AgentExecutionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentExecutionsWith applies the HasEdge predicate on the "agent_executions" edge with a given conditions (other predicates).
func HasAgentExecutionsWith(preds ...predicate.AgentExecution) predicate.CaseRecord {
	return predicate.CaseRecord(func(s *sql.Selector) {
		step := newAgentExecutionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasReports applies the HasEdge predicate on the "reports" edge.
func HasReports() predicate.CaseRecord {
	return predicate.CaseRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ReportsTable, ReportsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasReportsWith applies the HasEdge predicate on the "reports" edge with a given conditions (other predicates).
func HasReportsWith(preds ...predicate.Report) predicate.CaseRecord {
	return predicate.CaseRecord(func(s *sql.Selector) {
		step := newReportsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CaseRecord) predicate.CaseRecord {
	return predicate.CaseRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CaseRecord) predicate.CaseRecord {
	return predicate.CaseRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CaseRecord) predicate.CaseRecord {
	return predicate.CaseRecord(sql.NotPredicates(p))
}

// Code generated by ent, DO NOT EDIT.

package auditstep

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/secopshq/caseflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldID, id))
}

// CaseID applies equality check predicate on the "case_id" field. It's identical to CaseIDEQ.
func CaseID(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldCaseID, v))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldSeq, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldVersion, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldTimestamp, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldAgentName, v))
}

// AgentRole applies equality check predicate on the "agent_role" field. It's identical to AgentRoleEQ.
func AgentRole(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldAgentRole, v))
}

// AgentModel applies equality check predicate on the "agent_model" field. It's identical to AgentModelEQ.
func AgentModel(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldAgentModel, v))
}

// PromptVersion applies equality check predicate on the "prompt_version" field. It's identical to PromptVersionEQ.
func PromptVersion(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldPromptVersion, v))
}

// AutonomyLevel applies equality check predicate on the "autonomy_level" field. It's identical to AutonomyLevelEQ.
func AutonomyLevel(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldAutonomyLevel, v))
}

// InputTokens applies equality check predicate on the "input_tokens" field. It's identical to InputTokensEQ.
func InputTokens(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldInputTokens, v))
}

// OutputTokens applies equality check predicate on the "output_tokens" field. It's identical to OutputTokensEQ.
func OutputTokens(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldOutputTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldTotalTokens, v))
}

// CostUsd applies equality check predicate on the "cost_usd" field. It's identical to CostUsdEQ.
func CostUsd(v float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldCostUsd, v))
}

// PrevHash applies equality check predicate on the "prev_hash" field. It's identical to PrevHashEQ.
func PrevHash(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldPrevHash, v))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldHash, v))
}

// Signature applies equality check predicate on the "signature" field. It's identical to SignatureEQ.
func Signature(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldSignature, v))
}

// CaseIDEQ applies the EQ predicate on the "case_id" field.
func CaseIDEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldCaseID, v))
}

// CaseIDNEQ applies the NEQ predicate on the "case_id" field.
func CaseIDNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldCaseID, v))
}

// CaseIDIn applies the In predicate on the "case_id" field.
func CaseIDIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldCaseID, vs...))
}

// CaseIDNotIn applies the NotIn predicate on the "case_id" field.
func CaseIDNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldCaseID, vs...))
}

// CaseIDGT applies the GT predicate on the "case_id" field.
func CaseIDGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldCaseID, v))
}

// CaseIDGTE applies the GTE predicate on the "case_id" field.
func CaseIDGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldCaseID, v))
}

// CaseIDLT applies the LT predicate on the "case_id" field.
func CaseIDLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldCaseID, v))
}

// CaseIDLTE applies the LTE predicate on the "case_id" field.
func CaseIDLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldCaseID, v))
}

// CaseIDContains applies the Contains predicate on the "case_id" field.
func CaseIDContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldCaseID, v))
}

// CaseIDHasPrefix applies the HasPrefix predicate on the "case_id" field.
func CaseIDHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldCaseID, v))
}

// CaseIDHasSuffix applies the HasSuffix predicate on the "case_id" field.
func CaseIDHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldCaseID, v))
}

// CaseIDEqualFold applies the EqualFold predicate on the "case_id" field.
func CaseIDEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldCaseID, v))
}

// CaseIDContainsFold applies the ContainsFold predicate on the "case_id" field.
func CaseIDContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldCaseID, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldSeq, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldVersion, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldTimestamp, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldAgentName, v))
}

// AgentRoleEQ applies the EQ predicate on the "agent_role" field.
func AgentRoleEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldAgentRole, v))
}

// AgentRoleNEQ applies the NEQ predicate on the "agent_role" field.
func AgentRoleNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldAgentRole, v))
}

// AgentRoleIn applies the In predicate on the "agent_role" field.
func AgentRoleIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldAgentRole, vs...))
}

// AgentRoleNotIn applies the NotIn predicate on the "agent_role" field.
func AgentRoleNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldAgentRole, vs...))
}

// AgentRoleGT applies the GT predicate on the "agent_role" field.
func AgentRoleGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldAgentRole, v))
}

// AgentRoleGTE applies the GTE predicate on the "agent_role" field.
func AgentRoleGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldAgentRole, v))
}

// AgentRoleLT applies the LT predicate on the "agent_role" field.
func AgentRoleLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldAgentRole, v))
}

// AgentRoleLTE applies the LTE predicate on the "agent_role" field.
func AgentRoleLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldAgentRole, v))
}

// AgentRoleContains applies the Contains predicate on the "agent_role" field.
func AgentRoleContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldAgentRole, v))
}

// AgentRoleHasPrefix applies the HasPrefix predicate on the "agent_role" field.
func AgentRoleHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldAgentRole, v))
}

// AgentRoleHasSuffix applies the HasSuffix predicate on the "agent_role" field.
func AgentRoleHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldAgentRole, v))
}

// AgentRoleEqualFold applies the EqualFold predicate on the "agent_role" field.
func AgentRoleEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldAgentRole, v))
}

// AgentRoleContainsFold applies the ContainsFold predicate on the "agent_role" field.
func AgentRoleContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldAgentRole, v))
}

// AgentModelEQ applies the EQ predicate on the "agent_model" field.
func AgentModelEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldAgentModel, v))
}

// AgentModelNEQ applies the NEQ predicate on the "agent_model" field.
func AgentModelNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldAgentModel, v))
}

// AgentModelIn applies the In predicate on the "agent_model" field.
func AgentModelIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldAgentModel, vs...))
}

// AgentModelNotIn applies the NotIn predicate on the "agent_model" field.
func AgentModelNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldAgentModel, vs...))
}

// AgentModelGT applies the GT predicate on the "agent_model" field.
func AgentModelGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldAgentModel, v))
}

// AgentModelGTE applies the GTE predicate on the "agent_model" field.
func AgentModelGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldAgentModel, v))
}

// AgentModelLT applies the LT predicate on the "agent_model" field.
func AgentModelLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldAgentModel, v))
}

// AgentModelLTE applies the LTE predicate on the "agent_model" field.
func AgentModelLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldAgentModel, v))
}

// AgentModelContains applies the Contains predicate on the "agent_model" field.
func AgentModelContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldAgentModel, v))
}

// AgentModelHasPrefix applies the HasPrefix predicate on the "agent_model" field.
func AgentModelHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldAgentModel, v))
}

// AgentModelHasSuffix applies the HasSuffix predicate on the "agent_model" field.
func AgentModelHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldAgentModel, v))
}

// AgentModelEqualFold applies the EqualFold predicate on the "agent_model" field.
func AgentModelEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldAgentModel, v))
}

// AgentModelContainsFold applies the ContainsFold predicate on the "agent_model" field.
func AgentModelContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldAgentModel, v))
}

// PromptVersionEQ applies the EQ predicate on the "prompt_version" field.
func PromptVersionEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldPromptVersion, v))
}

// PromptVersionNEQ applies the NEQ predicate on the "prompt_version" field.
func PromptVersionNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldPromptVersion, v))
}

// PromptVersionIn applies the In predicate on the "prompt_version" field.
func PromptVersionIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldPromptVersion, vs...))
}

// PromptVersionNotIn applies the NotIn predicate on the "prompt_version" field.
func PromptVersionNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldPromptVersion, vs...))
}

// PromptVersionGT applies the GT predicate on the "prompt_version" field.
func PromptVersionGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldPromptVersion, v))
}

// PromptVersionGTE applies the GTE predicate on the "prompt_version" field.
func PromptVersionGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldPromptVersion, v))
}

// PromptVersionLT applies the LT predicate on the "prompt_version" field.
func PromptVersionLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldPromptVersion, v))
}

// PromptVersionLTE applies the LTE predicate on the "prompt_version" field.
func PromptVersionLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldPromptVersion, v))
}

// PromptVersionContains applies the Contains predicate on the "prompt_version" field.
func PromptVersionContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldPromptVersion, v))
}

// PromptVersionHasPrefix applies the HasPrefix predicate on the "prompt_version" field.
func PromptVersionHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldPromptVersion, v))
}

// PromptVersionHasSuffix applies the HasSuffix predicate on the "prompt_version" field.
func PromptVersionHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldPromptVersion, v))
}

// PromptVersionEqualFold applies the EqualFold predicate on the "prompt_version" field.
func PromptVersionEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldPromptVersion, v))
}

// PromptVersionContainsFold applies the ContainsFold predicate on the "prompt_version" field.
func PromptVersionContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldPromptVersion, v))
}

// AutonomyLevelEQ applies the EQ predicate on the "autonomy_level" field.
func AutonomyLevelEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldAutonomyLevel, v))
}

// AutonomyLevelNEQ applies the NEQ predicate on the "autonomy_level" field.
func AutonomyLevelNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldAutonomyLevel, v))
}

// AutonomyLevelIn applies the In predicate on the "autonomy_level" field.
func AutonomyLevelIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldAutonomyLevel, vs...))
}

// AutonomyLevelNotIn applies the NotIn predicate on the "autonomy_level" field.
func AutonomyLevelNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldAutonomyLevel, vs...))
}

// AutonomyLevelGT applies the GT predicate on the "autonomy_level" field.
func AutonomyLevelGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldAutonomyLevel, v))
}

// AutonomyLevelGTE applies the GTE predicate on the "autonomy_level" field.
func AutonomyLevelGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldAutonomyLevel, v))
}

// AutonomyLevelLT applies the LT predicate on the "autonomy_level" field.
func AutonomyLevelLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldAutonomyLevel, v))
}

// AutonomyLevelLTE applies the LTE predicate on the "autonomy_level" field.
func AutonomyLevelLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldAutonomyLevel, v))
}

// AutonomyLevelContains applies the Contains predicate on the "autonomy_level" field.
func AutonomyLevelContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldAutonomyLevel, v))
}

// AutonomyLevelHasPrefix applies the HasPrefix predicate on the "autonomy_level" field.
func AutonomyLevelHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldAutonomyLevel, v))
}

// AutonomyLevelHasSuffix applies the HasSuffix predicate on the "autonomy_level" field.
func AutonomyLevelHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldAutonomyLevel, v))
}

// AutonomyLevelEqualFold applies the EqualFold predicate on the "autonomy_level" field.
func AutonomyLevelEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldAutonomyLevel, v))
}

// AutonomyLevelContainsFold applies the ContainsFold predicate on the "autonomy_level" field.
func AutonomyLevelContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldAutonomyLevel, v))
}

// InputsIsNil applies the IsNil predicate on the "inputs" field.
func InputsIsNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIsNull(FieldInputs))
}

// InputsNotNil applies the NotNil predicate on the "inputs" field.
func InputsNotNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotNull(FieldInputs))
}

// PlanIsNil applies the IsNil predicate on the "plan" field.
func PlanIsNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIsNull(FieldPlan))
}

// PlanNotNil applies the NotNil predicate on the "plan" field.
func PlanNotNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotNull(FieldPlan))
}

// ObservationsIsNil applies the IsNil predicate on the "observations" field.
func ObservationsIsNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIsNull(FieldObservations))
}

// ObservationsNotNil applies the NotNil predicate on the "observations" field.
func ObservationsNotNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotNull(FieldObservations))
}

// OutputsIsNil applies the IsNil predicate on the "outputs" field.
func OutputsIsNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIsNull(FieldOutputs))
}

// OutputsNotNil applies the NotNil predicate on the "outputs" field.
func OutputsNotNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotNull(FieldOutputs))
}

// InputTokensEQ applies the EQ predicate on the "input_tokens" field.
func InputTokensEQ(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldInputTokens, v))
}

// InputTokensNEQ applies the NEQ predicate on the "input_tokens" field.
func InputTokensNEQ(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldInputTokens, v))
}

// InputTokensIn applies the In predicate on the "input_tokens" field.
func InputTokensIn(vs ...int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldInputTokens, vs...))
}

// InputTokensNotIn applies the NotIn predicate on the "input_tokens" field.
func InputTokensNotIn(vs ...int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldInputTokens, vs...))
}

// InputTokensGT applies the GT predicate on the "input_tokens" field.
func InputTokensGT(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldInputTokens, v))
}

// InputTokensGTE applies the GTE predicate on the "input_tokens" field.
func InputTokensGTE(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldInputTokens, v))
}

// InputTokensLT applies the LT predicate on the "input_tokens" field.
func InputTokensLT(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldInputTokens, v))
}

// InputTokensLTE applies the LTE predicate on the "input_tokens" field.
func InputTokensLTE(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldInputTokens, v))
}

// OutputTokensEQ applies the EQ predicate on the "output_tokens" field.
func OutputTokensEQ(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldOutputTokens, v))
}

// OutputTokensNEQ applies the NEQ predicate on the "output_tokens" field.
func OutputTokensNEQ(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldOutputTokens, v))
}

// OutputTokensIn applies the In predicate on the "output_tokens" field.
func OutputTokensIn(vs ...int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldOutputTokens, vs...))
}

// OutputTokensNotIn applies the NotIn predicate on the "output_tokens" field.
func OutputTokensNotIn(vs ...int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldOutputTokens, vs...))
}

// OutputTokensGT applies the GT predicate on the "output_tokens" field.
func OutputTokensGT(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldOutputTokens, v))
}

// OutputTokensGTE applies the GTE predicate on the "output_tokens" field.
func OutputTokensGTE(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldOutputTokens, v))
}

// OutputTokensLT applies the LT predicate on the "output_tokens" field.
func OutputTokensLT(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldOutputTokens, v))
}

// OutputTokensLTE applies the LTE predicate on the "output_tokens" field.
func OutputTokensLTE(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldOutputTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldTotalTokens, v))
}

// CostUsdEQ applies the EQ predicate on the "cost_usd" field.
func CostUsdEQ(v float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldCostUsd, v))
}

// CostUsdNEQ applies the NEQ predicate on the "cost_usd" field.
func CostUsdNEQ(v float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldCostUsd, v))
}

// CostUsdIn applies the In predicate on the "cost_usd" field.
func CostUsdIn(vs ...float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldCostUsd, vs...))
}

// CostUsdNotIn applies the NotIn predicate on the "cost_usd" field.
func CostUsdNotIn(vs ...float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldCostUsd, vs...))
}

// CostUsdGT applies the GT predicate on the "cost_usd" field.
func CostUsdGT(v float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldCostUsd, v))
}

// CostUsdGTE applies the GTE predicate on the "cost_usd" field.
func CostUsdGTE(v float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldCostUsd, v))
}

// CostUsdLT applies the LT predicate on the "cost_usd" field.
func CostUsdLT(v float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldCostUsd, v))
}

// CostUsdLTE applies the LTE predicate on the "cost_usd" field.
func CostUsdLTE(v float64) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldCostUsd, v))
}

// PrevHashEQ applies the EQ predicate on the "prev_hash" field.
func PrevHashEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldPrevHash, v))
}

// PrevHashNEQ applies the NEQ predicate on the "prev_hash" field.
func PrevHashNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldPrevHash, v))
}

// PrevHashIn applies the In predicate on the "prev_hash" field.
func PrevHashIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldPrevHash, vs...))
}

// PrevHashNotIn applies the NotIn predicate on the "prev_hash" field.
func PrevHashNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldPrevHash, vs...))
}

// PrevHashGT applies the GT predicate on the "prev_hash" field.
func PrevHashGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldPrevHash, v))
}

// PrevHashGTE applies the GTE predicate on the "prev_hash" field.
func PrevHashGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldPrevHash, v))
}

// PrevHashLT applies the LT predicate on the "prev_hash" field.
func PrevHashLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldPrevHash, v))
}

// PrevHashLTE applies the LTE predicate on the "prev_hash" field.
func PrevHashLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldPrevHash, v))
}

// PrevHashContains applies the Contains predicate on the "prev_hash" field.
func PrevHashContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldPrevHash, v))
}

// PrevHashHasPrefix applies the HasPrefix predicate on the "prev_hash" field.
func PrevHashHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldPrevHash, v))
}

// PrevHashHasSuffix applies the HasSuffix predicate on the "prev_hash" field.
func PrevHashHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldPrevHash, v))
}

// PrevHashIsNil applies the IsNil predicate on the "prev_hash" field.
func PrevHashIsNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIsNull(FieldPrevHash))
}

// PrevHashNotNil applies the NotNil predicate on the "prev_hash" field.
func PrevHashNotNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotNull(FieldPrevHash))
}

// PrevHashEqualFold applies the EqualFold predicate on the "prev_hash" field.
func PrevHashEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldPrevHash, v))
}

// PrevHashContainsFold applies the ContainsFold predicate on the "prev_hash" field.
func PrevHashContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldPrevHash, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldHash, v))
}

// SignatureEQ applies the EQ predicate on the "signature" field.
func SignatureEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEQ(FieldSignature, v))
}

// SignatureNEQ applies the NEQ predicate on the "signature" field.
func SignatureNEQ(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNEQ(FieldSignature, v))
}

// SignatureIn applies the In predicate on the "signature" field.
func SignatureIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIn(FieldSignature, vs...))
}

// SignatureNotIn applies the NotIn predicate on the "signature" field.
func SignatureNotIn(vs ...string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotIn(FieldSignature, vs...))
}

// SignatureGT applies the GT predicate on the "signature" field.
func SignatureGT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGT(FieldSignature, v))
}

// SignatureGTE applies the GTE predicate on the "signature" field.
func SignatureGTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldGTE(FieldSignature, v))
}

// SignatureLT applies the LT predicate on the "signature" field.
func SignatureLT(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLT(FieldSignature, v))
}

// SignatureLTE applies the LTE predicate on the "signature" field.
func SignatureLTE(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldLTE(FieldSignature, v))
}

// SignatureContains applies the Contains predicate on the "signature" field.
func SignatureContains(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContains(FieldSignature, v))
}

// SignatureHasPrefix applies the HasPrefix predicate on the "signature" field.
func SignatureHasPrefix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasPrefix(FieldSignature, v))
}

// SignatureHasSuffix applies the HasSuffix predicate on the "signature" field.
func SignatureHasSuffix(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldHasSuffix(FieldSignature, v))
}

// SignatureIsNil applies the IsNil predicate on the "signature" field.
func SignatureIsNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldIsNull(FieldSignature))
}

// SignatureNotNil applies the NotNil predicate on the "signature" field.
func SignatureNotNil() predicate.AuditStep {
	return predicate.AuditStep(sql.FieldNotNull(FieldSignature))
}

// SignatureEqualFold applies the EqualFold predicate on the "signature" field.
func SignatureEqualFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldEqualFold(FieldSignature, v))
}

// SignatureContainsFold applies the ContainsFold predicate on the "signature" field.
func SignatureContainsFold(v string) predicate.AuditStep {
	return predicate.AuditStep(sql.FieldContainsFold(FieldSignature, v))
}

// HasCase applies the HasEdge predicate on the "case" edge.
func HasCase() predicate.AuditStep {
	return predicate.AuditStep(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CaseTable, CaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCaseWith applies the HasEdge predicate on the "case" edge with a given conditions (other predicates).
func HasCaseWith(preds ...predicate.CaseRecord) predicate.AuditStep {
	return predicate.AuditStep(func(s *sql.Selector) {
		step := newCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AuditStep) predicate.AuditStep {
	return predicate.AuditStep(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AuditStep) predicate.AuditStep {
	return predicate.AuditStep(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AuditStep) predicate.AuditStep {
	return predicate.AuditStep(sql.NotPredicates(p))
}

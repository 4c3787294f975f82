// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/secopshq/caseflow/ent/agentexecution"
	"github.com/secopshq/caseflow/ent/agentprompt"
	"github.com/secopshq/caseflow/ent/approval"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/ent/graphedge"
	"github.com/secopshq/caseflow/ent/graphnode"
	"github.com/secopshq/caseflow/ent/report"
	"github.com/secopshq/caseflow/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentexecutionFields := schema.AgentExecution{}.Fields()
	_ = agentexecutionFields
	// agentexecutionDescInputTokens is the schema descriptor for input_tokens field.
	agentexecutionDescInputTokens := agentexecutionFields[8].Descriptor()
	// agentexecution.DefaultInputTokens holds the default value on creation for the input_tokens field.
	agentexecution.DefaultInputTokens = agentexecutionDescInputTokens.Default.(int)
	// agentexecutionDescOutputTokens is the schema descriptor for output_tokens field.
	agentexecutionDescOutputTokens := agentexecutionFields[9].Descriptor()
	// agentexecution.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	agentexecution.DefaultOutputTokens = agentexecutionDescOutputTokens.Default.(int)
	// agentexecutionDescTotalTokens is the schema descriptor for total_tokens field.
	agentexecutionDescTotalTokens := agentexecutionFields[10].Descriptor()
	// agentexecution.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	agentexecution.DefaultTotalTokens = agentexecutionDescTotalTokens.Default.(int)
	// agentexecutionDescCostUsd is the schema descriptor for cost_usd field.
	agentexecutionDescCostUsd := agentexecutionFields[11].Descriptor()
	// agentexecution.DefaultCostUsd holds the default value on creation for the cost_usd field.
	agentexecution.DefaultCostUsd = agentexecutionDescCostUsd.Default.(float64)
	// agentexecutionDescCreatedAt is the schema descriptor for created_at field.
	agentexecutionDescCreatedAt := agentexecutionFields[12].Descriptor()
	// agentexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentexecution.DefaultCreatedAt = agentexecutionDescCreatedAt.Default.(func() time.Time)
	agentpromptFields := schema.AgentPrompt{}.Fields()
	_ = agentpromptFields
	// agentpromptDescCreatedAt is the schema descriptor for created_at field.
	agentpromptDescCreatedAt := agentpromptFields[4].Descriptor()
	// agentprompt.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentprompt.DefaultCreatedAt = agentpromptDescCreatedAt.Default.(func() time.Time)
	// agentpromptDescIsActive is the schema descriptor for is_active field.
	agentpromptDescIsActive := agentpromptFields[6].Descriptor()
	// agentprompt.DefaultIsActive holds the default value on creation for the is_active field.
	agentprompt.DefaultIsActive = agentpromptDescIsActive.Default.(bool)
	approvalFields := schema.Approval{}.Fields()
	_ = approvalFields
	// approvalDescCreatedAt is the schema descriptor for created_at field.
	approvalDescCreatedAt := approvalFields[6].Descriptor()
	// approval.DefaultCreatedAt holds the default value on creation for the created_at field.
	approval.DefaultCreatedAt = approvalDescCreatedAt.Default.(func() time.Time)
	auditstepFields := schema.AuditStep{}.Fields()
	_ = auditstepFields
	// auditstepDescTimestamp is the schema descriptor for timestamp field.
	auditstepDescTimestamp := auditstepFields[4].Descriptor()
	// auditstep.DefaultTimestamp holds the default value on creation for the timestamp field.
	auditstep.DefaultTimestamp = auditstepDescTimestamp.Default.(func() time.Time)
	// auditstepDescInputTokens is the schema descriptor for input_tokens field.
	auditstepDescInputTokens := auditstepFields[14].Descriptor()
	// auditstep.DefaultInputTokens holds the default value on creation for the input_tokens field.
	auditstep.DefaultInputTokens = auditstepDescInputTokens.Default.(int)
	// auditstepDescOutputTokens is the schema descriptor for output_tokens field.
	auditstepDescOutputTokens := auditstepFields[15].Descriptor()
	// auditstep.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	auditstep.DefaultOutputTokens = auditstepDescOutputTokens.Default.(int)
	// auditstepDescTotalTokens is the schema descriptor for total_tokens field.
	auditstepDescTotalTokens := auditstepFields[16].Descriptor()
	// auditstep.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	auditstep.DefaultTotalTokens = auditstepDescTotalTokens.Default.(int)
	// auditstepDescCostUsd is the schema descriptor for cost_usd field.
	auditstepDescCostUsd := auditstepFields[17].Descriptor()
	// auditstep.DefaultCostUsd holds the default value on creation for the cost_usd field.
	auditstep.DefaultCostUsd = auditstepDescCostUsd.Default.(float64)
	caserecordFields := schema.CaseRecord{}.Fields()
	_ = caserecordFields
	// caserecordDescActualCost is the schema descriptor for actual_cost field.
	caserecordDescActualCost := caserecordFields[9].Descriptor()
	// caserecord.DefaultActualCost holds the default value on creation for the actual_cost field.
	caserecord.DefaultActualCost = caserecordDescActualCost.Default.(float64)
	// caserecordDescActualTokens is the schema descriptor for actual_tokens field.
	caserecordDescActualTokens := caserecordFields[10].Descriptor()
	// caserecord.DefaultActualTokens holds the default value on creation for the actual_tokens field.
	caserecord.DefaultActualTokens = caserecordDescActualTokens.Default.(int)
	// caserecordDescCreatedAt is the schema descriptor for created_at field.
	caserecordDescCreatedAt := caserecordFields[11].Descriptor()
	// caserecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	caserecord.DefaultCreatedAt = caserecordDescCreatedAt.Default.(func() time.Time)
	// caserecordDescUpdatedAt is the schema descriptor for updated_at field.
	caserecordDescUpdatedAt := caserecordFields[12].Descriptor()
	// caserecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	caserecord.DefaultUpdatedAt = caserecordDescUpdatedAt.Default.(func() time.Time)
	// caserecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	caserecord.UpdateDefaultUpdatedAt = caserecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	graphedgeFields := schema.GraphEdge{}.Fields()
	_ = graphedgeFields
	// graphedgeDescCreatedAt is the schema descriptor for created_at field.
	graphedgeDescCreatedAt := graphedgeFields[5].Descriptor()
	// graphedge.DefaultCreatedAt holds the default value on creation for the created_at field.
	graphedge.DefaultCreatedAt = graphedgeDescCreatedAt.Default.(func() time.Time)
	graphnodeFields := schema.GraphNode{}.Fields()
	_ = graphnodeFields
	// graphnodeDescCreatedAt is the schema descriptor for created_at field.
	graphnodeDescCreatedAt := graphnodeFields[3].Descriptor()
	// graphnode.DefaultCreatedAt holds the default value on creation for the created_at field.
	graphnode.DefaultCreatedAt = graphnodeDescCreatedAt.Default.(func() time.Time)
	// graphnodeDescUpdatedAt is the schema descriptor for updated_at field.
	graphnodeDescUpdatedAt := graphnodeFields[4].Descriptor()
	// graphnode.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	graphnode.DefaultUpdatedAt = graphnodeDescUpdatedAt.Default.(func() time.Time)
	// graphnode.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	graphnode.UpdateDefaultUpdatedAt = graphnodeDescUpdatedAt.UpdateDefault.(func() time.Time)
	reportFields := schema.Report{}.Fields()
	_ = reportFields
	// reportDescCreatedAt is the schema descriptor for created_at field.
	reportDescCreatedAt := reportFields[5].Descriptor()
	// report.DefaultCreatedAt holds the default value on creation for the created_at field.
	report.DefaultCreatedAt = reportDescCreatedAt.Default.(func() time.Time)
}

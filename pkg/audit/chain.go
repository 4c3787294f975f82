package audit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/pkg/models"
)

// Chain appends, reads and verifies the per-case audit log.
type Chain struct {
	client *ent.Client
	signer *Signer
	logger *slog.Logger
}

// NewChain creates a Chain. signer may be nil, in which case rows are
// written unsigned.
func NewChain(client *ent.Client, signer *Signer) *Chain {
	return &Chain{
		client: client,
		signer: signer,
		logger: slog.Default().With("component", "audit"),
	}
}

// Append assigns the step its position in the case's chain, hashes it,
// signs it when a signer is configured, and persists it. Appends to the
// same case are serialized by a row lock on the case, so seq assignment
// and prev_hash linkage cannot race.
func (c *Chain) Append(ctx context.Context, step *models.AgentStep) (*models.AgentStep, error) {
	if step.CaseID == "" {
		return nil, fmt.Errorf("append audit step: case_id is required")
	}
	if step.StepID == "" {
		step.StepID = uuid.NewString()
	}
	if step.Version == "" {
		step.Version = models.StepVersion
	}
	if step.Timestamp.IsZero() {
		step.Timestamp = time.Now()
	}
	step.Timestamp = step.Timestamp.UTC().Truncate(time.Microsecond)

	tx, err := c.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin audit tx: %w", err)
	}

	appended, err := c.appendTx(ctx, tx, step)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			c.logger.Error("Failed to rollback audit tx", "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit audit step for case %s: %w", step.CaseID, err)
	}

	c.logger.Info("Audit step appended",
		"case_id", appended.CaseID,
		"step_id", appended.StepID,
		"seq", appended.Seq,
		"agent", appended.Agent.Name)
	return appended, nil
}

func (c *Chain) appendTx(ctx context.Context, tx *ent.Tx, step *models.AgentStep) (*models.AgentStep, error) {
	// Lock the case row for the duration of the append.
	if _, err := tx.CaseRecord.Query().
		Where(caserecord.ID(step.CaseID)).
		ForUpdate().
		Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("append audit step: case %s does not exist", step.CaseID)
		}
		return nil, fmt.Errorf("lock case %s: %w", step.CaseID, err)
	}

	last, err := tx.AuditStep.Query().
		Where(auditstep.CaseID(step.CaseID)).
		Order(ent.Desc(auditstep.FieldSeq)).
		First(ctx)
	switch {
	case err == nil:
		step.Seq = last.Seq + 1
		prev := last.Hash
		step.PrevHash = &prev
	case ent.IsNotFound(err):
		step.Seq = 0
		step.PrevHash = nil
	default:
		return nil, fmt.Errorf("query last audit step for case %s: %w", step.CaseID, err)
	}

	if err := c.seal(step); err != nil {
		return nil, err
	}

	create := tx.AuditStep.Create().
		SetID(step.StepID).
		SetCaseID(step.CaseID).
		SetSeq(step.Seq).
		SetVersion(step.Version).
		SetTimestamp(step.Timestamp).
		SetAgentName(step.Agent.Name).
		SetAgentRole(step.Agent.Role).
		SetAgentModel(step.Agent.Model).
		SetPromptVersion(step.PromptVersion).
		SetAutonomyLevel(string(step.AutonomyLevel)).
		SetInputTokens(step.TokenUsage.InputTokens).
		SetOutputTokens(step.TokenUsage.OutputTokens).
		SetTotalTokens(step.TokenUsage.TotalTokens).
		SetCostUsd(step.TokenUsage.CostUSD).
		SetNillablePrevHash(step.PrevHash).
		SetHash(step.Hash)
	if step.Inputs != nil {
		create = create.SetInputs(step.Inputs)
	}
	if len(step.Plan) > 0 {
		create = create.SetPlan(step.Plan)
	}
	if len(step.Observations) > 0 {
		create = create.SetObservations(step.Observations)
	}
	if step.Outputs != nil {
		create = create.SetOutputs(step.Outputs)
	}
	if step.Signature != "" {
		create = create.SetSignature(step.Signature)
	}

	if _, err := create.Save(ctx); err != nil {
		return nil, fmt.Errorf("insert audit step for case %s: %w", step.CaseID, err)
	}
	return step, nil
}

// seal computes the step hash and signature in place. A failed signature
// attempt does not fail the append: the step is stored unsigned with an
// observation recording the failure, and is rehashed so the observation
// itself is covered by the chain.
func (c *Chain) seal(step *models.AgentStep) error {
	hash, err := HashStep(step)
	if err != nil {
		return fmt.Errorf("hash audit step %s: %w", step.StepID, err)
	}
	step.Hash = hash
	step.Signature = ""

	if c.signer == nil {
		return nil
	}
	sig, err := c.signer.Sign(hash)
	if err != nil {
		c.logger.Warn("Audit step signing failed, storing unsigned",
			"step_id", step.StepID, "error", err)
		step.Observations = append(step.Observations, fmt.Sprintf("signature_failed: %v", err))
		rehash, herr := HashStep(step)
		if herr != nil {
			return fmt.Errorf("rehash audit step %s: %w", step.StepID, herr)
		}
		step.Hash = rehash
		return nil
	}
	step.Signature = sig
	return nil
}

// CaseSteps returns a case's steps ordered by insertion. limit/offset of
// zero mean unbounded/from the start.
func (c *Chain) CaseSteps(ctx context.Context, caseID string, limit, offset int) ([]*models.AgentStep, error) {
	q := c.client.AuditStep.Query().
		Where(auditstep.CaseID(caseID)).
		Order(ent.Asc(auditstep.FieldSeq))
	if offset > 0 {
		q = q.Offset(offset)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query audit steps for case %s: %w", caseID, err)
	}

	steps := make([]*models.AgentStep, 0, len(rows))
	for _, row := range rows {
		steps = append(steps, stepFromRow(row))
	}
	return steps, nil
}

// VerifyIntegrity re-walks a case's chain and reports every broken link or
// altered row. An empty chain is valid.
func (c *Chain) VerifyIntegrity(ctx context.Context, caseID string) (models.ChainVerification, error) {
	steps, err := c.CaseSteps(ctx, caseID, 0, 0)
	if err != nil {
		return models.ChainVerification{}, err
	}
	return VerifySteps(steps), nil
}

// Summary aggregates a case's chain: step count, time span, spend and the
// distinct agents involved in first-seen order.
func (c *Chain) Summary(ctx context.Context, caseID string) (models.ChainSummary, error) {
	steps, err := c.CaseSteps(ctx, caseID, 0, 0)
	if err != nil {
		return models.ChainSummary{}, err
	}

	summary := models.ChainSummary{
		TotalSteps: len(steps),
		AgentsUsed: []string{},
	}
	seen := map[string]bool{}
	for i, step := range steps {
		if i == 0 {
			summary.FirstStep = step.Timestamp
		}
		summary.LastStep = step.Timestamp
		summary.TotalCostUSD += step.TokenUsage.CostUSD
		summary.TotalTokens += step.TokenUsage.TotalTokens
		if !seen[step.Agent.Name] {
			seen[step.Agent.Name] = true
			summary.AgentsUsed = append(summary.AgentsUsed, step.Agent.Name)
		}
	}
	return summary, nil
}

func stepFromRow(row *ent.AuditStep) *models.AgentStep {
	return &models.AgentStep{
		Version:   row.Version,
		StepID:    row.ID,
		CaseID:    row.CaseID,
		Timestamp: row.Timestamp.UTC().Truncate(time.Microsecond),
		Seq:       row.Seq,
		Agent: models.AgentInfo{
			Name:  row.AgentName,
			Role:  row.AgentRole,
			Model: row.AgentModel,
		},
		PromptVersion: row.PromptVersion,
		AutonomyLevel: models.AutonomyLevel(row.AutonomyLevel),
		Inputs:        row.Inputs,
		Plan:          row.Plan,
		Observations:  row.Observations,
		Outputs:       row.Outputs,
		TokenUsage: models.TokenUsage{
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			TotalTokens:  row.TotalTokens,
			CostUSD:      row.CostUsd,
		},
		PrevHash:  row.PrevHash,
		Hash:      row.Hash,
		Signature: row.Signature,
	}
}

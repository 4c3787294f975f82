package audit

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/auditstep"
	"github.com/secopshq/caseflow/pkg/models"
	testdb "github.com/secopshq/caseflow/test/database"
)

func newTestChain(t *testing.T) (*Chain, *ent.Client, *Signer) {
	client := testdb.NewTestClient(t)

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	signer := NewSigner(priv)

	return NewChain(client.Client, signer), client.Client, signer
}

func createTestCase(t *testing.T, client *ent.Client, caseID string) {
	_, err := client.CaseRecord.Create().
		SetID(caseID).
		SetTitle("Suspicious login burst").
		SetSeverity("high").
		Save(context.Background())
	require.NoError(t, err)
}

func newStep(caseID, agentName string) *models.AgentStep {
	return &models.AgentStep{
		CaseID: caseID,
		Agent: models.AgentInfo{
			Name:  agentName,
			Role:  "analysis",
			Model: "gpt-4o",
		},
		PromptVersion: "v1",
		AutonomyLevel: models.AutonomySupervised,
		Inputs:        map[string]any{"entities": []string{"10.0.0.5"}},
		Outputs:       map[string]any{"summary": "looks like a password spray"},
		TokenUsage: models.TokenUsage{
			InputTokens:  800,
			OutputTokens: 200,
			TotalTokens:  1000,
			CostUSD:      0.01,
		},
	}
}

func TestChainAppendAndVerify(t *testing.T) {
	chain, client, signer := newTestChain(t)
	ctx := context.Background()
	caseID := uuid.NewString()
	createTestCase(t, client, caseID)

	agents := []string{"triage", "enrichment", "investigation"}
	for _, name := range agents {
		_, err := chain.Append(ctx, newStep(caseID, name))
		require.NoError(t, err)
	}

	steps, err := chain.CaseSteps(ctx, caseID, 0, 0)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	// Sequence and linkage
	assert.Equal(t, 0, steps[0].Seq)
	assert.Nil(t, steps[0].PrevHash)
	for i := 1; i < len(steps); i++ {
		assert.Equal(t, i, steps[i].Seq)
		require.NotNil(t, steps[i].PrevHash)
		assert.Equal(t, steps[i-1].Hash, *steps[i].PrevHash)
	}

	// Every row is signed and the signature checks out
	for _, step := range steps {
		assert.True(t, signer.Verify(step.Hash, step.Signature),
			"signature on step %s should verify", step.StepID)
	}

	verification, err := chain.VerifyIntegrity(ctx, caseID)
	require.NoError(t, err)
	assert.True(t, verification.Valid)
	assert.Equal(t, 3, verification.TotalSteps)
	assert.Equal(t, 3, verification.VerifiedSteps)
	assert.Empty(t, verification.Errors)
}

func TestChainDetectsTampering(t *testing.T) {
	chain, client, _ := newTestChain(t)
	ctx := context.Background()
	caseID := uuid.NewString()
	createTestCase(t, client, caseID)

	for _, name := range []string{"triage", "enrichment", "investigation"} {
		_, err := chain.Append(ctx, newStep(caseID, name))
		require.NoError(t, err)
	}

	// Rewrite the middle step's outputs behind the chain's back.
	n, err := client.AuditStep.Update().
		Where(auditstep.CaseID(caseID), auditstep.Seq(1)).
		SetOutputs(map[string]any{"summary": "nothing to see here"}).
		Save(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	verification, err := chain.VerifyIntegrity(ctx, caseID)
	require.NoError(t, err)
	assert.False(t, verification.Valid)
	assert.Equal(t, 3, verification.TotalSteps)
	assert.Less(t, verification.VerifiedSteps, 3)
	assert.NotEmpty(t, verification.Errors)
}

func TestChainAppendRequiresCase(t *testing.T) {
	chain, _, _ := newTestChain(t)

	_, err := chain.Append(context.Background(), newStep(uuid.NewString(), "triage"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestChainSummary(t *testing.T) {
	chain, client, _ := newTestChain(t)
	ctx := context.Background()
	caseID := uuid.NewString()
	createTestCase(t, client, caseID)

	for _, name := range []string{"triage", "enrichment", "triage"} {
		_, err := chain.Append(ctx, newStep(caseID, name))
		require.NoError(t, err)
	}

	summary, err := chain.Summary(ctx, caseID)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.TotalSteps)
	assert.Equal(t, 3000, summary.TotalTokens)
	assert.InDelta(t, 0.03, summary.TotalCostUSD, 1e-9)
	assert.Equal(t, []string{"triage", "enrichment"}, summary.AgentsUsed)
	assert.False(t, summary.LastStep.Before(summary.FirstStep))
}

func TestChainUnsignedWhenNoSigner(t *testing.T) {
	client := testdb.NewTestClient(t)
	chain := NewChain(client.Client, nil)
	ctx := context.Background()
	caseID := uuid.NewString()
	createTestCase(t, client.Client, caseID)

	appended, err := chain.Append(ctx, newStep(caseID, "triage"))
	require.NoError(t, err)
	assert.Empty(t, appended.Signature)

	verification, err := chain.VerifyIntegrity(ctx, caseID)
	require.NoError(t, err)
	assert.True(t, verification.Valid)
}

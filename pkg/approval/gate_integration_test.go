package approval

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/models"
	testdb "github.com/secopshq/caseflow/test/database"
)

func gateConfig() *config.Config {
	return &config.Config{
		Approvals: config.ApprovalsConfig{
			ManualTimeout:     time.Minute,
			SupervisedTimeout: time.Minute,
			PollInterval:      10 * time.Millisecond,
			SweepInterval:     time.Minute,
		},
	}
}

func newTestGate(t *testing.T, cfg *config.Config) (*Gate, *ent.Client, *kv.Client) {
	client := testdb.NewTestClient(t)

	mr := miniredis.RunT(t)
	store := kv.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	return NewGate(client.Client, store, cfg), client.Client, store
}

func createGateCase(t *testing.T, client *ent.Client) string {
	caseID := uuid.NewString()
	_, err := client.CaseRecord.Create().
		SetID(caseID).
		SetTitle("Beaconing to known C2").
		SetSeverity("critical").
		Save(context.Background())
	require.NoError(t, err)
	return caseID
}

func TestGateApproveUnblocksWaiter(t *testing.T) {
	gate, client, _ := newTestGate(t, gateConfig())
	ctx := context.Background()
	caseID := createGateCase(t, client)

	info, err := gate.Request(ctx, caseID, "response", "execute containment actions", models.AutonomySupervised)
	require.NoError(t, err)
	assert.Equal(t, "pending", info.Status)
	assert.True(t, info.ExpiresAt.After(time.Now()))

	go func() {
		time.Sleep(50 * time.Millisecond)
		_, _ = gate.Decide(ctx, info.ApprovalID, true, "alice", "containment plan looks sound")
	}()

	outcome, err := gate.WaitFor(ctx, info.ApprovalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApproved, outcome)

	decided, err := gate.Get(ctx, info.ApprovalID)
	require.NoError(t, err)
	assert.Equal(t, "approved", decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "alice", *decided.DecidedBy)
	require.NotNil(t, decided.Reason)
	assert.Equal(t, "containment plan looks sound", *decided.Reason)
}

func TestGateDecideIsTerminal(t *testing.T) {
	gate, client, _ := newTestGate(t, gateConfig())
	ctx := context.Background()
	caseID := createGateCase(t, client)

	info, err := gate.Request(ctx, caseID, "investigation", "run SIEM queries", models.AutonomyManual)
	require.NoError(t, err)

	_, err = gate.Decide(ctx, info.ApprovalID, false, "bob", "insufficient evidence")
	require.NoError(t, err)

	// A second decision loses and changes nothing.
	again, err := gate.Decide(ctx, info.ApprovalID, true, "carol", "")
	assert.ErrorIs(t, err, ErrAlreadyDecided)
	assert.Equal(t, "rejected", again.Status)

	_, err = gate.Decide(ctx, uuid.NewString(), true, "carol", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGateWaitForExpiry(t *testing.T) {
	cfg := gateConfig()
	cfg.Approvals.SupervisedTimeout = 80 * time.Millisecond
	gate, client, _ := newTestGate(t, cfg)
	ctx := context.Background()
	caseID := createGateCase(t, client)

	info, err := gate.Request(ctx, caseID, "response", "execute containment actions", models.AutonomySupervised)
	require.NoError(t, err)

	outcome, err := gate.WaitFor(ctx, info.ApprovalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeExpired, outcome)

	expired, err := gate.Get(ctx, info.ApprovalID)
	require.NoError(t, err)
	assert.Equal(t, "expired", expired.Status)
}

func TestGateWaitCancelledLeavesPending(t *testing.T) {
	gate, client, _ := newTestGate(t, gateConfig())
	caseID := createGateCase(t, client)

	info, err := gate.Request(context.Background(), caseID, "response", "execute containment actions", models.AutonomySupervised)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	outcome, err := gate.WaitFor(waitCtx, info.ApprovalID)
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, outcome)

	still, err := gate.Get(context.Background(), info.ApprovalID)
	require.NoError(t, err)
	assert.Equal(t, "pending", still.Status)
}

func TestGateListFiltersByStatus(t *testing.T) {
	gate, client, _ := newTestGate(t, gateConfig())
	ctx := context.Background()
	caseID := createGateCase(t, client)

	first, err := gate.Request(ctx, caseID, "investigation", "run SIEM queries", models.AutonomySupervised)
	require.NoError(t, err)
	_, err = gate.Request(ctx, caseID, "response", "execute containment actions", models.AutonomySupervised)
	require.NoError(t, err)

	_, err = gate.Decide(ctx, first.ApprovalID, true, "alice", "")
	require.NoError(t, err)

	pending, err := gate.List(ctx, "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "response", pending[0].AgentName)

	all, err := gate.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := gate.ListPending(ctx, caseID)
	require.NoError(t, err)
	assert.Len(t, scoped, 1)
}

func TestSweeperExpiresStaleApprovals(t *testing.T) {
	cfg := gateConfig()
	cfg.Approvals.SupervisedTimeout = -time.Second
	gate, client, _ := newTestGate(t, cfg)
	ctx := context.Background()
	caseID := createGateCase(t, client)

	info, err := gate.Request(ctx, caseID, "response", "execute containment actions", models.AutonomySupervised)
	require.NoError(t, err)

	n, err := NewSweeper(gate).Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	expired, err := gate.Get(ctx, info.ApprovalID)
	require.NoError(t, err)
	assert.Equal(t, "expired", expired.Status)
}

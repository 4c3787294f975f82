package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/agentexecution"
	testdb "github.com/secopshq/caseflow/test/database"
)

func seedExecution(t *testing.T, client *ent.Client, caseID, agentName string, tokens int, cost float64, createdAt time.Time) {
	_, err := client.AgentExecution.Create().
		SetID(uuid.NewString()).
		SetCaseID(caseID).
		SetAgentName(agentName).
		SetStatus(agentexecution.StatusCompleted).
		SetTotalTokens(tokens).
		SetCostUsd(cost).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
}

func TestTokenStatsAggregation(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStatsService(client.Client)
	ctx := context.Background()

	_, err := client.CaseRecord.Create().SetID("case-1").Save(ctx)
	require.NoError(t, err)

	now := time.Now().UTC()
	yesterday := now.AddDate(0, 0, -1)
	lastMonth := now.AddDate(0, -1, 0)

	seedExecution(t, client.Client, "case-1", "triage", 1000, 0.01, now)
	seedExecution(t, client.Client, "case-1", "investigation", 3000, 0.03, now)
	seedExecution(t, client.Client, "case-1", "triage", 500, 0.005, yesterday)
	// Outside the window; must not be counted.
	seedExecution(t, client.Client, "case-1", "triage", 99999, 9.99, lastMonth)

	stats, err := svc.TokenStats(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, 4000, stats.TotalToday)
	assert.InDelta(t, 0.04, stats.CostToday, 1e-9)

	require.Len(t, stats.DailyUsage, 2)
	assert.Equal(t, yesterday.Format("2006-01-02"), stats.DailyUsage[0].Date)
	assert.Equal(t, 500, stats.DailyUsage[0].TotalTokens)
	assert.Equal(t, now.Format("2006-01-02"), stats.DailyUsage[1].Date)
	assert.Equal(t, 2, stats.DailyUsage[1].Executions)

	// Per-stage usage sorted by spend, window-bounded.
	require.Len(t, stats.UsageByStage, 2)
	assert.Equal(t, "investigation", stats.UsageByStage[0].Stage)
	assert.Equal(t, 3000, stats.UsageByStage[0].TotalTokens)
	assert.Equal(t, "triage", stats.UsageByStage[1].Stage)
	assert.Equal(t, 1500, stats.UsageByStage[1].TotalTokens)
}

func TestTokenStatsEmpty(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewStatsService(client.Client)

	stats, err := svc.TokenStats(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, stats.DailyUsage)
	assert.Empty(t, stats.UsageByStage)
	assert.Zero(t, stats.TotalToday)
}

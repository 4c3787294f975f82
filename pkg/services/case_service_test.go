package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/ent/agentexecution"
	entcase "github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/pkg/models"
	testdb "github.com/secopshq/caseflow/test/database"
)

func newTestCaseService(t *testing.T) *CaseService {
	client := testdb.NewTestClient(t)
	return NewCaseService(client.Client, t.TempDir())
}

func TestEnsureCaseIsIdempotent(t *testing.T) {
	svc := newTestCaseService(t)
	ctx := context.Background()

	created, err := svc.EnsureCase(ctx, "case-1", "Phishing campaign", "credential harvest", "high")
	require.NoError(t, err)
	assert.Equal(t, "case-1", created.ID)
	assert.Equal(t, entcase.StatusPending, created.Status)

	// A second call returns the existing row without touching it.
	again, err := svc.EnsureCase(ctx, "case-1", "different title", "", "low")
	require.NoError(t, err)
	assert.Equal(t, "Phishing campaign", again.Title)
	assert.Equal(t, "high", again.Severity)
}

func TestCaseLifecycle(t *testing.T) {
	svc := newTestCaseService(t)
	ctx := context.Background()

	_, err := svc.EnsureCase(ctx, "case-1", "Phishing campaign", "", "high")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAnalyzing(ctx, "case-1", models.AutonomySupervised))
	row, err := svc.Get(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, entcase.StatusAnalyzing, row.Status)
	assert.Equal(t, string(models.StageTriage), row.CurrentStep)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	entities := map[string][]string{"user": {"jdoe"}, "ip": {"10.0.0.5"}}
	usage := models.TokenUsage{TotalTokens: 4200, CostUSD: 0.042}
	require.NoError(t, svc.Finalize(ctx, "case-1", entcase.StatusCompleted, entities, "phishing", usage, ""))

	row, err = svc.Get(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, entcase.StatusCompleted, row.Status)
	assert.Equal(t, entities, row.Entities)
	assert.Equal(t, "phishing", row.ThreatClassification)
	assert.Equal(t, 4200, row.ActualTokens)
	assert.InDelta(t, 0.042, row.ActualCost, 1e-9)
	assert.Empty(t, row.CurrentStep)
	require.NotNil(t, row.CompletedAt)

	active, err = svc.Active(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFinalizeAccumulatesTotalsAcrossRuns(t *testing.T) {
	svc := newTestCaseService(t)
	ctx := context.Background()

	_, err := svc.EnsureCase(ctx, "case-1", "Phishing campaign", "", "high")
	require.NoError(t, err)

	// First run completes.
	require.NoError(t, svc.MarkAnalyzing(ctx, "case-1", models.AutonomySupervised))
	require.NoError(t, svc.Finalize(ctx, "case-1", entcase.StatusCompleted, nil, "",
		models.TokenUsage{TotalTokens: 4000, CostUSD: 0.04}, ""))

	// Re-enrichment of the same case spends on top of the first run.
	require.NoError(t, svc.MarkAnalyzing(ctx, "case-1", models.AutonomySupervised))
	require.NoError(t, svc.Finalize(ctx, "case-1", entcase.StatusCompleted, nil, "",
		models.TokenUsage{TotalTokens: 1500, CostUSD: 0.015}, ""))

	row, err := svc.Get(ctx, "case-1")
	require.NoError(t, err)
	assert.Equal(t, 5500, row.ActualTokens)
	assert.InDelta(t, 0.055, row.ActualCost, 1e-9)
}

func TestExecutionRecords(t *testing.T) {
	svc := newTestCaseService(t)
	ctx := context.Background()

	_, err := svc.EnsureCase(ctx, "case-1", "Phishing campaign", "", "high")
	require.NoError(t, err)

	execID, err := svc.StartExecution(ctx, "case-1", "triage")
	require.NoError(t, err)
	svc.FinishExecution(ctx, execID, agentexecution.StatusCompleted,
		models.TokenUsage{TotalTokens: 1000, CostUSD: 0.01}, "")

	failedID, err := svc.StartExecution(ctx, "case-1", "enrichment")
	require.NoError(t, err)
	svc.FinishExecution(ctx, failedID, agentexecution.StatusFailed,
		models.TokenUsage{}, "provider unavailable")

	svc.SkipExecution(ctx, "case-1", "response", "approval_rejected")

	executions, err := svc.Executions(ctx, "case-1")
	require.NoError(t, err)
	require.Len(t, executions, 3)

	byAgent := map[string]agentexecution.Status{}
	for _, exec := range executions {
		byAgent[exec.AgentName] = exec.Status
	}
	assert.Equal(t, agentexecution.StatusCompleted, byAgent["triage"])
	assert.Equal(t, agentexecution.StatusFailed, byAgent["enrichment"])
	assert.Equal(t, agentexecution.StatusSkipped, byAgent["response"])

	for _, exec := range executions {
		if exec.AgentName == "triage" {
			assert.Equal(t, 1000, exec.TotalTokens)
			require.NotNil(t, exec.DurationMs)
		}
		if exec.AgentName == "enrichment" {
			require.NotNil(t, exec.ErrorMessage)
			assert.Equal(t, "provider unavailable", *exec.ErrorMessage)
		}
	}
}

func TestReportsRoundTrip(t *testing.T) {
	client := testdb.NewTestClient(t)
	reportsDir := t.TempDir()
	svc := NewCaseService(client.Client, reportsDir)
	ctx := context.Background()

	_, err := svc.EnsureCase(ctx, "case-1", "Phishing campaign", "", "high")
	require.NoError(t, err)

	saved, err := svc.SaveReport(ctx, "case-1", "final_report", "# Incident Report\n\ncontent")
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	// The markdown artifact lands on disk next to the row.
	data, err := os.ReadFile(filepath.Join(reportsDir, "case-1_final_report.md"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Incident Report")

	_, err = svc.SaveReport(ctx, "case-1", "executive_summary", "summary")
	require.NoError(t, err)

	reports, err := svc.Reports(ctx, "case-1")
	require.NoError(t, err)
	assert.Len(t, reports, 2)

	report, err := svc.Report(ctx, "case-1", "final_report")
	require.NoError(t, err)
	assert.Equal(t, "# Incident Report\n\ncontent", report.Content)

	_, err = svc.Report(ctx, "case-1", "postmortem")
	assert.ErrorIs(t, err, ErrNotFound)
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/agentexecution"
	entcase "github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/pkg/agent"
	"github.com/secopshq/caseflow/pkg/approval"
	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/models"
)

type fakeRunner struct {
	calls   []string
	outputs map[string]map[string]any
	errs    map[string]error
	delays  map[string]time.Duration
	usage   models.TokenUsage
}

func (f *fakeRunner) Execute(ctx context.Context, def agent.Definition, caseID string, inputs map[string]any, plan []string, level models.AutonomyLevel) (*agent.Result, error) {
	f.calls = append(f.calls, def.Name)
	if d := f.delays[def.Name]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
		}
	}

	step := &models.AgentStep{
		StepID:        fmt.Sprintf("step-%d", len(f.calls)),
		CaseID:        caseID,
		Agent:         models.AgentInfo{Name: def.Name},
		AutonomyLevel: level,
		Inputs:        inputs,
		Plan:          plan,
	}
	if err := ctx.Err(); err != nil {
		step.Outputs = map[string]any{"error": err.Error()}
		return &agent.Result{Step: step, Err: err}, nil
	}
	if err := f.errs[def.Name]; err != nil {
		step.Outputs = map[string]any{"error": err.Error()}
		return &agent.Result{Step: step, Err: err}, nil
	}

	out := f.outputs[def.Name]
	if out == nil {
		out = map[string]any{}
	}
	step.Outputs = out
	step.TokenUsage = f.usage
	return &agent.Result{Step: step, Outputs: out}, nil
}

type fakeGate struct {
	decisions map[string]approval.Outcome
	requested []string
	byID      map[string]string
}

func (f *fakeGate) Request(_ context.Context, caseID, stage, description string, level models.AutonomyLevel) (*approval.Info, error) {
	if f.byID == nil {
		f.byID = make(map[string]string)
	}
	id := fmt.Sprintf("appr-%d", len(f.requested))
	f.requested = append(f.requested, stage)
	f.byID[id] = stage
	return &approval.Info{ApprovalID: id, CaseID: caseID, AgentName: stage, Status: "pending"}, nil
}

func (f *fakeGate) WaitFor(_ context.Context, approvalID string) (approval.Outcome, error) {
	if outcome, ok := f.decisions[f.byID[approvalID]]; ok {
		return outcome, nil
	}
	return approval.OutcomeApproved, nil
}

type fakeRecords struct {
	started     []string
	finished    map[string]agentexecution.Status
	skipped     map[string]string
	finalStatus entcase.Status
	finalErr    string
	reports     map[string]string
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{
		finished: make(map[string]agentexecution.Status),
		skipped:  make(map[string]string),
		reports:  make(map[string]string),
	}
}

func (f *fakeRecords) EnsureCase(_ context.Context, caseID, _, _, _ string) (*ent.CaseRecord, error) {
	return &ent.CaseRecord{ID: caseID}, nil
}

func (f *fakeRecords) MarkAnalyzing(context.Context, string, models.AutonomyLevel) error {
	return nil
}

func (f *fakeRecords) SetCurrentStep(context.Context, string, models.Stage) {}

func (f *fakeRecords) Finalize(_ context.Context, _ string, status entcase.Status, _ map[string][]string, _ string, _ models.TokenUsage, errMsg string) error {
	f.finalStatus = status
	f.finalErr = errMsg
	return nil
}

func (f *fakeRecords) StartExecution(_ context.Context, _, agentName string) (string, error) {
	f.started = append(f.started, agentName)
	return "exec-" + agentName, nil
}

func (f *fakeRecords) FinishExecution(_ context.Context, executionID string, status agentexecution.Status, _ models.TokenUsage, _ string) {
	f.finished[executionID] = status
}

func (f *fakeRecords) SkipExecution(_ context.Context, _, agentName, reason string) {
	f.skipped[agentName] = reason
}

func (f *fakeRecords) SaveReport(_ context.Context, _, reportType, content string) (*ent.Report, error) {
	f.reports[reportType] = content
	return &ent.Report{ID: "rep-" + reportType}, nil
}

type fakeStepChain struct {
	steps []*models.AgentStep
}

func (f *fakeStepChain) Append(_ context.Context, step *models.AgentStep) (*models.AgentStep, error) {
	step.StepID = fmt.Sprintf("ctrl-%d", len(f.steps))
	f.steps = append(f.steps, step)
	return step, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Defaults: config.DefaultsConfig{
			AutonomyLevel:  models.AutonomySupervised,
			MaxDepth:       3,
			RequestTimeout: time.Minute,
		},
		LLM: config.LLMConfig{DefaultProvider: "default"},
		Approvals: config.ApprovalsConfig{
			CriticalStages: []string{"response", "investigation"},
			PollInterval:   time.Millisecond,
		},
	}
}

func newTestOrchestrator(runner *fakeRunner, gate *fakeGate, records *fakeRecords) *Orchestrator {
	return NewOrchestrator(testConfig(), Deps{
		Runner:  runner,
		Chain:   &fakeStepChain{},
		Gate:    gate,
		Records: records,
	})
}

func TestNeedsApproval(t *testing.T) {
	o := newTestOrchestrator(&fakeRunner{}, &fakeGate{}, newFakeRecords())

	tests := []struct {
		level models.AutonomyLevel
		stage models.Stage
		want  bool
	}{
		{models.AutonomyAutonomous, models.StageResponse, false},
		{models.AutonomyManual, models.StageTriage, true},
		{models.AutonomyManual, models.StageReporting, true},
		{models.AutonomySupervised, models.StageTriage, false},
		{models.AutonomySupervised, models.StageInvestigation, true},
		{models.AutonomySupervised, models.StageResponse, true},
		{models.AutonomyResearch, models.StageResponse, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, o.needsApproval(tt.stage, tt.level),
			"%s/%s", tt.level, tt.stage)
	}
}

func TestEnrichHappyPath(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]map[string]any{
			"triage": {
				"severity": "high",
				"priority": float64(1),
				"summary":  "Brute force against the admin account",
				"entities": []any{
					map[string]any{"type": "user", "value": "CORP\\Admin", "confidence": 0.9},
				},
			},
			"correlation": {
				"attack_story": map[string]any{
					"narrative": "credential stuffing followed by lateral movement",
					"phases":    []any{"initial_access", "lateral_movement"},
				},
			},
			"response": {
				"containment_actions": []any{
					map[string]any{"action": "disable", "target": "admin", "priority": "critical"},
				},
			},
			"reporting": {
				"incident_report":   "# Incident CASE-1\n\nFull analysis.",
				"executive_summary": "Contained credential attack.",
			},
		},
		usage: models.TokenUsage{InputTokens: 800, OutputTokens: 200, TotalTokens: 1000, CostUSD: 0.01},
	}
	gate := &fakeGate{}
	records := newFakeRecords()
	o := newTestOrchestrator(runner, gate, records)

	result, err := o.Enrich(context.Background(), EnrichRequest{
		CaseID:        "CASE-1",
		AutonomyLevel: models.AutonomyAutonomous,
		MaxDepth:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Equal(t, []string{"triage", "enrichment", "investigation", "correlation", "response", "reporting"}, runner.calls)
	assert.Empty(t, gate.requested, "autonomous runs never gate")

	assert.Equal(t, 6, result.StepsCount)
	assert.Equal(t, 6000, result.TotalTokens)
	assert.InDelta(t, 0.06, result.TotalCostUSD, 1e-9)

	assert.Contains(t, result.Entities["user"], "admin", "triage entity is normalized into the bag")
	assert.Equal(t, "# Incident CASE-1\n\nFull analysis.", result.FinalReport)
	assert.Equal(t, "rep-final_report", result.Reports["final_report"])
	assert.Equal(t, "rep-executive_summary", result.Reports["executive_summary"])
	assert.Equal(t, "credential stuffing followed by lateral movement", result.AttackStory["narrative"])
	require.Len(t, result.ContainmentActions, 1)
	assert.Equal(t, "disable", result.ContainmentActions[0].Action)

	assert.Equal(t, entcase.StatusCompleted, records.finalStatus)
	assert.Equal(t, agentexecution.StatusCompleted, records.finished["exec-triage"])
}

func TestEnrichApprovalRejectionAbortsDownstream(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]map[string]any{
			"triage": {"severity": "medium", "summary": "Suspicious sign-in burst"},
		},
		usage: models.TokenUsage{TotalTokens: 100, CostUSD: 0.001},
	}
	gate := &fakeGate{decisions: map[string]approval.Outcome{
		"investigation": approval.OutcomeRejected,
	}}
	records := newFakeRecords()
	o := newTestOrchestrator(runner, gate, records)

	result, err := o.Enrich(context.Background(), EnrichRequest{
		CaseID:        "CASE-2",
		AutonomyLevel: models.AutonomySupervised,
		MaxDepth:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"triage", "enrichment"}, runner.calls,
		"rejection stops the pipeline before investigation")
	assert.Equal(t, []string{"investigation"}, gate.requested)

	for _, stage := range []string{"investigation", "correlation", "response", "reporting"} {
		assert.Equal(t, "approval_rejected", records.skipped[stage], "stage %s", stage)
	}

	var abortStep *models.AgentStep
	for _, step := range result.AuditTrail {
		for _, obs := range step.Observations {
			if obs == "approval_rejected" {
				abortStep = step
			}
		}
	}
	require.NotNil(t, abortStep, "the rejection is recorded in the audit trail")
	assert.Equal(t, "investigation", abortStep.Agent.Name)

	assert.Equal(t, StatusCompleted, result.Status)
	assert.Contains(t, result.FinalReport, "Suspicious sign-in burst",
		"the final report falls back to the triage summary")
	assert.Equal(t, entcase.StatusCompleted, records.finalStatus)
}

func TestEnrichAllStagesFail(t *testing.T) {
	llmDown := errors.New("llm call for stage: provider unavailable")
	runner := &fakeRunner{errs: map[string]error{
		"triage": llmDown, "enrichment": llmDown, "investigation": llmDown,
		"correlation": llmDown, "response": llmDown, "reporting": llmDown,
	}}
	records := newFakeRecords()
	o := newTestOrchestrator(runner, &fakeGate{}, records)

	result, err := o.Enrich(context.Background(), EnrichRequest{
		CaseID:        "CASE-3",
		AutonomyLevel: models.AutonomyAutonomous,
		MaxDepth:      3,
	})
	require.NoError(t, err, "stage failures degrade the result, not the call")

	assert.Equal(t, StatusFailed, result.Status)
	assert.Equal(t, 6, result.StepsCount, "every failed stage still left an audit step")
	assert.Zero(t, result.TotalTokens, "failed calls accrue no usage")
	assert.Zero(t, result.TotalCostUSD)
	assert.Equal(t, entcase.StatusFailed, records.finalStatus)
	assert.Contains(t, records.finalErr, "provider unavailable")
}

func TestEnrichDeadline(t *testing.T) {
	runner := &fakeRunner{
		outputs: map[string]map[string]any{
			"triage": {"severity": "low", "summary": "Noise"},
		},
		delays: map[string]time.Duration{"investigation": 300 * time.Millisecond},
	}
	records := newFakeRecords()

	cfg := testConfig()
	cfg.Defaults.RequestTimeout = 100 * time.Millisecond
	o := NewOrchestrator(cfg, Deps{
		Runner:  runner,
		Chain:   &fakeStepChain{},
		Gate:    &fakeGate{},
		Records: records,
	})

	result, err := o.Enrich(context.Background(), EnrichRequest{
		CaseID:        "CASE-4",
		AutonomyLevel: models.AutonomyAutonomous,
		MaxDepth:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusPartial, result.Status)
	assert.Equal(t, []string{"triage", "enrichment", "investigation"}, runner.calls,
		"stages after the deadline never run")
	assert.Equal(t, "deadline_exceeded", records.skipped["correlation"])
	assert.Equal(t, "deadline_exceeded", records.skipped["reporting"])

	found := false
	for _, step := range result.AuditTrail {
		for _, obs := range step.Observations {
			if obs == "deadline_exceeded" {
				found = true
			}
		}
	}
	assert.True(t, found, "the deadline is documented in the audit trail")
}

func TestEnrichMaxDepthOne(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]map[string]any{
		"triage": {"severity": "low", "summary": "benign"},
	}}
	o := newTestOrchestrator(runner, &fakeGate{}, newFakeRecords())

	result, err := o.Enrich(context.Background(), EnrichRequest{
		CaseID:        "CASE-5",
		AutonomyLevel: models.AutonomyAutonomous,
		MaxDepth:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"triage", "enrichment"}, runner.calls)
	assert.Equal(t, StatusCompleted, result.Status)
	assert.Empty(t, result.InvestigationSummary)
}

func TestEnrichRejectsConcurrentRun(t *testing.T) {
	runner := &fakeRunner{delays: map[string]time.Duration{"triage": 200 * time.Millisecond}}
	o := newTestOrchestrator(runner, &fakeGate{}, newFakeRecords())

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = o.Enrich(context.Background(), EnrichRequest{
			CaseID: "CASE-6", AutonomyLevel: models.AutonomyAutonomous, MaxDepth: 1,
		})
	}()

	require.Eventually(t, func() bool {
		return len(o.Runs().Active()) == 1
	}, time.Second, 5*time.Millisecond)

	_, err := o.Enrich(context.Background(), EnrichRequest{
		CaseID: "CASE-6", AutonomyLevel: models.AutonomyAutonomous, MaxDepth: 1,
	})
	assert.ErrorIs(t, err, ErrRunInFlight)
	<-done
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	cancelled := false
	require.True(t, r.Register("c1", func() { cancelled = true }))
	require.False(t, r.Register("c1", func() {}))
	assert.Equal(t, []string{"c1"}, r.Active())

	assert.True(t, r.Cancel("c1"))
	assert.True(t, cancelled)
	assert.False(t, r.Cancel("missing"))

	r.Unregister("c1")
	assert.Empty(t, r.Active())
}

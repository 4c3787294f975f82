package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/pkg/llm"
	"github.com/secopshq/caseflow/pkg/models"
	"github.com/secopshq/caseflow/pkg/prompt"
)

type fakePrompts struct {
	info *prompt.Info
	err  error
}

func (f *fakePrompts) Active(_ context.Context, _ string) (*prompt.Info, error) {
	return f.info, f.err
}

type fakeLLM struct {
	resp *llm.Response
	err  error
	last llm.Request
}

func (f *fakeLLM) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeChain struct {
	appended []*models.AgentStep
	err      error
}

func (f *fakeChain) Append(_ context.Context, step *models.AgentStep) (*models.AgentStep, error) {
	if f.err != nil {
		return nil, f.err
	}
	step.StepID = "step-1"
	step.Hash = "abc"
	f.appended = append(f.appended, step)
	return step, nil
}

func triageDef() Definition {
	return Definition{Name: "triage", Role: "Initial threat assessment", Provider: "default"}
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantKey string
		wantErr bool
	}{
		{"bare object", `{"severity":"high"}`, "severity", false},
		{"fenced json", "```json\n{\"severity\":\"high\"}\n```", "severity", false},
		{"fenced without language", "```\n{\"a\":1}\n```", "a", false},
		{"prose around object", `Sure! Here it is: {"a":1} hope that helps`, "a", false},
		{"not json at all", "I cannot help with that", "", true},
		{"array not object", `[1,2,3]`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ParseJSON(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantKey)
		})
	}
}

func TestExecute(t *testing.T) {
	prompts := &fakePrompts{info: &prompt.Info{Version: "v1.2", Content: "You are a triage analyst."}}
	model := &fakeLLM{resp: &llm.Response{
		Text:  `{"severity":"high","priority":1}`,
		Model: "gpt-4o",
		Usage: models.TokenUsage{InputTokens: 900, OutputTokens: 100, TotalTokens: 1000, CostUSD: 0.003},
	}}
	chain := &fakeChain{}

	rt := NewRuntime(prompts, model, chain, nil)
	result, err := rt.Execute(context.Background(), triageDef(), "case-1",
		map[string]any{"title": "Brute force"}, []string{"assess severity"}, models.AutonomySupervised)
	require.NoError(t, err)

	assert.Equal(t, "high", result.Outputs["severity"])
	assert.False(t, result.Degraded)
	assert.NoError(t, result.Err)

	require.Len(t, chain.appended, 1)
	step := chain.appended[0]
	assert.Equal(t, "v1.2", step.PromptVersion)
	assert.Equal(t, "gpt-4o", step.Agent.Model)
	assert.Equal(t, 1000, step.TokenUsage.TotalTokens)
	assert.Equal(t, []string{"assess severity"}, step.Plan)

	assert.Equal(t, "You are a triage analyst.", model.last.System)
	assert.Contains(t, model.last.User, `"title": "Brute force"`)
}

func TestExecuteMalformedResponse(t *testing.T) {
	prompts := &fakePrompts{info: &prompt.Info{Version: "v1.0", Content: "prompt"}}
	model := &fakeLLM{resp: &llm.Response{
		Text:  "I think the severity is high.",
		Model: "gpt-4o",
		Usage: models.TokenUsage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}}
	chain := &fakeChain{}

	rt := NewRuntime(prompts, model, chain, nil)
	result, err := rt.Execute(context.Background(), triageDef(), "case-1", nil, nil, models.AutonomySupervised)
	require.NoError(t, err)

	assert.True(t, result.Degraded, "malformed output degrades, never fails")
	assert.NoError(t, result.Err)
	assert.Equal(t, "I think the severity is high.", result.Outputs["raw"])

	step := chain.appended[0]
	require.Len(t, step.Observations, 1)
	assert.Contains(t, step.Observations[0], "parse_failed")
	assert.Equal(t, 15, step.TokenUsage.TotalTokens, "usage from a successful call is kept")
}

func TestExecuteLLMFailure(t *testing.T) {
	prompts := &fakePrompts{info: &prompt.Info{Version: "v1.0", Content: "prompt"}}
	model := &fakeLLM{err: errors.New("provider unavailable")}
	chain := &fakeChain{}

	rt := NewRuntime(prompts, model, chain, nil)
	result, err := rt.Execute(context.Background(), triageDef(), "case-1", nil, nil, models.AutonomySupervised)
	require.NoError(t, err, "an LLM failure still produces a step")

	assert.Error(t, result.Err)
	require.Len(t, chain.appended, 1)

	step := chain.appended[0]
	assert.Contains(t, step.Outputs["error"], "provider unavailable")
	assert.Zero(t, step.TokenUsage.TotalTokens, "failed calls accrue no usage")
	assert.Zero(t, step.TokenUsage.CostUSD)
}

func TestExecutePromptFailure(t *testing.T) {
	prompts := &fakePrompts{err: errors.New("no active prompt")}
	model := &fakeLLM{}
	chain := &fakeChain{}

	rt := NewRuntime(prompts, model, chain, nil)
	result, err := rt.Execute(context.Background(), triageDef(), "case-1", nil, nil, models.AutonomyManual)
	require.NoError(t, err)

	assert.Error(t, result.Err)
	assert.Equal(t, "unknown", chain.appended[0].PromptVersion)
	assert.Empty(t, model.last.Provider, "LLM is never called without a prompt")
}

func TestExecuteAppendFailure(t *testing.T) {
	prompts := &fakePrompts{info: &prompt.Info{Version: "v1.0", Content: "prompt"}}
	model := &fakeLLM{resp: &llm.Response{Text: `{}`, Model: "m"}}
	chain := &fakeChain{err: errors.New("db down")}

	rt := NewRuntime(prompts, model, chain, nil)
	_, err := rt.Execute(context.Background(), triageDef(), "case-1", nil, nil, models.AutonomySupervised)
	assert.Error(t, err, "losing the audit row fails the execution")
}

func TestRoster(t *testing.T) {
	roster := Roster("default")
	require.Len(t, roster, len(models.PipelineStages))
	for _, stage := range models.PipelineStages {
		def, ok := roster[stage]
		require.True(t, ok, "missing agent for stage %s", stage)
		assert.Equal(t, string(stage), def.Name)
		assert.Equal(t, "default", def.Provider)
	}
}

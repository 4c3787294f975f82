// Package agent runs one pipeline stage end to end: prompt, LLM call,
// tolerant parsing, audit append. Every execution leaves an audit step,
// including failed ones.
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/llm"
	"github.com/secopshq/caseflow/pkg/models"
	"github.com/secopshq/caseflow/pkg/prompt"
)

// Definition identifies one agent of the roster.
type Definition struct {
	Name     string
	Role     string
	Provider string
}

// PromptSource yields the active prompt for an agent.
type PromptSource interface {
	Active(ctx context.Context, agentName string) (*prompt.Info, error)
}

// StepAppender persists one step into the case's audit chain.
type StepAppender interface {
	Append(ctx context.Context, step *models.AgentStep) (*models.AgentStep, error)
}

// Result is the outcome of one agent execution. Err is set when the LLM
// or prompt layer failed; the step is appended regardless, with the
// failure recorded on outputs.error and zero token usage.
type Result struct {
	Step     *models.AgentStep
	Outputs  map[string]any
	Degraded bool
	Err      error
}

// Runtime executes agents against the shared services.
type Runtime struct {
	prompts  PromptSource
	llm      llm.Client
	chain    StepAppender
	registry *config.LLMProviderRegistry
	logger   *slog.Logger
}

// NewRuntime wires the runtime.
func NewRuntime(prompts PromptSource, llmClient llm.Client, chain StepAppender, registry *config.LLMProviderRegistry) *Runtime {
	return &Runtime{
		prompts:  prompts,
		llm:      llmClient,
		chain:    chain,
		registry: registry,
		logger:   slog.Default().With("component", "agent"),
	}
}

// FormatPrompt renders the user message: the case inputs as an indented
// JSON context block. The stored prompt text becomes the system message.
func FormatPrompt(inputs map[string]any) string {
	raw, err := json.MarshalIndent(inputs, "", "  ")
	if err != nil {
		raw = []byte("{}")
	}
	return fmt.Sprintf("## Case Context\n```json\n%s\n```", raw)
}

// Execute runs one agent invocation and appends its audit step. The
// returned Result carries the parsed outputs; Err reports prompt or LLM
// failures that produced an error step instead of real outputs.
func (r *Runtime) Execute(ctx context.Context, def Definition, caseID string, inputs map[string]any, plan []string, level models.AutonomyLevel) (*Result, error) {
	step := &models.AgentStep{
		CaseID: caseID,
		Agent: models.AgentInfo{
			Name:  def.Name,
			Role:  def.Role,
			Model: r.modelName(def.Provider),
		},
		AutonomyLevel: level,
		Inputs:        inputs,
		Plan:          plan,
	}
	result := &Result{}

	active, err := r.prompts.Active(ctx, def.Name)
	if err != nil {
		result.Err = fmt.Errorf("prompt lookup for %s: %w", def.Name, err)
		step.PromptVersion = "unknown"
		step.Outputs = map[string]any{"error": result.Err.Error()}
	} else {
		step.PromptVersion = active.Version

		resp, err := r.llm.Generate(ctx, llm.Request{
			Provider: def.Provider,
			System:   active.Content,
			User:     FormatPrompt(inputs),
		})
		if err != nil {
			// Failed calls accrue no usage; the step still documents
			// the attempt.
			result.Err = fmt.Errorf("llm call for %s: %w", def.Name, err)
			step.Outputs = map[string]any{"error": err.Error()}
		} else {
			step.Agent.Model = resp.Model
			step.TokenUsage = resp.Usage

			outputs, perr := ParseJSON(resp.Text)
			if perr != nil {
				result.Degraded = true
				step.Observations = append(step.Observations,
					fmt.Sprintf("parse_failed: %v", perr))
				outputs = map[string]any{"raw": resp.Text}
			}
			step.Outputs = outputs
			result.Outputs = outputs
		}
	}

	appended, aerr := r.chain.Append(ctx, step)
	if aerr != nil {
		// Losing the audit row is worse than losing the stage; surface it.
		return nil, fmt.Errorf("append step for %s: %w", def.Name, aerr)
	}
	result.Step = appended

	r.logger.Info("Agent executed",
		"agent", def.Name,
		"case_id", caseID,
		"prompt_version", step.PromptVersion,
		"degraded", result.Degraded,
		"failed", result.Err != nil,
		"cost_usd", step.TokenUsage.CostUSD)
	return result, nil
}

func (r *Runtime) modelName(provider string) string {
	if r.registry != nil {
		if p, err := r.registry.Get(provider); err == nil {
			return p.Model
		}
	}
	return provider
}

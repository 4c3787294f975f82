package models

import "time"

// StepVersion is the audit step record format version.
const StepVersion = "1.0"

// TokenUsage records LLM token consumption and priced cost for one call.
type TokenUsage struct {
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	TotalTokens  int     `json:"total_tokens"`
	CostUSD      float64 `json:"cost_usd"`
}

// Add accumulates another usage record into this one.
func (u *TokenUsage) Add(other TokenUsage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
	u.CostUSD += other.CostUSD
}

// AgentInfo identifies the agent that produced a step.
type AgentInfo struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Model string `json:"model"`
}

// AgentStep is one row in the hash-linked audit log describing a single
// agent invocation. Hash covers the canonical JSON of all fields except
// Hash and Signature, with PrevHash folded in.
type AgentStep struct {
	Version       string         `json:"version"`
	StepID        string         `json:"step_id"`
	CaseID        string         `json:"case_id"`
	Timestamp     time.Time      `json:"timestamp"`
	Seq           int            `json:"-"`
	Agent         AgentInfo      `json:"agent"`
	PromptVersion string         `json:"prompt_version"`
	AutonomyLevel AutonomyLevel  `json:"autonomy_level"`
	Inputs        map[string]any `json:"inputs,omitempty"`
	Plan          []string       `json:"plan,omitempty"`
	Observations  []string       `json:"observations,omitempty"`
	Outputs       map[string]any `json:"outputs,omitempty"`
	TokenUsage    TokenUsage     `json:"token_usage"`
	PrevHash      *string        `json:"prev_hash"`
	Hash          string         `json:"-"`
	Signature     string         `json:"-"`
}

// ChainVerification is the result of walking a case's audit chain.
type ChainVerification struct {
	Valid         bool     `json:"valid"`
	TotalSteps    int      `json:"total_steps"`
	VerifiedSteps int      `json:"verified_steps"`
	Errors        []string `json:"errors"`
}

// ChainSummary aggregates a case's audit chain.
type ChainSummary struct {
	TotalSteps   int       `json:"total_steps"`
	FirstStep    time.Time `json:"first_step"`
	LastStep     time.Time `json:"last_step"`
	TotalCostUSD float64   `json:"total_cost_usd"`
	TotalTokens  int       `json:"total_tokens"`
	AgentsUsed   []string  `json:"agents_used"`
}

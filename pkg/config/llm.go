package config

import (
	"fmt"
	"math"
	"sync"
)

// ModelPricing holds per-million-token prices for one model.
// Pricing constants change with providers; they live in configuration,
// never in code.
type ModelPricing struct {
	InputPerMillionUSD  float64 `yaml:"input_per_million_usd"`
	OutputPerMillionUSD float64 `yaml:"output_per_million_usd"`
}

// LLMProviderConfig defines one LLM provider entry.
type LLMProviderConfig struct {
	// Model name sent to the backend (required)
	Model string `yaml:"model"`

	// Optional custom endpoint/base URL overriding llm.base_url
	BaseURL string `yaml:"base_url,omitempty"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Pricing for cost accounting
	Pricing ModelPricing `yaml:"pricing"`
}

// LLMProviderRegistry stores LLM provider configurations in memory with
// thread-safe access.
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry.
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{providers: copied}
}

// Get retrieves an LLM provider configuration by name (thread-safe).
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// Has checks if an LLM provider exists in the registry (thread-safe).
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// Len returns the number of LLM providers in the registry (thread-safe).
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}

// CostForModel computes the USD cost of a call against the named model,
// rounded to 6 decimals. Unknown models cost zero with an error so callers
// can record the accounting gap without failing the call.
func (r *LLMProviderRegistry) CostForModel(model string, inputTokens, outputTokens int) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.providers {
		if p.Model == model {
			cost := float64(inputTokens)/1e6*p.Pricing.InputPerMillionUSD +
				float64(outputTokens)/1e6*p.Pricing.OutputPerMillionUSD
			return math.Round(cost*1e6) / 1e6, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrModelNotPriced, model)
}

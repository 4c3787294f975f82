// Package llm provides the chat-completion client used by all agents,
// with token accounting priced through the provider registry.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/models"
)

// Request is one completion call.
type Request struct {
	// Provider selects the registry entry (model, endpoint, pricing).
	Provider string
	// System and User become the chat messages.
	System string
	User   string
	// Temperature/MaxTokens override the configured defaults when non-zero.
	Temperature float64
	MaxTokens   int
}

// Response is the completion result with priced usage.
type Response struct {
	Text  string
	Model string
	Usage models.TokenUsage
}

// Client generates completions. Implementations must return zero usage
// alongside any error so failed calls never accrue cost.
type Client interface {
	Generate(ctx context.Context, req Request) (*Response, error)
}

// HTTPClient talks to an OpenAI-compatible chat completions endpoint.
type HTTPClient struct {
	cfg      config.LLMConfig
	registry *config.LLMProviderRegistry
	http     *http.Client
	logger   *slog.Logger
}

// NewHTTPClient builds the client from configuration.
func NewHTTPClient(cfg config.LLMConfig, registry *config.LLMProviderRegistry) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		cfg:      cfg,
		registry: registry,
		http:     &http.Client{Timeout: timeout},
		logger:   slog.Default().With("component", "llm"),
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Generate performs one chat completion. Usage is priced against the
// provider registry; an unpriced model yields zero cost and a warning, not
// a failed call.
func (c *HTTPClient) Generate(ctx context.Context, req Request) (*Response, error) {
	provider, err := c.registry.Get(req.Provider)
	if err != nil {
		return nil, err
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.cfg.Temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.cfg.MaxTokens
	}

	payload := chatRequest{
		Model:       provider.Model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if req.System != "" {
		payload.Messages = append(payload.Messages, chatMessage{Role: "system", Content: req.System})
	}
	payload.Messages = append(payload.Messages, chatMessage{Role: "user", Content: req.User})

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode completion request: %w", err)
	}

	endpoint := strings.TrimSuffix(c.baseURL(provider), "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if key := c.apiKey(provider); key != "" {
		httpReq.Header.Set("Authorization", "Bearer "+key)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("completion call failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion call returned %d: %s", resp.StatusCode, truncate(string(raw), 500))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode completion response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("completion error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, errors.New("completion response has no choices")
	}

	model := parsed.Model
	if model == "" {
		model = provider.Model
	}
	usage := models.TokenUsage{
		InputTokens:  parsed.Usage.PromptTokens,
		OutputTokens: parsed.Usage.CompletionTokens,
		TotalTokens:  parsed.Usage.TotalTokens,
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}

	cost, err := c.registry.CostForModel(model, usage.InputTokens, usage.OutputTokens)
	if err != nil {
		c.logger.Warn("Model has no pricing, recording zero cost",
			"model", model, "error", err)
	}
	usage.CostUSD = cost

	c.logger.Debug("Completion finished",
		"provider", req.Provider,
		"model", model,
		"total_tokens", usage.TotalTokens,
		"cost_usd", usage.CostUSD,
		"duration", time.Since(start))

	return &Response{
		Text:  parsed.Choices[0].Message.Content,
		Model: model,
		Usage: usage,
	}, nil
}

func (c *HTTPClient) baseURL(provider *config.LLMProviderConfig) string {
	if provider.BaseURL != "" {
		return provider.BaseURL
	}
	return c.cfg.BaseURL
}

func (c *HTTPClient) apiKey(provider *config.LLMProviderConfig) string {
	env := provider.APIKeyEnv
	if env == "" {
		env = c.cfg.APIKeyEnv
	}
	if env == "" {
		return ""
	}
	return os.Getenv(env)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

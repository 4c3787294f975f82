package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/pkg/config"
)

func testRegistry(baseURL string) *config.LLMProviderRegistry {
	return config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"default": {
			Model:   "gpt-4o",
			BaseURL: baseURL,
			Pricing: config.ModelPricing{
				InputPerMillionUSD:  2.5,
				OutputPerMillionUSD: 10,
			},
		},
		"unpriced": {
			Model:   "mystery-model",
			BaseURL: baseURL,
		},
	})
}

func completionHandler(t *testing.T, content string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req.Messages)

		resp := map[string]any{
			"model": req.Model,
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
			"usage": map[string]any{
				"prompt_tokens":     1000,
				"completion_tokens": 200,
				"total_tokens":      1200,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(completionHandler(t, `{"severity":"high"}`))
	defer srv.Close()

	client := NewHTTPClient(config.LLMConfig{
		Timeout:     5 * time.Second,
		Temperature: 0.2,
		MaxTokens:   4096,
	}, testRegistry(srv.URL))

	resp, err := client.Generate(context.Background(), Request{
		Provider: "default",
		System:   "You are a triage analyst.",
		User:     "Assess this case.",
	})
	require.NoError(t, err)

	assert.Equal(t, `{"severity":"high"}`, resp.Text)
	assert.Equal(t, "gpt-4o", resp.Model)
	assert.Equal(t, 1000, resp.Usage.InputTokens)
	assert.Equal(t, 200, resp.Usage.OutputTokens)
	assert.Equal(t, 1200, resp.Usage.TotalTokens)
	// 1000/1e6*2.5 + 200/1e6*10 = 0.0025 + 0.002
	assert.InDelta(t, 0.0045, resp.Usage.CostUSD, 1e-9)
}

func TestGenerateUnpricedModel(t *testing.T) {
	srv := httptest.NewServer(completionHandler(t, "ok"))
	defer srv.Close()

	client := NewHTTPClient(config.LLMConfig{Timeout: 5 * time.Second}, testRegistry(srv.URL))

	resp, err := client.Generate(context.Background(), Request{Provider: "unpriced", User: "hi"})
	require.NoError(t, err)
	assert.Zero(t, resp.Usage.CostUSD, "unpriced models record zero cost")
	assert.Equal(t, 1200, resp.Usage.TotalTokens)
}

func TestGenerateUnknownProvider(t *testing.T) {
	client := NewHTTPClient(config.LLMConfig{}, testRegistry("http://unused"))

	_, err := client.Generate(context.Background(), Request{Provider: "nope", User: "hi"})
	assert.ErrorIs(t, err, config.ErrLLMProviderNotFound)
}

func TestGenerateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewHTTPClient(config.LLMConfig{Timeout: 5 * time.Second}, testRegistry(srv.URL))

	_, err := client.Generate(context.Background(), Request{Provider: "default", User: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestGenerateContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	client := NewHTTPClient(config.LLMConfig{Timeout: 5 * time.Second}, testRegistry(srv.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, Request{Provider: "default", User: "hi"})
	assert.Error(t, err)
}

package siem

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/secopshq/caseflow/pkg/config"
)

// QueryResponse is the raw outcome of one SIEM search call.
type QueryResponse struct {
	TotalCount int              `json:"count"`
	Events     []map[string]any `json:"events"`
}

// Adapter executes one search against the SIEM backend. Implementations
// may time out or return errors; retry and caching policy belongs to the
// executor, not here.
type Adapter interface {
	Query(ctx context.Context, eventFilter string, fromMs, toMs int64, limit int) (*QueryResponse, error)
}

// HTTPAdapter talks to a SIEM search API over HTTP.
type HTTPAdapter struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// NewHTTPAdapter builds the adapter from configuration; the API token is
// read from the environment variable named in the config.
func NewHTTPAdapter(cfg config.SIEMConfig) *HTTPAdapter {
	var token string
	if cfg.TokenEnv != "" {
		token = os.Getenv(cfg.TokenEnv)
	}
	return &HTTPAdapter{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   token,
		// Per-call deadlines come from the executor's context; keep a
		// generous transport-level ceiling only.
		http:   &http.Client{Timeout: 5 * time.Minute},
		logger: slog.Default().With("component", "siem"),
	}
}

type searchRequest struct {
	Query string `json:"query"`
	From  string `json:"from"`
	To    string `json:"to"`
	Limit int    `json:"limit"`
}

// Query runs one search. Time bounds are converted to UTC ISO timestamps
// as the search API expects.
func (a *HTTPAdapter) Query(ctx context.Context, eventFilter string, fromMs, toMs int64, limit int) (*QueryResponse, error) {
	payload := searchRequest{
		Query: eventFilter,
		From:  time.UnixMilli(fromMs).UTC().Format(time.RFC3339),
		To:    time.UnixMilli(toMs).UTC().Format(time.RFC3339),
		Limit: limit,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/api/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("SIEM returned %d", resp.StatusCode)
	}

	var parsed QueryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &parsed, nil
}

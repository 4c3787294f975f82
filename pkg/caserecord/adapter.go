// Package caserecord fetches raw case details from the external case
// system. The adapter is deliberately forgiving: enrichment can proceed
// with fewer related cases, so fetch failures degrade to an empty list
// instead of failing the stage.
package caserecord

import (
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
	"github.com/secopshq/caseflow/pkg/models"
)

// Rule types assigned from the rule name prefix.
const (
	RuleTypeFact    = "factFeature"
	RuleTypeProfile = "profileFeature"
	RuleTypeOther   = "other"
)

// ClassifyRuleType derives a detection's rule type from its rule name
// prefix, case-insensitively.
func ClassifyRuleType(ruleName string) string {
	lower := strings.ToLower(ruleName)
	switch {
	case strings.HasPrefix(lower, "fact"):
		return RuleTypeFact
	case strings.HasPrefix(lower, "prof"):
		return RuleTypeProfile
	default:
		return RuleTypeOther
	}
}

// Adapter is the HTTP client for the external case API.
type Adapter struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// NewAdapter builds the adapter from configuration. The bearer token is
// read from the environment variable named in the config.
func NewAdapter(cfg config.CaseAPIConfig) *Adapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	var token string
	if cfg.TokenEnv != "" {
		token = os.Getenv(cfg.TokenEnv)
	}
	return &Adapter{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		logger:  slog.Default().With("component", "case_api"),
	}
}

// FetchCases retrieves raw case details for the given IDs. Individual
// failures are logged and skipped; the call itself never fails, it just
// returns fewer cases. Rule types missing from the payload are classified
// from the rule name.
func (a *Adapter) FetchCases(ctx context.Context, ids []string) []models.RawCase {
	cases := make([]models.RawCase, 0, len(ids))
	for _, id := range ids {
		rc, err := a.fetchOne(ctx, id)
		if err != nil {
			a.logger.Warn("Failed to fetch case, skipping", "case_id", id, "error", err)
			continue
		}
		cases = append(cases, *rc)
	}
	return cases
}

func (a *Adapter) fetchOne(ctx context.Context, id string) (*models.RawCase, error) {
	url := fmt.Sprintf("%s/cases/%s", a.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("case API returned %d", resp.StatusCode)
	}

	var rc models.RawCase
	if err := json.NewDecoder(resp.Body).Decode(&rc); err != nil {
		return nil, fmt.Errorf("decode case: %w", err)
	}
	if rc.CaseID == "" {
		rc.CaseID = id
	}
	for i := range rc.Detections {
		if rc.Detections[i].RuleType == "" {
			rc.Detections[i].RuleType = ClassifyRuleType(rc.Detections[i].RuleName)
		}
	}
	return &rc, nil
}

package caserecord

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
	"github.com/secopshq/caseflow/pkg/models"
)

func TestClassifyRuleType(t *testing.T) {
	tests := []struct {
		ruleName string
		want     string
	}{
		{"fact_bruteforce", RuleTypeFact},
		{"FACT_LOGIN_SPIKE", RuleTypeFact},
		{"profile_anomaly", RuleTypeProfile},
		{"prof_rare_process", RuleTypeProfile},
		{"behavioral_oddness", RuleTypeOther},
		{"anomaly_sigma", RuleTypeOther},
		{"", RuleTypeOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRuleType(tt.ruleName), "rule %q", tt.ruleName)
	}
}

func TestFetchCases(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cases/case-1":
			rc := models.RawCase{
				CaseID:   "case-1",
				Title:    "Brute force",
				Severity: "high",
				Detections: []models.Detection{
					{DetectionID: "d1", RuleName: "fact_bruteforce"},
					{DetectionID: "d2", RuleName: "weird_rule", RuleType: "custom"},
				},
			}
			require.NoError(t, json.NewEncoder(w).Encode(rc))
		case "/cases/case-2":
			http.Error(w, "gone", http.StatusNotFound)
		default:
			http.Error(w, "unexpected", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	adapter := NewAdapter(config.CaseAPIConfig{BaseURL: srv.URL, Timeout: 2 * time.Second})

	cases := adapter.FetchCases(context.Background(), []string{"case-1", "case-2"})
	require.Len(t, cases, 1, "failed fetches are skipped, not fatal")

	got := cases[0]
	assert.Equal(t, "case-1", got.CaseID)
	assert.Equal(t, RuleTypeFact, got.Detections[0].RuleType, "missing rule_type is classified from the rule name")
	assert.Equal(t, "custom", got.Detections[1].RuleType, "present rule_type is preserved")
}

func TestFetchCasesAllUnreachable(t *testing.T) {
	adapter := NewAdapter(config.CaseAPIConfig{BaseURL: "http://127.0.0.1:1", Timeout: 200 * time.Millisecond})

	cases := adapter.FetchCases(context.Background(), []string{"a", "b"})
	assert.Empty(t, cases, "adapter failure degrades to an empty list")
}

package pipeline

import (
	"encoding/json"

	"github.com/secopshq/caseflow/pkg/models"
)

// Run statuses returned to the caller.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusPartial   = "partial"
)

// EnrichRequest is the caller's submission for one enrichment run.
type EnrichRequest struct {
	CaseID         string               `json:"case_id"`
	AutonomyLevel  models.AutonomyLevel `json:"autonomy_level"`
	MaxDepth       int                  `json:"max_depth"`
	IncludeRawLogs bool                 `json:"include_raw_logs"`
}

// EnrichResult is the structured outcome of one enrichment run.
type EnrichResult struct {
	CaseID               string                    `json:"case_id"`
	Status               string                    `json:"status"`
	Entities             map[string][]string       `json:"entities"`
	RelatedCases         []models.SimilarCase      `json:"related_cases"`
	TotalCostUSD         float64                   `json:"total_cost_usd"`
	TotalTokens          int                       `json:"total_tokens"`
	AuditTrail           []*models.AgentStep       `json:"audit_trail"`
	StepsCount           int                       `json:"steps_count"`
	PipelineResults      map[string]map[string]any `json:"pipeline_results"`
	FinalReport          string                    `json:"final_report"`
	TriageAssessment     map[string]any            `json:"triage_assessment"`
	InvestigationSummary map[string]any            `json:"investigation_summary"`
	AttackStory          map[string]any            `json:"attack_story"`
	ContainmentActions   []models.ContainmentAction `json:"containment_actions"`
	IOCSet               models.IOCSet             `json:"ioc_set"`
	Reports              map[string]string         `json:"reports"`
}

// decode converts a generic outputs map into a typed output contract.
// Unknown or malformed fields are dropped; the zero value is the stable
// default downstream stages rely on.
func decode[T any](m map[string]any) T {
	var out T
	raw, err := json.Marshal(m)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}

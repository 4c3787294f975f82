package models

import "encoding/json"

// Per-agent output contracts. Each agent parses the LLM response into its
// designated schema; parsing is defensive and degrades to a raw variant on
// malformed input (see pkg/agent).

// TriageEntity is one entity proposed by the triage agent.
type TriageEntity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// TriageOutput is the triage agent's structured assessment.
type TriageOutput struct {
	Severity         string         `json:"severity"`
	Priority         int            `json:"priority"`
	Entities         []TriageEntity `json:"entities"`
	EscalationNeeded bool           `json:"escalation_needed"`
	InitialSteps     []string       `json:"initial_steps"`
	Summary          string         `json:"summary"`
	Hypotheses       []string       `json:"hypotheses"`
}

// RuleFilterSummary is the eligibility breakdown attached to enrichment.
type RuleFilterSummary struct {
	Total   int            `json:"total"`
	Kept    int            `json:"kept"`
	Skipped int            `json:"skipped"`
	ByRule  map[string]int `json:"by_rule,omitempty"`
}

// EnrichmentOutput is the enrichment agent's structured result.
type EnrichmentOutput struct {
	RelatedItems      []SimilarCase     `json:"related_items"`
	KeptCases         []RawCase         `json:"kept_cases"`
	SkippedCases      []RawCase         `json:"skipped_cases"`
	EnrichedEntities  []Entity          `json:"enriched_entities"`
	RuleFilterSummary RuleFilterSummary `json:"rule_filter_summary"`
}

// InvestigationResult summarizes one SIEM query outcome per case/rule.
type InvestigationResult struct {
	CaseID          string           `json:"case_id"`
	DetectionRule   string           `json:"detection_rule"`
	QueryExecuted   string           `json:"query_executed"`
	EventsFound     int              `json:"events_found"`
	QueryDurationMs int64            `json:"query_duration_ms"`
	RawEvents       []map[string]any `json:"raw_events,omitempty"`
}

// AttackPattern is one recognized pattern with supporting evidence.
type AttackPattern struct {
	Pattern     string  `json:"pattern"`
	Confidence  float64 `json:"confidence"`
	Evidence    string  `json:"evidence"`
	MitreTactic string  `json:"mitre_tactic"`
}

// InvestigationOutput is the investigation agent's structured result.
type InvestigationOutput struct {
	SIEMResults         []InvestigationResult `json:"siem_results"`
	TimelineEvents      []TimelineEvent       `json:"timeline_events"`
	IOCSet              IOCSet                `json:"ioc_set"`
	CorrelationFindings []string              `json:"correlation_findings"`
	AttackPatterns      []AttackPattern       `json:"attack_patterns"`
}

// AttackStory is the correlated narrative of the incident.
type AttackStory struct {
	Narrative       string   `json:"narrative"`
	Phases          []string `json:"phases"`
	DurationMinutes int      `json:"duration_minutes"`
	Sophistication  string   `json:"sophistication"`
}

// MitreMapping maps the incident onto ATT&CK tactics and techniques.
type MitreMapping struct {
	Tactics    []string `json:"tactics"`
	Techniques []string `json:"techniques"`
	KillChain  []string `json:"kill_chain"`
}

// CorrelationOutput is the correlation agent's structured result.
type CorrelationOutput struct {
	AttackStory          AttackStory  `json:"attack_story"`
	MitreMapping         MitreMapping `json:"mitre_mapping"`
	ThreatActorProfile   string       `json:"threat_actor_profile"`
	DetectionGaps        []string     `json:"detection_gaps"`
	ConfidenceAssessment string       `json:"confidence_assessment"`
}

// ContainmentAction is one proposed (never executed) containment measure.
type ContainmentAction struct {
	Action        string `json:"action"`   // isolate, disable, quarantine, block, reset, monitor
	Target        string `json:"target"`
	Priority      string `json:"priority"` // critical, high, medium, low
	Justification string `json:"justification"`
	Urgency       string `json:"urgency"`  // immediate, 1_hour, 4_hour, 1_day
	Impact        string `json:"impact"`   // high, medium, low
}

// ResponseOutput is the response-planning agent's structured result.
type ResponseOutput struct {
	ContainmentActions     []ContainmentAction `json:"containment_actions"`
	RemediationSteps       []string            `json:"remediation_steps"`
	MonitoringEnhancements []string            `json:"monitoring_enhancements"`
	EvidencePreservation   []string            `json:"evidence_preservation"`
	PriorityMatrix         map[string][]string `json:"priority_matrix,omitempty"`
}

// ReportingOutput is the reporting agent's structured result.
type ReportingOutput struct {
	IncidentReport    string         `json:"incident_report"`
	ExecutiveSummary  string         `json:"executive_summary"`
	TechnicalAnalysis string         `json:"technical_analysis"`
	Timeline          string         `json:"timeline"`
	IOCs              IOCSet         `json:"iocs"`
	Recommendations   []string       `json:"recommendations"`
	ReportMetadata    map[string]any `json:"report_metadata,omitempty"`
}

// ToMap converts a typed output into the generic map shape stored on audit
// steps. Conversion goes through encoding/json so the stored form matches the
// wire form exactly.
func ToMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"error": err.Error()}
	}
	return out
}

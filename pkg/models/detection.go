package models

// Detection is a rule-trigger record attached to a case, carrying a
// SIEM-executable event filter and time window.
type Detection struct {
	DetectionID     string `json:"detection_id"`
	RuleName        string `json:"rule_name"`
	RuleType        string `json:"rule_type"`
	SearchQuery     string `json:"search_query,omitempty"`
	EventFilter     string `json:"event_filter"`
	EventFromTimeMs int64  `json:"event_from_time_ms"`
	EventToTimeMs   int64  `json:"event_to_time_ms"`
	WindowMinutes   int    `json:"window_minutes,omitempty"`
}

// RawCase is a raw case detail record fetched from the external case system.
type RawCase struct {
	CaseID      string           `json:"case_id"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	Severity    string           `json:"severity,omitempty"`
	RuleID      string           `json:"rule_id,omitempty"`
	CreatedAtMs int64            `json:"created_at_ms,omitempty"`
	Detections  []Detection      `json:"detections,omitempty"`
	Fields      map[string]any   `json:"fields,omitempty"`
}

// SIEMQuery is one deduplicated query derived from one or more eligible
// detections sharing an event filter. The time window is widened to cover
// all member detections.
type SIEMQuery struct {
	QueryID            string   `json:"query_id"`
	EventFilter        string   `json:"event_filter"`
	FromMs             int64    `json:"from_ms"`
	ToMs               int64    `json:"to_ms"`
	Limit              int      `json:"limit"`
	TimeoutMs          int64    `json:"timeout_ms"`
	LinkedDetectionIDs []string `json:"linked_detection_ids"`
}

// PaginationInfo describes result truncation for one SIEM query.
type PaginationInfo struct {
	Limit   int  `json:"limit"`
	HasMore bool `json:"has_more"`
}

// SIEMResult is the outcome of one executed SIEM query.
type SIEMResult struct {
	QueryID            string           `json:"query_id"`
	Events             []map[string]any `json:"events"`
	TotalCount         int              `json:"total_count"`
	ExecutionTimeMs    int64            `json:"execution_time_ms"`
	QueryHash          string           `json:"query_hash"`
	SourceDetectionIDs []string         `json:"source_detection_ids"`
	Pagination         PaginationInfo   `json:"pagination_info"`
	Error              string           `json:"error,omitempty"`
}

// TimelineEvent is one event on the reconstructed attack timeline.
type TimelineEvent struct {
	Timestamp string         `json:"ts"`
	Actor     string         `json:"actor,omitempty"`
	Event     string         `json:"event"`
	Source    string         `json:"src"`
	Details   map[string]any `json:"details,omitempty"`
}

// SimilarCase links a target case to a candidate case with its weighted
// Jaccard score and per-type breakdown.
type SimilarCase struct {
	CaseID          string             `json:"case_id"`
	Score           float64            `json:"similarity_score"`
	MatchedEntities []string           `json:"matched_entities"`
	Breakdown       map[string]float64 `json:"breakdown,omitempty"`
}

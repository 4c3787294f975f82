package pipeline

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/secopshq/caseflow/pkg/entities"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/models"
	"github.com/secopshq/caseflow/pkg/siem"
)

// rawEventCap bounds how many raw events are fed to the investigation
// agent per query when include_raw_logs is set.
const rawEventCap = 50

// enrichmentData is the mechanical enrichment state gathered from the
// similarity engine, the case adapter and the eligibility filter.
type enrichmentData struct {
	keptCases      []models.RawCase
	skippedCases   []models.RawCase
	keptDetections []models.Detection
	filterSummary  models.RuleFilterSummary
	ruleName       string
}

// baseEntities normalizes the raw case payload into the initial entity bag.
func baseEntities(summary *kv.CaseSummary) models.EntityBag {
	fields := map[string]any{}
	if len(summary.RawData) > 0 {
		_ = json.Unmarshal(summary.RawData, &fields)
	}
	bag := entities.Bag(entities.Normalize(fields))
	for t, vs := range models.BagFromStringMap(summary.Entities) {
		for _, v := range vs {
			bag.Add(t, v)
		}
	}
	return bag
}

// mergeTriageEntities folds the triage agent's proposed entities into the
// bag after re-normalization. Values failing validation are dropped.
func mergeTriageEntities(bag models.EntityBag, proposed []models.TriageEntity) {
	for _, e := range proposed {
		t := models.EntityType(strings.ToLower(e.Type))
		switch t {
		case models.EntityUser, models.EntityIP, models.EntityHost, models.EntityDomain, models.EntityHash:
		default:
			continue
		}
		normalized := entities.NormalizeValue(t, e.Value, "triage")
		if normalized.ValidationPassed {
			bag.Add(t, normalized.Value)
		}
	}
}

// gatherEnrichment runs the mechanical enrichment: similarity search,
// related case fetch and detection eligibility filtering.
func (o *Orchestrator) gatherEnrichment(ctx context.Context, st *runState, summary *kv.CaseSummary) *enrichmentData {
	enr := &enrichmentData{}
	if st.aborted || ctx.Err() != nil {
		return enr
	}

	if o.deps.Similarity != nil {
		related, err := o.deps.Similarity.FindSimilar(ctx, st.caseID, st.entities)
		if err != nil {
			o.logger.Warn("Similarity search failed", "case_id", st.caseID, "error", err)
		} else {
			st.related = related
		}
	}

	pool := targetDetections(summary)
	if len(pool) > 0 {
		enr.ruleName = pool[0].RuleName
	}

	if o.deps.CaseAPI != nil {
		ids := make([]string, 0, len(st.related)+1)
		ids = append(ids, st.caseID)
		for _, rc := range st.related {
			ids = append(ids, rc.CaseID)
		}
		for _, raw := range o.deps.CaseAPI.FetchCases(ctx, ids) {
			if raw.CaseID == st.caseID {
				if enr.ruleName == "" && len(raw.Detections) > 0 {
					enr.ruleName = raw.Detections[0].RuleName
				}
				pool = append(pool, raw.Detections...)
				continue
			}
			if o.caseEligible(raw) {
				enr.keptCases = append(enr.keptCases, raw)
				pool = append(pool, raw.Detections...)
			} else {
				enr.skippedCases = append(enr.skippedCases, raw)
			}
		}
	}

	if o.deps.Filter != nil {
		enr.keptDetections, enr.filterSummary = o.deps.Filter.Apply(pool)
	} else {
		enr.keptDetections = pool
		enr.filterSummary = models.RuleFilterSummary{Total: len(pool), Kept: len(pool)}
	}
	return enr
}

// caseEligible reports whether a related case carries at least one
// SIEM-eligible detection.
func (o *Orchestrator) caseEligible(raw models.RawCase) bool {
	if o.deps.Filter == nil {
		return true
	}
	for _, d := range raw.Detections {
		if o.deps.Filter.Eligible(d) {
			return true
		}
	}
	return false
}

// targetDetections extracts the target case's own detections from the
// stored raw payload.
func targetDetections(summary *kv.CaseSummary) []models.Detection {
	if len(summary.RawData) == 0 {
		return nil
	}
	var raw models.RawCase
	if err := json.Unmarshal(summary.RawData, &raw); err != nil {
		return nil
	}
	return raw.Detections
}

// runSIEM executes the eligible detections against the SIEM.
func (o *Orchestrator) runSIEM(ctx context.Context, st *runState, detections []models.Detection) []models.SIEMResult {
	if o.deps.Executor == nil || len(detections) == 0 || st.aborted || ctx.Err() != nil {
		return nil
	}
	results := o.deps.Executor.Execute(ctx, detections)
	o.logger.Info("SIEM queries executed",
		"case_id", st.caseID, "detections", len(detections), "queries", len(results))
	return results
}

// Stage input builders. Every upstream artifact defaults to an empty
// structure so each agent sees a stable contract.

func triageInputs(summary *kv.CaseSummary, bag models.EntityBag) map[string]any {
	return map[string]any{
		"case_id":     summary.CaseID,
		"title":       summary.Title,
		"description": summary.Description,
		"severity":    summary.Severity,
		"entities":    bag.ToStringMap(),
	}
}

func enrichmentInputs(st *runState, enr *enrichmentData) map[string]any {
	return map[string]any{
		"case_id":             st.caseID,
		"entities":            st.entities.ToStringMap(),
		"triage_summary":      st.triage.Summary,
		"related_cases":       emptySlice(st.related),
		"kept_cases":          caseBriefs(enr.keptCases),
		"skipped_cases":       caseBriefs(enr.skippedCases),
		"rule_filter_summary": enr.filterSummary,
	}
}

func investigationInputs(st *runState, enr *enrichmentData, results []models.SIEMResult) map[string]any {
	byDetection := make(map[string]string)
	for detectionID, result := range siem.FanOut(results) {
		byDetection[detectionID] = result.QueryHash
	}
	return map[string]any{
		"case_id":              st.caseID,
		"entities":             st.entities.ToStringMap(),
		"hypotheses":           emptySlice(st.triage.Hypotheses),
		"kept_cases":           caseBriefs(enr.keptCases),
		"siem_results":         siemBriefs(results, st.includeRaw),
		"queries_by_detection": byDetection,
	}
}

func correlationInputs(st *runState) map[string]any {
	return map[string]any{
		"case_id":              st.caseID,
		"triage_summary":       st.triage.Summary,
		"siem_results":         emptySlice(st.investigation.SIEMResults),
		"timeline_events":      emptySlice(st.investigation.TimelineEvents),
		"ioc_set":              st.investigation.IOCSet,
		"attack_patterns":      emptySlice(st.investigation.AttackPatterns),
		"correlation_findings": emptySlice(st.investigation.CorrelationFindings),
	}
}

func responseInputs(st *runState) map[string]any {
	return map[string]any{
		"case_id":              st.caseID,
		"attack_story":         models.ToMap(st.correlation.AttackStory),
		"mitre_mapping":        models.ToMap(st.correlation.MitreMapping),
		"ioc_set":              st.investigation.IOCSet,
		"threat_actor_profile": st.correlation.ThreatActorProfile,
		"detection_gaps":       emptySlice(st.correlation.DetectionGaps),
	}
}

func reportingInputs(st *runState) map[string]any {
	return map[string]any{
		"case_id":             st.caseID,
		"entities":            st.entities.ToStringMap(),
		"triage_assessment":   models.ToMap(st.triage),
		"related_cases":       emptySlice(st.related),
		"timeline_events":     emptySlice(st.investigation.TimelineEvents),
		"ioc_set":             st.investigation.IOCSet,
		"attack_story":        models.ToMap(st.correlation.AttackStory),
		"mitre_mapping":       models.ToMap(st.correlation.MitreMapping),
		"containment_actions": emptySlice(st.response.ContainmentActions),
		"remediation_steps":   emptySlice(st.response.RemediationSteps),
	}
}

func curatorInputs(st *runState) map[string]any {
	return map[string]any{
		"case_id":           st.caseID,
		"entities":          st.entities.ToStringMap(),
		"triage_summary":    st.triage.Summary,
		"attack_story":      models.ToMap(st.correlation.AttackStory),
		"ioc_set":           st.investigation.IOCSet,
		"executive_summary": st.reporting.ExecutiveSummary,
	}
}

// caseBriefs shrinks raw cases to the fields the agents reason about.
func caseBriefs(cases []models.RawCase) []map[string]any {
	briefs := make([]map[string]any, 0, len(cases))
	for _, raw := range cases {
		briefs = append(briefs, map[string]any{
			"case_id":    raw.CaseID,
			"title":      raw.Title,
			"severity":   raw.Severity,
			"rule_id":    raw.RuleID,
			"detections": len(raw.Detections),
		})
	}
	return briefs
}

// siemBriefs summarizes SIEM results for the investigation agent, with
// capped raw events when requested.
func siemBriefs(results []models.SIEMResult, includeRaw bool) []map[string]any {
	briefs := make([]map[string]any, 0, len(results))
	for _, r := range results {
		brief := map[string]any{
			"query_hash":           r.QueryHash,
			"events_found":         len(r.Events),
			"total_count":          r.TotalCount,
			"has_more":             r.Pagination.HasMore,
			"source_detection_ids": r.SourceDetectionIDs,
		}
		if r.Error != "" {
			brief["error"] = r.Error
		}
		if includeRaw && len(r.Events) > 0 {
			events := r.Events
			if len(events) > rawEventCap {
				events = events[:rawEventCap]
			}
			brief["events"] = events
		}
		briefs = append(briefs, brief)
	}
	return briefs
}

// emptySlice pins nil slices to empty ones so the JSON context never
// shows null for a list-shaped artifact.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

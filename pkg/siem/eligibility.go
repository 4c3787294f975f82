// Package siem gates detections on rule eligibility and executes their
// queries against the SIEM with deduplication, a concurrency bound,
// per-query timeouts and result caching.
package siem

import (
	"strings"

	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/models"
)

// Filter keeps only detections permitted to drive SIEM queries. The
// allowed rule prefixes and types are configuration, not code.
type Filter struct {
	prefixes []string
	types    map[string]bool
}

// NewFilter builds a filter from configuration. Matching is
// case-insensitive on both prefixes and types.
func NewFilter(cfg config.EligibilityConfig) *Filter {
	prefixes := make([]string, 0, len(cfg.RulePrefixes))
	for _, p := range cfg.RulePrefixes {
		prefixes = append(prefixes, strings.ToLower(p))
	}
	types := make(map[string]bool, len(cfg.RuleTypes))
	for _, t := range cfg.RuleTypes {
		types[strings.ToLower(t)] = true
	}
	return &Filter{prefixes: prefixes, types: types}
}

// Eligible reports whether a single detection may drive a SIEM query.
// A detection qualifies by rule name prefix or rule type, and must carry a
// non-empty event filter and a positive time window.
func (f *Filter) Eligible(d models.Detection) bool {
	if strings.TrimSpace(d.EventFilter) == "" {
		return false
	}
	if d.EventFromTimeMs <= 0 || d.EventToTimeMs <= 0 {
		return false
	}

	name := strings.ToLower(d.RuleName)
	for _, p := range f.prefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return f.types[strings.ToLower(d.RuleType)]
}

// Apply partitions detections into eligible ones and an audit breakdown
// with per-rule kept/skipped counts.
func (f *Filter) Apply(detections []models.Detection) ([]models.Detection, models.RuleFilterSummary) {
	summary := models.RuleFilterSummary{
		Total:  len(detections),
		ByRule: make(map[string]int),
	}

	eligible := make([]models.Detection, 0, len(detections))
	for _, d := range detections {
		if f.Eligible(d) {
			eligible = append(eligible, d)
			summary.Kept++
			summary.ByRule[d.RuleName]++
		} else {
			summary.Skipped++
		}
	}
	return eligible, summary
}

// Package models defines the shared domain types for case enrichment:
// autonomy levels, pipeline stages, detections, SIEM results, entities,
// audit steps and per-agent output contracts.
package models

// AutonomyLevel selects which pipeline stages require a human approval.
type AutonomyLevel string

// Autonomy levels, least to most autonomous.
const (
	AutonomyManual     AutonomyLevel = "manual"
	AutonomySupervised AutonomyLevel = "supervised"
	AutonomyAutonomous AutonomyLevel = "autonomous"
	AutonomyResearch   AutonomyLevel = "research"
)

// IsValid reports whether the level is a known autonomy level.
func (l AutonomyLevel) IsValid() bool {
	switch l {
	case AutonomyManual, AutonomySupervised, AutonomyAutonomous, AutonomyResearch:
		return true
	}
	return false
}

// Stage identifies one pipeline stage.
type Stage string

// Pipeline stages in execution order.
const (
	StageTriage        Stage = "triage"
	StageEnrichment    Stage = "enrichment"
	StageInvestigation Stage = "investigation"
	StageCorrelation   Stage = "correlation"
	StageResponse      Stage = "response"
	StageReporting     Stage = "reporting"
)

// PipelineStages lists all stages in execution order.
var PipelineStages = []Stage{
	StageTriage,
	StageEnrichment,
	StageInvestigation,
	StageCorrelation,
	StageResponse,
	StageReporting,
}

// DependsOn reports whether stage s consumes outputs of stage other,
// directly or transitively. The pipeline is a straight line after triage,
// so dependency reduces to ordering.
func (s Stage) DependsOn(other Stage) bool {
	return stageIndex(s) > stageIndex(other)
}

func stageIndex(s Stage) int {
	for i, st := range PipelineStages {
		if st == s {
			return i
		}
	}
	return -1
}

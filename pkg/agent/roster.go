package agent

import "github.com/secopshq/caseflow/pkg/models"

// KnowledgeAgent is the curator that runs after reporting; it is not a
// pipeline stage of its own.
const KnowledgeAgent = "knowledge"

// Roster returns the stage agents, all bound to the given LLM provider.
func Roster(provider string) map[models.Stage]Definition {
	return map[models.Stage]Definition{
		models.StageTriage: {
			Name:     string(models.StageTriage),
			Role:     "Initial threat assessment",
			Provider: provider,
		},
		models.StageEnrichment: {
			Name:     string(models.StageEnrichment),
			Role:     "Context and related-case enrichment",
			Provider: provider,
		},
		models.StageInvestigation: {
			Name:     string(models.StageInvestigation),
			Role:     "Evidence collection and timeline reconstruction",
			Provider: provider,
		},
		models.StageCorrelation: {
			Name:     string(models.StageCorrelation),
			Role:     "Cross-case correlation and ATT&CK mapping",
			Provider: provider,
		},
		models.StageResponse: {
			Name:     string(models.StageResponse),
			Role:     "Containment and response planning",
			Provider: provider,
		},
		models.StageReporting: {
			Name:     string(models.StageReporting),
			Role:     "Incident report writing",
			Provider: provider,
		},
	}
}

// Curator returns the knowledge agent definition.
func Curator(provider string) Definition {
	return Definition{
		Name:     KnowledgeAgent,
		Role:     "Durable knowledge extraction",
		Provider: provider,
	}
}

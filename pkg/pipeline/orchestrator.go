// Package pipeline sequences the staged enrichment run: triage through
// reporting, approval gating per autonomy level, artifact threading with
// stable empty defaults, and terminal case bookkeeping.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/agentexecution"
	entcase "github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/pkg/agent"
	"github.com/secopshq/caseflow/pkg/approval"
	caseapi "github.com/secopshq/caseflow/pkg/caserecord"
	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/graph"
	"github.com/secopshq/caseflow/pkg/knowledge"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/models"
	"github.com/secopshq/caseflow/pkg/siem"
	"github.com/secopshq/caseflow/pkg/similarity"
)

// ErrRunInFlight is returned when the case already has an active run.
var ErrRunInFlight = errors.New("enrichment already running for this case")

// StageRunner executes one agent invocation.
type StageRunner interface {
	Execute(ctx context.Context, def agent.Definition, caseID string, inputs map[string]any, plan []string, level models.AutonomyLevel) (*agent.Result, error)
}

// Approver requests approvals and blocks for terminal decisions.
type Approver interface {
	Request(ctx context.Context, caseID, stage, description string, level models.AutonomyLevel) (*approval.Info, error)
	WaitFor(ctx context.Context, approvalID string) (approval.Outcome, error)
}

// CaseRecords is the relational case bookkeeping the orchestrator needs.
type CaseRecords interface {
	EnsureCase(ctx context.Context, caseID, title, description, severity string) (*ent.CaseRecord, error)
	MarkAnalyzing(ctx context.Context, caseID string, level models.AutonomyLevel) error
	SetCurrentStep(ctx context.Context, caseID string, stage models.Stage)
	Finalize(ctx context.Context, caseID string, status entcase.Status, entities map[string][]string, threat string, usage models.TokenUsage, errMsg string) error
	StartExecution(ctx context.Context, caseID, agentName string) (string, error)
	FinishExecution(ctx context.Context, executionID string, status agentexecution.Status, usage models.TokenUsage, errMsg string)
	SkipExecution(ctx context.Context, caseID, agentName, reason string)
	SaveReport(ctx context.Context, caseID, reportType, content string) (*ent.Report, error)
}

// Deps wires the orchestrator. Store, Similarity, Filter, Executor,
// CaseAPI, Graph and Knowledge are optional; a nil member disables the
// corresponding enrichment source.
type Deps struct {
	Runner     StageRunner
	Chain      agent.StepAppender
	Gate       Approver
	Records    CaseRecords
	Store      *kv.Client
	Similarity *similarity.Engine
	Filter     *siem.Filter
	Executor   *siem.Executor
	CaseAPI    *caseapi.Adapter
	Graph      *graph.Store
	Knowledge  *knowledge.Service
}

// Orchestrator drives enrichment runs.
type Orchestrator struct {
	cfg      *config.Config
	deps     Deps
	roster   map[models.Stage]agent.Definition
	curator  agent.Definition
	critical map[models.Stage]bool
	registry *Registry
	logger   *slog.Logger
}

// NewOrchestrator creates the orchestrator with the configured agent
// roster and critical-stage set.
func NewOrchestrator(cfg *config.Config, deps Deps) *Orchestrator {
	critical := make(map[models.Stage]bool, len(cfg.Approvals.CriticalStages))
	for _, s := range cfg.Approvals.CriticalStages {
		critical[models.Stage(s)] = true
	}
	provider := cfg.LLM.DefaultProvider
	return &Orchestrator{
		cfg:      cfg,
		deps:     deps,
		roster:   agent.Roster(provider),
		curator:  agent.Curator(provider),
		critical: critical,
		registry: NewRegistry(),
		logger:   slog.Default().With("component", "pipeline"),
	}
}

// Runs exposes the active-run registry for the cancel endpoint.
func (o *Orchestrator) Runs() *Registry {
	return o.registry
}

// runState accumulates one run's artifacts and bookkeeping.
type runState struct {
	caseID     string
	level      models.AutonomyLevel
	includeRaw bool

	trail    []*models.AgentStep
	totals   models.TokenUsage
	pipeline map[string]map[string]any

	entities models.EntityBag
	related  []models.SimilarCase

	triage        models.TriageOutput
	investigation models.InvestigationOutput
	correlation   models.CorrelationOutput
	response      models.ResponseOutput
	reporting     models.ReportingOutput

	ran       int
	succeeded int

	aborted     bool
	abortReason string
	deadline    bool
}

// Enrich runs the staged pipeline for one case and returns the
// structured result. Failure of individual stages degrades the result;
// only losing the case row or the audit chain fails the call.
func (o *Orchestrator) Enrich(ctx context.Context, req EnrichRequest) (*EnrichResult, error) {
	level := req.AutonomyLevel
	if level == "" {
		level = o.cfg.Defaults.AutonomyLevel
	}
	if !level.IsValid() {
		return nil, fmt.Errorf("invalid autonomy level %q", req.AutonomyLevel)
	}
	maxDepth := req.MaxDepth
	if maxDepth < 1 {
		maxDepth = o.cfg.Defaults.MaxDepth
	}

	runCtx, cancel := context.WithTimeout(ctx, o.cfg.Defaults.RequestTimeout)
	defer cancel()
	if !o.registry.Register(req.CaseID, cancel) {
		return nil, fmt.Errorf("%w: %s", ErrRunInFlight, req.CaseID)
	}
	defer o.registry.Unregister(req.CaseID)

	summary := o.loadSummary(runCtx, req.CaseID)
	if _, err := o.deps.Records.EnsureCase(runCtx, req.CaseID, summary.Title, summary.Description, summary.Severity); err != nil {
		return nil, err
	}
	if err := o.deps.Records.MarkAnalyzing(runCtx, req.CaseID, level); err != nil {
		return nil, err
	}

	st := &runState{
		caseID:     req.CaseID,
		level:      level,
		includeRaw: req.IncludeRawLogs,
		pipeline:   make(map[string]map[string]any),
		entities:   make(models.EntityBag),
	}

	o.logger.Info("Enrichment started",
		"case_id", req.CaseID, "autonomy_level", level, "max_depth", maxDepth)

	o.runStages(runCtx, st, summary, maxDepth)
	return o.finish(context.WithoutCancel(runCtx), st)
}

// runStages drives the stage sequence, honoring abort and deadline state
// between stages.
func (o *Orchestrator) runStages(ctx context.Context, st *runState, summary *kv.CaseSummary, maxDepth int) {
	// Triage.
	st.entities = baseEntities(summary)
	res := o.execStage(ctx, st, models.StageTriage,
		func() map[string]any { return triageInputs(summary, st.entities) },
		[]string{"assess severity and priority", "extract entities", "propose initial steps"})
	if res != nil && res.Err == nil && !res.Degraded {
		st.triage = decode[models.TriageOutput](res.Outputs)
		mergeTriageEntities(st.entities, st.triage.Entities)
	}
	o.indexCase(ctx, st, summary)

	// Enrichment.
	enr := o.gatherEnrichment(ctx, st, summary)
	res = o.execStage(ctx, st, models.StageEnrichment,
		func() map[string]any { return enrichmentInputs(st, enr) },
		[]string{"review related cases", "summarize overlap"})
	if out, ok := st.pipeline[string(models.StageEnrichment)]; ok && res != nil {
		// Mechanical facts come from the engine, not the model.
		out["related_items"] = st.related
		out["kept_cases"] = enr.keptCases
		out["skipped_cases"] = enr.skippedCases
		out["rule_filter_summary"] = enr.filterSummary
	}
	o.commitGraph(ctx, st, summary, enr)

	if maxDepth <= 1 {
		return
	}

	// Investigation. SIEM queries run inside the inputs builder so an
	// unapproved stage never touches the SIEM.
	res = o.execStage(ctx, st, models.StageInvestigation,
		func() map[string]any {
			return investigationInputs(st, enr, o.runSIEM(ctx, st, enr.keptDetections))
		},
		[]string{"correlate SIEM events", "build timeline", "extract IOCs"})
	if res != nil && res.Err == nil && !res.Degraded {
		st.investigation = decode[models.InvestigationOutput](res.Outputs)
	}
	o.researchCheckpoint(ctx, st, "critical_finding",
		len(st.investigation.AttackPatterns) > 0)

	// Correlation.
	res = o.execStage(ctx, st, models.StageCorrelation,
		func() map[string]any { return correlationInputs(st) },
		[]string{"reconstruct attack story", "map to ATT&CK"})
	if res != nil && res.Err == nil && !res.Degraded {
		st.correlation = decode[models.CorrelationOutput](res.Outputs)
	}

	// Response.
	o.researchCheckpoint(ctx, st, "containment_action", true)
	res = o.execStage(ctx, st, models.StageResponse,
		func() map[string]any { return responseInputs(st) },
		[]string{"propose containment", "plan remediation"})
	if res != nil && res.Err == nil && !res.Degraded {
		st.response = decode[models.ResponseOutput](res.Outputs)
	}

	// Reporting.
	res = o.execStage(ctx, st, models.StageReporting,
		func() map[string]any { return reportingInputs(st) },
		[]string{"write incident report", "summarize for leadership"})
	if res != nil && res.Err == nil && !res.Degraded {
		st.reporting = decode[models.ReportingOutput](res.Outputs)
	}

	o.curateKnowledge(ctx, st)
}

// execStage runs one roster stage, handling approval gating, skips and
// the request deadline. Returns nil when the stage did not execute.
func (o *Orchestrator) execStage(ctx context.Context, st *runState, stage models.Stage, buildInputs func() map[string]any, plan []string) *agent.Result {
	name := string(stage)
	if st.aborted {
		o.deps.Records.SkipExecution(context.WithoutCancel(ctx), st.caseID, name, st.abortReason)
		return nil
	}
	if ctx.Err() != nil {
		o.recordDeadline(ctx, st, stage)
		return nil
	}
	if o.needsApproval(stage, st.level) {
		desc := fmt.Sprintf("Run %s stage for case %s", name, st.caseID)
		if !o.awaitApproval(ctx, st, name, desc) {
			return nil
		}
	}

	o.deps.Records.SetCurrentStep(ctx, st.caseID, stage)
	return o.runAgent(ctx, st, name, o.roster[stage], buildInputs(), plan)
}

// runAgent executes one agent under an execution record and folds the
// outcome into the run state.
func (o *Orchestrator) runAgent(ctx context.Context, st *runState, name string, def agent.Definition, inputs map[string]any, plan []string) *agent.Result {
	execID, err := o.deps.Records.StartExecution(ctx, st.caseID, name)
	if err != nil {
		o.logger.Warn("Failed to record execution start",
			"case_id", st.caseID, "agent", name, "error", err)
	}

	res, err := o.deps.Runner.Execute(ctx, def, st.caseID, inputs, plan, st.level)
	if err != nil {
		// The audit append failed; the stage outcome is lost.
		if execID != "" {
			o.deps.Records.FinishExecution(context.WithoutCancel(ctx), execID,
				agentexecution.StatusFailed, models.TokenUsage{}, err.Error())
		}
		o.logger.Error("Stage lost its audit step", "case_id", st.caseID, "agent", name, "error", err)
		if ctx.Err() != nil {
			o.recordDeadline(ctx, st, models.Stage(name))
		}
		return nil
	}

	st.trail = append(st.trail, res.Step)
	st.totals.Add(res.Step.TokenUsage)
	st.pipeline[name] = res.Outputs
	st.ran++

	if res.Err != nil {
		if execID != "" {
			o.deps.Records.FinishExecution(ctx, execID, agentexecution.StatusFailed,
				res.Step.TokenUsage, res.Err.Error())
		}
		if ctx.Err() != nil && !st.deadline {
			st.deadline = true
			st.aborted = true
			st.abortReason = abortReasonFor(ctx)
			o.appendControlStep(ctx, st, name, st.abortReason,
				map[string]any{"error": st.abortReason})
		}
		return res
	}

	st.succeeded++
	if execID != "" {
		o.deps.Records.FinishExecution(ctx, execID, agentexecution.StatusCompleted,
			res.Step.TokenUsage, "")
	}
	return res
}

// abortReasonFor names why the run context ended.
func abortReasonFor(ctx context.Context) string {
	if errors.Is(ctx.Err(), context.Canceled) {
		return "cancelled"
	}
	return "deadline_exceeded"
}

// needsApproval applies the autonomy policy for roster stages. Research
// runs use checkpoints instead.
func (o *Orchestrator) needsApproval(stage models.Stage, level models.AutonomyLevel) bool {
	switch level {
	case models.AutonomyAutonomous, models.AutonomyResearch:
		return false
	case models.AutonomyManual:
		return true
	default:
		return o.critical[stage]
	}
}

// researchCheckpoint gates a research-mode checkpoint. Non-research runs
// and inactive checkpoints pass through.
func (o *Orchestrator) researchCheckpoint(ctx context.Context, st *runState, checkpoint string, active bool) {
	if st.level != models.AutonomyResearch || !active || st.aborted || ctx.Err() != nil {
		return
	}
	desc := fmt.Sprintf("Research checkpoint %s for case %s", checkpoint, st.caseID)
	o.awaitApproval(ctx, st, checkpoint, desc)
}

// awaitApproval requests an approval and blocks for the decision. A
// non-approved outcome aborts the remaining stages and is recorded as an
// audit step.
func (o *Orchestrator) awaitApproval(ctx context.Context, st *runState, stage, description string) bool {
	info, err := o.deps.Gate.Request(ctx, st.caseID, stage, description, st.level)
	if err != nil {
		o.logger.Error("Approval request failed", "case_id", st.caseID, "stage", stage, "error", err)
		o.abortRun(ctx, st, stage, "approval_unavailable", map[string]any{"error": err.Error()})
		return false
	}

	outcome, err := o.deps.Gate.WaitFor(ctx, info.ApprovalID)
	if err != nil {
		o.logger.Warn("Approval wait failed", "approval_id", info.ApprovalID, "error", err)
		outcome = approval.OutcomeCancelled
	}
	if outcome == approval.OutcomeApproved {
		return true
	}

	o.abortRun(ctx, st, stage, "approval_"+string(outcome), map[string]any{
		"approval_id": info.ApprovalID,
		"description": description,
	})
	return false
}

// abortRun records a run-terminating observation as an audit step and
// marks the remaining stages skipped.
func (o *Orchestrator) abortRun(ctx context.Context, st *runState, stage, reason string, inputs map[string]any) {
	st.aborted = true
	st.abortReason = reason
	o.appendControlStep(ctx, st, stage, reason, inputs)
	o.deps.Records.SkipExecution(context.WithoutCancel(ctx), st.caseID, stage, reason)
	o.logger.Info("Run aborted", "case_id", st.caseID, "stage", stage, "reason", reason)
}

// appendControlStep documents a pipeline control event (abort, deadline)
// in the case's audit chain.
func (o *Orchestrator) appendControlStep(ctx context.Context, st *runState, stage, reason string, inputs map[string]any) {
	step := &models.AgentStep{
		CaseID: st.caseID,
		Agent: models.AgentInfo{
			Name: stage,
			Role: "pipeline control",
		},
		PromptVersion: "n/a",
		AutonomyLevel: st.level,
		Inputs:        inputs,
		Observations:  []string{reason},
	}
	appended, err := o.deps.Chain.Append(context.WithoutCancel(ctx), step)
	if err != nil {
		o.logger.Error("Failed to record control step", "case_id", st.caseID, "error", err)
		return
	}
	st.trail = append(st.trail, appended)
}

// recordDeadline documents the ended run context once and skips the stage.
func (o *Orchestrator) recordDeadline(ctx context.Context, st *runState, stage models.Stage) {
	reason := abortReasonFor(ctx)
	if st.deadline {
		o.deps.Records.SkipExecution(context.WithoutCancel(ctx), st.caseID, string(stage), reason)
		return
	}
	st.deadline = true
	o.abortRun(ctx, st, string(stage), reason, map[string]any{"error": reason})
}

// curateKnowledge runs the knowledge curator over a finished run and
// ingests the extracted items. Best-effort; curation failures never
// degrade the run outcome.
func (o *Orchestrator) curateKnowledge(ctx context.Context, st *runState) {
	if o.deps.Knowledge == nil || st.aborted || st.succeeded == 0 || ctx.Err() != nil {
		return
	}
	res := o.runAgent(ctx, st, agent.KnowledgeAgent, o.curator, curatorInputs(st),
		[]string{"extract durable facts", "tag and score trust"})
	if res == nil || res.Err != nil || res.Degraded {
		return
	}
	ids := o.deps.Knowledge.IngestCurated(ctx, st.caseID, res.Outputs)
	if len(ids) > 0 {
		o.logger.Info("Curated knowledge ingested", "case_id", st.caseID, "items", len(ids))
	}
}

// finish writes the terminal case state, persists report artifacts and
// assembles the result. Runs on a non-cancellable context so a hit
// deadline cannot lose the terminal row.
func (o *Orchestrator) finish(ctx context.Context, st *runState) (*EnrichResult, error) {
	status := StatusCompleted
	var errMsg string
	switch {
	case st.deadline:
		status = StatusPartial
		errMsg = st.abortReason
		if errMsg == "" {
			errMsg = "deadline_exceeded"
		}
	case st.ran > 0 && st.succeeded == 0:
		status = StatusFailed
		errMsg = firstStageError(st)
	}

	finalReport := st.reporting.IncidentReport
	if finalReport == "" && st.triage.Summary != "" {
		finalReport = fmt.Sprintf("# Case %s\n\n## Triage Summary\n\n%s\n", st.caseID, st.triage.Summary)
	}

	reports := make(map[string]string)
	if finalReport != "" {
		if row, err := o.deps.Records.SaveReport(ctx, st.caseID, "final_report", finalReport); err == nil {
			reports["final_report"] = row.ID
		} else {
			o.logger.Warn("Failed to save final report", "case_id", st.caseID, "error", err)
		}
	}
	if st.reporting.ExecutiveSummary != "" {
		if row, err := o.deps.Records.SaveReport(ctx, st.caseID, "executive_summary", st.reporting.ExecutiveSummary); err == nil {
			reports["executive_summary"] = row.ID
		} else {
			o.logger.Warn("Failed to save executive summary", "case_id", st.caseID, "error", err)
		}
	}

	caseStatus := entcase.StatusCompleted
	if status == StatusFailed {
		caseStatus = entcase.StatusFailed
	}
	if err := o.deps.Records.Finalize(ctx, st.caseID, caseStatus,
		st.entities.ToStringMap(), st.triage.Severity, st.totals, errMsg); err != nil {
		o.logger.Error("Failed to finalize case", "case_id", st.caseID, "error", err)
	}

	o.logger.Info("Enrichment finished",
		"case_id", st.caseID, "status", status,
		"steps", len(st.trail), "total_tokens", st.totals.TotalTokens,
		"cost_usd", st.totals.CostUSD)

	iocs := st.investigation.IOCSet
	if iocs.IsEmpty() {
		iocs = st.reporting.IOCs
	}
	return &EnrichResult{
		CaseID:               st.caseID,
		Status:               status,
		Entities:             st.entities.ToStringMap(),
		RelatedCases:         st.related,
		TotalCostUSD:         st.totals.CostUSD,
		TotalTokens:          st.totals.TotalTokens,
		AuditTrail:           st.trail,
		StepsCount:           len(st.trail),
		PipelineResults:      st.pipeline,
		FinalReport:          finalReport,
		TriageAssessment:     st.pipeline[string(models.StageTriage)],
		InvestigationSummary: st.pipeline[string(models.StageInvestigation)],
		AttackStory:          models.ToMap(st.correlation.AttackStory),
		ContainmentActions:   st.response.ContainmentActions,
		IOCSet:               iocs,
		Reports:              reports,
	}, nil
}

// firstStageError surfaces the first recorded stage failure.
func firstStageError(st *runState) string {
	for _, step := range st.trail {
		if msg, ok := step.Outputs["error"].(string); ok && msg != "" {
			return msg
		}
	}
	return "all stages failed"
}

// loadSummary reads the KV case summary, synthesizing a minimal one when
// the case is unknown to the store.
func (o *Orchestrator) loadSummary(ctx context.Context, caseID string) *kv.CaseSummary {
	if o.deps.Store != nil {
		if summary, err := o.deps.Store.GetSummary(ctx, caseID); err == nil {
			return summary
		} else if !errors.Is(err, kv.ErrNotFound) {
			o.logger.Warn("Case summary load failed", "case_id", caseID, "error", err)
		}
	}
	return &kv.CaseSummary{CaseID: caseID, CreatedAt: time.Now().UTC()}
}

// indexCase refreshes the entity indices and the stored summary after
// triage settled the entity bag.
func (o *Orchestrator) indexCase(ctx context.Context, st *runState, summary *kv.CaseSummary) {
	if ctx.Err() != nil {
		return
	}
	if o.deps.Similarity != nil {
		if err := o.deps.Similarity.IndexCase(ctx, st.caseID, st.entities); err != nil {
			o.logger.Warn("Entity indexing failed", "case_id", st.caseID, "error", err)
		}
	}
	if o.deps.Store != nil {
		summary.Entities = st.entities.ToStringMap()
		if err := o.deps.Store.StoreCase(ctx, summary); err != nil {
			o.logger.Warn("Case summary store failed", "case_id", st.caseID, "error", err)
		}
	}
}

// commitGraph mirrors the case, its rule, entities and similarity edges
// into the graph store.
func (o *Orchestrator) commitGraph(ctx context.Context, st *runState, summary *kv.CaseSummary, enr *enrichmentData) {
	if o.deps.Graph == nil || ctx.Err() != nil {
		return
	}
	if err := o.deps.Graph.CommitCase(ctx, st.caseID, summary.RuleID, enr.ruleName,
		st.entities, st.related); err != nil {
		o.logger.Warn("Graph commit failed", "case_id", st.caseID, "error", err)
	}
}

// Package services holds the relational-store services behind the HTTP
// surface and the orchestrator: case lifecycle, per-stage execution
// records, report artifacts and token statistics.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/agentexecution"
	"github.com/secopshq/caseflow/ent/caserecord"
	"github.com/secopshq/caseflow/ent/report"
	"github.com/secopshq/caseflow/pkg/models"
)

// ErrNotFound is returned when a case or report is absent.
var ErrNotFound = errors.New("not found")

// CaseService manages case lifecycle rows, execution records and reports.
type CaseService struct {
	client     *ent.Client
	reportsDir string
	logger     *slog.Logger
}

// NewCaseService creates the service. reportsDir is where report
// artifacts are written alongside their relational rows.
func NewCaseService(client *ent.Client, reportsDir string) *CaseService {
	return &CaseService{
		client:     client,
		reportsDir: reportsDir,
		logger:     slog.Default().With("component", "case_service"),
	}
}

// EnsureCase creates the case row if missing and returns it. Re-running
// enrichment on a known case reuses the existing row.
func (s *CaseService) EnsureCase(ctx context.Context, caseID, title, description, severity string) (*ent.CaseRecord, error) {
	existing, err := s.client.CaseRecord.Get(ctx, caseID)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("load case %s: %w", caseID, err)
	}

	created, err := s.client.CaseRecord.Create().
		SetID(caseID).
		SetTitle(title).
		SetDescription(description).
		SetSeverity(severity).
		Save(ctx)
	if err != nil {
		// A concurrent request may have created it first.
		if ent.IsConstraintError(err) {
			return s.client.CaseRecord.Get(ctx, caseID)
		}
		return nil, fmt.Errorf("create case %s: %w", caseID, err)
	}
	s.logger.Info("Case created", "case_id", caseID)
	return created, nil
}

// MarkAnalyzing moves a case into the analyzing state for a new run.
func (s *CaseService) MarkAnalyzing(ctx context.Context, caseID string, level models.AutonomyLevel) error {
	err := s.client.CaseRecord.UpdateOneID(caseID).
		SetStatus(caserecord.StatusAnalyzing).
		SetAutonomyLevel(string(level)).
		SetCurrentStep(string(models.StageTriage)).
		ClearErrorMessage().
		ClearCompletedAt().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark case %s analyzing: %w", caseID, err)
	}
	return nil
}

// SetCurrentStep records which stage is executing.
func (s *CaseService) SetCurrentStep(ctx context.Context, caseID string, stage models.Stage) {
	if err := s.client.CaseRecord.UpdateOneID(caseID).
		SetCurrentStep(string(stage)).
		Exec(ctx); err != nil {
		s.logger.Warn("Failed to update current step", "case_id", caseID, "error", err)
	}
}

// Finalize writes the terminal state of a run: status, totals, entities
// and classification. Totals are additive so re-enriching a case keeps
// the spend of earlier runs.
func (s *CaseService) Finalize(ctx context.Context, caseID string, status caserecord.Status, entities map[string][]string, threat string, usage models.TokenUsage, errMsg string) error {
	update := s.client.CaseRecord.UpdateOneID(caseID).
		SetStatus(status).
		AddActualCost(usage.CostUSD).
		AddActualTokens(usage.TotalTokens).
		SetCompletedAt(time.Now()).
		ClearCurrentStep()
	if entities != nil {
		update = update.SetEntities(entities)
	}
	if threat != "" {
		update = update.SetThreatClassification(threat)
	}
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("finalize case %s: %w", caseID, err)
	}
	return nil
}

// Get returns one case row.
func (s *CaseService) Get(ctx context.Context, caseID string) (*ent.CaseRecord, error) {
	row, err := s.client.CaseRecord.Get(ctx, caseID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: case %s", ErrNotFound, caseID)
		}
		return nil, fmt.Errorf("load case %s: %w", caseID, err)
	}
	return row, nil
}

// Active returns cases currently pending or analyzing, newest first.
func (s *CaseService) Active(ctx context.Context) ([]*ent.CaseRecord, error) {
	rows, err := s.client.CaseRecord.Query().
		Where(caserecord.StatusIn(caserecord.StatusPending, caserecord.StatusAnalyzing)).
		Order(ent.Desc(caserecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active cases: %w", err)
	}
	return rows, nil
}

// All returns every case, newest first.
func (s *CaseService) All(ctx context.Context) ([]*ent.CaseRecord, error) {
	rows, err := s.client.CaseRecord.Query().
		Order(ent.Desc(caserecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return rows, nil
}

// StartExecution records an active agent execution and returns its id.
func (s *CaseService) StartExecution(ctx context.Context, caseID, agentName string) (string, error) {
	row, err := s.client.AgentExecution.Create().
		SetID(uuid.NewString()).
		SetCaseID(caseID).
		SetAgentName(agentName).
		SetStatus(agentexecution.StatusActive).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("start execution %s/%s: %w", caseID, agentName, err)
	}
	return row.ID, nil
}

// FinishExecution closes an execution record with its outcome and usage.
func (s *CaseService) FinishExecution(ctx context.Context, executionID string, status agentexecution.Status, usage models.TokenUsage, errMsg string) {
	row, err := s.client.AgentExecution.Get(ctx, executionID)
	if err != nil {
		s.logger.Warn("Failed to load execution", "execution_id", executionID, "error", err)
		return
	}

	now := time.Now()
	update := s.client.AgentExecution.UpdateOneID(executionID).
		SetStatus(status).
		SetCompletedAt(now).
		SetInputTokens(usage.InputTokens).
		SetOutputTokens(usage.OutputTokens).
		SetTotalTokens(usage.TotalTokens).
		SetCostUsd(usage.CostUSD)
	if row.StartedAt != nil {
		update = update.SetDurationMs(int(now.Sub(*row.StartedAt).Milliseconds()))
	}
	if errMsg != "" {
		update = update.SetErrorMessage(errMsg)
	}
	if err := update.Exec(ctx); err != nil {
		s.logger.Warn("Failed to finish execution", "execution_id", executionID, "error", err)
	}
}

// SkipExecution records a stage that never ran (aborted approval,
// deadline, failed dependency).
func (s *CaseService) SkipExecution(ctx context.Context, caseID, agentName, reason string) {
	err := s.client.AgentExecution.Create().
		SetID(uuid.NewString()).
		SetCaseID(caseID).
		SetAgentName(agentName).
		SetStatus(agentexecution.StatusSkipped).
		SetErrorMessage(reason).
		Exec(ctx)
	if err != nil {
		s.logger.Warn("Failed to record skipped execution",
			"case_id", caseID, "agent", agentName, "error", err)
	}
}

// Executions returns a case's execution records in creation order.
func (s *CaseService) Executions(ctx context.Context, caseID string) ([]*ent.AgentExecution, error) {
	rows, err := s.client.AgentExecution.Query().
		Where(agentexecution.CaseID(caseID)).
		Order(ent.Asc(agentexecution.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list executions for case %s: %w", caseID, err)
	}
	return rows, nil
}

// SaveReport persists a report artifact to the relational store and,
// when a reports directory is configured, to disk. The row survives a
// failed disk write.
func (s *CaseService) SaveReport(ctx context.Context, caseID, reportType, content string) (*ent.Report, error) {
	var filePath string
	if s.reportsDir != "" {
		filePath = filepath.Join(s.reportsDir, fmt.Sprintf("%s_%s.md", caseID, reportType))
		if err := os.MkdirAll(s.reportsDir, 0o755); err != nil {
			s.logger.Warn("Failed to create reports dir", "dir", s.reportsDir, "error", err)
			filePath = ""
		} else if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
			s.logger.Warn("Failed to write report file", "path", filePath, "error", err)
			filePath = ""
		}
	}

	row, err := s.client.Report.Create().
		SetID(uuid.NewString()).
		SetCaseID(caseID).
		SetReportType(reportType).
		SetContent(content).
		SetFilePath(filePath).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save report %s/%s: %w", caseID, reportType, err)
	}
	s.logger.Info("Report saved", "case_id", caseID, "report_type", reportType, "path", filePath)
	return row, nil
}

// Reports lists a case's report artifacts, newest first.
func (s *CaseService) Reports(ctx context.Context, caseID string) ([]*ent.Report, error) {
	rows, err := s.client.Report.Query().
		Where(report.CaseID(caseID)).
		Order(ent.Desc(report.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports for case %s: %w", caseID, err)
	}
	return rows, nil
}

// Report returns the newest report of one type for a case.
func (s *CaseService) Report(ctx context.Context, caseID, reportType string) (*ent.Report, error) {
	row, err := s.client.Report.Query().
		Where(report.CaseID(caseID), report.ReportType(reportType)).
		Order(ent.Desc(report.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: report %s for case %s", ErrNotFound, reportType, caseID)
		}
		return nil, fmt.Errorf("load report %s/%s: %w", caseID, reportType, err)
	}
	return row, nil
}

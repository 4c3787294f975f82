// Package approval implements the human approval gate: a per-approval
// state machine (pending -> approved | rejected | expired) persisted in
// the relational store, with KV notifications for operator tooling.
package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/secopshq/caseflow/ent"
	entapproval "github.com/secopshq/caseflow/ent/approval"
	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/models"
)

// Sentinel outcomes of Decide.
var (
	ErrNotFound       = errors.New("approval not found")
	ErrAlreadyDecided = errors.New("approval already decided")
)

// Outcome is the terminal state WaitFor resolves to. "cancelled" means
// the waiting context ended first; the approval row stays pending for
// operator cleanup.
type Outcome string

// WaitFor outcomes.
const (
	OutcomeApproved  Outcome = "approved"
	OutcomeRejected  Outcome = "rejected"
	OutcomeExpired   Outcome = "expired"
	OutcomeCancelled Outcome = "cancelled"
)

// Info is the API-facing view of one approval.
type Info struct {
	ApprovalID    string     `json:"approval_id"`
	CaseID        string     `json:"case_id"`
	AgentName     string     `json:"agent_name"`
	Description   string     `json:"description"`
	AutonomyLevel string     `json:"autonomy_level"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	DecidedBy     *string    `json:"decided_by,omitempty"`
	DecidedAt     *time.Time `json:"decided_at,omitempty"`
	Reason        *string    `json:"reason,omitempty"`
}

// Gate persists approvals and blocks stages until a terminal decision.
type Gate struct {
	client *ent.Client
	store  *kv.Client
	cfg    config.ApprovalsConfig
	// timeoutFor maps autonomy level to the pending budget.
	timeoutFor func(models.AutonomyLevel) time.Duration
	logger     *slog.Logger
}

// NewGate creates a gate. store may be nil in tests; KV mirroring is
// best-effort either way.
func NewGate(client *ent.Client, store *kv.Client, cfg *config.Config) *Gate {
	return &Gate{
		client:     client,
		store:      store,
		cfg:        cfg.Approvals,
		timeoutFor: cfg.ApprovalTimeout,
		logger:     slog.Default().With("component", "approval"),
	}
}

// Request persists a pending approval for one stage of one case and
// notifies operator tooling.
func (g *Gate) Request(ctx context.Context, caseID, stage, description string, level models.AutonomyLevel) (*Info, error) {
	row, err := g.client.Approval.Create().
		SetID(uuid.NewString()).
		SetCaseID(caseID).
		SetAgentName(stage).
		SetDescription(description).
		SetAutonomyLevel(string(level)).
		SetExpiresAt(time.Now().Add(g.timeoutFor(level))).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create approval for case %s stage %s: %w", caseID, stage, err)
	}

	info := infoFromRow(row)
	g.mirror(ctx, info)
	if g.store != nil {
		if err := g.store.NotifyApproval(ctx, info.ApprovalID); err != nil {
			g.logger.Warn("Approval notification failed", "approval_id", info.ApprovalID, "error", err)
		}
	}

	g.logger.Info("Approval requested",
		"approval_id", info.ApprovalID, "case_id", caseID, "stage", stage,
		"expires_at", info.ExpiresAt)
	return info, nil
}

// Decide applies a human decision. Idempotent on terminal rows: deciding
// an already-decided approval returns ErrAlreadyDecided and changes
// nothing. The conditional update makes concurrent decisions race-safe;
// only one transition out of pending ever wins.
func (g *Gate) Decide(ctx context.Context, approvalID string, approved bool, decidedBy, reason string) (*Info, error) {
	status := entapproval.StatusRejected
	if approved {
		status = entapproval.StatusApproved
	}

	update := g.client.Approval.Update().
		Where(entapproval.ID(approvalID), entapproval.StatusEQ(entapproval.StatusPending)).
		SetStatus(status).
		SetDecidedBy(decidedBy).
		SetDecidedAt(time.Now())
	if reason != "" {
		update = update.SetReason(reason)
	}

	n, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("decide approval %s: %w", approvalID, err)
	}
	if n == 0 {
		row, err := g.client.Approval.Get(ctx, approvalID)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, approvalID)
			}
			return nil, fmt.Errorf("load approval %s: %w", approvalID, err)
		}
		return infoFromRow(row), ErrAlreadyDecided
	}

	row, err := g.client.Approval.Get(ctx, approvalID)
	if err != nil {
		return nil, fmt.Errorf("load approval %s: %w", approvalID, err)
	}
	info := infoFromRow(row)
	g.mirror(ctx, info)
	g.logger.Info("Approval decided",
		"approval_id", approvalID, "status", info.Status, "decided_by", decidedBy)
	return info, nil
}

// Get returns one approval.
func (g *Gate) Get(ctx context.Context, approvalID string) (*Info, error) {
	row, err := g.client.Approval.Get(ctx, approvalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, approvalID)
		}
		return nil, fmt.Errorf("load approval %s: %w", approvalID, err)
	}
	return infoFromRow(row), nil
}

// ListPending returns pending approvals, optionally scoped to one case.
func (g *Gate) ListPending(ctx context.Context, caseID string) ([]*Info, error) {
	q := g.client.Approval.Query().
		Where(entapproval.StatusEQ(entapproval.StatusPending)).
		Order(ent.Asc(entapproval.FieldCreatedAt))
	if caseID != "" {
		q = q.Where(entapproval.CaseID(caseID))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending approvals: %w", err)
	}
	infos := make([]*Info, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, infoFromRow(row))
	}
	return infos, nil
}

// List returns approvals filtered by status ("" = all), newest first.
func (g *Gate) List(ctx context.Context, status string) ([]*Info, error) {
	q := g.client.Approval.Query().Order(ent.Desc(entapproval.FieldCreatedAt))
	if status != "" {
		q = q.Where(entapproval.StatusEQ(entapproval.Status(status)))
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approvals: %w", err)
	}
	infos := make([]*Info, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, infoFromRow(row))
	}
	return infos, nil
}

// WaitFor polls until the approval reaches a terminal state, expires, or
// ctx ends. It never blocks past the row's expiry: on timeout the row is
// transitioned to expired (conditionally, so a concurrent decision wins).
func (g *Gate) WaitFor(ctx context.Context, approvalID string) (Outcome, error) {
	interval := g.cfg.PollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		info, err := g.Get(ctx, approvalID)
		if err != nil {
			return OutcomeCancelled, err
		}

		switch info.Status {
		case string(entapproval.StatusApproved):
			return OutcomeApproved, nil
		case string(entapproval.StatusRejected):
			return OutcomeRejected, nil
		case string(entapproval.StatusExpired):
			return OutcomeExpired, nil
		}

		if time.Now().After(info.ExpiresAt) {
			if err := g.expire(ctx, approvalID); err != nil {
				g.logger.Warn("Failed to expire approval", "approval_id", approvalID, "error", err)
			}
			continue
		}

		select {
		case <-ctx.Done():
			// Leave the row pending for operator cleanup.
			g.logger.Info("Approval wait cancelled", "approval_id", approvalID)
			return OutcomeCancelled, nil
		case <-ticker.C:
		}
	}
}

// expire conditionally moves a pending, past-deadline approval to expired.
func (g *Gate) expire(ctx context.Context, approvalID string) error {
	n, err := g.client.Approval.Update().
		Where(
			entapproval.ID(approvalID),
			entapproval.StatusEQ(entapproval.StatusPending),
			entapproval.ExpiresAtLT(time.Now()),
		).
		SetStatus(entapproval.StatusExpired).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		g.logger.Info("Approval expired", "approval_id", approvalID)
		if info, err := g.Get(ctx, approvalID); err == nil {
			g.mirror(ctx, info)
		}
	}
	return nil
}

// mirror pushes the approval state into KV for dashboards. Best-effort;
// REL remains the source of truth.
func (g *Gate) mirror(ctx context.Context, info *Info) {
	if g.store == nil {
		return
	}
	fields := map[string]string{
		"case_id":    info.CaseID,
		"agent_name": info.AgentName,
		"status":     info.Status,
		"expires_at": info.ExpiresAt.UTC().Format(time.RFC3339),
	}
	if err := g.store.SetApprovalState(ctx, info.ApprovalID, fields); err != nil {
		g.logger.Warn("Approval KV mirror failed", "approval_id", info.ApprovalID, "error", err)
	}
}

func infoFromRow(row *ent.Approval) *Info {
	return &Info{
		ApprovalID:    row.ID,
		CaseID:        row.CaseID,
		AgentName:     row.AgentName,
		Description:   row.Description,
		AutonomyLevel: row.AutonomyLevel,
		Status:        string(row.Status),
		CreatedAt:     row.CreatedAt,
		ExpiresAt:     row.ExpiresAt,
		DecidedBy:     row.DecidedBy,
		DecidedAt:     row.DecidedAt,
		Reason:        row.Reason,
	}
}

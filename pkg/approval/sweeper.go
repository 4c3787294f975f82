package approval

import (
	"context"
	"log/slog"
	"time"

	entapproval "github.com/secopshq/caseflow/ent/approval"
)

// Sweeper periodically expires pending approvals whose deadline has
// passed while nobody was waiting on them (e.g. after an orchestrator
// crash or a cancelled request).
type Sweeper struct {
	gate     *Gate
	interval time.Duration
	logger   *slog.Logger
}

// NewSweeper creates a sweeper over the gate.
func NewSweeper(gate *Gate) *Sweeper {
	interval := gate.cfg.SweepInterval
	if interval <= 0 {
		interval = time.Minute
	}
	return &Sweeper{
		gate:     gate,
		interval: interval,
		logger:   slog.Default().With("component", "approval_sweeper"),
	}
}

// Start runs the sweep loop until ctx is cancelled.
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("Approval sweeper started", "interval", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Approval sweeper stopped")
			return
		case <-ticker.C:
			if n, err := s.Sweep(ctx); err != nil {
				s.logger.Error("Approval sweep failed", "error", err)
			} else if n > 0 {
				s.logger.Info("Expired stale approvals", "count", n)
			}
		}
	}
}

// Sweep expires every pending approval past its deadline and returns how
// many rows were transitioned. The conditional update keeps it race-safe
// against concurrent decisions.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	n, err := s.gate.client.Approval.Update().
		Where(
			entapproval.StatusEQ(entapproval.StatusPending),
			entapproval.ExpiresAtLT(time.Now()),
		).
		SetStatus(entapproval.StatusExpired).
		Save(ctx)
	if err != nil {
		return 0, err
	}
	return n, nil
}

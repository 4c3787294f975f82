package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/agentprompt"
)

// ErrNotFound is returned when no prompt exists for an agent or version.
var ErrNotFound = errors.New("prompt not found")

// Info is the API-facing view of one prompt version.
type Info struct {
	PromptID   string    `json:"prompt_id"`
	AgentName  string    `json:"agent_name"`
	Version    string    `json:"version"`
	Content    string    `json:"content,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedBy string    `json:"modified_by"`
	IsActive   bool      `json:"is_active"`
}

// Store reads and writes agent prompts. History is append-only: an update
// creates a new version and flips the active flag, it never rewrites rows.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStore creates a prompt store.
func NewStore(client *ent.Client) *Store {
	return &Store{
		client: client,
		logger: slog.Default().With("component", "prompt_store"),
	}
}

// Active returns the active prompt for an agent, content included.
func (s *Store) Active(ctx context.Context, agentName string) (*Info, error) {
	row, err := s.client.AgentPrompt.Query().
		Where(agentprompt.AgentName(agentName), agentprompt.IsActive(true)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no active prompt for agent %s", ErrNotFound, agentName)
		}
		return nil, fmt.Errorf("query active prompt for %s: %w", agentName, err)
	}
	return infoFromRow(row, true), nil
}

// Version returns one specific prompt version for an agent.
func (s *Store) Version(ctx context.Context, agentName, version string) (*Info, error) {
	row, err := s.client.AgentPrompt.Query().
		Where(agentprompt.AgentName(agentName), agentprompt.Version(version)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: agent %s version %s", ErrNotFound, agentName, version)
		}
		return nil, fmt.Errorf("query prompt %s %s: %w", agentName, version, err)
	}
	return infoFromRow(row, true), nil
}

// Versions lists an agent's prompt history, newest first, without content.
func (s *Store) Versions(ctx context.Context, agentName string) ([]*Info, error) {
	rows, err := s.client.AgentPrompt.Query().
		Where(agentprompt.AgentName(agentName)).
		Order(ent.Desc(agentprompt.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query prompt versions for %s: %w", agentName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: agent %s", ErrNotFound, agentName)
	}

	infos := make([]*Info, 0, len(rows))
	for _, row := range rows {
		infos = append(infos, infoFromRow(row, false))
	}
	return infos, nil
}

// Update stores new prompt content as the next version and makes it active.
// The previous active version is deactivated in the same transaction; a
// concurrent update loses on the partial unique index over active rows.
// An agent with no prompt history at all is bootstrapped at v1.0.
func (s *Store) Update(ctx context.Context, agentName, content, modifiedBy string) (*Info, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("update prompt for %s: content is empty", agentName)
	}
	if modifiedBy == "" {
		modifiedBy = "unknown"
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin prompt tx: %w", err)
	}

	info, err := s.updateTx(ctx, tx, agentName, content, modifiedBy)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			s.logger.Error("Failed to rollback prompt tx", "error", rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit prompt update for %s: %w", agentName, err)
	}

	s.logger.Info("Prompt updated",
		"agent", agentName, "version", info.Version, "modified_by", modifiedBy)
	return info, nil
}

func (s *Store) updateTx(ctx context.Context, tx *ent.Tx, agentName, content, modifiedBy string) (*Info, error) {
	current, err := tx.AgentPrompt.Query().
		Where(agentprompt.AgentName(agentName), agentprompt.IsActive(true)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("query active prompt for %s: %w", agentName, err)
		}
		exists, eerr := tx.AgentPrompt.Query().
			Where(agentprompt.AgentName(agentName)).
			Exist(ctx)
		if eerr != nil {
			return nil, fmt.Errorf("check prompts for %s: %w", agentName, eerr)
		}
		if exists {
			// History without an active row needs operator repair, not
			// a silent new version.
			return nil, fmt.Errorf("%w: no active prompt for agent %s", ErrNotFound, agentName)
		}
		row, cerr := tx.AgentPrompt.Create().
			SetID(uuid.NewString()).
			SetAgentName(agentName).
			SetVersion(InitialVersion).
			SetContent(content).
			SetModifiedBy(modifiedBy).
			SetIsActive(true).
			Save(ctx)
		if cerr != nil {
			return nil, fmt.Errorf("create prompt %s %s: %w", agentName, InitialVersion, cerr)
		}
		return infoFromRow(row, true), nil
	}

	next, err := NextVersion(current.Version)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", agentName, err)
	}

	if _, err := tx.AgentPrompt.UpdateOne(current).SetIsActive(false).Save(ctx); err != nil {
		return nil, fmt.Errorf("deactivate prompt %s %s: %w", agentName, current.Version, err)
	}

	row, err := tx.AgentPrompt.Create().
		SetID(uuid.NewString()).
		SetAgentName(agentName).
		SetVersion(next).
		SetContent(content).
		SetModifiedBy(modifiedBy).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create prompt %s %s: %w", agentName, next, err)
	}
	return infoFromRow(row, true), nil
}

// SeedDefaults inserts the built-in v1.0 prompt for every agent that has no
// prompt rows yet. Existing agents are left untouched, so operator edits
// survive restarts.
func (s *Store) SeedDefaults(ctx context.Context) error {
	for agentName, content := range DefaultPrompts {
		exists, err := s.client.AgentPrompt.Query().
			Where(agentprompt.AgentName(agentName)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check prompts for %s: %w", agentName, err)
		}
		if exists {
			continue
		}

		if _, err := s.client.AgentPrompt.Create().
			SetID(uuid.NewString()).
			SetAgentName(agentName).
			SetVersion(InitialVersion).
			SetContent(content).
			SetModifiedBy("system").
			SetIsActive(true).
			Save(ctx); err != nil {
			return fmt.Errorf("seed prompt for %s: %w", agentName, err)
		}
		s.logger.Info("Seeded default prompt", "agent", agentName, "version", InitialVersion)
	}
	return nil
}

func infoFromRow(row *ent.AgentPrompt, withContent bool) *Info {
	info := &Info{
		PromptID:   row.ID,
		AgentName:  row.AgentName,
		Version:    row.Version,
		CreatedAt:  row.CreatedAt,
		ModifiedBy: row.ModifiedBy,
		IsActive:   row.IsActive,
	}
	if withContent {
		info.Content = row.Content
	}
	return info
}

// Package vector is the pgvector-backed store for knowledge item
// embeddings. It shares the relational database connection; the
// collection table and extension are ensured at startup, outside the
// migration set.
package vector

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Hit is one search or scroll result.
type Hit struct {
	ID      string         `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// Store holds one pgvector collection.
type Store struct {
	db     *sql.DB
	table  string
	dim    int
	logger *slog.Logger
}

// NewStore creates a store over the given collection table. Call
// EnsureCollection before first use.
func NewStore(db *sql.DB, table string, dim int) *Store {
	return &Store{
		db:     db,
		table:  table,
		dim:    dim,
		logger: slog.Default().With("component", "vector_store", "collection", table),
	}
}

// EnsureCollection creates the pgvector extension, the collection table
// and its cosine index if missing. Idempotent.
func (s *Store) EnsureCollection(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id UUID PRIMARY KEY,
			embedding vector(%d) NOT NULL,
			payload JSONB NOT NULL DEFAULT '{}'::jsonb
		)`, s.table, s.dim),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s_payload_knowledge_id
			ON %s ((payload->>'knowledge_id'))`, s.table, s.table),
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure collection %s: %w", s.table, err)
		}
	}
	s.logger.Info("Vector collection ready", "dim", s.dim)
	return nil
}

// Upsert writes one vector row, replacing any existing row with the same id.
func (s *Store) Upsert(ctx context.Context, id string, embedding []float32, payload map[string]any) error {
	if len(embedding) != s.dim {
		return fmt.Errorf("upsert %s: embedding has %d dimensions, collection expects %d", id, len(embedding), s.dim)
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload for %s: %w", id, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, embedding, payload)
		VALUES ($1, $2::vector, $3)
		ON CONFLICT (id) DO UPDATE SET embedding = $2::vector, payload = $3`, s.table)
	if _, err := s.db.ExecContext(ctx, query, id, formatVector(embedding), raw); err != nil {
		return fmt.Errorf("upsert %s: %w", id, err)
	}
	return nil
}

// Search returns up to limit hits by cosine similarity, filtered to
// score >= minScore. Score is 1 - cosine distance.
func (s *Store) Search(ctx context.Context, embedding []float32, limit int, minScore float64) ([]Hit, error) {
	query := fmt.Sprintf(`
		SELECT id, payload, 1 - (embedding <=> $1::vector) AS score
		FROM %s
		ORDER BY embedding <=> $1::vector
		LIMIT $2`, s.table)
	rows, err := s.db.QueryContext(ctx, query, formatVector(embedding), limit)
	if err != nil {
		return nil, fmt.Errorf("vector search: %w", err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		hit, err := scanHit(rows)
		if err != nil {
			return nil, err
		}
		if hit.Score >= minScore {
			hits = append(hits, *hit)
		}
	}
	return hits, rows.Err()
}

// ScrollByPayloadID returns every row whose payload knowledge_id matches.
func (s *Store) ScrollByPayloadID(ctx context.Context, knowledgeID string) ([]Hit, error) {
	query := fmt.Sprintf(`
		SELECT id, payload, 1.0 AS score
		FROM %s
		WHERE payload->>'knowledge_id' = $1`, s.table)
	rows, err := s.db.QueryContext(ctx, query, knowledgeID)
	if err != nil {
		return nil, fmt.Errorf("vector scroll %s: %w", knowledgeID, err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		hit, err := scanHit(rows)
		if err != nil {
			return nil, err
		}
		hits = append(hits, *hit)
	}
	return hits, rows.Err()
}

// DeleteByPayloadID removes every row whose payload knowledge_id matches
// and reports how many were deleted.
func (s *Store) DeleteByPayloadID(ctx context.Context, knowledgeID string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE payload->>'knowledge_id' = $1`, s.table)
	res, err := s.db.ExecContext(ctx, query, knowledgeID)
	if err != nil {
		return 0, fmt.Errorf("vector delete %s: %w", knowledgeID, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func scanHit(rows *sql.Rows) (*Hit, error) {
	var hit Hit
	var raw []byte
	if err := rows.Scan(&hit.ID, &raw, &hit.Score); err != nil {
		return nil, fmt.Errorf("scan vector row: %w", err)
	}
	if err := json.Unmarshal(raw, &hit.Payload); err != nil {
		return nil, fmt.Errorf("decode payload for %s: %w", hit.ID, err)
	}
	return &hit, nil
}

// formatVector renders an embedding in pgvector text form: "[0.1,0.2]".
func formatVector(embedding []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range embedding {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}

package knowledge

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/secopshq/caseflow/pkg/graph"
	"github.com/secopshq/caseflow/pkg/models"
	"github.com/secopshq/caseflow/pkg/vector"
)

// Service ingests and retrieves knowledge items.
type Service struct {
	vectors  *vector.Store
	embedder vector.Embedder
	graph    *graph.Store
	logger   *slog.Logger
}

// NewService wires the knowledge service. graph may be nil when the
// graph mirror is disabled.
func NewService(vectors *vector.Store, embedder vector.Embedder, graphStore *graph.Store) *Service {
	return &Service{
		vectors:  vectors,
		embedder: embedder,
		graph:    graphStore,
		logger:   slog.Default().With("component", "knowledge"),
	}
}

// Ingest embeds and stores one item, assigning its content-addressed id.
// Idempotent: identical content upserts the same rows.
func (s *Service) Ingest(ctx context.Context, item models.KnowledgeItem) (string, error) {
	if strings.TrimSpace(item.Text) == "" {
		return "", fmt.Errorf("ingest knowledge: text is empty")
	}
	if item.Kind == "" {
		item.Kind = "fact"
	}
	if item.Author == "" {
		item.Author = "pipeline"
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	item.KnowledgeID = KnowledgeID(item.Author, item.Kind, item.Text)

	embedding, err := s.embedder.Embed(ctx, item.Title+"\n"+item.Text)
	if err != nil {
		return "", fmt.Errorf("embed knowledge %s: %w", item.KnowledgeID, err)
	}

	if err := s.vectors.Upsert(ctx, VectorID(item.KnowledgeID), embedding, itemPayload(item)); err != nil {
		return "", err
	}

	if s.graph != nil {
		if _, err := s.graph.MergeKnowledgeItem(ctx, item); err != nil {
			// The vector row is the source of truth; a failed graph
			// mirror degrades visualization only.
			s.logger.Warn("Knowledge graph mirror failed",
				"knowledge_id", item.KnowledgeID, "error", err)
		}
	}

	s.logger.Info("Knowledge item ingested",
		"knowledge_id", item.KnowledgeID, "kind", item.Kind, "case_id", item.CaseID)
	return item.KnowledgeID, nil
}

// Search embeds the query and returns the closest items.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]models.KnowledgeHit, error) {
	if limit <= 0 {
		limit = 10
	}
	embedding, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	raw, err := s.vectors.Search(ctx, embedding, limit, 0)
	if err != nil {
		return nil, err
	}

	hits := make([]models.KnowledgeHit, 0, len(raw))
	for _, hit := range raw {
		hits = append(hits, models.KnowledgeHit{
			Item:  itemFromPayload(hit.Payload),
			Score: hit.Score,
		})
	}
	return hits, nil
}

// Get returns the stored rows for one knowledge id.
func (s *Service) Get(ctx context.Context, knowledgeID string) ([]models.KnowledgeItem, error) {
	hits, err := s.vectors.ScrollByPayloadID(ctx, knowledgeID)
	if err != nil {
		return nil, err
	}
	items := make([]models.KnowledgeItem, 0, len(hits))
	for _, hit := range hits {
		items = append(items, itemFromPayload(hit.Payload))
	}
	return items, nil
}

// Delete removes one knowledge id from the vector store.
func (s *Service) Delete(ctx context.Context, knowledgeID string) (int64, error) {
	return s.vectors.DeleteByPayloadID(ctx, knowledgeID)
}

// IngestCurated stores the items the knowledge agent extracted from a
// completed case. Malformed entries are skipped, not fatal.
func (s *Service) IngestCurated(ctx context.Context, caseID string, outputs map[string]any) []string {
	raw, err := json.Marshal(outputs["items"])
	if err != nil {
		return nil
	}
	var items []models.KnowledgeItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("Curated knowledge items malformed, skipping", "case_id", caseID)
		return nil
	}

	var ids []string
	for _, item := range items {
		item.CaseID = caseID
		item.Author = "pipeline"
		id, err := s.Ingest(ctx, item)
		if err != nil {
			s.logger.Warn("Failed to ingest curated item", "case_id", caseID, "error", err)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func itemPayload(item models.KnowledgeItem) map[string]any {
	payload := map[string]any{
		"knowledge_id": item.KnowledgeID,
		"kind":         item.Kind,
		"author":       item.Author,
		"created_at":   item.CreatedAt.Format(time.RFC3339),
		"text":         item.Text,
		"trust":        item.Trust,
	}
	if item.CaseID != "" {
		payload["case_id"] = item.CaseID
	}
	if item.Title != "" {
		payload["title"] = item.Title
	}
	if len(item.Tags) > 0 {
		payload["tags"] = item.Tags
	}
	if len(item.Links) > 0 {
		payload["links"] = item.Links
	}
	return payload
}

func itemFromPayload(payload map[string]any) models.KnowledgeItem {
	item := models.KnowledgeItem{
		KnowledgeID: str(payload["knowledge_id"]),
		Kind:        str(payload["kind"]),
		Author:      str(payload["author"]),
		CaseID:      str(payload["case_id"]),
		Title:       str(payload["title"]),
		Text:        str(payload["text"]),
	}
	if ts, err := time.Parse(time.RFC3339, str(payload["created_at"])); err == nil {
		item.CreatedAt = ts
	}
	if trust, ok := payload["trust"].(float64); ok {
		item.Trust = trust
	}
	if tags, ok := payload["tags"].([]any); ok {
		for _, t := range tags {
			item.Tags = append(item.Tags, str(t))
		}
	}
	if links, ok := payload["links"].([]any); ok {
		for _, l := range links {
			item.Links = append(item.Links, str(l))
		}
	}
	return item
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

// Package graph maintains the case knowledge graph: Case, Rule, Entity
// and KnowledgeItem nodes with TRIGGERED_BY, OBSERVED_IN and RELATES_TO
// relationships. Nodes are keyed naturally ("<label>:<key>") so merges
// are idempotent.
package graph

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/graphedge"
	"github.com/secopshq/caseflow/ent/graphnode"
	"github.com/secopshq/caseflow/pkg/models"
)

// NodeID builds the natural node key.
func NodeID(label graphnode.Label, key string) string {
	return fmt.Sprintf("%s:%s", label, key)
}

// Store merges nodes and relationships into the graph tables.
type Store struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStore creates a graph store.
func NewStore(client *ent.Client) *Store {
	return &Store{
		client: client,
		logger: slog.Default().With("component", "graph"),
	}
}

func (s *Store) mergeNode(ctx context.Context, label graphnode.Label, key string, props map[string]any) (string, error) {
	id := NodeID(label, key)
	err := s.client.GraphNode.Create().
		SetID(id).
		SetLabel(label).
		SetProps(props).
		OnConflictColumns(graphnode.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("merge node %s: %w", id, err)
	}
	return id, nil
}

// MergeCase upserts a Case node and returns its node id.
func (s *Store) MergeCase(ctx context.Context, caseID string, props map[string]any) (string, error) {
	return s.mergeNode(ctx, graphnode.LabelCase, caseID, props)
}

// MergeRule upserts a Rule node.
func (s *Store) MergeRule(ctx context.Context, ruleID, ruleName string) (string, error) {
	return s.mergeNode(ctx, graphnode.LabelRule, ruleID, map[string]any{"name": ruleName})
}

// MergeEntity upserts an Entity node keyed by "<type>/<value>".
func (s *Store) MergeEntity(ctx context.Context, t models.EntityType, value string) (string, error) {
	key := fmt.Sprintf("%s/%s", t, strings.ToLower(value))
	return s.mergeNode(ctx, graphnode.LabelEntity, key, map[string]any{
		"entity_type": string(t),
		"value":       strings.ToLower(value),
	})
}

// MergeKnowledgeItem upserts a KnowledgeItem node carrying the full item
// as properties.
func (s *Store) MergeKnowledgeItem(ctx context.Context, item models.KnowledgeItem) (string, error) {
	return s.mergeNode(ctx, graphnode.LabelKnowledgeItem, item.KnowledgeID, map[string]any{
		"kind":       item.Kind,
		"author":     item.Author,
		"created_at": item.CreatedAt,
		"title":      item.Title,
		"text":       item.Text,
		"tags":       item.Tags,
		"trust":      item.Trust,
	})
}

func (s *Store) mergeEdge(ctx context.Context, srcID, dstID string, rel graphedge.RelType, props map[string]any) error {
	err := s.client.GraphEdge.Create().
		SetID(uuid.NewString()).
		SetSrcID(srcID).
		SetDstID(dstID).
		SetRelType(rel).
		SetProps(props).
		OnConflictColumns(graphedge.FieldSrcID, graphedge.FieldDstID, graphedge.FieldRelType).
		UpdateProps().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("merge edge %s-[%s]->%s: %w", srcID, rel, dstID, err)
	}
	return nil
}

// LinkTriggeredBy records (Case)-[:TRIGGERED_BY]->(Rule).
func (s *Store) LinkTriggeredBy(ctx context.Context, caseID, ruleID string) error {
	return s.mergeEdge(ctx,
		NodeID(graphnode.LabelCase, caseID),
		NodeID(graphnode.LabelRule, ruleID),
		graphedge.RelTypeTRIGGERED_BY, nil)
}

// LinkObservedIn records (Case)-[:OBSERVED_IN]->(Entity).
func (s *Store) LinkObservedIn(ctx context.Context, caseID string, t models.EntityType, value string) error {
	return s.mergeEdge(ctx,
		NodeID(graphnode.LabelCase, caseID),
		NodeID(graphnode.LabelEntity, fmt.Sprintf("%s/%s", t, strings.ToLower(value))),
		graphedge.RelTypeOBSERVED_IN, nil)
}

// LinkRelatesTo records (Case)-[:RELATES_TO {score}]->(Case). Re-linking
// updates the score.
func (s *Store) LinkRelatesTo(ctx context.Context, caseID, otherCaseID string, score float64) error {
	return s.mergeEdge(ctx,
		NodeID(graphnode.LabelCase, caseID),
		NodeID(graphnode.LabelCase, otherCaseID),
		graphedge.RelTypeRELATES_TO,
		map[string]any{"score": score})
}

// CommitCase merges everything one enriched case contributes to the
// graph in one call: the case node, its rule, observed entities and
// relations to similar cases.
func (s *Store) CommitCase(ctx context.Context, caseID, ruleID, ruleName string, bag models.EntityBag, similar []models.SimilarCase) error {
	if _, err := s.MergeCase(ctx, caseID, nil); err != nil {
		return err
	}
	if ruleID != "" {
		if _, err := s.MergeRule(ctx, ruleID, ruleName); err != nil {
			return err
		}
		if err := s.LinkTriggeredBy(ctx, caseID, ruleID); err != nil {
			return err
		}
	}
	for t, values := range bag {
		for _, v := range values {
			if _, err := s.MergeEntity(ctx, t, v); err != nil {
				return err
			}
			if err := s.LinkObservedIn(ctx, caseID, t, v); err != nil {
				return err
			}
		}
	}
	for _, sc := range similar {
		if _, err := s.MergeCase(ctx, sc.CaseID, nil); err != nil {
			return err
		}
		if err := s.LinkRelatesTo(ctx, caseID, sc.CaseID, sc.Score); err != nil {
			return err
		}
	}
	return nil
}

// Node is the visualization view of one graph node.
type Node struct {
	ID    string         `json:"id"`
	Label string         `json:"label"`
	Props map[string]any `json:"props,omitempty"`
}

// Edge is the visualization view of one relationship.
type Edge struct {
	Source  string         `json:"source"`
	Target  string         `json:"target"`
	RelType string         `json:"rel_type"`
	Props   map[string]any `json:"props,omitempty"`
}

// NodeTypeCount is one entry of the per-label node census.
type NodeTypeCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Summary aggregates the visualization.
type Summary struct {
	TotalNodes int             `json:"total_nodes"`
	TotalEdges int             `json:"total_edges"`
	NodeTypes  []NodeTypeCount `json:"node_types"`
}

// Visualization is the small read the knowledge-graph endpoint serves.
type Visualization struct {
	Nodes   []Node  `json:"nodes"`
	Edges   []Edge  `json:"edges"`
	Summary Summary `json:"summary"`
}

// Visualize reads up to limit nodes and their edges for display.
func (s *Store) Visualize(ctx context.Context, limit int) (*Visualization, error) {
	if limit <= 0 {
		limit = 500
	}

	nodeRows, err := s.client.GraphNode.Query().
		Order(ent.Asc(graphnode.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query graph nodes: %w", err)
	}
	edgeRows, err := s.client.GraphEdge.Query().
		Order(ent.Asc(graphedge.FieldID)).
		Limit(limit * 4).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query graph edges: %w", err)
	}

	viz := &Visualization{
		Nodes: make([]Node, 0, len(nodeRows)),
		Edges: make([]Edge, 0, len(edgeRows)),
	}
	byLabel := map[string]int{}
	for _, row := range nodeRows {
		viz.Nodes = append(viz.Nodes, Node{
			ID:    row.ID,
			Label: string(row.Label),
			Props: row.Props,
		})
		byLabel[string(row.Label)]++
	}
	for _, row := range edgeRows {
		viz.Edges = append(viz.Edges, Edge{
			Source:  row.SrcID,
			Target:  row.DstID,
			RelType: string(row.RelType),
			Props:   row.Props,
		})
	}

	viz.Summary = Summary{
		TotalNodes: len(viz.Nodes),
		TotalEdges: len(viz.Edges),
	}
	for _, label := range []graphnode.Label{
		graphnode.LabelCase, graphnode.LabelRule,
		graphnode.LabelEntity, graphnode.LabelKnowledgeItem,
	} {
		if n := byLabel[string(label)]; n > 0 {
			viz.Summary.NodeTypes = append(viz.Summary.NodeTypes, NodeTypeCount{
				Label: string(label),
				Count: n,
			})
		}
	}
	return viz, nil
}

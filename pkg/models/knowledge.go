package models

import "time"

// KnowledgeItem is one stored piece of analyst or pipeline knowledge,
// embedded into the vector store and mirrored into the graph.
type KnowledgeItem struct {
	KnowledgeID string    `json:"knowledge_id"`
	Kind        string    `json:"kind"`
	Author      string    `json:"author"`
	CreatedAt   time.Time `json:"created_at"`
	CaseID      string    `json:"case_id,omitempty"`
	Title       string    `json:"title,omitempty"`
	Text        string    `json:"text"`
	Tags        []string  `json:"tags,omitempty"`
	Links       []string  `json:"links,omitempty"`
	Trust       float64   `json:"trust"`
}

// KnowledgeHit is one similarity-search hit against the knowledge store.
type KnowledgeHit struct {
	Item  KnowledgeItem `json:"item"`
	Score float64       `json:"score"`
}

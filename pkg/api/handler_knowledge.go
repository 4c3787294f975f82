package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/secopshq/caseflow/pkg/models"
)

// KnowledgeIngestBody is the body of POST /knowledge/ingest.
type KnowledgeIngestBody struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Type    string   `json:"type"`
	Tags    []string `json:"tags"`
}

// knowledgeIngestHandler handles POST /knowledge/ingest.
func (s *Server) knowledgeIngestHandler(c *echo.Context) error {
	if s.knowledge == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "knowledge store is not configured")
	}

	var body KnowledgeIngestBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}
	if body.Type == "" {
		body.Type = "note"
	}

	knowledgeID, err := s.knowledge.Ingest(c.Request().Context(), models.KnowledgeItem{
		Kind:   body.Type,
		Author: "api",
		Title:  body.Title,
		Text:   body.Content,
		Tags:   body.Tags,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":       "ingested",
		"knowledge_id": knowledgeID,
	})
}

// knowledgeSearchHandler handles GET /knowledge/search?query=&limit=.
func (s *Server) knowledgeSearchHandler(c *echo.Context) error {
	if s.knowledge == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "knowledge store is not configured")
	}

	query := c.QueryParam("query")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query is required")
	}
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	hits, err := s.knowledge.Search(c.Request().Context(), query, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"query":   query,
		"results": hits,
		"total":   len(hits),
	})
}

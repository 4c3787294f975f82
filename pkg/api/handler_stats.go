package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// tokenStatsHandler handles GET /api/stats/tokens. An optional ?days=
// query sets the aggregation window, default 7.
func (s *Server) tokenStatsHandler(c *echo.Context) error {
	days := 7
	if v := c.QueryParam("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "days must be a positive integer")
		}
		days = n
	}

	stats, err := s.stats.TokenStats(c.Request().Context(), days)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// knowledgeGraphHandler handles GET /api/knowledge-graph.
func (s *Server) knowledgeGraphHandler(c *echo.Context) error {
	if s.graph == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "knowledge graph is not configured")
	}

	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	viz, err := s.graph.Visualize(c.Request().Context(), limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, viz)
}

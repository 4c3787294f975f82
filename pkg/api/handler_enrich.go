package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/secopshq/caseflow/pkg/models"
	"github.com/secopshq/caseflow/pkg/pipeline"
)

// EnrichRequestBody is the body of POST /cases/:case_id/enrich.
type EnrichRequestBody struct {
	AutonomyLevel  string `json:"autonomy_level"`
	MaxDepth       int    `json:"max_depth"`
	IncludeRawLogs bool   `json:"include_raw_logs"`
}

// enrichHandler handles POST /cases/:case_id/enrich.
func (s *Server) enrichHandler(c *echo.Context) error {
	caseID := c.Param("case_id")
	if caseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case id is required")
	}

	var body EnrichRequestBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	level := models.AutonomyLevel(body.AutonomyLevel)
	if body.AutonomyLevel != "" && !level.IsValid() {
		return echo.NewHTTPError(http.StatusBadRequest,
			"invalid autonomy_level: must be manual, supervised, autonomous, or research")
	}
	if body.MaxDepth < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "max_depth must be >= 1")
	}

	result, err := s.orchestrator.Enrich(c.Request().Context(), pipeline.EnrichRequest{
		CaseID:         caseID,
		AutonomyLevel:  level,
		MaxDepth:       body.MaxDepth,
		IncludeRawLogs: body.IncludeRawLogs,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, result)
}

// cancelHandler handles POST /cases/:case_id/cancel.
func (s *Server) cancelHandler(c *echo.Context) error {
	caseID := c.Param("case_id")
	if caseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case id is required")
	}
	if !s.orchestrator.Runs().Cancel(caseID) {
		return echo.NewHTTPError(http.StatusNotFound, "no active enrichment for this case")
	}
	return c.JSON(http.StatusOK, map[string]any{
		"case_id":   caseID,
		"cancelled": true,
	})
}

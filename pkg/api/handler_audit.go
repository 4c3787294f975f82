package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

// auditTrailHandler handles GET /audit/:case_id.
func (s *Server) auditTrailHandler(c *echo.Context) error {
	caseID := c.Param("case_id")
	if caseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case id is required")
	}

	limit, offset := 0, 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}

	steps, err := s.chain.CaseSteps(c.Request().Context(), caseID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"case_id":     caseID,
		"audit_trail": steps,
		"total_steps": len(steps),
	})
}

// auditVerifyHandler handles GET /audit/verify/:case_id.
func (s *Server) auditVerifyHandler(c *echo.Context) error {
	caseID := c.Param("case_id")
	if caseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case id is required")
	}

	verification, err := s.chain.VerifyIntegrity(c.Request().Context(), caseID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"case_id":         caseID,
		"integrity_valid": verification.Valid,
		"verification":    verification,
	})
}

// auditSummaryHandler handles GET /audit/summary/:case_id.
func (s *Server) auditSummaryHandler(c *echo.Context) error {
	caseID := c.Param("case_id")
	if caseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case id is required")
	}

	summary, err := s.chain.Summary(c.Request().Context(), caseID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"case_id": caseID,
		"summary": summary,
	})
}

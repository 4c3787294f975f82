package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// activeCasesHandler handles GET /api/cases/active.
func (s *Server) activeCasesHandler(c *echo.Context) error {
	cases, err := s.cases.Active(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"cases": cases,
		"total": len(cases),
	})
}

// allCasesHandler handles GET /api/cases/all.
func (s *Server) allCasesHandler(c *echo.Context) error {
	cases, err := s.cases.All(c.Request().Context())
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"cases": cases,
		"total": len(cases),
	})
}

// caseAnalysisHandler handles GET /api/cases/:id/analysis. Returns the
// case row together with its per-stage executions and audit summary.
func (s *Server) caseAnalysisHandler(c *echo.Context) error {
	caseID := c.Param("id")
	if caseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case id is required")
	}
	ctx := c.Request().Context()

	row, err := s.cases.Get(ctx, caseID)
	if err != nil {
		return mapServiceError(err)
	}
	executions, err := s.cases.Executions(ctx, caseID)
	if err != nil {
		return mapServiceError(err)
	}

	resp := map[string]any{
		"case":       row,
		"executions": executions,
	}
	if summary, err := s.chain.Summary(ctx, caseID); err == nil {
		resp["audit_summary"] = summary
	} else {
		s.logger.Warn("Audit summary unavailable for case analysis",
			"case_id", caseID, "error", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// caseReportsHandler handles GET /api/cases/:id/reports.
func (s *Server) caseReportsHandler(c *echo.Context) error {
	caseID := c.Param("id")
	if caseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case id is required")
	}

	reports, err := s.cases.Reports(c.Request().Context(), caseID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"case_id": caseID,
		"reports": reports,
		"total":   len(reports),
	})
}

// downloadReportHandler handles GET /api/reports/:id/download/:report_type.
// Serves the newest report of the given type as a markdown attachment.
func (s *Server) downloadReportHandler(c *echo.Context) error {
	caseID := c.Param("id")
	reportType := c.Param("report_type")
	if caseID == "" || reportType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "case id and report type are required")
	}

	report, err := s.cases.Report(c.Request().Context(), caseID, reportType)
	if err != nil {
		return mapServiceError(err)
	}

	c.Response().Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s_%s.md", caseID, reportType)))
	return c.Blob(http.StatusOK, "text/markdown; charset=utf-8", []byte(report.Content))
}

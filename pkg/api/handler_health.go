package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/secopshq/caseflow/pkg/database"
)

// healthHandler handles GET /health. Reports overall status plus
// per-dependency checks; a failed dependency degrades the status
// rather than failing the request.
func (s *Server) healthHandler(c *echo.Context) error {
	ctx := c.Request().Context()
	status := "ok"
	checks := map[string]any{}

	if s.db != nil {
		dbHealth, err := database.Health(ctx, s.db.DB())
		checks["database"] = dbHealth
		if err != nil {
			status = "degraded"
		}
	}
	if s.store != nil {
		if err := s.store.Ping(ctx); err != nil {
			checks["store"] = map[string]any{"status": "unhealthy", "error": err.Error()}
			status = "degraded"
		} else {
			checks["store"] = map[string]any{"status": "healthy"}
		}
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":  status,
		"version": Version,
		"checks":  checks,
	})
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/secopshq/caseflow/pkg/approval"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/pipeline"
	"github.com/secopshq/caseflow/pkg/prompt"
	"github.com/secopshq/caseflow/pkg/services"
)

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, prompt.ErrNotFound),
		errors.Is(err, approval.ErrNotFound),
		errors.Is(err, kv.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "resource not found")
	case errors.Is(err, approval.ErrAlreadyDecided):
		return echo.NewHTTPError(http.StatusConflict, "approval already decided")
	case errors.Is(err, pipeline.ErrRunInFlight):
		return echo.NewHTTPError(http.StatusConflict, "enrichment already running for this case")
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

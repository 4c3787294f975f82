package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// listApprovalsHandler handles GET /api/approvals. An optional
// ?status= query filters by approval status.
func (s *Server) listApprovalsHandler(c *echo.Context) error {
	approvals, err := s.gate.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"approvals": approvals,
		"total":     len(approvals),
	})
}

// DecideApprovalBody is the body of POST /api/approvals/:id/decide.
type DecideApprovalBody struct {
	Decision  string `json:"decision"`
	Reason    string `json:"reason"`
	DecidedBy string `json:"decided_by"`
}

// decideApprovalHandler handles POST /api/approvals/:id/decide.
func (s *Server) decideApprovalHandler(c *echo.Context) error {
	approvalID := c.Param("id")
	if approvalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "approval id is required")
	}

	var body DecideApprovalBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.Decision != "approved" && body.Decision != "rejected" {
		return echo.NewHTTPError(http.StatusBadRequest,
			"decision must be approved or rejected")
	}
	return s.decide(c, approvalID, body.Decision == "approved", body.DecidedBy, body.Reason)
}

// approveApprovalHandler handles POST /api/approvals/:id/approve.
func (s *Server) approveApprovalHandler(c *echo.Context) error {
	return s.decideShortcut(c, true)
}

// rejectApprovalHandler handles POST /api/approvals/:id/reject.
func (s *Server) rejectApprovalHandler(c *echo.Context) error {
	return s.decideShortcut(c, false)
}

func (s *Server) decideShortcut(c *echo.Context, approved bool) error {
	approvalID := c.Param("id")
	if approvalID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "approval id is required")
	}

	// Body is optional on the shortcut endpoints.
	var body DecideApprovalBody
	_ = c.Bind(&body)
	return s.decide(c, approvalID, approved, body.DecidedBy, body.Reason)
}

func (s *Server) decide(c *echo.Context, approvalID string, approved bool, decidedBy, reason string) error {
	if decidedBy == "" {
		decidedBy = "operator"
	}
	info, err := s.gate.Decide(c.Request().Context(), approvalID, approved, decidedBy, reason)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, info)
}

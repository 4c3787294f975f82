package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/secopshq/caseflow/pkg/prompt"
)

// PromptBody is the prompt payload inside prompt responses.
type PromptBody struct {
	Content    string    `json:"content"`
	Version    string    `json:"version"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedBy string    `json:"modified_by"`
}

// PromptResponse is the response of the prompt endpoints.
type PromptResponse struct {
	Agent   string     `json:"agent"`
	Prompt  PromptBody `json:"prompt"`
	Version string     `json:"version"`
}

func promptResponse(info *prompt.Info) PromptResponse {
	return PromptResponse{
		Agent: info.AgentName,
		Prompt: PromptBody{
			Content:    info.Content,
			Version:    info.Version,
			CreatedAt:  info.CreatedAt,
			ModifiedBy: info.ModifiedBy,
		},
		Version: info.Version,
	}
}

// getPromptHandler handles GET /prompts/:agent_name and
// GET /prompts/:agent_name/latest. A ?version= query selects a
// specific historical version; otherwise the active one is returned.
func (s *Server) getPromptHandler(c *echo.Context) error {
	agentName := c.Param("agent_name")
	if agentName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent name is required")
	}

	var (
		info *prompt.Info
		err  error
	)
	if version := c.QueryParam("version"); version != "" {
		info, err = s.prompts.Version(c.Request().Context(), agentName, version)
	} else {
		info, err = s.prompts.Active(c.Request().Context(), agentName)
	}
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promptResponse(info))
}

// UpdatePromptBody is the body of POST /prompts/:agent_name.
type UpdatePromptBody struct {
	Content    string `json:"content"`
	ModifiedBy string `json:"modified_by"`
}

// updatePromptHandler handles POST /prompts/:agent_name. Creates a new
// version and makes it active; history is never rewritten.
func (s *Server) updatePromptHandler(c *echo.Context) error {
	agentName := c.Param("agent_name")
	if agentName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent name is required")
	}

	var body UpdatePromptBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if body.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}
	if body.ModifiedBy == "" {
		body.ModifiedBy = "api"
	}

	info, err := s.prompts.Update(c.Request().Context(), agentName, body.Content, body.ModifiedBy)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, promptResponse(info))
}

// listPromptVersionsHandler handles GET /prompts/:agent_name/versions.
func (s *Server) listPromptVersionsHandler(c *echo.Context) error {
	agentName := c.Param("agent_name")
	if agentName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "agent name is required")
	}

	versions, err := s.prompts.Versions(c.Request().Context(), agentName)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"agent":    agentName,
		"versions": versions,
		"total":    len(versions),
	})
}

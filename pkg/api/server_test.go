package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer builds a server with no backing services. Handlers that
// validate input before touching a dependency can be exercised this way.
func newTestServer() *Server {
	return NewServer(Deps{})
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	s.Echo().ServeHTTP(rec, req)
	return rec
}

func TestHealthHandler(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, Version, resp["version"])
}

func TestEnrichHandlerRejectsInvalidAutonomyLevel(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/cases/case-1/enrich",
		`{"autonomy_level": "yolo"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "autonomy_level")
}

func TestEnrichHandlerRejectsMalformedBody(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/cases/case-1/enrich", `{"max_depth": "three"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDecideApprovalRejectsUnknownDecision(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/api/approvals/app-1/decide",
		`{"decision": "maybe"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "decision must be approved or rejected")
}

func TestTokenStatsRejectsInvalidDays(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodGet, "/api/stats/tokens?days=abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestKnowledgeEndpointsUnavailableWithoutStore(t *testing.T) {
	s := newTestServer()

	rec := doRequest(s, http.MethodPost, "/knowledge/ingest",
		`{"title": "t", "content": "c", "type": "note"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(s, http.MethodGet, "/knowledge/search?query=lateral", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = doRequest(s, http.MethodGet, "/api/knowledge-graph", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestUpdatePromptRequiresContent(t *testing.T) {
	s := newTestServer()
	rec := doRequest(s, http.MethodPost, "/prompts/triage", `{"modified_by": "alice"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "content is required")
}

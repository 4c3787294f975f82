// Package api exposes the HTTP surface: enrichment, audit inspection,
// prompt management, approvals, case queries, knowledge and statistics.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/secopshq/caseflow/pkg/approval"
	"github.com/secopshq/caseflow/pkg/audit"
	"github.com/secopshq/caseflow/pkg/database"
	"github.com/secopshq/caseflow/pkg/graph"
	"github.com/secopshq/caseflow/pkg/knowledge"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/pipeline"
	"github.com/secopshq/caseflow/pkg/prompt"
	"github.com/secopshq/caseflow/pkg/services"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server is the HTTP API server.
type Server struct {
	echo *echo.Echo
	http *http.Server

	orchestrator *pipeline.Orchestrator
	chain        *audit.Chain
	prompts      *prompt.Store
	cases        *services.CaseService
	stats        *services.StatsService
	gate         *approval.Gate
	graph        *graph.Store
	knowledge    *knowledge.Service
	db           *database.Client
	store        *kv.Client

	logger *slog.Logger
}

// Deps carries the server's service dependencies. Graph, Knowledge,
// Store and DB are optional; endpoints backed by a nil member return
// 503.
type Deps struct {
	Orchestrator *pipeline.Orchestrator
	Chain        *audit.Chain
	Prompts      *prompt.Store
	Cases        *services.CaseService
	Stats        *services.StatsService
	Gate         *approval.Gate
	Graph        *graph.Store
	Knowledge    *knowledge.Service
	DB           *database.Client
	Store        *kv.Client
}

// NewServer builds the server and registers all routes.
func NewServer(deps Deps) *Server {
	s := &Server{
		echo:         echo.New(),
		orchestrator: deps.Orchestrator,
		chain:        deps.Chain,
		prompts:      deps.Prompts,
		cases:        deps.Cases,
		stats:        deps.Stats,
		gate:         deps.Gate,
		graph:        deps.Graph,
		knowledge:    deps.Knowledge,
		db:           deps.DB,
		store:        deps.Store,
		logger:       slog.Default().With("component", "api"),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	e := s.echo
	e.Use(securityHeaders())
	e.Use(requestLogger())

	e.GET("/health", s.healthHandler)

	e.POST("/cases/:case_id/enrich", s.enrichHandler)
	e.POST("/cases/:case_id/cancel", s.cancelHandler)

	e.GET("/audit/:case_id", s.auditTrailHandler)
	e.GET("/audit/verify/:case_id", s.auditVerifyHandler)
	e.GET("/audit/summary/:case_id", s.auditSummaryHandler)

	e.GET("/prompts/:agent_name", s.getPromptHandler)
	e.GET("/prompts/:agent_name/latest", s.getPromptHandler)
	e.POST("/prompts/:agent_name", s.updatePromptHandler)
	e.GET("/prompts/:agent_name/versions", s.listPromptVersionsHandler)

	e.POST("/knowledge/ingest", s.knowledgeIngestHandler)
	e.GET("/knowledge/search", s.knowledgeSearchHandler)

	v1 := e.Group("/api")
	v1.GET("/cases/active", s.activeCasesHandler)
	v1.GET("/cases/all", s.allCasesHandler)
	v1.GET("/cases/:id/analysis", s.caseAnalysisHandler)
	v1.GET("/cases/:id/reports", s.caseReportsHandler)
	v1.GET("/reports/:id/download/:report_type", s.downloadReportHandler)

	v1.GET("/approvals", s.listApprovalsHandler)
	v1.POST("/approvals/:id/decide", s.decideApprovalHandler)
	v1.POST("/approvals/:id/approve", s.approveApprovalHandler)
	v1.POST("/approvals/:id/reject", s.rejectApprovalHandler)

	v1.GET("/stats/tokens", s.tokenStatsHandler)
	v1.GET("/knowledge-graph", s.knowledgeGraphHandler)
}

// Start runs the HTTP server. Blocks until shutdown or failure.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

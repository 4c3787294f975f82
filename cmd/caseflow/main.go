// Caseflow server — provides the HTTP API and orchestrates the staged
// case-enrichment pipeline.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/secopshq/caseflow/pkg/agent"
	"github.com/secopshq/caseflow/pkg/api"
	"github.com/secopshq/caseflow/pkg/approval"
	"github.com/secopshq/caseflow/pkg/audit"
	"github.com/secopshq/caseflow/pkg/caserecord"
	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/database"
	"github.com/secopshq/caseflow/pkg/graph"
	"github.com/secopshq/caseflow/pkg/knowledge"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/llm"
	"github.com/secopshq/caseflow/pkg/pipeline"
	"github.com/secopshq/caseflow/pkg/prompt"
	"github.com/secopshq/caseflow/pkg/services"
	"github.com/secopshq/caseflow/pkg/siem"
	"github.com/secopshq/caseflow/pkg/similarity"
	"github.com/secopshq/caseflow/pkg/vector"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting caseflow",
		"http_port", httpPort,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Key-value case store
	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, convErr := strconv.Atoi(v); convErr == nil {
			redisDB = n
		}
	}
	store, err := kv.NewClient(kv.Config{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})
	if err != nil {
		slog.Error("Failed to connect to case store", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("Error closing case store", "error", err)
		}
	}()
	slog.Info("Connected to case store")

	// 4. Vector store and knowledge service
	vectors := vector.NewStore(dbClient.DB(), "knowledge_embeddings", cfg.Embedding.Dim)
	if err := vectors.EnsureCollection(ctx); err != nil {
		slog.Error("Failed to ensure vector collection", "error", err)
		os.Exit(1)
	}
	var embedder vector.Embedder
	if cfg.Embedding.BaseURL != "" {
		embedder = vector.NewHTTPEmbedder(cfg.Embedding)
	} else {
		slog.Warn("No embedding endpoint configured, using local hash embedder")
		embedder = vector.NewHashEmbedder(cfg.Embedding.Dim)
	}
	graphStore := graph.NewStore(dbClient.Client)
	knowledgeService := knowledge.NewService(vectors, embedder, graphStore)
	slog.Info("Knowledge services initialized")

	// 5. Domain services
	caseService := services.NewCaseService(dbClient.Client, cfg.Reports.Dir)
	statsService := services.NewStatsService(dbClient.Client)
	promptStore := prompt.NewStore(dbClient.Client)
	if err := promptStore.SeedDefaults(ctx); err != nil {
		slog.Error("Failed to seed default prompts", "error", err)
		os.Exit(1)
	}

	// 6. Audit chain. Runs unsigned when no signing key is configured.
	var signer *audit.Signer
	if cfg.Audit.SigningKeyPath != "" {
		signer, err = audit.LoadSigner(cfg.Audit.SigningKeyPath)
		if err != nil {
			slog.Error("Failed to load audit signing key",
				"path", cfg.Audit.SigningKeyPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Audit signing enabled", "path", cfg.Audit.SigningKeyPath)
	} else {
		slog.Warn("No audit signing key configured, steps will be hash-chained only")
	}
	chain := audit.NewChain(dbClient.Client, signer)

	// 7. Approval gate and background sweeper
	gate := approval.NewGate(dbClient.Client, store, cfg)
	sweeperCtx, sweeperCancel := context.WithCancel(ctx)
	defer sweeperCancel()
	go approval.NewSweeper(gate).Start(sweeperCtx)

	// 8. LLM runtime and pipeline adapters
	llmClient := llm.NewHTTPClient(cfg.LLM, cfg.Providers)
	runtime := agent.NewRuntime(promptStore, llmClient, chain, cfg.Providers)

	var executor *siem.Executor
	if cfg.SIEM.BaseURL != "" {
		executor = siem.NewExecutor(siem.NewHTTPAdapter(cfg.SIEM), cfg.SIEM)
	} else {
		slog.Warn("No SIEM endpoint configured, investigation runs without query results")
	}
	var caseAPI *caserecord.Adapter
	if cfg.CaseAPI.BaseURL != "" {
		caseAPI = caserecord.NewAdapter(cfg.CaseAPI)
	} else {
		slog.Warn("No case API endpoint configured, enrichment skips cross-case fetches")
	}

	orchestrator := pipeline.NewOrchestrator(cfg, pipeline.Deps{
		Runner:     runtime,
		Chain:      chain,
		Gate:       gate,
		Records:    caseService,
		Store:      store,
		Similarity: similarity.NewEngine(store, cfg.Similarity),
		Filter:     siem.NewFilter(cfg.Eligibility),
		Executor:   executor,
		CaseAPI:    caseAPI,
		Graph:      graphStore,
		Knowledge:  knowledgeService,
	})
	slog.Info("Pipeline orchestrator initialized")

	// 9. HTTP server
	httpServer := api.NewServer(api.Deps{
		Orchestrator: orchestrator,
		Chain:        chain,
		Prompts:      promptStore,
		Cases:        caseService,
		Stats:        statsService,
		Gate:         gate,
		Graph:        graphStore,
		Knowledge:    knowledgeService,
		DB:           dbClient,
		Store:        store,
	})

	// 10. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Caseflow started successfully")

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown. In-flight enrichment runs are cancelled;
	// their cases finish as partial with a control step in the trail.
	sweeperCancel()
	for _, caseID := range orchestrator.Runs().Active() {
		if orchestrator.Runs().Cancel(caseID) {
			slog.Info("Cancelled in-flight enrichment", "case_id", caseID)
		}
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}

package siem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/models"
)

// QueryHash identifies one deduplicated query: the first 16 hex characters
// of SHA-256 over filter and time bounds.
func QueryHash(eventFilter string, fromMs, toMs int64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s||%d||%d", eventFilter, fromMs, toMs)))
	return hex.EncodeToString(sum[:])[:16]
}

// BuildQueries groups eligible detections by event filter, widening each
// group's time window to cover all members. Groups keep the first-seen
// order of their filters so execution is deterministic.
func BuildQueries(detections []models.Detection, limit int, timeout time.Duration) []models.SIEMQuery {
	order := make([]string, 0, len(detections))
	groups := make(map[string]*models.SIEMQuery, len(detections))

	for _, d := range detections {
		q, ok := groups[d.EventFilter]
		if !ok {
			q = &models.SIEMQuery{
				QueryID:     uuid.NewString(),
				EventFilter: d.EventFilter,
				FromMs:      d.EventFromTimeMs,
				ToMs:        d.EventToTimeMs,
				Limit:       limit,
				TimeoutMs:   timeout.Milliseconds(),
			}
			groups[d.EventFilter] = q
			order = append(order, d.EventFilter)
		}
		if d.EventFromTimeMs < q.FromMs {
			q.FromMs = d.EventFromTimeMs
		}
		if d.EventToTimeMs > q.ToMs {
			q.ToMs = d.EventToTimeMs
		}
		q.LinkedDetectionIDs = append(q.LinkedDetectionIDs, d.DetectionID)
	}

	queries := make([]models.SIEMQuery, 0, len(order))
	for _, filter := range order {
		queries = append(queries, *groups[filter])
	}
	return queries
}

// Executor runs deduplicated SIEM queries under a concurrency bound with
// per-query timeouts and a process-wide result cache.
type Executor struct {
	adapter Adapter
	cache   *Cache
	cfg     config.SIEMConfig
	logger  *slog.Logger
}

// NewExecutor creates an executor.
func NewExecutor(adapter Adapter, cfg config.SIEMConfig) *Executor {
	return &Executor{
		adapter: adapter,
		cache:   NewCache(cfg.CacheTTL),
		cfg:     cfg,
		logger:  slog.Default().With("component", "siem_executor"),
	}
}

// Execute runs the queries derived from the eligible detections and
// returns one result per query, in submission order. Failed queries yield
// a result with Error set and empty events; they are never cached.
func (e *Executor) Execute(ctx context.Context, detections []models.Detection) []models.SIEMResult {
	queries := BuildQueries(detections, e.cfg.QueryLimit, e.cfg.QueryTimeout)
	results := make([]models.SIEMResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.MaxConcurrentQueries)

	for i, q := range queries {
		g.Go(func() error {
			results[i] = e.runOne(gctx, q)
			return nil
		})
	}
	// Goroutines never return errors; failures live on the result objects.
	_ = g.Wait()

	return results
}

func (e *Executor) runOne(ctx context.Context, q models.SIEMQuery) models.SIEMResult {
	hash := QueryHash(q.EventFilter, q.FromMs, q.ToMs)

	if cached, ok := e.cache.Get(hash); ok {
		cached.QueryID = q.QueryID
		cached.SourceDetectionIDs = q.LinkedDetectionIDs
		e.logger.Debug("SIEM cache hit", "query_hash", hash)
		return cached
	}

	result := models.SIEMResult{
		QueryID:            q.QueryID,
		Events:             []map[string]any{},
		QueryHash:          hash,
		SourceDetectionIDs: q.LinkedDetectionIDs,
		Pagination:         models.PaginationInfo{Limit: q.Limit},
	}

	qctx, cancel := context.WithTimeout(ctx, e.cfg.QueryTimeout)
	defer cancel()

	start := time.Now()
	resp, err := e.adapter.Query(qctx, q.EventFilter, q.FromMs, q.ToMs, q.Limit)
	result.ExecutionTimeMs = time.Since(start).Milliseconds()

	if err != nil {
		result.Error = err.Error()
		e.logger.Warn("SIEM query failed",
			"query_hash", hash, "duration_ms", result.ExecutionTimeMs, "error", err)
		return result
	}

	result.Events = resp.Events
	if result.Events == nil {
		result.Events = []map[string]any{}
	}
	result.TotalCount = resp.TotalCount
	if result.TotalCount == 0 {
		result.TotalCount = len(result.Events)
	}
	result.Pagination.HasMore = q.Limit > 0 && len(result.Events) >= q.Limit

	e.cache.Set(hash, result)
	e.logger.Debug("SIEM query finished",
		"query_hash", hash, "events", len(result.Events), "duration_ms", result.ExecutionTimeMs)
	return result
}

// FanOut maps each detection ID to its query's result, so callers can
// consume results per detection instead of per query.
func FanOut(results []models.SIEMResult) map[string]models.SIEMResult {
	byDetection := make(map[string]models.SIEMResult)
	for _, r := range results {
		for _, id := range r.SourceDetectionIDs {
			byDetection[id] = r
		}
	}
	return byDetection
}

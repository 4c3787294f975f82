package siem

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/models"
)

// fakeAdapter scripts per-filter responses and records call counts.
type fakeAdapter struct {
	mu        sync.Mutex
	calls     map[string]int
	responses map[string]*QueryResponse
	errors    map[string]error
	delay     time.Duration
	inFlight  atomic.Int32
	maxSeen   atomic.Int32
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{
		calls:     map[string]int{},
		responses: map[string]*QueryResponse{},
		errors:    map[string]error{},
	}
}

func (f *fakeAdapter) Query(ctx context.Context, eventFilter string, fromMs, toMs int64, limit int) (*QueryResponse, error) {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		seen := f.maxSeen.Load()
		if cur <= seen || f.maxSeen.CompareAndSwap(seen, cur) {
			break
		}
	}

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[eventFilter]++
	if err, ok := f.errors[eventFilter]; ok {
		return nil, err
	}
	if resp, ok := f.responses[eventFilter]; ok {
		return resp, nil
	}
	return &QueryResponse{}, nil
}

func testSIEMConfig() config.SIEMConfig {
	return config.SIEMConfig{
		QueryTimeout:         time.Second,
		MaxConcurrentQueries: 3,
		CacheTTL:             time.Minute,
		QueryLimit:           100,
	}
}

func timedDetection(id, filter string, fromMs, toMs int64) models.Detection {
	return models.Detection{
		DetectionID:     id,
		RuleName:        "fact_test",
		EventFilter:     filter,
		EventFromTimeMs: fromMs,
		EventToTimeMs:   toMs,
	}
}

func TestBuildQueries(t *testing.T) {
	detections := []models.Detection{
		timedDetection("d1", "filter_a", 1000, 2000),
		timedDetection("d2", "filter_b", 1500, 2500),
		timedDetection("d3", "filter_a", 500, 3000),
	}

	queries := BuildQueries(detections, 100, 30*time.Second)
	require.Len(t, queries, 2, "identical filters merge into one query")

	a := queries[0]
	assert.Equal(t, "filter_a", a.EventFilter)
	assert.Equal(t, int64(500), a.FromMs, "window widened to min(from)")
	assert.Equal(t, int64(3000), a.ToMs, "window widened to max(to)")
	assert.Equal(t, []string{"d1", "d3"}, a.LinkedDetectionIDs)

	b := queries[1]
	assert.Equal(t, "filter_b", b.EventFilter)
	assert.Equal(t, []string{"d2"}, b.LinkedDetectionIDs)
}

func TestQueryHash(t *testing.T) {
	h := QueryHash("filter_a", 1000, 2000)
	assert.Len(t, h, 16)
	assert.Equal(t, h, QueryHash("filter_a", 1000, 2000))
	assert.NotEqual(t, h, QueryHash("filter_a", 1000, 2001))
	assert.NotEqual(t, h, QueryHash("filter_b", 1000, 2000))
}

func TestExecute(t *testing.T) {
	adapter := newFakeAdapter()
	adapter.responses["filter_a"] = &QueryResponse{
		TotalCount: 2,
		Events:     []map[string]any{{"event": "login"}, {"event": "logout"}},
	}
	adapter.errors["filter_b"] = errors.New("backend exploded")

	executor := NewExecutor(adapter, testSIEMConfig())

	detections := []models.Detection{
		timedDetection("d1", "filter_a", 1000, 2000),
		timedDetection("d2", "filter_b", 1000, 2000),
	}
	results := executor.Execute(context.Background(), detections)
	require.Len(t, results, 2)

	ok := results[0]
	assert.Equal(t, "filter_a", detections[0].EventFilter)
	assert.Len(t, ok.Events, 2)
	assert.Equal(t, 2, ok.TotalCount)
	assert.Empty(t, ok.Error)
	assert.False(t, ok.Pagination.HasMore)

	failed := results[1]
	assert.Contains(t, failed.Error, "backend exploded")
	assert.Empty(t, failed.Events)
	assert.Zero(t, failed.TotalCount)
}

func TestExecuteCaching(t *testing.T) {
	adapter := newFakeAdapter()
	adapter.responses["filter_a"] = &QueryResponse{TotalCount: 1, Events: []map[string]any{{"e": 1}}}
	adapter.errors["filter_err"] = errors.New("transient")

	executor := NewExecutor(adapter, testSIEMConfig())
	detections := []models.Detection{
		timedDetection("d1", "filter_a", 1000, 2000),
		timedDetection("d2", "filter_err", 1000, 2000),
	}

	first := executor.Execute(context.Background(), detections)
	second := executor.Execute(context.Background(), detections)

	assert.Equal(t, 1, adapter.calls["filter_a"], "successful result served from cache")
	assert.Equal(t, 2, adapter.calls["filter_err"], "failures are never cached")

	assert.Len(t, second[0].Events, 1)
	assert.Equal(t, first[0].QueryHash, second[0].QueryHash)
	assert.Equal(t, []string{"d1"}, second[0].SourceDetectionIDs)
}

func TestExecuteHasMore(t *testing.T) {
	cfg := testSIEMConfig()
	cfg.QueryLimit = 2

	events := []map[string]any{{"e": 1}, {"e": 2}}
	adapter := newFakeAdapter()
	adapter.responses["filter_a"] = &QueryResponse{TotalCount: 50, Events: events}

	executor := NewExecutor(adapter, cfg)
	results := executor.Execute(context.Background(), []models.Detection{
		timedDetection("d1", "filter_a", 1000, 2000),
	})

	require.Len(t, results, 1)
	assert.True(t, results[0].Pagination.HasMore, "full page implies has_more")
	assert.Equal(t, 2, results[0].Pagination.Limit)
}

func TestExecuteTimeout(t *testing.T) {
	cfg := testSIEMConfig()
	cfg.QueryTimeout = 50 * time.Millisecond

	adapter := newFakeAdapter()
	adapter.delay = time.Second

	executor := NewExecutor(adapter, cfg)
	results := executor.Execute(context.Background(), []models.Detection{
		timedDetection("d1", "filter_slow", 1000, 2000),
	})

	require.Len(t, results, 1)
	assert.NotEmpty(t, results[0].Error)
	assert.Empty(t, results[0].Events)

	// A timeout must not poison the cache.
	_, cached := executor.cache.Get(QueryHash("filter_slow", 1000, 2000))
	assert.False(t, cached)
}

func TestExecuteConcurrencyBound(t *testing.T) {
	cfg := testSIEMConfig()
	cfg.MaxConcurrentQueries = 2

	adapter := newFakeAdapter()
	adapter.delay = 20 * time.Millisecond

	executor := NewExecutor(adapter, cfg)
	detections := make([]models.Detection, 0, 8)
	for i := 0; i < 8; i++ {
		detections = append(detections,
			timedDetection(fmt.Sprintf("d%d", i), fmt.Sprintf("filter_%d", i), 1000, 2000))
	}

	results := executor.Execute(context.Background(), detections)
	assert.Len(t, results, 8)
	assert.LessOrEqual(t, adapter.maxSeen.Load(), int32(2), "semaphore width respected")
}

func TestFanOut(t *testing.T) {
	results := []models.SIEMResult{
		{QueryID: "q1", SourceDetectionIDs: []string{"d1", "d3"}, TotalCount: 5},
		{QueryID: "q2", SourceDetectionIDs: []string{"d2"}, Error: "boom"},
	}

	byDetection := FanOut(results)
	require.Len(t, byDetection, 3)
	assert.Equal(t, "q1", byDetection["d1"].QueryID)
	assert.Equal(t, "q1", byDetection["d3"].QueryID)
	assert.Equal(t, "boom", byDetection["d2"].Error)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/secopshq/caseflow/ent"
	"github.com/secopshq/caseflow/ent/agentexecution"
)

// DailyUsage is one day of aggregated token spend.
type DailyUsage struct {
	Date        string  `json:"date"`
	TotalTokens int     `json:"total_tokens"`
	CostUSD     float64 `json:"cost_usd"`
	Executions  int     `json:"executions"`
}

// StageUsage is aggregated token spend for one pipeline stage.
type StageUsage struct {
	Stage       string  `json:"stage"`
	TotalTokens int     `json:"total_tokens"`
	CostUSD     float64 `json:"cost_usd"`
	Executions  int     `json:"executions"`
}

// TokenStats is the payload behind GET /api/stats/tokens.
type TokenStats struct {
	DailyUsage   []DailyUsage `json:"daily_usage"`
	TotalToday   int          `json:"total_today"`
	CostToday    float64      `json:"cost_today"`
	UsageByStage []StageUsage `json:"usage_by_stage"`
}

// StatsService aggregates token usage from execution records.
type StatsService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewStatsService creates the service.
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{
		client: client,
		logger: slog.Default().With("component", "stats_service"),
	}
}

// TokenStats aggregates the last `days` days of execution records into
// per-day and per-stage usage. Aggregation happens in memory; execution
// volume is bounded by cases per day times pipeline stages.
func (s *StatsService) TokenStats(ctx context.Context, days int) (*TokenStats, error) {
	if days <= 0 {
		days = 7
	}
	now := time.Now().UTC()
	since := now.AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	rows, err := s.client.AgentExecution.Query().
		Where(agentexecution.CreatedAtGTE(since)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load execution records: %w", err)
	}

	byDay := make(map[string]*DailyUsage)
	byStage := make(map[string]*StageUsage)
	for _, row := range rows {
		day := row.CreatedAt.UTC().Format("2006-01-02")
		du, ok := byDay[day]
		if !ok {
			du = &DailyUsage{Date: day}
			byDay[day] = du
		}
		du.TotalTokens += row.TotalTokens
		du.CostUSD += row.CostUsd
		du.Executions++

		su, ok := byStage[row.AgentName]
		if !ok {
			su = &StageUsage{Stage: row.AgentName}
			byStage[row.AgentName] = su
		}
		su.TotalTokens += row.TotalTokens
		su.CostUSD += row.CostUsd
		su.Executions++
	}

	stats := &TokenStats{
		DailyUsage:   make([]DailyUsage, 0, len(byDay)),
		UsageByStage: make([]StageUsage, 0, len(byStage)),
	}
	for _, du := range byDay {
		stats.DailyUsage = append(stats.DailyUsage, *du)
	}
	sort.Slice(stats.DailyUsage, func(i, j int) bool {
		return stats.DailyUsage[i].Date < stats.DailyUsage[j].Date
	})
	for _, su := range byStage {
		stats.UsageByStage = append(stats.UsageByStage, *su)
	}
	sort.Slice(stats.UsageByStage, func(i, j int) bool {
		return stats.UsageByStage[i].TotalTokens > stats.UsageByStage[j].TotalTokens
	})

	today := now.Format("2006-01-02")
	if du, ok := byDay[today]; ok {
		stats.TotalToday = du.TotalTokens
		stats.CostToday = du.CostUSD
	}
	return stats, nil
}

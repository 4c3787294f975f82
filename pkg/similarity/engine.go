// Package similarity ranks existing cases against a target entity bag by
// weighted Jaccard over per-type entity sets, with rule and time bonuses.
// Candidates come from the KV inverted indices, results are cached in KV.
package similarity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/models"
)

// Engine finds the top-k most similar cases for a target entity bag.
type Engine struct {
	store  *kv.Client
	cfg    config.SimilarityConfig
	logger *slog.Logger
}

// NewEngine creates an engine over the KV case store.
func NewEngine(store *kv.Client, cfg config.SimilarityConfig) *Engine {
	return &Engine{
		store:  store,
		cfg:    cfg,
		logger: slog.Default().With("component", "similarity"),
	}
}

// CacheKey derives the result-cache key: SHA-256 over the sorted JSON of
// the target bag plus the case id.
func CacheKey(caseID string, bag models.EntityBag) string {
	sorted := make(map[string][]string, len(bag))
	for t, vs := range bag {
		cp := append([]string(nil), vs...)
		sort.Strings(cp)
		sorted[string(t)] = cp
	}
	// encoding/json sorts map keys, giving a stable serialization.
	raw, _ := json.Marshal(sorted)
	sum := sha256.Sum256(append(raw, []byte(caseID)...))
	return hex.EncodeToString(sum[:])
}

// Jaccard computes |A ∩ B| / |A ∪ B| over two value sets,
// case-insensitively, and returns the intersection values.
func Jaccard(a, b []string) (float64, []string) {
	if len(a) == 0 && len(b) == 0 {
		return 0, nil
	}
	setA := toSet(a)
	setB := toSet(b)

	var matched []string
	union := len(setB)
	for v := range setA {
		if setB[v] {
			matched = append(matched, v)
		} else {
			union++
		}
	}
	if union == 0 {
		return 0, nil
	}
	sort.Strings(matched)
	return float64(len(matched)) / float64(union), matched
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = true
	}
	return set
}

// Score computes the weighted similarity between the target bag and one
// candidate summary, including the rule and time bonuses.
func (e *Engine) Score(target models.EntityBag, targetSummary, candidate *kv.CaseSummary) models.SimilarCase {
	result := models.SimilarCase{
		CaseID:    candidate.CaseID,
		Breakdown: map[string]float64{},
	}

	candidateBag := models.BagFromStringMap(candidate.Entities)
	for typeName, weight := range e.cfg.Weights {
		t := models.EntityType(typeName)
		j, matched := Jaccard(target[t], candidateBag[t])
		if j > 0 {
			result.Breakdown[typeName] = j
			result.Score += weight * j
			result.MatchedEntities = append(result.MatchedEntities, matched...)
		}
	}
	sort.Strings(result.MatchedEntities)

	if targetSummary != nil {
		if targetSummary.RuleID != "" && targetSummary.RuleID == candidate.RuleID {
			result.Score += e.cfg.RuleBonus
			result.Breakdown["rule_bonus"] = e.cfg.RuleBonus
		}
		if !targetSummary.CreatedAt.IsZero() && !candidate.CreatedAt.IsZero() {
			delta := targetSummary.CreatedAt.Sub(candidate.CreatedAt)
			if delta < 0 {
				delta = -delta
			}
			if delta <= e.cfg.TimeWindow {
				result.Score += e.cfg.TimeBonus
				result.Breakdown["time_bonus"] = e.cfg.TimeBonus
			}
		}
	}
	return result
}

// FindSimilar returns the candidates scoring at least min_score against
// the target bag, sorted by score descending and truncated to the limit.
// Results are cached; the cache key covers the bag and the case id.
func (e *Engine) FindSimilar(ctx context.Context, caseID string, bag models.EntityBag) ([]models.SimilarCase, error) {
	if bag.IsEmpty() {
		return []models.SimilarCase{}, nil
	}

	key := CacheKey(caseID, bag)
	if cached, ok, err := e.store.SimilarityCacheGet(ctx, key); err != nil {
		e.logger.Warn("Similarity cache read failed", "error", err)
	} else if ok {
		return cached, nil
	}

	candidates, err := e.candidateIDs(ctx, caseID, bag)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []models.SimilarCase{}, nil
	}

	// The target summary feeds the rule/time bonuses; scoring proceeds
	// without them when the summary is missing.
	targetSummary, err := e.store.GetSummary(ctx, caseID)
	if err != nil {
		targetSummary = nil
	}

	scored := make([]models.SimilarCase, 0, len(candidates))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.FanoutWidth)
	for _, candidateID := range candidates {
		g.Go(func() error {
			summary, err := e.store.GetSummary(gctx, candidateID)
			if err != nil {
				e.logger.Debug("Skipping candidate without summary", "case_id", candidateID)
				return nil
			}
			sc := e.Score(bag, targetSummary, summary)
			if sc.Score >= e.cfg.MinScore {
				mu.Lock()
				scored = append(scored, sc)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].CaseID < scored[j].CaseID
	})
	if e.cfg.Limit > 0 && len(scored) > e.cfg.Limit {
		scored = scored[:e.cfg.Limit]
	}

	if err := e.store.SimilarityCacheSet(ctx, key, scored, e.cfg.CacheTTL); err != nil {
		e.logger.Warn("Similarity cache write failed", "error", err)
	}
	return scored, nil
}

// candidateIDs unions the inverted-index members for every target entity
// value and removes the target case itself.
func (e *Engine) candidateIDs(ctx context.Context, caseID string, bag models.EntityBag) ([]string, error) {
	seen := map[string]bool{}
	var ids []string
	for t, values := range bag {
		for _, v := range values {
			members, err := e.store.EntityIndexMembers(ctx, t, v)
			if err != nil {
				return nil, fmt.Errorf("candidate lookup %s:%s: %w", t, v, err)
			}
			for _, id := range members {
				if id == caseID || seen[id] {
					continue
				}
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	sort.Strings(ids)
	return ids, nil
}

// IndexCase registers every entity value of a case in the inverted
// indices with the configured TTL.
func (e *Engine) IndexCase(ctx context.Context, caseID string, bag models.EntityBag) error {
	for t, values := range bag {
		for _, v := range values {
			if err := e.store.EntityIndexAdd(ctx, t, v, caseID, e.cfg.IndexTTL); err != nil {
				return fmt.Errorf("index case %s: %w", caseID, err)
			}
		}
	}
	return nil
}

// Rebuild re-scans every known case and recreates the inverted indices.
// Maintenance path, not called during enrichment.
func (e *Engine) Rebuild(ctx context.Context) (int, error) {
	ids, err := e.store.AllCaseIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("rebuild: list cases: %w", err)
	}

	indexed := 0
	for _, id := range ids {
		summary, err := e.store.GetSummary(ctx, id)
		if err != nil {
			e.logger.Warn("Rebuild skipping case without summary", "case_id", id)
			continue
		}
		if err := e.IndexCase(ctx, id, models.BagFromStringMap(summary.Entities)); err != nil {
			return indexed, err
		}
		indexed++
	}
	e.logger.Info("Similarity indices rebuilt", "cases", indexed)
	return indexed, nil
}

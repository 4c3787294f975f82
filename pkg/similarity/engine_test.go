package similarity

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secopshq/caseflow/pkg/config"
	"github.com/secopshq/caseflow/pkg/kv"
	"github.com/secopshq/caseflow/pkg/models"
)

func testEngine(t *testing.T) (*Engine, *kv.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := kv.NewFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	cfg := config.SimilarityConfig{
		Weights: map[string]float64{
			"user":   0.5,
			"ip":     0.35,
			"host":   0.15,
			"domain": 0.10,
		},
		MinScore:    0.3,
		Limit:       10,
		TimeWindow:  48 * time.Hour,
		RuleBonus:   0.1,
		TimeBonus:   0.1,
		IndexTTL:    30 * 24 * time.Hour,
		CacheTTL:    24 * time.Hour,
		FanoutWidth: 8,
	}
	return NewEngine(store, cfg), store
}

func seedCase(t *testing.T, engine *Engine, store *kv.Client, id, ruleID string, createdAt time.Time, bag models.EntityBag) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.StoreCase(ctx, &kv.CaseSummary{
		CaseID:    id,
		RuleID:    ruleID,
		CreatedAt: createdAt,
		Entities:  bag.ToStringMap(),
	}))
	require.NoError(t, engine.IndexCase(ctx, id, bag))
}

func TestJaccard(t *testing.T) {
	score, matched := Jaccard([]string{"alice", "bob"}, []string{"Alice", "carol"})
	assert.InDelta(t, 1.0/3.0, score, 1e-9)
	assert.Equal(t, []string{"alice"}, matched, "matching is case-insensitive")

	score, matched = Jaccard(nil, []string{"x"})
	assert.Zero(t, score)
	assert.Empty(t, matched)

	score, _ = Jaccard(nil, nil)
	assert.Zero(t, score)
}

func TestCacheKey(t *testing.T) {
	bagA := models.EntityBag{
		models.EntityUser: {"bob", "alice"},
		models.EntityIP:   {"10.0.0.1"},
	}
	bagB := models.EntityBag{
		models.EntityIP:   {"10.0.0.1"},
		models.EntityUser: {"alice", "bob"},
	}
	assert.Equal(t, CacheKey("c1", bagA), CacheKey("c1", bagB),
		"key is independent of map and slice ordering")
	assert.NotEqual(t, CacheKey("c1", bagA), CacheKey("c2", bagA))
}

func TestFindSimilarRanking(t *testing.T) {
	engine, store := testEngine(t)
	ctx := context.Background()
	now := time.Now().UTC()

	target := models.EntityBag{
		models.EntityUser: {"alice"},
		models.EntityIP:   {"10.0.0.1"},
		models.EntityHost: {"h1"},
	}
	seedCase(t, engine, store, "target", "rule-x", now, target)

	// A shares alice + 10.0.0.1, B shares only h1, C shares nothing.
	seedCase(t, engine, store, "case-a", "rule-y", now.Add(-200*time.Hour), models.EntityBag{
		models.EntityUser: {"alice"},
		models.EntityIP:   {"10.0.0.1"},
	})
	seedCase(t, engine, store, "case-b", "rule-y", now.Add(-200*time.Hour), models.EntityBag{
		models.EntityHost: {"h1"},
	})
	seedCase(t, engine, store, "case-c", "rule-y", now.Add(-200*time.Hour), models.EntityBag{
		models.EntityUser: {"mallory"},
	})

	results, err := engine.FindSimilar(ctx, "target", target)
	require.NoError(t, err)

	// A scores 0.5 + 0.35 = 0.85; B scores 0.15 < min_score; C matches
	// nothing and never enters the candidate set.
	require.Len(t, results, 1)
	assert.Equal(t, "case-a", results[0].CaseID)
	assert.InDelta(t, 0.85, results[0].Score, 1e-9)
	assert.Equal(t, []string{"10.0.0.1", "alice"}, results[0].MatchedEntities)
}

func TestFindSimilarBonuses(t *testing.T) {
	engine, store := testEngine(t)
	ctx := context.Background()
	now := time.Now().UTC()

	target := models.EntityBag{models.EntityUser: {"alice"}}
	seedCase(t, engine, store, "target", "rule-x", now, target)

	// Same rule, inside the 48h window: 0.5 + 0.1 + 0.1.
	seedCase(t, engine, store, "case-a", "rule-x", now.Add(-2*time.Hour), target)

	results, err := engine.FindSimilar(ctx, "target", target)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.InDelta(t, 0.7, results[0].Score, 1e-9)
	assert.InDelta(t, 0.1, results[0].Breakdown["rule_bonus"], 1e-9)
	assert.InDelta(t, 0.1, results[0].Breakdown["time_bonus"], 1e-9)
}

func TestFindSimilarExcludesTarget(t *testing.T) {
	engine, store := testEngine(t)
	ctx := context.Background()

	target := models.EntityBag{models.EntityUser: {"alice"}}
	seedCase(t, engine, store, "target", "rule-x", time.Now(), target)

	results, err := engine.FindSimilar(ctx, "target", target)
	require.NoError(t, err)
	assert.Empty(t, results, "a case is never similar to itself")
}

func TestFindSimilarCaches(t *testing.T) {
	engine, store := testEngine(t)
	ctx := context.Background()
	now := time.Now().UTC()

	target := models.EntityBag{models.EntityUser: {"alice"}}
	seedCase(t, engine, store, "target", "rule-x", now, target)
	seedCase(t, engine, store, "case-a", "rule-x", now, target)

	first, err := engine.FindSimilar(ctx, "target", target)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Remove the candidate's summary; the cached result must still serve.
	require.NoError(t, store.Delete(ctx, "case:case-a"))

	second, err := engine.FindSimilar(ctx, "target", target)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindSimilarEmptyBag(t *testing.T) {
	engine, _ := testEngine(t)
	results, err := engine.FindSimilar(context.Background(), "target", models.EntityBag{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRebuild(t *testing.T) {
	engine, store := testEngine(t)
	ctx := context.Background()

	bag := models.EntityBag{models.EntityUser: {"alice"}}
	require.NoError(t, store.StoreCase(ctx, &kv.CaseSummary{
		CaseID:   "case-a",
		Entities: bag.ToStringMap(),
	}))

	// No index entries yet.
	members, err := store.EntityIndexMembers(ctx, models.EntityUser, "alice")
	require.NoError(t, err)
	assert.Empty(t, members)

	n, err := engine.Rebuild(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	members, err = store.EntityIndexMembers(ctx, models.EntityUser, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"case-a"}, members)
}

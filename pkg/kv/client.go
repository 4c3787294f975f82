// Package kv provides the Redis-backed key-value case store: case summaries,
// entity inverted indices for similarity search, similarity result caching,
// approval notifications and component health keys.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/secopshq/caseflow/pkg/models"
)

// Key layout. All keys owned by this package live under these prefixes.
const (
	keyCase                 = "case:%s"
	keyAlert                = "alert:%s"
	keyAllCases             = "all_cases"
	keyEntityIndex          = "idx:entity:%s:%s"
	keySimilarityCache      = "sim:%s"
	keyApproval             = "approval:%s"
	keyApprovalNotification = "approval_notifications"
	keyHealth               = "health:%s"
)

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Client wraps go-redis and provides the case-store operations the
// pipeline consumes.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to Redis and verifies connectivity.
func NewClient(cfg Config) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  3 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     20,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed (%s): %w", cfg.Addr, err)
	}

	slog.Info("Redis connected", "addr", cfg.Addr, "db", cfg.DB)
	return &Client{rdb: rdb}, nil
}

// NewFromRedis wraps an existing go-redis client (useful for testing with
// miniredis).
func NewFromRedis(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Close shuts down the underlying redis client.
func (c *Client) Close() error {
	return c.rdb.Close()
}

// Ping verifies connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// CaseSummary is the KV-resident summary of a case or alert.
type CaseSummary struct {
	CaseID      string              `json:"case_id"`
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	Severity    string              `json:"severity,omitempty"`
	RuleID      string              `json:"rule_id,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	Entities    map[string][]string `json:"entities,omitempty"`
	RawData     json.RawMessage     `json:"raw_data,omitempty"`
}

// GetSummary returns the stored summary for a case, or ErrNotFound.
func (c *Client) GetSummary(ctx context.Context, caseID string) (*CaseSummary, error) {
	raw, err := c.rdb.Get(ctx, fmt.Sprintf(keyCase, caseID)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("%w: case %s", ErrNotFound, caseID)
	}
	if err != nil {
		return nil, fmt.Errorf("get case %s: %w", caseID, err)
	}
	var summary CaseSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, fmt.Errorf("decode case %s: %w", caseID, err)
	}
	return &summary, nil
}

// StoreCase stores a case summary and registers the case in the all_cases set.
func (c *Client) StoreCase(ctx context.Context, summary *CaseSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode case %s: %w", summary.CaseID, err)
	}
	if err := c.rdb.Set(ctx, fmt.Sprintf(keyCase, summary.CaseID), raw, 0).Err(); err != nil {
		return fmt.Errorf("store case %s: %w", summary.CaseID, err)
	}
	if err := c.rdb.SAdd(ctx, keyAllCases, summary.CaseID).Err(); err != nil {
		return fmt.Errorf("register case %s: %w", summary.CaseID, err)
	}
	return nil
}

// AllCaseIDs returns the members of the all_cases set.
func (c *Client) AllCaseIDs(ctx context.Context) ([]string, error) {
	return c.rdb.SMembers(ctx, keyAllCases).Result()
}

// EntityIndexAdd adds a case to the inverted index for one entity value,
// refreshing the index TTL. Values are lowercased so lookups are
// case-insensitive.
func (c *Client) EntityIndexAdd(ctx context.Context, t models.EntityType, value, caseID string, ttl time.Duration) error {
	key := fmt.Sprintf(keyEntityIndex, t, strings.ToLower(value))
	if err := c.rdb.SAdd(ctx, key, caseID).Err(); err != nil {
		return fmt.Errorf("index add %s: %w", key, err)
	}
	if ttl > 0 {
		if err := c.rdb.Expire(ctx, key, ttl).Err(); err != nil {
			return fmt.Errorf("index expire %s: %w", key, err)
		}
	}
	return nil
}

// EntityIndexMembers returns the case IDs indexed under one entity value.
func (c *Client) EntityIndexMembers(ctx context.Context, t models.EntityType, value string) ([]string, error) {
	key := fmt.Sprintf(keyEntityIndex, t, strings.ToLower(value))
	members, err := c.rdb.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("index members %s: %w", key, err)
	}
	return members, nil
}

// SimilarityCacheGet returns a cached similarity result set, if present.
func (c *Client) SimilarityCacheGet(ctx context.Context, hash string) ([]models.SimilarCase, bool, error) {
	raw, err := c.rdb.Get(ctx, fmt.Sprintf(keySimilarityCache, hash)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sim cache get %s: %w", hash, err)
	}
	var results []models.SimilarCase
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, false, fmt.Errorf("sim cache decode %s: %w", hash, err)
	}
	return results, true, nil
}

// SimilarityCacheSet stores a similarity result set with a TTL.
func (c *Client) SimilarityCacheSet(ctx context.Context, hash string, results []models.SimilarCase, ttl time.Duration) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("sim cache encode %s: %w", hash, err)
	}
	return c.rdb.Set(ctx, fmt.Sprintf(keySimilarityCache, hash), raw, ttl).Err()
}

// NotifyApproval pushes an approval ID onto the notification list consumed
// by operator tooling.
func (c *Client) NotifyApproval(ctx context.Context, approvalID string) error {
	return c.rdb.LPush(ctx, keyApprovalNotification, approvalID).Err()
}

// SetApprovalState mirrors the current approval status into KV for
// dashboards. Best-effort: REL remains the source of truth.
func (c *Client) SetApprovalState(ctx context.Context, approvalID string, fields map[string]string) error {
	values := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		values = append(values, k, v)
	}
	return c.rdb.HSet(ctx, fmt.Sprintf(keyApproval, approvalID), values...).Err()
}

// SetHealth records a component health string with a TTL.
func (c *Client) SetHealth(ctx context.Context, service, status string, ttl time.Duration) error {
	return c.rdb.Set(ctx, fmt.Sprintf(keyHealth, service), status, ttl).Err()
}

// Generic operations, for callers outside the fixed key layout.

// Get returns the raw value for a key, or ErrNotFound.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return val, err
}

// Set stores a value with an optional TTL (0 = no expiry).
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

// Delete removes keys.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	return c.rdb.Del(ctx, keys...).Err()
}

// Keys returns keys matching a pattern. Intended for maintenance paths
// (index rebuild), not hot paths.
func (c *Client) Keys(ctx context.Context, pattern string) ([]string, error) {
	return c.rdb.Keys(ctx, pattern).Result()
}

// SAdd adds members to a set.
func (c *Client) SAdd(ctx context.Context, key string, members ...string) error {
	ifaces := make([]any, len(members))
	for i, m := range members {
		ifaces[i] = m
	}
	return c.rdb.SAdd(ctx, key, ifaces...).Err()
}

// SMembers returns all members of a set.
func (c *Client) SMembers(ctx context.Context, key string) ([]string, error) {
	return c.rdb.SMembers(ctx, key).Result()
}

// HGetAll returns all fields of a hash.
func (c *Client) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	return c.rdb.HGetAll(ctx, key).Result()
}

// Expire sets a TTL on a key.
func (c *Client) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.rdb.Expire(ctx, key, ttl).Err()
}

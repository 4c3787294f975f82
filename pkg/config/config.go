// Package config loads and validates the caseflow configuration:
// YAML file + environment expansion, merged over built-in defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/secopshq/caseflow/pkg/models"
)

// Config is the fully-merged runtime configuration.
type Config struct {
	Defaults    DefaultsConfig                `yaml:"defaults"`
	LLM         LLMConfig                     `yaml:"llm"`
	Embedding   EmbeddingConfig               `yaml:"embedding"`
	SIEM        SIEMConfig                    `yaml:"siem"`
	CaseAPI     CaseAPIConfig                 `yaml:"case_api"`
	Eligibility EligibilityConfig             `yaml:"eligibility"`
	Similarity  SimilarityConfig              `yaml:"similarity"`
	Approvals   ApprovalsConfig               `yaml:"approvals"`
	Audit       AuditConfig                   `yaml:"audit"`
	Reports     ReportsConfig                 `yaml:"reports"`

	// Providers is built from LLM.Providers after load.
	Providers *LLMProviderRegistry `yaml:"-"`
}

// DefaultsConfig groups pipeline-level defaults.
type DefaultsConfig struct {
	AutonomyLevel  models.AutonomyLevel `yaml:"autonomy_level"`
	MaxDepth       int                  `yaml:"max_depth"`
	RequestTimeout time.Duration        `yaml:"request_timeout"`
}

// LLMConfig holds the LLM adapter settings and provider table.
type LLMConfig struct {
	BaseURL         string                        `yaml:"base_url"`
	APIKeyEnv       string                        `yaml:"api_key_env"`
	Timeout         time.Duration                 `yaml:"timeout"`
	Temperature     float64                       `yaml:"temperature"`
	MaxTokens       int                           `yaml:"max_output_tokens"`
	DefaultProvider string                        `yaml:"default_provider"`
	Providers       map[string]*LLMProviderConfig `yaml:"providers"`
}

// EmbeddingConfig holds the embedding endpoint settings for the vector store.
type EmbeddingConfig struct {
	BaseURL   string `yaml:"base_url"`
	APIKeyEnv string `yaml:"api_key_env"`
	Model     string `yaml:"model"`
	Dim       int    `yaml:"dim"`
}

// SIEMConfig holds the SIEM adapter and query executor settings.
type SIEMConfig struct {
	Type                 string        `yaml:"type"`
	BaseURL              string        `yaml:"base_url"`
	TokenEnv             string        `yaml:"token_env"`
	QueryTimeout         time.Duration `yaml:"query_timeout"`
	MaxConcurrentQueries int           `yaml:"max_concurrent_queries"`
	CacheTTL             time.Duration `yaml:"cache_ttl"`
	QueryLimit           int           `yaml:"query_limit"`
}

// CaseAPIConfig holds the external case-record adapter settings.
type CaseAPIConfig struct {
	BaseURL  string        `yaml:"base_url"`
	TokenEnv string        `yaml:"token_env"`
	Timeout  time.Duration `yaml:"timeout"`
}

// EligibilityConfig gates which detections may drive SIEM queries.
// The allowed set is configuration; the default is the union of the
// fact/prof prefixes and the feature rule types.
type EligibilityConfig struct {
	RulePrefixes []string `yaml:"rule_prefixes"`
	RuleTypes    []string `yaml:"rule_types"`
}

// SimilarityConfig tunes the weighted-Jaccard similarity engine.
type SimilarityConfig struct {
	Weights       map[string]float64 `yaml:"weights"`
	MinScore      float64            `yaml:"min_score"`
	Limit         int                `yaml:"limit"`
	TimeWindow    time.Duration      `yaml:"time_window"`
	RuleBonus     float64            `yaml:"rule_bonus"`
	TimeBonus     float64            `yaml:"time_bonus"`
	IndexTTL      time.Duration      `yaml:"index_ttl"`
	CacheTTL      time.Duration      `yaml:"cache_ttl"`
	FanoutWidth   int                `yaml:"fanout_width"`
}

// ApprovalsConfig tunes the human approval gate.
type ApprovalsConfig struct {
	CriticalStages    []string      `yaml:"critical_stages"`
	ManualTimeout     time.Duration `yaml:"manual_timeout"`
	SupervisedTimeout time.Duration `yaml:"supervised_timeout"`
	PollInterval      time.Duration `yaml:"poll_interval"`
	SweepInterval     time.Duration `yaml:"sweep_interval"`
}

// AuditConfig holds audit chain signing settings.
type AuditConfig struct {
	SigningKeyPath string `yaml:"signing_key_path"`
}

// ReportsConfig holds report artifact settings.
type ReportsConfig struct {
	Dir string `yaml:"dir"`
}

// builtinDefaults returns the configuration applied under any user YAML.
func builtinDefaults() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			AutonomyLevel:  models.AutonomySupervised,
			MaxDepth:       3,
			RequestTimeout: 10 * time.Minute,
		},
		LLM: LLMConfig{
			Timeout:         30 * time.Second,
			Temperature:     0.2,
			MaxTokens:       4096,
			DefaultProvider: "default",
		},
		Embedding: EmbeddingConfig{
			Model: "text-embedding-3-small",
			Dim:   384,
		},
		SIEM: SIEMConfig{
			QueryTimeout:         30 * time.Second,
			MaxConcurrentQueries: 3,
			CacheTTL:             15 * time.Minute,
			QueryLimit:           1000,
		},
		CaseAPI: CaseAPIConfig{
			Timeout: 30 * time.Second,
		},
		Eligibility: EligibilityConfig{
			RulePrefixes: []string{"fact", "prof"},
			RuleTypes:    []string{"factFeature", "profileFeature"},
		},
		Similarity: SimilarityConfig{
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
		},
		Approvals: ApprovalsConfig{
			CriticalStages:    []string{"response", "investigation"},
			ManualTimeout:     30 * time.Minute,
			SupervisedTimeout: 15 * time.Minute,
			PollInterval:      2 * time.Second,
			SweepInterval:     time.Minute,
		},
		Reports: ReportsConfig{
			Dir: "./reports",
		},
	}
}

// Initialize loads caseflow.yaml from configDir (if present), expands
// environment variables, merges over built-in defaults and builds the
// provider registry.
func Initialize(configDir string) (*Config, error) {
	cfg := builtinDefaults()

	path := filepath.Join(configDir, "caseflow.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		user := &Config{}
		if err := yaml.Unmarshal(ExpandEnv(data), user); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if err := mergo.Merge(cfg, user, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge configuration: %w", err)
		}
		slog.Info("Loaded configuration", "path", path)
	case os.IsNotExist(err):
		slog.Warn("No caseflow.yaml found, using built-in defaults", "path", path)
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.Providers = NewLLMProviderRegistry(cfg.LLM.Providers)
	return cfg, nil
}

func (c *Config) validate() error {
	if !c.Defaults.AutonomyLevel.IsValid() {
		return fmt.Errorf("invalid default autonomy level %q", c.Defaults.AutonomyLevel)
	}
	if c.Defaults.MaxDepth < 1 {
		return fmt.Errorf("defaults.max_depth must be >= 1, got %d", c.Defaults.MaxDepth)
	}
	if c.SIEM.MaxConcurrentQueries < 1 {
		return fmt.Errorf("siem.max_concurrent_queries must be >= 1, got %d", c.SIEM.MaxConcurrentQueries)
	}
	for name, w := range c.Similarity.Weights {
		if w < 0 {
			return fmt.Errorf("similarity weight for %q must be non-negative, got %v", name, w)
		}
	}
	return nil
}

// ApprovalTimeout returns the wait budget for the given autonomy level.
func (c *Config) ApprovalTimeout(level models.AutonomyLevel) time.Duration {
	switch level {
	case models.AutonomyManual:
		return c.Approvals.ManualTimeout
	default:
		return c.Approvals.SupervisedTimeout
	}
}

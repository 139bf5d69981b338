package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "PROFILESCOUT_CONFIG"
	databaseDSNEnv = "DATABASE_DSN"
	githubTokenEnv = "GITHUB_TOKEN"
	webhookURLEnv  = "DIGEST_WEBHOOK_URL"
	logLevelEnv    = "PROFILESCOUT_LOG_LEVEL"
	transcriptEnv  = "PROFILESCOUT_TRANSCRIPT"
	socialTextEnv  = "PROFILESCOUT_SOCIAL_PROFILE"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Database   DatabaseConfig   `yaml:"database"`
	Digest     DigestConfig     `yaml:"digest"`
	Providers  []ProviderConfig `yaml:"providers"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ScoringConfig carries every threshold the engine consumes. They are
// injected rather than hard-coded so tests can sweep them.
type ScoringConfig struct {
	MinMessages      int `yaml:"minMessages"`
	MinCategoryScore int `yaml:"minCategoryScore"`
	ScoreThreshold   int `yaml:"scoreThreshold"`
	MinPerBucket     int `yaml:"minPerBucket"`
	MaxPerBucket     int `yaml:"maxPerBucket"`
}

// AggregatorConfig bounds the concurrent source fan-out.
type AggregatorConfig struct {
	SourceTimeoutSeconds int    `yaml:"sourceTimeoutSeconds"`
	BreakerMaxFailures   uint32 `yaml:"breakerMaxFailures"`
	BreakerOpenSeconds   int    `yaml:"breakerOpenSeconds"`
}

// SourceTimeout resolves the per-source timeout.
func (a AggregatorConfig) SourceTimeout() time.Duration {
	return time.Duration(a.SourceTimeoutSeconds) * time.Second
}

// BreakerOpenTimeout resolves how long a tripped breaker stays open.
func (a AggregatorConfig) BreakerOpenTimeout() time.Duration {
	return time.Duration(a.BreakerOpenSeconds) * time.Second
}

// DatabaseConfig describes Postgres connection details for the delivery
// history repository. Empty DSN disables persistence.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// DigestConfig describes the recommendation digest job. Recurring runs
// the job on the configured interval; otherwise it executes once.
type DigestConfig struct {
	Subject        string `yaml:"subject"`
	WebhookURL     string `yaml:"webhookUrl"`
	Recurring      bool   `yaml:"recurring"`
	IntervalHours  int    `yaml:"intervalHours"`
	TranscriptPath string `yaml:"transcriptPath"`
	SocialPath     string `yaml:"socialPath"`
}

// Interval resolves the digest cadence.
func (d DigestConfig) Interval() time.Duration {
	if d.IntervalHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(d.IntervalHours) * time.Hour
}

// ProviderConfig describes one content source instance. Priority breaks
// deduplication ties; lower wins.
type ProviderConfig struct {
	Name     string            `yaml:"name"`
	Kind     string            `yaml:"kind"`
	Priority int               `yaml:"priority"`
	Options  map[string]string `yaml:"options"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	if len(cfg.Providers) == 0 {
		cfg.Providers = defaultConfig().Providers
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(webhookURLEnv); v != "" {
		c.Digest.WebhookURL = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(transcriptEnv); v != "" {
		c.Digest.TranscriptPath = v
	}

	if v := os.Getenv(socialTextEnv); v != "" {
		c.Digest.SocialPath = v
	}

	if v := os.Getenv(githubTokenEnv); v != "" {
		for i := range c.Providers {
			if c.Providers[i].Kind == "github" {
				if c.Providers[i].Options == nil {
					c.Providers[i].Options = map[string]string{}
				}
				c.Providers[i].Options["token"] = v
			}
		}
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Scoring.MinMessages > 0 {
		base.Scoring.MinMessages = override.Scoring.MinMessages
	}
	if override.Scoring.MinCategoryScore > 0 {
		base.Scoring.MinCategoryScore = override.Scoring.MinCategoryScore
	}
	if override.Scoring.ScoreThreshold > 0 {
		base.Scoring.ScoreThreshold = override.Scoring.ScoreThreshold
	}
	if override.Scoring.MinPerBucket > 0 {
		base.Scoring.MinPerBucket = override.Scoring.MinPerBucket
	}
	if override.Scoring.MaxPerBucket > 0 {
		base.Scoring.MaxPerBucket = override.Scoring.MaxPerBucket
	}

	if override.Aggregator.SourceTimeoutSeconds > 0 {
		base.Aggregator.SourceTimeoutSeconds = override.Aggregator.SourceTimeoutSeconds
	}
	if override.Aggregator.BreakerMaxFailures > 0 {
		base.Aggregator.BreakerMaxFailures = override.Aggregator.BreakerMaxFailures
	}
	if override.Aggregator.BreakerOpenSeconds > 0 {
		base.Aggregator.BreakerOpenSeconds = override.Aggregator.BreakerOpenSeconds
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Digest.Subject != "" {
		base.Digest.Subject = override.Digest.Subject
	}
	if override.Digest.WebhookURL != "" {
		base.Digest.WebhookURL = override.Digest.WebhookURL
	}
	if override.Digest.Recurring {
		base.Digest.Recurring = true
	}
	if override.Digest.IntervalHours > 0 {
		base.Digest.IntervalHours = override.Digest.IntervalHours
	}
	if override.Digest.TranscriptPath != "" {
		base.Digest.TranscriptPath = override.Digest.TranscriptPath
	}
	if override.Digest.SocialPath != "" {
		base.Digest.SocialPath = override.Digest.SocialPath
	}

	if len(override.Providers) > 0 {
		base.Providers = override.Providers
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Scoring: ScoringConfig{
			MinMessages:      3,
			MinCategoryScore: 3,
			ScoreThreshold:   25,
			MinPerBucket:     3,
			MaxPerBucket:     7,
		},
		Aggregator: AggregatorConfig{
			SourceTimeoutSeconds: 8,
			BreakerMaxFailures:   3,
			BreakerOpenSeconds:   30,
		},
		Digest: DigestConfig{
			Subject:       "default",
			IntervalHours: 24,
		},
		Providers: []ProviderConfig{
			{
				Name:     "github-search",
				Kind:     "github",
				Priority: 0,
				Options:  map[string]string{"endpoint": "https://api.github.com"},
			},
			{
				Name:     "curated-catalog",
				Kind:     "curated",
				Priority: 1,
				Options:  map[string]string{"path": "catalog.yaml"},
			},
		},
	}
}

// Package config provides loading and parsing of synthkg.yaml configuration
// files. The configuration covers the graph source, walk bounds, model
// endpoint, and answer cache.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents a synthkg.yaml configuration file.
type Config struct {
	// Graph configures the knowledge graph source.
	Graph GraphConfig `yaml:"graph"`

	// Walk configures step-chain traversal.
	Walk WalkConfig `yaml:"walk,omitempty"`

	// Formula configures chemical formula extraction.
	Formula FormulaConfig `yaml:"formula,omitempty"`

	// LLM configures the completion endpoint. Nil disables model calls;
	// answers and selection then use the deterministic paths.
	LLM *LLMConfig `yaml:"llm,omitempty"`

	// Cache configures the Redis answer cache. Nil disables caching.
	Cache *CacheConfig `yaml:"cache,omitempty"`
}

// GraphConfig locates the RDF/XML knowledge graph.
type GraphConfig struct {
	// Path is the RDF/XML file to load.
	Path string `yaml:"path"`
}

// WalkConfig bounds step-chain walks.
type WalkConfig struct {
	// MaxSteps caps a single walk. Zero keeps the engine default.
	MaxSteps int `yaml:"max_steps,omitempty"`
}

// FormulaConfig tunes formula extraction.
type FormulaConfig struct {
	// KeepSingleElement accepts bare element symbols as formulas.
	KeepSingleElement bool `yaml:"keep_single_element,omitempty"`

	// MaxTokenLen bounds accepted token length. Zero keeps the default.
	MaxTokenLen int `yaml:"max_token_len,omitempty"`
}

// LLMConfig points at an OpenAI-compatible completion endpoint.
type LLMConfig struct {
	// BaseURL is the endpoint, empty for hosted OpenAI.
	BaseURL string `yaml:"base_url,omitempty"`

	// APIKeyEnv names the environment variable holding the API key.
	// Default: OPENAI_API_KEY
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Model is the model name to request.
	Model string `yaml:"model"`

	// Timeout is the per-call timeout.
	// Format: Go duration string (e.g., "30s", "1m")
	// Default: 60s
	Timeout string `yaml:"timeout,omitempty"`
}

// CacheConfig points at the Redis answer cache.
type CacheConfig struct {
	// URL is the Redis connection string.
	URL string `yaml:"url"`

	// TTL is the entry lifetime.
	// Format: Go duration string (e.g., "1h")
	// Default: 1h
	TTL string `yaml:"ttl,omitempty"`
}

// APIKey reads the configured API key from the environment. An empty result
// is valid for local servers that skip authentication.
func (l *LLMConfig) APIKey() string {
	env := l.APIKeyEnv
	if env == "" {
		env = "OPENAI_API_KEY"
	}
	return os.Getenv(env)
}

// GetTimeout parses the timeout string and returns a duration.
// Returns the default value if not set or invalid.
func (l *LLMConfig) GetTimeout() time.Duration {
	if l == nil || l.Timeout == "" {
		return 60 * time.Second
	}
	d, err := time.ParseDuration(l.Timeout)
	if err != nil {
		return 60 * time.Second
	}
	return d
}

// GetTTL parses the TTL string and returns a duration.
// Returns the default value if not set or invalid.
func (c *CacheConfig) GetTTL() time.Duration {
	if c == nil || c.TTL == "" {
		return 1 * time.Hour
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 1 * time.Hour
	}
	return d
}

// Load reads and parses a synthkg.yaml file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and value ranges.
func (c *Config) Validate() error {
	if c.Graph.Path == "" {
		return fmt.Errorf("graph.path is required")
	}
	if c.Walk.MaxSteps < 0 {
		return fmt.Errorf("walk.max_steps must not be negative")
	}
	if c.Formula.MaxTokenLen < 0 {
		return fmt.Errorf("formula.max_token_len must not be negative")
	}
	if c.LLM != nil && c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required when llm is configured")
	}
	if c.Cache != nil && c.Cache.URL == "" {
		return fmt.Errorf("cache.url is required when cache is configured")
	}
	return nil
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "synthkg.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
graph:
  path: /data/synthesis.rdf
walk:
  max_steps: 25
formula:
  keep_single_element: true
llm:
  base_url: http://localhost:11434/v1
  model: llama3
  timeout: 30s
cache:
  url: redis://localhost:6379
  ttl: 10m
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Graph.Path != "/data/synthesis.rdf" {
		t.Errorf("graph path = %q", cfg.Graph.Path)
	}
	if cfg.Walk.MaxSteps != 25 {
		t.Errorf("max steps = %d", cfg.Walk.MaxSteps)
	}
	if !cfg.Formula.KeepSingleElement {
		t.Error("expected keep_single_element")
	}
	if cfg.LLM.Model != "llama3" {
		t.Errorf("model = %q", cfg.LLM.Model)
	}
	if got := cfg.LLM.GetTimeout(); got != 30*time.Second {
		t.Errorf("timeout = %v", got)
	}
	if got := cfg.Cache.GetTTL(); got != 10*time.Minute {
		t.Errorf("ttl = %v", got)
	}
}

func TestLoad_Minimal(t *testing.T) {
	path := writeConfig(t, "graph:\n  path: graph.rdf\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LLM != nil || cfg.Cache != nil {
		t.Error("expected llm and cache to stay nil")
	}
	if got := cfg.LLM.GetTimeout(); got != 60*time.Second {
		t.Errorf("default timeout = %v", got)
	}
	if got := cfg.Cache.GetTTL(); got != time.Hour {
		t.Errorf("default ttl = %v", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{Graph: GraphConfig{Path: "g.rdf"}},
		},
		{
			name:    "missing graph path",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "negative max steps",
			cfg:     Config{Graph: GraphConfig{Path: "g.rdf"}, Walk: WalkConfig{MaxSteps: -1}},
			wantErr: true,
		},
		{
			name:    "llm without model",
			cfg:     Config{Graph: GraphConfig{Path: "g.rdf"}, LLM: &LLMConfig{}},
			wantErr: true,
		},
		{
			name:    "cache without url",
			cfg:     Config{Graph: GraphConfig{Path: "g.rdf"}, Cache: &CacheConfig{}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %t", err, tt.wantErr)
			}
		})
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	l := &LLMConfig{Timeout: "soon"}
	if got := l.GetTimeout(); got != 60*time.Second {
		t.Errorf("timeout = %v", got)
	}
	c := &CacheConfig{TTL: "forever"}
	if got := c.GetTTL(); got != time.Hour {
		t.Errorf("ttl = %v", got)
	}
}

func TestAPIKey(t *testing.T) {
	t.Setenv("SYNTHKG_TEST_KEY", "sk-test")
	l := &LLMConfig{APIKeyEnv: "SYNTHKG_TEST_KEY"}
	if got := l.APIKey(); got != "sk-test" {
		t.Errorf("api key = %q", got)
	}
}

package config

import (
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "talentx")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Match.MinScore != 30 {
		t.Fatalf("expected default min score 30, got %d", cfg.Match.MinScore)
	}
	if cfg.Match.MaxResults != 20 {
		t.Fatalf("expected default max results 20, got %d", cfg.Match.MaxResults)
	}
	if cfg.AIScorer.Timeout != 3*time.Second {
		t.Fatalf("expected default scorer timeout 3s, got %s", cfg.AIScorer.Timeout)
	}
	if cfg.AIScorer.Enabled() {
		t.Fatal("scorer must be disabled without base URL and API key")
	}
	if cfg.Redis.MatchedJobsTTL != time.Minute {
		t.Fatalf("expected default feed TTL 1m, got %s", cfg.Redis.MatchedJobsTTL)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_ACCESS_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_ACCESS_SECRET")
	}
}

func TestLoadTunables(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCH_MIN_SCORE", "50")
	t.Setenv("MATCH_MAX_RESULTS", "5")
	t.Setenv("AI_SCORER_BASE_URL", "https://api.openai.com")
	t.Setenv("AI_SCORER_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Match.MinScore != 50 || cfg.Match.MaxResults != 5 {
		t.Fatalf("expected tunables 50/5, got %d/%d", cfg.Match.MinScore, cfg.Match.MaxResults)
	}
	if !cfg.AIScorer.Enabled() {
		t.Fatal("scorer must be enabled with base URL and API key")
	}
}

func TestLoadRejectsBadCutoffs(t *testing.T) {
	setRequired(t)
	t.Setenv("MATCH_MIN_SCORE", "250")
	t.Setenv("MATCH_MAX_RESULTS", "-1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Match.MinScore != 30 || cfg.Match.MaxResults != 20 {
		t.Fatalf("out-of-range cutoffs must fall back to defaults, got %d/%d", cfg.Match.MinScore, cfg.Match.MaxResults)
	}
}

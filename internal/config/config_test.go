package config

import (
	"testing"
	"time"
)

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing required env")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_NAME", "autohire-matcher")
	t.Setenv("APP_ENV", "test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Matcher.SkillsWeight != 0.35 || cfg.Matcher.EducationWeight != 0.10 {
		t.Fatalf("unexpected default weights: %+v", cfg.Matcher)
	}
	if cfg.Matcher.QualifyScore != 60 {
		t.Fatalf("expected default qualify score 60, got %d", cfg.Matcher.QualifyScore)
	}
	if cfg.Worker.PollInterval != 15*time.Second {
		t.Fatalf("expected default poll interval, got %v", cfg.Worker.PollInterval)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_NAME", "autohire-matcher")
	t.Setenv("APP_ENV", "test")
	t.Setenv("MATCH_QUALIFY_SCORE", "70")
	t.Setenv("WORKER_POLL_INTERVAL", "1m")
	t.Setenv("MATCH_CONCURRENCY", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if cfg.Matcher.QualifyScore != 70 {
		t.Fatalf("expected qualify score override, got %d", cfg.Matcher.QualifyScore)
	}
	if cfg.Worker.PollInterval != time.Minute {
		t.Fatalf("expected poll interval override, got %v", cfg.Worker.PollInterval)
	}
	if cfg.Matcher.Concurrency != 8 {
		t.Fatalf("malformed value should keep default, got %d", cfg.Matcher.Concurrency)
	}
}

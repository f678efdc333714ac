package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("Port = %q, want 4000", cfg.Port)
	}
	if cfg.PollInterval != 15*time.Second {
		t.Fatalf("PollInterval = %v, want 15s", cfg.PollInterval)
	}
	if cfg.Team != "GSW" {
		t.Fatalf("Team = %q, want GSW", cfg.Team)
	}
	if cfg.Cache.Backend != CacheBackendMemory {
		t.Fatalf("Cache.Backend = %q, want memory", cfg.Cache.Backend)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("metrics should default to enabled")
	}
	if cfg.Metrics.Port != "9090" {
		t.Fatalf("Metrics.Port = %q, want 9090", cfg.Metrics.Port)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envPollInterval, "30s")
	t.Setenv(envTeam, "LAL")
	t.Setenv(envCacheBackend, "redis")
	t.Setenv(envRedisURL, "redis://cache:6379/1")
	t.Setenv(envNbaBaseURL, "http://localhost:9000")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("Port = %q", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("PollInterval = %v", cfg.PollInterval)
	}
	if cfg.Team != "LAL" {
		t.Fatalf("Team = %q", cfg.Team)
	}
	if cfg.Cache.Backend != CacheBackendRedis || cfg.Cache.RedisURL != "redis://cache:6379/1" {
		t.Fatalf("Cache = %+v", cfg.Cache)
	}
	if cfg.NBA.BaseURL != "http://localhost:9000" {
		t.Fatalf("NBA.BaseURL = %q", cfg.NBA.BaseURL)
	}
}

package config

import (
	"log/slog"
	"testing"
	"time"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envMap(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr = %q, want empty", cfg.RedisAddr)
	}
	if cfg.CacheTTL != time.Hour || cfg.RateLimitWindow != time.Minute {
		t.Errorf("durations = %v / %v", cfg.CacheTTL, cfg.RateLimitWindow)
	}
	if cfg.RateLimitCapacity != 5 || cfg.PlanCapacity != 1000 {
		t.Errorf("capacities = %d / %d", cfg.RateLimitCapacity, cfg.PlanCapacity)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(envMap(map[string]string{
		"PORT":                "9000",
		"REDIS_ADDR":          "localhost:6379",
		"REDIS_DB":            "2",
		"CACHE_TTL":           "15m",
		"RATE_LIMIT_CAPACITY": "20",
		"RATE_LIMIT_WINDOW":   "30s",
		"LOG_LEVEL":           "debug",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "9000" || cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.CacheTTL != 15*time.Minute || cfg.RateLimitWindow != 30*time.Second {
		t.Errorf("durations = %v / %v", cfg.CacheTTL, cfg.RateLimitWindow)
	}
	if cfg.RateLimitCapacity != 20 {
		t.Errorf("RateLimitCapacity = %d, want 20", cfg.RateLimitCapacity)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel)
	}
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad redis db", map[string]string{"REDIS_DB": "one"}},
		{"bad ttl", map[string]string{"CACHE_TTL": "forever"}},
		{"bad capacity", map[string]string{"RATE_LIMIT_CAPACITY": "x"}},
		{"zero capacity", map[string]string{"RATE_LIMIT_CAPACITY": "0"}},
		{"bad window", map[string]string{"RATE_LIMIT_WINDOW": "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromEnv(envMap(tt.env)); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"debt-repayment/logging"
)

type Config struct {
	Port string

	RedisAddr     string // empty selects the in-memory cache
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	PlanCapacity int

	RateLimitCapacity int
	RateLimitWindow   time.Duration

	LogLevel slog.Level
}

// Load reads configuration from the environment, after loading a .env file
// from the working directory if there is one. Variables already set in the
// environment win over the file.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:          getOr(getenv, "PORT", "8080"),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
		LogLevel:      logging.ParseLevel(getenv("LOG_LEVEL")),
	}

	var err error
	if cfg.RedisDB, err = intVar(getenv, "REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.CacheTTL, err = durationVar(getenv, "CACHE_TTL", time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.PlanCapacity, err = intVar(getenv, "PLAN_CAPACITY", 1000); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitCapacity, err = intVar(getenv, "RATE_LIMIT_CAPACITY", 5); err != nil {
		return Config{}, err
	}
	if cfg.RateLimitCapacity <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_CAPACITY must be positive, got %d", cfg.RateLimitCapacity)
	}
	if cfg.RateLimitWindow, err = durationVar(getenv, "RATE_LIMIT_WINDOW", time.Minute); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func getOr(getenv func(string) string, key, fallback string) string {
	if value := getenv(key); value != "" {
		return value
	}
	return fallback
}

func intVar(getenv func(string) string, key string, fallback int) (int, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func durationVar(getenv func(string) string, key string, fallback time.Duration) (time.Duration, error) {
	raw := getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

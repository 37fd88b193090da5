package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"debt-repayment/config"
	httpLayer "debt-repayment/http"
	"debt-repayment/logging"
	"debt-repayment/metrics"
	"debt-repayment/repository"
	"debt-repayment/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	m := metrics.New()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(repository.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   "debt-repayment:",
		})
		defer redisCache.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			// Lookups fail soft, so the service still runs without the cache.
			slog.Warn("Redis unavailable, results will not be cached", "addr", cfg.RedisAddr, "error", err)
		}
		cancel()
		cache = redisCache
		slog.Info("Using Redis result cache", "addr", cfg.RedisAddr)
	} else {
		cache = repository.NewMemoryCache()
		slog.Info("Using in-memory result cache")
	}

	plans := repository.NewPlanRepositoryMemory(cfg.PlanCapacity)
	repaymentService := service.NewRepaymentService(cache, plans, m, cfg.CacheTTL)
	repaymentHandler := httpLayer.NewRepaymentHandler(repaymentService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpLayer.NewRouter(repaymentHandler, rateLimiter, m),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		return
	case <-quit:
		slog.Info("Shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Error during server shutdown", "error", err)
	}

	slog.Info("Server exited")
}

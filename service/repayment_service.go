package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"debt-repayment/domain"
	"debt-repayment/metrics"
	"debt-repayment/repository"
)

const cacheKeyPrefix = "repayment:"

type RepaymentService struct {
	cache    repository.CacheRepository
	plans    repository.PlanRepository
	metrics  *metrics.Metrics
	cacheTTL time.Duration

	now   func() time.Time
	newID func() string
}

// NewRepaymentService creates a RepaymentService. Results are cached for
// cacheTTL; a zero TTL keeps them until the cache evicts them.
func NewRepaymentService(
	cache repository.CacheRepository,
	plans repository.PlanRepository,
	m *metrics.Metrics,
	cacheTTL time.Duration,
) *RepaymentService {
	return &RepaymentService{
		cache:    cache,
		plans:    plans,
		metrics:  m,
		cacheTTL: cacheTTL,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Simulate runs the repayment engine for input and stores the resulting plan.
// Identical inputs are served from the cache.
func (s *RepaymentService) Simulate(
	ctx context.Context,
	input domain.RepaymentInput,
) (domain.RepaymentPlan, error) {

	if err := checkRequest(input); err != nil {
		s.countSimulation(input.Strategy, err)
		return domain.RepaymentPlan{}, err
	}

	key, err := cacheKey(input)
	if err != nil {
		return domain.RepaymentPlan{}, fmt.Errorf("build cache key: %w", err)
	}

	result, cached := s.lookup(ctx, key)
	if !cached {
		start := time.Now()
		result, err = Simulate(input.Debts, input.Strategy, input.ExtraPayment, input.OneTimePayment)
		s.countSimulation(input.Strategy, err)
		if err != nil {
			slog.Info("Simulation rejected",
				"strategy", input.Strategy,
				"debts", len(input.Debts),
				"error", err,
			)
			return domain.RepaymentPlan{}, err
		}
		slog.Debug("Simulation completed",
			"strategy", input.Strategy,
			"debts", len(input.Debts),
			"months", result.TotalMonths,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		s.store(ctx, key, result)
	} else {
		s.countSimulation(input.Strategy, nil)
	}
	s.metrics.ScheduleMonths.Observe(float64(result.TotalMonths))

	plan := domain.RepaymentPlan{
		ID:        s.newID(),
		Strategy:  input.Strategy,
		CreatedAt: s.now().UTC(),
		Cached:    cached,
		Result:    result,
		Summary:   BuildSummary(result),
	}

	// The plan is still returned if it cannot be stored.
	if err := s.plans.Save(ctx, plan); err != nil {
		slog.Warn("Failed to save plan", "plan_id", plan.ID, "error", err)
	}
	return plan, nil
}

// Plan returns a previously simulated plan.
func (s *RepaymentService) Plan(ctx context.Context, id string) (domain.RepaymentPlan, error) {
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return domain.RepaymentPlan{}, fmt.Errorf("get plan %s: %w", id, err)
	}
	return plan, nil
}

// EstimatePayoff returns the closed-form payoff estimate for one debt.
func (s *RepaymentService) EstimatePayoff(input domain.PayoffEstimateInput) (domain.PayoffEstimate, error) {
	estimate, err := EstimatePayoff(input)
	if err != nil {
		slog.Info("Estimate rejected", "error", err)
		return domain.PayoffEstimate{}, err
	}
	return estimate, nil
}

func (s *RepaymentService) lookup(ctx context.Context, key string) (domain.RepaymentResult, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("Cache lookup failed", "key", key, "error", err)
		s.metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		return domain.RepaymentResult{}, false
	}
	if !ok {
		s.metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return domain.RepaymentResult{}, false
	}

	var result domain.RepaymentResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		slog.Warn("Discarding unreadable cache entry", "key", key, "error", err)
		s.metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		return domain.RepaymentResult{}, false
	}
	s.metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return result, true
}

func (s *RepaymentService) store(ctx context.Context, key string, result domain.RepaymentResult) {
	raw, err := json.Marshal(result)
	if err != nil {
		slog.Warn("Failed to encode result for cache", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		slog.Warn("Failed to cache result", "key", key, "error", err)
	}
}

func (s *RepaymentService) countSimulation(strategy domain.Strategy, err error) {
	s.metrics.Simulations.WithLabelValues(string(strategy), outcome(err)).Inc()
}

// checkRequest applies the request-level limits the engine does not know
// about.
func checkRequest(input domain.RepaymentInput) error {
	if len(input.Debts) == 0 {
		return inputValidationError("debts", "please add at least one valid debt")
	}
	if len(input.Debts) > MaxDebtsPerRequest {
		return inputValidationError("debts", "number of debts exceeds the maximum of %d", MaxDebtsPerRequest)
	}
	seen := make(map[int64]bool, len(input.Debts))
	for _, debt := range input.Debts {
		if seen[debt.ID] {
			return &ValidationError{
				DebtID:   debt.ID,
				DebtName: debt.Name,
				Field:    "id",
				Message:  fmt.Sprintf("debt id %d is used by more than one debt", debt.ID),
			}
		}
		seen[debt.ID] = true
	}
	return nil
}

func cacheKey(input domain.RepaymentInput) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%016x", cacheKeyPrefix, xxhash.Sum64(raw)), nil
}

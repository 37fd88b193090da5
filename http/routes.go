package http

import (
	"net/http"

	"debt-repayment/metrics"
)

// NewRouter wires the handlers and middleware into one http.Handler.
func NewRouter(repayments *RepaymentHandler, limiter *RateLimiter, m *metrics.Metrics) http.Handler {
	mux := http.NewServeMux()

	handle := func(route string, h http.HandlerFunc, limited bool) {
		var next http.Handler = h
		if limited {
			next = RateLimitMiddleware(limiter, m, next)
		}
		mux.Handle(route, LoggingMiddleware(route, m, next))
	}

	handle("/repayment/simulate", repayments.Simulate, true)
	handle("/repayment/estimate", repayments.EstimatePayoff, true)
	handle("/repayment/plans/{id}", repayments.GetPlan, false)
	handle("/healthz", Health, false)
	mux.Handle("/metrics", m.Handler())

	return mux
}

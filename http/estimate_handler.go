package http

import (
	"net/http"

	"debt-repayment/domain"
)

// EstimatePayoff answers how long one debt takes at a fixed payment, without
// running the full simulation.
func (h *RepaymentHandler) EstimatePayoff(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var input domain.PayoffEstimateInput
	if !decodeJSON(w, r, &input) {
		return
	}

	estimate, err := h.service.EstimatePayoff(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, estimate)
}

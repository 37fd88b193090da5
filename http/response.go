package http

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"debt-repayment/repository"
	"debt-repayment/service"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error    string `json:"error"`
	Field    string `json:"field,omitempty"`
	DebtID   *int64 `json:"debt_id,omitempty"`
	DebtName string `json:"debt_name,omitempty"`
}

// writeJSON encodes v into a buffer first so a failed encode never leaves a
// half-written body behind.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("Error writing response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps service errors to status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	var tooLongErr *service.ScheduleTooLongError

	switch {
	case errors.As(err, &validationErr):
		resp := errorResponse{
			Error: validationErr.Error(),
			Field: validationErr.Field,
		}
		if validationErr.HasDebt() {
			id := validationErr.DebtID
			resp.DebtID = &id
			resp.DebtName = validationErr.DebtName
		}
		writeJSON(w, http.StatusBadRequest, resp)
	case errors.As(err, &tooLongErr):
		writeError(w, http.StatusUnprocessableEntity, tooLongErr.Error())
	case errors.Is(err, repository.ErrPlanNotFound):
		writeError(w, http.StatusNotFound, "plan not found")
	default:
		slog.Error("Unhandled service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON request body into v. It writes the error response
// itself and reports whether decoding succeeded.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		slog.Debug("Error decoding request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// Health reports that the process is serving requests.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Package httphandler implements the operational HTTP surface (health) and
// the middleware chain shared by every route.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"
)

// HealthPath is the liveness endpoint polled by the container healthcheck.
const HealthPath = "/healthz"

// HealthStatusOK is the status reported by a serving process.
const HealthStatusOK = "ok"

// Handler is the HTTP driving adapter for operational endpoints.
type Handler struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger,
		now:    time.Now,
	}
}

// RegisterRoutes registers the operational routes on the provided mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET "+HealthPath, h.Health)
}

// ApplyMiddleware wraps handler with request ID, logging and recovery
// middleware.
func ApplyMiddleware(handler http.Handler, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, handler)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// Health reports that the process is serving.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: HealthStatusOK,
		Time:   h.now().UTC().Format(time.RFC3339),
	})
}

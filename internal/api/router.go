package api

import (
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/helios/internal/metrics"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// NewRouter wires the API routes, the monitoring endpoints and the middleware chain.
func NewRouter(h *Handler, logger *slog.Logger, appMetrics *metrics.Metrics, metricsHandler http.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware(logger, appMetrics))

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/predict", h.Predict).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
	)

	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{log: logger}),
		handlers.PrintRecoveryStack(false),
	)(cors(r))
}

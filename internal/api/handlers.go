package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/helios/internal/models"
	"github.com/UnknownOlympus/helios/internal/resolver"
	"github.com/UnknownOlympus/helios/internal/service"
)

const (
	rootMessage = "Solar Power Prediction API. POST to /predict with location or lat/lon."

	detailModelUnavailable = "Model not available. Train it first."
	detailUnresolvable     = "Could not resolve location to coordinates."
	detailMissing          = "Either provide latitude+longitude or a valid location."

	maxBodyBytes = 1 << 20
)

// CoordinateResolver resolves a request's location fields to a single point.
type CoordinateResolver interface {
	Resolve(ctx context.Context, location *string, lat, lon *float64) (models.Coordinates, error)
}

// Predictor evaluates the solar generation model.
type Predictor interface {
	Available() bool
	Predict(ctx context.Context, features models.FeatureVector) (float64, error)
}

// Handler serves the prediction API.
type Handler struct {
	log       *slog.Logger
	resolver  CoordinateResolver
	predictor Predictor
}

// NewHandler creates a Handler over the given collaborators.
func NewHandler(log *slog.Logger, resolver CoordinateResolver, predictor Predictor) *Handler {
	return &Handler{log: log, resolver: resolver, predictor: predictor}
}

// Root always answers 200, even when the model failed to load.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, StatusResponse{Status: "ok", Message: rootMessage})
}

// Predict handles POST /predict.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PredictionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.log.DebugContext(ctx, "Rejected malformed request body", "error", err)
		h.writeError(ctx, w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := req.validate(); err != nil {
		h.writeError(ctx, w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if !h.predictor.Available() {
		h.writeError(ctx, w, http.StatusInternalServerError, detailModelUnavailable)
		return
	}

	coords, err := h.resolver.Resolve(ctx, req.Location, req.Latitude.float(), req.Longitude.float())
	if err != nil {
		switch {
		case errors.Is(err, resolver.ErrUnresolvableLocation):
			h.writeError(ctx, w, http.StatusBadRequest, detailUnresolvable)
		case errors.Is(err, resolver.ErrMissingCoordinates):
			h.writeError(ctx, w, http.StatusBadRequest, detailMissing)
		default:
			h.log.ErrorContext(ctx, "Unexpected resolver error", "error", err)
			h.writeError(ctx, w, http.StatusBadRequest, err.Error())
		}
		return
	}

	features := models.NewFeatureVector(
		coords,
		float64(*req.ShortwaveRadiation),
		float64(*req.Azimuth),
		float64(*req.Zenith),
		float64(*req.AngleOfIncidence),
	)

	predicted, err := h.predictor.Predict(ctx, features)
	if err != nil {
		var inferErr *service.InferenceError
		switch {
		case errors.Is(err, service.ErrModelUnavailable):
			h.writeError(ctx, w, http.StatusInternalServerError, detailModelUnavailable)
		case errors.As(err, &inferErr):
			h.writeError(ctx, w, http.StatusInternalServerError, "Prediction failed: "+inferErr.Err.Error())
		default:
			h.writeError(ctx, w, http.StatusInternalServerError, "Prediction failed: "+err.Error())
		}
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, PredictionResponse{
		Latitude:             coords.Latitude,
		Longitude:            coords.Longitude,
		PredictedGeneratedKW: predicted,
	})
}

// Health reports 503 while the service runs without a model.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	h.log.DebugContext(ctx, "Performing health checks...")

	status, body := http.StatusOK, "OK"
	if !h.predictor.Available() {
		status, body = http.StatusServiceUnavailable, "model not loaded"
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.log.ErrorContext(ctx, "failed to write reply", "error", err)
	}
}

func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, status int, detail string) {
	h.writeJSON(ctx, w, status, ErrorResponse{Detail: detail})
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.ErrorContext(ctx, "failed to write reply", "error", err)
	}
}

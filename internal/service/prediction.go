package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/UnknownOlympus/helios/internal/estimator"
	"github.com/UnknownOlympus/helios/internal/metrics"
	"github.com/UnknownOlympus/helios/internal/models"
)

// ErrModelUnavailable is returned for every prediction when no model was loaded at startup.
// It persists for the process lifetime.
var ErrModelUnavailable = errors.New("model not available")

// InferenceError wraps any failure raised while evaluating the model.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string {
	return "prediction failed: " + e.Err.Error()
}

func (e *InferenceError) Unwrap() error {
	return e.Err
}

// PredictionService evaluates the loaded estimator for a single feature vector.
type PredictionService struct {
	log     *slog.Logger     // Logger for logging service activities
	model   estimator.Model  // Immutable model loaded at startup, nil when loading failed
	metrics *metrics.Metrics // Metrics for tracking inference outcomes
}

// NewPredictionService creates a new instance of PredictionService. A nil model leaves the
// service degraded: Predict always fails with ErrModelUnavailable.
func NewPredictionService(log *slog.Logger, model estimator.Model, metrics *metrics.Metrics) *PredictionService {
	if model == nil {
		metrics.ModelLoaded.Set(0)
	} else {
		metrics.ModelLoaded.Set(1)
	}

	return &PredictionService{
		log:     log,
		model:   model,
		metrics: metrics,
	}
}

// Available reports whether a model is loaded.
func (ps *PredictionService) Available() bool {
	return ps.model != nil
}

// Predict builds a single row in training order, invokes the model and returns the first
// predicted value in kilowatts.
func (ps *PredictionService) Predict(ctx context.Context, features models.FeatureVector) (float64, error) {
	if ps.model == nil {
		ps.metrics.PredictionsTotal.WithLabelValues("unavailable").Inc()
		return 0, ErrModelUnavailable
	}

	startTime := time.Now()
	value, err := ps.infer(features.Row())
	ps.metrics.InferenceSeconds.Observe(time.Since(startTime).Seconds())

	if err != nil {
		ps.log.ErrorContext(ctx, "Inference failed", "error", err)
		ps.metrics.PredictionsTotal.WithLabelValues("failure").Inc()
		return 0, &InferenceError{Err: err}
	}

	ps.metrics.PredictionsTotal.WithLabelValues("success").Inc()
	ps.log.DebugContext(ctx, "Prediction computed", "predicted_generated_kw", value)

	return value, nil
}

// infer calls the model and converts a panic inside it into an error.
func (ps *PredictionService) infer(row []float64) (value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model panicked: %v", r)
		}
	}()

	out, err := ps.model.Predict([][]float64{row})
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, errors.New("model returned no predictions")
	}
	if math.IsNaN(out[0]) || math.IsInf(out[0], 0) {
		return 0, fmt.Errorf("model returned non-finite value %v", out[0])
	}

	return out[0], nil
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PredictionsTotal *prometheus.CounterVec
	InferenceSeconds prometheus.Histogram
	GeocodeTotal     *prometheus.CounterVec
	GeocodeSeconds   *prometheus.HistogramVec
	HTTPRequests     *prometheus.CounterVec
	ModelLoaded      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		PredictionsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "solar_predictions_total",
			Help: "Total number of model predictions by outcome.",
		}, []string{"status"}),
		InferenceSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "solar_inference_duration_seconds",
			Help:    "Duration of a single model inference call.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		GeocodeTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "geocoding_lookups_total",
			Help: "Total number of geocoding lookups by provider and outcome.",
		}, []string{"provider", "status"}),
		GeocodeSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geocoding_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		ModelLoaded: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "solar_model_loaded",
			Help: "1 when the estimator artifact was loaded at startup, 0 otherwise.",
		}),
	}
}

package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/helios/internal/geocoding"
	"github.com/UnknownOlympus/helios/internal/metrics"
	"github.com/UnknownOlympus/helios/internal/models"
)

var (
	// ErrMissingCoordinates means neither a complete latitude/longitude pair nor a location was given.
	ErrMissingCoordinates = errors.New("either provide latitude+longitude or a valid location")
	// ErrUnresolvableLocation means the location could not be geocoded.
	ErrUnresolvableLocation = errors.New("could not resolve location to coordinates")
)

// Resolver turns explicit coordinates or a free-text place name into a single point.
type Resolver struct {
	log          *slog.Logger       // Logger for logging resolution activities
	provider     geocoding.Provider // Geocoding provider for place names
	providerName string             // Name of the provider for metrics labeling
	metrics      *metrics.Metrics   // Metrics for tracking provider performance
}

// New creates a Resolver backed by the given geocoding provider.
func New(log *slog.Logger, provider geocoding.Provider, providerName string, metrics *metrics.Metrics) *Resolver {
	return &Resolver{
		log:          log,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
	}
}

// Resolve returns lat/lon unchanged when both are set. Otherwise it geocodes location,
// failing with ErrUnresolvableLocation on any lookup error or no match. Without a usable
// location it fails with ErrMissingCoordinates, including when only one of lat/lon is set.
// The lookup is attempted exactly once.
func (r *Resolver) Resolve(ctx context.Context, location *string, lat, lon *float64) (models.Coordinates, error) {
	if lat != nil && lon != nil {
		return models.Coordinates{Latitude: *lat, Longitude: *lon}, nil
	}

	if location == nil || strings.TrimSpace(*location) == "" {
		return models.Coordinates{}, ErrMissingCoordinates
	}

	query := strings.TrimSpace(*location)

	startTime := time.Now()
	coords, err := r.provider.Geocode(ctx, query)
	r.metrics.GeocodeSeconds.WithLabelValues(r.providerName).Observe(time.Since(startTime).Seconds())

	if err != nil {
		status := "error"
		if errors.Is(err, geocoding.ErrNoMatch) {
			status = "no_match"
		}
		r.metrics.GeocodeTotal.WithLabelValues(r.providerName, status).Inc()
		r.log.WarnContext(ctx, "Failed to geocode location", "location", query, "error", err)

		return models.Coordinates{}, fmt.Errorf("%w: %w", ErrUnresolvableLocation, err)
	}

	if coords == nil || !coords.Valid() {
		r.metrics.GeocodeTotal.WithLabelValues(r.providerName, "invalid").Inc()
		r.log.WarnContext(ctx, "Geocoder returned coordinates out of range", "location", query, "coords", coords)

		return models.Coordinates{}, ErrUnresolvableLocation
	}

	r.metrics.GeocodeTotal.WithLabelValues(r.providerName, "success").Inc()
	r.log.DebugContext(ctx, "Location resolved", "location", query, "lat", coords.Latitude, "lon", coords.Longitude)

	return *coords, nil
}

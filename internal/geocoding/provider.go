package geocoding

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/helios/internal/models"
)

// Provider is an interface that defines a method for geocoding a free-text place name.
// The Geocode method takes a context and a query string as input,
// and returns the corresponding coordinates and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, query string) (*models.Coordinates, error)
}

// ErrNoMatch is wrapped by every provider error that means "the query matched nothing".
var ErrNoMatch = errors.New("no geocoding match")

package geocoding_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/helios/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

type mockGoogleClient struct {
	mock.Mock
}

func (m *mockGoogleClient) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	args := m.Called(ctx, r)
	results, _ := args.Get(0).([]maps.GeocodingResult)
	return results, args.Error(1)
}

func TestGoogleProvider_Geocode(t *testing.T) {
	mockClient := &mockGoogleClient{}
	provider := geocoding.NewGoogleProvider(mockClient, slog.Default())
	ctx := t.Context()

	t.Run("api returns error", func(t *testing.T) {
		query := "some invalid place"
		req := &maps.GeocodingRequest{Address: query}

		mockClient.On("Geocode", ctx, req).Return(nil, assert.AnError).Once()

		_, err := provider.Geocode(ctx, query)

		require.Error(t, err)
		require.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, geocoding.ErrNoMatch)
		mockClient.AssertExpectations(t)
	})

	t.Run("api return empty response", func(t *testing.T) {
		query := "Atlantis"
		req := &maps.GeocodingRequest{Address: query}

		mockClient.On("Geocode", ctx, req).Return(nil, nil).Once()

		coords, err := provider.Geocode(ctx, query)

		require.Nil(t, coords)
		require.ErrorIs(t, err, geocoding.ErrEmptyResponse)
		require.ErrorIs(t, err, geocoding.ErrNoMatch)
		mockClient.AssertExpectations(t)
	})

	t.Run("successfull geocoding", func(t *testing.T) {
		query := "Newark, New Jersey"
		req := &maps.GeocodingRequest{Address: query}
		mockReponse := []maps.GeocodingResult{
			{Geometry: maps.AddressGeometry{Location: maps.LatLng{Lat: 40.73, Lng: -74.17}}},
		}

		mockClient.On("Geocode", ctx, req).Return(mockReponse, nil).Once()

		coords, err := provider.Geocode(ctx, query)

		require.NoError(t, err)
		require.NotNil(t, coords)
		require.InEpsilon(t, 40.73, coords.Latitude, 0.01)
		require.InEpsilon(t, -74.17, coords.Longitude, 0.01)
		mockClient.AssertExpectations(t)
	})
}

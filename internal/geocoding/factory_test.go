package geocoding_test

import (
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/helios/internal/geocoding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_SelectsImplementation(t *testing.T) {
	tests := []struct {
		name   string
		config geocoding.ProviderConfig
		check  func(t *testing.T, p geocoding.Provider)
	}{
		{
			name:   "nominatim needs no key",
			config: geocoding.ProviderConfig{Type: geocoding.ProviderTypeNominatim},
			check: func(t *testing.T, p geocoding.Provider) {
				assert.IsType(t, &geocoding.NominatimProvider{}, p)
			},
		},
		{
			name:   "google with key and client side rate limit",
			config: geocoding.ProviderConfig{Type: geocoding.ProviderTypeGoogle, APIKey: "maps-key", RateLimit: 10},
			check: func(t *testing.T, p geocoding.Provider) {
				assert.IsType(t, &geocoding.GoogleProvider{}, p)
			},
		},
		{
			name:   "google without rate limit",
			config: geocoding.ProviderConfig{Type: geocoding.ProviderTypeGoogle, APIKey: "maps-key"},
			check: func(t *testing.T, p geocoding.Provider) {
				assert.IsType(t, &geocoding.GoogleProvider{}, p)
			},
		},
		{
			name:   "visicom with key",
			config: geocoding.ProviderConfig{Type: geocoding.ProviderTypeVisicom, APIKey: "visicom-key", RateLimit: 2},
			check: func(t *testing.T, p geocoding.Provider) {
				assert.IsType(t, &geocoding.VisicomProvider{}, p)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Logger = slog.Default()

			provider, err := geocoding.NewProvider(tt.config)

			require.NoError(t, err)
			require.NotNil(t, provider)
			tt.check(t, provider)
		})
	}
}

func TestNewProvider_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		config  geocoding.ProviderConfig
		wantErr string
	}{
		{"google without key", geocoding.ProviderConfig{Type: geocoding.ProviderTypeGoogle}, "API key is required for Google provider"},
		{"visicom without key", geocoding.ProviderConfig{Type: geocoding.ProviderTypeVisicom}, "API key is required for Visicom provider"},
		{"unknown type", geocoding.ProviderConfig{Type: "photon"}, "unsupported provider type: photon"},
		{"empty type", geocoding.ProviderConfig{}, "unsupported provider type: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Logger = slog.Default()

			provider, err := geocoding.NewProvider(tt.config)

			require.Error(t, err)
			assert.Nil(t, provider)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestProviderType_MatchesConfigValues(t *testing.T) {
	assert.Equal(t, geocoding.ProviderTypeNominatim, geocoding.ProviderType("nominatim"))
	assert.Equal(t, geocoding.ProviderTypeGoogle, geocoding.ProviderType("google"))
	assert.Equal(t, geocoding.ProviderTypeVisicom, geocoding.ProviderType("visicom"))
}

package geocoding

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNewProvider_NominatimOptionsPassThrough(t *testing.T) {
	provider, err := NewProvider(ProviderConfig{
		Type:      ProviderTypeNominatim,
		UserAgent: "helios-e2e",
		Fallback:  true,
		Timeout:   3 * time.Second,
		RateLimit: 2,
		Logger:    slog.Default(),
	})
	require.NoError(t, err)

	np, ok := provider.(*NominatimProvider)
	require.True(t, ok)
	assert.Equal(t, "helios-e2e", np.userAgent)
	assert.True(t, np.fallback)
	assert.Equal(t, NominatimBaseURL, np.baseURL)
	assert.Equal(t, rate.Limit(2), np.limiter.Limit())

	client, ok := np.client.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, client.Timeout)
}

func TestNewProvider_NominatimDefaults(t *testing.T) {
	provider, err := NewProvider(ProviderConfig{Type: ProviderTypeNominatim, Logger: slog.Default()})
	require.NoError(t, err)

	np, ok := provider.(*NominatimProvider)
	require.True(t, ok)
	assert.Equal(t, DefaultUserAgent, np.userAgent)
	assert.False(t, np.fallback, "a failed query is not repeated unless fallback is enabled")
	assert.Equal(t, rate.Inf, np.limiter.Limit(), "lookups are not throttled by default")

	client, ok := np.client.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 10*time.Second, client.Timeout)
}

func TestNewProvider_VisicomDefaultRateLimit(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	provider, err := NewProvider(ProviderConfig{
		Type:    ProviderTypeVisicom,
		APIKey:  "visicom-key",
		Timeout: 4 * time.Second,
		Logger:  logger,
	})
	require.NoError(t, err)

	vp, ok := provider.(*VisicomProvider)
	require.True(t, ok)
	assert.Equal(t, "visicom-key", vp.apiKey)
	assert.Equal(t, rate.Limit(5), vp.limiter.Limit())
	assert.Equal(t, 5, vp.limiter.Burst())
	assert.Contains(t, logs.String(), "Rate limit for Visicom API not set")
	assert.Contains(t, logs.String(), "value=5")

	client, ok := vp.client.(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 4*time.Second, client.Timeout)
}

func TestNewProvider_VisicomExplicitRateLimitIsQuiet(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	provider, err := NewProvider(ProviderConfig{
		Type:      ProviderTypeVisicom,
		APIKey:    "visicom-key",
		RateLimit: 8,
		Logger:    logger,
	})
	require.NoError(t, err)

	vp, ok := provider.(*VisicomProvider)
	require.True(t, ok)
	assert.Equal(t, rate.Limit(8), vp.limiter.Limit())
	assert.Empty(t, logs.String())
}

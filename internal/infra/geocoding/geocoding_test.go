package geocoding

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"handoff/config"
	"handoff/internal/infra/geocoding/google"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParams(geo *config.GeocodingConfig) Params {
	cfg := &config.Config{Geocoding: geo}
	cfg.ApplyDefaults()

	return Params{Config: cfg, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestNew_Disabled(t *testing.T) {
	provider, err := New(newParams(nil))
	require.NoError(t, err)

	_, err = provider.Autocomplete(context.Background(), "taipei")
	assert.ErrorIs(t, err, ErrDisabled)
	_, err = provider.Resolve(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestNew_Google(t *testing.T) {
	provider, err := New(newParams(&config.GeocodingConfig{Provider: "Google", APIKey: "k"}))
	require.NoError(t, err)
	assert.IsType(t, &google.Provider{}, provider)
}

func TestNew_GoogleWithoutKey(t *testing.T) {
	_, err := New(newParams(&config.GeocodingConfig{Provider: ProviderGoogle}))
	assert.Error(t, err)
}

func TestNew_Unknown(t *testing.T) {
	_, err := New(newParams(&config.GeocodingConfig{Provider: "osm"}))
	assert.ErrorContains(t, err, "unknown geocoding provider")
}

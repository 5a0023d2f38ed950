// Package geocoding provides the configured place search provider.
package geocoding

import (
	"context"
	"log/slog"
	"strings"

	"handoff/config"
	"handoff/internal/domain/entity"
	"handoff/internal/domain/service"
	"handoff/internal/infra/geocoding/google"
	"handoff/internal/infra/httpclient"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderGoogle = "google"

	breakerName = "geocoding"
)

// ErrDisabled is returned by every call when no provider is configured.
var ErrDisabled = errors.New("place search is not configured")

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New builds the provider named in the geocoding configuration.
func New(params Params) (service.GeocodingProvider, error) {
	cfg := params.Config.Geocoding
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Warn("Geocoding provider not configured, place search is disabled")

		return disabledProvider{}, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderGoogle:
		if cfg.APIKey == "" {
			return nil, errors.New("geocoding.apiKey is required for the google provider")
		}

		clientCfg := httpclient.DefaultConfig()
		clientCfg.Timeout = cfg.Timeout

		breakerCfg := httpclient.DefaultCircuitBreakerConfig(breakerName)
		if cfg.CircuitBreaker.FailureRatio > 0 {
			breakerCfg.FailureRatio = cfg.CircuitBreaker.FailureRatio
		}
		if cfg.CircuitBreaker.MinRequests > 0 {
			breakerCfg.MinRequests = cfg.CircuitBreaker.MinRequests
		}
		if cfg.CircuitBreaker.OpenTimeout > 0 {
			breakerCfg.Timeout = cfg.CircuitBreaker.OpenTimeout
		}

		client := httpclient.NewCircuitBreakerClient(httpclient.New(clientCfg), breakerCfg, params.Logger)
		params.Logger.Info("Using Google Places provider", slog.String("baseURL", cfg.BaseURL))

		return google.NewProvider(client, google.Options{
			BaseURL:  cfg.BaseURL,
			APIKey:   cfg.APIKey,
			Language: cfg.Language,
		}), nil
	default:
		return nil, errors.Errorf("unknown geocoding provider: %s", cfg.Provider)
	}
}

type disabledProvider struct{}

func (disabledProvider) Autocomplete(context.Context, string) ([]entity.PlaceSuggestion, error) {
	return nil, ErrDisabled
}

func (disabledProvider) Resolve(context.Context, string) (*entity.Place, error) {
	return nil, ErrDisabled
}

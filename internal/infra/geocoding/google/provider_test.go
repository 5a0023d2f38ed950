package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"handoff/internal/domain/entity"
	"handoff/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainClient struct{}

func (plainClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}

	return http.DefaultClient.Do(req)
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewProvider(plainClient{}, Options{BaseURL: server.URL + "/", APIKey: "test-key", Language: "zh-TW"})
}

func TestProvider_Autocomplete(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, autocompletePath, r.URL.Path)
		assert.Equal(t, "taipei 101", r.URL.Query().Get("input"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "zh-TW", r.URL.Query().Get("language"))

		_, _ = w.Write([]byte(`{
			"status": "OK",
			"predictions": [
				{"place_id": "p1", "description": "Taipei 101, Xinyi District"},
				{"place_id": "p2", "description": "Taipei 101 Mall"}
			]
		}`))
	})

	suggestions, err := provider.Autocomplete(context.Background(), "taipei 101")
	require.NoError(t, err)
	assert.Equal(t, []entity.PlaceSuggestion{
		{PlaceID: "p1", Description: "Taipei 101, Xinyi District"},
		{PlaceID: "p2", Description: "Taipei 101 Mall"},
	}, suggestions)
}

func TestProvider_Autocomplete_ZeroResults(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ZERO_RESULTS", "predictions": []}`))
	})

	suggestions, err := provider.Autocomplete(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestProvider_Autocomplete_Denied(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`))
	})

	_, err := provider.Autocomplete(context.Background(), "taipei")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}

func TestProvider_Resolve(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, detailsPath, r.URL.Path)
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
		assert.Equal(t, detailsFields, r.URL.Query().Get("fields"))

		_, _ = w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"formatted_address": "110台灣台北市信義區信義路五段7號",
				"address_components": [
					{"long_name": "7", "short_name": "7", "types": ["street_number"]},
					{"long_name": "Section 5, Xinyi Road", "short_name": "Sec. 5, Xinyi Rd", "types": ["route"]},
					{"long_name": "Taipei City", "short_name": "Taipei City", "types": ["administrative_area_level_1", "political"]},
					{"long_name": "Taiwan", "short_name": "TW", "types": ["country", "political"]},
					{"long_name": "110", "short_name": "110", "types": ["postal_code"]}
				],
				"geometry": {"location": {"lat": 25.033976, "lng": 121.5645389}}
			}
		}`))
	})

	place, err := provider.Resolve(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", place.PlaceID)
	assert.Len(t, place.Components, 5)
	assert.Equal(t, &entity.Coordinates{Lat: 25.033976, Long: 121.5645389}, place.Location)

	draft := place.AddressDraft()
	assert.Equal(t, "7 Section 5, Xinyi Road", draft.StreetAddress)
	assert.Equal(t, "Taipei City", draft.Region)
	assert.Equal(t, "Taiwan", draft.Country)
	assert.Equal(t, "110", draft.PostalCode)
}

func TestProvider_Resolve_NotFound(t *testing.T) {
	for _, status := range []string{statusNotFound, statusInvalid} {
		t.Run(status, func(t *testing.T) {
			provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"status": "` + status + `"}`))
			})

			_, err := provider.Resolve(context.Background(), "nope")
			assert.True(t, errors.Is(err, service.ErrPlaceNotFound))
		})
	}
}

func TestProvider_Resolve_WithoutGeometry(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status": "OK", "result": {"formatted_address": "Somewhere"}}`))
	})

	place, err := provider.Resolve(context.Background(), "p9")
	require.NoError(t, err)
	assert.Equal(t, "p9", place.PlaceID)
	assert.Nil(t, place.Location)
}

func TestProvider_HTTPError(t *testing.T) {
	provider := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("forbidden"))
	})

	_, err := provider.Resolve(context.Background(), "p1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
	assert.False(t, errors.Is(err, service.ErrPlaceNotFound))
}

package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"handoff/internal/domain/entity"
	"handoff/internal/domain/service"
	"handoff/internal/infra/httpclient"
	"handoff/internal/selection"
	"handoff/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(Options{BaseURL: server.URL + "/", Token: "tok", HTTP: httpclient.DefaultConfig()})
	require.NoError(t, err)

	return c
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, data any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"code":    status,
		"message": "Success",
		"data":    data,
	}))
}

func writeError(w http.ResponseWriter, status int, code, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"code":    status,
		"message": "failed",
		"error":   map[string]string{"code": code, "details": details},
	})
}

func TestNew_RejectsRelativeURL(t *testing.T) {
	_, err := New(Options{BaseURL: "localhost:8080"})
	assert.Error(t, err)
}

func TestClient_ListAddresses(t *testing.T) {
	id := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/addresses", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeEnvelope(t, w, http.StatusOK, []entity.Address{{ID: id, Name: "Home"}})
	})

	addresses, err := c.ListAddresses(context.Background())

	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, id, addresses[0].ID)
}

func TestClient_CreateAddress(t *testing.T) {
	id := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var input usecase.CreateAddressInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Office", input.Name)
		require.NotNil(t, input.Latitude)
		assert.Equal(t, 25.03, *input.Latitude)

		writeEnvelope(t, w, http.StatusCreated, entity.Address{ID: id, Name: "Office"})
	})

	address := &entity.Address{
		Name:     "Office",
		Location: &entity.Coordinates{Lat: 25.03, Long: 121.56},
	}
	err := c.CreateAddress(context.Background(), address)

	require.NoError(t, err)
	assert.Equal(t, id, address.ID)
}

func TestClient_CreateAddress_NameExists(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusConflict, "ADDRESS_NAME_EXISTS", "")
	})

	err := c.CreateAddress(context.Background(), &entity.Address{Name: "Home"})

	require.ErrorIs(t, err, selection.ErrNameExists)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestClient_Places(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/places/autocomplete":
			assert.Equal(t, "main st", r.URL.Query().Get("q"))
			writeEnvelope(t, w, http.StatusOK, []entity.PlaceSuggestion{{PlaceID: "p1", Description: "Main St"}})
		case "/v1/places/p1":
			writeEnvelope(t, w, http.StatusOK, map[string]any{
				"place": entity.Place{PlaceID: "p1", FormattedAddress: "1 Main St"},
				"draft": entity.Address{StreetAddress: "1 Main St"},
			})
		default:
			writeError(w, http.StatusNotFound, "PLACE_NOT_FOUND", "")
		}
	})

	suggestions, err := c.Autocomplete(context.Background(), "main st")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	place, err := c.Resolve(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St", place.FormattedAddress)

	_, err = c.Resolve(context.Background(), "p2")
	assert.ErrorIs(t, err, service.ErrPlaceNotFound)
}

func TestClient_GetMeetupPoint(t *testing.T) {
	counterparty := uuid.New()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, counterparty.String(), r.URL.Query().Get("with"))
		writeEnvelope(t, w, http.StatusOK, entity.MeetupPoint{RadiusMeters: 400})
	})

	point, err := c.GetMeetupPoint(context.Background(), selection.Pair{From: uuid.New(), To: counterparty})

	require.NoError(t, err)
	assert.Equal(t, 400.0, point.RadiusMeters)
}

func TestClient_DecideDelivery(t *testing.T) {
	exchangeID := uuid.New()

	tests := []struct {
		name        string
		selection   selection.Selection
		wantMethod  string
		wantAddress bool
	}{
		{
			name:       "delegate sends no address",
			selection:  selection.Selection{Address: entity.NewUndecidedAddress(uuid.New()), Method: entity.DeliveryMethodPickup},
			wantMethod: "pickup",
		},
		{
			name:        "meetup sends the pin",
			selection:   selection.Selection{Address: entity.NewMeetupAddress(uuid.New(), entity.Coordinates{Lat: 1, Long: 2}), Method: entity.DeliveryMethodMeetup},
			wantMethod:  "meetup",
			wantAddress: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPut, r.Method)
				assert.Equal(t, "/v1/exchanges/"+exchangeID.String()+"/delivery", r.URL.Path)

				var input usecase.DecideDeliveryInput
				require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
				assert.Equal(t, tt.wantMethod, input.Method)
				assert.Equal(t, tt.wantAddress, input.Address != nil)

				writeEnvelope(t, w, http.StatusOK, entity.Delivery{ExchangeID: exchangeID, Method: entity.DeliveryMethod(input.Method)})
			})

			delivery, err := c.DecideDelivery(context.Background(), exchangeID, tt.selection)

			require.NoError(t, err)
			assert.Equal(t, exchangeID, delivery.ExchangeID)
		})
	}
}

func TestClient_ServerErrorsAreNotRetried(t *testing.T) {
	hits := 0
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits++
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "")
	})

	_, err := c.ListAddresses(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, 1, hits)
}

func TestClient_Resolve_EscapesPlaceID(t *testing.T) {
	tests := []struct {
		placeID string
		want    string
	}{
		{placeID: "../addresses", want: "/v1/places/..%2Faddresses"},
		{placeID: "a%2Fb", want: "/v1/places/a%252Fb"},
		{placeID: "ChIJ-x_y", want: "/v1/places/ChIJ-x_y"},
	}

	for _, tt := range tests {
		t.Run(tt.placeID, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.want, r.URL.EscapedPath())
				writeEnvelope(t, w, http.StatusOK, map[string]any{
					"place": entity.Place{PlaceID: tt.placeID},
				})
			})

			place, err := c.Resolve(context.Background(), tt.placeID)

			require.NoError(t, err)
			assert.Equal(t, tt.placeID, place.PlaceID)
		})
	}
}

func TestClient_NonJSONError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusNotImplemented)
	})

	_, err := c.ListAddresses(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotImplemented, apiErr.Status)
	assert.Equal(t, "HTTP_ERROR", apiErr.Code)
}

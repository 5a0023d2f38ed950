package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"handoff/config"
	"handoff/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.DeliveryDecidedEvent {
	lat, long := 25.04, 121.53

	return &service.DeliveryDecidedEvent{
		RequestID:  "req-1",
		ExchangeID: "ex-1",
		DecidedBy:  "user-1",
		Method:     "meetup",
		Name:       "Meetup",
		Latitude:   &lat,
		Longitude:  &long,
		DecidedAt:  "2024-05-01T08:00:00Z",
	}
}

func TestLocalHTTPPublisher_PushFormat(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishDeliveryDecided(context.Background(), sampleEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, "ex-1", received.Message.OrderingKey)
	assert.Equal(t, "delivery.decided", received.Message.Attributes["event"])
	assert.Equal(t, "meetup", received.Message.Attributes["method"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var event service.DeliveryDecidedEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, *sampleEvent(), event)
}

func TestLocalHTTPPublisher_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewLocalHTTPPublisher(server.URL, discardLogger()).PublishDeliveryDecided(context.Background(), sampleEvent())
	assert.ErrorContains(t, err, "502")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := sampleEvent()
	event.RequestID = ""

	_, ok := eventAttributes(event)["request_id"]
	assert.False(t, ok)
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
		check   func(t *testing.T, p service.EventPublisher)
	}{
		{
			name: "disabled",
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &noopPublisher{}, p)
				assert.NoError(t, p.PublishDeliveryDecided(context.Background(), sampleEvent()))
			},
		},
		{
			name: "local",
			cfg:  &config.PubSubConfig{Provider: ProviderLocal, LocalEndpoint: "http://localhost:9999/push"},
			check: func(t *testing.T, p service.EventPublisher) {
				assert.IsType(t, &localHTTPPublisher{}, p)
			},
		},
		{
			name:    "local without endpoint",
			cfg:     &config.PubSubConfig{Provider: ProviderLocal},
			wantErr: "local endpoint is required",
		},
		{
			name:    "google without topic",
			cfg:     &config.PubSubConfig{Provider: ProviderGoogle, ProjectID: "p"},
			wantErr: "topic ID are required",
		},
		{
			name:    "unknown",
			cfg:     &config.PubSubConfig{Provider: "kafka"},
			wantErr: "unknown pubsub provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			tt.check(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

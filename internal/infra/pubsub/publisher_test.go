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
	"time"

	"cellcontrol/config"
	"cellcontrol/internal/domain/constants"
	"cellcontrol/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishSaleEvent(t *testing.T) {
	var received PushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	event := &service.SaleEvent{
		RequestID:  "req-1",
		Type:       constants.EventSaleCreated,
		TenantID:   "tenant-1",
		SaleID:     "sale-1",
		ProductIDs: []string{"p1", "p2"},
		TotalValue: "350.5",
		OccurredAt: time.Now().UTC(),
	}
	require.NoError(t, publisher.PublishSaleEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "sale.created:sale-1", received.Message.MessageID)
	assert.Equal(t, "tenant-1", received.Message.Attributes["tenant_id"])
	assert.Equal(t, constants.EventSaleCreated, received.Message.Attributes["type"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)
	var decoded service.SaleEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, []string{"p1", "p2"}, decoded.ProductIDs)
	assert.Equal(t, "350.5", decoded.TotalValue)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, testLogger())
	err := publisher.PublishSaleEvent(context.Background(), &service.SaleEvent{Type: constants.EventSaleDeleted, SaleID: "s"})
	assert.ErrorContains(t, err, "502")
}

func TestNewEventPublisher_ProviderSelection(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantType any
		wantErr  bool
	}{
		{name: "unset", pubsub: nil, wantType: &noopPublisher{}},
		{name: "noop", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderNoop}, wantType: &noopPublisher{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:9999"}, wantType: &localHTTPPublisher{}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: true},
		{name: "unknown", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: testLogger(),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
		})
	}
}

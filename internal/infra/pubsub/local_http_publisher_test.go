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

	"vitashop/internal/domain/constants"
	"vitashop/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartEvent() *service.CartEvent {
	return &service.CartEvent{
		RequestID:      "req-1",
		EventID:        "evt-1",
		Type:           constants.CartEventItemAdded,
		UserID:         "user-1",
		OrderID:        "order-1",
		OrderNumber:    "202601011234",
		ProductStockID: "stock-1",
		Quantity:       1,
		SubTotalCost:   "12.5",
		OccurredAt:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishCartEvent(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		if err == nil {
			_ = json.Unmarshal(body, &received)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	event := newTestCartEvent()

	require.NoError(t, publisher.PublishCartEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, constants.CartEventItemAdded, received.Message.Attributes["event_type"])
	assert.Equal(t, "order-1", received.Message.Attributes["order_id"])
	assert.Equal(t, "user-1", received.Message.OrderingKey)
	assert.Equal(t, localPushSubscription, received.Subscription)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.CartEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))

	err := publisher.PublishCartEvent(context.Background(), newTestCartEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestNewPushMessage(t *testing.T) {
	event := newTestCartEvent()
	event.RequestID = ""
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.FixedZone("UTC+8", 8*60*60))

	msg := newPushMessage(event, []byte(`{}`), now)

	assert.Equal(t, "e30=", msg.Message.Data)
	assert.Equal(t, "2026-03-03T21:06:07Z", msg.Message.PublishTime)
	assert.Equal(t, "evt-1", msg.Message.MessageID)
	assert.NotContains(t, msg.Message.Attributes, "request_id")
}

package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"vitashop/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	localPushTimeout      = 5 * time.Second
	localPushSubscription = "projects/local/subscriptions/vitashop-cart-events"
)

// localHTTPPublisher delivers cart events straight to an HTTP endpoint in the
// envelope Pub/Sub push subscriptions use, so consumers run unchanged in development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PubSubPushMessage is the JSON body of a Pub/Sub push request.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		OrderingKey string            `json:"orderingKey,omitempty"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that POSTs every event to endpoint.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

func newPushMessage(event *service.CartEvent, data []byte, now time.Time) PubSubPushMessage {
	var msg PubSubPushMessage
	msg.Subscription = localPushSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = event.EventID
	msg.Message.OrderingKey = event.UserID
	msg.Message.PublishTime = now.UTC().Format(time.RFC3339Nano)

	return msg
}

// PublishCartEvent wraps the event in a push envelope and POSTs it; any non-2xx reply is an error.
func (p *localHTTPPublisher) PublishCartEvent(ctx context.Context, event *service.CartEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := json.Marshal(newPushMessage(event, data, time.Now()))
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(echo.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "failed to push %s", event.Type)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Cart event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", event.Type),
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}

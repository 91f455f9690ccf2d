package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"vitashop/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher publishes cart events to a Google Cloud Pub/Sub topic.
// Events are ordered per user, so a consumer never sees a removal before the add it undoes.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to the topic and fails fast when it does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicPath)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized", slog.String("topic", topicPath))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishCartEvent publishes the event keyed by user and waits for the server ack.
func (p *googlePubSubPublisher) PublishCartEvent(ctx context.Context, event *service.CartEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.UserID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until it is resumed.
		p.publisher.ResumePublish(event.UserID)

		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}

	p.logger.DebugContext(ctx, "Cart event published",
		slog.String("event_type", event.Type),
		slog.String("event_id", event.EventID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending messages and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}

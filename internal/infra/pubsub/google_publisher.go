package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements ChangeEventPublisher using Google Cloud Pub/Sub.
// Messages are ordered by notification id so each row's events arrive in commit order.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher creates a new Google Pub/Sub publisher
func NewGooglePubSubPublisher(ctx context.Context, client *pubsub.Client, projectID, topicID string, logger *slog.Logger) (service.ChangeEventPublisher, error) {
	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true

	logger.Info("Google Pub/Sub publisher initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// PublishChangeEvent publishes an event to Google Pub/Sub
func (p *googlePubSubPublisher) PublishChangeEvent(ctx context.Context, event *entity.ChangeEvent) error {
	data, attributes, err := encodeEvent(event)
	if err != nil {
		return err
	}
	if requestID := requestIDFromContext(ctx); requestID != "" {
		attributes[AttrRequestID] = requestID
	}

	orderingKey := event.Row.ID.String()
	msg := &pubsub.Message{
		Data:        data,
		Attributes:  attributes,
		OrderingKey: orderingKey,
	}

	result := p.publisher.Publish(ctx, msg)

	serverID, err := result.Get(ctx)
	if err != nil {
		// an ordering key stays paused after a failure until resumed
		p.publisher.ResumePublish(orderingKey)

		return errors.WithStack(err)
	}

	p.logger.Debug("[GooglePubSub] Change event published",
		slog.String("operation", string(event.Operation)),
		slog.String("notification_id", orderingKey),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close stops the publisher. The client is closed by the hub provider.
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}

	return nil
}

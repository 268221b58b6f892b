package pubsub

import (
	"context"
	"log/slog"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"
)

// memoryPublisher hands events straight to the hub of this process.
type memoryPublisher struct {
	hub    *Hub
	logger *slog.Logger
}

// NewMemoryPublisher creates a publisher for single-process deployments and tests
func NewMemoryPublisher(hub *Hub, logger *slog.Logger) service.ChangeEventPublisher {
	return &memoryPublisher{hub: hub, logger: logger}
}

func (p *memoryPublisher) PublishChangeEvent(_ context.Context, event *entity.ChangeEvent) error {
	p.hub.Dispatch(event)

	return nil
}

func (p *memoryPublisher) Close() error {
	return nil
}

// noopPublisher is a no-op implementation when Pub/Sub is disabled
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishChangeEvent(_ context.Context, event *entity.ChangeEvent) error {
	p.logger.Debug("[NoopPubSub] Event publishing disabled, skipping",
		slog.String("notification_id", event.Row.ID.String()),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

package service

import (
	"context"

	"backoffice/internal/domain/entity"
)

// ChangeEventPublisher defines the interface for publishing notification change events to the change feed
type ChangeEventPublisher interface {
	// PublishChangeEvent publishes one committed row change
	PublishChangeEvent(ctx context.Context, event *entity.ChangeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// Subscription is returned by the Observe methods. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// NotificationSyncUsecase keeps per-owner "recent" and "unread" views consistent with the store
// and notifies observers of every change.
type NotificationSyncUsecase interface {
	// Init starts the service. Observe calls fail before Init and after Dispose.
	Init(ctx context.Context) error

	// Dispose releases every view and feed subscription
	Dispose(ctx context.Context) error

	// ObserveRecent calls onChange with the owner's newest notifications, first with the current
	// state and again after every change
	ObserveRecent(ctx context.Context, ownerID uuid.UUID, onChange func([]*entity.Notification)) (Subscription, error)

	// ObserveUnreadCount calls onChange with the owner's unread count
	ObserveUnreadCount(ctx context.Context, ownerID uuid.UUID, onChange func(int)) (Subscription, error)

	// ObserveStale calls onChange when the change feed starts or stops reporting stale data
	ObserveStale(ctx context.Context, ownerID uuid.UUID, onChange func(bool)) (Subscription, error)

	// MarkRead optimistically sets the read flag and reverts it when the store call fails
	MarkRead(ctx context.Context, ownerID, id uuid.UUID, read bool) error

	// MarkAllRead marks every unread notification of the view read in one batch
	MarkAllRead(ctx context.Context, ownerID uuid.UUID) (*entity.BatchResult, error)

	// Delete optimistically removes one notification
	Delete(ctx context.Context, ownerID, id uuid.UUID) (*entity.BatchResult, error)

	// BulkDelete optimistically removes several notifications in one batch
	BulkDelete(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (*entity.BatchResult, error)

	// Refetch replaces the owner's view with store truth
	Refetch(ctx context.Context, ownerID uuid.UUID) error

	// SetPushEnabled sets the unsaved local push override for the owner
	SetPushEnabled(ownerID uuid.UUID, enabled bool)
}

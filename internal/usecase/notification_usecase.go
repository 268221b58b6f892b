package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase is the notification store. Every committed mutation is
// published to the change feed.
type NotificationUsecase interface {
	// ListNotifications returns one newest-first page of the owner's notifications
	ListNotifications(ctx context.Context, ownerID uuid.UUID, filter entity.NotificationFilter, page entity.Page) (*entity.NotificationPage, error)

	// CreateNotification creates an unread notification for the owner
	CreateNotification(ctx context.Context, ownerID uuid.UUID, fields *entity.NotificationFields) (*entity.Notification, error)

	// UpdateNotificationRead sets the read flag and returns the stored row.
	// A missing row yields domainerrors.ErrNotificationNotFound.
	UpdateNotificationRead(ctx context.Context, ownerID, id uuid.UUID, read bool) (*entity.Notification, error)

	// MarkNotificationsRead marks the given notifications read in one batch and returns the changed rows
	MarkNotificationsRead(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*entity.Notification, error)

	// DeleteNotification deletes one notification and returns how many rows were deleted
	DeleteNotification(ctx context.Context, ownerID, id uuid.UUID) (int, error)

	// BulkDeleteNotifications deletes the given notifications in one batch and returns how many rows were deleted
	BulkDeleteNotifications(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (int, error)
}

// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found for its owner.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification-related database operations.
// Every query is scoped by owner.
type NotificationRepository interface {
	// ListNotifications returns one newest-first page of the owner's notifications and the total matching rows.
	ListNotifications(ctx context.Context, ownerID uuid.UUID, filter entity.NotificationFilter, page entity.Page) (*entity.NotificationPage, error)

	// CreateNotification persists a new notification and fills in its generated fields.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, ownerID, id uuid.UUID) (*entity.Notification, error)

	// UpdateNotificationRead sets the read flag, bumps the row version and returns the stored row.
	UpdateNotificationRead(ctx context.Context, ownerID, id uuid.UUID, read bool) (*entity.Notification, error)

	// MarkNotificationsRead marks the given unread notifications read in one statement
	// and returns the rows it actually changed.
	MarkNotificationsRead(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*entity.Notification, error)

	// DeleteNotifications deletes the given notifications in one statement and returns the deleted rows.
	DeleteNotifications(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]*entity.Notification, error)
}

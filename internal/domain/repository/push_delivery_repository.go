package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// PushDeliveryRepository records push attempts keyed by (notification, device).
type PushDeliveryRepository interface {
	// ClaimDelivery inserts a pending delivery. It returns false without error when the
	// (notification, device) key was already claimed.
	ClaimDelivery(ctx context.Context, delivery *entity.PushDelivery) (bool, error)

	// UpdateDeliveryResult stores the outcome of a claimed delivery.
	UpdateDeliveryResult(ctx context.Context, notificationID uuid.UUID, deviceID, status, messageID, errMessage string) error

	// DeleteDeliveriesByNotificationIDs removes delivery records of deleted notifications.
	DeleteDeliveriesByNotificationIDs(ctx context.Context, notificationIDs []uuid.UUID) (int64, error)
}

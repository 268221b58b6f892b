package postgres

import (
	"context"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// pushDeliveryRepository implements the repository.PushDeliveryRepository interface.
type pushDeliveryRepository struct {
	db *gorm.DB
}

// NewPushDeliveryRepository is the constructor for pushDeliveryRepository.
func NewPushDeliveryRepository(db *gorm.DB) repository.PushDeliveryRepository {
	return &pushDeliveryRepository{
		db: db,
	}
}

// ClaimDelivery inserts a pending record unless the (notification, device) key already exists.
func (repo *pushDeliveryRepository) ClaimDelivery(ctx context.Context, delivery *entity.PushDelivery) (bool, error) {
	deliveryM := fromPushDeliveryDomain(delivery)
	if deliveryM.Status == "" {
		deliveryM.Status = entity.DeliveryStatusPending
	}

	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "notification_id"}, {Name: "device_id"}},
			DoNothing: true,
		}).
		Create(deliveryM)

	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to claim push delivery")
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	delivery.ID = deliveryM.ID
	delivery.Status = deliveryM.Status
	delivery.CreatedAt = deliveryM.CreatedAt
	delivery.UpdatedAt = deliveryM.UpdatedAt

	return true, nil
}

// UpdateDeliveryResult stores the outcome of a claimed delivery.
func (repo *pushDeliveryRepository) UpdateDeliveryResult(ctx context.Context, notificationID uuid.UUID, deviceID, status, messageID, errMessage string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PushDeliveryModel{}).
		Where("notification_id = ? AND device_id = ?", notificationID, deviceID).
		Updates(map[string]any{
			"status":         status,
			"fcm_message_id": messageID,
			"error_message":  errMessage,
			"updated_at":     time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update push delivery result")
	}

	if result.RowsAffected == 0 {
		return errors.Errorf("push delivery %s/%s not found", notificationID, deviceID)
	}

	return nil
}

// DeleteDeliveriesByNotificationIDs removes the delivery records of the given notifications.
func (repo *pushDeliveryRepository) DeleteDeliveriesByNotificationIDs(ctx context.Context, notificationIDs []uuid.UUID) (int64, error) {
	if len(notificationIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("notification_id IN ?", notificationIDs).
		Delete(&model.PushDeliveryModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete push deliveries")
	}

	return result.RowsAffected, nil
}

// fromPushDeliveryDomain converts a domain PushDelivery entity to a GORM PushDeliveryModel.
func fromPushDeliveryDomain(data *entity.PushDelivery) *model.PushDeliveryModel {
	if data == nil {
		return nil
	}

	return &model.PushDeliveryModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		OwnerID:        data.OwnerID,
		DeviceID:       data.DeviceID,
		Status:         data.Status,
		FCMMessageID:   data.FCMMessageID,
		ErrorMessage:   data.ErrorMessage,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

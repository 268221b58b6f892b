package repository

import (
	"context"
	"errors"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationSettingNotFound is returned when the owner never saved a setting.
var ErrNotificationSettingNotFound = errors.New("notification setting not found")

// NotificationSettingRepository persists per-owner notification preferences.
type NotificationSettingRepository interface {
	FindSetting(ctx context.Context, ownerID uuid.UUID) (*entity.NotificationSetting, error)
	UpsertSetting(ctx context.Context, setting *entity.NotificationSetting) error
}

package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

type notificationSettingService struct {
	settingRepo repository.NotificationSettingRepository
	resolver    *SettingsResolver
	logger      *slog.Logger
}

// NewNotificationSettingService creates a new notification setting service instance
func NewNotificationSettingService(
	settingRepo repository.NotificationSettingRepository,
	resolver *SettingsResolver,
	logger *slog.Logger,
) usecase.NotificationSettingUsecase {
	return &notificationSettingService{
		settingRepo: settingRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

// GetSetting returns the owner's effective setting
func (srv *notificationSettingService) GetSetting(ctx context.Context, ownerID uuid.UUID) (*entity.NotificationSetting, error) {
	enabled, source := srv.resolver.resolve(ctx, ownerID)

	return &entity.NotificationSetting{
		OwnerID:     ownerID,
		PushEnabled: enabled,
		Source:      source,
		UpdatedAt:   time.Now().UTC(),
	}, nil
}

// SaveSetting persists the server setting and clears the local override
func (srv *notificationSettingService) SaveSetting(ctx context.Context, ownerID uuid.UUID, pushEnabled bool) (*entity.NotificationSetting, error) {
	setting := &entity.NotificationSetting{
		OwnerID:     ownerID,
		PushEnabled: pushEnabled,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := srv.settingRepo.UpsertSetting(ctx, setting); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to save notification setting",
			slog.Any("owner_id", ownerID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to save notification setting")
	}

	srv.resolver.ClearOverride(ownerID)
	srv.resolver.Invalidate(ownerID)
	setting.Source = settingSourceSaved

	return setting, nil
}

// SetOverride stores an unsaved local override
func (srv *notificationSettingService) SetOverride(ctx context.Context, ownerID uuid.UUID, pushEnabled bool) (*entity.NotificationSetting, error) {
	srv.resolver.SetOverride(ownerID, pushEnabled)

	return srv.GetSetting(ctx, ownerID)
}

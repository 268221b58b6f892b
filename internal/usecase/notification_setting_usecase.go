package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// PushOverrideStore holds unsaved local push settings and the server setting cache
type PushOverrideStore interface {
	SetOverride(ownerID uuid.UUID, enabled bool)
	ClearOverride(ownerID uuid.UUID)
	Invalidate(ownerID uuid.UUID)
}

// NotificationSettingUsecase defines the interface for notification preference use cases
type NotificationSettingUsecase interface {
	// GetSetting returns the owner's effective setting
	GetSetting(ctx context.Context, ownerID uuid.UUID) (*entity.NotificationSetting, error)

	// SaveSetting persists the server setting and clears the local override
	SaveSetting(ctx context.Context, ownerID uuid.UUID, pushEnabled bool) (*entity.NotificationSetting, error)

	// SetOverride stores an unsaved local override
	SetOverride(ctx context.Context, ownerID uuid.UUID, pushEnabled bool) (*entity.NotificationSetting, error)
}

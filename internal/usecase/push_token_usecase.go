package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// PushTokenRegistration represents what a device reports when it starts or is granted push permission
type PushTokenRegistration struct {
	DeviceID          string `json:"device_id"`
	Token             string `json:"token"`
	Platform          string `json:"platform"`
	AppVersion        string `json:"app_version"`
	PermissionGranted bool   `json:"permission_granted"`
}

// PushTokenUsecase defines the interface for push token registry use cases
type PushTokenUsecase interface {
	// RegisterPushToken upserts the (owner, device) record. When permission is denied nothing is
	// written, any existing record is deactivated and ErrPushPermissionDenied is returned.
	RegisterPushToken(ctx context.Context, ownerID uuid.UUID, registration *PushTokenRegistration) (*entity.PushToken, error)

	// GetPushTokens retrieves all records of the owner
	GetPushTokens(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error)

	// DeactivatePushToken stops pushes to one device
	DeactivatePushToken(ctx context.Context, ownerID uuid.UUID, deviceID string) error
}

package repository

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for push token persistence.
var (
	// ErrPushTokenNotFound is returned when no record exists for an (owner, device) pair.
	ErrPushTokenNotFound = errors.New("push token not found")
)

// PushTokenRepository defines the interface for the push token registry.
type PushTokenRepository interface {
	// UpsertPushToken inserts the record or overwrites token, platform and app version
	// of the existing (owner, device) record, reactivating it.
	UpsertPushToken(ctx context.Context, token *entity.PushToken) error

	// FindPushToken retrieves the record of one device of an owner.
	FindPushToken(ctx context.Context, ownerID uuid.UUID, deviceID string) (*entity.PushToken, error)

	// FindPushTokensByOwner retrieves all records of an owner (including inactive).
	FindPushTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error)

	// FindActivePushTokensByOwner retrieves the records that may receive pushes.
	FindActivePushTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error)

	// DeactivatePushToken marks one device of an owner inactive.
	DeactivatePushToken(ctx context.Context, ownerID uuid.UUID, deviceID string) error

	// DeactivateTokenElsewhere deactivates active records carrying token that belong to a
	// different (owner, device) pair and returns how many were changed.
	DeactivateTokenElsewhere(ctx context.Context, ownerID uuid.UUID, deviceID, token string) (int64, error)

	// DeactivateByToken deactivates every record carrying token.
	DeactivateByToken(ctx context.Context, token string) error
}

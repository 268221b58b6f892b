package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

var supportedPlatforms = []string{entity.PlatformIOS, entity.PlatformAndroid, entity.PlatformWeb}

type pushTokenService struct {
	txManager repository.TransactionManager
	tokenRepo repository.PushTokenRepository
	logger    *slog.Logger
}

// NewPushTokenService creates a new push token service instance
func NewPushTokenService(
	txManager repository.TransactionManager,
	tokenRepo repository.PushTokenRepository,
	logger *slog.Logger,
) usecase.PushTokenUsecase {
	return &pushTokenService{
		txManager: txManager,
		tokenRepo: tokenRepo,
		logger:    logger,
	}
}

func (srv *pushTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPushToken upserts the (owner, device) record
func (srv *pushTokenService) RegisterPushToken(
	ctx context.Context,
	ownerID uuid.UUID,
	registration *usecase.PushTokenRegistration,
) (*entity.PushToken, error) {
	if registration == nil || strings.TrimSpace(registration.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device_id is required")
	}

	if !registration.PermissionGranted {
		err := srv.tokenRepo.DeactivatePushToken(ctx, ownerID, registration.DeviceID)
		if err != nil && !errors.Is(err, repository.ErrPushTokenNotFound) {
			return nil, errors.Wrap(err, "failed to deactivate push token")
		}
		srv.log(ctx).Info("Push permission denied, device will not receive pushes",
			slog.Any("owner_id", ownerID),
			slog.String("device_id", registration.DeviceID),
		)

		return nil, domainerrors.ErrPushPermissionDenied
	}

	if strings.TrimSpace(registration.Token) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("token is required")
	}
	platform := strings.ToLower(registration.Platform)
	if !slices.Contains(supportedPlatforms, platform) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported platform")
	}

	now := time.Now().UTC()
	token := &entity.PushToken{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		DeviceID:   registration.DeviceID,
		Token:      registration.Token,
		Platform:   platform,
		AppVersion: registration.AppVersion,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var stored *entity.PushToken
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		tokenRepo := txRepoFactory.NewPushTokenRepository()

		if err := tokenRepo.UpsertPushToken(ctx, token); err != nil {
			return errors.Wrap(err, "failed to upsert push token")
		}

		handedOver, err := tokenRepo.DeactivateTokenElsewhere(ctx, ownerID, token.DeviceID, token.Token)
		if err != nil {
			return errors.Wrap(err, "failed to deactivate previous token holders")
		}
		if handedOver > 0 {
			srv.log(ctx).Info("Push token moved to a new owner or device",
				slog.Any("owner_id", ownerID),
				slog.String("device_id", token.DeviceID),
				slog.Int64("deactivated", handedOver),
			)
		}

		stored, err = tokenRepo.FindPushToken(ctx, ownerID, token.DeviceID)
		if err != nil {
			return errors.Wrap(err, "failed to reload push token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register push token", slog.Any("error", err), slog.Any("owner_id", ownerID))

		return nil, err
	}

	return stored, nil
}

// GetPushTokens retrieves all records of the owner
func (srv *pushTokenService) GetPushTokens(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error) {
	tokens, err := srv.tokenRepo.FindPushTokensByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find push tokens")
	}

	return tokens, nil
}

// DeactivatePushToken stops pushes to one device
func (srv *pushTokenService) DeactivatePushToken(ctx context.Context, ownerID uuid.UUID, deviceID string) error {
	if err := srv.tokenRepo.DeactivatePushToken(ctx, ownerID, deviceID); err != nil {
		if errors.Is(err, repository.ErrPushTokenNotFound) {
			return domainerrors.ErrPushTokenNotFound
		}

		return errors.Wrap(err, "failed to deactivate push token")
	}

	return nil
}

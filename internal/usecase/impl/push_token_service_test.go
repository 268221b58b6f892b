package impl

import (
	"context"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushTokenServiceFixtures holds all test dependencies for push token service tests.
type pushTokenServiceFixtures struct {
	service   usecase.PushTokenUsecase
	txManager *mockRepo.MockTransactionManager
	tokenRepo *mockRepo.MockPushTokenRepository
}

func createTestPushTokenService(t *testing.T) pushTokenServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokenRepo := mockRepo.NewMockPushTokenRepository(t)

	return pushTokenServiceFixtures{
		service:   NewPushTokenService(txManager, tokenRepo, newDiscardLogger()),
		txManager: txManager,
		tokenRepo: tokenRepo,
	}
}

func TestPushTokenService_RegisterPushToken_Success(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	registration := &usecase.PushTokenRegistration{
		DeviceID:          "pixel-8",
		Token:             "fcm-token-1",
		Platform:          "Android",
		AppVersion:        "3.2.0",
		PermissionGranted: true,
	}
	stored := activeToken(ownerID, registration.DeviceID, registration.Token)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTokenRepo := mockRepo.NewMockPushTokenRepository(t)

			mockFactory.EXPECT().NewPushTokenRepository().Return(mockTokenRepo)
			mockTokenRepo.EXPECT().
				UpsertPushToken(ctx, mock.AnythingOfType("*entity.PushToken")).
				Run(func(_ context.Context, token *entity.PushToken) {
					assert.Equal(t, ownerID, token.OwnerID)
					assert.Equal(t, entity.PlatformAndroid, token.Platform)
					assert.True(t, token.IsActive)
				}).
				Return(nil)
			mockTokenRepo.EXPECT().
				DeactivateTokenElsewhere(ctx, ownerID, registration.DeviceID, registration.Token).
				Return(int64(1), nil)
			mockTokenRepo.EXPECT().
				FindPushToken(ctx, ownerID, registration.DeviceID).
				Return(stored, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	token, err := fx.service.RegisterPushToken(ctx, ownerID, registration)
	require.NoError(t, err)
	assert.Equal(t, stored, token)
}

func TestPushTokenService_RegisterPushToken_PermissionDenied(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.tokenRepo.EXPECT().
		DeactivatePushToken(ctx, ownerID, "pixel-8").
		Return(repository.ErrPushTokenNotFound)

	token, err := fx.service.RegisterPushToken(ctx, ownerID, &usecase.PushTokenRegistration{
		DeviceID:          "pixel-8",
		Token:             "fcm-token-1",
		Platform:          entity.PlatformAndroid,
		PermissionGranted: false,
	})
	assert.ErrorIs(t, err, domainerrors.ErrPushPermissionDenied)
	assert.Nil(t, token)
}

func TestPushTokenService_RegisterPushToken_Validation(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()

	tests := []struct {
		name         string
		registration *usecase.PushTokenRegistration
	}{
		{name: "nil registration", registration: nil},
		{name: "missing device", registration: &usecase.PushTokenRegistration{Token: "t", Platform: "ios", PermissionGranted: true}},
		{name: "missing token", registration: &usecase.PushTokenRegistration{DeviceID: "d", Platform: "ios", PermissionGranted: true}},
		{name: "unknown platform", registration: &usecase.PushTokenRegistration{DeviceID: "d", Token: "t", Platform: "symbian", PermissionGranted: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.RegisterPushToken(ctx, uuid.New(), tt.registration)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestPushTokenService_RegisterPushToken_TransactionError(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()
	txErr := errors.New("duplicate key value violates unique constraint")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(txErr)

	_, err := fx.service.RegisterPushToken(ctx, uuid.New(), &usecase.PushTokenRegistration{
		DeviceID:          "web-chrome",
		Token:             "web-push-token",
		Platform:          entity.PlatformWeb,
		PermissionGranted: true,
	})
	assert.ErrorIs(t, err, txErr)
}

func TestPushTokenService_GetPushTokens(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	tokens := []*entity.PushToken{activeToken(ownerID, "a", "t1"), activeToken(ownerID, "b", "t2")}

	fx.tokenRepo.EXPECT().FindPushTokensByOwner(ctx, ownerID).Return(tokens, nil)

	result, err := fx.service.GetPushTokens(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, tokens, result)
}

func TestPushTokenService_DeactivatePushToken(t *testing.T) {
	fx := createTestPushTokenService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.tokenRepo.EXPECT().DeactivatePushToken(ctx, ownerID, "pixel-8").Return(nil)
	fx.tokenRepo.EXPECT().DeactivatePushToken(ctx, ownerID, "unknown").Return(repository.ErrPushTokenNotFound)

	require.NoError(t, fx.service.DeactivatePushToken(ctx, ownerID, "pixel-8"))
	assert.ErrorIs(t, fx.service.DeactivatePushToken(ctx, ownerID, "unknown"), domainerrors.ErrPushTokenNotFound)
}

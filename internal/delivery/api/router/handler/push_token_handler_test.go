package handler

import (
	"net/http"
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	mockUsecase "backoffice/internal/mocks/usecase"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPushTokenHandler(t *testing.T) (*testServer, *mockUsecase.MockPushTokenUsecase, uuid.UUID) {
	ownerID := uuid.New()
	server := newTestServer(t, ownerID)
	pushTokenUC := mockUsecase.NewMockPushTokenUsecase(t)

	h := NewPushTokenHandler(PushTokenHandlerParams{
		PushTokenUC: pushTokenUC,
		Logger:      newDiscardLogger(),
	})

	group := server.echo.Group("/api/v1/push-tokens", server.auth.Authenticate)
	group.POST("", h.RegisterPushToken)
	group.GET("", h.GetPushTokens)
	group.DELETE("/:deviceId", h.DeactivatePushToken)

	return server, pushTokenUC, ownerID
}

func TestPushTokenHandler_RegisterPushToken(t *testing.T) {
	server, pushTokenUC, ownerID := createTestPushTokenHandler(t)
	registered := &entity.PushToken{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		DeviceID: "pixel-8",
		Token:    "fcm-token",
		Platform: entity.PlatformAndroid,
		IsActive: true,
	}

	pushTokenUC.EXPECT().
		RegisterPushToken(mock.Anything, ownerID, &usecase.PushTokenRegistration{
			DeviceID:          "pixel-8",
			Token:             "fcm-token",
			Platform:          entity.PlatformAndroid,
			AppVersion:        "3.2.1",
			PermissionGranted: true,
		}).
		Return(registered, nil)

	rec := server.do(http.MethodPost, "/api/v1/push-tokens",
		`{"device_id":"pixel-8","token":"fcm-token","platform":"android","app_version":"3.2.1","permission_granted":true}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var token map[string]any
	decodeData(t, rec, &token)
	assert.Equal(t, "pixel-8", token["device_id"])
	assert.NotContains(t, token, "token")
}

func TestPushTokenHandler_RegisterPushToken_PermissionDenied(t *testing.T) {
	server, pushTokenUC, ownerID := createTestPushTokenHandler(t)

	pushTokenUC.EXPECT().
		RegisterPushToken(mock.Anything, ownerID, mock.MatchedBy(func(r *usecase.PushTokenRegistration) bool {
			return !r.PermissionGranted && r.Token == ""
		})).
		Return(nil, domainerrors.ErrPushPermissionDenied)

	rec := server.do(http.MethodPost, "/api/v1/push-tokens",
		`{"device_id":"iphone","platform":"ios","permission_granted":false}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "PUSH_PERMISSION_DENIED", decodeError(t, rec).Code)
}

func TestPushTokenHandler_RegisterPushToken_Validation(t *testing.T) {
	server, _, _ := createTestPushTokenHandler(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{name: "permission missing", body: `{"device_id":"d","platform":"ios"}`, code: "VALIDATION_ERROR"},
		{name: "device missing", body: `{"platform":"ios","permission_granted":true}`, code: "VALIDATION_ERROR"},
		{name: "malformed", body: `{"device_id":`, code: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := server.do(http.MethodPost, "/api/v1/push-tokens", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Code)
		})
	}
}

func TestPushTokenHandler_GetPushTokens(t *testing.T) {
	server, pushTokenUC, ownerID := createTestPushTokenHandler(t)

	pushTokenUC.EXPECT().
		GetPushTokens(mock.Anything, ownerID).
		Return([]*entity.PushToken{
			{ID: uuid.New(), OwnerID: ownerID, DeviceID: "a", Platform: entity.PlatformIOS, IsActive: true},
			{ID: uuid.New(), OwnerID: ownerID, DeviceID: "b", Platform: entity.PlatformWeb},
		}, nil)

	rec := server.do(http.MethodGet, "/api/v1/push-tokens", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var tokens []entity.PushToken
	decodeData(t, rec, &tokens)
	require.Len(t, tokens, 2)
	assert.True(t, tokens[0].IsActive)
	assert.False(t, tokens[1].IsActive)
}

func TestPushTokenHandler_DeactivatePushToken(t *testing.T) {
	server, pushTokenUC, ownerID := createTestPushTokenHandler(t)

	pushTokenUC.EXPECT().DeactivatePushToken(mock.Anything, ownerID, "pixel-8").Return(nil)
	pushTokenUC.EXPECT().DeactivatePushToken(mock.Anything, ownerID, "gone").Return(domainerrors.ErrPushTokenNotFound)

	rec := server.do(http.MethodDelete, "/api/v1/push-tokens/pixel-8", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = server.do(http.MethodDelete, "/api/v1/push-tokens/gone", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "PUSH_TOKEN_NOT_FOUND", decodeError(t, rec).Code)
}

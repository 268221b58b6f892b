package handler

import (
	"net/http"
	"testing"

	"backoffice/internal/domain/entity"
	mockUsecase "backoffice/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSettingHandler(t *testing.T) (*testServer, *mockUsecase.MockNotificationSettingUsecase, uuid.UUID) {
	ownerID := uuid.New()
	server := newTestServer(t, ownerID)
	settingUC := mockUsecase.NewMockNotificationSettingUsecase(t)

	h := NewSettingHandler(settingUC)
	group := server.echo.Group("/api/v1/notification-settings", server.auth.Authenticate)
	group.GET("", h.GetSetting)
	group.PUT("", h.SaveSetting)
	group.PUT("/override", h.SetOverride)

	return server, settingUC, ownerID
}

func TestSettingHandler_GetSetting(t *testing.T) {
	server, settingUC, ownerID := createTestSettingHandler(t)

	settingUC.EXPECT().
		GetSetting(mock.Anything, ownerID).
		Return(&entity.NotificationSetting{OwnerID: ownerID, PushEnabled: true, Source: "default"}, nil)

	rec := server.do(http.MethodGet, "/api/v1/notification-settings", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var setting entity.NotificationSetting
	decodeData(t, rec, &setting)
	assert.True(t, setting.PushEnabled)
	assert.Equal(t, "default", setting.Source)
}

func TestSettingHandler_SaveSetting(t *testing.T) {
	server, settingUC, ownerID := createTestSettingHandler(t)

	settingUC.EXPECT().
		SaveSetting(mock.Anything, ownerID, false).
		Return(&entity.NotificationSetting{OwnerID: ownerID, PushEnabled: false, Source: "saved"}, nil)

	rec := server.do(http.MethodPut, "/api/v1/notification-settings", `{"push_enabled":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var setting entity.NotificationSetting
	decodeData(t, rec, &setting)
	assert.False(t, setting.PushEnabled)
	assert.Equal(t, "saved", setting.Source)
}

func TestSettingHandler_SaveSetting_RequiresValue(t *testing.T) {
	server, _, _ := createTestSettingHandler(t)

	rec := server.do(http.MethodPut, "/api/v1/notification-settings", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeError(t, rec).Code)
}

func TestSettingHandler_SetOverride(t *testing.T) {
	server, settingUC, ownerID := createTestSettingHandler(t)

	settingUC.EXPECT().
		SetOverride(mock.Anything, ownerID, true).
		Return(&entity.NotificationSetting{OwnerID: ownerID, PushEnabled: true, Source: "override"}, nil)

	rec := server.do(http.MethodPut, "/api/v1/notification-settings/override", `{"push_enabled":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var setting entity.NotificationSetting
	decodeData(t, rec, &setting)
	assert.Equal(t, "override", setting.Source)
}

func TestSettingHandler_StoreFailure(t *testing.T) {
	server, settingUC, ownerID := createTestSettingHandler(t)

	settingUC.EXPECT().
		GetSetting(mock.Anything, ownerID).
		Return(nil, errors.New("connection reset"))

	rec := server.do(http.MethodGet, "/api/v1/notification-settings", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decodeError(t, rec).Code)
}

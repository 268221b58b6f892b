package handler

import (
	"net/http"

	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SettingHandler serves the per-owner push preference.
type SettingHandler struct {
	settingUC usecase.NotificationSettingUsecase
}

// NewSettingHandler is the constructor for SettingHandler
func NewSettingHandler(settingUC usecase.NotificationSettingUsecase) *SettingHandler {
	return &SettingHandler{settingUC: settingUC}
}

// PushSettingRequest represents the request body of both setting endpoints
type PushSettingRequest struct {
	PushEnabled *bool `json:"push_enabled" validate:"required"`
}

// GetSetting handles GET /api/v1/notification-settings
func (h *SettingHandler) GetSetting(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	setting, err := h.settingUC.GetSetting(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// SaveSetting handles PUT /api/v1/notification-settings
func (h *SettingHandler) SaveSetting(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req PushSettingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	setting, err := h.settingUC.SaveSetting(c.Request().Context(), ownerID, *req.PushEnabled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// SetOverride handles PUT /api/v1/notification-settings/override
func (h *SettingHandler) SetOverride(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req PushSettingRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	setting, err := h.settingUC.SetOverride(c.Request().Context(), ownerID, *req.PushEnabled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

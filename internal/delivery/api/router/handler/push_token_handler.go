package handler

import (
	"log/slog"
	"net/http"

	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/response"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PushTokenHandlerParams holds dependencies for PushTokenHandler, injected by Fx.
type PushTokenHandlerParams struct {
	fx.In

	PushTokenUC usecase.PushTokenUsecase
	Logger      *slog.Logger
}

// PushTokenHandler holds dependencies for push token registry handlers
type PushTokenHandler struct {
	pushTokenUC usecase.PushTokenUsecase
	logger      *slog.Logger
}

// NewPushTokenHandler is the constructor for PushTokenHandler
func NewPushTokenHandler(params PushTokenHandlerParams) *PushTokenHandler {
	return &PushTokenHandler{
		pushTokenUC: params.PushTokenUC,
		logger:      params.Logger,
	}
}

// RegisterPushTokenRequest represents the request body for registering a device.
// A denied permission is reported with an empty token.
type RegisterPushTokenRequest struct {
	DeviceID          string `json:"device_id" validate:"required,max=255"`
	Token             string `json:"token" validate:"max=4096"`
	Platform          string `json:"platform" validate:"required,max=16"`
	AppVersion        string `json:"app_version" validate:"max=64"`
	PermissionGranted *bool  `json:"permission_granted" validate:"required"`
}

// RegisterPushToken handles POST /api/v1/push-tokens
func (h *PushTokenHandler) RegisterPushToken(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req RegisterPushTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	token, err := h.pushTokenUC.RegisterPushToken(c.Request().Context(), ownerID, &usecase.PushTokenRegistration{
		DeviceID:          req.DeviceID,
		Token:             req.Token,
		Platform:          req.Platform,
		AppVersion:        req.AppVersion,
		PermissionGranted: *req.PermissionGranted,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, token)
}

// GetPushTokens handles GET /api/v1/push-tokens
func (h *PushTokenHandler) GetPushTokens(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	tokens, err := h.pushTokenUC.GetPushTokens(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tokens)
}

// DeactivatePushToken handles DELETE /api/v1/push-tokens/:deviceId
func (h *PushTokenHandler) DeactivatePushToken(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	deviceID := c.Param("deviceId")
	if deviceID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid device ID")
	}

	if err := h.pushTokenUC.DeactivatePushToken(c.Request().Context(), ownerID, deviceID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Push token deactivated"})
}

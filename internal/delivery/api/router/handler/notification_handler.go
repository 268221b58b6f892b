package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/response"
	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	SyncUC         usecase.NotificationSyncUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the notification list and its mutations. Mutations go
// through the sync core so open streams of this process update optimistically.
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	syncUC         usecase.NotificationSyncUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		syncUC:         params.SyncUC,
		logger:         params.Logger,
	}
}

// ListNotificationsRequest represents the query of the list endpoint
type ListNotificationsRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=SYSTEM BILLING SUPPORT SECURITY ACCOUNT MARKETING"`
	Read     string `query:"read" validate:"omitempty,boolean"`
	Limit    int    `query:"limit" validate:"min=0,max=100"`
	Offset   int    `query:"offset" validate:"min=0"`
}

// CreateNotificationRequest represents the request body for creating a notification
type CreateNotificationRequest struct {
	OwnerID   string  `json:"owner_id" validate:"required,uuid"`
	Title     string  `json:"title" validate:"required,max=200"`
	Content   string  `json:"content" validate:"required,max=4000"`
	Category  string  `json:"category" validate:"required,oneof=SYSTEM BILLING SUPPORT SECURITY ACCOUNT MARKETING"`
	ActionURL *string `json:"action_url" validate:"omitempty,url"`
}

// MarkReadRequest represents the request body for toggling the read flag
type MarkReadRequest struct {
	Read *bool `json:"read" validate:"required"`
}

// BulkDeleteRequest represents the request body for deleting several notifications
type BulkDeleteRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,max=100,dive,uuid"`
}

// ListNotifications handles GET /api/v1/notifications
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req ListNotificationsRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	var filter entity.NotificationFilter
	if req.Category != "" {
		category := entity.Category(req.Category)
		filter.Category = &category
	}
	if req.Read != "" {
		read, _ := strconv.ParseBool(req.Read)
		filter.Read = &read
	}

	page, err := h.notificationUC.ListNotifications(c.Request().Context(), ownerID, filter, entity.Page{
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

// CreateNotification handles POST /api/v1/notifications (admin only)
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req CreateNotificationRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	notification, err := h.notificationUC.CreateNotification(c.Request().Context(), ownerID, &entity.NotificationFields{
		Title:     req.Title,
		Content:   req.Content,
		Category:  entity.Category(req.Category),
		ActionURL: req.ActionURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification)
}

// MarkRead handles PUT /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	var req MarkReadRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	if err := h.syncUC.MarkRead(c.Request().Context(), ownerID, id, *req.Read); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"id": id, "read": *req.Read})
}

// MarkAllRead handles PUT /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	result, err := h.syncUC.MarkAllRead(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// DeleteNotification handles DELETE /api/v1/notifications/:id
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	result, err := h.syncUC.Delete(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// BulkDelete handles POST /api/v1/notifications/bulk-delete
func (h *NotificationHandler) BulkDelete(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req BulkDeleteRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		ids = append(ids, uuid.MustParse(raw))
	}

	result, err := h.syncUC.BulkDelete(c.Request().Context(), ownerID, ids)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Refetch handles POST /api/v1/notifications/refetch
func (h *NotificationHandler) Refetch(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	if err := h.syncUC.Refetch(c.Request().Context(), ownerID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageResponse{Message: "Notifications refetched"})
}

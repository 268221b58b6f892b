// Package router registers the gateway routes on echo.
package router

import (
	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"
	"backoffice/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	StreamHandler       *handler.StreamHandler
	PushTokenHandler    *handler.PushTokenHandler
	SettingHandler      *handler.SettingHandler
	FeedPushHandler     *handler.FeedPushHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the routes of the gateway.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Pub/Sub push endpoint; authenticated by OIDC inside the handler
	e.POST("/internal/feed/push", r.params.FeedPushHandler.HandlePush)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.params.AuthMiddleware.Authenticate)

	notifications := apiV1.Group("/notifications")
	{
		notifications.GET("", r.params.NotificationHandler.ListNotifications)
		notifications.POST("", r.params.NotificationHandler.CreateNotification, r.params.AuthMiddleware.RequireRole(constants.RoleAdmin))
		notifications.GET("/stream", r.params.StreamHandler.Stream)
		notifications.PUT("/surfaces/:id", r.params.StreamHandler.UpdateSurface)
		notifications.POST("/refetch", r.params.NotificationHandler.Refetch)
		notifications.PUT("/read-all", r.params.NotificationHandler.MarkAllRead)
		notifications.POST("/bulk-delete", r.params.NotificationHandler.BulkDelete)
		notifications.PUT("/:id/read", r.params.NotificationHandler.MarkRead)
		notifications.DELETE("/:id", r.params.NotificationHandler.DeleteNotification)
	}

	pushTokens := apiV1.Group("/push-tokens")
	{
		pushTokens.POST("", r.params.PushTokenHandler.RegisterPushToken)
		pushTokens.GET("", r.params.PushTokenHandler.GetPushTokens)
		pushTokens.DELETE("/:deviceId", r.params.PushTokenHandler.DeactivatePushToken)
	}

	settings := apiV1.Group("/notification-settings")
	{
		settings.GET("", r.params.SettingHandler.GetSetting)
		settings.PUT("", r.params.SettingHandler.SaveSetting)
		settings.PUT("/override", r.params.SettingHandler.SetOverride)
	}
}

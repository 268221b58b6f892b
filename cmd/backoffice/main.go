package main

import (
	"context"
	"log/slog"
	"os"

	"backoffice/config"
	"backoffice/internal/delivery"
	"backoffice/internal/delivery/api"
	apimiddleware "backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/router/handler"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/infra/auth"
	logs "backoffice/internal/infra/log"
	"backoffice/internal/infra/notification"
	"backoffice/internal/infra/persistence/postgres"
	"backoffice/internal/infra/pubsub"
	"backoffice/internal/usecase"
	"backoffice/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		postgres.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startDispatcher,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newPushService,
		),
	)
}

// newPushService sends through Firebase when it is configured and only logs pushes otherwise.
func newPushService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.PushService, error) {
	if cfg.Firebase == nil || (cfg.Firebase.ProjectID == "" && cfg.Firebase.CredentialsPath == "") {
		logger.Warn("Firebase is not configured, pushes are logged only")

		return notification.NewLogOnlyService(logger), nil
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firebase service")
	}

	return svc, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationService,
			impl.NewNotificationSyncService,
			impl.NewNotificationSettingService,
			impl.NewPushTokenService,
			impl.NewPushDispatcher,
			impl.NewSurfaceTracker,
			impl.NewSettingsResolver,
			func(resolver *impl.SettingsResolver) service.SettingsResolver { return resolver },
			func(resolver *impl.SettingsResolver) usecase.PushOverrideStore { return resolver },
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNotificationHandler,
			handler.NewStreamHandler,
			handler.NewPushTokenHandler,
			handler.NewSettingHandler,
			handler.NewFeedPushHandler,
			func(hub *pubsub.Hub) handler.ChangeEventSink { return hub },
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startDispatcher forces construction of the dispatcher, whose hooks subscribe it to the feed.
func startDispatcher(usecase.PushDispatcher) {}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

package pubsub

import (
	"context"
	"log/slog"

	"backoffice/config"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	"go.uber.org/fx"
)

// HubParams holds dependencies for the Hub, injected by Fx
type HubParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// HubResult exposes the hub and, for the google provider, the shared Pub/Sub client
type HubResult struct {
	fx.Out

	Hub    *Hub
	Feed   service.ChangeFeed
	Client *pubsub.Client
}

// NewChangeFeed creates the process-wide hub. For the google provider it also
// receives the subscription into the hub for the lifetime of the application.
func NewChangeFeed(params HubParams) (HubResult, error) {
	cfg := params.Config.PubSub
	hub := NewHub(params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			hub.Close()

			return nil
		},
	})

	if cfg == nil || cfg.Provider != constants.PubSubProviderGoogle {
		return HubResult{Hub: hub, Feed: hub}, nil
	}

	if cfg.ProjectID == "" {
		return HubResult{}, errors.New("project ID is required for google provider")
	}
	if cfg.SubscriptionID == "" {
		return HubResult{}, errors.New("subscription ID is required for google provider")
	}

	client, err := pubsub.NewClient(params.Ctx, cfg.ProjectID)
	if err != nil {
		return HubResult{}, errors.WithStack(err)
	}

	subscriber := client.Subscriber(cfg.SubscriptionID)
	notification := params.Config.Notification
	receiver := newGoogleReceiver(
		subscriber.Receive,
		hub,
		notification.ReconnectBackoff,
		notification.ReconnectMaxBackoff,
		notification.ReconnectBackoff,
		notification.StaleAfterFailures,
		params.Logger,
	)

	params.Logger.Info("Receiving change feed from Google Pub/Sub",
		slog.String("project_id", cfg.ProjectID),
		slog.String("subscription_id", cfg.SubscriptionID),
	)

	params.Lc.Append(fx.Hook{
		OnStart: receiver.Start,
		OnStop: func(ctx context.Context) error {
			stopErr := receiver.Stop(ctx)

			return errors.Join(stopErr, client.Close())
		},
	})

	return HubResult{Hub: hub, Feed: hub, Client: client}, nil
}

// PublisherParams holds dependencies for ChangeEventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Hub    *Hub
	Client *pubsub.Client `optional:"true"`
}

// NewEventPublisher creates a ChangeEventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.ChangeEventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	// If PubSub is not configured, return a no-op publisher
	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.ChangeEventPublisher
	var err error

	switch cfg.Provider {
	case constants.PubSubProviderMemory:
		logger.Info("Using in-process change feed")

		publisher = NewMemoryPublisher(params.Hub, logger)

	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.PubSubProviderGoogle:
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		if params.Client == nil {
			return nil, errors.New("pubsub client is not initialized")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, params.Client, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ChangeEventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewChangeFeed, NewEventPublisher),
)

package notification

import (
	"context"
	"fmt"
	"log/slog"

	"backoffice/config"
	"backoffice/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// messagingClient is the subset of *messaging.Client the push service uses.
type messagingClient interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messagingClient
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// Send sends a push notification to a single device token
func (s *firebaseService) Send(ctx context.Context, msg *service.PushMessage) (string, error) {
	message := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		// Check if error is due to invalid or unregistered token
		if messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) {
			return "", fmt.Errorf("%w: %w", service.ErrInvalidPushToken, err)
		}

		return "", fmt.Errorf("failed to send notification: %w", err)
	}

	return messageID, nil
}

// logOnlyService stands in for FCM when Firebase is not configured.
type logOnlyService struct {
	logger *slog.Logger
}

// NewLogOnlyService creates a push service that only logs what it would send
func NewLogOnlyService(logger *slog.Logger) service.PushService {
	return &logOnlyService{logger: logger}
}

func (s *logOnlyService) Send(_ context.Context, msg *service.PushMessage) (string, error) {
	s.logger.Info("[Push] Firebase not configured, push logged only",
		slog.String("title", msg.Title),
		slog.String("notification_id", msg.Data["notification_id"]),
	)

	return "", nil
}

package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/entity"
	"backoffice/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// ChangeEventSink receives change events pushed to this process.
type ChangeEventSink interface {
	Dispatch(event *entity.ChangeEvent)
}

type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// FeedPushHandlerParams holds dependencies for FeedPushHandler, injected by Fx.
type FeedPushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Sink   ChangeEventSink
}

// FeedPushHandler feeds Pub/Sub push deliveries (or the local publisher's imitation of
// them) into the change feed of this process.
type FeedPushHandler struct {
	verifyPushAuth bool
	validate       tokenValidator
	logger         *slog.Logger
	sink           ChangeEventSink
}

// NewFeedPushHandler creates the push endpoint handler. Requests are OIDC-verified for the
// google provider outside develop.
func NewFeedPushHandler(params FeedPushHandlerParams) *FeedPushHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &FeedPushHandler{
		verifyPushAuth: verifyPushAuth,
		validate:       idtoken.Validate,
		logger:         params.Logger,
		sink:           params.Sink,
	}
}

// HandlePush handles POST /internal/feed/push. Undecodable payloads are acknowledged
// and dropped so Pub/Sub does not redeliver them forever.
func (h *FeedPushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Feed] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Feed] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		logger = h.logger.With(slog.String("request_id", requestID))
	}

	event, err := pubsub.DecodePushMessage(&pushMsg)
	if err != nil {
		logger.Warn("[Feed] Dropping malformed change event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	logger.Debug("[Feed] Change event pushed",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("operation", string(event.Operation)),
		slog.String("notification_id", event.Row.ID.String()),
	)

	h.sink.Dispatch(event)

	return c.NoContent(http.StatusOK)
}

// verifyPubSubToken checks the OIDC token Google attaches to authenticated push requests.
func (h *FeedPushHandler) verifyPubSubToken(req *http.Request) error {
	const bearerPrefix = "Bearer "

	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("missing or malformed authorization header")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	scheme := req.Header.Get(echo.HeaderXForwardedProto)
	switch {
	case scheme != "":
	case req.TLS != nil:
		scheme = "https"
	default:
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

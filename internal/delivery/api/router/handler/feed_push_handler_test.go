package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

type recordingSink struct {
	mu     sync.Mutex
	events []*entity.ChangeEvent
}

func (s *recordingSink) Dispatch(event *entity.ChangeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *recordingSink) received() []*entity.ChangeEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*entity.ChangeEvent(nil), s.events...)
}

func pushBody(t *testing.T, data []byte) string {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"message": map[string]any{
			"data":       base64.StdEncoding.EncodeToString(data),
			"messageId":  "m-1",
			"attributes": map[string]string{"request_id": "req-7"},
		},
		"subscription": "projects/demo/subscriptions/notification-changes",
	})
	require.NoError(t, err)

	return string(body)
}

func validEventData(t *testing.T) (*entity.ChangeEvent, []byte) {
	t.Helper()

	event := entity.NewChangeEvent(entity.ChangeInsert, &entity.Notification{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Title:     "Payment received",
		Category:  entity.CategoryBilling,
		Version:   1,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	data, err := json.Marshal(event)
	require.NoError(t, err)

	return event, data
}

func servePush(h *FeedPushHandler, body string, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/internal/feed/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/internal/feed/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestFeedPushHandler_DispatchesEvent(t *testing.T) {
	sink := &recordingSink{}
	h := NewFeedPushHandler(FeedPushHandlerParams{
		Config: &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		Logger: newDiscardLogger(),
		Sink:   sink,
	})
	event, data := validEventData(t)

	rec := servePush(h, pushBody(t, data), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	received := sink.received()
	require.Len(t, received, 1)
	assert.Equal(t, event.EventID, received[0].EventID)
	assert.Equal(t, event.Row.ID, received[0].Row.ID)
}

func TestFeedPushHandler_AcksMalformedEvent(t *testing.T) {
	sink := &recordingSink{}
	h := &FeedPushHandler{logger: newDiscardLogger(), sink: sink}

	rec := servePush(h, pushBody(t, []byte(`{"operation":"TRUNCATE"}`)), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sink.received())
}

func TestFeedPushHandler_RejectsUnparsableEnvelope(t *testing.T) {
	sink := &recordingSink{}
	h := &FeedPushHandler{logger: newDiscardLogger(), sink: sink}

	rec := servePush(h, `{"message":`, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, sink.received())
}

func TestNewFeedPushHandler_VerifiesOnlyGoogleOutsideDevelop(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		pubsub *config.PubSubConfig
		want   bool
	}{
		{name: "google production", env: "production", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, want: true},
		{name: "google develop", env: constants.EnvDevelop, pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}},
		{name: "local", env: "production", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}},
		{name: "not configured", env: "production"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.pubsub}
			cfg.Env.Env = tt.env

			h := NewFeedPushHandler(FeedPushHandlerParams{Config: cfg, Logger: newDiscardLogger(), Sink: &recordingSink{}})

			assert.Equal(t, tt.want, h.verifyPushAuth)
		})
	}
}

func TestFeedPushHandler_VerifiesPushToken(t *testing.T) {
	_, data := validEventData(t)

	tests := []struct {
		name       string
		authHeader string
		payload    *idtoken.Payload
		validErr   error
		wantCode   int
	}{
		{
			name:       "valid google token",
			authHeader: "Bearer signed",
			payload:    &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}},
			wantCode:   http.StatusOK,
		},
		{
			name:     "missing header",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:       "signature rejected",
			authHeader: "Bearer forged",
			validErr:   errors.New("invalid signature"),
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "foreign issuer",
			authHeader: "Bearer signed",
			payload:    &idtoken.Payload{Issuer: "https://login.example.com"},
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "unverified email",
			authHeader: "Bearer signed",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantCode:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &recordingSink{}
			var audience, token string
			h := &FeedPushHandler{
				verifyPushAuth: true,
				validate: func(_ context.Context, tok, aud string) (*idtoken.Payload, error) {
					token, audience = tok, aud
					if tt.validErr != nil {
						return nil, tt.validErr
					}

					return tt.payload, nil
				},
				logger: newDiscardLogger(),
				sink:   sink,
			}

			rec := servePush(h, pushBody(t, data), tt.authHeader)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "signed", token)
				assert.Equal(t, "http://example.com/internal/feed/push", audience)
				assert.Len(t, sink.received(), 1)
			} else {
				assert.Empty(t, sink.received())
			}
		})
	}
}

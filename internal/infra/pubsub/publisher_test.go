package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/constants"
	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestDecodePushMessage_RoundTripsEnvelope(t *testing.T) {
	event := testEvent(uuid.New(), entity.ChangeUpdate)
	data, attributes, err := encodeEvent(event)
	require.NoError(t, err)

	assert.Equal(t, event.Row.OwnerID.String(), attributes[AttrOwnerID])
	assert.Equal(t, string(entity.ChangeUpdate), attributes[AttrOperation])

	decoded, err := DecodePushMessage(newPushMessage(localSubscription, data, attributes, "1"))
	require.NoError(t, err)
	assert.Equal(t, event.EventID, decoded.EventID)
	assert.Equal(t, event.Row.ID, decoded.Row.ID)
}

func TestDecodePushMessage_Rejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not base64", data: "%%%"},
		{name: "not json", data: base64.StdEncoding.EncodeToString([]byte("nope"))},
		{name: "unknown operation", data: base64.StdEncoding.EncodeToString([]byte(`{"operation":"TRUNCATE"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := &PushMessage{}
			msg.Message.Data = tt.data

			_, err := DecodePushMessage(msg)
			assert.Error(t, err)
		})
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := testEvent(uuid.New(), entity.ChangeInsert)
	received := make(chan *PushMessage, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-42", r.Header.Get(deliverycontext.HeaderXRequestID))

		var msg PushMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		received <- &msg
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	require.NoError(t, publisher.PublishChangeEvent(ctx, event))
	require.NoError(t, publisher.Close())

	msg := <-received
	assert.Equal(t, localSubscription, msg.Subscription)
	assert.Equal(t, "req-42", msg.Message.Attributes[AttrRequestID])

	decoded, err := DecodePushMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, event.Row.ID, decoded.Row.ID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishChangeEvent(context.Background(), testEvent(uuid.New(), entity.ChangeDelete))
	assert.Error(t, err)
}

func TestMemoryPublisher_DispatchesToHub(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	ownerID := uuid.New()
	listener := &recordingListener{}
	_, err := hub.Subscribe(ownerID, listener)
	require.NoError(t, err)

	publisher := NewMemoryPublisher(hub, newDiscardLogger())
	require.NoError(t, publisher.PublishChangeEvent(context.Background(), testEvent(ownerID, entity.ChangeInsert)))

	assert.Equal(t, 1, listener.eventCount())
}

func newProviderConfig(pubsubCfg *config.PubSubConfig) *config.Config {
	return &config.Config{PubSub: pubsubCfg, Notification: &config.NotificationConfig{StaleAfterFailures: 3}}
}

func TestNewEventPublisher_SelectsProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{name: "not configured", cfg: nil},
		{name: "memory", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderMemory}},
		{name: "local", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8080/internal/feed/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}, wantErr: true},
		{name: "google without client", cfg: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "changes"}, wantErr: true},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: newProviderConfig(tt.cfg),
				Logger: newDiscardLogger(),
				Hub:    NewHub(newDiscardLogger()),
			})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, publisher)

			lc.RequireStart()
			lc.RequireStop()
		})
	}
}

func TestNewChangeFeed_InProcess(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	result, err := NewChangeFeed(HubParams{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: newProviderConfig(&config.PubSubConfig{Provider: constants.PubSubProviderMemory}),
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)
	assert.Same(t, result.Hub, result.Feed)
	assert.Nil(t, result.Client)

	lc.RequireStart()
	lc.RequireStop()

	_, err = result.Feed.Subscribe(uuid.New(), &recordingListener{})
	assert.ErrorIs(t, err, ErrFeedClosed)
}

func TestNewChangeFeed_GoogleRequiresIDs(t *testing.T) {
	for _, cfg := range []*config.PubSubConfig{
		{Provider: constants.PubSubProviderGoogle},
		{Provider: constants.PubSubProviderGoogle, ProjectID: "demo"},
	} {
		_, err := NewChangeFeed(HubParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: newProviderConfig(cfg),
			Logger: newDiscardLogger(),
		})
		assert.Error(t, err)
	}
}

package pubsub

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"backoffice/internal/domain/entity"

	"cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleReceiver_ReconnectsResyncsAndRecoversFromStale(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	ownerID := uuid.New()
	listener := &recordingListener{}
	_, err := hub.Subscribe(ownerID, listener)
	require.NoError(t, err)

	data, err := json.Marshal(testEvent(ownerID, entity.ChangeInsert))
	require.NoError(t, err)

	var calls atomic.Int32
	receive := func(ctx context.Context, handler func(context.Context, *pubsub.Message)) error {
		switch calls.Add(1) {
		case 1, 2:
			return errors.New("stream terminated")
		default:
			handler(ctx, &pubsub.Message{ID: "bad", Data: []byte("{not json")})
			handler(ctx, &pubsub.Message{ID: "good", Data: data})
			<-ctx.Done()

			return ctx.Err()
		}
	}

	receiver := newGoogleReceiver(receive, hub, time.Millisecond, 5*time.Millisecond, 20*time.Millisecond, 2, newDiscardLogger())
	require.NoError(t, receiver.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return listener.eventCount() == 1
	}, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, receiver.Stop(stopCtx))

	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 2, listener.resyncCount())
	assert.Equal(t, []bool{true, false}, listener.staleValues())
	assert.False(t, hub.Stale())
}

func TestGoogleReceiver_QuietReconnectClearsStale(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	listener := &recordingListener{}
	_, err := hub.Subscribe(uuid.New(), listener)
	require.NoError(t, err)

	var calls atomic.Int32
	receive := func(ctx context.Context, _ func(context.Context, *pubsub.Message)) error {
		if calls.Add(1) <= 2 {
			return errors.New("stream terminated")
		}
		<-ctx.Done()

		return ctx.Err()
	}

	receiver := newGoogleReceiver(receive, hub, time.Millisecond, 5*time.Millisecond, 20*time.Millisecond, 2, newDiscardLogger())
	require.NoError(t, receiver.Start(context.Background()))

	assert.Eventually(t, func() bool {
		return calls.Load() == 3 && !hub.Stale()
	}, time.Second, 5*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, receiver.Stop(stopCtx))

	assert.Equal(t, 2, listener.resyncCount())
	assert.Equal(t, []bool{true, false}, listener.staleValues())
	assert.Zero(t, listener.eventCount())
}

func TestGoogleReceiver_StopWithoutStart(t *testing.T) {
	receiver := newGoogleReceiver(nil, NewHub(newDiscardLogger()), time.Millisecond, time.Millisecond, time.Millisecond, 1, newDiscardLogger())

	assert.NoError(t, receiver.Stop(context.Background()))
}

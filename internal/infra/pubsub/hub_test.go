package pubsub

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recordingListener struct {
	mu      sync.Mutex
	events  []*entity.ChangeEvent
	resyncs int
	stale   []bool
}

func (l *recordingListener) OnChange(event *entity.ChangeEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, event)
}

func (l *recordingListener) OnResync() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resyncs++
}

func (l *recordingListener) OnStale(stale bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.stale = append(l.stale, stale)
}

func (l *recordingListener) eventCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.events)
}

func (l *recordingListener) resyncCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.resyncs
}

func (l *recordingListener) staleValues() []bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]bool(nil), l.stale...)
}

func testEvent(ownerID uuid.UUID, op entity.ChangeOperation) *entity.ChangeEvent {
	now := time.Now().UTC()

	return entity.NewChangeEvent(op, &entity.Notification{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "Ticket updated",
		Content:   "Support replied to your ticket",
		Category:  entity.CategorySupport,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func TestHub_Dispatch_RoutesByOwner(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	alice, bob := uuid.New(), uuid.New()
	aliceListener, bobListener, allListener := &recordingListener{}, &recordingListener{}, &recordingListener{}

	_, err := hub.Subscribe(alice, aliceListener)
	require.NoError(t, err)
	_, err = hub.Subscribe(bob, bobListener)
	require.NoError(t, err)
	_, err = hub.SubscribeAll(allListener)
	require.NoError(t, err)

	hub.Dispatch(testEvent(alice, entity.ChangeInsert))
	hub.Dispatch(testEvent(alice, entity.ChangeUpdate))
	hub.Dispatch(nil)

	assert.Equal(t, 2, aliceListener.eventCount())
	assert.Zero(t, bobListener.eventCount())
	assert.Equal(t, 2, allListener.eventCount())
}

func TestHub_Subscribe_Validation(t *testing.T) {
	hub := NewHub(newDiscardLogger())

	_, err := hub.Subscribe(uuid.Nil, &recordingListener{})
	require.Error(t, err)

	_, err = hub.Subscribe(uuid.New(), nil)
	require.Error(t, err)
}

func TestHub_Unsubscribe_StopsDelivery(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	ownerID := uuid.New()
	listener, other := &recordingListener{}, &recordingListener{}

	handle, err := hub.Subscribe(ownerID, listener)
	require.NoError(t, err)
	assert.Equal(t, ownerID, handle.OwnerID())
	_, err = hub.Subscribe(ownerID, other)
	require.NoError(t, err)

	hub.Unsubscribe(handle)
	hub.Unsubscribe(handle)
	hub.Unsubscribe(nil)
	hub.Dispatch(testEvent(ownerID, entity.ChangeInsert))

	assert.Zero(t, listener.eventCount())
	assert.Equal(t, 1, other.eventCount())
}

// selfRemovingListener drops its own subscription from inside the callback.
type selfRemovingListener struct {
	recordingListener
	hub    *Hub
	handle service.FeedHandle
}

func (l *selfRemovingListener) OnChange(event *entity.ChangeEvent) {
	l.recordingListener.OnChange(event)
	l.hub.Unsubscribe(l.handle)
}

func TestHub_Dispatch_ListenerMayUnsubscribeItself(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	ownerID := uuid.New()
	listener := &selfRemovingListener{hub: hub}

	handle, err := hub.Subscribe(ownerID, listener)
	require.NoError(t, err)
	listener.handle = handle

	hub.Dispatch(testEvent(ownerID, entity.ChangeInsert))
	hub.Dispatch(testEvent(ownerID, entity.ChangeInsert))

	assert.Equal(t, 1, listener.eventCount())
}

func TestHub_SetStale_NotifiesOnChangeOnly(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	listener := &recordingListener{}
	_, err := hub.Subscribe(uuid.New(), listener)
	require.NoError(t, err)

	hub.SetStale(true)
	hub.SetStale(true)
	assert.True(t, hub.Stale())
	hub.SetStale(false)

	assert.Equal(t, []bool{true, false}, listener.staleValues())
	assert.False(t, hub.Stale())
}

func TestHub_NotifyResync_ReachesEverySubscription(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	first, second, all := &recordingListener{}, &recordingListener{}, &recordingListener{}
	_, err := hub.Subscribe(uuid.New(), first)
	require.NoError(t, err)
	_, err = hub.Subscribe(uuid.New(), second)
	require.NoError(t, err)
	_, err = hub.SubscribeAll(all)
	require.NoError(t, err)

	hub.NotifyResync()

	assert.Equal(t, 1, first.resyncCount())
	assert.Equal(t, 1, second.resyncCount())
	assert.Equal(t, 1, all.resyncCount())
}

func TestHub_Close(t *testing.T) {
	hub := NewHub(newDiscardLogger())
	ownerID := uuid.New()
	listener := &recordingListener{}
	_, err := hub.Subscribe(ownerID, listener)
	require.NoError(t, err)

	hub.Close()
	hub.Dispatch(testEvent(ownerID, entity.ChangeInsert))

	assert.Zero(t, listener.eventCount())
	_, err = hub.Subscribe(ownerID, listener)
	assert.ErrorIs(t, err, ErrFeedClosed)
	_, err = hub.SubscribeAll(listener)
	assert.ErrorIs(t, err, ErrFeedClosed)
}

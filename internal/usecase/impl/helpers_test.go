package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
)

// newDiscardLogger creates a logger that discards all output, for use in tests.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testNotificationConfig() *config.NotificationConfig {
	return &config.NotificationConfig{
		RecentCapacity:     5,
		UnreadCapacity:     10,
		PushDefaultEnabled: true,
		SettingsCacheTTL:   time.Minute,
		DedupCacheSize:     100,
	}
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// newRow builds a stored notification created minutesAgo before baseTime.
func newRow(ownerID uuid.UUID, minutesAgo int, read bool) *entity.Notification {
	createdAt := baseTime.Add(-time.Duration(minutesAgo) * time.Minute)

	return &entity.Notification{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Title:     "Invoice ready",
		Content:   "Your March invoice is available",
		Category:  entity.CategoryBilling,
		Read:      read,
		Version:   1,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func withVersion(row *entity.Notification, version int64, read bool) *entity.Notification {
	updated := row.Clone()
	updated.Version = version
	updated.Read = read

	return updated
}

func changeEvent(op entity.ChangeOperation, row *entity.Notification) *entity.ChangeEvent {
	return entity.NewChangeEvent(op, row)
}

func idsOf(rows []*entity.Notification) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	return ids
}

// fakeFeed is an in-process change feed that lets tests push events, resyncs and staleness.
type fakeFeed struct {
	mu        sync.Mutex
	listeners map[*fakeHandle]service.FeedListener
	stale     bool
	subErr    error
	// beforeSubscribe runs outside the lock; a non-nil error fails that Subscribe call.
	beforeSubscribe func() error

	subscribes   int
	unsubscribes int
}

type fakeHandle struct {
	ownerID uuid.UUID
	all     bool
}

func (h *fakeHandle) OwnerID() uuid.UUID { return h.ownerID }

func newFakeFeed() *fakeFeed {
	return &fakeFeed{listeners: make(map[*fakeHandle]service.FeedListener)}
}

func (f *fakeFeed) Subscribe(ownerID uuid.UUID, listener service.FeedListener) (service.FeedHandle, error) {
	if f.beforeSubscribe != nil {
		if err := f.beforeSubscribe(); err != nil {
			return nil, err
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subErr != nil {
		return nil, f.subErr
	}
	handle := &fakeHandle{ownerID: ownerID}
	f.listeners[handle] = listener
	f.subscribes++

	return handle, nil
}

func (f *fakeFeed) SubscribeAll(listener service.FeedListener) (service.FeedHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subErr != nil {
		return nil, f.subErr
	}
	handle := &fakeHandle{all: true}
	f.listeners[handle] = listener
	f.subscribes++

	return handle, nil
}

func (f *fakeFeed) Unsubscribe(handle service.FeedHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if h, ok := handle.(*fakeHandle); ok {
		if _, exists := f.listeners[h]; exists {
			delete(f.listeners, h)
			f.unsubscribes++
		}
	}
}

func (f *fakeFeed) Stale() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stale
}

func (f *fakeFeed) matching(ownerID uuid.UUID) []service.FeedListener {
	f.mu.Lock()
	defer f.mu.Unlock()

	listeners := make([]service.FeedListener, 0, len(f.listeners))
	for handle, listener := range f.listeners {
		if handle.all || handle.ownerID == ownerID {
			listeners = append(listeners, listener)
		}
	}

	return listeners
}

func (f *fakeFeed) emit(event *entity.ChangeEvent) {
	for _, listener := range f.matching(event.Row.OwnerID) {
		listener.OnChange(event)
	}
}

func (f *fakeFeed) setStale(ownerID uuid.UUID, stale bool) {
	f.mu.Lock()
	f.stale = stale
	f.mu.Unlock()

	for _, listener := range f.matching(ownerID) {
		listener.OnStale(stale)
	}
}

func (f *fakeFeed) resync(ownerID uuid.UUID) {
	for _, listener := range f.matching(ownerID) {
		listener.OnResync()
	}
}

func (f *fakeFeed) active() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.listeners)
}

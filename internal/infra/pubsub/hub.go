// Package pubsub carries notification change events between the store facade and the
// subscriber views, over Google Pub/Sub, a local HTTP push endpoint or in process.
package pubsub

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFeedClosed is returned by Subscribe after the hub was closed.
var ErrFeedClosed = errors.New("change feed is closed")

type feedHandle struct {
	id       uint64
	ownerID  uuid.UUID
	all      bool
	listener service.FeedListener
	closed   atomic.Bool
}

func (h *feedHandle) OwnerID() uuid.UUID {
	return h.ownerID
}

// Hub fans change events out to the subscriptions of this process. Listeners are called
// outside the hub lock, so they may subscribe or unsubscribe from within a callback.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	nextID  uint64
	byOwner map[uuid.UUID]map[uint64]*feedHandle
	all     map[uint64]*feedHandle
	closed  bool

	stale atomic.Bool
}

// NewHub creates an empty hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		byOwner: make(map[uuid.UUID]map[uint64]*feedHandle),
		all:     make(map[uint64]*feedHandle),
	}
}

// Subscribe implements service.ChangeFeed
func (h *Hub) Subscribe(ownerID uuid.UUID, listener service.FeedListener) (service.FeedHandle, error) {
	if ownerID == uuid.Nil {
		return nil, errors.New("owner id is required")
	}

	return h.add(ownerID, false, listener)
}

// SubscribeAll implements service.ChangeFeed
func (h *Hub) SubscribeAll(listener service.FeedListener) (service.FeedHandle, error) {
	return h.add(uuid.Nil, true, listener)
}

func (h *Hub) add(ownerID uuid.UUID, all bool, listener service.FeedListener) (service.FeedHandle, error) {
	if listener == nil {
		return nil, errors.New("listener is required")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrFeedClosed
	}

	h.nextID++
	handle := &feedHandle{id: h.nextID, ownerID: ownerID, all: all, listener: listener}
	if all {
		h.all[handle.id] = handle

		return handle, nil
	}

	owned, ok := h.byOwner[ownerID]
	if !ok {
		owned = make(map[uint64]*feedHandle)
		h.byOwner[ownerID] = owned
	}
	owned[handle.id] = handle

	return handle, nil
}

// Unsubscribe implements service.ChangeFeed
func (h *Hub) Unsubscribe(handle service.FeedHandle) {
	fh, ok := handle.(*feedHandle)
	if !ok || fh == nil {
		return
	}
	fh.closed.Store(true)

	h.mu.Lock()
	defer h.mu.Unlock()

	if fh.all {
		delete(h.all, fh.id)

		return
	}

	if owned, ok := h.byOwner[fh.ownerID]; ok {
		delete(owned, fh.id)
		if len(owned) == 0 {
			delete(h.byOwner, fh.ownerID)
		}
	}
}

// Stale implements service.ChangeFeed
func (h *Hub) Stale() bool {
	return h.stale.Load()
}

// Dispatch delivers one event to the owner's subscriptions and to every SubscribeAll handle.
func (h *Hub) Dispatch(event *entity.ChangeEvent) {
	if event == nil {
		return
	}

	for _, handle := range h.snapshot(event.Row.OwnerID) {
		if handle.closed.Load() {
			continue
		}
		handle.listener.OnChange(event)
	}
}

// NotifyResync tells every subscription that events may have been missed.
func (h *Hub) NotifyResync() {
	handles := h.snapshot(uuid.Nil)
	h.logger.Info("[Feed] Resync requested", slog.Int("subscriptions", len(handles)))

	for _, handle := range handles {
		if handle.closed.Load() {
			continue
		}
		handle.listener.OnResync()
	}
}

// SetStale records the stale state and notifies subscriptions when it changes.
func (h *Hub) SetStale(stale bool) {
	if h.stale.Swap(stale) == stale {
		return
	}
	h.logger.Warn("[Feed] Stale state changed", slog.Bool("stale", stale))

	for _, handle := range h.snapshot(uuid.Nil) {
		if handle.closed.Load() {
			continue
		}
		handle.listener.OnStale(stale)
	}
}

// Close drops every subscription. Later Subscribe calls fail with ErrFeedClosed.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for _, owned := range h.byOwner {
		for _, handle := range owned {
			handle.closed.Store(true)
		}
	}
	for _, handle := range h.all {
		handle.closed.Store(true)
	}
	h.byOwner = make(map[uuid.UUID]map[uint64]*feedHandle)
	h.all = make(map[uint64]*feedHandle)
}

// snapshot returns the handles of ownerID plus the SubscribeAll handles.
// uuid.Nil selects every handle.
func (h *Hub) snapshot(ownerID uuid.UUID) []*feedHandle {
	h.mu.RLock()
	defer h.mu.RUnlock()

	handles := make([]*feedHandle, 0, len(h.all))
	if ownerID == uuid.Nil {
		for _, owned := range h.byOwner {
			for _, handle := range owned {
				handles = append(handles, handle)
			}
		}
	} else {
		for _, handle := range h.byOwner[ownerID] {
			handles = append(handles, handle)
		}
	}
	for _, handle := range h.all {
		handles = append(handles, handle)
	}

	return handles
}

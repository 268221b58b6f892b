package service

import (
	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedListener receives the change stream of one owner.
// Delivery is at-least-once and ordered per row only.
type FeedListener interface {
	// OnChange is called for every change event of the owner's notifications.
	OnChange(event *entity.ChangeEvent)

	// OnResync is called after the feed reconnected and may have missed events.
	OnResync()

	// OnStale is called when the feed gives up or recovers after repeated reconnect failures.
	OnStale(stale bool)
}

// FeedHandle identifies one subscription returned by ChangeFeed.Subscribe.
type FeedHandle interface {
	OwnerID() uuid.UUID
}

// ChangeFeed defines the interface of the live notification change feed
type ChangeFeed interface {
	// Subscribe starts delivering the owner's change events to listener.
	Subscribe(ownerID uuid.UUID, listener FeedListener) (FeedHandle, error)

	// SubscribeAll starts delivering change events of every owner to listener.
	// The returned handle reports uuid.Nil as its owner.
	SubscribeAll(listener FeedListener) (FeedHandle, error)

	// Unsubscribe stops delivery to the handle. No callback starts after it returns.
	Unsubscribe(handle FeedHandle)

	// Stale reports whether reconnection has repeatedly failed.
	Stale() bool
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChangeOperation is the kind of row change carried by a ChangeEvent.
type ChangeOperation string

const (
	ChangeInsert ChangeOperation = "INSERT"
	ChangeUpdate ChangeOperation = "UPDATE"
	ChangeDelete ChangeOperation = "DELETE"
)

// ChangeEvent is a row-level change of a notification delivered by the change feed.
// For deletes Row only carries ID, OwnerID and Version.
type ChangeEvent struct {
	EventID     uuid.UUID       `json:"event_id"`
	Operation   ChangeOperation `json:"operation"`
	Row         Notification    `json:"row"`
	CommittedAt time.Time       `json:"committed_at"`
}

// NewChangeEvent builds an event for row with a fresh event id.
func NewChangeEvent(op ChangeOperation, row *Notification) *ChangeEvent {
	return &ChangeEvent{
		EventID:     uuid.New(),
		Operation:   op,
		Row:         *row.Clone(),
		CommittedAt: time.Now().UTC(),
	}
}

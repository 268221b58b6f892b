package impl

import (
	"slices"
	"time"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/errors"

	"github.com/google/uuid"
)

const (
	tombstoneCapacity = 256
	replayCapacity    = 512
)

// pendingEntry tracks the optimistic mutations of one notification that are still in flight.
// The base fields hold the last store-confirmed state and are restored when every call fails.
type pendingEntry struct {
	inflight int

	baseRow      *entity.Notification // nil when the row was outside the recent window
	baseUnread   bool
	baseUnreadAt time.Time
	baseVersion  int64

	optimisticRead *bool
	removed        bool

	confirmed *entity.Notification
	succeeded bool
	gone      bool

	deferred []*entity.ChangeEvent
}

// subscriberView is the per-owner projection of the store: a bounded newest-first
// recent window and a bounded unread id set. It is not safe for concurrent use.
type subscriberView struct {
	ownerID   uuid.UUID
	recentCap int
	unreadCap int

	recent   []*entity.Notification
	unread   map[uuid.UUID]time.Time
	versions map[uuid.UUID]int64

	tombstones     map[uuid.UUID]struct{}
	tombstoneOrder []uuid.UUID

	pending map[uuid.UUID]*pendingEntry

	refetching int
	replay     []*entity.ChangeEvent

	stale bool
}

func newSubscriberView(ownerID uuid.UUID, recentCap, unreadCap int) *subscriberView {
	return &subscriberView{
		ownerID:    ownerID,
		recentCap:  recentCap,
		unreadCap:  unreadCap,
		recent:     make([]*entity.Notification, 0, recentCap),
		unread:     make(map[uuid.UUID]time.Time),
		versions:   make(map[uuid.UUID]int64),
		tombstones: make(map[uuid.UUID]struct{}),
		pending:    make(map[uuid.UUID]*pendingEntry),
	}
}

// Recent returns a copy of the recent window.
func (v *subscriberView) Recent() []*entity.Notification {
	rows := make([]*entity.Notification, 0, len(v.recent))
	for _, row := range v.recent {
		rows = append(rows, row.Clone())
	}

	return rows
}

// UnreadCount is the size of the unread set.
func (v *subscriberView) UnreadCount() int {
	return len(v.unread)
}

// UnreadIDs returns the unread ids newest first.
func (v *subscriberView) UnreadIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(v.unread))
	for id := range v.unread {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return v.unread[b].Compare(v.unread[a])
	})

	return ids
}

// Apply merges a change event and reports whether the view changed.
// Events for a row with an in-flight mutation are queued until it resolves.
func (v *subscriberView) Apply(event *entity.ChangeEvent) bool {
	if event == nil || event.Row.OwnerID != v.ownerID {
		return false
	}

	if v.refetching > 0 {
		if len(v.replay) == replayCapacity {
			v.replay = v.replay[1:]
		}
		v.replay = append(v.replay, event)
	}

	if entry, ok := v.pending[event.Row.ID]; ok {
		entry.deferred = append(entry.deferred, event)

		return false
	}

	return v.applyNow(event)
}

func (v *subscriberView) applyNow(event *entity.ChangeEvent) bool {
	row := &event.Row
	if _, deleted := v.tombstones[row.ID]; deleted {
		return false
	}

	switch event.Operation {
	case entity.ChangeInsert:
		if _, known := v.versions[row.ID]; known && v.versions[row.ID] >= row.Version {
			return false
		}
		v.upsertRecent(row)
		v.setUnread(row)
		v.versions[row.ID] = row.Version
		v.pruneVersions()

		return true

	case entity.ChangeUpdate:
		if known, ok := v.versions[row.ID]; ok && known >= row.Version {
			return false
		}
		v.replaceRecent(row)
		v.setUnread(row)
		v.versions[row.ID] = row.Version
		v.pruneVersions()

		return true

	case entity.ChangeDelete:
		v.remove(row.ID)
		v.tombstone(row.ID)

		return true

	default:
		return false
	}
}

// BeginMarkRead applies an optimistic read flag change.
func (v *subscriberView) BeginMarkRead(id uuid.UUID, read bool) {
	entry := v.beginPending(id)
	entry.optimisticRead = &read
	v.overlayRead(id, read)
}

// BeginRemove optimistically removes the given ids.
func (v *subscriberView) BeginRemove(ids []uuid.UUID) {
	for _, id := range ids {
		entry := v.beginPending(id)
		entry.removed = true
		v.remove(id)
	}
}

// ResolveMarkRead records the outcome of one read flag call. A nil row with a nil error means
// the store accepted the call without returning the row.
func (v *subscriberView) ResolveMarkRead(id uuid.UUID, row *entity.Notification, err error) {
	entry, ok := v.pending[id]
	if !ok {
		return
	}

	switch {
	case err == nil:
		entry.succeeded = true
		if row != nil && (entry.confirmed == nil || row.Version >= entry.confirmed.Version) {
			entry.confirmed = row.Clone()
		}
	case errors.Is(err, domainerrors.ErrNotificationNotFound):
		entry.gone = true
	}

	v.finishPending(id, entry)
}

// ResolveRemove records the outcome of a delete call covering ids.
// Any successful delete leaves the rows removed, whatever count the store reported.
func (v *subscriberView) ResolveRemove(ids []uuid.UUID, err error) {
	for _, id := range ids {
		entry, ok := v.pending[id]
		if !ok {
			continue
		}
		if err == nil {
			entry.gone = true
		}
		v.finishPending(id, entry)
	}
}

// BeginRefetch marks the start of a full resynchronization. Events applied until it completes
// are replayed on top of the fetched rows.
func (v *subscriberView) BeginRefetch() {
	v.refetching++
}

// CompleteRefetch replaces the view with store truth, keeps in-flight optimistic values and
// replays events received while the query ran.
func (v *subscriberView) CompleteRefetch(recentRows, unreadRows []*entity.Notification, err error) {
	v.refetching = max(v.refetching-1, 0)
	replay := v.replay
	if v.refetching == 0 {
		v.replay = nil
	}
	if err != nil {
		return
	}

	v.recent = make([]*entity.Notification, 0, v.recentCap)
	v.unread = make(map[uuid.UUID]time.Time)
	v.versions = make(map[uuid.UUID]int64)

	for _, row := range unreadRows {
		if _, deleted := v.tombstones[row.ID]; deleted {
			continue
		}
		v.versions[row.ID] = row.Version
		if !row.Read {
			v.addUnread(row.ID, row.CreatedAt)
		}
	}
	for _, row := range recentRows {
		if _, deleted := v.tombstones[row.ID]; deleted {
			continue
		}
		v.versions[row.ID] = row.Version
		v.upsertRecent(row)
		v.setUnread(row)
	}

	for id, entry := range v.pending {
		entry.baseRow = v.findRecent(id).Clone()
		entry.baseUnreadAt, entry.baseUnread = v.unread[id]
		entry.baseVersion = v.versions[id]

		if entry.removed {
			v.remove(id)
		} else if entry.optimisticRead != nil {
			v.overlayRead(id, *entry.optimisticRead)
		}
	}

	for _, event := range replay {
		v.Apply(event)
	}
}

func (v *subscriberView) beginPending(id uuid.UUID) *pendingEntry {
	if entry, ok := v.pending[id]; ok {
		entry.inflight++

		return entry
	}

	entry := &pendingEntry{
		inflight:    1,
		baseRow:     v.findRecent(id).Clone(),
		baseVersion: v.versions[id],
	}
	entry.baseUnreadAt, entry.baseUnread = v.unread[id]
	v.pending[id] = entry

	return entry
}

// finishPending settles the entry once its last call resolved: a vanished row is removed,
// a confirmed row is applied, an accepted call keeps the optimistic value and anything else
// reverts to the base state. Deferred events are then merged normally.
func (v *subscriberView) finishPending(id uuid.UUID, entry *pendingEntry) {
	entry.inflight--
	if entry.inflight > 0 {
		return
	}
	delete(v.pending, id)

	switch {
	case entry.gone:
		v.remove(id)
		v.tombstone(id)
	case entry.confirmed != nil && entry.confirmed.Version >= v.versions[id]:
		if entry.baseRow != nil || v.findRecent(id) != nil {
			v.upsertRecent(entry.confirmed)
		}
		v.setUnread(entry.confirmed)
		v.versions[id] = entry.confirmed.Version
	case entry.confirmed != nil:
		// a refetch already saw a newer row
		v.restoreBase(id, entry)
	case entry.succeeded:
	default:
		v.restoreBase(id, entry)
	}

	for _, event := range entry.deferred {
		v.applyNow(event)
	}
	v.pruneVersions()
}

// pruneVersions forgets versions of rows that left both the recent window and the unread set.
// Rows with an in-flight mutation keep theirs.
func (v *subscriberView) pruneVersions() {
	if len(v.versions) <= v.recentCap+v.unreadCap+len(v.pending) {
		return
	}

	for id := range v.versions {
		if _, unread := v.unread[id]; unread {
			continue
		}
		if _, pending := v.pending[id]; pending {
			continue
		}
		if v.findRecent(id) != nil {
			continue
		}
		delete(v.versions, id)
	}
}

func (v *subscriberView) restoreBase(id uuid.UUID, entry *pendingEntry) {
	if entry.baseRow != nil {
		v.upsertRecent(entry.baseRow)
	} else {
		v.removeRecent(id)
	}

	delete(v.unread, id)
	if entry.baseUnread {
		v.addUnread(id, entry.baseUnreadAt)
	}

	if entry.baseVersion > 0 {
		v.versions[id] = entry.baseVersion
	} else {
		delete(v.versions, id)
	}
}

func (v *subscriberView) overlayRead(id uuid.UUID, read bool) {
	createdAt, known := v.unread[id]
	if row := v.findRecent(id); row != nil {
		row.Read = read
		createdAt, known = row.CreatedAt, true
	}

	if read {
		delete(v.unread, id)
	} else if known {
		v.addUnread(id, createdAt)
	}
}

func (v *subscriberView) findRecent(id uuid.UUID) *entity.Notification {
	for _, row := range v.recent {
		if row.ID == id {
			return row
		}
	}

	return nil
}

// upsertRecent places row in newest-first order and truncates the window to capacity.
func (v *subscriberView) upsertRecent(row *entity.Notification) {
	v.removeRecent(row.ID)

	idx, _ := slices.BinarySearchFunc(v.recent, row, func(existing, target *entity.Notification) int {
		if existing.NewerThan(target) {
			return -1
		}

		return 1
	})
	if idx >= v.recentCap {
		return
	}

	v.recent = slices.Insert(v.recent, idx, row.Clone())
	if len(v.recent) > v.recentCap {
		v.recent = v.recent[:v.recentCap]
	}
}

// replaceRecent swaps the row in place when it is inside the window.
func (v *subscriberView) replaceRecent(row *entity.Notification) {
	for idx, existing := range v.recent {
		if existing.ID == row.ID {
			v.recent[idx] = row.Clone()

			return
		}
	}
}

func (v *subscriberView) removeRecent(id uuid.UUID) bool {
	for idx, row := range v.recent {
		if row.ID == id {
			v.recent = slices.Delete(v.recent, idx, idx+1)

			return true
		}
	}

	return false
}

func (v *subscriberView) remove(id uuid.UUID) {
	v.removeRecent(id)
	delete(v.unread, id)
}

func (v *subscriberView) setUnread(row *entity.Notification) {
	if row.Read {
		delete(v.unread, row.ID)

		return
	}
	v.addUnread(row.ID, row.CreatedAt)
}

// addUnread keeps the set within capacity by dropping the oldest id.
func (v *subscriberView) addUnread(id uuid.UUID, createdAt time.Time) {
	if _, ok := v.unread[id]; ok || len(v.unread) < v.unreadCap {
		v.unread[id] = createdAt

		return
	}

	oldestID, oldestAt := uuid.Nil, time.Time{}
	for existingID, existingAt := range v.unread {
		if oldestID == uuid.Nil || existingAt.Before(oldestAt) {
			oldestID, oldestAt = existingID, existingAt
		}
	}
	if !createdAt.After(oldestAt) {
		return
	}

	delete(v.unread, oldestID)
	v.unread[id] = createdAt
}

func (v *subscriberView) tombstone(id uuid.UUID) {
	delete(v.versions, id)
	if _, ok := v.tombstones[id]; ok {
		return
	}

	if len(v.tombstoneOrder) == tombstoneCapacity {
		delete(v.tombstones, v.tombstoneOrder[0])
		v.tombstoneOrder = v.tombstoneOrder[1:]
	}
	v.tombstones[id] = struct{}{}
	v.tombstoneOrder = append(v.tombstoneOrder, id)
}

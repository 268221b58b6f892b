package impl

import (
	"testing"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(ownerID uuid.UUID) *subscriberView {
	return newSubscriberView(ownerID, 5, 10)
}

func TestSubscriberView_Apply_InsertIsIdempotent(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)

	assert.True(t, view.Apply(changeEvent(entity.ChangeInsert, row)))
	assert.False(t, view.Apply(changeEvent(entity.ChangeInsert, row)))

	assert.Equal(t, []uuid.UUID{row.ID}, idsOf(view.Recent()))
	assert.Equal(t, 1, view.UnreadCount())
}

func TestSubscriberView_Apply_IgnoresOtherOwner(t *testing.T) {
	view := newTestView(uuid.New())

	changed := view.Apply(changeEvent(entity.ChangeInsert, newRow(uuid.New(), 1, false)))

	assert.False(t, changed)
	assert.Empty(t, view.Recent())
	assert.Zero(t, view.UnreadCount())
}

func TestSubscriberView_Apply_KeepsNewestFirstWithinCapacity(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)

	rows := make([]*entity.Notification, 0, 7)
	for minutesAgo := 7; minutesAgo >= 1; minutesAgo-- {
		row := newRow(ownerID, minutesAgo, false)
		rows = append(rows, row)
		view.Apply(changeEvent(entity.ChangeInsert, row))
	}

	recent := view.Recent()
	require.Len(t, recent, 5)
	for idx := 1; idx < len(recent); idx++ {
		assert.True(t, recent[idx-1].NewerThan(recent[idx]))
	}
	assert.Equal(t, rows[6].ID, recent[0].ID)

	// rows pushed out of the window still count as unread
	assert.Equal(t, 7, view.UnreadCount())
}

func TestSubscriberView_Apply_OutOfOrderInsertIsPlacedByCreatedAt(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	newest := newRow(ownerID, 1, false)
	oldest := newRow(ownerID, 30, true)
	middle := newRow(ownerID, 10, false)

	view.Apply(changeEvent(entity.ChangeInsert, newest))
	view.Apply(changeEvent(entity.ChangeInsert, oldest))
	view.Apply(changeEvent(entity.ChangeInsert, middle))

	assert.Equal(t, []uuid.UUID{newest.ID, middle.ID, oldest.ID}, idsOf(view.Recent()))
	assert.Equal(t, 2, view.UnreadCount())
}

func TestSubscriberView_Apply_UnreadSetDropsOldestAtCapacity(t *testing.T) {
	ownerID := uuid.New()
	view := newSubscriberView(ownerID, 5, 3)

	oldest := newRow(ownerID, 40, false)
	view.Apply(changeEvent(entity.ChangeInsert, oldest))
	for _, minutesAgo := range []int{30, 20, 10} {
		view.Apply(changeEvent(entity.ChangeInsert, newRow(ownerID, minutesAgo, false)))
	}

	assert.Equal(t, 3, view.UnreadCount())
	assert.NotContains(t, view.UnreadIDs(), oldest.ID)
}

func TestSubscriberView_Apply_VersionsStayWithinCapacity(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)

	var newest *entity.Notification
	for minutesAgo := 10000; minutesAgo >= 1; minutesAgo-- {
		newest = newRow(ownerID, minutesAgo, true)
		view.Apply(changeEvent(entity.ChangeInsert, newest))
	}

	assert.LessOrEqual(t, len(view.versions), 15)
	require.Len(t, view.Recent(), 5)
	assert.Equal(t, newest.ID, view.Recent()[0].ID)
	assert.False(t, view.Apply(changeEvent(entity.ChangeInsert, newest)))
}

func TestSubscriberView_Apply_StaleUpdateIsIgnored(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)

	view.Apply(changeEvent(entity.ChangeInsert, row))
	require.True(t, view.Apply(changeEvent(entity.ChangeUpdate, withVersion(row, 3, true))))
	assert.False(t, view.Apply(changeEvent(entity.ChangeUpdate, withVersion(row, 2, false))))

	recent := view.Recent()
	require.Len(t, recent, 1)
	assert.True(t, recent[0].Read)
	assert.Equal(t, int64(3), recent[0].Version)
	assert.Zero(t, view.UnreadCount())
}

func TestSubscriberView_Apply_UpdateOutsideWindowOnlyTouchesUnread(t *testing.T) {
	ownerID := uuid.New()
	view := newSubscriberView(ownerID, 1, 10)
	older := newRow(ownerID, 20, false)
	newer := newRow(ownerID, 1, false)

	view.Apply(changeEvent(entity.ChangeInsert, newer))
	view.Apply(changeEvent(entity.ChangeInsert, older))
	require.Equal(t, []uuid.UUID{newer.ID}, idsOf(view.Recent()))
	require.Equal(t, 2, view.UnreadCount())

	view.Apply(changeEvent(entity.ChangeUpdate, withVersion(older, 2, true)))

	assert.Equal(t, []uuid.UUID{newer.ID}, idsOf(view.Recent()))
	assert.Equal(t, []uuid.UUID{newer.ID}, view.UnreadIDs())
}

func TestSubscriberView_Apply_DeleteTombstonesRow(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)

	view.Apply(changeEvent(entity.ChangeInsert, row))
	require.True(t, view.Apply(changeEvent(entity.ChangeDelete, row)))

	assert.Empty(t, view.Recent())
	assert.Zero(t, view.UnreadCount())

	// a late replay of the insert must not resurrect it
	assert.False(t, view.Apply(changeEvent(entity.ChangeInsert, row)))
	assert.Empty(t, view.Recent())
}

func TestSubscriberView_MarkRead_Confirmed(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, row))

	view.BeginMarkRead(row.ID, true)
	assert.Zero(t, view.UnreadCount())
	assert.True(t, view.Recent()[0].Read)

	view.ResolveMarkRead(row.ID, withVersion(row, 2, true), nil)

	recent := view.Recent()
	require.Len(t, recent, 1)
	assert.True(t, recent[0].Read)
	assert.Equal(t, int64(2), recent[0].Version)
	assert.Zero(t, view.UnreadCount())
	assert.Empty(t, view.pending)
}

func TestSubscriberView_MarkRead_RevertsOnError(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, row))

	view.BeginMarkRead(row.ID, true)
	view.ResolveMarkRead(row.ID, nil, errors.New("connection reset"))

	recent := view.Recent()
	require.Len(t, recent, 1)
	assert.False(t, recent[0].Read)
	assert.Equal(t, 1, view.UnreadCount())
}

func TestSubscriberView_MarkRead_NotFoundRemovesRow(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, row))

	view.BeginMarkRead(row.ID, true)
	view.ResolveMarkRead(row.ID, nil, domainerrors.ErrNotificationNotFound.WithDetails("gone"))

	assert.Empty(t, view.Recent())
	assert.Zero(t, view.UnreadCount())
}

func TestSubscriberView_MarkRead_OutsideWindowRevertsUnreadOnly(t *testing.T) {
	ownerID := uuid.New()
	view := newSubscriberView(ownerID, 1, 10)
	older := newRow(ownerID, 20, false)
	view.Apply(changeEvent(entity.ChangeInsert, newRow(ownerID, 1, false)))
	view.Apply(changeEvent(entity.ChangeInsert, older))

	view.BeginMarkRead(older.ID, true)
	assert.Equal(t, 1, view.UnreadCount())

	view.ResolveMarkRead(older.ID, nil, errors.New("timeout"))
	assert.Equal(t, 2, view.UnreadCount())
	assert.Len(t, view.Recent(), 1)
}

func TestSubscriberView_MarkRead_DefersConcurrentEvents(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, row))

	view.BeginMarkRead(row.ID, true)
	// another client flips it back to unread while our call is in flight
	assert.False(t, view.Apply(changeEvent(entity.ChangeUpdate, withVersion(row, 3, false))))
	assert.Zero(t, view.UnreadCount())

	view.ResolveMarkRead(row.ID, withVersion(row, 2, true), nil)

	recent := view.Recent()
	require.Len(t, recent, 1)
	assert.False(t, recent[0].Read)
	assert.Equal(t, int64(3), recent[0].Version)
	assert.Equal(t, 1, view.UnreadCount())
}

func TestSubscriberView_MarkRead_OverlappingCallsSettleOnLast(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, row))

	view.BeginMarkRead(row.ID, true)
	view.BeginMarkRead(row.ID, false)
	assert.Equal(t, 1, view.UnreadCount())

	view.ResolveMarkRead(row.ID, withVersion(row, 2, true), nil)
	require.Contains(t, view.pending, row.ID)

	view.ResolveMarkRead(row.ID, withVersion(row, 3, false), nil)
	assert.Empty(t, view.pending)
	assert.Equal(t, 1, view.UnreadCount())
	assert.Equal(t, int64(3), view.Recent()[0].Version)
}

func TestSubscriberView_Remove_RestoresOnError(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	first := newRow(ownerID, 1, false)
	second := newRow(ownerID, 2, true)
	view.Apply(changeEvent(entity.ChangeInsert, first))
	view.Apply(changeEvent(entity.ChangeInsert, second))

	ids := []uuid.UUID{first.ID, second.ID}
	view.BeginRemove(ids)
	assert.Empty(t, view.Recent())
	assert.Zero(t, view.UnreadCount())

	view.ResolveRemove(ids, errors.New("deadlock detected"))

	assert.Equal(t, ids, idsOf(view.Recent()))
	assert.Equal(t, 1, view.UnreadCount())
}

func TestSubscriberView_Remove_SuccessKeepsRowsGone(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, row))

	view.BeginRemove([]uuid.UUID{row.ID})
	view.ResolveRemove([]uuid.UUID{row.ID}, nil)

	assert.Empty(t, view.Recent())
	assert.False(t, view.Apply(changeEvent(entity.ChangeUpdate, withVersion(row, 2, false))))
	assert.Zero(t, view.UnreadCount())
}

func TestSubscriberView_CompleteRefetch_ReplacesWithStoreTruth(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	local := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, local))

	stored := []*entity.Notification{newRow(ownerID, 5, false), newRow(ownerID, 6, true)}
	unread := []*entity.Notification{stored[0], newRow(ownerID, 60, false)}

	view.BeginRefetch()
	view.CompleteRefetch(stored, unread, nil)

	assert.Equal(t, idsOf(stored), idsOf(view.Recent()))
	assert.Equal(t, 2, view.UnreadCount())
	assert.NotContains(t, view.UnreadIDs(), local.ID)
}

func TestSubscriberView_CompleteRefetch_ErrorKeepsView(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, row))

	view.BeginRefetch()
	view.CompleteRefetch(nil, nil, errors.New("store unavailable"))

	assert.Equal(t, []uuid.UUID{row.ID}, idsOf(view.Recent()))
	assert.Equal(t, 1, view.UnreadCount())
	assert.Zero(t, view.refetching)
}

func TestSubscriberView_CompleteRefetch_ReplaysEventsSeenDuringQuery(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	stored := newRow(ownerID, 10, false)
	arrived := newRow(ownerID, 1, false)

	view.BeginRefetch()
	view.Apply(changeEvent(entity.ChangeInsert, arrived))
	view.CompleteRefetch([]*entity.Notification{stored}, []*entity.Notification{stored}, nil)

	assert.Equal(t, []uuid.UUID{arrived.ID, stored.ID}, idsOf(view.Recent()))
	assert.Equal(t, 2, view.UnreadCount())
	assert.Nil(t, view.replay)
}

func TestSubscriberView_CompleteRefetch_KeepsOptimisticState(t *testing.T) {
	ownerID := uuid.New()
	view := newTestView(ownerID)
	row := newRow(ownerID, 1, false)
	view.Apply(changeEvent(entity.ChangeInsert, row))

	view.BeginMarkRead(row.ID, true)
	view.BeginRefetch()
	view.CompleteRefetch([]*entity.Notification{row}, []*entity.Notification{row}, nil)

	assert.True(t, view.Recent()[0].Read)
	assert.Zero(t, view.UnreadCount())

	// the failed call now reverts to the refetched base
	view.ResolveMarkRead(row.ID, nil, errors.New("timeout"))
	assert.False(t, view.Recent()[0].Read)
	assert.Equal(t, 1, view.UnreadCount())
}

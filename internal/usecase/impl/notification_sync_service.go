package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"backoffice/config"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const refetchTimeout = 15 * time.Second

// ownerState is one live view plus everything observing it.
type ownerState struct {
	view   *subscriberView
	handle service.FeedHandle
	// ready is closed once the first feed subscribe attempt returns.
	ready chan struct{}

	recentObservers map[uint64]func([]*entity.Notification)
	unreadObservers map[uint64]func(int)
	staleObservers  map[uint64]func(bool)

	disposed bool
}

func (st *ownerState) subscribing() bool {
	select {
	case <-st.ready:
		return false
	default:
		return true
	}
}

func (st *ownerState) observerCount() int {
	return len(st.recentObservers) + len(st.unreadObservers) + len(st.staleObservers)
}

type notificationSyncService struct {
	store     usecase.NotificationUsecase
	feed      service.ChangeFeed
	overrides usecase.PushOverrideStore
	recentCap int
	unreadCap int
	logger    *slog.Logger

	mu             sync.Mutex
	started        bool
	disposed       bool
	owners         map[uuid.UUID]*ownerState
	nextObserverID uint64

	refetchGroup singleflight.Group

	outboxMu sync.Mutex
	outbox   []func()
	draining bool
}

// NotificationSyncServiceParams holds dependencies for NotificationSyncService, injected by Fx.
type NotificationSyncServiceParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Store     usecase.NotificationUsecase
	Feed      service.ChangeFeed
	Overrides usecase.PushOverrideStore
	Logger    *slog.Logger
}

// NewNotificationSyncService creates the synchronization service. Its Init and Dispose are bound to the Fx lifecycle.
func NewNotificationSyncService(params NotificationSyncServiceParams) usecase.NotificationSyncUsecase {
	srv := newNotificationSyncService(params.Store, params.Feed, params.Overrides, params.Config.Notification, params.Logger)

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStart: srv.Init,
			OnStop:  srv.Dispose,
		})
	}

	return srv
}

func newNotificationSyncService(
	store usecase.NotificationUsecase,
	feed service.ChangeFeed,
	overrides usecase.PushOverrideStore,
	cfg *config.NotificationConfig,
	logger *slog.Logger,
) *notificationSyncService {
	return &notificationSyncService{
		store:     store,
		feed:      feed,
		overrides: overrides,
		recentCap: cfg.RecentCapacity,
		unreadCap: cfg.UnreadCapacity,
		logger:    logger,
		owners:    make(map[uuid.UUID]*ownerState),
	}
}

func (srv *notificationSyncService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Init starts accepting observers
func (srv *notificationSyncService) Init(ctx context.Context) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if srv.disposed {
		return domainerrors.ErrSyncDisposed
	}
	srv.started = true
	srv.log(ctx).Info("[Sync] Notification sync service started")

	return nil
}

// Dispose releases every view and its feed subscription
func (srv *notificationSyncService) Dispose(ctx context.Context) error {
	srv.mu.Lock()
	if srv.disposed {
		srv.mu.Unlock()

		return nil
	}
	srv.disposed = true

	handles := make([]service.FeedHandle, 0, len(srv.owners))
	for ownerID, st := range srv.owners {
		st.disposed = true
		if st.handle != nil {
			handles = append(handles, st.handle)
		}
		delete(srv.owners, ownerID)
	}
	srv.mu.Unlock()

	for _, handle := range handles {
		srv.feed.Unsubscribe(handle)
	}
	srv.log(ctx).Info("[Sync] Notification sync service disposed", slog.Int("released_views", len(handles)))

	return nil
}

// ObserveRecent registers an observer of the owner's recent window
func (srv *notificationSyncService) ObserveRecent(
	ctx context.Context,
	ownerID uuid.UUID,
	onChange func([]*entity.Notification),
) (usecase.Subscription, error) {
	return srv.observe(ctx, ownerID, func(st *ownerState, id uint64) {
		st.recentObservers[id] = onChange
		rows := st.view.Recent()
		srv.enqueue(func() { onChange(rows) })
	})
}

// ObserveUnreadCount registers an observer of the owner's unread count
func (srv *notificationSyncService) ObserveUnreadCount(ctx context.Context, ownerID uuid.UUID, onChange func(int)) (usecase.Subscription, error) {
	return srv.observe(ctx, ownerID, func(st *ownerState, id uint64) {
		st.unreadObservers[id] = onChange
		count := st.view.UnreadCount()
		srv.enqueue(func() { onChange(count) })
	})
}

// ObserveStale registers an observer of the stale-data warning
func (srv *notificationSyncService) ObserveStale(ctx context.Context, ownerID uuid.UUID, onChange func(bool)) (usecase.Subscription, error) {
	return srv.observe(ctx, ownerID, func(st *ownerState, id uint64) {
		st.staleObservers[id] = onChange
		stale := st.view.stale
		srv.enqueue(func() { onChange(stale) })
	})
}

// observe attaches an observer, creating the owner's view, feed subscription and initial load
// when it is the first one. Observers joining while that subscription is pending wait for it
// and start over when it fails.
func (srv *notificationSyncService) observe(ctx context.Context, ownerID uuid.UUID, register func(*ownerState, uint64)) (usecase.Subscription, error) {
	srv.mu.Lock()
	for {
		if !srv.started || srv.disposed {
			srv.mu.Unlock()

			return nil, domainerrors.ErrSyncDisposed
		}

		st, exists := srv.owners[ownerID]
		if !exists || !st.subscribing() {
			break
		}
		ready := st.ready
		srv.mu.Unlock()

		select {
		case <-ready:
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		}
		srv.mu.Lock()
	}

	st, exists := srv.owners[ownerID]
	if !exists {
		st = &ownerState{
			view:            newSubscriberView(ownerID, srv.recentCap, srv.unreadCap),
			ready:           make(chan struct{}),
			recentObservers: make(map[uint64]func([]*entity.Notification)),
			unreadObservers: make(map[uint64]func(int)),
			staleObservers:  make(map[uint64]func(bool)),
		}
		st.view.stale = srv.feed.Stale()
		srv.owners[ownerID] = st
	}
	srv.nextObserverID++
	observerID := srv.nextObserverID
	register(st, observerID)
	srv.mu.Unlock()
	srv.drain()

	sub := &observerSubscription{srv: srv, ownerID: ownerID, state: st, id: observerID}
	if exists {
		return sub, nil
	}

	handle, err := srv.feed.Subscribe(ownerID, &viewListener{srv: srv, ownerID: ownerID, state: st})
	if err != nil {
		srv.mu.Lock()
		st.disposed = true
		if srv.owners[ownerID] == st {
			delete(srv.owners, ownerID)
		}
		close(st.ready)
		srv.mu.Unlock()

		return nil, domainerrors.NewTransportError(err, "failed to subscribe to change feed")
	}

	srv.mu.Lock()
	close(st.ready)
	if st.disposed {
		srv.mu.Unlock()
		srv.feed.Unsubscribe(handle)

		return sub, nil
	}
	st.handle = handle
	srv.mu.Unlock()

	srv.log(ctx).Debug("[Sync] View created", slog.Any("owner_id", ownerID))

	if err := srv.refetchState(ctx, ownerID, st); err != nil {
		srv.log(ctx).Warn("[Sync] Initial load failed, waiting for feed resync",
			slog.Any("owner_id", ownerID),
			slog.Any("error", err),
		)
	}

	return sub, nil
}

func (srv *notificationSyncService) unsubscribe(ownerID uuid.UUID, st *ownerState, observerID uint64) {
	srv.mu.Lock()
	delete(st.recentObservers, observerID)
	delete(st.unreadObservers, observerID)
	delete(st.staleObservers, observerID)

	var handle service.FeedHandle
	if st.observerCount() == 0 && !st.disposed {
		st.disposed = true
		handle = st.handle
		if srv.owners[ownerID] == st {
			delete(srv.owners, ownerID)
		}
	}
	srv.mu.Unlock()

	if handle != nil {
		srv.feed.Unsubscribe(handle)
		srv.logger.Debug("[Sync] View released", slog.Any("owner_id", ownerID))
	}
}

// MarkRead optimistically sets the read flag and reverts it when the store call fails
func (srv *notificationSyncService) MarkRead(ctx context.Context, ownerID, id uuid.UUID, read bool) error {
	st := srv.mutate(ownerID, func(view *subscriberView) {
		view.BeginMarkRead(id, read)
	})

	row, err := srv.store.UpdateNotificationRead(ctx, ownerID, id, read)

	srv.resolve(st, func(view *subscriberView) {
		view.ResolveMarkRead(id, row, err)
	})

	if err != nil {
		srv.log(ctx).Warn("[Sync] Mark read failed",
			slog.Any("owner_id", ownerID),
			slog.Any("notification_id", id),
			slog.Any("error", err),
		)

		return err
	}

	return nil
}

// MarkAllRead marks every unread notification of the owner read in one batch
func (srv *notificationSyncService) MarkAllRead(ctx context.Context, ownerID uuid.UUID) (*entity.BatchResult, error) {
	var ids []uuid.UUID
	st := srv.mutate(ownerID, func(view *subscriberView) {
		ids = view.UnreadIDs()
		for _, id := range ids {
			view.BeginMarkRead(id, true)
		}
	})

	if st == nil {
		unreadIDs, err := srv.fetchUnreadIDs(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		ids = unreadIDs
	}

	if len(ids) == 0 {
		return &entity.BatchResult{}, nil
	}

	rows, err := srv.store.MarkNotificationsRead(ctx, ownerID, ids)

	srv.resolve(st, func(view *subscriberView) {
		confirmed := make(map[uuid.UUID]*entity.Notification, len(rows))
		for _, row := range rows {
			confirmed[row.ID] = row
		}
		for _, id := range ids {
			view.ResolveMarkRead(id, confirmed[id], err)
		}
	})

	if err != nil {
		srv.log(ctx).Warn("[Sync] Mark all read failed, batch reverted",
			slog.Any("owner_id", ownerID),
			slog.Int("requested", len(ids)),
			slog.Any("error", err),
		)

		return nil, err
	}

	result := &entity.BatchResult{Requested: len(ids), Affected: len(rows)}
	if result.Mismatch() {
		srv.log(ctx).Info("[Sync] Mark all read affected fewer rows than requested",
			slog.Any("owner_id", ownerID),
			slog.Int("requested", result.Requested),
			slog.Int("affected", result.Affected),
		)
	}

	return result, nil
}

// Delete optimistically removes one notification
func (srv *notificationSyncService) Delete(ctx context.Context, ownerID, id uuid.UUID) (*entity.BatchResult, error) {
	return srv.remove(ctx, ownerID, []uuid.UUID{id}, func() (int, error) {
		return srv.store.DeleteNotification(ctx, ownerID, id)
	})
}

// BulkDelete optimistically removes several notifications in one batch
func (srv *notificationSyncService) BulkDelete(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) (*entity.BatchResult, error) {
	ids = util.UniqueIDs(ids)

	return srv.remove(ctx, ownerID, ids, func() (int, error) {
		return srv.store.BulkDeleteNotifications(ctx, ownerID, ids)
	})
}

func (srv *notificationSyncService) remove(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID, call func() (int, error)) (*entity.BatchResult, error) {
	if len(ids) == 0 {
		return &entity.BatchResult{}, nil
	}

	st := srv.mutate(ownerID, func(view *subscriberView) {
		view.BeginRemove(ids)
	})

	deleted, err := call()

	srv.resolve(st, func(view *subscriberView) {
		view.ResolveRemove(ids, err)
	})

	if err != nil {
		srv.log(ctx).Warn("[Sync] Delete failed, rows restored",
			slog.Any("owner_id", ownerID),
			slog.Int("requested", len(ids)),
			slog.Any("error", err),
		)

		return nil, err
	}

	return &entity.BatchResult{Requested: len(ids), Affected: deleted}, nil
}

// Refetch replaces the owner's view with store truth. Concurrent calls for one view share a single query.
func (srv *notificationSyncService) Refetch(ctx context.Context, ownerID uuid.UUID) error {
	srv.mu.Lock()
	st := srv.owners[ownerID]
	srv.mu.Unlock()

	if st == nil {
		return nil
	}

	return srv.refetchState(ctx, ownerID, st)
}

func (srv *notificationSyncService) refetchState(ctx context.Context, ownerID uuid.UUID, st *ownerState) error {
	key := fmt.Sprintf("%s/%p", ownerID, st)
	result := srv.refetchGroup.DoChan(key, func() (any, error) {
		// the query is shared, so no single caller's cancellation may abort it
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refetchTimeout)
		defer cancel()

		srv.mu.Lock()
		if st.disposed {
			srv.mu.Unlock()

			return nil, nil
		}
		st.view.BeginRefetch()
		srv.mu.Unlock()

		recentPage, err := srv.store.ListNotifications(ctx, ownerID, entity.NotificationFilter{}, entity.Page{Limit: srv.recentCap})
		var unreadPage *entity.NotificationPage
		if err == nil {
			unread := false
			unreadPage, err = srv.store.ListNotifications(ctx, ownerID, entity.NotificationFilter{Read: &unread}, entity.Page{Limit: srv.unreadCap})
		}

		srv.mu.Lock()
		if st.disposed {
			srv.mu.Unlock()

			return nil, nil
		}
		if err != nil {
			st.view.CompleteRefetch(nil, nil, err)
			srv.mu.Unlock()

			return nil, domainerrors.NewTransportError(err, "failed to refetch notifications")
		}
		st.view.CompleteRefetch(recentPage.Rows, unreadPage.Rows, nil)
		srv.notifyLocked(st)
		srv.mu.Unlock()
		srv.drain()

		return nil, nil
	})

	select {
	case res := <-result:
		return res.Err
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// SetPushEnabled sets the unsaved local push override for the owner
func (srv *notificationSyncService) SetPushEnabled(ownerID uuid.UUID, enabled bool) {
	srv.overrides.SetOverride(ownerID, enabled)
}

// mutate runs fn against the owner's live view, if any, and notifies observers.
// It returns the state so the outcome can be resolved against the same view.
func (srv *notificationSyncService) mutate(ownerID uuid.UUID, fn func(*subscriberView)) *ownerState {
	srv.mu.Lock()
	st := srv.owners[ownerID]
	if st == nil || st.disposed {
		srv.mu.Unlock()

		return nil
	}
	fn(st.view)
	srv.notifyLocked(st)
	srv.mu.Unlock()
	srv.drain()

	return st
}

// resolve applies a store outcome unless the view was released while the call was in flight.
func (srv *notificationSyncService) resolve(st *ownerState, fn func(*subscriberView)) {
	if st == nil {
		return
	}

	srv.mu.Lock()
	if st.disposed {
		srv.mu.Unlock()

		return
	}
	fn(st.view)
	srv.notifyLocked(st)
	srv.mu.Unlock()
	srv.drain()
}

func (srv *notificationSyncService) applyEvent(ownerID uuid.UUID, st *ownerState, event *entity.ChangeEvent) {
	if event.Row.OwnerID != ownerID {
		return
	}

	srv.mu.Lock()
	if st.disposed {
		srv.mu.Unlock()

		return
	}
	if st.view.Apply(event) {
		srv.notifyLocked(st)
	}
	srv.mu.Unlock()
	srv.drain()
}

func (srv *notificationSyncService) setStale(st *ownerState, stale bool) {
	srv.mu.Lock()
	if st.disposed || st.view.stale == stale {
		srv.mu.Unlock()

		return
	}
	st.view.stale = stale
	for _, onChange := range st.staleObservers {
		srv.enqueue(func() { onChange(stale) })
	}
	srv.mu.Unlock()
	srv.drain()
}

func (srv *notificationSyncService) fetchUnreadIDs(ctx context.Context, ownerID uuid.UUID) ([]uuid.UUID, error) {
	unread := false
	page, err := srv.store.ListNotifications(ctx, ownerID, entity.NotificationFilter{Read: &unread}, entity.Page{Limit: srv.unreadCap})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unread notifications")
	}

	ids := make([]uuid.UUID, 0, len(page.Rows))
	for _, row := range page.Rows {
		ids = append(ids, row.ID)
	}

	return ids, nil
}

// notifyLocked queues the current snapshot for every recent and unread observer. Caller holds srv.mu.
func (srv *notificationSyncService) notifyLocked(st *ownerState) {
	for _, onChange := range st.recentObservers {
		rows := st.view.Recent()
		srv.enqueue(func() { onChange(rows) })
	}

	count := st.view.UnreadCount()
	for _, onChange := range st.unreadObservers {
		srv.enqueue(func() { onChange(count) })
	}
}

func (srv *notificationSyncService) enqueue(fn func()) {
	srv.outboxMu.Lock()
	srv.outbox = append(srv.outbox, fn)
	srv.outboxMu.Unlock()
}

// drain runs queued observer callbacks outside srv.mu, one at a time and in queue order.
// A callback that re-enters the service only queues more work for the active drainer.
func (srv *notificationSyncService) drain() {
	srv.outboxMu.Lock()
	if srv.draining {
		srv.outboxMu.Unlock()

		return
	}
	srv.draining = true

	for len(srv.outbox) > 0 {
		fn := srv.outbox[0]
		srv.outbox[0] = nil
		srv.outbox = srv.outbox[1:]
		srv.outboxMu.Unlock()

		srv.runObserver(fn)

		srv.outboxMu.Lock()
	}
	srv.draining = false
	srv.outboxMu.Unlock()
}

func (srv *notificationSyncService) runObserver(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			srv.logger.Error("[Sync] Observer panicked", slog.Any("panic", r))
		}
	}()
	fn()
}

// viewListener feeds change events of one owner into its view.
type viewListener struct {
	srv     *notificationSyncService
	ownerID uuid.UUID
	state   *ownerState
}

func (l *viewListener) OnChange(event *entity.ChangeEvent) {
	l.srv.applyEvent(l.ownerID, l.state, event)
}

// OnResync refetches in the background so the feed receiver is never blocked on the store.
func (l *viewListener) OnResync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refetchTimeout)
		defer cancel()

		if err := l.srv.refetchState(ctx, l.ownerID, l.state); err != nil && !errors.IsCanceled(err) {
			l.srv.logger.Warn("[Sync] Resync refetch failed",
				slog.Any("owner_id", l.ownerID),
				slog.Any("error", err),
			)
		}
	}()
}

func (l *viewListener) OnStale(stale bool) {
	l.srv.setStale(l.state, stale)
}

type observerSubscription struct {
	srv     *notificationSyncService
	ownerID uuid.UUID
	state   *ownerState
	id      uint64
	once    sync.Once
}

func (s *observerSubscription) Unsubscribe() {
	s.once.Do(func() {
		s.srv.unsubscribe(s.ownerID, s.state, s.id)
	})
}

package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	dispatchWorkers   = 4
	dispatchQueueSize = 256
	dispatchTimeout   = 30 * time.Second

	// rune limits of the visible push text
	maxPushTitleRunes = 120
	maxPushBodyRunes  = 240
)

type pushDispatcher struct {
	tokenRepo    repository.PushTokenRepository
	deliveryRepo repository.PushDeliveryRepository
	pushSvc      service.PushService
	resolver     service.SettingsResolver
	surfaces     usecase.SurfaceTracker
	feed         service.ChangeFeed
	logger       *slog.Logger

	sent *dedupCache

	mu      sync.Mutex
	queue   chan *entity.ChangeEvent
	handle  service.FeedHandle
	stopped bool
	wg      sync.WaitGroup
}

// PushDispatcherParams holds dependencies for PushDispatcher, injected by Fx.
type PushDispatcherParams struct {
	fx.In

	Lc           fx.Lifecycle
	Config       *config.Config
	TokenRepo    repository.PushTokenRepository
	DeliveryRepo repository.PushDeliveryRepository
	PushSvc      service.PushService
	Resolver     service.SettingsResolver
	Surfaces     usecase.SurfaceTracker
	Feed         service.ChangeFeed
	Logger       *slog.Logger
}

// NewPushDispatcher creates the dispatcher. It starts and stops with the Fx lifecycle.
func NewPushDispatcher(params PushDispatcherParams) usecase.PushDispatcher {
	d := &pushDispatcher{
		tokenRepo:    params.TokenRepo,
		deliveryRepo: params.DeliveryRepo,
		pushSvc:      params.PushSvc,
		resolver:     params.Resolver,
		surfaces:     params.Surfaces,
		feed:         params.Feed,
		logger:       params.Logger,
		sent:         newDedupCache(params.Config.Notification.DedupCacheSize),
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStart: d.Start,
			OnStop:  d.Stop,
		})
	}

	return d
}

// Start subscribes to every owner's change feed and starts the send workers
func (d *pushDispatcher) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.queue != nil {
		return nil
	}

	handle, err := d.feed.SubscribeAll(d)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe dispatcher to change feed")
	}
	d.handle = handle
	d.queue = make(chan *entity.ChangeEvent, dispatchQueueSize)

	for range dispatchWorkers {
		d.wg.Add(1)
		go d.work(d.queue)
	}

	d.logger.Info("[Dispatcher] Push dispatcher started", slog.Int("workers", dispatchWorkers))

	return nil
}

// Stop unsubscribes and waits for queued events
func (d *pushDispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.stopped || d.queue == nil {
		d.stopped = true
		d.mu.Unlock()

		return nil
	}
	d.stopped = true
	handle := d.handle
	close(d.queue)
	d.mu.Unlock()

	d.feed.Unsubscribe(handle)

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("[Dispatcher] Push dispatcher stopped")

		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "dispatcher workers did not finish")
	}
}

func (d *pushDispatcher) work(queue <-chan *entity.ChangeEvent) {
	defer d.wg.Done()

	for event := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		if _, err := d.Dispatch(ctx, event); err != nil {
			level := slog.LevelError
			if errors.IsCanceled(err) {
				level = slog.LevelWarn
			}
			d.logger.Log(ctx, level, "[Dispatcher] Failed to dispatch push",
				slog.Any("notification_id", event.Row.ID),
				slog.Any("error", err),
			)
		}
		cancel()
	}
}

// OnChange queues INSERT events without blocking the feed. A full queue drops the event.
func (d *pushDispatcher) OnChange(event *entity.ChangeEvent) {
	if event.Operation != entity.ChangeInsert {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || d.queue == nil {
		return
	}

	select {
	case d.queue <- event:
	default:
		d.logger.Warn("[Dispatcher] Queue full, push dropped", slog.Any("notification_id", event.Row.ID))
	}
}

// OnResync is a no-op: pushes are only sent for inserts seen live.
func (d *pushDispatcher) OnResync() {}

func (d *pushDispatcher) OnStale(bool) {}

// Dispatch sends the push of an INSERT event to every active device of the owner,
// at most once per (notification, device)
func (d *pushDispatcher) Dispatch(ctx context.Context, event *entity.ChangeEvent) (int, error) {
	if event == nil || event.Operation != entity.ChangeInsert {
		return 0, nil
	}

	row := &event.Row
	logger := d.logger.With(slog.Any("notification_id", row.ID), slog.Any("owner_id", row.OwnerID))

	if row.Read {
		return 0, nil
	}
	if !d.resolver.Resolve(ctx, row.OwnerID) {
		logger.Debug("[Dispatcher] Push disabled for owner, skipping")

		return 0, nil
	}
	if d.surfaces.Watching(row.OwnerID) {
		logger.Debug("[Dispatcher] Owner is looking at the notification list, skipping")

		return 0, nil
	}

	tokens, err := d.tokenRepo.FindActivePushTokensByOwner(ctx, row.OwnerID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find active push tokens")
	}

	sent := 0
	for _, token := range tokens {
		if d.sendOnce(ctx, logger, row, token) {
			sent++
		}
	}

	if sent > 0 {
		logger.Info("[Dispatcher] Push sent", slog.Int("devices", sent))
	}

	return sent, nil
}

// sendOnce claims the (notification, device) key in memory and in the store, then sends.
func (d *pushDispatcher) sendOnce(ctx context.Context, logger *slog.Logger, row *entity.Notification, token *entity.PushToken) bool {
	key := row.ID.String() + "/" + token.DeviceID
	if !d.sent.Add(key) {
		return false
	}

	now := time.Now().UTC()
	claimed, err := d.deliveryRepo.ClaimDelivery(ctx, &entity.PushDelivery{
		ID:             uuid.New(),
		NotificationID: row.ID,
		OwnerID:        row.OwnerID,
		DeviceID:       token.DeviceID,
		Status:         entity.DeliveryStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		d.sent.Forget(key)
		logger.Error("[Dispatcher] Failed to claim delivery", slog.String("device_id", token.DeviceID), slog.Any("error", err))

		return false
	}
	if !claimed {
		return false
	}

	messageID, err := d.pushSvc.Send(ctx, buildPushMessage(row, token.Token))
	if err != nil {
		logger.Warn("[Dispatcher] Push send failed",
			slog.String("device_id", token.DeviceID),
			slog.Any("error", err),
		)
		d.recordResult(ctx, logger, row.ID, token.DeviceID, entity.DeliveryStatusFailed, "", err.Error())

		if errors.Is(err, service.ErrInvalidPushToken) {
			if err := d.tokenRepo.DeactivateByToken(ctx, token.Token); err != nil {
				logger.Warn("[Dispatcher] Failed to deactivate invalid token",
					slog.String("device_id", token.DeviceID),
					slog.Any("error", err),
				)
			}
		}

		return false
	}

	d.recordResult(ctx, logger, row.ID, token.DeviceID, entity.DeliveryStatusSent, messageID, "")

	return true
}

func (d *pushDispatcher) recordResult(ctx context.Context, logger *slog.Logger, notificationID uuid.UUID, deviceID, status, messageID, errMessage string) {
	if err := d.deliveryRepo.UpdateDeliveryResult(ctx, notificationID, deviceID, status, messageID, errMessage); err != nil {
		logger.Warn("[Dispatcher] Failed to record delivery result",
			slog.String("device_id", deviceID),
			slog.String("status", status),
			slog.Any("error", err),
		)
	}
}

func buildPushMessage(row *entity.Notification, token string) *service.PushMessage {
	data := map[string]string{
		"notification_id": row.ID.String(),
		"category":        string(row.Category),
	}
	if row.ActionURL != nil {
		data["action_url"] = *row.ActionURL
	}

	return &service.PushMessage{
		Token: token,
		Title: util.Truncate(row.Title, maxPushTitleRunes),
		Body:  util.Truncate(row.Content, maxPushBodyRunes),
		Data:  data,
	}
}

package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"cloud.google.com/go/pubsub/v2"
)

// receiveFunc matches pubsub.Subscriber.Receive.
type receiveFunc func(ctx context.Context, handler func(context.Context, *pubsub.Message)) error

// googleReceiver pulls change events from a subscription into the hub. A dropped stream
// is retried with exponential backoff; every restart asks the hub for a resync and
// repeated failures mark the feed stale until a stream stays up again.
type googleReceiver struct {
	receive            receiveFunc
	hub                *Hub
	backoff            time.Duration
	maxBackoff         time.Duration
	healthyAfter       time.Duration
	staleAfterFailures int
	logger             *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func newGoogleReceiver(
	receive receiveFunc,
	hub *Hub,
	backoff, maxBackoff, healthyAfter time.Duration,
	staleAfterFailures int,
	logger *slog.Logger,
) *googleReceiver {
	return &googleReceiver{
		receive:            receive,
		hub:                hub,
		backoff:            backoff,
		maxBackoff:         maxBackoff,
		healthyAfter:       healthyAfter,
		staleAfterFailures: staleAfterFailures,
		logger:             logger,
	}
}

func (r *googleReceiver) Start(context.Context) error {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.run(ctx)
	}()

	return nil
}

func (r *googleReceiver) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *googleReceiver) run(ctx context.Context) {
	delay := r.backoff
	failures := 0
	reconnecting := false

	for ctx.Err() == nil {
		if reconnecting {
			r.hub.NotifyResync()
		}

		// A stream that delivers a message or stays up for healthyAfter counts as reconnected.
		var healthy atomic.Bool
		markHealthy := func() {
			if healthy.CompareAndSwap(false, true) {
				r.hub.SetStale(false)
			}
		}
		timer := time.AfterFunc(r.healthyAfter, markHealthy)
		err := r.receive(ctx, func(_ context.Context, msg *pubsub.Message) {
			markHealthy()
			r.handle(msg)
		})
		timer.Stop()
		if ctx.Err() != nil {
			return
		}

		if healthy.Load() {
			failures = 0
			delay = r.backoff
		}
		failures++
		if failures >= r.staleAfterFailures {
			r.hub.SetStale(true)
		}

		r.logger.Warn("[Feed] Subscription stream dropped, reconnecting",
			slog.Any("error", err),
			slog.Int("consecutive_failures", failures),
			slog.Duration("backoff", delay),
		)

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
		delay = min(delay*2, r.maxBackoff)
		reconnecting = true
	}
}

// handle acks every message: malformed payloads would never parse on redelivery either.
func (r *googleReceiver) handle(msg *pubsub.Message) {
	defer msg.Ack()

	event, err := decodeEvent(msg.Data)
	if err != nil {
		r.logger.Error("[Feed] Dropping malformed change event",
			slog.String("message_id", msg.ID),
			slog.Any("error", err),
		)

		return
	}

	r.hub.Dispatch(event)
}

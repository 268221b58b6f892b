package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"backoffice/internal/delivery/api/middleware"
	"backoffice/internal/delivery/api/response"
	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
	"backoffice/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultStreamHeartbeat = 15 * time.Second

// SSE event names
const (
	eventSurface     = "surface"
	eventRecent      = "recent"
	eventUnreadCount = "unread_count"
	eventStale       = "stale"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	SyncUC   usecase.NotificationSyncUsecase
	Surfaces usecase.SurfaceTracker
	Logger   *slog.Logger
}

// StreamHandler serves the live notification views to UI surfaces over Server-Sent Events.
type StreamHandler struct {
	syncUC    usecase.NotificationSyncUsecase
	surfaces  usecase.SurfaceTracker
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		syncUC:    params.SyncUC,
		surfaces:  params.Surfaces,
		logger:    params.Logger,
		heartbeat: defaultStreamHeartbeat,
	}
}

// StreamRequest represents the query of the stream endpoint
type StreamRequest struct {
	SurfaceID  string `query:"surface_id" validate:"omitempty,max=128"`
	Visible    string `query:"visible" validate:"omitempty,boolean"`
	Foreground string `query:"foreground" validate:"omitempty,boolean"`
}

// UpdateSurfaceRequest represents the request body for reporting surface visibility
type UpdateSurfaceRequest struct {
	Visible    *bool `json:"visible" validate:"required"`
	Foreground *bool `json:"foreground" validate:"required"`
}

// UnreadCountPayload is the data of an unread_count event
type UnreadCountPayload struct {
	Count int `json:"count"`
}

// StalePayload is the data of a stale event
type StalePayload struct {
	Stale bool `json:"stale"`
}

// SurfacePayload is the data of the surface event sent when a stream opens
type SurfacePayload struct {
	SurfaceID string `json:"surface_id"`
}

// Stream handles GET /api/v1/notifications/stream
func (h *StreamHandler) Stream(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	var req StreamRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	surfaceID := req.SurfaceID
	if surfaceID == "" {
		surfaceID = uuid.NewString()
	}
	if existing, found := h.surfaces.Surface(surfaceID); found && existing.OwnerID != ownerID {
		return response.HandleAppError(c, domainerrors.ErrForbidden)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(
		slog.String("owner_id", ownerID.String()),
		slog.String("surface_id", surfaceID),
	)

	h.surfaces.UpdateSurface(&entity.SurfaceState{
		ID:         surfaceID,
		OwnerID:    ownerID,
		Visible:    parseBoolDefault(req.Visible, true),
		Foreground: parseBoolDefault(req.Foreground, true),
	})
	defer h.surfaces.RemoveSurface(surfaceID)

	frames := newFrameQueue()

	recentSub, err := h.syncUC.ObserveRecent(ctx, ownerID, func(rows []*entity.Notification) {
		frames.set(eventRecent, rows)
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer recentSub.Unsubscribe()

	unreadSub, err := h.syncUC.ObserveUnreadCount(ctx, ownerID, func(count int) {
		frames.set(eventUnreadCount, UnreadCountPayload{Count: count})
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer unreadSub.Unsubscribe()

	staleSub, err := h.syncUC.ObserveStale(ctx, ownerID, func(stale bool) {
		frames.set(eventStale, StalePayload{Stale: stale})
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer staleSub.Unsubscribe()

	res := c.Response()
	// streams outlive the server write timeout
	_ = http.NewResponseController(res.Writer).SetWriteDeadline(time.Time{})

	header := res.Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set(echo.HeaderConnection, "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if err := writeEvent(res, eventSurface, SurfacePayload{SurfaceID: surfaceID}); err != nil {
		return nil
	}
	res.Flush()

	openedAt := time.Now()
	logger.Debug("[Stream] Opened")
	defer func() {
		logger.Debug("[Stream] Closed", slog.String("duration", util.FormatDuration(time.Since(openedAt))))
	}()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-frames.ready():
			for _, f := range frames.drain() {
				if err := writeEvent(res, f.event, f.data); err != nil {
					logger.Debug("[Stream] Write failed", slog.Any("error", err))

					return nil
				}
			}
			res.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// UpdateSurface handles PUT /api/v1/notifications/surfaces/:id
func (h *StreamHandler) UpdateSurface(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return unauthorized(c)
	}

	surfaceID := c.Param("id")
	existing, found := h.surfaces.Surface(surfaceID)
	if !found {
		return response.HandleAppError(c, domainerrors.ErrNotFound.WithDetails("surface is not streaming"))
	}
	if existing.OwnerID != ownerID {
		return response.HandleAppError(c, domainerrors.ErrForbidden)
	}

	var req UpdateSurfaceRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	state := &entity.SurfaceState{
		ID:         surfaceID,
		OwnerID:    ownerID,
		Visible:    *req.Visible,
		Foreground: *req.Foreground,
		UpdatedAt:  time.Now().UTC(),
	}
	h.surfaces.UpdateSurface(state)

	return response.Success(c, http.StatusOK, state)
}

func parseBoolDefault(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}

	return value
}

func writeEvent(w http.ResponseWriter, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)

	return err
}

type frame struct {
	event string
	data  any
}

// frameQueue keeps only the latest value per event so slow clients never block observers.
type frameQueue struct {
	mu      sync.Mutex
	order   []string
	pending map[string]any
	wake    chan struct{}
}

func newFrameQueue() *frameQueue {
	return &frameQueue{
		pending: make(map[string]any),
		wake:    make(chan struct{}, 1),
	}
}

func (q *frameQueue) set(event string, data any) {
	q.mu.Lock()
	if _, queued := q.pending[event]; !queued {
		q.order = append(q.order, event)
	}
	q.pending[event] = data
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *frameQueue) ready() <-chan struct{} {
	return q.wake
}

func (q *frameQueue) drain() []frame {
	q.mu.Lock()
	defer q.mu.Unlock()

	frames := make([]frame, 0, len(q.order))
	for _, event := range q.order {
		frames = append(frames, frame{event: event, data: q.pending[event]})
	}
	q.order = q.order[:0]
	clear(q.pending)

	return frames
}

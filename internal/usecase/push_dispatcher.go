package usecase

import (
	"context"

	"backoffice/internal/domain/entity"

	"github.com/google/uuid"
)

// PushDispatcher turns INSERT change events into device pushes, at most once per (notification, device)
type PushDispatcher interface {
	// Start subscribes the dispatcher to the change feed of every owner
	Start(ctx context.Context) error

	// Stop unsubscribes and waits for queued events to drain
	Stop(ctx context.Context) error

	// Dispatch handles one change event and returns how many pushes were sent
	Dispatch(ctx context.Context, event *entity.ChangeEvent) (int, error)
}

// SurfaceTracker records the visibility of open UI surfaces
type SurfaceTracker interface {
	UpdateSurface(state *entity.SurfaceState)
	RemoveSurface(surfaceID string)

	// Surface returns a copy of the last state reported for the surface
	Surface(surfaceID string) (*entity.SurfaceState, bool)

	// Watching reports whether any surface of the owner is visible and foregrounded
	Watching(ownerID uuid.UUID) bool
}

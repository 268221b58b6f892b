package impl

import (
	"sync"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/usecase"

	"github.com/google/uuid"
)

type surfaceTracker struct {
	mu       sync.RWMutex
	surfaces map[string]*entity.SurfaceState
}

// NewSurfaceTracker creates an empty surface registry
func NewSurfaceTracker() usecase.SurfaceTracker {
	return &surfaceTracker{
		surfaces: make(map[string]*entity.SurfaceState),
	}
}

func (t *surfaceTracker) UpdateSurface(state *entity.SurfaceState) {
	if state == nil || state.ID == "" {
		return
	}

	stored := *state
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = time.Now().UTC()
	}

	t.mu.Lock()
	t.surfaces[state.ID] = &stored
	t.mu.Unlock()
}

func (t *surfaceTracker) RemoveSurface(surfaceID string) {
	t.mu.Lock()
	delete(t.surfaces, surfaceID)
	t.mu.Unlock()
}

func (t *surfaceTracker) Surface(surfaceID string) (*entity.SurfaceState, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	state, ok := t.surfaces[surfaceID]
	if !ok {
		return nil, false
	}

	copied := *state

	return &copied, true
}

func (t *surfaceTracker) Watching(ownerID uuid.UUID) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, state := range t.surfaces {
		if state.OwnerID == ownerID && state.Watching() {
			return true
		}
	}

	return false
}

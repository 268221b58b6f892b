package entity

import (
	"time"

	"github.com/google/uuid"
)

// SurfaceState is the visibility reported by one open UI surface (popover, screen, tab).
type SurfaceState struct {
	ID         string    `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Visible    bool      `json:"visible"`    // The notification list is on screen.
	Foreground bool      `json:"foreground"` // The app or tab is in the foreground.
	UpdatedAt  time.Time `json:"updated_at"`
}

// Watching reports whether the owner is currently looking at the notification list on this surface.
func (s *SurfaceState) Watching() bool {
	return s.Visible && s.Foreground
}

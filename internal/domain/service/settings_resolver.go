package service

import (
	"context"

	"github.com/google/uuid"
)

// SettingsResolver decides whether push is enabled for an owner.
// Precedence: unsaved local override, then cached server setting, then the configured default.
type SettingsResolver interface {
	Resolve(ctx context.Context, ownerID uuid.UUID) bool
}

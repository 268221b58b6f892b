package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/repository"
	"backoffice/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type cachedSetting struct {
	enabled   bool
	saved     bool
	expiresAt time.Time
}

// SettingsResolver resolves the push setting of an owner from three layers:
// the unsaved local override, the cached server setting and the configured default.
type SettingsResolver struct {
	settingRepo    repository.NotificationSettingRepository
	defaultEnabled bool
	ttl            time.Duration
	now            func() time.Time
	logger         *slog.Logger

	mu        sync.RWMutex
	overrides map[uuid.UUID]bool
	cache     map[uuid.UUID]cachedSetting
}

// SettingsResolverParams holds dependencies for SettingsResolver, injected by Fx.
type SettingsResolverParams struct {
	fx.In

	Config      *config.Config
	SettingRepo repository.NotificationSettingRepository
	Logger      *slog.Logger
}

// NewSettingsResolver creates a resolver with empty override and cache layers
func NewSettingsResolver(params SettingsResolverParams) *SettingsResolver {
	return &SettingsResolver{
		settingRepo:    params.SettingRepo,
		defaultEnabled: params.Config.Notification.PushDefaultEnabled,
		ttl:            params.Config.Notification.SettingsCacheTTL,
		now:            time.Now,
		logger:         params.Logger,
		overrides:      make(map[uuid.UUID]bool),
		cache:          make(map[uuid.UUID]cachedSetting),
	}
}

// Resolve reports whether push is enabled for the owner
func (r *SettingsResolver) Resolve(ctx context.Context, ownerID uuid.UUID) bool {
	enabled, _ := r.resolve(ctx, ownerID)

	return enabled
}

// resolve also reports which layer answered: "override", "saved" or "default".
func (r *SettingsResolver) resolve(ctx context.Context, ownerID uuid.UUID) (bool, string) {
	r.mu.RLock()
	if enabled, ok := r.overrides[ownerID]; ok {
		r.mu.RUnlock()

		return enabled, settingSourceOverride
	}
	cached, ok := r.cache[ownerID]
	r.mu.RUnlock()

	if !ok || !r.now().Before(cached.expiresAt) {
		var err error
		cached, err = r.load(ctx, ownerID)
		if err != nil {
			r.logger.Warn("[Settings] Failed to load saved setting, using default",
				slog.Any("owner_id", ownerID),
				slog.Any("error", err),
			)

			return r.defaultEnabled, settingSourceDefault
		}
	}

	if cached.saved {
		return cached.enabled, settingSourceSaved
	}

	return r.defaultEnabled, settingSourceDefault
}

func (r *SettingsResolver) load(ctx context.Context, ownerID uuid.UUID) (cachedSetting, error) {
	setting, err := r.settingRepo.FindSetting(ctx, ownerID)
	if err != nil && !errors.Is(err, repository.ErrNotificationSettingNotFound) {
		return cachedSetting{}, errors.Wrap(err, "failed to find notification setting")
	}

	cached := cachedSetting{expiresAt: r.now().Add(r.ttl)}
	if setting != nil {
		cached.saved = true
		cached.enabled = setting.PushEnabled
	}

	r.mu.Lock()
	r.cache[ownerID] = cached
	r.mu.Unlock()

	return cached, nil
}

// SetOverride stores an unsaved local value that wins over everything else
func (r *SettingsResolver) SetOverride(ownerID uuid.UUID, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.overrides[ownerID] = enabled
}

// ClearOverride drops the local value
func (r *SettingsResolver) ClearOverride(ownerID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.overrides, ownerID)
}

// Invalidate drops the cached server setting
func (r *SettingsResolver) Invalidate(ownerID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.cache, ownerID)
}

const (
	settingSourceOverride = "override"
	settingSourceSaved    = "saved"
	settingSourceDefault  = "default"
)

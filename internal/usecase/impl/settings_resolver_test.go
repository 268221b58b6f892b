package impl

import (
	"context"
	"testing"
	"time"

	"backoffice/config"
	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	mockRepo "backoffice/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type settingsFixtures struct {
	resolver    *SettingsResolver
	settingRepo *mockRepo.MockNotificationSettingRepository
	clock       *time.Time
}

func createTestSettingsResolver(t *testing.T, defaultEnabled bool) settingsFixtures {
	cfg := testNotificationConfig()
	cfg.PushDefaultEnabled = defaultEnabled
	settingRepo := mockRepo.NewMockNotificationSettingRepository(t)

	resolver := NewSettingsResolver(SettingsResolverParams{
		Config:      &config.Config{Notification: cfg},
		SettingRepo: settingRepo,
		Logger:      newDiscardLogger(),
	})
	clock := baseTime
	resolver.now = func() time.Time { return clock }

	return settingsFixtures{resolver: resolver, settingRepo: settingRepo, clock: &clock}
}

func TestSettingsResolver_Resolve_Precedence(t *testing.T) {
	fx := createTestSettingsResolver(t, true)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.settingRepo.EXPECT().
		FindSetting(ctx, ownerID).
		Return(&entity.NotificationSetting{OwnerID: ownerID, PushEnabled: false}, nil).
		Once()

	enabled, source := fx.resolver.resolve(ctx, ownerID)
	assert.False(t, enabled)
	assert.Equal(t, settingSourceSaved, source)

	fx.resolver.SetOverride(ownerID, true)
	enabled, source = fx.resolver.resolve(ctx, ownerID)
	assert.True(t, enabled)
	assert.Equal(t, settingSourceOverride, source)

	fx.resolver.ClearOverride(ownerID)
	assert.False(t, fx.resolver.Resolve(ctx, ownerID), "saved setting should be served from cache")
}

func TestSettingsResolver_Resolve_DefaultWhenNothingSaved(t *testing.T) {
	for _, defaultEnabled := range []bool{true, false} {
		fx := createTestSettingsResolver(t, defaultEnabled)
		ctx := context.Background()
		ownerID := uuid.New()

		fx.settingRepo.EXPECT().
			FindSetting(ctx, ownerID).
			Return(nil, repository.ErrNotificationSettingNotFound).
			Once()

		enabled, source := fx.resolver.resolve(ctx, ownerID)
		assert.Equal(t, defaultEnabled, enabled)
		assert.Equal(t, settingSourceDefault, source)

		// the miss is cached too
		assert.Equal(t, defaultEnabled, fx.resolver.Resolve(ctx, ownerID))
	}
}

func TestSettingsResolver_Resolve_RefreshesAfterTTL(t *testing.T) {
	fx := createTestSettingsResolver(t, true)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.settingRepo.EXPECT().
		FindSetting(ctx, ownerID).
		Return(&entity.NotificationSetting{OwnerID: ownerID, PushEnabled: true}, nil).
		Once()
	fx.settingRepo.EXPECT().
		FindSetting(ctx, ownerID).
		Return(&entity.NotificationSetting{OwnerID: ownerID, PushEnabled: false}, nil).
		Once()

	require.True(t, fx.resolver.Resolve(ctx, ownerID))

	*fx.clock = fx.clock.Add(30 * time.Second)
	assert.True(t, fx.resolver.Resolve(ctx, ownerID))

	*fx.clock = fx.clock.Add(time.Minute)
	assert.False(t, fx.resolver.Resolve(ctx, ownerID))
}

func TestSettingsResolver_Resolve_LoadErrorFallsBackToDefault(t *testing.T) {
	fx := createTestSettingsResolver(t, false)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.settingRepo.EXPECT().
		FindSetting(ctx, ownerID).
		Return(nil, errors.New("connection refused")).
		Twice()

	assert.False(t, fx.resolver.Resolve(ctx, ownerID))
	// errors are not cached
	assert.False(t, fx.resolver.Resolve(ctx, ownerID))
}

func TestSettingsResolver_Invalidate(t *testing.T) {
	fx := createTestSettingsResolver(t, true)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.settingRepo.EXPECT().
		FindSetting(ctx, ownerID).
		Return(nil, repository.ErrNotificationSettingNotFound).
		Once()
	fx.settingRepo.EXPECT().
		FindSetting(ctx, ownerID).
		Return(&entity.NotificationSetting{OwnerID: ownerID, PushEnabled: false}, nil).
		Once()

	require.True(t, fx.resolver.Resolve(ctx, ownerID))
	fx.resolver.Invalidate(ownerID)
	assert.False(t, fx.resolver.Resolve(ctx, ownerID))
}

func TestNotificationSettingService_SaveSetting_ClearsOverride(t *testing.T) {
	fx := createTestSettingsResolver(t, true)
	ctx := context.Background()
	ownerID := uuid.New()
	service := NewNotificationSettingService(fx.settingRepo, fx.resolver, newDiscardLogger())

	_, err := service.SetOverride(ctx, ownerID, false)
	require.NoError(t, err)

	fx.settingRepo.EXPECT().
		UpsertSetting(ctx, mock.MatchedBy(func(setting *entity.NotificationSetting) bool {
			return setting.OwnerID == ownerID && setting.PushEnabled
		})).
		Return(nil)
	fx.settingRepo.EXPECT().
		FindSetting(ctx, ownerID).
		Return(&entity.NotificationSetting{OwnerID: ownerID, PushEnabled: true}, nil).
		Once()

	saved, err := service.SaveSetting(ctx, ownerID, true)
	require.NoError(t, err)
	assert.Equal(t, settingSourceSaved, saved.Source)

	current, err := service.GetSetting(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, current.PushEnabled)
	assert.Equal(t, settingSourceSaved, current.Source)
}

func TestNotificationSettingService_SetOverride(t *testing.T) {
	fx := createTestSettingsResolver(t, true)
	ctx := context.Background()
	ownerID := uuid.New()
	service := NewNotificationSettingService(fx.settingRepo, fx.resolver, newDiscardLogger())

	setting, err := service.SetOverride(ctx, ownerID, false)
	require.NoError(t, err)
	assert.False(t, setting.PushEnabled)
	assert.Equal(t, settingSourceOverride, setting.Source)
	assert.False(t, fx.resolver.Resolve(ctx, ownerID))
}

func TestNotificationSettingService_SaveSetting_KeepsOverrideOnError(t *testing.T) {
	fx := createTestSettingsResolver(t, true)
	ctx := context.Background()
	ownerID := uuid.New()
	service := NewNotificationSettingService(fx.settingRepo, fx.resolver, newDiscardLogger())
	fx.resolver.SetOverride(ownerID, false)

	fx.settingRepo.EXPECT().
		UpsertSetting(ctx, mock.AnythingOfType("*entity.NotificationSetting")).
		Return(errors.New("read-only transaction"))

	_, err := service.SaveSetting(ctx, ownerID, true)
	require.Error(t, err)
	assert.False(t, fx.resolver.Resolve(ctx, ownerID))
}

func TestSurfaceTracker_Watching(t *testing.T) {
	tracker := NewSurfaceTracker()
	ownerID := uuid.New()

	tracker.UpdateSurface(&entity.SurfaceState{ID: "tab-1", OwnerID: ownerID, Visible: true, Foreground: false})
	assert.False(t, tracker.Watching(ownerID))

	tracker.UpdateSurface(&entity.SurfaceState{ID: "tab-2", OwnerID: ownerID, Visible: true, Foreground: true})
	assert.True(t, tracker.Watching(ownerID))
	assert.False(t, tracker.Watching(uuid.New()))

	state, ok := tracker.Surface("tab-2")
	require.True(t, ok)
	assert.False(t, state.UpdatedAt.IsZero())
	state.Visible = false
	assert.True(t, tracker.Watching(ownerID), "Surface must return a copy")

	tracker.RemoveSurface("tab-2")
	assert.False(t, tracker.Watching(ownerID))
	_, ok = tracker.Surface("tab-2")
	assert.False(t, ok)

	tracker.UpdateSurface(nil)
	tracker.UpdateSurface(&entity.SurfaceState{OwnerID: ownerID, Visible: true, Foreground: true})
	assert.False(t, tracker.Watching(ownerID))
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"subscriptionId": "",
		},
		"notification": map[string]any{
			"recentCapacity":   10,
			"settingsCacheTTL": "1m",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_SUBSCRIPTIONID", want: "pubsub.subscriptionId"},
		{envKey: "NOTIFICATION_RECENTCAPACITY", want: "notification.recentCapacity"},
		{envKey: "NOTIFICATION_SETTINGSCACHETTL", want: "notification.settingsCacheTTL"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestWithNotificationDefaults(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		cfg := withNotificationDefaults(nil)

		assert.Equal(t, defaultRecentCapacity, cfg.RecentCapacity)
		assert.Equal(t, defaultUnreadCapacity, cfg.UnreadCapacity)
		assert.True(t, cfg.PushDefaultEnabled)
		assert.Equal(t, defaultReconnectMaxBackoff, cfg.ReconnectMaxBackoff)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := withNotificationDefaults(&NotificationConfig{
			RecentCapacity:      5,
			UnreadCapacity:      50,
			ReconnectBackoff:    2 * time.Second,
			ReconnectMaxBackoff: time.Second,
		})

		assert.Equal(t, 5, cfg.RecentCapacity)
		assert.Equal(t, 50, cfg.UnreadCapacity)
		assert.False(t, cfg.PushDefaultEnabled)
		assert.Equal(t, defaultReconnectMaxBackoff, cfg.ReconnectMaxBackoff)
	})
}

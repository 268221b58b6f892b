package entity

import (
	"time"

	"github.com/google/uuid"
)

// Push platforms accepted by the token registry.
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)

// PushToken represents a device registered for push notifications.
// (OwnerID, DeviceID) is unique.
type PushToken struct {
	ID         uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the record.
	OwnerID    uuid.UUID `json:"owner_id"`    // The ID of the user who owns this device.
	DeviceID   string    `json:"device_id"`   // Unique device identifier from the client.
	Token      string    `json:"-"`           // Platform push token, overwritten on refresh.
	Platform   string    `json:"platform"`    // Device platform (ios, android, web).
	AppVersion string    `json:"app_version"` // Client app version at registration time.
	IsActive   bool      `json:"is_active"`   // Inactive devices never receive pushes.
	CreatedAt  time.Time `json:"created_at"`  // Timestamp of when this device was registered.
	UpdatedAt  time.Time `json:"updated_at"`  // Timestamp of the last modification.
}

// Push delivery states.
const (
	DeliveryStatusPending = "pending"
	DeliveryStatusSent    = "sent"
	DeliveryStatusFailed  = "failed"
)

// PushDelivery records the single push attempt for a (notification, device) pair.
type PushDelivery struct {
	ID             uuid.UUID `json:"id"`
	NotificationID uuid.UUID `json:"notification_id"`
	OwnerID        uuid.UUID `json:"owner_id"`
	DeviceID       string    `json:"device_id"`
	Status         string    `json:"status"`
	FCMMessageID   string    `json:"fcm_message_id"`
	ErrorMessage   string    `json:"error_message"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NotificationSetting is the per-owner notification preference.
// Source tells which layer produced it when it is resolved rather than loaded.
type NotificationSetting struct {
	OwnerID     uuid.UUID `json:"owner_id"`
	PushEnabled bool      `json:"push_enabled"`
	Source      string    `json:"source,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

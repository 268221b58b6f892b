package service

import (
	"context"
	"errors"
)

// ErrInvalidPushToken is returned by PushService when the platform rejected the token for good.
var ErrInvalidPushToken = errors.New("push token is invalid or unregistered")

// PushMessage is the platform-neutral payload of a device push
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// PushService defines the interface for push notification platforms
type PushService interface {
	// Send delivers message to a single device token and returns the platform message ID.
	// A permanently rejected token yields an error wrapping ErrInvalidPushToken.
	Send(ctx context.Context, message *PushMessage) (string, error)
}

package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"backoffice/internal/domain/entity"

	"github.com/pkg/errors"
)

// Message attributes set on every published change event.
const (
	AttrEventID        = "event_id"
	AttrNotificationID = "notification_id"
	AttrOwnerID        = "owner_id"
	AttrOperation      = "operation"
	AttrRequestID      = "request_id"
)

// PushMessage represents the structure of a Pub/Sub push message
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func encodeEvent(event *entity.ChangeEvent) ([]byte, map[string]string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		AttrEventID:        event.EventID.String(),
		AttrNotificationID: event.Row.ID.String(),
		AttrOwnerID:        event.Row.OwnerID.String(),
		AttrOperation:      string(event.Operation),
	}

	return data, attributes, nil
}

func decodeEvent(data []byte) (*entity.ChangeEvent, error) {
	var event entity.ChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, errors.Wrap(err, "failed to parse change event")
	}

	switch event.Operation {
	case entity.ChangeInsert, entity.ChangeUpdate, entity.ChangeDelete:
	default:
		return nil, errors.Errorf("unknown change operation %q", event.Operation)
	}

	return &event, nil
}

// newPushMessage wraps an encoded event in the push envelope.
func newPushMessage(subscription string, data []byte, attributes map[string]string, messageID string) *PushMessage {
	msg := &PushMessage{Subscription: subscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	return msg
}

// DecodePushMessage extracts the change event carried by a push envelope.
func DecodePushMessage(msg *PushMessage) (*entity.ChangeEvent, error) {
	data, err := base64.StdEncoding.DecodeString(msg.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode message data")
	}

	return decodeEvent(data)
}

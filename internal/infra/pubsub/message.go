package pubsub

import (
	"qrstudio/internal/domain/entity"
)

// PushMessage is the envelope Google Pub/Sub posts to push endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// Attribute keys set on every published message
const (
	AttrEventID   = "event_id"
	AttrType      = "type"
	AttrRequestID = "request_id"
)

// eventAttributes builds the message attributes used for filtering and tracing
func eventAttributes(event *entity.QRCodeEvent) map[string]string {
	attributes := map[string]string{
		AttrEventID: event.EventID,
		AttrType:    string(event.Type),
	}
	if event.RequestID != "" {
		attributes[AttrRequestID] = event.RequestID
	}

	return attributes
}

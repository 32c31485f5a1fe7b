package entity

import "time"

// QRCodeEventType names what happened to a QR code.
type QRCodeEventType string

const (
	QRCodeEventGenerated QRCodeEventType = "generated"
	QRCodeEventDecoded   QRCodeEventType = "decoded"
	QRCodeEventScanned   QRCodeEventType = "scanned"
)

// QRCodeEvent is published after a successful operation.
type QRCodeEvent struct {
	RequestID  string          `json:"request_id,omitempty"` // For distributed tracing
	EventID    string          `json:"event_id"`
	Type       QRCodeEventType `json:"type"`
	Content    string          `json:"content"`
	AssetID    string          `json:"asset_id,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

package service

import (
	"context"

	"qrstudio/internal/domain/entity"
)

// EventPublisher defines the interface for publishing QR code events to a message queue
type EventPublisher interface {
	// PublishQRCodeEvent publishes an event for downstream consumers
	PublishQRCodeEvent(ctx context.Context, event *entity.QRCodeEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

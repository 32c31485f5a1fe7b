package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "qrstudio/internal/delivery/context"
	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/errors"
	"qrstudio/internal/usecase"

	"github.com/google/uuid"
)

type frameService struct {
	codec     service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewFrameService creates the frame decoding use case used by the worker
func NewFrameService(codec service.QRCodeService, publisher service.EventPublisher, logger *slog.Logger) usecase.FrameUsecase {
	return &frameService{
		codec:     codec,
		publisher: publisher,
		logger:    logger,
	}
}

// DecodeFrame decodes data and publishes a decoded event for a read symbol.
// A publish failure is returned so the caller can ask for redelivery.
func (s *frameService) DecodeFrame(ctx context.Context, data []byte) (*entity.DecodeResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	result, err := s.codec.Decode(data)
	if err != nil {
		return nil, err
	}

	logger.Info("Frame decoded", slog.String("status", string(result.Status)))
	if result.Status != entity.DecodeStatusDecoded {
		return result, nil
	}

	event := &entity.QRCodeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       entity.QRCodeEventDecoded,
		Content:    result.Text,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishQRCodeEvent(ctx, event); err != nil {
		return result, errors.Wrap(err, "failed to publish decoded event")
	}

	return result, nil
}

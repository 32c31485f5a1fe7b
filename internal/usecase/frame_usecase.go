package usecase

import (
	"context"

	"qrstudio/internal/domain/entity"
)

// FrameUsecase decodes frames delivered outside a scanning session
type FrameUsecase interface {
	// DecodeFrame decodes one encoded frame and publishes a decoded event
	// when a symbol is read
	DecodeFrame(ctx context.Context, data []byte) (*entity.DecodeResult, error)
}

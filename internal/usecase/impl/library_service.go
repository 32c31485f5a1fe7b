package impl

import (
	"context"
	"log/slog"

	deliverycontext "qrstudio/internal/delivery/context"
	"qrstudio/internal/domain/entity"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/usecase"
)

type libraryService struct {
	library service.PhotoLibrary
	logger  *slog.Logger
}

// NewLibraryService creates the photo library use case
func NewLibraryService(library service.PhotoLibrary, logger *slog.Logger) usecase.LibraryUsecase {
	return &libraryService{
		library: library,
		logger:  logger,
	}
}

// Overview lists saved images with the current access status
func (s *libraryService) Overview(ctx context.Context) (*usecase.LibraryOverview, error) {
	assets, err := s.library.List(ctx)
	if err != nil {
		return nil, err
	}
	if assets == nil {
		assets = []*entity.Asset{}
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Listed photo library",
		slog.Int("count", len(assets)),
	)

	return &usecase.LibraryOverview{
		Authorization: s.library.Authorization(ctx),
		Assets:        assets,
	}, nil
}

// Image returns the bytes of one saved image
func (s *libraryService) Image(ctx context.Context, id string) ([]byte, *entity.Asset, error) {
	return s.library.Open(ctx, id)
}

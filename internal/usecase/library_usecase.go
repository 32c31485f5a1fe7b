package usecase

import (
	"context"

	"qrstudio/internal/domain/entity"
)

// LibraryOverview is the photo library listing
type LibraryOverview struct {
	Authorization entity.AuthorizationStatus `json:"authorization"`
	Assets        []*entity.Asset            `json:"assets"`
}

// LibraryUsecase exposes the images saved by generation
type LibraryUsecase interface {
	// Overview lists the saved images, newest first, with the access status
	Overview(ctx context.Context) (*LibraryOverview, error)

	// Image returns the PNG bytes of one saved image
	Image(ctx context.Context, id string) ([]byte, *entity.Asset, error)
}

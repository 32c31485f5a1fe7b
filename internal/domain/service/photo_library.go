package service

import (
	"context"

	"qrstudio/internal/domain/entity"
)

// PhotoLibrary is the persistence sink for generated images
type PhotoLibrary interface {
	// Authorization reports the current permission to write into the library
	Authorization(ctx context.Context) entity.AuthorizationStatus

	// Save stores a PNG image; it fails immediately unless authorized or limited
	Save(ctx context.Context, png []byte) (*entity.Asset, error)

	// Open returns the stored bytes of an asset
	Open(ctx context.Context, id string) ([]byte, *entity.Asset, error)

	// List returns every stored asset, newest first
	List(ctx context.Context) ([]*entity.Asset, error)
}

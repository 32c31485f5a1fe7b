// Package library stores generated images in a gocloud.dev bucket and gates
// writes on a photo-library style authorization status.
package library

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"qrstudio/config"
	"qrstudio/internal/domain/constants"
	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/errors"
	"qrstudio/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	assetExt = ".png"

	metaChecksum  = "checksum"
	metaCreatedAt = "created_at"
)

// Library implements service.PhotoLibrary on top of a blob bucket
type Library struct {
	bucket        *blob.Bucket
	prefix        string
	authorization entity.AuthorizationStatus
	logger        *slog.Logger
	now           func() time.Time
}

// Params holds dependencies for the library, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoLibrary opens the configured bucket and closes it on shutdown
func NewPhotoLibrary(params Params) (service.PhotoLibrary, error) {
	lib, err := Open(params.Ctx, params.Config.Library, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		params.Logger.Info("Closing photo library")

		return lib.Close()
	}))

	return lib, nil
}

// Open opens the bucket named by cfg.BucketURL
func Open(ctx context.Context, cfg *config.LibraryConfig, logger *slog.Logger) (*Library, error) {
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("library bucket URL is required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	lib := New(bucket, cfg.Prefix, entity.ParseAuthorizationStatus(cfg.Authorization), logger)

	logger.Info("Photo library opened",
		slog.String("bucket", cfg.BucketURL),
		slog.String("prefix", cfg.Prefix),
		slog.String("authorization", string(lib.authorization)),
	)

	return lib, nil
}

// New wraps an already opened bucket
func New(bucket *blob.Bucket, prefix string, authorization entity.AuthorizationStatus, logger *slog.Logger) *Library {
	return &Library{
		bucket:        bucket,
		prefix:        prefix,
		authorization: authorization,
		logger:        logger,
		now:           time.Now,
	}
}

// Authorization reports the configured access status
func (l *Library) Authorization(_ context.Context) entity.AuthorizationStatus {
	return l.authorization
}

// Save writes png as a new asset. It refuses immediately when the library is
// not writable.
func (l *Library) Save(ctx context.Context, png []byte) (*entity.Asset, error) {
	if err := authorizationError(l.authorization); err != nil {
		l.logger.Warn("Photo library write refused",
			slog.String("authorization", string(l.authorization)),
		)

		return nil, err
	}

	id := uuid.NewString()
	createdAt := l.now().UTC()
	key := l.key(id)

	opts := &blob.WriterOptions{
		ContentType: constants.ContentTypePNG,
		Metadata: map[string]string{
			metaChecksum:  util.ContentChecksum(png),
			metaCreatedAt: createdAt.Format(time.RFC3339Nano),
		},
	}
	if err := l.bucket.WriteAll(ctx, key, png, opts); err != nil {
		return nil, errors.Wrap(domainerrors.ErrSink.WithDetails(err.Error()), "failed to write asset")
	}

	l.logger.Info("Image saved to photo library",
		slog.String("asset_id", id),
		slog.String("size", util.FormatBytes(int64(len(png)))),
	)

	return &entity.Asset{
		ID:          id,
		Key:         key,
		ContentType: constants.ContentTypePNG,
		Size:        int64(len(png)),
		CreatedAt:   createdAt,
	}, nil
}

// Open returns the bytes and description of one asset
func (l *Library) Open(ctx context.Context, id string) ([]byte, *entity.Asset, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, errors.Wrapf(domainerrors.ErrAssetNotFound, "invalid asset id %q", id)
	}

	key := l.key(id)
	reader, err := l.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, nil, l.readError(err, id)
	}
	defer reader.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to read asset %s", id)
	}

	attrs, err := l.bucket.Attributes(ctx, key)
	if err != nil {
		return nil, nil, l.readError(err, id)
	}

	return buf.Bytes(), l.asset(key, attrs), nil
}

// List returns every asset under the prefix, newest first
func (l *Library) List(ctx context.Context) ([]*entity.Asset, error) {
	var assets []*entity.Asset

	iter := l.bucket.List(&blob.ListOptions{Prefix: l.prefix})
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list assets")
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, assetExt) {
			continue
		}

		attrs, err := l.bucket.Attributes(ctx, obj.Key)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read attributes of %s", obj.Key)
		}
		assets = append(assets, l.asset(obj.Key, attrs))
	}

	sort.SliceStable(assets, func(i, j int) bool {
		if assets[i].CreatedAt.Equal(assets[j].CreatedAt) {
			return assets[i].Key < assets[j].Key
		}

		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})

	return assets, nil
}

// Close releases the bucket
func (l *Library) Close() error {
	return errors.WithStack(l.bucket.Close())
}

func (l *Library) key(id string) string {
	return l.prefix + id + assetExt
}

func (l *Library) asset(key string, attrs *blob.Attributes) *entity.Asset {
	createdAt := attrs.ModTime
	if v, ok := attrs.Metadata[metaCreatedAt]; ok {
		if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
			createdAt = t
		}
	}

	return &entity.Asset{
		ID:          strings.TrimSuffix(strings.TrimPrefix(key, l.prefix), assetExt),
		Key:         key,
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		CreatedAt:   createdAt,
	}
}

func (l *Library) readError(err error, id string) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return errors.Wrapf(domainerrors.ErrAssetNotFound, "asset %s", id)
	}

	return errors.Wrapf(err, "failed to open asset %s", id)
}

// authorizationError returns the refusal for a status that does not permit
// writes, nil otherwise.
func authorizationError(status entity.AuthorizationStatus) error {
	switch status {
	case entity.AuthorizationAuthorized, entity.AuthorizationLimited:
		return nil
	case entity.AuthorizationDenied, entity.AuthorizationRestricted:
		return domainerrors.ErrPermissionDenied
	case entity.AuthorizationNotDetermined:
		return domainerrors.ErrPermissionDenied.WithDetails("Photo library access not determined")
	default:
		return domainerrors.ErrPermissionDenied.WithDetails("Unknown photo library access status")
	}
}

// Module provides the photo library FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPhotoLibrary),
)

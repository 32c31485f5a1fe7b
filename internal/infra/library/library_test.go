package library

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"qrstudio/config"
	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/errors"
	"qrstudio/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake-image")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestLibrary(t *testing.T, status entity.AuthorizationStatus) (*Library, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return New(bucket, "qrcodes/", status, testLogger()), bucket
}

func TestLibrary_Save(t *testing.T) {
	ctx := context.Background()
	lib, bucket := newTestLibrary(t, entity.AuthorizationAuthorized)

	asset, err := lib.Save(ctx, pngBytes)
	require.NoError(t, err)

	assert.NotEmpty(t, asset.ID)
	assert.Equal(t, "qrcodes/"+asset.ID+".png", asset.Key)
	assert.Equal(t, "image/png", asset.ContentType)
	assert.Equal(t, int64(len(pngBytes)), asset.Size)

	stored, err := bucket.ReadAll(ctx, asset.Key)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)

	attrs, err := bucket.Attributes(ctx, asset.Key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
	assert.Equal(t, util.ContentChecksum(pngBytes), attrs.Metadata["checksum"])
}

func TestLibrary_Save_Limited(t *testing.T) {
	lib, _ := newTestLibrary(t, entity.AuthorizationLimited)

	_, err := lib.Save(context.Background(), pngBytes)
	assert.NoError(t, err)
}

func TestLibrary_Save_Refused(t *testing.T) {
	tests := []struct {
		name       string
		status     entity.AuthorizationStatus
		wantReason string
	}{
		{"Denied", entity.AuthorizationDenied, "Permission to access photo library was denied"},
		{"Restricted", entity.AuthorizationRestricted, "Permission to access photo library was denied"},
		{"Not determined", entity.AuthorizationNotDetermined, "Photo library access not determined"},
		{"Unknown", entity.AuthorizationUnknown, "Unknown photo library access status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			lib, bucket := newTestLibrary(t, tt.status)

			asset, err := lib.Save(ctx, pngBytes)
			assert.Nil(t, asset)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
			assert.Equal(t, tt.wantReason, domainerrors.ReasonOf(err))

			// Nothing reached the bucket
			iter := bucket.List(nil)
			_, err = iter.Next(ctx)
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestLibrary_Save_BucketFailure(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	lib := New(bucket, "qrcodes/", entity.AuthorizationAuthorized, testLogger())
	require.NoError(t, bucket.Close())

	_, err := lib.Save(context.Background(), pngBytes)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSink))
	assert.NotEmpty(t, domainerrors.ReasonOf(err))
}

func TestLibrary_Open(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t, entity.AuthorizationAuthorized)

	saved, err := lib.Save(ctx, pngBytes)
	require.NoError(t, err)

	data, asset, err := lib.Open(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
	assert.Equal(t, saved.ID, asset.ID)
	assert.Equal(t, saved.Key, asset.Key)
	assert.True(t, saved.CreatedAt.Equal(asset.CreatedAt))
}

func TestLibrary_Open_NotFound(t *testing.T) {
	ctx := context.Background()
	lib, _ := newTestLibrary(t, entity.AuthorizationAuthorized)

	for _, id := range []string{"0b5b4bd8-38c6-4f7b-a35e-0f5f5b5c95a1", "../etc/passwd", ""} {
		_, _, err := lib.Open(ctx, id)
		require.Error(t, err, id)
		assert.True(t, errors.Is(err, domainerrors.ErrAssetNotFound), id)
	}
}

func TestLibrary_List_NewestFirst(t *testing.T) {
	ctx := context.Background()
	lib, bucket := newTestLibrary(t, entity.AuthorizationAuthorized)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	lib.now = func() time.Time {
		tick++

		return base.Add(time.Duration(tick) * time.Minute)
	}

	first, err := lib.Save(ctx, pngBytes)
	require.NoError(t, err)
	second, err := lib.Save(ctx, pngBytes)
	require.NoError(t, err)
	third, err := lib.Save(ctx, pngBytes)
	require.NoError(t, err)

	// Objects outside the prefix or with another extension are ignored
	require.NoError(t, bucket.WriteAll(ctx, "other/x.png", pngBytes, nil))
	require.NoError(t, bucket.WriteAll(ctx, "qrcodes/readme.txt", []byte("hi"), nil))

	assets, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{assets[0].ID, assets[1].ID, assets[2].ID})
	assert.Equal(t, base.Add(3*time.Minute), assets[0].CreatedAt)
}

func TestLibrary_List_Empty(t *testing.T) {
	lib, _ := newTestLibrary(t, entity.AuthorizationAuthorized)

	assets, err := lib.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestLibrary_FileBucket(t *testing.T) {
	ctx := context.Background()
	bucket, err := fileblob.OpenBucket(t.TempDir(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	lib := New(bucket, "qrcodes/", entity.AuthorizationAuthorized, testLogger())

	saved, err := lib.Save(ctx, pngBytes)
	require.NoError(t, err)

	assets, err := lib.List(ctx)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, saved.ID, assets[0].ID)

	data, _, err := lib.Open(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	lib, err := Open(ctx, &config.LibraryConfig{
		BucketURL:     "mem://",
		Prefix:        "codes/",
		Authorization: "Restricted",
	}, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = lib.Close() })

	assert.Equal(t, entity.AuthorizationRestricted, lib.Authorization(ctx))
}

func TestOpen_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, nil, testLogger())
	assert.Error(t, err)

	_, err = Open(ctx, &config.LibraryConfig{BucketURL: "nosuchscheme://bucket"}, testLogger())
	assert.Error(t, err)
}

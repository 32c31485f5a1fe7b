// Package capture adapts frame feeds and picture files to the scanning and
// picking ports of the QR code service.
package capture

import (
	"context"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"qrstudio/internal/errors"
	"qrstudio/internal/infra/qrcode"
)

// Frame is one picture delivered by a FrameSource. Err is set when the source
// broke and no more frames will follow.
type Frame struct {
	Image image.Image
	Err   error
}

// FrameSource produces frames for a scanning session
type FrameSource interface {
	// Frames starts delivery until ctx is done. It fails when the source
	// cannot be set up.
	Frames(ctx context.Context) (<-chan Frame, error)
}

type sourceOptions struct {
	maxPixels int
}

// SourceOption customises a frame source
type SourceOption func(*sourceOptions)

// WithMaxPixels caps the size of pictures a source decodes
func WithMaxPixels(maxPixels int) SourceOption {
	return func(o *sourceOptions) {
		if maxPixels > 0 {
			o.maxPixels = maxPixels
		}
	}
}

func newSourceOptions(opts []SourceOption) sourceOptions {
	o := sourceOptions{maxPixels: qrcode.DefaultMaxPixels}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// FeedSource is an in-memory frame feed. Frames pushed while the buffer is
// full are dropped.
type FeedSource struct {
	frames    chan Frame
	maxPixels int
}

// NewFeedSource creates a feed buffering up to size frames
func NewFeedSource(size int, opts ...SourceOption) *FeedSource {
	if size <= 0 {
		size = 1
	}

	return &FeedSource{
		frames:    make(chan Frame, size),
		maxPixels: newSourceOptions(opts).maxPixels,
	}
}

// Frames discards stale frames and returns the feed
func (f *FeedSource) Frames(_ context.Context) (<-chan Frame, error) {
	for {
		select {
		case <-f.frames:
		default:
			return f.frames, nil
		}
	}
}

// Push offers img to the feed and reports whether it was accepted
func (f *FeedSource) Push(img image.Image) bool {
	select {
	case f.frames <- Frame{Image: img}:
		return true
	default:
		return false
	}
}

// PushBytes decodes an encoded picture and pushes it
func (f *FeedSource) PushBytes(data []byte) (bool, error) {
	img, err := qrcode.DecodePicture(data, f.maxPixels)
	if err != nil {
		return false, err
	}

	return f.Push(img), nil
}

// DirectorySource polls a directory and emits every new picture file as a
// frame. Files present before the session started are ignored.
type DirectorySource struct {
	dir       string
	interval  time.Duration
	maxPixels int
	logger    *slog.Logger
}

// NewDirectorySource creates a source polling dir every interval
func NewDirectorySource(dir string, interval time.Duration, logger *slog.Logger, opts ...SourceOption) *DirectorySource {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	return &DirectorySource{
		dir:       dir,
		interval:  interval,
		maxPixels: newSourceOptions(opts).maxPixels,
		logger:    logger,
	}
}

type fileStamp struct {
	size    int64
	modTime time.Time
}

// Frames checks the directory and starts polling it
func (d *DirectorySource) Frames(ctx context.Context) (<-chan Frame, error) {
	info, err := os.Stat(d.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "frame directory %s", d.dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("frame directory %s is not a directory", d.dir)
	}

	seen, err := d.scan()
	if err != nil {
		return nil, err
	}

	out := make(chan Frame)
	go d.poll(ctx, seen, out)

	return out, nil
}

func (d *DirectorySource) poll(ctx context.Context, seen map[string]fileStamp, out chan<- Frame) {
	defer close(out)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		current, err := d.scan()
		if err != nil {
			d.send(ctx, out, Frame{Err: err})

			return
		}

		for _, name := range sortedNames(current) {
			stamp := current[name]
			if prev, ok := seen[name]; ok && prev.size == stamp.size && prev.modTime.Equal(stamp.modTime) {
				continue
			}
			seen[name] = stamp

			img, err := readImage(filepath.Join(d.dir, name), d.maxPixels)
			if err != nil {
				d.logger.Debug("Skipping unreadable frame",
					slog.String("file", name),
					slog.Any("error", err),
				)

				continue
			}
			if !d.send(ctx, out, Frame{Image: img}) {
				return
			}
		}
	}
}

func (d *DirectorySource) send(ctx context.Context, out chan<- Frame, frame Frame) bool {
	select {
	case out <- frame:
		return true
	case <-ctx.Done():
		return false
	}
}

// scan lists the picture files in the directory
func (d *DirectorySource) scan() (map[string]fileStamp, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read frame directory %s", d.dir)
	}

	files := make(map[string]fileStamp, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isPicture(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between listing and stat
			continue
		}
		files[entry.Name()] = fileStamp{size: info.Size(), modTime: info.ModTime()}
	}

	return files, nil
}

//nolint:gochecknoglobals
var pictureExts = map[string]struct{}{
	".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".bmp": {}, ".webp": {},
}

func isPicture(name string) bool {
	_, ok := pictureExts[strings.ToLower(filepath.Ext(name))]

	return ok
}

func readImage(path string, maxPixels int) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return qrcode.DecodePicture(data, maxPixels)
}

func sortedNames(files map[string]fileStamp) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

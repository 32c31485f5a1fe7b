package capture

import (
	"context"
	"io"
	"log/slog"
	"os"

	"qrstudio/internal/domain/service"
	"qrstudio/internal/errors"
)

// defaultMaxPickBytes caps how much of a picked file is read.
const defaultMaxPickBytes = 32 << 20

// FilePicker picks one picture from the filesystem
type FilePicker struct {
	path     string
	maxBytes int64
	logger   *slog.Logger
}

var _ service.ImagePicker = (*FilePicker)(nil)

// NewFilePicker creates a picker that selects the file at path
func NewFilePicker(path string, logger *slog.Logger) *FilePicker {
	return &FilePicker{path: path, maxBytes: defaultMaxPickBytes, logger: logger}
}

// Present reads the file and calls onSelected exactly once. A missing,
// unreadable, empty or oversized file is reported as nil.
func (p *FilePicker) Present(ctx context.Context, onSelected func(data []byte)) {
	data, err := p.read(ctx)
	if err != nil {
		p.logger.Warn("Failed to pick image",
			slog.String("path", p.path),
			slog.Any("error", err),
		)
		onSelected(nil)

		return
	}

	onSelected(data)
}

func (p *FilePicker) read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(p.path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, p.maxBytes+1))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if int64(len(data)) > p.maxBytes {
		return nil, errors.Errorf("file is larger than %d bytes", p.maxBytes)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return data, nil
}

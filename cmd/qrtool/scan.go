package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"qrstudio/internal/domain/entity"
	"qrstudio/internal/infra/capture"

	"github.com/pkg/errors"
)

func runScan(ctx context.Context, dir string, interval time.Duration) error {
	cfg := loadConfig()
	cfg.Library.BucketURL = "mem://"

	s, err := newStudio(ctx, cfg, func(logger *slog.Logger) capture.FrameSource {
		return capture.NewDirectorySource(dir, interval, logger, capture.WithMaxPixels(cfg.QRCode.MaxPixels))
	})
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.qrcodeUC.StartScan(ctx); err != nil {
		return err
	}
	defer s.qrcodeUC.StopScan()

	// Flush the session start so the first state seen is a scanning one
	s.queue.Sync(func() {})

	states := make(chan entity.State, 1)
	unsubscribe := s.qrcodeUC.Subscribe(func(state entity.State) {
		select {
		case <-states:
		default:
		}
		states <- state
	})
	defer unsubscribe()

	fmt.Printf("Watching %s for QR codes...\n", dir)

	for {
		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "scan ended before a QR code was found")
		case state := <-states:
			if state.DecodedContent != nil {
				fmt.Println(*state.DecodedContent)

				return nil
			}
			if !state.Scanning {
				if state.ErrorMessage != nil {
					return errors.New(*state.ErrorMessage)
				}

				return errors.New("scanning stopped")
			}
		}
	}
}

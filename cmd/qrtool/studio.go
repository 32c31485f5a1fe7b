package main

import (
	"context"
	"log/slog"
	"time"

	"qrstudio/config"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/infra/capture"
	"qrstudio/internal/infra/library"
	logs "qrstudio/internal/infra/log"
	"qrstudio/internal/infra/logo"
	"qrstudio/internal/infra/mainqueue"
	"qrstudio/internal/infra/pubsub"
	"qrstudio/internal/infra/qrcode"
	"qrstudio/internal/usecase"
	"qrstudio/internal/usecase/impl"

	"github.com/pkg/errors"
)

const shutdownTimeout = 5 * time.Second

// studio is the view-model stack wired for one command run
type studio struct {
	cfg      *config.Config
	logger   *slog.Logger
	codec    service.QRCodeService
	composer service.LogoComposer
	queue    *mainqueue.Queue
	library  *library.Library
	qrcodeUC usecase.QRCodeUsecase
}

func loadConfig() *config.Config {
	cfg := config.Default()
	cfg.Env.Log.Level = "warn"

	return cfg
}

func newCodec(cfg *config.Config) (service.QRCodeService, service.LogoComposer, error) {
	codec := qrcode.NewQRCodeService(cfg.QRCode.Scale, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.LogoRatio,
		qrcode.WithMaxPixels(cfg.QRCode.MaxPixels),
	)

	composer, err := logo.NewLogoComposer(cfg.Logo.CanvasSize, cfg.Logo.Scale, cfg.Logo.FontSize)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create logo composer")
	}

	return codec, composer, nil
}

// newStudio builds the view-model on top of cfg; newSource may be nil when
// the command never scans.
func newStudio(ctx context.Context, cfg *config.Config, newSource func(*slog.Logger) capture.FrameSource) (*studio, error) {
	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create logger")
	}

	codec, composer, err := newCodec(cfg)
	if err != nil {
		return nil, err
	}

	lib, err := library.Open(ctx, cfg.Library, logger)
	if err != nil {
		return nil, err
	}

	queue := mainqueue.New(logger)
	queue.Start()

	s := &studio{
		cfg:      cfg,
		logger:   logger,
		codec:    codec,
		composer: composer,
		queue:    queue,
		library:  lib,
	}

	params := impl.QRCodeServiceParams{
		Config:     cfg,
		Logger:     logger,
		Codec:      codec,
		Composer:   composer,
		Library:    lib,
		Dispatcher: queue,
		Publisher:  pubsub.NewNoopPublisher(logger),
	}
	if newSource != nil {
		params.Capture = capture.NewScanner(newSource(logger), codec, queue, logger)
	}
	s.qrcodeUC = impl.NewQRCodeService(params)

	return s, nil
}

// close drains the dispatcher and releases the library
func (s *studio) close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.queue.Stop(ctx); err != nil {
		s.logger.Warn("Failed to drain dispatcher", slog.Any("error", err))
	}
	if err := s.library.Close(); err != nil {
		s.logger.Warn("Failed to close photo library", slog.Any("error", err))
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"qrstudio/config"
	"qrstudio/internal/delivery"
	"qrstudio/internal/delivery/api"
	"qrstudio/internal/delivery/api/router/handler"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/infra/capture"
	"qrstudio/internal/infra/library"
	logs "qrstudio/internal/infra/log"
	"qrstudio/internal/infra/logo"
	"qrstudio/internal/infra/mainqueue"
	"qrstudio/internal/infra/pubsub"
	"qrstudio/internal/infra/qrcode"
	"qrstudio/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectCapture(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		mainqueue.Module,
		library.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newQRCodeService,
			newLogoComposer,
		),
	)
}

// newQRCodeService creates the QR codec from config
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Scale, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.LogoRatio,
		qrcode.WithMaxPixels(cfg.QRCode.MaxPixels),
	)
}

// newLogoComposer creates the logo composer from config
func newLogoComposer(cfg *config.Config) (service.LogoComposer, error) {
	return logo.NewLogoComposer(cfg.Logo.CanvasSize, cfg.Logo.Scale, cfg.Logo.FontSize)
}

func injectCapture() fx.Option {
	return fx.Options(
		fx.Provide(
			newFeedSource,
			newFrameSource,
			newFramePusher,
			newCaptureSource,
		),
	)
}

// newFeedSource creates the in-memory feed unless frames come from a directory
func newFeedSource(cfg *config.Config) *capture.FeedSource {
	if cfg.Scanner.Directory != "" {
		return nil
	}

	return capture.NewFeedSource(cfg.Scanner.FeedBuffer, capture.WithMaxPixels(cfg.QRCode.MaxPixels))
}

func newFrameSource(cfg *config.Config, feed *capture.FeedSource, logger *slog.Logger) capture.FrameSource {
	if feed == nil {
		logger.Info("Scanning watches a directory", slog.String("directory", cfg.Scanner.Directory))

		return capture.NewDirectorySource(cfg.Scanner.Directory, cfg.Scanner.PollInterval, logger,
			capture.WithMaxPixels(cfg.QRCode.MaxPixels),
		)
	}

	return feed
}

// newFramePusher exposes the feed to the frames endpoint; nil disables it
func newFramePusher(feed *capture.FeedSource) handler.FramePusher {
	if feed == nil {
		return nil
	}

	return feed
}

func newCaptureSource(source capture.FrameSource, codec service.QRCodeService, dispatcher service.Dispatcher, logger *slog.Logger) service.CaptureSource {
	return capture.NewScanner(source, codec, dispatcher, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewQRCodeService,
			impl.NewLibraryService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewQRCodeHandler,
			handler.NewLibraryHandler,
			handler.NewScannerHandler,
			handler.NewStateHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}

package capture

import (
	"context"
	"log/slog"
	"sync"

	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/errors"
)

// Scanner runs a scanning session over a FrameSource. Every frame is decoded
// until the first symbol is found; delegate callbacks run on the Dispatcher.
type Scanner struct {
	source     FrameSource
	codec      service.QRCodeService
	dispatcher service.Dispatcher
	logger     *slog.Logger

	mu       sync.Mutex
	running  bool
	session  uint64
	cancel   context.CancelFunc
	delegate service.ScanDelegate
}

var _ service.CaptureSource = (*Scanner)(nil)

// NewScanner creates a scanner reading frames from source
func NewScanner(source FrameSource, codec service.QRCodeService, dispatcher service.Dispatcher, logger *slog.Logger) *Scanner {
	return &Scanner{
		source:     source,
		codec:      codec,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Start opens the frame source. The session outlives ctx cancellation and
// ends on Stop, on the first detected symbol or on a source failure.
func (s *Scanner) Start(ctx context.Context, delegate service.ScanDelegate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}

	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	frames, err := s.source.Frames(sessionCtx)
	if err != nil {
		cancel()
		s.logger.Error("Failed to open frame source", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrScannerUnavailable, err.Error())
	}

	s.session++
	s.running = true
	s.cancel = cancel
	s.delegate = delegate

	s.logger.Info("Scanning started", slog.Uint64("session", s.session))
	go s.loop(sessionCtx, s.session, frames, delegate)

	return nil
}

// Stop ends the running session and reports ScanningStopped
func (s *Scanner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return
	}
	delegate := s.endLocked()
	s.mu.Unlock()

	s.dispatcher.Dispatch(delegate.ScanningStopped)
}

// Running reports whether a session is active
func (s *Scanner) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

func (s *Scanner) loop(ctx context.Context, session uint64, frames <-chan Frame, delegate service.ScanDelegate) {
	for {
		var frame Frame
		var ok bool

		select {
		case <-ctx.Done():
			return
		case frame, ok = <-frames:
		}

		if !ok {
			s.finish(session, nil)

			return
		}
		if frame.Err != nil {
			s.logger.Error("Frame source failed", slog.Any("error", frame.Err))
			err := errors.Wrap(domainerrors.ErrScanFailed, frame.Err.Error())
			s.finish(session, func() { delegate.ScanningFailed(err) })

			return
		}

		result, err := s.codec.DecodeImage(frame.Image)
		if err != nil {
			s.logger.Debug("Skipping undecodable frame", slog.Any("error", err))

			continue
		}
		if result.Status != entity.DecodeStatusDecoded {
			continue
		}

		text := result.Text
		s.logger.Info("Symbol detected", slog.Uint64("session", session))
		s.finish(session, func() { delegate.SymbolDetected(text) })

		return
	}
}

// finish ends session if it is still current, then reports report followed
// by ScanningStopped on the dispatcher.
func (s *Scanner) finish(session uint64, report func()) {
	s.mu.Lock()
	if !s.running || s.session != session {
		s.mu.Unlock()

		return
	}
	delegate := s.endLocked()
	s.mu.Unlock()

	s.dispatcher.Dispatch(func() {
		if report != nil {
			report()
		}
		delegate.ScanningStopped()
	})
}

func (s *Scanner) endLocked() service.ScanDelegate {
	delegate := s.delegate
	s.cancel()
	s.running = false
	s.cancel = nil
	s.delegate = nil
	s.logger.Info("Scanning stopped", slog.Uint64("session", s.session))

	return delegate
}

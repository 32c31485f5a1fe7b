// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"qrstudio/config"
	deliverycontext "qrstudio/internal/delivery/context"
	"qrstudio/internal/domain/constants"
	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/domain/service"
	"qrstudio/internal/errors"
	"qrstudio/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// User-facing messages
const (
	msgEmptyText       = "Please enter some text for the QR code."
	msgSaveFailedPre   = "Failed to generate or save QR code: "
	msgSaved           = "QR code generated and saved to photo library successfully."
	msgContentPrefix   = "QR Code content: "
	msgNoImage         = "Failed to get image"
	msgCameraSetup     = "Failed to setup camera for scanning."
	msgScanningFailed  = "QR code scanning failed."
	msgProcessingImage = "Failed to process image"
)

// QRCodeServiceParams holds dependencies for the QR code view-model
type QRCodeServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Codec      service.QRCodeService
	Composer   service.LogoComposer
	Library    service.PhotoLibrary
	Dispatcher service.Dispatcher
	Publisher  service.EventPublisher
	Capture    service.CaptureSource `optional:"true"`
}

type qrcodeService struct {
	logger     *slog.Logger
	codec      service.QRCodeService
	composer   service.LogoComposer
	library    service.PhotoLibrary
	dispatcher service.Dispatcher
	publisher  service.EventPublisher
	capture    service.CaptureSource
	brandLabel string

	supervisor supervisor

	// state is only written on the dispatcher; snapshot mirrors it for readers
	state    entity.State
	snapshot atomic.Pointer[entity.State]

	subMu       sync.Mutex
	subSeq      uint64
	subscribers map[uint64]func(entity.State)
}

// NewQRCodeService creates the QR code view-model
func NewQRCodeService(params QRCodeServiceParams) usecase.QRCodeUsecase {
	brandLabel := constants.DefaultBrandLabel
	if params.Config != nil && params.Config.QRCode != nil && params.Config.QRCode.BrandLabel != "" {
		brandLabel = params.Config.QRCode.BrandLabel
	}

	s := &qrcodeService{
		logger:      params.Logger,
		codec:       params.Codec,
		composer:    params.Composer,
		library:     params.Library,
		dispatcher:  params.Dispatcher,
		publisher:   params.Publisher,
		capture:     params.Capture,
		brandLabel:  brandLabel,
		subscribers: make(map[uint64]func(entity.State)),
	}
	initial := s.state.Clone()
	s.snapshot.Store(&initial)

	return s
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *qrcodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// result is what a submission's work produced
type result struct {
	outcome entity.OperationOutcome
	apply   func(st *entity.State)
	event   *entity.QRCodeEvent
}

func failed(message string) result {
	return result{
		outcome: entity.Failure(message),
		apply: func(st *entity.State) {
			st.ErrorMessage = &message
		},
	}
}

// SubmitGenerate encodes text with the brand logo and saves the PNG
func (s *qrcodeService) SubmitGenerate(ctx context.Context, text string) *usecase.Submission {
	return s.submit(ctx, "generate", func(ctx context.Context) result {
		return s.generate(ctx, text)
	})
}

func (s *qrcodeService) generate(ctx context.Context, text string) result {
	if text == "" {
		return failed(msgEmptyText)
	}

	qrImage, err := s.codec.Encode(entity.EncodeRequest{
		Text: text,
		Logo: s.composer.RenderLabel(s.brandLabel),
	})
	if err != nil {
		s.log(ctx).Warn("Failed to encode QR code", slog.Any("error", err))

		return failed(msgSaveFailedPre + domainerrors.ReasonOf(err))
	}

	if err := ctx.Err(); err != nil {
		return failed(msgSaveFailedPre + err.Error())
	}

	asset, err := s.library.Save(ctx, qrImage.PNG)
	if err != nil {
		s.log(ctx).Warn("Failed to save QR code", slog.Any("error", err))

		return failed(msgSaveFailedPre + domainerrors.ReasonOf(err))
	}

	message := msgSaved
	outcome := entity.Success(message)
	outcome.AssetID = asset.ID
	outcome.Content = text

	return result{
		outcome: outcome,
		apply: func(st *entity.State) {
			st.SuccessMessage = &message
			st.Generated = true
		},
		event: s.newEvent(ctx, entity.QRCodeEventGenerated, text, asset.ID),
	}
}

// SubmitDecode reads a QR code from picture bytes
func (s *qrcodeService) SubmitDecode(ctx context.Context, data []byte) *usecase.Submission {
	return s.submit(ctx, "decode", func(ctx context.Context) result {
		return s.decode(ctx, data)
	})
}

// SelectImage decodes a picked picture; nil data is reported as a failed pick
func (s *qrcodeService) SelectImage(ctx context.Context, data []byte) *usecase.Submission {
	return s.submit(ctx, "select_image", func(ctx context.Context) result {
		if len(data) == 0 {
			return failed(msgNoImage)
		}

		return s.decode(ctx, data)
	})
}

func (s *qrcodeService) decode(ctx context.Context, data []byte) result {
	decoded, err := s.codec.Decode(data)
	if err != nil {
		s.log(ctx).Warn("Failed to process image", slog.Any("error", err))

		return failed(msgProcessingImage)
	}

	switch decoded.Status {
	case entity.DecodeStatusDecoded:
		return s.contentResult(ctx, entity.QRCodeEventDecoded, decoded.Text)
	case entity.DecodeStatusNotFound:
		return failed(domainerrors.ErrNotFound.Message())
	default:
		return failed(domainerrors.ErrMalformed.Message())
	}
}

// contentResult reports decoded text through the error channel as well as
// DecodedContent, as clients of the view-model expect.
func (s *qrcodeService) contentResult(ctx context.Context, eventType entity.QRCodeEventType, text string) result {
	message := msgContentPrefix + text
	content := text
	outcome := entity.Success(message)
	outcome.Content = text

	return result{
		outcome: outcome,
		apply: func(st *entity.State) {
			st.ErrorMessage = &message
			st.DecodedContent = &content
		},
		event: s.newEvent(ctx, eventType, text, ""),
	}
}

// submit supersedes the in-flight submission, resets the message fields and
// runs work off the dispatcher.
func (s *qrcodeService) submit(ctx context.Context, op string, work func(ctx context.Context) result) *usecase.Submission {
	sub := usecase.NewSubmission()
	opCtx, token := s.supervisor.acquire(ctx, sub)
	logger := s.log(ctx).With(slog.String("operation", op), slog.Uint64("submission", token))

	s.dispatcher.Dispatch(func() {
		s.mutate(func(st *entity.State) {
			st.Generated = false
			st.ErrorMessage = nil
			st.SuccessMessage = nil
			st.DecodedContent = nil
		})
	})

	go func() {
		res := work(opCtx)

		committed := false
		s.dispatcher.Sync(func() {
			if !s.supervisor.release(token) {
				return
			}
			committed = true
			s.mutate(res.apply)
		})

		if !committed {
			logger.Debug("Discarding superseded result")
		} else if res.event != nil {
			s.publish(context.WithoutCancel(opCtx), res.event)
		}

		logger.Info("Submission finished",
			slog.String("kind", string(res.outcome.Kind)),
			slog.Bool("committed", committed),
		)
		sub.Resolve(res.outcome, nil)
	}()

	return sub
}

// StartScan opens the capture source
func (s *qrcodeService) StartScan(ctx context.Context) error {
	if s.capture == nil {
		s.setScanFailure(msgCameraSetup)

		return errors.Wrap(domainerrors.ErrScannerUnavailable, "no capture source configured")
	}

	// Queued ahead of the session so no delegate callback can precede it.
	// Starting a running capture source keeps its session.
	s.dispatcher.Dispatch(func() {
		s.mutate(func(st *entity.State) {
			st.Generated = false
			st.ErrorMessage = nil
			st.SuccessMessage = nil
			st.DecodedContent = nil
			st.Scanning = true
		})
	})

	if err := s.capture.Start(ctx, &scanDelegate{svc: s, ctx: context.WithoutCancel(ctx)}); err != nil {
		s.log(ctx).Error("Failed to start scanning", slog.Any("error", err))
		s.setScanFailure(msgCameraSetup)

		return err
	}

	return nil
}

// StopScan ends the running scan session
func (s *qrcodeService) StopScan() {
	if s.capture == nil {
		return
	}
	s.capture.Stop()
}

func (s *qrcodeService) setScanFailure(message string) {
	s.dispatcher.Dispatch(func() {
		s.mutate(func(st *entity.State) {
			st.ErrorMessage = &message
			st.Scanning = false
		})
	})
}

// scanDelegate receives capture callbacks on the dispatcher
type scanDelegate struct {
	svc *qrcodeService
	ctx context.Context
}

func (d *scanDelegate) SymbolDetected(text string) {
	res := d.svc.contentResult(d.ctx, entity.QRCodeEventScanned, text)
	d.svc.mutate(res.apply)

	// The session is over once a symbol is read
	d.svc.capture.Stop()

	go d.svc.publish(d.ctx, res.event)
}

func (d *scanDelegate) ScanningFailed(err error) {
	d.svc.log(d.ctx).Error("Scanning failed", slog.Any("error", err))
	message := msgScanningFailed
	d.svc.mutate(func(st *entity.State) {
		st.ErrorMessage = &message
	})
}

func (d *scanDelegate) ScanningStopped() {
	d.svc.mutate(func(st *entity.State) {
		st.Scanning = false
	})
}

// Preview renders a QR code without saving it
func (s *qrcodeService) Preview(text string, withLogo bool) (*entity.QRImage, error) {
	if text == "" {
		return nil, domainerrors.ErrEmptyText
	}

	req := entity.EncodeRequest{Text: text}
	if withLogo {
		req.Logo = s.composer.RenderLabel(s.brandLabel)
	}

	qrImage, err := s.codec.Encode(req)
	if err != nil {
		return nil, err
	}

	return qrImage, nil
}

// State returns the latest snapshot
func (s *qrcodeService) State() entity.State {
	return s.snapshot.Load().Clone()
}

// Subscribe registers fn for state changes
func (s *qrcodeService) Subscribe(fn func(entity.State)) func() {
	s.subMu.Lock()
	s.subSeq++
	id := s.subSeq
	s.subscribers[id] = fn
	s.subMu.Unlock()

	s.dispatcher.Dispatch(func() {
		s.subMu.Lock()
		_, ok := s.subscribers[id]
		s.subMu.Unlock()
		if ok {
			fn(s.state.Clone())
		}
	})

	var once sync.Once

	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subscribers, id)
			s.subMu.Unlock()
		})
	}
}

// mutate applies fn to the state and notifies subscribers. It must run on the
// dispatcher.
func (s *qrcodeService) mutate(fn func(st *entity.State)) {
	fn(&s.state)
	s.state.Revision++

	snapshot := s.state.Clone()
	s.snapshot.Store(&snapshot)

	s.subMu.Lock()
	subscribers := make([]func(entity.State), 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subscribers = append(subscribers, sub)
	}
	s.subMu.Unlock()

	for _, sub := range subscribers {
		sub(snapshot.Clone())
	}
}

func (s *qrcodeService) newEvent(ctx context.Context, eventType entity.QRCodeEventType, content, assetID string) *entity.QRCodeEvent {
	return &entity.QRCodeEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		Content:    content,
		AssetID:    assetID,
		OccurredAt: time.Now().UTC(),
	}
}

// publish delivers event on a best effort basis
func (s *qrcodeService) publish(ctx context.Context, event *entity.QRCodeEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishQRCodeEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish QR code event",
			slog.String("event_id", event.EventID),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}
}

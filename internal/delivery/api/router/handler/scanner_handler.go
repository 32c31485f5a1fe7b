package handler

import (
	"io"
	"log/slog"
	"net/http"

	"qrstudio/internal/delivery/api/response"
	"qrstudio/internal/errors"
	"qrstudio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FramePusher accepts encoded frames for the live scanning session
type FramePusher interface {
	PushBytes(data []byte) (bool, error)
}

// ScannerHandlerParams holds dependencies for ScannerHandler, injected by Fx.
type ScannerHandlerParams struct {
	fx.In

	QRCodeUC usecase.QRCodeUsecase
	Feed     FramePusher `optional:"true"`
	Logger   *slog.Logger
}

// ScannerHandler controls the live scanning session
type ScannerHandler struct {
	qrcodeUC usecase.QRCodeUsecase
	feed     FramePusher
	logger   *slog.Logger
}

// NewScannerHandler is the constructor for ScannerHandler
func NewScannerHandler(params ScannerHandlerParams) *ScannerHandler {
	return &ScannerHandler{
		qrcodeUC: params.QRCodeUC,
		feed:     params.Feed,
		logger:   params.Logger,
	}
}

// FrameResponse reports whether a pushed frame was queued
type FrameResponse struct {
	Accepted bool `json:"accepted"`
}

// Start opens a scanning session. Session changes arrive through state.
func (h *ScannerHandler) Start(c echo.Context) error {
	if err := h.qrcodeUC.StartScan(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, h.qrcodeUC.State())
}

// Stop ends the scanning session
func (h *ScannerHandler) Stop(c echo.Context) error {
	h.qrcodeUC.StopScan()

	return response.Success(c, http.StatusAccepted, h.qrcodeUC.State())
}

// PushFrame feeds one encoded frame to the running session
func (h *ScannerHandler) PushFrame(c echo.Context) error {
	if h.feed == nil {
		return response.Unavailable(c, "FEED_UNAVAILABLE", "Frames are read from the capture directory")
	}

	data, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read frame")
	}
	if len(data) == 0 {
		return response.BadRequest(c, "EMPTY_FRAME", "Frame body is empty")
	}

	accepted, err := h.feed.PushBytes(data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, FrameResponse{Accepted: accepted})
}

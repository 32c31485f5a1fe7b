package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"qrstudio/internal/delivery/api/response"
	"qrstudio/internal/domain/entity"
	"qrstudio/internal/errors"
	"qrstudio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QRCodeHandlerParams holds dependencies for QRCodeHandler, injected by Fx.
type QRCodeHandlerParams struct {
	fx.In

	QRCodeUC usecase.QRCodeUsecase
	Logger   *slog.Logger
}

// QRCodeHandler exposes generation and decoding
type QRCodeHandler struct {
	qrcodeUC usecase.QRCodeUsecase
	logger   *slog.Logger
}

// NewQRCodeHandler is the constructor for QRCodeHandler
func NewQRCodeHandler(params QRCodeHandlerParams) *QRCodeHandler {
	return &QRCodeHandler{
		qrcodeUC: params.QRCodeUC,
		logger:   params.Logger,
	}
}

// GenerateRequest represents the request body for generating a QR code.
// Empty text is accepted here and reported through the outcome.
type GenerateRequest struct {
	Text string `json:"text" validate:"max=2953"`
}

// OperationResponse is returned by every orchestrated operation. A failed
// operation is still a 200: the failure is part of the reported state.
type OperationResponse struct {
	Outcome entity.OperationOutcome `json:"outcome"`
	State   entity.State            `json:"state"`
}

// Generate encodes the text with the brand logo and saves it to the library
func (h *QRCodeHandler) Generate(c echo.Context) error {
	var req GenerateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR code input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	outcome, err := h.qrcodeUC.SubmitGenerate(ctx, req.Text).Wait(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OperationResponse{
		Outcome: outcome,
		State:   h.qrcodeUC.State(),
	})
}

// Decode reads a QR code from an uploaded picture
func (h *QRCodeHandler) Decode(c echo.Context) error {
	data, err := readImage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()
	// SelectImage turns a request without a picture into the picker failure
	outcome, err := h.qrcodeUC.SelectImage(ctx, data).Wait(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, OperationResponse{
		Outcome: outcome,
		State:   h.qrcodeUC.State(),
	})
}

// Preview renders a QR code as PNG without saving it
func (h *QRCodeHandler) Preview(c echo.Context) error {
	withLogo := true
	if raw := c.QueryParam("logo"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_LOGO", "logo must be true or false")
		}
		withLogo = parsed
	}

	qrImage, err := h.qrcodeUC.Preview(c.QueryParam("text"), withLogo)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.PNG(c, qrImage.PNG)
}

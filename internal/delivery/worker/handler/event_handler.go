package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"qrstudio/config"
	deliverycontext "qrstudio/internal/delivery/context"
	"qrstudio/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandler consumes the QR code events published by the services
type EventHandler struct {
	verifyPushAuth bool
	verify         tokenVerifier
	logger         *slog.Logger

	mu     sync.Mutex
	counts map[entity.QRCodeEventType]int
}

// EventHandlerParams holds dependencies for the EventHandler
type EventHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEventHandler creates the event consumer
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		verifyPushAuth: requiresPushAuth(params.Config),
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		counts:         make(map[entity.QRCodeEventType]int),
	}
}

// HandleEvent records one pushed QRCodeEvent. Events are never redelivered:
// anything unreadable is rejected with 400.
func (h *EventHandler) HandleEvent(c echo.Context) error {
	pushMsg, data, status := readPush(c, h.verifyPushAuth, h.verify, h.logger)
	if status != 0 {
		return c.NoContent(status)
	}

	var event entity.QRCodeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse QR code event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(c.Request().Context(), pushMsg)
	if event.RequestID != "" {
		requestID = event.RequestID
	}
	_, reqLogger := deliverycontext.WithRequestScope(c.Request().Context(), requestID, h.logger)

	h.mu.Lock()
	h.counts[event.Type]++
	h.mu.Unlock()

	reqLogger.Info("[Worker] QR code event received",
		slog.String("event_id", event.EventID),
		slog.String("type", string(event.Type)),
		slog.String("asset_id", event.AssetID),
		slog.Int("content_length", len(event.Content)),
	)

	return c.NoContent(http.StatusNoContent)
}

// Counts returns how many events of each type were received
func (h *EventHandler) Counts(c echo.Context) error {
	h.mu.Lock()
	counts := make(map[entity.QRCodeEventType]int, len(h.counts))
	for eventType, n := range h.counts {
		counts[eventType] = n
	}
	h.mu.Unlock()

	return c.JSON(http.StatusOK, counts)
}

package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"qrstudio/internal/delivery/api/response"
	"qrstudio/internal/domain/entity"
	"qrstudio/internal/errors"
	"qrstudio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const defaultHeartbeat = 15 * time.Second

// StateHandlerParams holds dependencies for StateHandler, injected by Fx.
type StateHandlerParams struct {
	fx.In

	QRCodeUC usecase.QRCodeUsecase
	Logger   *slog.Logger
}

// StateHandler exposes the observable state
type StateHandler struct {
	qrcodeUC  usecase.QRCodeUsecase
	logger    *slog.Logger
	heartbeat time.Duration
}

// NewStateHandler is the constructor for StateHandler
func NewStateHandler(params StateHandlerParams) *StateHandler {
	return &StateHandler{
		qrcodeUC:  params.QRCodeUC,
		logger:    params.Logger,
		heartbeat: defaultHeartbeat,
	}
}

// Snapshot returns the current state
func (h *StateHandler) Snapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.qrcodeUC.State())
}

// Events streams state changes as server-sent events until the client
// disconnects. Slow clients skip to the latest state; the revision shows
// the gap.
func (h *StateHandler) Events(c echo.Context) error {
	ctx := c.Request().Context()
	res := c.Response()

	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.Header().Set("X-Accel-Buffering", "no")

	// The stream outlives the server write timeout
	if err := http.NewResponseController(res).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Debug("Write deadline not adjustable", slog.Any("error", err))
	}

	res.WriteHeader(http.StatusOK)
	res.Flush()

	updates := make(chan entity.State, 1)
	unsubscribe := h.qrcodeUC.Subscribe(func(state entity.State) {
		// Only the dispatcher sends, so after draining there is room
		select {
		case <-updates:
		default:
		}
		updates <- state
	})
	defer unsubscribe()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case state := <-updates:
			if err := writeStateEvent(res, state); err != nil {
				h.logger.Debug("State stream closed", slog.Any("error", err))

				return nil
			}
		case <-heartbeat.C:
			if _, err := io.WriteString(res, ": keepalive\n\n"); err != nil {
				return nil
			}
		}
		res.Flush()
	}
}

func writeStateEvent(w io.Writer, state entity.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = fmt.Fprintf(w, "id: %d\nevent: state\ndata: %s\n\n", state.Revision, payload)

	return errors.WithStack(err)
}

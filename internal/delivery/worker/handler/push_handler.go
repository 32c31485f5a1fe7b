package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"qrstudio/config"
	deliverycontext "qrstudio/internal/delivery/context"
	"qrstudio/internal/domain/constants"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/errors"
	"qrstudio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// tokenVerifier checks the push request's OIDC token
type tokenVerifier func(req *http.Request) error

// PushHandler decodes frames pushed through Pub/Sub
type PushHandler struct {
	verifyPushAuth bool
	verify         tokenVerifier
	logger         *slog.Logger
	frameUC        usecase.FrameUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	FrameUC usecase.FrameUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		verifyPushAuth: requiresPushAuth(params.Config),
		verify:         verifyPubSubToken,
		logger:         params.Logger,
		frameUC:        params.FrameUC,
	}
}

// requiresPushAuth is true for the Google provider outside development
func requiresPushAuth(cfg *config.Config) bool {
	return cfg.PubSub != nil &&
		cfg.PubSub.Provider == constants.PubSubProviderGoogle &&
		cfg.Env.Env != constants.EnvDevelop
}

// HandlePush decodes one pushed frame. Frames that cannot be read are acked
// so Pub/Sub does not redeliver them; a failed event publish asks for
// redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	pushMsg, data, status := readPush(c, h.verifyPushAuth, h.verify, h.logger)
	if status != 0 {
		return c.NoContent(status)
	}

	requestID := extractRequestID(c.Request().Context(), pushMsg)
	ctx, reqLogger := deliverycontext.WithRequestScope(c.Request().Context(), requestID, h.logger)

	reqLogger.Info("[Worker] Processing pushed frame",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.Int("bytes", len(data)),
	)

	result, err := h.frameUC.DecodeFrame(ctx, data)
	switch {
	case errors.Is(err, domainerrors.ErrImageDecode):
		reqLogger.Warn("[Worker] Dropping unreadable frame",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	case err != nil:
		reqLogger.Error("[Worker] Failed to process frame",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusInternalServerError)
	}

	reqLogger.Info("[Worker] Frame processed",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("status", string(result.Status)),
	)

	return c.NoContent(http.StatusNoContent)
}

// readPush verifies and parses a push request. A non-zero status is the
// response to send instead of processing the message.
func readPush(c echo.Context, verifyPushAuth bool, verify tokenVerifier, logger *slog.Logger) (*PubSubMessage, []byte, int) {
	// Verify Pub/Sub token in production for Google provider
	if verifyPushAuth {
		if err := verify(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return nil, nil, http.StatusUnauthorized
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return nil, nil, http.StatusBadRequest
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return nil, nil, http.StatusBadRequest
	}
	if len(data) == 0 {
		logger.Error("[Worker] Push message carries no data",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return nil, nil, http.StatusBadRequest
	}

	return &pushMsg, data, 0
}

// extractRequestID prefers the message attribute, then the X-Request-Id
// header, then a fresh UUID
func extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && deliverycontext.ValidRequestID(requestID) {
		return requestID
	}

	// 2. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 3. Generate new UUID as fallback
	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

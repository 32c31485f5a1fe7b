package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qrstudio/config"
	deliverycontext "qrstudio/internal/delivery/context"
	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/errors"
	mockUsecase "qrstudio/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, data string, attributes map[string]string) string {
	t.Helper()

	var msg PubSubMessage
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/local/subscriptions/frames"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func serve(handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	_ = handler(echo.New().NewContext(req, rec))

	return rec
}

func newPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockFrameUsecase) {
	frameUC := mockUsecase.NewMockFrameUsecase(t)

	return NewPushHandler(PushHandlerParams{
		Config:  config.Default(),
		Logger:  testLogger(),
		FrameUC: frameUC,
	}), frameUC
}

func TestPushHandler_HandlePush(t *testing.T) {
	frame := base64.StdEncoding.EncodeToString([]byte("frame-bytes"))

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setupMock  func(m *mockUsecase.MockFrameUsecase)
		wantStatus int
	}{
		{
			name: "Decoded frame",
			body: func(t *testing.T) string { return pushBody(t, frame, map[string]string{"request_id": "req-7"}) },
			setupMock: func(m *mockUsecase.MockFrameUsecase) {
				m.EXPECT().
					DecodeFrame(mock.MatchedBy(func(ctx context.Context) bool {
						return deliverycontext.GetRequestIDFromContext(ctx) == "req-7"
					}), []byte("frame-bytes")).
					Return(entity.Decoded("hello"), nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "Frame without a symbol",
			body: func(t *testing.T) string { return pushBody(t, frame, nil) },
			setupMock: func(m *mockUsecase.MockFrameUsecase) {
				m.EXPECT().DecodeFrame(mock.Anything, []byte("frame-bytes")).Return(entity.NotFound(), nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "Unreadable image is acked",
			body: func(t *testing.T) string { return pushBody(t, frame, nil) },
			setupMock: func(m *mockUsecase.MockFrameUsecase) {
				m.EXPECT().DecodeFrame(mock.Anything, mock.Anything).
					Return(nil, errors.Wrap(domainerrors.ErrImageDecode, "decode")).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "Publish failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, frame, nil) },
			setupMock: func(m *mockUsecase.MockFrameUsecase) {
				m.EXPECT().DecodeFrame(mock.Anything, mock.Anything).
					Return(entity.Decoded("hello"), errors.New("topic unavailable")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "Invalid JSON",
			body:       func(t *testing.T) string { return `{"message":` },
			setupMock:  func(m *mockUsecase.MockFrameUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Invalid base64",
			body:       func(t *testing.T) string { return pushBody(t, "not base64!", nil) },
			setupMock:  func(m *mockUsecase.MockFrameUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Empty data",
			body:       func(t *testing.T) string { return pushBody(t, "", nil) },
			setupMock:  func(m *mockUsecase.MockFrameUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, frameUC := newPushHandler(t)
			tt.setupMock(frameUC)

			rec := serve(h.HandlePush, tt.body(t))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RejectsInvalidToken(t *testing.T) {
	h, _ := newPushHandler(t)
	h.verifyPushAuth = true
	h.verify = func(*http.Request) error { return errors.New("missing authorization header") }

	rec := serve(h.HandlePush, pushBody(t, base64.StdEncoding.EncodeToString([]byte("x")), nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequiresPushAuth(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		provider *config.PubSubConfig
		want     bool
	}{
		{"Google in production", "production", &config.PubSubConfig{Provider: "google"}, true},
		{"Google in develop", "develop", &config.PubSubConfig{Provider: "google"}, false},
		{"Local in production", "production", &config.PubSubConfig{Provider: "local"}, false},
		{"Not configured", "production", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{PubSub: tt.provider}
			cfg.Env.Env = tt.env

			assert.Equal(t, tt.want, requiresPushAuth(cfg))
		})
	}
}

func TestExtractRequestID(t *testing.T) {
	withAttribute := &PubSubMessage{}
	withAttribute.Message.Attributes = map[string]string{"request_id": "from-attribute"}
	malformed := &PubSubMessage{}
	malformed.Message.Attributes = map[string]string{"request_id": "has space"}

	ctx := deliverycontext.WithRequestID(context.Background(), "from-header")

	assert.Equal(t, "from-attribute", extractRequestID(ctx, withAttribute))
	assert.Equal(t, "from-header", extractRequestID(ctx, malformed))
	assert.Equal(t, "from-header", extractRequestID(ctx, &PubSubMessage{}))
	assert.Len(t, extractRequestID(context.Background(), &PubSubMessage{}), 36)
}

func TestVerifyPubSubToken_HeaderErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/push", nil)
	assert.EqualError(t, verifyPubSubToken(req), "missing authorization header")

	req.Header.Set("Authorization", "Basic abc")
	assert.EqualError(t, verifyPubSubToken(req), "invalid authorization header format")
}

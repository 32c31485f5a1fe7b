package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "qrstudio/internal/delivery/context"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Error map[string]any `json:"error"`
		Meta  MetaInfo       `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-1", body.Meta.RequestID)

	return body.Error
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, map[string]string{"status": "ok"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":{"status":"ok"},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:        "Client error keeps details",
			err:         errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("text failed on max"), "bind"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "text failed on max",
		},
		{
			name:       "Server error hides details",
			err:        domainerrors.ErrSink.WithDetails("bucket exploded"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "SINK_FAILED",
		},
		{
			name:       "Forbidden hides details",
			err:        domainerrors.ErrPermissionDenied.WithDetails("Photo library access not determined"),
			wantStatus: http.StatusForbidden,
			wantCode:   "PERMISSION_DENIED",
		},
		{
			name:       "Superseded is a conflict",
			err:        domainerrors.ErrSuperseded,
			wantStatus: http.StatusConflict,
			wantCode:   "SUPERSEDED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body["code"])
			assert.Equal(t, tt.wantDetails, body["details"])
		})
	}
}

func TestHandleAppError_PlainError(t *testing.T) {
	c, rec := newContext()

	err := HandleAppError(c, errors.New("boom"))
	require.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	assert.Zero(t, rec.Body.Len())
}

func TestPNG(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, PNG(c, []byte("\x89PNG")))

	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "no-store", rec.Header().Get(echo.HeaderCacheControl))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

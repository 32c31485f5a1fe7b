package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))
}

func TestWithRequestScope(t *testing.T) {
	base := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, logger := WithRequestScope(context.Background(), "req-2", base)

	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Same(t, logger, GetLogger(ctx))
	assert.Same(t, logger, GetLoggerOrDefault(ctx, base))
	assert.Same(t, base, GetLoggerOrDefault(context.Background(), base))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"3f2c7a4e-1111-4222-8333-944455556666", true},
		{"trace.abc_123", true},
		{"", false},
		{"has space", false},
		{"line\nbreak", false},
		{"ünïcode", false},
		{strings.Repeat("a", MaxRequestIDLength), true},
		{strings.Repeat("a", MaxRequestIDLength+1), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRequestID(tt.id), tt.id)
	}
}

package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"qrstudio/internal/delivery/api/validator"
	"qrstudio/internal/domain/entity"
	"qrstudio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func resolved(outcome entity.OperationOutcome, err error) *usecase.Submission {
	sub := usecase.NewSubmission()
	sub.Resolve(outcome, err)

	return sub
}

func strPtr(s string) *string {
	return &s
}

type envelope[T any] struct {
	Data  T `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) envelope[T] {
	t.Helper()

	var body envelope[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

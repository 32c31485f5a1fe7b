package handler

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"qrstudio/internal/domain/entity"
	mockUsecase "qrstudio/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStateHandler_Snapshot(t *testing.T) {
	qrcodeUC := mockUsecase.NewMockQRCodeUsecase(t)
	h := NewStateHandler(StateHandlerParams{QRCodeUC: qrcodeUC, Logger: testLogger()})
	qrcodeUC.EXPECT().State().Return(entity.State{DecodedContent: strPtr("hello"), Revision: 7}).Once()

	rec := httptest.NewRecorder()
	require.NoError(t, h.Snapshot(newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/state", nil), rec)))

	state := decodeBody[entity.State](t, rec).Data
	assert.Equal(t, uint64(7), state.Revision)
	assert.Equal(t, strPtr("hello"), state.DecodedContent)
}

type sseEvent struct {
	id    string
	event string
	data  string
}

// readEvent returns the next event, skipping comment lines
func readEvent(t *testing.T, reader *bufio.Reader) sseEvent {
	t.Helper()

	var ev sseEvent
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")

		switch {
		case line == "" && ev.data != "":
			return ev
		case strings.HasPrefix(line, "id: "):
			ev.id = strings.TrimPrefix(line, "id: ")
		case strings.HasPrefix(line, "event: "):
			ev.event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			ev.data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestStateHandler_Events(t *testing.T) {
	qrcodeUC := mockUsecase.NewMockQRCodeUsecase(t)
	h := NewStateHandler(StateHandlerParams{QRCodeUC: qrcodeUC, Logger: testLogger()})

	registered := make(chan func(entity.State), 1)
	unsubscribed := make(chan struct{})
	qrcodeUC.EXPECT().Subscribe(mock.Anything).
		RunAndReturn(func(fn func(entity.State)) func() {
			fn(entity.State{Revision: 1})
			registered <- fn

			return func() { close(unsubscribed) }
		}).Once()

	e := newTestEcho()
	e.GET("/api/v1/state/events", h.Events)
	srv := httptest.NewServer(e)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/v1/state/events", nil)
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	first := readEvent(t, reader)
	assert.Equal(t, "1", first.id)
	assert.Equal(t, "state", first.event)

	publish := <-registered
	publish(entity.State{Generated: true, SuccessMessage: strPtr("QR Code saved to Photos!"), Revision: 2})

	second := readEvent(t, reader)
	assert.Equal(t, "2", second.id)
	var state entity.State
	require.NoError(t, json.Unmarshal([]byte(second.data), &state))
	assert.True(t, state.Generated)
	assert.Equal(t, strPtr("QR Code saved to Photos!"), state.SuccessMessage)

	cancel()

	select {
	case <-unsubscribed:
	case <-time.After(5 * time.Second):
		t.Fatal("subscription was not released")
	}
}

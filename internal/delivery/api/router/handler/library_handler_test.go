package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"qrstudio/internal/domain/entity"
	domainerrors "qrstudio/internal/domain/errors"
	"qrstudio/internal/errors"
	mockUsecase "qrstudio/internal/mocks/usecase"
	"qrstudio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLibraryHandler(t *testing.T) (*LibraryHandler, *mockUsecase.MockLibraryUsecase) {
	libraryUC := mockUsecase.NewMockLibraryUsecase(t)

	return NewLibraryHandler(LibraryHandlerParams{LibraryUC: libraryUC, Logger: testLogger()}), libraryUC
}

func TestLibraryHandler_List(t *testing.T) {
	h, libraryUC := newLibraryHandler(t)

	createdAt := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	libraryUC.EXPECT().Overview(mock.Anything).Return(&usecase.LibraryOverview{
		Authorization: entity.AuthorizationLimited,
		Assets: []*entity.Asset{
			{ID: "a1", Key: "qrcodes/a1.png", ContentType: "image/png", Size: 42, CreatedAt: createdAt},
		},
	}, nil).Once()

	rec := httptest.NewRecorder()
	require.NoError(t, h.List(newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/library", nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[usecase.LibraryOverview](t, rec)
	assert.Equal(t, entity.AuthorizationLimited, body.Data.Authorization)
	require.Len(t, body.Data.Assets, 1)
	assert.Equal(t, "a1", body.Data.Assets[0].ID)
	assert.True(t, createdAt.Equal(body.Data.Assets[0].CreatedAt))
}

func TestLibraryHandler_List_Error(t *testing.T) {
	h, libraryUC := newLibraryHandler(t)
	libraryUC.EXPECT().Overview(mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrSink.WithDetails("bucket offline"), "list")).Once()

	rec := httptest.NewRecorder()
	require.NoError(t, h.List(newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/library", nil), rec)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[any](t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "SINK_FAILED", body.Error.Code)
	assert.Nil(t, body.Error.Details)
}

func TestLibraryHandler_Image(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(m *mockUsecase.MockLibraryUsecase)
		wantStatus int
	}{
		{
			name: "Found",
			setupMock: func(m *mockUsecase.MockLibraryUsecase) {
				m.EXPECT().Image(mock.Anything, "a1").
					Return([]byte("png-bytes"), &entity.Asset{ID: "a1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Not found",
			setupMock: func(m *mockUsecase.MockLibraryUsecase) {
				m.EXPECT().Image(mock.Anything, "a1").Return(nil, nil, domainerrors.ErrAssetNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, libraryUC := newLibraryHandler(t)
			tt.setupMock(libraryUC)

			rec := httptest.NewRecorder()
			c := newTestEcho().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/library/a1", nil), rec)
			c.SetParamNames("id")
			c.SetParamValues("a1")

			require.NoError(t, h.Image(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
				assert.Equal(t, `inline; filename="a1.png"`, rec.Header().Get(echo.HeaderContentDisposition))
				assert.Equal(t, "png-bytes", rec.Body.String())
			}
		})
	}
}

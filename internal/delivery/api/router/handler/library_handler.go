package handler

import (
	"log/slog"
	"net/http"

	"qrstudio/internal/delivery/api/response"
	"qrstudio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LibraryHandlerParams holds dependencies for LibraryHandler, injected by Fx.
type LibraryHandlerParams struct {
	fx.In

	LibraryUC usecase.LibraryUsecase
	Logger    *slog.Logger
}

// LibraryHandler exposes the saved images
type LibraryHandler struct {
	libraryUC usecase.LibraryUsecase
	logger    *slog.Logger
}

// NewLibraryHandler is the constructor for LibraryHandler
func NewLibraryHandler(params LibraryHandlerParams) *LibraryHandler {
	return &LibraryHandler{
		libraryUC: params.LibraryUC,
		logger:    params.Logger,
	}
}

// List returns the saved images, newest first
func (h *LibraryHandler) List(c echo.Context) error {
	overview, err := h.libraryUC.Overview(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, overview)
}

// Image returns the PNG of one saved image
func (h *LibraryHandler) Image(c echo.Context) error {
	data, asset, err := h.libraryUC.Image(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+asset.ID+`.png"`)

	return response.PNG(c, data)
}

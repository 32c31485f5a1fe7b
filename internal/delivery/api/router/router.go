// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"qrstudio/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	QRCodeHandler  *handler.QRCodeHandler
	LibraryHandler *handler.LibraryHandler
	ScannerHandler *handler.ScannerHandler
	StateHandler   *handler.StateHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	qrcodeHandler  *handler.QRCodeHandler
	libraryHandler *handler.LibraryHandler
	scannerHandler *handler.ScannerHandler
	stateHandler   *handler.StateHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		qrcodeHandler:  params.QRCodeHandler,
		libraryHandler: params.LibraryHandler,
		scannerHandler: params.ScannerHandler,
		stateHandler:   params.StateHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// QR code generation and decoding
	qrcodesGroup := apiV1.Group("/qrcodes")
	{
		qrcodesGroup.POST("", r.qrcodeHandler.Generate)
		qrcodesGroup.GET("/preview", r.qrcodeHandler.Preview)
		qrcodesGroup.POST("/decode", r.qrcodeHandler.Decode)
	}

	// Saved images
	libraryGroup := apiV1.Group("/library")
	{
		libraryGroup.GET("", r.libraryHandler.List)
		libraryGroup.GET("/:id", r.libraryHandler.Image)
	}

	// Live scanning session
	scannerGroup := apiV1.Group("/scanner")
	{
		scannerGroup.POST("/start", r.scannerHandler.Start)
		scannerGroup.POST("/stop", r.scannerHandler.Stop)
		scannerGroup.POST("/frames", r.scannerHandler.PushFrame)
	}

	// Observable state
	stateGroup := apiV1.Group("/state")
	{
		stateGroup.GET("", r.stateHandler.Snapshot)
		stateGroup.GET("/events", r.stateHandler.Events)
	}
}

package api

import (
	"github.com/labstack/echo/v4"
)

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.index)
	e.GET("/health", h.health)

	e.POST("/upload", h.upload)
	e.POST("/synthesize", h.synthesize)
	e.GET("/output/:filename", h.serveOutput)

	// Result index APIs
	v1 := e.Group("/api/v1")
	v1.GET("/results", h.listResults)
	v1.GET("/results/:id", h.getResult)
}

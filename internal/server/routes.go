package server

import (
	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/internal/server/middleware"
	"github.com/handover-hq/atlas/internal/server/routes"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api", middleware.AuthMiddleware)

	// Payload contract
	apiRoutes.GET("/schema", routes.GetSchemaHandler)

	// Session lifecycle
	apiRoutes.POST("/sessions/:id/load", routes.LoadSessionHandler)
	apiRoutes.GET("/sessions/:id", routes.GetSessionHandler)

	// Exploration
	apiRoutes.GET("/sessions/:id/frame", routes.GetFrameHandler)
	apiRoutes.GET("/sessions/:id/detail", routes.GetDetailHandler)
	apiRoutes.POST("/sessions/:id/click", routes.ClickHandler)
	apiRoutes.POST("/sessions/:id/toggles", routes.SetToggleHandler)
	apiRoutes.POST("/sessions/:id/direction", routes.SetDirectionHandler)
	apiRoutes.POST("/sessions/:id/reset", routes.ResetSessionHandler)
}

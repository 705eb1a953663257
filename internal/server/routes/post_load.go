package routes

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/internal/server/middleware"
)

// LoadSessionHandler kicks off a (re)load of the session's graph payload and
// answers immediately with the current load state. The fetch runs detached
// from the request; its outcome lands in the registry. Exploration state is
// replaced wholesale once the new graph resolves.
func LoadSessionHandler(c echo.Context) error {
	sessionID := c.Param("id")
	if sessionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing session id"})
	}

	app := c.(*middleware.AppContext).App

	ctx := context.WithoutCancel(c.Request().Context())
	go func() {
		// Failures are recorded in the registry and logged there; they are
		// surfaced to the client through the status endpoint, not retried.
		_ = app.Registry.Load(ctx, sessionID)
	}()

	return c.JSON(http.StatusAccepted, app.Registry.Status(sessionID))
}

package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/internal/server/middleware"
	"github.com/handover-hq/atlas/pkg/explore"
)

// GetFrameHandler returns the draw list for the current exploration state:
// positioned nodes, edges, the pending focus request, toggle and selection
// state. Sessions that are still loading or failed answer 409 with their
// load status.
func GetFrameHandler(c echo.Context) error {
	sessionID := c.Param("id")
	app := c.(*middleware.AppContext).App

	var frame explore.Frame
	err := app.Registry.WithSession(sessionID, func(s *explore.Session) error {
		frame = s.Frame()
		return nil
	})
	if errors.Is(err, explore.ErrNotLoaded) {
		return c.JSON(http.StatusConflict, app.Registry.Status(sessionID))
	}
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, frame)
}

package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/internal/server/middleware"
	"github.com/handover-hq/atlas/pkg/explore"
)

// ResetSessionHandler collapses all expanded centers, returning the diagram
// to the base skeleton. Returns the updated frame.
func ResetSessionHandler(c echo.Context) error {
	sessionID := c.Param("id")
	app := c.(*middleware.AppContext).App

	var frame explore.Frame
	err := app.Registry.WithSession(sessionID, func(s *explore.Session) error {
		s.Reset()
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

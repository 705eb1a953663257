package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/internal/server/middleware"
	"github.com/handover-hq/atlas/pkg/explore"
	"github.com/handover-hq/atlas/pkg/layout"
)

// SetDirectionHandler switches the layout flow between left-to-right and
// top-to-bottom. Returns the updated frame.
func SetDirectionHandler(c echo.Context) error {
	type request struct {
		Direction string `json:"direction" validate:"required,oneof=LR TB"`
	}

	var body request
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sessionID := c.Param("id")
	app := c.(*middleware.AppContext).App

	var frame explore.Frame
	err := app.Registry.WithSession(sessionID, func(s *explore.Session) error {
		s.SetDirection(layout.Direction(body.Direction))
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

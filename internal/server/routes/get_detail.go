package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/internal/server/middleware"
	"github.com/handover-hq/atlas/pkg/explore"
)

// GetDetailHandler returns the evidence panel content for the current
// selection. Answers 204 when nothing is selected.
func GetDetailHandler(c echo.Context) error {
	sessionID := c.Param("id")
	app := c.(*middleware.AppContext).App

	var detail *explore.DetailView
	err := app.Registry.WithSession(sessionID, func(s *explore.Session) error {
		detail = s.Detail()
		return nil
	})
	if errors.Is(err, explore.ErrNotLoaded) {
		return c.JSON(http.StatusConflict, app.Registry.Status(sessionID))
	}
	if err != nil {
		return c.String(http.StatusInternalServerError, err.Error())
	}

	if detail == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, detail)
}

package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/internal/server/middleware"
	"github.com/handover-hq/atlas/pkg/explore"
	"github.com/handover-hq/atlas/pkg/graph"
	"github.com/handover-hq/atlas/pkg/layout"
)

// GetSessionHandler reports the load state of a session and, once loaded,
// the configuration surface the client builds its controls from: the
// category toggle keys present in the graph, current toggle values, layout
// direction, and expanded centers.
func GetSessionHandler(c echo.Context) error {
	type response struct {
		explore.Status
		Categories []string         `json:"categories,omitempty"`
		Toggles    graph.Toggles    `json:"toggles,omitempty"`
		Direction  layout.Direction `json:"direction,omitempty"`
		Expanded   []string         `json:"expanded,omitempty"`
	}

	sessionID := c.Param("id")
	app := c.(*middleware.AppContext).App

	res := response{Status: app.Registry.Status(sessionID)}
	_ = app.Registry.WithSession(sessionID, func(s *explore.Session) error {
		res.Categories = graph.Categories(s.Graph())
		res.Toggles = s.Toggles()
		res.Direction = s.Direction()
		res.Expanded = s.Expanded()
		return nil
	})

	return c.JSON(http.StatusOK, res)
}

package routes

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/internal/server/middleware"
	"github.com/handover-hq/atlas/pkg/explore"
)

// ClickHandler applies a click reported by the rendering surface. The body
// is a tagged union: kind "node" carries a node id, kind "edge" an edge key.
// The updated frame is returned so the client can redraw immediately.
func ClickHandler(c echo.Context) error {
	type request struct {
		Kind    string `json:"kind" validate:"required,oneof=node edge"`
		NodeID  string `json:"node_id,omitempty"`
		EdgeKey string `json:"edge_key,omitempty"`
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
		s.Click(explore.ClickEvent{
			Kind:    explore.SelectionKind(body.Kind),
			NodeID:  body.NodeID,
			EdgeKey: body.EdgeKey,
		})
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

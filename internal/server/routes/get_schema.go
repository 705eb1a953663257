package routes

import (
	"net/http"

	"github.com/invopop/jsonschema"
	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/pkg/graph"
)

// GetSchemaHandler serves the JSON Schema of the graph payload this engine
// accepts, so the extraction backend can validate its output before writing
// an artifact.
func GetSchemaHandler(c echo.Context) error {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(&graph.RawGraph{})
	return c.JSON(http.StatusOK, schema)
}

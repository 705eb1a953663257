package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/labstack/echo/v4"

	"github.com/handover-hq/atlas/pkg/explore"
)

// AppUser identifies the authenticated caller.
type AppUser struct {
	UserID string
	Role   string
}

// App bundles the process-wide collaborators handlers need.
type App struct {
	Registry     *explore.Registry
	Key          *keyfunc.Keyfunc
	MasterAPIKey string
}

// AppContext wraps the echo context with the app collaborators and the
// authenticated user.
type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

// AppContextMiddleware attaches the App to every request.
func AppContextMiddleware(app *App) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return next(&AppContext{c, app, nil})
		}
	}
}

package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/burningbushdesign/storefront-api/internal/api/middleware"
)

// actorID returns the id of the admin behind the current session, or "" on
// unauthenticated routes. Handlers on guarded routes can rely on it being
// set; the session middleware rejects requests before they get here.
func actorID(c echo.Context) string {
	identity, _ := middleware.IdentityFromContext(c)
	return identity.ID
}

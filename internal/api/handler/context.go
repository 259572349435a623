package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alshifa/clinic-system/internal/api/middleware"
)

// claims bundles the authenticated identity the Auth middleware stored on
// the request context.
type claims struct {
	UserID    string
	Role      string
	ProfileID string
}

// ctxClaims extracts the authenticated claims, failing fast when a handler
// is reached without them (a routing mistake, not a client error).
func ctxClaims(c echo.Context) (claims, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	role, _ := c.Get(middleware.CtxRole).(string)
	if userID == "" || role == "" {
		return claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	profileID, _ := c.Get(middleware.CtxProfileID).(string)
	return claims{UserID: userID, Role: role, ProfileID: profileID}, nil
}

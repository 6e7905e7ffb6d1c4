package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/agency-api/internal/api/middleware"
)

// ctxOwnerID extracts the authenticated identity injected by the Authenticate
// middleware. Every owner-scoped handler calls this before touching a
// service: a missing id means the middleware did not run, so fail fast.
func ctxOwnerID(c echo.Context) (string, error) {
	ownerID, _ := c.Get(middleware.CtxUserID).(string)
	if ownerID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ownerID, nil
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/staffhub/agency-api/internal/core/ports"
)

// SessionCookie is the name of the cookie carrying the session handle.
const SessionCookie = "session_id"

// Context keys set by Authenticate and read by handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxUserType = "user_type"
)

// Authenticate resolves the calling identity from a bearer token, falling
// back to the session cookie, and injects the identity into context. Either
// proof is sufficient; requests carrying neither are rejected.
func Authenticate(jwtSecret string, sessions ports.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" {
				return bearerAuth(c, next, jwtSecret, authHeader)
			}

			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			sess, err := sessions.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}

			c.Set(CtxUserID, sess.UserID)
			c.Set(CtxUsername, sess.Username)
			c.Set(CtxUserType, sess.UserType)

			return next(c)
		}
	}
}

func bearerAuth(c echo.Context, next echo.HandlerFunc, jwtSecret, authHeader string) error {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
		}
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	if !tkn.Valid {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	c.Set(CtxUserID, sub)
	c.Set(CtxUsername, claims["username"])
	c.Set(CtxUserType, claims["user_type"])

	return next(c)
}

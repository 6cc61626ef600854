package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"microloan-backend/internal/domain/approval"
)

// Actor is the authenticated caller as resolved by the (external) identity
// layer. It reaches this service as trusted gateway headers.
type Actor struct {
	ID   string
	Role approval.Role
}

const actorContextKey = "mf.actor"

// ActorMiddleware parses Ax-Actor-Id and Ax-Actor-Role into the request
// context. Reads pass through untouched; every mutating request must carry a
// valid actor.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			actorID := strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Id"))
			if !reHex32.MatchString(actorID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Id"})
			}
			role := approval.Role(strings.ToLower(strings.TrimSpace(c.Request().Header.Get("Ax-Actor-Role"))))
			if role.Rank() < 0 {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing or invalid Ax-Actor-Role"})
			}

			c.Set(actorContextKey, Actor{ID: actorID, Role: role})
			return next(c)
		}
	}
}

// ActorFrom returns the actor stashed by ActorMiddleware.
func ActorFrom(c echo.Context) (Actor, bool) {
	a, ok := c.Get(actorContextKey).(Actor)
	return a, ok
}

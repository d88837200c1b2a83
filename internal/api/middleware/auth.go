package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campusboard/result-api/internal/api/metrics"
	"github.com/campusboard/result-api/internal/core/ports"
)

// Context keys under which the access guard stores the resolved identity.
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// Auth is the access guard: it extracts the bearer token from the
// Authorization header, validates it via the token codec, and injects the
// resolved identity into the request context. The header may carry either the
// raw token (what the original clients send) or a "Bearer " prefix.
//
// A missing header answers "Unauthorized" and a bad token "Invalid token",
// but both are 401 — a caller learns nothing beyond "not authenticated".
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get("Authorization")
			if raw == "" {
				metrics.TokenValidationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			if rest, ok := strings.CutPrefix(raw, "Bearer "); ok {
				raw = rest
			} else if rest, ok := strings.CutPrefix(raw, "bearer "); ok {
				raw = rest
			}

			claims, err := codec.Validate(raw)
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}
			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()

			c.Set(CtxAccountID, claims.AccountID)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}

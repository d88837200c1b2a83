package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusboard/result-api/internal/api/middleware"
	"github.com/campusboard/result-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a present, non-empty role proves the
// guard actually ran on this route.
func ctxIdentity(c echo.Context) (accountID string, role domain.Role, err error) {
	role, _ = c.Get(middleware.CtxRole).(domain.Role)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}
	accountID, _ = c.Get(middleware.CtxAccountID).(string)
	return accountID, role, nil
}

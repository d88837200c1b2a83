package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/campusboard/result-api/internal/core/domain"
)

// RequireRole enforces role-based access control. It assumes Auth already ran
// and injected the role claim; rejections surface as domain.ErrForbidden so
// the central error handler renders the 403 envelope.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if _, ok := allowed[role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}

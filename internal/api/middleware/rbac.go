package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accountsvc/user-service/internal/core/domain"
)

// RBAC enforces role-based access control over the user injected by Auth.
// Requests without a resolved caller fail 401; callers whose role is not in
// the allowed set fail 403.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "access forbidden")
			}
			return next(c)
		}
	}
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/accountsvc/user-service/internal/core/domain"
)

// userContextKey is where the resolved caller is stored on the echo context.
const userContextKey = "current_user"

// UserResolver turns a raw bearer token into the live user behind it.
type UserResolver interface {
	ResolveUser(ctx context.Context, accessToken string) (*domain.User, error)
}

// CurrentUser returns the caller injected by Auth (or OptionalAuth), or nil
// for unauthenticated requests.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// Auth requires a valid bearer token, resolves it to a user and injects the
// user into the request context. Verification failures map to 401; a token
// whose subject is gone maps to 404 and an inactive subject to 403.
func Auth(resolver UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			user, err := resolver.ResolveUser(c.Request().Context(), raw)
			if err != nil {
				return resolveStatus(err)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// OptionalAuth resolves the caller when an Authorization header is present
// and passes the request through anonymously when it is not. A header that
// is present but invalid still fails the request: a caller who claims an
// identity must prove it.
func OptionalAuth(resolver UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") == "" {
				return next(c)
			}

			raw, err := bearerToken(c)
			if err != nil {
				return err
			}
			user, err := resolver.ResolveUser(c.Request().Context(), raw)
			if err != nil {
				return resolveStatus(err)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

func resolveStatus(err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	case errors.Is(err, domain.ErrUserInactive):
		return echo.NewHTTPError(http.StatusForbidden, "user is inactive")
	default:
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
}

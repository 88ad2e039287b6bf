package auth

import (
	"strings"

	"github.com/google/uuid"
	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/labstack/echo/v4"
)

const (
	userIDKey   = "auth.user_id"
	userRoleKey = "auth.user_role"
)

// Middleware verifies the Bearer token and stashes the caller's identity
// on the echo context. Routes behind it always see a valid user.
func Middleware(issuer *TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperr.NewUnauthorized("missing authorization header")
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return apperr.NewUnauthorized("malformed authorization header")
			}

			userID, role, err := issuer.Verify(raw)
			if err != nil {
				return apperr.NewUnauthorized("invalid token")
			}

			c.Set(userIDKey, userID)
			c.Set(userRoleKey, role)
			return next(c)
		}
	}
}

// RequireRole gates a route to a specific role. Admins pass everywhere.
func RequireRole(role domain.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := CallerRole(c)
			if got != role && got != domain.RoleAdmin {
				return apperr.NewForbidden("insufficient role")
			}
			return next(c)
		}
	}
}

func CallerID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(userIDKey).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

func CallerRole(c echo.Context) domain.UserRole {
	if role, ok := c.Get(userRoleKey).(domain.UserRole); ok {
		return role
	}
	return ""
}

package router

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/auth"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/labstack/echo/v4"
)

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, apperr.NewValidation("invalid id: " + raw)
	}
	return id, nil
}

func parseUUID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperr.NewValidation("invalid id: " + raw)
	}
	return id, nil
}

// requireOwnerOrAdmin guards mutations of owned resources. Admins may
// act on anything, everyone else only on their own records.
func requireOwnerOrAdmin(c echo.Context, ownerID uuid.UUID) error {
	if auth.CallerRole(c) == domain.RoleAdmin {
		return nil
	}
	if auth.CallerID(c) != ownerID {
		return apperr.NewForbidden("not the owner of this resource")
	}
	return nil
}

package router

import (
	"fmt"
	"net/http"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/auth"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/khoborhub/khobor/internal/dto"
	"github.com/khoborhub/khobor/internal/storage"
	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	e      *echo.Echo
	users  storage.UserStore
	issuer *auth.TokenIssuer
}

func NewAuthRouter(e *echo.Echo, users storage.UserStore, issuer *auth.TokenIssuer) *AuthRouter {
	return &AuthRouter{
		e:      e,
		users:  users,
		issuer: issuer,
	}
}

func (r *AuthRouter) Bind() {
	r.e.POST("/auth/register", r.registerHandler)
	r.e.POST("/auth/login", r.loginHandler)
}

// registerHandler godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (r *AuthRouter) registerHandler(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	role, err := req.RequestedRole()
	if err != nil {
		return err
	}
	if len(req.Password) < auth.PasswordMinLen {
		return apperr.NewValidation(fmt.Sprintf("password must be at least %d characters", auth.PasswordMinLen))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &domain.User{
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		Role:         role,
		PasswordHash: hash,
	}
	if err := r.users.Create(c.Request().Context(), user); err != nil {
		return err
	}

	token, err := r.issuer.Issue(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: user})
}

// loginHandler godoc
// @Summary Exchange credentials for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (r *AuthRouter) loginHandler(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	user, err := r.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		return apperr.NewUnauthorized("invalid credentials")
	}
	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return apperr.NewUnauthorized("invalid credentials")
	}

	token, err := r.issuer.Issue(user)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: user})
}

package dto

import (
	"strings"

	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
)

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
	Role        string `json:"role,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" || !strings.Contains(r.Email, "@") {
		return apperr.NewValidation("a valid email is required")
	}
	if strings.TrimSpace(r.DisplayName) == "" {
		return apperr.NewValidation("displayName is required")
	}
	return nil
}

// RequestedRole maps the optional role field, defaulting to reader.
// Admin cannot be self-assigned through registration.
func (r *RegisterRequest) RequestedRole() (domain.UserRole, error) {
	switch r.Role {
	case "", string(domain.RoleReader):
		return domain.RoleReader, nil
	case string(domain.RoleAuthor):
		return domain.RoleAuthor, nil
	default:
		return "", apperr.NewSemantic("invalid role: " + r.Role)
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khoborhub/khobor/internal/apperr"
	"github.com/khoborhub/khobor/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    uuid.New(),
		Email: "writer@example.com",
		Role:  domain.RoleAuthor,
	}
}

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := testUser()

	token, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, role, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
	assert.Equal(t, domain.RoleAuthor, role)
}

func TestTokenIssuer_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("secret-a", time.Hour)
	other := NewTokenIssuer("secret-b", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, _, err = other.Verify(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsTampered(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, _, err = issuer.Verify(tampered)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	issuer.ttl = -time.Minute

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, _, err = issuer.Verify(token)
	assert.Error(t, err)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPassword(hash, "correct horse battery"))
	assert.False(t, CheckPassword(hash, "wrong password!"))
}

func TestHashPassword_RejectsShort(t *testing.T) {
	_, err := HashPassword("short")
	assert.Error(t, err)
}

func runMiddleware(t *testing.T, issuer *TokenIssuer, header string) (error, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/articles", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Middleware(issuer)(func(c echo.Context) error { return nil })
	return handler(c), c
}

func TestMiddleware_ValidToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	user := testUser()
	token, err := issuer.Issue(user)
	require.NoError(t, err)

	err, c := runMiddleware(t, issuer, "Bearer "+token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, CallerID(c))
	assert.Equal(t, domain.RoleAuthor, CallerRole(c))
}

func TestMiddleware_MissingHeader(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	err, _ := runMiddleware(t, issuer, "")
	var ue *apperr.UnauthorizedError
	require.ErrorAs(t, err, &ue)
}

func TestMiddleware_MalformedHeader(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	err, _ := runMiddleware(t, issuer, "Token abc")
	var ue *apperr.UnauthorizedError
	require.ErrorAs(t, err, &ue)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	invoke := func(role domain.UserRole, want domain.UserRole) error {
		req := httptest.NewRequest(http.MethodPost, "/categories", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set(userRoleKey, role)
		handler := RequireRole(want)(func(c echo.Context) error { return nil })
		return handler(c)
	}

	assert.NoError(t, invoke(domain.RoleAdmin, domain.RoleAdmin))
	assert.NoError(t, invoke(domain.RoleAdmin, domain.RoleAuthor), "admin passes author gates")
	assert.NoError(t, invoke(domain.RoleAuthor, domain.RoleAuthor))

	err := invoke(domain.RoleReader, domain.RoleAdmin)
	var fe *apperr.ForbiddenError
	require.ErrorAs(t, err, &fe)
}

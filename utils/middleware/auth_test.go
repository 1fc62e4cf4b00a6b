package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankalp-academy/site-api/utils/auth"
)

func newProtectedApp(t *testing.T, m *AuthMiddleware) *fiber.App {
	app := fiber.New()
	app.Get("/me", m.Required(), func(c *fiber.Ctx) error {
		id, _ := GetUserID(c)
		return c.JSON(fiber.Map{"user_id": id})
	})
	app.Get("/admin", m.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func testToken(t *testing.T, jwtManager *auth.JWTManager, role string) string {
	token, err := jwtManager.GenerateToken(1, "user@example.com", "User", role, "")
	require.NoError(t, err)
	return token
}

func TestRequiredAcceptsBearerHeader(t *testing.T) {
	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	app := newProtectedApp(t, NewAuthMiddleware(jwtManager))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, jwtManager, "admin"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// The cookie set at login goes through the same verification path as
// the bearer header.
func TestRequiredAcceptsAuthCookie(t *testing.T) {
	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	app := newProtectedApp(t, NewAuthMiddleware(jwtManager))

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: testToken(t, jwtManager, "admin")})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequiredRejectsMissingToken(t *testing.T) {
	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	app := newProtectedApp(t, NewAuthMiddleware(jwtManager))

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequiredRejectsExpiredToken(t *testing.T) {
	expired := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: -time.Minute})
	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	app := newProtectedApp(t, NewAuthMiddleware(jwtManager))

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, expired, "admin"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAdminRejectsStudentRole(t *testing.T) {
	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	app := newProtectedApp(t, NewAuthMiddleware(jwtManager))

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+testToken(t, jwtManager, "student"))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestExtractTokenPrefersHeaderOverCookie(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = ExtractToken(c)
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "cookie-token"})

	_, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "header-token", got)
}

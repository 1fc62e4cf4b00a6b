package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sankalp-academy/site-api/utils/auth"
	"github.com/sankalp-academy/site-api/utils/middleware"
)

func newTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
	h := NewAuthHandler(db, jwtManager, nil)
	app := fiber.New()
	app.Post("/auth/login", h.Login)
	app.Post("/auth/logout", h.Logout)
	return app, mock
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, string) {
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func TestLoginSuccess(t *testing.T) {
	app, mock := newTestApp(t)

	hash, err := auth.HashPassword("admin-password")
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE email = \$1`).
		WithArgs("admin@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "email", "password_hash", "name", "role"}).
			AddRow(1, now, now, "admin@example.com", hash, "Admin", "admin"))

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"admin@example.com","password":"admin-password"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Token     string `json:"token"`
			ExpiresIn int    `json:"expires_in"`
			User      struct {
				Email string `json:"email"`
				Role  string `json:"role"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Data.Token)
	assert.Equal(t, 3600, body.Data.ExpiresIn)
	assert.Equal(t, "admin@example.com", body.Data.User.Email)

	// Token is mirrored into an HttpOnly cookie
	var foundCookie bool
	for _, c := range resp.Cookies() {
		if c.Name == middleware.AuthCookieName {
			foundCookie = true
			assert.True(t, c.HttpOnly)
			assert.Equal(t, body.Data.Token, c.Value)
		}
	}
	assert.True(t, foundCookie, "auth cookie should be set")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Unknown email and wrong password must be indistinguishable.
func TestLoginFailureResponsesMatch(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	unknownStatus, unknownBody := postLogin(t, app, `{"email":"nobody@example.com","password":"whatever1"}`)

	hash, err := auth.HashPassword("real-password")
	require.NoError(t, err)
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "admins" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "email", "password_hash", "name", "role"}).
			AddRow(1, now, now, "admin@example.com", hash, "Admin", "admin"))

	wrongStatus, wrongBody := postLogin(t, app, `{"email":"admin@example.com","password":"wrong-password"}`)

	assert.Equal(t, fiber.StatusUnauthorized, unknownStatus)
	assert.Equal(t, fiber.StatusUnauthorized, wrongStatus)
	assert.Equal(t, unknownBody, wrongBody)
	assert.Contains(t, unknownBody, "Invalid email or password")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginMissingFields(t *testing.T) {
	app, mock := newTestApp(t)

	status, _ := postLogin(t, app, `{"email":"admin@example.com"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginStudentQueriesStudentsTable(t *testing.T) {
	app, mock := newTestApp(t)

	hash, err := auth.HashPassword("student-pass")
	require.NoError(t, err)
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "students" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "email", "password_hash", "name", "roll_no", "role"}).
			AddRow(7, now, now, "student@example.com", hash, "Student", "SA-2026-001", "student"))

	status, body := postLogin(t, app, `{"email":"student@example.com","password":"student-pass","user_type":"student"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "SA-2026-001")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogoutClearsCookie(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/auth/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cleared bool
	for _, c := range resp.Cookies() {
		if c.Name == middleware.AuthCookieName {
			cleared = true
			assert.Empty(t, c.Value)
			assert.True(t, c.Expires.Before(time.Now()))
		}
	}
	assert.True(t, cleared, "auth cookie should be expired")
}

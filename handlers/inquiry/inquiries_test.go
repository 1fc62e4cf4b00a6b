package inquiry

import (
	"net/http/httptest"
	"strings"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

	h := NewInquiryHandler(db)
	app := fiber.New()
	app.Post("/contact", h.Submit)
	app.Get("/contact", h.List)
	app.Put("/contact/:id/status", h.UpdateStatus)
	return app, mock
}

func submit(t *testing.T, app *fiber.App, body string) int {
	req := httptest.NewRequest("POST", "/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestSubmitInquiry(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`INSERT INTO "inquiries"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	status := submit(t, app, `{"name":"Parent","email":"parent@example.com","subject":"Admission","message":"When does the NEET batch start?"}`)
	assert.Equal(t, fiber.StatusCreated, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A submission without a message is rejected before anything is stored.
func TestSubmitInquiryMissingMessage(t *testing.T) {
	app, mock := newTestApp(t)

	status := submit(t, app, `{"name":"Parent","email":"parent@example.com","subject":"Admission"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitInquiryInvalidEmail(t *testing.T) {
	app, mock := newTestApp(t)

	status := submit(t, app, `{"name":"Parent","email":"not-an-email","subject":"Admission","message":"Hello"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListInquiriesFiltersByStatus(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "inquiries" WHERE status = \$1`).
		WithArgs("new").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "inquiries" WHERE status = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status"}).
			AddRow(1, "Parent", "parent@example.com", "Admission", "Hello", "new"))

	resp, err := app.Test(httptest.NewRequest("GET", "/contact?status=new", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInquiryStatus(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "inquiries" WHERE "inquiries"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(1, "new"))
	mock.ExpectExec(`UPDATE "inquiries" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	req := httptest.NewRequest("PUT", "/contact/1/status", strings.NewReader(`{"status":"read"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateInquiryStatusRejectsUnknown(t *testing.T) {
	app, mock := newTestApp(t)

	req := httptest.NewRequest("PUT", "/contact/1/status", strings.NewReader(`{"status":"spam"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

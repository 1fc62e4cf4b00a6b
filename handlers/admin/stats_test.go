package admin

import (
	"encoding/json"
	"net/http/httptest"
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
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	h := NewStatsHandler(db)
	app := fiber.New()
	app.Get("/admin/stats", h.GetStats)
	return app, mock
}

func TestGetStats(t *testing.T) {
	app, mock := newTestApp(t)

	// The four counts run concurrently, so arrival order is not fixed
	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "courses"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "branches"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "gallery_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(48))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "testimonials"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Courses       int64 `json:"courses"`
			Branches      int64 `json:"branches"`
			GalleryImages int64 `json:"gallery_images"`
			Testimonials  int64 `json:"testimonials"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(12), body.Data.Courses)
	assert.Equal(t, int64(3), body.Data.Branches)
	assert.Equal(t, int64(48), body.Data.GalleryImages)
	assert.Equal(t, int64(9), body.Data.Testimonials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatsDatabaseFailure(t *testing.T) {
	app, mock := newTestApp(t)

	mock.MatchExpectationsInOrder(false)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "courses"`).
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "branches"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "gallery_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(48))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "testimonials"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	resp, err := app.Test(httptest.NewRequest("GET", "/admin/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

package hero

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

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

	h := NewHeroHandler(db)
	app := fiber.New()
	app.Get("/hero", h.ListBanners)
	return app, mock
}

func bannerRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "title", "display_order", "is_active"}).
		AddRow(2, now, now, "Admissions Open", 1, true).
		AddRow(1, now, now, "Results 2026", 2, true)
}

// Banners come back ordered by display_order so the public page can
// rotate through them first-to-last.
func TestListBannersOrdered(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "hero_contents" ORDER BY display_order ASC`).
		WillReturnRows(bannerRows())

	resp, err := app.Test(httptest.NewRequest("GET", "/hero", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			ID           uint `json:"id"`
			DisplayOrder int  `json:"display_order"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 2)
	assert.Equal(t, uint(2), body.Data[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBannersActiveFilter(t *testing.T) {
	app, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT \* FROM "hero_contents" WHERE is_active = \$1 ORDER BY display_order ASC`).
		WithArgs(true).
		WillReturnRows(bannerRows())

	resp, err := app.Test(httptest.NewRequest("GET", "/hero?active=true", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

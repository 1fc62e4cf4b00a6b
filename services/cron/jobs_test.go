package cron

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestManager(t *testing.T) (*CronManager, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewCronManager(db), mock
}

func TestArchiveStaleInquiries(t *testing.T) {
	m, mock := newTestManager(t)

	mock.ExpectExec(`UPDATE "inquiries" SET "status"=\$1.*WHERE status = \$\d+ AND created_at < \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	m.ArchiveStaleInquiries()
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveStaleInquiriesSwallowsErrors(t *testing.T) {
	m, mock := newTestManager(t)

	mock.ExpectExec(`UPDATE "inquiries"`).
		WillReturnError(gorm.ErrInvalidDB)

	m.ArchiveStaleInquiries()
	assert.NoError(t, mock.ExpectationsWereMet())
}

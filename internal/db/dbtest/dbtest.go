// Package dbtest opens in-memory SQLite databases for tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New creates an in-memory SQLite database and migrates the given models.
// The pool is limited to one connection so every query sees the same database.
func New(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)

	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { _ = sqlDB.Close() })

	err = db.AutoMigrate(models...)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

// Seed inserts rows and fails the test on error.
func Seed[T any](t *testing.T, db *gorm.DB, rows ...*T) {
	t.Helper()

	for _, row := range rows {
		require.NoError(t, db.Create(row).Error, "failed to seed test data")
	}
}

// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/task-manager-api/internal/config"
	"github.com/yukikurage/task-manager-api/internal/database"
)

// NewTestDB opens a migrated in-memory SQLite database with foreign keys
// enforced. It is closed when the test ends.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := database.Connect(config.DatabaseConfig{
		Driver:   "sqlite",
		DSN:      ":memory:",
		LogLevel: "silent",
	}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, zap.NewNop()))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yukikurage/task-manager-api/internal/config"
	"github.com/yukikurage/task-manager-api/internal/database"
	"github.com/yukikurage/task-manager-api/internal/models"
)

func TestCommandsAreRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["migrate"])
	assert.True(t, names["seed"])
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
}

func TestSeedCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	t.Setenv("TASKMANAGER_DATABASE_DRIVER", "sqlite")
	t.Setenv("TASKMANAGER_DATABASE_DSN", dbPath)
	t.Setenv("TASKMANAGER_DATABASE_LOG_LEVEL", "silent")
	t.Setenv("TASKMANAGER_SERVER_LOG_LEVEL", "error")
	t.Setenv("TASKMANAGER_SERVER_MODE", "test")
	t.Setenv("TASKMANAGER_AUTH_JWT_SECRET", "0123456789abcdef0123456789abcdef")

	rootCmd.SetArgs([]string{"seed"})
	require.NoError(t, rootCmd.Execute())
	rootCmd.SetArgs([]string{"seed"})
	require.NoError(t, rootCmd.Execute())

	db, err := database.Connect(config.DatabaseConfig{Driver: "sqlite", DSN: dbPath, LogLevel: "silent"}, zap.NewNop())
	require.NoError(t, err)
	defer func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}()

	var statuses, labels, users int64
	require.NoError(t, db.Model(&models.TaskStatus{}).Count(&statuses).Error)
	require.NoError(t, db.Model(&models.Label{}).Count(&labels).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(5), statuses)
	assert.Equal(t, int64(2), labels)
	assert.Equal(t, int64(1), users)
}

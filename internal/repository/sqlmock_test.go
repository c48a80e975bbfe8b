package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yukikurage/task-manager-api/internal/database"
	"github.com/yukikurage/task-manager-api/internal/models"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	return NewStore(db), mock
}

func TestPostgresForeignKeyErrorIsClassified(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "task_statuses"`)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})
	mock.ExpectRollback()

	err := store.TaskStatuses.Delete(context.Background(), 7)

	assert.True(t, database.IsForeignKeyViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUniqueErrorIsClassified(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "labels"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})
	mock.ExpectRollback()

	err := store.Labels.Update(context.Background(), &models.Label{ID: 3, Name: "bug"})

	assert.True(t, database.IsUniqueViolation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
